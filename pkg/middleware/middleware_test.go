package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/authenticating"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/log"
)

func okHandler(t *testing.T, wantToken string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if wantToken != "" {
			session, ok := SessionFromContext(r.Context())
			require.True(t, ok)
			assert.Equal(t, wantToken, session.Token)
		}
		assert.NotEmpty(t, log.GetCorrelationID(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth := authenticating.NewService(&config.Config{})

	tests := []struct {
		name          string
		path          string
		authorization string
		wantStatus    int
		wantToken     string
	}{
		{name: "Healthcheck é público", path: "/healthcheck", wantStatus: http.StatusOK},
		{name: "Sem token", path: "/v1/dashboard", wantStatus: http.StatusUnauthorized},
		{name: "Com token", path: "/v1/dashboard", authorization: "Bearer abc", wantStatus: http.StatusOK, wantToken: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := LoggingMiddleware()(AuthMiddleware(auth)(okHandler(t, tt.wantToken)))

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		origin     string
		wantHeader string
	}{
		{name: "Origem liberada", allowed: []string{"http://painel.com"}, origin: "http://painel.com", wantHeader: "http://painel.com"},
		{name: "Origem bloqueada", allowed: []string{"http://painel.com"}, origin: "http://outro.com", wantHeader: ""},
		{name: "Curinga", allowed: []string{"*"}, origin: "http://outro.com", wantHeader: "http://outro.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Cors(tt.allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("falhou")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "SRV_001")
}
