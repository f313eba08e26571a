package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/api/handler"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/authenticating"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/dashboard/mocks"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/apiErrors"
)

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockDashboarder) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)

	cfg := &config.Config{
		Cors:     config.Cors{AllowedOrigins: []string{"*"}},
		Location: time.UTC,
	}

	return newHandler(cfg, service, authenticating.NewService(cfg), handler.CronJobServices{}), service
}

func TestServer_Healthcheck(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
}

func TestServer_DashboardExigeToken(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrMissingToken)
}

func TestServer_DashboardComToken(t *testing.T) {
	h, service := newTestHandler(t)
	service.EXPECT().View(gomock.Any(), "abc").Return(&domain.DashboardView{TotalSales: 10}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set("Origin", "http://painel.local")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_sales":10`)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_Preflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/v1/dashboard/filters", nil)
	req.Header.Set("Origin", "http://painel.local")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_CronSemServico(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
	req.Header.Set("Authorization", "Bearer abc")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}
