package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/authenticating"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/apiErrors"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/log"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
)

var publicPaths = map[string]struct{}{
	"/healthcheck": {},
}

// AuthMiddleware exige o token Bearer e guarda a sessão no contexto
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, public := publicPaths[r.URL.Path]; public || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			session, err := authService.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				var authErr *authenticating.AuthError
				if errors.As(err, &authErr) {
					log.ForContext(r.Context()).WithError(err).Warn("Requisição sem token válido")
					apiErrors.WriteError(w, authErr.Code, authErr.Err.Error(), nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext retorna a sessão autenticada da requisição
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(*domain.Session)
	return session, ok && session != nil
}

// WithSession coloca a sessão no contexto
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, ContextKeySession, session)
}
