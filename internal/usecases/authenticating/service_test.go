package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/apiErrors"
)

const secret = "segredo-de-teste"

func signedToken(t *testing.T, key string, expiresAt time.Time) string {
	t.Helper()

	claims := domain.Claims{
		UserID:    "42",
		UserEmail: "gerente@loja.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestService_Authenticate(t *testing.T) {
	valid := signedToken(t, secret, time.Now().Add(time.Hour))

	tests := []struct {
		name          string
		secret        string
		authorization string
		wantErr       error
		wantCode      string
		wantClaims    bool
	}{
		{name: "Sem segredo o token é repassado", secret: "", authorization: "Bearer opaco"},
		{name: "Token válido", secret: secret, authorization: "Bearer " + valid, wantClaims: true},
		{name: "Cabeçalho ausente", secret: "", authorization: "", wantErr: ErrMissingToken, wantCode: apiErrors.ErrMissingToken},
		{name: "Sem prefixo Bearer", secret: "", authorization: "Basic abc", wantErr: ErrMissingToken, wantCode: apiErrors.ErrMissingToken},
		{name: "Bearer vazio", secret: "", authorization: "Bearer   ", wantErr: ErrMissingToken, wantCode: apiErrors.ErrMissingToken},
		{
			name:          "Assinatura inválida",
			secret:        secret,
			authorization: "Bearer " + signedToken(t, "outro", time.Now().Add(time.Hour)),
			wantErr:       ErrInvalidToken,
			wantCode:      apiErrors.ErrInvalidToken,
		},
		{
			name:          "Token expirado",
			secret:        secret,
			authorization: "Bearer " + signedToken(t, secret, time.Now().Add(-time.Hour)),
			wantErr:       ErrExpiredToken,
			wantCode:      apiErrors.ErrExpiredToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(&config.Config{Auth: config.Auth{Secret: tt.secret}})

			session, err := service.Authenticate(tt.authorization)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, tt.wantCode, authErr.Code)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, session.Token)
			if tt.wantClaims {
				require.NotNil(t, session.Claims)
				assert.Equal(t, "42", session.Claims.UserID)
			} else {
				assert.Nil(t, session.Claims)
			}
		})
	}
}
