package authenticating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/apiErrors"
)

// Authenticator transforma o cabeçalho Authorization em uma sessão
type Authenticator interface {
	Authenticate(authorization string) (*domain.Session, error)
}

type Service struct {
	secret []byte
}

// NewService cria o autenticador. Sem AUTH_SECRET o token é repassado sem
// verificação local e só a fonte de dados decide se ele vale.
func NewService(cfg *config.Config) Authenticator {
	if cfg.Auth.Secret == "" {
		logrus.Warn("AUTH_SECRET não configurado, tokens não serão verificados localmente")
	}

	return &Service{secret: []byte(cfg.Auth.Secret)}
}

func (s *Service) Authenticate(authorization string) (*domain.Session, error) {
	token, err := bearerToken(authorization)
	if err != nil {
		return nil, err
	}

	session := &domain.Session{Token: token}
	if len(s.secret) == 0 {
		return session, nil
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	session.Claims = claims

	return session, nil
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func bearerToken(authorization string) (string, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return "", NewAuthError(ErrMissingToken, apiErrors.ErrMissingToken, "cabeçalho Authorization ausente")
	}

	token, found := strings.CutPrefix(authorization, "Bearer ")
	token = strings.TrimSpace(token)
	if !found || token == "" {
		return "", NewAuthError(ErrMissingToken, apiErrors.ErrMissingToken, "token Bearer ausente")
	}

	return token, nil
}
