package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações lidas do token de acesso quando a verificação está habilitada
type Claims struct {
	UserID    string `json:"user_id,omitempty"`
	UserEmail string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Session identifica quem fez a requisição. Token é o valor opaco repassado à fonte de dados.
type Session struct {
	Token  string
	Claims *Claims
}
