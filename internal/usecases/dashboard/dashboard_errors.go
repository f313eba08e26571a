package dashboard

import (
	"errors"
	"fmt"
)

// Erros do painel de vendas
var (
	// Erros que bloqueiam o painel inteiro
	ErrMissingToken = errors.New("token de acesso ausente")
	ErrFetchFailure = errors.New("não foi possível carregar os dados de vendas")

	// Erros de validação de seleção
	ErrInvalidSelection = errors.New("seleção inválida")
	ErrUnknownBranch    = errors.New("filial não encontrada")
	ErrUnknownYear      = errors.New("ano sem vendas")
	ErrInvalidMonth     = errors.New("mês inválido")
)

// DashboardError é um erro com o código da API
type DashboardError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *DashboardError) Unwrap() error {
	return e.Err
}

// NewDashboardError cria um novo DashboardError
func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
