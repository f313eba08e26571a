package salesapiclient

import (
	"net/http"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
)

type Client interface {
	GetDashboardData(params DashboardDataParams) (DashboardDataResponse, error)
}

type SalesAPIClient struct {
	httpClient *http.Client
	config     *config.SalesAPI
}

// NewClient cria o cliente HTTP da API de vendas. O prazo de cada chamada
// vem do contexto recebido em DashboardDataParams.
func NewClient(cfg *config.Config) Client {
	return &SalesAPIClient{
		httpClient: &http.Client{},
		config:     &cfg.SalesAPI,
	}
}
