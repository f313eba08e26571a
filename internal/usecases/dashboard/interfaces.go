package dashboard

import (
	"context"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// SalesFetcher busca filiais e vendas visíveis para o token informado
type SalesFetcher interface {
	FetchSales(ctx context.Context, token string) (*domain.SalesSnapshot, error)
}

// Dashboarder é o painel de vendas por sessão (um por token de acesso)
type Dashboarder interface {
	// View recalcula o pacote completo do painel com a seleção atual
	View(ctx context.Context, token string) (*domain.DashboardView, error)

	// SetFilters troca a seleção de filial e ano ("all" ou vazio remove o filtro)
	SetFilters(ctx context.Context, token string, branch, year string) (*domain.DashboardView, error)

	// SetForecastMonth troca o mês usado na previsão
	SetForecastMonth(ctx context.Context, token string, month string) (*domain.DashboardView, error)

	History(ctx context.Context, token string) ([]domain.HistoryEntry, error)

	// Series retorna uma única série comparativa
	Series(ctx context.Context, token string, mode string) (*domain.Series, error)

	// Reload busca novamente os dados da sessão, substituindo o lote anterior
	Reload(ctx context.Context, token string) (*domain.DashboardView, error)

	// ReloadAll recarrega as sessões prontas; sessões em falha ficam como estão
	ReloadAll(ctx context.Context) (refreshed int, failed int)
}
