package salesapi

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	salesapidomain "github.com/Carlos-D04/AtosCapitais2-main/infrastructure/integrator/salesapi/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/infrastructure/integrator/salesapi/salesapiclient"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/utils"
)

// SalesAPIService busca o painel na API HTTP de vendas
type SalesAPIService struct {
	location *time.Location
	Client   salesapiclient.Client
}

func New(cfg *config.Config, client salesapiclient.Client) *SalesAPIService {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	return &SalesAPIService{
		location: location,
		Client:   client,
	}
}

func (s *SalesAPIService) FetchSales(ctx context.Context, token string) (*domain.SalesSnapshot, error) {
	resp, err := s.Client.GetDashboardData(salesapiclient.DashboardDataParams{
		Ctx:   ctx,
		Token: token,
	})
	if err != nil {
		return nil, err
	}

	return ToSnapshot(resp, s.location, time.Now().In(s.location)), nil
}

// ToSnapshot converte a resposta da API. Vendas com data ilegível são
// descartadas com aviso; o restante do lote segue.
func ToSnapshot(resp salesapidomain.DashboardResponse, location *time.Location, fetchedAt time.Time) *domain.SalesSnapshot {
	branches := make([]domain.Branch, 0, len(resp.Branches))
	for _, b := range resp.Branches {
		branches = append(branches, domain.Branch{ID: b.CNPJ, Name: b.Name})
	}

	sales := make([]domain.RawSale, 0, len(resp.Sales))
	skipped := 0
	for _, sale := range resp.Sales {
		date, err := utils.ParseSaleDate(sale.Date, location)
		if err != nil {
			skipped++
			logrus.WithFields(logrus.Fields{
				"date":   sale.Date,
				"branch": sale.BranchName,
			}).Warn("Venda com data inválida ignorada")
			continue
		}

		sales = append(sales, domain.RawSale{
			Date:       date,
			Value:      sale.Value.InexactFloat64(),
			BranchName: sale.BranchName,
		})
	}

	if skipped > 0 {
		logrus.WithField("skipped", skipped).Warn("Vendas ignoradas na conversão da API de vendas")
	}

	return &domain.SalesSnapshot{
		Branches:  branches,
		Sales:     sales,
		FetchedAt: fetchedAt,
	}
}
