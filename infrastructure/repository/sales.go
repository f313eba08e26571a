package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/Carlos-D04/AtosCapitais2-main/infrastructure/database/postgres"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
)

const (
	branchesTable = "branches b"
	salesTable    = "sales s"
)

// SalesRepository lê filiais e vendas das tabelas locais. O token não
// particiona os dados; ele só é exigido pela camada HTTP.
type SalesRepository struct {
	conn     postgres.Queryer
	location *time.Location
}

func NewSalesRepository(conn postgres.Queryer, location *time.Location) *SalesRepository {
	if location == nil {
		location = time.UTC
	}

	return &SalesRepository{
		conn:     conn,
		location: location,
	}
}

func (r *SalesRepository) FetchSales(ctx context.Context, _ string) (*domain.SalesSnapshot, error) {
	branches, err := r.listBranches(ctx)
	if err != nil {
		return nil, err
	}

	sales, err := r.listSales(ctx)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"branches": len(branches),
		"sales":    len(sales),
	}).Debug("Vendas carregadas do banco de dados")

	return &domain.SalesSnapshot{
		Branches:  branches,
		Sales:     sales,
		FetchedAt: time.Now().In(r.location),
	}, nil
}

func branchesQuery() (string, []any, error) {
	return squirrel.
		Select("b.cnpj, b.name").
		From(branchesTable).
		OrderBy("b.position ASC", "b.cnpj ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func salesQuery() (string, []any, error) {
	return squirrel.
		Select("to_char(s.sale_date, 'YYYY-MM-DD')", "s.value", "s.branch_name").
		From(salesTable).
		OrderBy("s.sale_date ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *SalesRepository) listBranches(ctx context.Context) ([]domain.Branch, error) {
	query, args, err := branchesQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de filiais: %w", err)
	}
	defer rows.Close()

	branches := make([]domain.Branch, 0)
	for rows.Next() {
		var branch domain.Branch
		if err := rows.Scan(&branch.ID, &branch.Name); err != nil {
			return nil, fmt.Errorf("erro ao escanear filial: %w", err)
		}
		branches = append(branches, branch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar filiais: %w", err)
	}

	return branches, nil
}

func (r *SalesRepository) listSales(ctx context.Context) ([]domain.RawSale, error) {
	query, args, err := salesQuery()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query de vendas: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.RawSale, 0)
	for rows.Next() {
		var (
			date  string
			value decimal.Decimal
			sale  domain.RawSale
		)

		if err := rows.Scan(&date, &value, &sale.BranchName); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		// a coluna é DATE, sem fuso; o dia é interpretado no fuso configurado
		sale.Date, err = time.ParseInLocation(time.DateOnly, date, r.location)
		if err != nil {
			return nil, fmt.Errorf("data de venda inválida %q: %w", date, err)
		}
		sale.Value = value.InexactFloat64()

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar vendas: %w", err)
	}

	return sales, nil
}
