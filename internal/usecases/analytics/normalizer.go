// Package analytics contém as transformações puras do painel de vendas:
// normalização, filtros, agregação mensal, séries comparativas e previsão.
package analytics

import "github.com/Carlos-D04/AtosCapitais2-main/internal/domain"

// NormalizeSales associa cada venda ao CNPJ da filial com o mesmo nome.
// Em caso de nomes repetidos vence a primeira filial da lista. Vendas sem
// filial correspondente ficam com BranchID nulo e seguem no lote.
func NormalizeSales(raw []domain.RawSale, branches []domain.Branch) []domain.Sale {
	idsByName := make(map[string]string, len(branches))
	for _, branch := range branches {
		if _, exists := idsByName[branch.Name]; exists {
			continue
		}
		idsByName[branch.Name] = branch.ID
	}

	sales := make([]domain.Sale, len(raw))
	for i, r := range raw {
		sales[i] = domain.Sale{
			Date:       r.Date,
			Value:      r.Value,
			BranchName: r.BranchName,
		}

		if id, ok := idsByName[r.BranchName]; ok {
			sales[i].BranchID = &id
		}
	}

	return sales
}

// CountUnmatched conta as vendas sem filial associada
func CountUnmatched(sales []domain.Sale) int {
	count := 0
	for _, sale := range sales {
		if sale.BranchID == nil {
			count++
		}
	}
	return count
}
