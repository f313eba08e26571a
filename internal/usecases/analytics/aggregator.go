package analytics

import "github.com/Carlos-D04/AtosCapitais2-main/internal/domain"

// AggregateByMonth soma o valor das vendas por mês do calendário.
// O mês vem de time.Month da data da venda, nunca de um nome formatado.
func AggregateByMonth(sales []domain.Sale) domain.MonthlyBuckets {
	var buckets domain.MonthlyBuckets
	for _, sale := range sales {
		buckets.Add(sale.Date.Month(), sale.Value)
	}
	return buckets
}
