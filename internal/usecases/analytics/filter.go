package analytics

import (
	"sort"
	"time"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
)

// Subsets são os recortes derivados de uma seleção
type Subsets struct {
	ByBranch []domain.Sale // escopo da filial, todos os anos
	Current  []domain.Sale // filial + ano selecionado
	Previous []domain.Sale // filial + ano anterior ao selecionado
	Today    []domain.Sale // filial + data de hoje
}

// FilterByBranch mantém as vendas da filial selecionada
func FilterByBranch(sales []domain.Sale, selection domain.BranchSelection) []domain.Sale {
	if selection.IsAll() {
		return sales
	}

	return filter(sales, func(sale domain.Sale) bool {
		return sale.BranchID != nil && *sale.BranchID == selection.ID()
	})
}

// FilterByYear mantém as vendas do ano selecionado
func FilterByYear(sales []domain.Sale, selection domain.YearSelection) []domain.Sale {
	if selection.IsAll() {
		return sales
	}

	return filter(sales, func(sale domain.Sale) bool {
		return sale.Date.Year() == selection.Year()
	})
}

// FilterToPreviousYear mantém as vendas do ano anterior ao selecionado.
// Com "todos os anos" o resultado é vazio.
func FilterToPreviousYear(sales []domain.Sale, selection domain.YearSelection) []domain.Sale {
	previous, ok := selection.Previous()
	if !ok {
		return []domain.Sale{}
	}
	return FilterByYear(sales, previous)
}

// FilterToToday mantém as vendas cuja data coincide com a de now. As duas
// datas são comparadas no fuso de now, ignorando o horário.
func FilterToToday(sales []domain.Sale, now time.Time) []domain.Sale {
	return filter(sales, func(sale domain.Sale) bool {
		return SameDay(sale.Date, now)
	})
}

// SameDay compara apenas a data, no fuso de reference
func SameDay(date, reference time.Time) bool {
	y1, m1, d1 := date.In(reference.Location()).Date()
	y2, m2, d2 := reference.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Scope aplica os filtros na ordem fixa: primeiro a filial, depois o ano
func Scope(sales []domain.Sale, selection domain.Selection, now time.Time) Subsets {
	byBranch := FilterByBranch(sales, selection.Branch)

	return Subsets{
		ByBranch: byBranch,
		Current:  FilterByYear(byBranch, selection.Year),
		Previous: FilterToPreviousYear(byBranch, selection.Year),
		Today:    FilterToToday(byBranch, now),
	}
}

// AvailableYears retorna os anos distintos das vendas, do mais recente ao mais antigo
func AvailableYears(sales []domain.Sale) []int {
	seen := make(map[int]struct{})
	years := make([]int, 0)
	for _, sale := range sales {
		year := sale.Date.Year()
		if _, ok := seen[year]; ok {
			continue
		}
		seen[year] = struct{}{}
		years = append(years, year)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// SumValues soma o valor de todas as vendas
func SumValues(sales []domain.Sale) float64 {
	var total float64
	for _, sale := range sales {
		total += sale.Value
	}
	return total
}

func filter(sales []domain.Sale, keep func(domain.Sale) bool) []domain.Sale {
	result := make([]domain.Sale, 0)
	for _, sale := range sales {
		if keep(sale) {
			result = append(result, sale)
		}
	}
	return result
}
