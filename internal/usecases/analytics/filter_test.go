package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
)

func sampleSales() []domain.Sale {
	return []domain.Sale{
		{Date: time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC), Value: 100, BranchName: "Centro", BranchID: stringPtr("A")},
		{Date: time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC), Value: 150, BranchName: "Centro", BranchID: stringPtr("A")},
		{Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), Value: 80, BranchName: "Norte", BranchID: stringPtr("B")},
		{Date: time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC), Value: 20, BranchName: "Sem cadastro", BranchID: nil},
	}
}

func TestFilterByBranch(t *testing.T) {
	sales := sampleSales()

	tests := []struct {
		name      string
		selection domain.BranchSelection
		expected  float64
		count     int
	}{
		{name: "Todas as filiais mantém tudo, inclusive sem filial", selection: domain.AllBranches(), expected: 350, count: 4},
		{name: "Filial A", selection: domain.SelectBranch("A"), expected: 250, count: 2},
		{name: "Filial B", selection: domain.SelectBranch("B"), expected: 80, count: 1},
		{name: "Filial inexistente retorna vazio", selection: domain.SelectBranch("Z"), expected: 0, count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FilterByBranch(sales, tt.selection)
			assert.Len(t, result, tt.count)
			assert.Equal(t, tt.expected, SumValues(result))
		})
	}
}

func TestFilterByYear(t *testing.T) {
	sales := sampleSales()

	assert.Len(t, FilterByYear(sales, domain.AllYears()), 4)
	assert.Len(t, FilterByYear(sales, domain.SelectYear(2024)), 3)
	assert.Len(t, FilterByYear(sales, domain.SelectYear(2023)), 1)
	assert.Empty(t, FilterByYear(sales, domain.SelectYear(2010)))
}

func TestFilterToPreviousYear(t *testing.T) {
	sales := sampleSales()

	t.Run("Todos os anos não tem ano anterior", func(t *testing.T) {
		result := FilterToPreviousYear(sales, domain.AllYears())
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("Ano concreto retorna o ano anterior", func(t *testing.T) {
		result := FilterToPreviousYear(sales, domain.SelectYear(2024))
		assert.Len(t, result, 1)
		assert.Equal(t, 2023, result[0].Date.Year())
	})
}

func TestFilters_IdempotentesESubconjunto(t *testing.T) {
	sales := sampleSales()
	selections := []domain.Selection{
		{Branch: domain.AllBranches(), Year: domain.AllYears()},
		{Branch: domain.SelectBranch("A"), Year: domain.AllYears()},
		{Branch: domain.AllBranches(), Year: domain.SelectYear(2024)},
		{Branch: domain.SelectBranch("A"), Year: domain.SelectYear(2023)},
	}

	for _, sel := range selections {
		t.Run(sel.Branch.String()+"/"+sel.Year.String(), func(t *testing.T) {
			once := FilterByYear(FilterByBranch(sales, sel.Branch), sel.Year)
			twice := FilterByYear(FilterByBranch(once, sel.Branch), sel.Year)
			assert.Equal(t, once, twice)

			for _, sale := range once {
				assert.Contains(t, sales, sale)
			}
		})
	}
}

func TestFilterToToday(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name     string
		sales    []domain.Sale
		now      time.Time
		expected int
	}{
		{
			name: "Venda do mesmo dia",
			sales: []domain.Sale{
				{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Value: 10},
			},
			now:      time.Date(2024, 3, 10, 18, 30, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name: "Venda de outro dia é ignorada",
			sales: []domain.Sale{
				{Date: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Value: 10},
			},
			now:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name: "Mesmo dia no fuso local",
			sales: []domain.Sale{
				{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, saoPaulo), Value: 10},
			},
			now:      time.Date(2024, 3, 10, 22, 0, 0, 0, saoPaulo),
			expected: 1,
		},
		{
			name: "Mesmo ano em outro dia não conta",
			sales: []domain.Sale{
				{Date: time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC), Value: 10},
			},
			now:      time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, FilterToToday(tt.sales, tt.now), tt.expected)
		})
	}
}

func TestScope_AplicaFilialAntesDoAno(t *testing.T) {
	sales := sampleSales()
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	subsets := Scope(sales, domain.Selection{
		Branch: domain.SelectBranch("B"),
		Year:   domain.SelectYear(2024),
	}, now)

	assert.Len(t, subsets.ByBranch, 1)
	assert.Len(t, subsets.Current, 1)
	assert.Empty(t, subsets.Previous)
	assert.Len(t, subsets.Today, 1)
	assert.Equal(t, 80.0, SumValues(subsets.Today))
}

func TestAvailableYears(t *testing.T) {
	assert.Equal(t, []int{2024, 2023}, AvailableYears(sampleSales()))
	assert.Empty(t, AvailableYears(nil))
}
