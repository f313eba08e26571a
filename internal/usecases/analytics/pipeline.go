package analytics

import (
	"time"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
)

// Derived é o resultado completo de um recálculo. Cada gráfico do painel é
// uma visão sobre este mesmo resultado.
type Derived struct {
	Subsets        Subsets
	Current        domain.MonthlyBuckets
	Prior          domain.MonthlyBuckets
	ActualVsPrior  domain.Series
	ActualVsTarget domain.Series
	Growth         domain.Series
	Forecast       *domain.Forecast
	TotalSales     float64
	TodaySales     float64
}

// Derive recalcula todas as visões a partir das vendas normalizadas.
// Nada é reaproveitado entre chamadas.
func Derive(sales []domain.Sale, selection domain.Selection, forecastMonth time.Month, now time.Time) (Derived, error) {
	subsets := Scope(sales, selection, now)

	derived := Derived{
		Subsets:    subsets,
		Current:    AggregateByMonth(subsets.Current),
		Prior:      AggregateByMonth(subsets.Previous),
		TotalSales: SumValues(subsets.Current),
		TodaySales: SumValues(subsets.Today),
	}

	series := make(map[domain.SeriesMode]domain.Series, len(domain.SeriesModes))
	for _, mode := range domain.SeriesModes {
		s, err := BuildSeries(derived.Current, derived.Prior, mode)
		if err != nil {
			return Derived{}, err
		}
		series[mode] = s
	}
	derived.ActualVsPrior = series[domain.SeriesActualVsPrior]
	derived.ActualVsTarget = series[domain.SeriesActualVsTarget]
	derived.Growth = series[domain.SeriesGrowth]

	forecast, err := EstimateForecast(ForecastInput{
		Growth:   derived.Growth,
		Year:     selection.Year,
		Month:    forecastMonth,
		Previous: subsets.Previous,
	})
	if err != nil {
		return Derived{}, err
	}
	derived.Forecast = forecast

	return derived, nil
}
