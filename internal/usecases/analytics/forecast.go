package analytics

import (
	"fmt"
	"time"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
)

// ForecastInput reúne as entradas da previsão de vendas
type ForecastInput struct {
	Growth   domain.Series        // série no modo growth
	Year     domain.YearSelection // precisa ser um ano concreto
	Month    time.Month           // mês a prever
	Previous []domain.Sale        // vendas do ano anterior, já no escopo da filial
}

// EstimateForecast projeta a média de crescimento mensal sobre o valor do mesmo
// mês no ano anterior. Sem ano concreto selecionado não há previsão (nil, nil).
func EstimateForecast(in ForecastInput) (*domain.Forecast, error) {
	if in.Year.IsAll() {
		return nil, nil
	}

	if in.Growth.Mode != domain.SeriesGrowth {
		return nil, fmt.Errorf("previsão exige série de crescimento, recebido: %s", in.Growth.Mode)
	}

	if in.Month < time.January || in.Month > time.December {
		return nil, fmt.Errorf("mês inválido para previsão: %d", in.Month)
	}

	averageGrowth := AverageGrowth(in.Growth)
	priorMonthValue := AggregateByMonth(in.Previous).Get(in.Month)

	return &domain.Forecast{
		Month:                 in.Month,
		Label:                 domain.MonthLabel(in.Month),
		PredictedValue:        priorMonthValue * (1 + averageGrowth/100),
		ExpectedGrowthPercent: averageGrowth,
	}, nil
}

// AverageGrowth é a média aritmética do crescimento dos meses da série.
// Série vazia tem média zero.
func AverageGrowth(growth domain.Series) float64 {
	if len(growth.Entries) == 0 {
		return 0
	}

	var sum float64
	for _, entry := range growth.Entries {
		sum += entry.GrowthPercent
	}
	return sum / float64(len(growth.Entries))
}
