package analytics

import (
	"fmt"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/utils"
)

// TargetUplift é o acréscimo sobre o ano anterior usado como meta (105%)
const TargetUplift = 1.05

// BuildSeries monta a série comparativa de 12 meses para o modo informado
func BuildSeries(current, prior domain.MonthlyBuckets, mode domain.SeriesMode) (domain.Series, error) {
	var entryFor func(actual, previous float64) (reference, growth float64)

	switch mode {
	case domain.SeriesActualVsPrior:
		entryFor = func(_, previous float64) (float64, float64) {
			return previous, 0
		}
	case domain.SeriesActualVsTarget:
		entryFor = func(_, previous float64) (float64, float64) {
			return Target(previous), 0
		}
	case domain.SeriesGrowth:
		entryFor = func(actual, previous float64) (float64, float64) {
			return previous, utils.RoundWithTwoDecimalPlace(GrowthPercent(actual, previous))
		}
	default:
		return domain.Series{}, fmt.Errorf("modo de série desconhecido: %s", mode)
	}

	entries := make([]domain.SeriesEntry, 0, len(domain.Months))
	for _, month := range domain.Months {
		actual := current.Get(month)
		reference, growth := entryFor(actual, prior.Get(month))

		entries = append(entries, domain.SeriesEntry{
			Month:         month,
			Label:         domain.MonthLabel(month),
			Actual:        actual,
			Reference:     reference,
			GrowthPercent: growth,
		})
	}

	return domain.Series{Mode: mode, Entries: entries}, nil
}

// GrowthPercent calcula (atual - anterior) / anterior * 100. Quando o anterior
// é zero ou negativo o crescimento é definido como 0.
func GrowthPercent(actual, previous float64) float64 {
	if previous <= 0 {
		return 0
	}
	return (actual - previous) / previous * 100
}

// Target calcula a meta a partir do ano anterior. Sem base, a meta é zero.
func Target(previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return previous * TargetUplift
}
