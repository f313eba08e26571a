package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
)

func TestAggregateByMonth(t *testing.T) {
	sales := []domain.Sale{
		{Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), Value: 10.1},
		{Date: time.Date(2024, time.January, 31, 23, 59, 0, 0, time.UTC), Value: 20.2},
		{Date: time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC), Value: 5},
		{Date: time.Date(2024, time.July, 4, 0, 0, 0, 0, time.UTC), Value: 0.3},
	}

	buckets := AggregateByMonth(sales)

	assert.Len(t, buckets, 12)
	assert.InDelta(t, 30.3, buckets.Get(time.January), 1e-9)
	assert.InDelta(t, 5, buckets.Get(time.December), 1e-9)
	assert.InDelta(t, 0.3, buckets.Get(time.July), 1e-9)
	assert.Equal(t, 0.0, buckets.Get(time.February))
	assert.InDelta(t, SumValues(sales), buckets.Total(), 1e-9)
}

func TestAggregateByMonth_Vazio(t *testing.T) {
	buckets := AggregateByMonth(nil)
	for _, month := range domain.Months {
		assert.Equal(t, 0.0, buckets.Get(month))
	}
}

func TestGrowthPercent(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		previous float64
		expected float64
	}{
		{name: "Crescimento positivo", actual: 150, previous: 100, expected: 50},
		{name: "Queda", actual: 75, previous: 100, expected: -25},
		{name: "Sem base anterior", actual: 500, previous: 0, expected: 0},
		{name: "Base negativa", actual: 10, previous: -5, expected: 0},
		{name: "Sem vendas no ano atual", actual: 0, previous: 200, expected: -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, GrowthPercent(tt.actual, tt.previous), 1e-9)
		})
	}
}

func TestTarget(t *testing.T) {
	assert.InDelta(t, 105.0, Target(100), 1e-9)
	assert.Equal(t, 0.0, Target(0))
	assert.InDelta(t, 1.05, Target(1), 1e-9)
}

func TestBuildSeries(t *testing.T) {
	var current, prior domain.MonthlyBuckets
	current.Add(time.March, 150)
	prior.Add(time.March, 100)
	current.Add(time.May, 40)
	prior.Add(time.August, 30)

	t.Run("Atual vs ano anterior", func(t *testing.T) {
		series, err := BuildSeries(current, prior, domain.SeriesActualVsPrior)
		require.NoError(t, err)
		require.Len(t, series.Entries, 12)

		march := series.Entries[2]
		assert.Equal(t, time.March, march.Month)
		assert.Equal(t, "Março", march.Label)
		assert.Equal(t, 150.0, march.Actual)
		assert.Equal(t, 100.0, march.Reference)
	})

	t.Run("Atual vs meta", func(t *testing.T) {
		series, err := BuildSeries(current, prior, domain.SeriesActualVsTarget)
		require.NoError(t, err)

		assert.InDelta(t, 105.0, series.Entries[2].Reference, 1e-9)
		assert.Equal(t, 0.0, series.Entries[4].Reference)
		assert.InDelta(t, 31.5, series.Entries[7].Reference, 1e-9)
	})

	t.Run("Crescimento", func(t *testing.T) {
		series, err := BuildSeries(current, prior, domain.SeriesGrowth)
		require.NoError(t, err)

		assert.Equal(t, 50.0, series.Entries[2].GrowthPercent)
		assert.Equal(t, 0.0, series.Entries[4].GrowthPercent)
		assert.Equal(t, -100.0, series.Entries[7].GrowthPercent)
	})

	t.Run("Modo desconhecido", func(t *testing.T) {
		_, err := BuildSeries(current, prior, domain.SeriesMode("pizza"))
		assert.Error(t, err)
	})
}

func TestBuildSeries_OrdemDoCalendario(t *testing.T) {
	for _, mode := range domain.SeriesModes {
		series, err := BuildSeries(domain.MonthlyBuckets{}, domain.MonthlyBuckets{}, mode)
		require.NoError(t, err)

		for i, entry := range series.Entries {
			assert.Equal(t, domain.Months[i], entry.Month)
			assert.Equal(t, 0.0, entry.Actual)
			assert.Equal(t, 0.0, entry.Reference)
			assert.Equal(t, 0.0, entry.GrowthPercent)
		}
	}
}
