package domain

import "time"

type SeriesMode string

const (
	SeriesActualVsPrior  SeriesMode = "actual-vs-prior"
	SeriesActualVsTarget SeriesMode = "actual-vs-target"
	SeriesGrowth         SeriesMode = "growth"
)

// SeriesModes lista os modos na ordem em que aparecem no painel
var SeriesModes = []SeriesMode{SeriesActualVsPrior, SeriesActualVsTarget, SeriesGrowth}

// SeriesEntry é um mês da série comparativa. Reference é o valor do ano
// anterior (actual-vs-prior e growth) ou a meta (actual-vs-target).
type SeriesEntry struct {
	Month         time.Month `json:"month"`
	Label         string     `json:"label"`
	Actual        float64    `json:"actual"`
	Reference     float64    `json:"reference"`
	GrowthPercent float64    `json:"growth_percent"`
}

type Series struct {
	Mode    SeriesMode    `json:"mode"`
	Entries []SeriesEntry `json:"entries"`
}

// Forecast é a previsão de vendas para um mês do ano selecionado
type Forecast struct {
	Month                 time.Month `json:"month"`
	Label                 string     `json:"label"`
	PredictedValue        float64    `json:"predicted_value"`
	ExpectedGrowthPercent float64    `json:"expected_growth_percent"`
}
