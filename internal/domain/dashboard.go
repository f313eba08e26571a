package domain

import "time"

// DashboardView é o pacote somente leitura entregue à apresentação a cada recálculo
type DashboardView struct {
	TotalSales     float64        `json:"total_sales"`
	TotalBranches  int            `json:"total_branches"`
	TodaySales     float64        `json:"today_sales"`
	ActualVsPrior  Series         `json:"actual_vs_prior"`
	ActualVsTarget Series         `json:"actual_vs_target"`
	Growth         Series         `json:"growth"`
	Forecast       *Forecast      `json:"forecast"`
	ForecastMonth  time.Month     `json:"forecast_month"`
	AvailableYears []int          `json:"available_years"`
	Branches       []Branch       `json:"branches"`
	History        []HistoryEntry `json:"history"`
	Filters        FilterLabels   `json:"filters"`
	Selection      SelectionView  `json:"selection"`
	Today          string         `json:"today"`
	FetchedAt      time.Time      `json:"fetched_at"`
}
