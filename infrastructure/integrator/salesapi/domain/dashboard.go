package domain

import "github.com/shopspring/decimal"

// DashboardResponse é o corpo retornado pela API de vendas
type DashboardResponse struct {
	Branches []Branch `json:"branchs"`
	Sales    []Sale   `json:"sales"`
}

type Branch struct {
	CNPJ string `json:"cnpj"`
	Name string `json:"name"`
}

// Sale.Value pode chegar como número ou como string ("1234.50")
type Sale struct {
	Date       string          `json:"date"`
	Value      decimal.Decimal `json:"value"`
	BranchName string          `json:"branche_name"`
}
