package domain

import "time"

// RawSale é a venda como chega da fonte de dados, antes da normalização
type RawSale struct {
	Date       time.Time
	Value      float64
	BranchName string
}

// Sale é a venda normalizada. BranchID nulo indica que o nome da filial
// não corresponde a nenhuma filial conhecida.
type Sale struct {
	Date       time.Time `json:"date"`
	Value      float64   `json:"value"`
	BranchName string    `json:"branch_name"`
	BranchID   *string   `json:"branch_id"`
}

// Branch representa uma filial. O ID é o CNPJ.
type Branch struct {
	ID   string `json:"cnpj"`
	Name string `json:"name"`
}

// SalesSnapshot é o resultado de uma busca na fonte de dados
type SalesSnapshot struct {
	Branches  []Branch
	Sales     []RawSale
	FetchedAt time.Time
}
