package domain

import "time"

type HistoryKind string

const (
	HistoryKindBranch HistoryKind = "branch"
	HistoryKindYear   HistoryKind = "year"
)

const (
	DefaultBranchLabel = "Todas as filiais"
	DefaultYearLabel   = "Todos os anos"
)

// HistoryEntry registra uma seleção concreta de filtro. Nunca é alterada depois de inserida.
type HistoryEntry struct {
	ID        string      `json:"id"`
	Kind      HistoryKind `json:"kind"`
	Value     string      `json:"value"`
	Label     string      `json:"label"`
	Timestamp time.Time   `json:"timestamp"`
}

// FilterLabels são os textos exibidos para os filtros atuais
type FilterLabels struct {
	Branch string `json:"branch"`
	Year   string `json:"year"`
}
