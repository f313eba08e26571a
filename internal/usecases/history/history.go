// Package history mantém o histórico de consultas de filtro de uma sessão do painel.
package history

import (
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/utils"
)

// DefaultCapacity é o número máximo de entradas mantidas no histórico
const DefaultCapacity = 50

type Recorder interface {
	Record(previous, next domain.Selection, branches []domain.Branch) []domain.HistoryEntry
	Entries() []domain.HistoryEntry
}

type Log struct {
	mu       sync.Mutex
	entries  []domain.HistoryEntry
	capacity int
	now      func() time.Time
	newID    func() (string, error)
}

// NewLog cria um histórico vazio. Capacidade não positiva usa DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Log{
		entries:  make([]domain.HistoryEntry, 0, capacity),
		capacity: capacity,
		now:      time.Now,
		newID:    utils.GenerateID,
	}
}

// Record registra os eixos que mudaram para um valor concreto, filial antes de
// ano, no topo do histórico e descarta as entradas mais antigas além da capacidade. Voltar um eixo
// para "todos" não gera entrada.
func (l *Log) Record(previous, next domain.Selection, branches []domain.Branch) []domain.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := l.now()
	added := make([]domain.HistoryEntry, 0, 2)

	if !next.Branch.IsAll() && next.Branch != previous.Branch {
		added = append(added, l.newEntry(domain.HistoryKindBranch, next.Branch.ID(), BranchLabel(next.Branch, branches), timestamp))
	}

	if !next.Year.IsAll() && next.Year != previous.Year {
		added = append(added, l.newEntry(domain.HistoryKindYear, strconv.Itoa(next.Year.Year()), YearLabel(next.Year), timestamp))
	}

	if len(added) == 0 {
		return added
	}

	// o bloco novo entra inteiro no topo, filial acima do ano
	l.entries = slices.Concat(added, l.entries)

	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}

	return added
}

// Entries retorna uma cópia do histórico, do mais recente ao mais antigo
func (l *Log) Entries() []domain.HistoryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]domain.HistoryEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

func (l *Log) newEntry(kind domain.HistoryKind, value, label string, timestamp time.Time) domain.HistoryEntry {
	id, err := l.newID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar id da consulta, usando timestamp")
		id = strconv.FormatInt(timestamp.UnixNano(), 36) + string(kind)
	}

	return domain.HistoryEntry{
		ID:        id,
		Kind:      kind,
		Value:     value,
		Label:     label,
		Timestamp: timestamp,
	}
}

// Labels retorna os textos dos filtros atuais
func Labels(selection domain.Selection, branches []domain.Branch) domain.FilterLabels {
	labels := domain.FilterLabels{
		Branch: domain.DefaultBranchLabel,
		Year:   domain.DefaultYearLabel,
	}

	if !selection.Branch.IsAll() {
		labels.Branch = BranchLabel(selection.Branch, branches)
	}
	if !selection.Year.IsAll() {
		labels.Year = strconv.Itoa(selection.Year.Year())
	}

	return labels
}

// BranchLabel usa o nome da filial e, se ela não estiver na lista, o próprio id
func BranchLabel(selection domain.BranchSelection, branches []domain.Branch) string {
	if selection.IsAll() {
		return domain.DefaultBranchLabel
	}

	for _, branch := range branches {
		if branch.ID == selection.ID() {
			return branch.Name
		}
	}
	return selection.ID()
}

func YearLabel(selection domain.YearSelection) string {
	if selection.IsAll() {
		return domain.DefaultYearLabel
	}
	return "Ano " + strconv.Itoa(selection.Year())
}
