package dashboard

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/analytics"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/history"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/apiErrors"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/log"
)

type State string

const (
	StateLoading      State = "loading"
	StateReady        State = "ready"
	StateFetchFailure State = "fetch_failure"
)

// Session guarda o lote de vendas de um token e a seleção atual. Todo valor
// derivado é recalculado a cada leitura a partir do lote e da seleção.
type Session struct {
	mu sync.RWMutex

	token   string
	fetcher SalesFetcher
	history history.Recorder
	timeout time.Duration
	now     func() time.Time

	loadOnce sync.Once
	state    State

	// cada busca recebe uma geração ao começar; só grava quem é mais nova que a última gravada
	startedGeneration   uint64
	committedGeneration uint64

	branches  []domain.Branch
	sales     []domain.Sale
	years     []int
	fetchedAt time.Time

	selection     domain.Selection
	forecastMonth time.Month
}

func NewSession(token string, fetcher SalesFetcher, recorder history.Recorder, timeout time.Duration, now func() time.Time) *Session {
	return &Session{
		token:         token,
		fetcher:       fetcher,
		history:       recorder,
		timeout:       timeout,
		now:           now,
		state:         StateLoading,
		forecastMonth: now().Month(),
	}
}

// Load faz a busca inicial uma única vez. Se ela falhar a sessão fica em
// StateFetchFailure até um Reload explícito.
func (s *Session) Load(ctx context.Context) error {
	s.loadOnce.Do(func() {
		_ = s.fetch(ctx)
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateError()
}

// Reload substitui o lote atual por uma nova busca. A seleção é mantida.
func (s *Session) Reload(ctx context.Context) error {
	s.loadOnce.Do(func() {})
	return s.fetch(ctx)
}

func (s *Session) fetch(ctx context.Context) error {
	s.mu.Lock()
	s.startedGeneration++
	generation := s.startedGeneration
	s.mu.Unlock()

	// a busca não é cancelada quando a requisição que a disparou termina
	fetchCtx := context.WithoutCancel(ctx)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(fetchCtx, s.timeout)
		defer cancel()
	}

	snapshot, err := s.fetcher.FetchSales(fetchCtx, s.token)
	if err == nil && snapshot == nil {
		err = ErrFetchFailure
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if generation < s.committedGeneration {
		logrus.WithFields(logrus.Fields{
			"session":    log.SessionFingerprint(s.token),
			"generation": generation,
			"committed":  s.committedGeneration,
		}).Debug("Busca superada por uma mais recente, resultado descartado")
		return s.stateError()
	}
	s.committedGeneration = generation

	if err != nil {
		logrus.WithError(err).WithField("session", log.SessionFingerprint(s.token)).Error("Erro ao buscar vendas do painel")
		s.state = StateFetchFailure
		s.branches, s.sales, s.years = nil, nil, nil
		return s.stateError()
	}

	sales := analytics.NormalizeSales(snapshot.Sales, snapshot.Branches)
	if unmatched := analytics.CountUnmatched(sales); unmatched > 0 {
		logrus.WithFields(logrus.Fields{
			"session":   log.SessionFingerprint(s.token),
			"unmatched": unmatched,
			"total":     len(sales),
		}).Warn("Vendas com filial não encontrada na lista de filiais")
	}

	s.branches = snapshot.Branches
	s.sales = sales
	s.years = analytics.AvailableYears(sales)
	s.fetchedAt = snapshot.FetchedAt
	if s.fetchedAt.IsZero() {
		s.fetchedAt = s.now()
	}
	s.state = StateReady

	logrus.WithFields(logrus.Fields{
		"branches": len(s.branches),
		"sales":    len(s.sales),
		"years":    s.years,
	}).Info("Dados do painel carregados")

	return nil
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// View recalcula o pacote do painel com a seleção atual
func (s *Session) View() (*domain.DashboardView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view()
}

// SetFilters valida e aplica a seleção. Filiais fora da lista e anos sem
// vendas são rejeitados e a seleção anterior é mantida.
func (s *Session) SetFilters(branch, year string) (*domain.DashboardView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stateError(); err != nil {
		return nil, err
	}

	next, err := s.parseSelection(branch, year)
	if err != nil {
		return nil, err
	}

	previous := s.selection
	s.selection = next
	added := s.history.Record(previous, next, s.branches)

	logrus.WithFields(logrus.Fields{
		"branch":  next.Branch.String(),
		"year":    next.Year.String(),
		"history": len(added),
	}).Debug("Filtros do painel alterados")

	return s.view()
}

// SetForecastMonth aceita o número do mês ou o nome em português
func (s *Session) SetForecastMonth(month string) (*domain.DashboardView, error) {
	parsed, err := domain.ParseMonth(month)
	if err != nil {
		return nil, NewDashboardError(ErrInvalidMonth, apiErrors.ErrInvalidMonth, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stateError(); err != nil {
		return nil, err
	}

	s.forecastMonth = parsed
	return s.view()
}

func (s *Session) Series(mode domain.SeriesMode) (*domain.Series, error) {
	if !slices.Contains(domain.SeriesModes, mode) {
		return nil, NewDashboardError(ErrInvalidSelection, apiErrors.ErrInvalidRequest, "modo de série desconhecido: "+string(mode))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.stateError(); err != nil {
		return nil, err
	}

	subsets := analytics.Scope(s.sales, s.selection, s.now())
	series, err := analytics.BuildSeries(
		analytics.AggregateByMonth(subsets.Current),
		analytics.AggregateByMonth(subsets.Previous),
		mode,
	)
	if err != nil {
		return nil, NewDashboardError(ErrInvalidSelection, apiErrors.ErrInvalidRequest, err.Error())
	}
	return &series, nil
}

func (s *Session) History() ([]domain.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.stateError(); err != nil {
		return nil, err
	}
	return s.history.Entries(), nil
}

// view exige o lock da sessão
func (s *Session) view() (*domain.DashboardView, error) {
	if err := s.stateError(); err != nil {
		return nil, err
	}

	now := s.now()
	derived, err := analytics.Derive(s.sales, s.selection, s.forecastMonth, now)
	if err != nil {
		return nil, NewDashboardError(err, apiErrors.ErrInternalServer, "falha ao calcular o painel")
	}

	return &domain.DashboardView{
		TotalSales:     derived.TotalSales,
		TotalBranches:  len(s.branches),
		TodaySales:     derived.TodaySales,
		ActualVsPrior:  derived.ActualVsPrior,
		ActualVsTarget: derived.ActualVsTarget,
		Growth:         derived.Growth,
		Forecast:       derived.Forecast,
		ForecastMonth:  s.forecastMonth,
		AvailableYears: slices.Clone(s.years),
		Branches:       slices.Clone(s.branches),
		History:        s.history.Entries(),
		Filters:        history.Labels(s.selection, s.branches),
		Selection:      s.selection.View(),
		Today:          now.Format(time.DateOnly),
		FetchedAt:      s.fetchedAt,
	}, nil
}

func (s *Session) stateError() error {
	switch s.state {
	case StateReady:
		return nil
	case StateFetchFailure:
		return NewDashboardError(ErrFetchFailure, apiErrors.ErrDataUnavailable, "")
	default:
		return NewDashboardError(ErrFetchFailure, apiErrors.ErrDataUnavailable, "dados ainda não carregados")
	}
}

func (s *Session) parseSelection(branch, year string) (domain.Selection, error) {
	var selection domain.Selection

	branch = strings.TrimSpace(branch)
	if branch != "" && branch != domain.SelectionAll {
		known := slices.ContainsFunc(s.branches, func(b domain.Branch) bool {
			return b.ID == branch
		})
		if !known {
			return selection, NewDashboardError(ErrUnknownBranch, apiErrors.ErrUnknownBranch, branch)
		}
		selection.Branch = domain.SelectBranch(branch)
	}

	year = strings.TrimSpace(year)
	if year != "" && year != domain.SelectionAll {
		parsed, err := strconv.Atoi(year)
		if err != nil {
			return selection, NewDashboardError(ErrInvalidSelection, apiErrors.ErrInvalidFormat, "ano inválido: "+year)
		}
		if !slices.Contains(s.years, parsed) {
			return selection, NewDashboardError(ErrUnknownYear, apiErrors.ErrUnknownYear, year)
		}
		selection.Year = domain.SelectYear(parsed)
	}

	return selection, nil
}
