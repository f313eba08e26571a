package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/domain"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/history"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/apiErrors"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/log"
)

// DefaultMaxSessions é usado quando a configuração não limita as sessões
const DefaultMaxSessions = 1000

type Service struct {
	fetcher         SalesFetcher
	timeout         time.Duration
	historyCapacity int
	maxSessions     int
	idleTTL         time.Duration
	now             func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	session    *Session
	lastAccess time.Time
}

func NewService(fetcher SalesFetcher, cfg *config.Config) Dashboarder {
	return newService(fetcher, cfg, time.Now)
}

func newService(fetcher SalesFetcher, cfg *config.Config, clock func() time.Time) *Service {
	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	maxSessions := cfg.Dashboard.MaxSessions
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}

	return &Service{
		fetcher:         fetcher,
		timeout:         cfg.SalesAPI.Timeout,
		historyCapacity: cfg.Dashboard.HistoryCapacity,
		maxSessions:     maxSessions,
		idleTTL:         cfg.Dashboard.SessionIdleTTL,
		now: func() time.Time {
			return clock().In(location)
		},
		sessions: make(map[string]*sessionEntry),
	}
}

// session retorna a sessão do token, carregando os dados na primeira chamada
func (s *Service) session(ctx context.Context, token string) (*Session, error) {
	session, err := s.lookup(token)
	if err != nil {
		return nil, err
	}

	if err := session.Load(ctx); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) lookup(token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, NewDashboardError(ErrMissingToken, apiErrors.ErrMissingToken, "")
	}

	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.sessions[token]
	if !exists {
		s.evictLocked(now)

		entry = &sessionEntry{
			session: NewSession(token, s.fetcher, history.NewLog(s.historyCapacity), s.timeout, s.now),
		}
		s.sessions[token] = entry

		logrus.WithFields(logrus.Fields{
			"session":  log.SessionFingerprint(token),
			"sessions": len(s.sessions),
		}).Debug("Nova sessão do painel criada")
	}
	entry.lastAccess = now

	return entry.session, nil
}

// evictLocked remove as sessões ociosas e, se ainda não houver vaga, a de
// acesso mais antigo. Exige s.mu.
func (s *Service) evictLocked(now time.Time) {
	evicted := 0

	if s.idleTTL > 0 {
		for token, entry := range s.sessions {
			if now.Sub(entry.lastAccess) > s.idleTTL {
				delete(s.sessions, token)
				evicted++
			}
		}
	}

	for len(s.sessions) >= s.maxSessions {
		var oldestToken string
		var oldest time.Time
		for token, entry := range s.sessions {
			if oldestToken == "" || entry.lastAccess.Before(oldest) {
				oldestToken, oldest = token, entry.lastAccess
			}
		}
		delete(s.sessions, oldestToken)
		evicted++
	}

	if evicted > 0 {
		logrus.WithFields(logrus.Fields{
			"evicted":  evicted,
			"sessions": len(s.sessions),
		}).Debug("Sessões do painel descartadas")
	}
}

func (s *Service) View(ctx context.Context, token string) (*domain.DashboardView, error) {
	session, err := s.session(ctx, token)
	if err != nil {
		return nil, err
	}
	return session.View()
}

func (s *Service) SetFilters(ctx context.Context, token string, branch, year string) (*domain.DashboardView, error) {
	session, err := s.session(ctx, token)
	if err != nil {
		return nil, err
	}
	return session.SetFilters(branch, year)
}

func (s *Service) SetForecastMonth(ctx context.Context, token string, month string) (*domain.DashboardView, error) {
	session, err := s.session(ctx, token)
	if err != nil {
		return nil, err
	}
	return session.SetForecastMonth(month)
}

func (s *Service) History(ctx context.Context, token string) ([]domain.HistoryEntry, error) {
	session, err := s.session(ctx, token)
	if err != nil {
		return nil, err
	}
	return session.History()
}

func (s *Service) Series(ctx context.Context, token string, mode string) (*domain.Series, error) {
	session, err := s.session(ctx, token)
	if err != nil {
		return nil, err
	}
	return session.Series(domain.SeriesMode(mode))
}

// Reload é o único caminho para sair de uma falha de carregamento
func (s *Service) Reload(ctx context.Context, token string) (*domain.DashboardView, error) {
	session, err := s.lookup(token)
	if err != nil {
		return nil, err
	}

	if err := session.Reload(ctx); err != nil {
		return nil, err
	}
	return session.View()
}

// ReloadAll recarrega as sessões prontas. Sessões em falha só saem dela por um
// Reload explícito do próprio usuário.
func (s *Service) ReloadAll(ctx context.Context) (int, int) {
	s.mu.Lock()
	s.evictLocked(s.now())
	sessions := make([]*Session, 0, len(s.sessions))
	for _, entry := range s.sessions {
		sessions = append(sessions, entry.session)
	}
	s.mu.Unlock()

	refreshed, failed, skipped := 0, 0, 0
	for _, session := range sessions {
		if ctx.Err() != nil {
			break
		}

		if session.State() != StateReady {
			skipped++
			continue
		}

		if err := session.Reload(ctx); err != nil {
			failed++
			continue
		}
		refreshed++
	}

	logrus.WithFields(logrus.Fields{
		"refreshed": refreshed,
		"failed":    failed,
		"skipped":   skipped,
	}).Info("Sessões do painel recarregadas")

	return refreshed, failed
}
