package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
)

// SessionReloader recarrega os dados de todas as sessões abertas do painel
type SessionReloader interface {
	ReloadAll(ctx context.Context) (refreshed int, failed int)
}

// SnapshotRefreshConfig representa a configuração da recarga agendada
type SnapshotRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// SnapshotRefreshService recarrega periodicamente os dados das sessões, para
// que "venda do dia" acompanhe a virada do dia sem depender do usuário
type SnapshotRefreshService struct {
	scheduler *gocron.Scheduler
	config    SnapshotRefreshConfig
	reloader  SessionReloader

	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRefreshed       int
	lastFailed          int
}

func NewSnapshotRefreshService(reloader SessionReloader, appConfig *config.Config) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule: appConfig.SnapshotRefresh.CronSchedule,
		SyncEnabled:  appConfig.SnapshotRefresh.Enabled,
	}

	location := appConfig.Location
	if location == nil {
		location = time.Local
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"sync_enabled":  refreshConfig.SyncEnabled,
		"timezone":      location.String(),
	}).Info("Configuração da recarga agendada do painel carregada")

	return &SnapshotRefreshService{
		scheduler: gocron.NewScheduler(location),
		config:    refreshConfig,
		reloader:  reloader,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do painel desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do painel")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refreshAll()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do painel: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do painel")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *SnapshotRefreshService) refreshAll() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do painel já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()
	refreshed, failed := s.reloader.ReloadAll(s.ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastRefreshed = refreshed
	s.lastFailed = failed
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"refreshed": refreshed,
		"failed":    failed,
	}).Info("Recarga do painel concluída")
}

// TriggerManualSync inicia manualmente uma recarga de todas as sessões
func (s *SnapshotRefreshService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do painel já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do painel")
	go s.refreshAll()
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_refreshed":         s.lastRefreshed,
		"last_failed":            s.lastFailed,
	}
}
