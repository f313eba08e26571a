package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/config"
	"github.com/Carlos-D04/AtosCapitais2-main/internal/usecases/dashboard/mocks"
)

func testConfig(enabled bool) *config.Config {
	return &config.Config{
		SnapshotRefresh: config.SnapshotRefresh{CronSchedule: "5 0 * * *", Enabled: enabled},
		Location:        time.UTC,
	}
}

func TestSnapshotRefreshService_RefreshAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	reloader := mocks.NewMockDashboarder(ctrl)
	reloader.EXPECT().ReloadAll(gomock.Any()).Return(3, 1)

	service := NewSnapshotRefreshService(reloader, testConfig(true))
	service.refreshAll()

	status := service.GetStatus()
	assert.Equal(t, 3, status["last_refreshed"])
	assert.Equal(t, 1, status["last_failed"])
	assert.Equal(t, false, status["sync_running"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestSnapshotRefreshService_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	reloader := mocks.NewMockDashboarder(ctrl)

	service := NewSnapshotRefreshService(reloader, testConfig(true))
	service.syncRunning = true

	// nenhuma chamada ao ReloadAll é esperada
	service.refreshAll()
	service.TriggerManualSync()
}

func TestSnapshotRefreshService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	reloader := mocks.NewMockDashboarder(ctrl)

	done := make(chan struct{})
	reloader.EXPECT().ReloadAll(gomock.Any()).DoAndReturn(func(context.Context) (int, int) {
		close(done)
		return 1, 0
	})

	service := NewSnapshotRefreshService(reloader, testConfig(true))
	service.TriggerManualSync()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("recarga manual não executada")
	}

	require.Eventually(t, func() bool {
		return service.GetStatus()["last_refreshed"] == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSnapshotRefreshService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewSnapshotRefreshService(mocks.NewMockDashboarder(ctrl), testConfig(false))

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestSnapshotRefreshService_StartCronInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig(true)
	cfg.SnapshotRefresh.CronSchedule = "toda hora"

	service := NewSnapshotRefreshService(mocks.NewMockDashboarder(ctrl), cfg)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
