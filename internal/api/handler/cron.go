package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/Carlos-D04/AtosCapitais2-main/internal/scheduler"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/apiErrors"
	"github.com/Carlos-D04/AtosCapitais2-main/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshotRefresh = "snapshot-refresh"
	CronJobTypeAll             = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	SnapshotRefreshService *scheduler.SnapshotRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshotRefresh, CronJobTypeAll:
			if services.SnapshotRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga do painel não disponível", nil)
				return
			}
			services.SnapshotRefreshService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot-refresh, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual solicitada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SnapshotRefreshService != nil {
			status[CronJobTypeSnapshotRefresh] = services.SnapshotRefreshService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
