package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profile-health-api/internal/scheduler"
	"github.com/vfg2006/profile-health-api/pkg/apiErrors"
)

// Tipos de cron job executáveis manualmente
const (
	CronJobTypeProfileSync = "profile-sync"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ProfileSyncService *scheduler.ProfileSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeProfileSync:
			if services.ProfileSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de re-sincronização não disponível", nil)
				return
			}
			services.ProfileSyncService.RunNow()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job desconhecido", nil)
			return
		}

		logrus.WithField("cron_type", cronType).Info("cron: manual run triggered")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{"status": "started", "type": cronType})
	}
}

// GetCronStatus reporta o estado dos agendadores
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.ProfileSyncService != nil {
			status[CronJobTypeProfileSync] = services.ProfileSyncService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
