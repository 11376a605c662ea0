package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient"
	"github.com/vfg2006/profile-health-api/internal/usecases/syncing"
	"github.com/vfg2006/profile-health-api/pkg/apiErrors"
	"github.com/vfg2006/profile-health-api/pkg/log"
	"github.com/vfg2006/profile-health-api/pkg/utils"
)

// SyncBusiness dispara um sync completo sob demanda (ação manual do painel)
func SyncBusiness(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		logger.WithField("business_id", id).Info("sync: manual sync requested")

		snapshot, err := service.SyncBusiness(r.Context(), id)
		if err != nil {
			writeSyncError(w, logger, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithFields(log.Fields{
				"business_id": id,
				"error":       err.Error(),
			}).Error("sync: failed to encode snapshot response")
		}
	})
}

// GetSnapshot retorna o snapshot mais recente. O parâmetro opcional
// synced_after (YYYY-MM-DD) faz snapshots mais antigos serem tratados como
// inexistentes, para o painel decidir disparar um novo sync.
func GetSnapshot(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		syncedAfter, err := utils.ParseDate(r.URL.Query().Get("synced_after"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro synced_after inválido", nil)
			return
		}

		snapshot, err := service.GetSnapshot(r.Context(), id)
		if err != nil {
			if pkgerrors.Is(err, syncing.ErrSnapshotNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Snapshot ainda não sincronizado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"business_id": id,
				"error":       err.Error(),
			}).Error("sync: failed to get snapshot")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o snapshot", nil)
			return
		}

		if !syncedAfter.IsZero() && snapshot.SyncedAt.Before(*syncedAfter) {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Snapshot desatualizado", map[string]any{
				"syncedAt": snapshot.SyncedAt,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithFields(log.Fields{
				"business_id": id,
				"error":       err.Error(),
			}).Error("sync: failed to encode snapshot response")
		}
	})
}

// GetScore retorna o breakdown de health score do negócio
func GetScore(service syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		breakdown, err := service.GetScore(r.Context(), id)
		if err != nil {
			if pkgerrors.Is(err, syncing.ErrSnapshotNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrScoreNotFound, "Score ainda não calculado, sincronize o negócio primeiro", nil)
				return
			}

			logger.WithFields(log.Fields{
				"business_id": id,
				"error":       err.Error(),
			}).Error("sync: failed to get score")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o score", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(breakdown); err != nil {
			logger.WithFields(log.Fields{
				"business_id": id,
				"error":       err.Error(),
			}).Error("sync: failed to encode score response")
		}
	})
}

func writeSyncError(w http.ResponseWriter, logger log.Logger, businessID string, err error) {
	switch {
	case pkgerrors.Is(err, syncing.ErrBusinessNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Negócio não encontrado", nil)
	case pkgerrors.Is(err, syncing.ErrBusinessNotLinked):
		apiErrors.WriteError(w, apiErrors.ErrBusinessNotLinked, "Negócio sem conta conectada", nil)
	case pkgerrors.Is(err, gbpclient.ErrReauthorizationRequired):
		apiErrors.WriteError(w, apiErrors.ErrReauthorizationNeeded, "Credencial expirada, reconecte a conta", nil)
	default:
		logger.WithFields(log.Fields{
			"business_id": businessID,
			"error":       err.Error(),
		}).Error("sync: sync failed")
		apiErrors.WriteError(w, apiErrors.ErrSyncFailed, "Erro ao sincronizar o negócio", nil)
	}
}
