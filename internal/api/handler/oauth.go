package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/profile-health-api/internal/usecases/connecting"
	"github.com/vfg2006/profile-health-api/pkg/apiErrors"
	"github.com/vfg2006/profile-health-api/pkg/log"
)

// ConnectAccount devolve a URL de consentimento para o painel redirecionar o
// usuário. O email do usuário viaja no parâmetro state e volta no callback.
func ConnectAccount(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		state := r.URL.Query().Get("email")
		if state == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro email é obrigatório", nil)
			return
		}

		response := map[string]string{
			"authorizationUrl": service.AuthorizationURL(state),
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithField("error", err.Error()).Error("oauth: failed to encode response")
		}
	})
}

// OAuthCallback recebe o código de autorização da plataforma, troca pelo par
// de credenciais e persiste a conta conectada
func OAuthCallback(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		code := r.URL.Query().Get("code")
		if code == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Código de autorização ausente", nil)
			return
		}

		email := r.URL.Query().Get("state")

		account, err := service.HandleCallback(r.Context(), code, email)
		if err != nil {
			logger.WithFields(log.Fields{
				"email": email,
				"error": err.Error(),
			}).Error("oauth: callback failed")
			apiErrors.WriteError(w, apiErrors.ErrOAuthExchangeFailed, "Erro ao concluir a autorização", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(account); err != nil {
			logger.WithField("error", err.Error()).Error("oauth: failed to encode response")
		}
	})
}

// DisconnectAccount remove a conta conectada e desvincula os negócios
func DisconnectAccount(service connecting.Connector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Disconnect(r.Context(), id); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("oauth: failed to disconnect account")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao desconectar a conta", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
