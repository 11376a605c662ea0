package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"github.com/vfg2006/profile-health-api/internal/usecases/managing"
	"github.com/vfg2006/profile-health-api/pkg/apiErrors"
	"github.com/vfg2006/profile-health-api/pkg/log"
)

func CreateBusiness(service managing.BusinessManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do negócio é obrigatório", nil)
			return
		}

		business, err := service.Create(r.Context(), &req)
		if err != nil {
			logger.WithField("error", err.Error()).Error("business: failed to create business")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar o negócio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(business); err != nil {
			logger.WithField("error", err.Error()).Error("business: failed to encode response")
		}
	})
}

func ListBusinesses(service managing.BusinessManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		businesses, err := service.List(r.Context())
		if err != nil {
			logger.WithField("error", err.Error()).Error("business: failed to list businesses")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar os negócios", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(businesses); err != nil {
			logger.WithField("error", err.Error()).Error("business: failed to encode response")
		}
	})
}

func GetBusiness(service managing.BusinessManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		business, err := service.Get(r.Context(), id)
		if err != nil {
			if pkgerrors.Is(err, managing.ErrBusinessNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Negócio não encontrado", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("business: failed to get business")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar o negócio", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(business); err != nil {
			logger.WithField("error", err.Error()).Error("business: failed to encode response")
		}
	})
}

func UpdateBusiness(service managing.BusinessManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}
		req.ID = id

		if err := service.Update(r.Context(), &req); err != nil {
			if pkgerrors.Is(err, managing.ErrBusinessNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Negócio não encontrado", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("business: failed to update business")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar o negócio", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// LinkBusinessAccount vincula um negócio existente a uma conta conectada
func LinkBusinessAccount(service managing.BusinessManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req struct {
			AccountID string `json:"accountId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		if req.AccountID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da conta é obrigatório", nil)
			return
		}

		if err := service.Link(r.Context(), id, req.AccountID); err != nil {
			if pkgerrors.Is(err, managing.ErrBusinessNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Negócio não encontrado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"business_id": id,
				"account_id":  req.AccountID,
				"error":       err.Error(),
			}).Error("business: failed to link account")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao vincular a conta", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
