package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/salon-ops-api/internal/domain"
	"github.com/vfg2006/salon-ops-api/internal/usecases/performing"
	"github.com/vfg2006/salon-ops-api/pkg/apiErrors"
	"github.com/vfg2006/salon-ops-api/pkg/log"
)

// GetThresholdPolicy retorna a política de alerta da organização, com os
// padrões de configuração quando ainda não houver uma salva
func GetThresholdPolicy(service performing.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		policy, err := service.GetThresholdPolicy(organizationID)
		if err != nil {
			logger.WithFields(log.Fields{
				"organization_id": organizationID,
				"error":           err.Error(),
			}).Error("threshold: failed to load policy")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar política de alerta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(policy); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// SaveThresholdPolicy valida e persiste a política de alerta da organização
func SaveThresholdPolicy(service performing.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		var policy domain.ThresholdPolicy
		if err := json.NewDecoder(r.Body).Decode(&policy); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		// A organização da URL prevalece sobre a do corpo
		policy.OrganizationID = organizationID

		if err := service.SaveThresholdPolicy(&policy); err != nil {
			logger.WithFields(log.Fields{
				"organization_id": organizationID,
				"error":           err.Error(),
			}).Error("threshold: failed to save policy")

			if errors.Is(err, performing.ErrInvalidPolicy) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar política de alerta", nil)
			return
		}

		logger.WithFields(log.Fields{
			"organization_id": organizationID,
		}).Info("threshold: policy saved")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(policy); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
