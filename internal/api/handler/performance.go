package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/salon-ops-api/internal/domain"
	"github.com/vfg2006/salon-ops-api/internal/usecases/performing"
	"github.com/vfg2006/salon-ops-api/pkg/apiErrors"
	"github.com/vfg2006/salon-ops-api/pkg/log"
	"github.com/vfg2006/salon-ops-api/pkg/middleware"
	"github.com/vfg2006/salon-ops-api/pkg/utils"
)

// organizationFromRequest extrai o ID da organização da URL e garante que
// usuários não administradores só consultem a própria organização
func organizationFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	organizationID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if organizationID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da organização não fornecido", nil)
		return "", false
	}

	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return "", false
	}

	if userClaims.UserRoleID != middleware.RoleAdmin && userClaims.UserOrganizationID != organizationID {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para consultar esta organização", nil)
		return "", false
	}

	return organizationID, true
}

// performanceFiltersFromRequest monta os filtros de período a partir da query
// string: start_date/end_date explícitos têm prioridade sobre o seletor range
func performanceFiltersFromRequest(r *http.Request) (*performing.Filters, error) {
	filters := &performing.Filters{
		Selector: domain.RangeSelector(r.URL.Query().Get("range")),
	}

	if locationID := r.URL.Query().Get("location_id"); locationID != "" {
		filters.LocationID = &locationID
	}

	startParam := r.URL.Query().Get("start_date")
	endParam := r.URL.Query().Get("end_date")
	if startParam == "" && endParam == "" {
		return filters, nil
	}

	if startParam == "" || endParam == "" {
		return nil, errors.New("start_date e end_date devem ser informados juntos")
	}

	startDate, err := utils.ParseDate(startParam)
	if err != nil {
		return nil, errors.Wrap(err, "start_date inválido")
	}

	endDate, err := utils.ParseDate(endParam)
	if err != nil {
		return nil, errors.Wrap(err, "end_date inválido")
	}

	filters.From = startDate
	filters.To = endDate

	return filters, nil
}

func writePerformanceError(w http.ResponseWriter, logger log.Logger, organizationID string, err error) {
	logger.WithFields(log.Fields{
		"organization_id": organizationID,
		"error":           err.Error(),
	}).Error("performance: request failed")

	switch {
	case errors.Is(err, performing.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, err.Error(), nil)
	case errors.Is(err, performing.ErrInvalidPolicy):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, performing.ErrSourceUnavailable), errors.Is(err, performing.ErrStaffDirectory), errors.Is(err, performing.ErrSnapshotSource):
		apiErrors.WriteError(w, apiErrors.ErrSourceUnavailable, "Fonte de dados de performance indisponível", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular performance", nil)
	}
}

// GetOrganizationPerformance retorna o quadro completo da organização na
// janela pedida: métricas por profissional, totais, capacidade, scorecard
// e tendências
func GetOrganizationPerformance(service performing.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		filters, err := performanceFiltersFromRequest(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"organization_id": organizationID,
				"error":           err.Error(),
			}).Warn("performance: invalid period parameters")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"organization_id": organizationID,
			"range":           string(filters.Selector),
		}).Info("performance: fetching organization performance")

		result, err := service.GetOrganizationPerformance(organizationID, filters)
		if err != nil {
			writePerformanceError(w, logger, organizationID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithFields(log.Fields{
				"organization_id": organizationID,
				"error":           err.Error(),
			}).Error("performance: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetTeamScorecard retorna o score composto da equipe, do pior para o melhor
func GetTeamScorecard(service performing.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		filters, err := performanceFiltersFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		scorecard, err := service.GetTeamScorecard(organizationID, filters)
		if err != nil {
			writePerformanceError(w, logger, organizationID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(scorecard); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCapacityUtilization retorna o resumo de ocupação da janela
func GetCapacityUtilization(service performing.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		filters, err := performanceFiltersFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		capacity, err := service.GetCapacityUtilization(organizationID, filters)
		if err != nil {
			writePerformanceError(w, logger, organizationID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(capacity); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetThresholdAlerts retorna as avaliações de tendência e mínimo da janela
func GetThresholdAlerts(service performing.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		filters, err := performanceFiltersFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		alerts, err := service.GetThresholdAlerts(organizationID, filters)
		if err != nil {
			writePerformanceError(w, logger, organizationID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(alerts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetDailySeries retorna a série diária consolidada pelo job de snapshots,
// sem reprocessar registros brutos
func GetDailySeries(service performing.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		organizationID, ok := organizationFromRequest(w, r)
		if !ok {
			return
		}

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"organization_id": organizationID,
				"start_date":      r.URL.Query().Get("start_date"),
				"error":           err.Error(),
			}).Warn("performance: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"organization_id": organizationID,
				"end_date":        r.URL.Query().Get("end_date"),
				"error":           err.Error(),
			}).Warn("performance: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		if startDate == nil || endDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date e end_date são obrigatórios", nil)
			return
		}

		logger.WithFields(log.Fields{
			"organization_id": organizationID,
			"start_date":      startDate.Format(time.DateOnly),
			"end_date":        endDate.Format(time.DateOnly),
		}).Debug("performance: fetching daily series")

		series, err := service.GetDailySeries(organizationID, *startDate, *endDate)
		if err != nil {
			writePerformanceError(w, logger, organizationID, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(series); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
