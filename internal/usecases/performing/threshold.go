package performing

import (
	"github.com/vfg2006/salon-ops-api/internal/domain"
	"github.com/vfg2006/salon-ops-api/pkg/utils"
)

// Nomes das métricas avaliadas contra o período anterior
const (
	MetricTotalRevenue     = "total_revenue"
	MetricAppointmentCount = "appointment_count"
	MetricAverageTicket    = "average_ticket"
)

// minDaysForAlert é o mínimo de dias com dados para o alerta de mínimo
// disparar. Janelas quase vazias geram comparações sem sentido.
const minDaysForAlert = 7

// evaluateTrend compara o valor atual de uma métrica com o período anterior
func evaluateTrend(metric string, current, prior float64, daysWithData int) *domain.ThresholdEvaluation {
	return &domain.ThresholdEvaluation{
		Metric:        metric,
		CurrentValue:  utils.RoundWithTwoDecimalPlace(current),
		PriorValue:    utils.RoundWithTwoDecimalPlace(prior),
		PercentChange: utils.PercentChange(current, prior),
		DaysWithData:  daysWithData,
	}
}

// applyThresholdPolicy marca a avaliação de receita contra o mínimo da
// política da organização. O mínimo é rateado pelos dias com dados dentro
// do período de avaliação, limitado ao mínimo cheio, para janelas parciais
// não dispararem alerta à toa; janelas com menos de uma semana de dados
// nunca disparam.
func applyThresholdPolicy(evaluation *domain.ThresholdEvaluation, policy *domain.ThresholdPolicy) {
	if policy == nil || !policy.AlertsEnabled || policy.EvaluationPeriodDays <= 0 {
		return
	}

	if evaluation.DaysWithData < minDaysForAlert {
		return
	}

	ratio := float64(evaluation.DaysWithData) / float64(policy.EvaluationPeriodDays)
	if ratio > 1 {
		ratio = 1
	}

	evaluation.ProratedMinimum = utils.RoundWithTwoDecimalPlace(policy.MinimumRevenue * ratio)
	evaluation.BelowMinimum = evaluation.CurrentValue < evaluation.ProratedMinimum
}
