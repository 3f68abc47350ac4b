package performing

import (
	"sort"

	"github.com/vfg2006/salon-ops-api/internal/domain"
	"github.com/vfg2006/salon-ops-api/pkg/utils"
)

// Pesos do score composto. A soma precisa ser 1.0; qualquer ajuste de peso
// tem que rebalancear os demais.
const (
	weightRebook    = 0.35
	weightTip       = 0.30
	weightRetention = 0.20
	weightRetail    = 0.15
)

// minScoringAppointments é o mínimo de atendimentos elegíveis na janela
// para o profissional receber score. Abaixo disso a amostra vira ruído.
const minScoringAppointments = 5

// excellentTipPercent é o percentual de gorjeta sobre o preço tratado como
// nota máxima na normalização
const excellentTipPercent = 25.0

// clampScore limita um componente normalizado à escala 0-100
func clampScore(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}

	return value
}

// tipScore normaliza a gorjeta percentual para a escala 0-100: o teto de
// excelência vale 100 e o intervalo abaixo dele é linear
func tipScore(tipPercentOfPrice float64) float64 {
	return clampScore(tipPercentOfPrice / excellentTipPercent * 100)
}

// tierFor classifica o score composto em faixas de atenção
func tierFor(composite float64) domain.PerformanceTier {
	switch {
	case composite < 50:
		return domain.TierNeedsAttention
	case composite < 70:
		return domain.TierWatch
	default:
		return domain.TierStrong
	}
}

// buildScorecard calcula o score composto dos profissionais com amostra
// mínima e devolve a lista ordenada do pior para o melhor, que é a ordem
// de triagem do gestor. Empates são desempatados pelo nome para a saída
// ser estável.
func buildScorecard(aggregates []*domain.StaffMetricAggregate) []*domain.CompositeScoreResult {
	scorecard := make([]*domain.CompositeScoreResult, 0, len(aggregates))

	for _, aggregate := range aggregates {
		if aggregate.AppointmentCount < minScoringAppointments {
			continue
		}

		result := &domain.CompositeScoreResult{
			ExternalStaffID:  aggregate.ExternalStaffID,
			DisplayName:      aggregate.DisplayName,
			RebookScore:      clampScore(aggregate.RebookRate),
			TipScore:         tipScore(aggregate.TipPercentOfPrice),
			RetentionScore:   clampScore(aggregate.RetentionRate),
			RetailScore:      clampScore(aggregate.RetailAttachmentRate),
			AppointmentCount: aggregate.AppointmentCount,
		}

		result.Composite = utils.RoundWithTwoDecimalPlace(
			result.RebookScore*weightRebook +
				result.TipScore*weightTip +
				result.RetentionScore*weightRetention +
				result.RetailScore*weightRetail,
		)
		result.Tier = tierFor(result.Composite)

		scorecard = append(scorecard, result)
	}

	sort.Slice(scorecard, func(i, j int) bool {
		if scorecard[i].Composite != scorecard[j].Composite {
			return scorecard[i].Composite < scorecard[j].Composite
		}

		return scorecard[i].DisplayName < scorecard[j].DisplayName
	})

	return scorecard
}
