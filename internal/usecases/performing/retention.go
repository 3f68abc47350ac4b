package performing

import (
	"github.com/vfg2006/salon-ops-api/internal/domain"
	"github.com/vfg2006/salon-ops-api/pkg/utils"
)

// defaultRetentionRate é a retenção neutra usada quando o profissional não
// tem nenhuma linha semanal dentro da janela. 50 evita que profissionais
// novos comecem no topo ou no fundo do score por falta de histórico.
const defaultRetentionRate = 50.0

// retentionTotals acumula as linhas semanais de retenção de um profissional
type retentionTotals struct {
	RateSum   float64
	WeekCount int
}

// aggregateRetention reduz as linhas semanais de retenção em uma média
// simples por profissional. Semanas que apenas tocam a janela contam
// inteiras: a linha já vem fechada por semana.
func aggregateRetention(rows []*domain.WeeklyPerformance) map[string]*retentionTotals {
	byStaff := make(map[string]*retentionTotals)

	for _, row := range rows {
		if row.ExternalStaffID == "" {
			continue
		}

		totals, ok := byStaff[row.ExternalStaffID]
		if !ok {
			totals = &retentionTotals{}
			byStaff[row.ExternalStaffID] = totals
		}

		totals.RateSum += row.RetentionRate
		totals.WeekCount++
	}

	return byStaff
}

// retentionRateFor devolve a retenção média do profissional na janela ou
// o valor neutro quando não há nenhuma semana registrada
func retentionRateFor(byStaff map[string]*retentionTotals, staffID string) float64 {
	totals, ok := byStaff[staffID]
	if !ok || totals.WeekCount == 0 {
		return defaultRetentionRate
	}

	return utils.RoundWithTwoDecimalPlace(totals.RateSum / float64(totals.WeekCount))
}
