package performing

import (
	"github.com/vfg2006/salon-ops-api/internal/domain"
	"github.com/vfg2006/salon-ops-api/pkg/utils"
)

// engagementTotals acumula os atendimentos de um profissional na janela
type engagementTotals struct {
	AppointmentCount int
	RebookCount      int
	TipTotal         float64
	TippedCount      int
	TipRecordedCount int     // atendimentos com o campo de gorjeta informado
	TipRatioSum      float64 // soma das razões gorjeta/preço por atendimento, em percentual
	TipRatioCount    int     // atendimentos com preço e gorjeta informados
	BookedHours      float64
	Dates            map[string]struct{}
}

// engagementRollup é o resultado da redução dos atendimentos do período
type engagementRollup struct {
	ByStaff          map[string]*engagementTotals
	AppointmentCount int
	BookedHours      float64
	Dates            map[string]struct{}
}

// aggregateEngagement reduz os atendimentos brutos em contagens de
// reagendamento, gorjeta e horas ocupadas por profissional. Atendimentos
// cancelados e no-show saem de todos os denominadores.
func aggregateEngagement(appointments []*domain.Appointment) *engagementRollup {
	rollup := &engagementRollup{
		ByStaff: make(map[string]*engagementTotals),
		Dates:   make(map[string]struct{}),
	}

	for _, appointment := range appointments {
		if !appointment.Status.Eligible() {
			continue
		}

		rollup.AppointmentCount++
		rollup.BookedHours += appointment.DurationHours()
		if !appointment.Date.IsZero() {
			rollup.Dates[appointment.Date.Format("2006-01-02")] = struct{}{}
		}

		if appointment.ExternalStaffID == nil || *appointment.ExternalStaffID == "" {
			continue
		}

		staffID := *appointment.ExternalStaffID
		totals, ok := rollup.ByStaff[staffID]
		if !ok {
			totals = &engagementTotals{Dates: make(map[string]struct{})}
			rollup.ByStaff[staffID] = totals
		}

		totals.AppointmentCount++
		totals.BookedHours += appointment.DurationHours()
		if !appointment.Date.IsZero() {
			totals.Dates[appointment.Date.Format("2006-01-02")] = struct{}{}
		}

		if appointment.Rebooked != nil && *appointment.Rebooked {
			totals.RebookCount++
		}

		// Gorjeta só conta quando foi informada pelo PDV. Atendimento sem o
		// campo não entra no denominador da taxa de gorjeta.
		if appointment.TipAmount != nil {
			totals.TipRecordedCount++
			totals.TipTotal += *appointment.TipAmount
			if *appointment.TipAmount > 0 {
				totals.TippedCount++
			}
			// A razão gorjeta/preço é calculada por atendimento e depois
			// tirada a média. Atendimento sem preço fica fora dessa média,
			// não entra como zero.
			if appointment.Price > 0 {
				totals.TipRatioSum += *appointment.TipAmount / appointment.Price * 100
				totals.TipRatioCount++
			}
		}
	}

	return rollup
}

// RebookRate calcula o percentual de atendimentos elegíveis que saíram
// com um novo horário marcado
func (t *engagementTotals) RebookRate() float64 {
	return utils.Rate(t.RebookCount, t.AppointmentCount)
}

// AverageTip calcula a gorjeta média por atendimento, considerando os
// atendimentos em que o PDV informou o campo de gorjeta (inclusive zero)
func (t *engagementTotals) AverageTip() float64 {
	return utils.Ratio(t.TipTotal, float64(t.TipRecordedCount))
}

// TippedAppointmentRate calcula o percentual de atendimentos que
// receberam alguma gorjeta
func (t *engagementTotals) TippedAppointmentRate() float64 {
	return utils.Rate(t.TippedCount, t.AppointmentCount)
}

// TipPercentOfPrice calcula a média das razões gorjeta/preço por
// atendimento, considerando apenas atendimentos com preço e gorjeta
// informados. A média é das razões, não dos totais, para que um
// atendimento caro não pese mais que um barato.
func (t *engagementTotals) TipPercentOfPrice() float64 {
	return utils.RoundWithTwoDecimalPlace(utils.Ratio(t.TipRatioSum, float64(t.TipRatioCount)))
}
