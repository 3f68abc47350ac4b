package performing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

func stringPtr(s string) *string  { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func makeAppointment(staffID string, date time.Time, status domain.EngagementStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              "apt-" + staffID + date.Format("20060102"),
		OrganizationID:  "ORG1",
		ExternalStaffID: stringPtr(staffID),
		Date:            date,
		Price:           50,
		Status:          status,
	}
}

func TestAggregateEngagement(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		appointments []*domain.Appointment
		validate     func(t *testing.T, rollup *engagementRollup)
	}{
		{
			name: "Taxa de reagendamento de 4 em 10 atendimentos elegíveis",
			appointments: func() []*domain.Appointment {
				appointments := make([]*domain.Appointment, 0, 12)
				for i := 0; i < 10; i++ {
					appointment := makeAppointment("S1", day.AddDate(0, 0, i), domain.EngagementStatusCompleted)
					appointment.Rebooked = boolPtr(i < 4)
					appointments = append(appointments, appointment)
				}
				// Cancelado e no-show ficam fora do denominador
				appointments = append(appointments,
					makeAppointment("S1", day, domain.EngagementStatusCancelled),
					makeAppointment("S1", day, domain.EngagementStatusNoShow),
				)
				return appointments
			}(),
			validate: func(t *testing.T, rollup *engagementRollup) {
				totals := rollup.ByStaff["S1"]
				assert.Equal(t, 10, totals.AppointmentCount)
				assert.Equal(t, 4, totals.RebookCount)
				assert.Equal(t, 40.0, totals.RebookRate())
				assert.Equal(t, 10, len(totals.Dates))
			},
		},
		{
			name: "Atendimento sem campo de gorjeta fica fora do denominador da taxa",
			appointments: func() []*domain.Appointment {
				withTip := makeAppointment("S1", day, domain.EngagementStatusCompleted)
				withTip.TipAmount = floatPtr(5)

				zeroTip := makeAppointment("S1", day.AddDate(0, 0, 1), domain.EngagementStatusCompleted)
				zeroTip.TipAmount = floatPtr(0)

				noTipField := makeAppointment("S1", day.AddDate(0, 0, 2), domain.EngagementStatusCompleted)

				return []*domain.Appointment{withTip, zeroTip, noTipField}
			}(),
			validate: func(t *testing.T, rollup *engagementRollup) {
				totals := rollup.ByStaff["S1"]
				assert.Equal(t, 3, totals.AppointmentCount)
				assert.Equal(t, 1, totals.TippedCount)
				assert.Equal(t, 2, totals.TipRecordedCount)
				assert.Equal(t, 5.0, totals.TipTotal)
				// Gorjeta de R$5 sobre dois atendimentos com o campo informado
				assert.Equal(t, 2.5, totals.AverageTip())
				assert.Equal(t, 2, totals.TipRatioCount)
				assert.Equal(t, 5.0, totals.TipPercentOfPrice())
			},
		},
		{
			name: "Razão gorjeta/preço é média por atendimento, sem peso pelo preço",
			appointments: func() []*domain.Appointment {
				expensive := makeAppointment("S1", day, domain.EngagementStatusCompleted)
				expensive.Price = 100
				expensive.TipAmount = floatPtr(10) // 10%

				cheap := makeAppointment("S1", day.AddDate(0, 0, 1), domain.EngagementStatusCompleted)
				cheap.Price = 2
				cheap.TipAmount = floatPtr(1) // 50%

				return []*domain.Appointment{expensive, cheap}
			}(),
			validate: func(t *testing.T, rollup *engagementRollup) {
				totals := rollup.ByStaff["S1"]
				// Média de 10% e 50%, não 11/102
				assert.Equal(t, 30.0, totals.TipPercentOfPrice())
				assert.Equal(t, 5.5, totals.AverageTip())
			},
		},
		{
			name: "Duração ausente ou inválida assume uma hora",
			appointments: func() []*domain.Appointment {
				timed := makeAppointment("S1", day, domain.EngagementStatusCompleted)
				timed.StartTime = stringPtr("09:00")
				timed.EndTime = stringPtr("10:30")

				untimed := makeAppointment("S1", day.AddDate(0, 0, 1), domain.EngagementStatusCompleted)

				inverted := makeAppointment("S1", day.AddDate(0, 0, 2), domain.EngagementStatusCompleted)
				inverted.StartTime = stringPtr("14:00")
				inverted.EndTime = stringPtr("13:00")

				return []*domain.Appointment{timed, untimed, inverted}
			}(),
			validate: func(t *testing.T, rollup *engagementRollup) {
				assert.Equal(t, 3.5, rollup.ByStaff["S1"].BookedHours)
				assert.Equal(t, 3.5, rollup.BookedHours)
			},
		},
		{
			name: "Atendimento sem profissional conta só nos totais da organização",
			appointments: []*domain.Appointment{
				{ID: "apt-x", OrganizationID: "ORG1", Date: day, Price: 80, Status: domain.EngagementStatusCompleted},
				makeAppointment("S1", day, domain.EngagementStatusCompleted),
			},
			validate: func(t *testing.T, rollup *engagementRollup) {
				assert.Equal(t, 2, rollup.AppointmentCount)
				assert.Len(t, rollup.ByStaff, 1)
				assert.Equal(t, 1, rollup.ByStaff["S1"].AppointmentCount)
			},
		},
		{
			name:         "Janela sem atendimentos produz taxas zero, nunca NaN",
			appointments: nil,
			validate: func(t *testing.T, rollup *engagementRollup) {
				assert.Equal(t, 0, rollup.AppointmentCount)
				assert.Empty(t, rollup.ByStaff)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, aggregateEngagement(tt.appointments))
		})
	}
}

func TestEngagementTotalsComDenominadorZero(t *testing.T) {
	totals := &engagementTotals{Dates: map[string]struct{}{}}

	assert.Equal(t, 0.0, totals.RebookRate())
	assert.Equal(t, 0.0, totals.AverageTip())
	assert.Equal(t, 0.0, totals.TippedAppointmentRate())
	assert.Equal(t, 0.0, totals.TipPercentOfPrice())
}
