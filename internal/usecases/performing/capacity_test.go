package performing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-ops-api/internal/config"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

func testCapacityConfig() config.Capacity {
	return config.Capacity{
		DefaultDailyHours:      8.0,
		DefaultStylistCapacity: 4,
	}
}

func TestAvailableHours(t *testing.T) {
	// Segunda a quarta: 3 dias de calendário
	window := &domain.PeriodWindow{
		StartDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name      string
		locations []*domain.Location
		expected  float64
	}{
		{
			name: "Unidade sem cadastro de horário cai nos padrões",
			locations: []*domain.Location{
				{ID: "L1", Active: true},
			},
			expected: 3 * 8 * 4,
		},
		{
			name: "Horário estruturado e capacidade própria",
			locations: []*domain.Location{
				{
					ID:     "L1",
					Active: true,
					WeekdayHours: map[time.Weekday]domain.DayHours{
						time.Monday:    {Open: "09:00", Close: "19:00"},
						time.Tuesday:   {Closed: true},
						time.Wednesday: {Open: "10:00", Close: "16:00"},
					},
					StylistCapacity: intPtr(2),
				},
			},
			expected: (10 + 0 + 6) * 2,
		},
		{
			name: "Unidade inativa não contribui",
			locations: []*domain.Location{
				{ID: "L1", Active: false},
			},
			expected: 0,
		},
		{
			name:      "Sem unidades a capacidade é zero",
			locations: nil,
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, availableHours(tt.locations, window, testCapacityConfig()))
		})
	}
}

func TestBuildCapacitySummary(t *testing.T) {
	window := &domain.PeriodWindow{
		StartDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}
	locations := []*domain.Location{{ID: "L1", Active: true}} // 1 dia * 8h * 4 = 32h

	tests := []struct {
		name          string
		bookedHours   float64
		bookedRevenue float64
		validate      func(t *testing.T, summary *domain.CapacitySummary)
	}{
		{
			name:          "Utilização parcial com receita do gap",
			bookedHours:   16,
			bookedRevenue: 1600, // R$100 por hora ocupada
			validate: func(t *testing.T, summary *domain.CapacitySummary) {
				assert.Equal(t, 32.0, summary.AvailableHours)
				assert.Equal(t, 16.0, summary.BookedHours)
				assert.Equal(t, 50.0, summary.UtilizationRate)
				assert.Equal(t, 16.0, summary.GapHours)
				assert.Equal(t, 1600.0, summary.GapRevenue)
			},
		},
		{
			name:          "Overbooking nunca produz gap negativo",
			bookedHours:   40,
			bookedRevenue: 4000,
			validate: func(t *testing.T, summary *domain.CapacitySummary) {
				assert.Equal(t, 125.0, summary.UtilizationRate)
				assert.Equal(t, 0.0, summary.GapHours)
				assert.Equal(t, 0.0, summary.GapRevenue)
			},
		},
		{
			name:          "Sem horas ocupadas o gap vale a capacidade inteira e a receita do gap é zero",
			bookedHours:   0,
			bookedRevenue: 0,
			validate: func(t *testing.T, summary *domain.CapacitySummary) {
				assert.Equal(t, 0.0, summary.UtilizationRate)
				assert.Equal(t, 32.0, summary.GapHours)
				assert.Equal(t, 0.0, summary.GapRevenue)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, buildCapacitySummary(locations, window, tt.bookedHours, tt.bookedRevenue, testCapacityConfig()))
		})
	}
}

func TestBuildCapacitySummarySemUnidades(t *testing.T) {
	window := &domain.PeriodWindow{
		StartDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	summary := buildCapacitySummary(nil, window, 10, 500, testCapacityConfig())

	// Capacidade zero não explode: utilização zero e gap zero
	assert.Equal(t, 0.0, summary.AvailableHours)
	assert.Equal(t, 0.0, summary.UtilizationRate)
	assert.Equal(t, 0.0, summary.GapHours)
	assert.Equal(t, 0.0, summary.GapRevenue)
}
