package performing

import (
	"github.com/vfg2006/salon-ops-api/internal/config"
	"github.com/vfg2006/salon-ops-api/internal/domain"
	"github.com/vfg2006/salon-ops-api/pkg/utils"
)

// availableHours calcula as horas vendáveis das unidades dentro da janela:
// para cada dia, horas de funcionamento vezes o número de cadeiras. Unidades
// sem cadastro de horário ou capacidade caem nos padrões de configuração.
func availableHours(locations []*domain.Location, window *domain.PeriodWindow, cfg config.Capacity) float64 {
	var total float64

	for _, location := range locations {
		if !location.Active {
			continue
		}

		stylists := cfg.DefaultStylistCapacity
		if location.StylistCapacity != nil && *location.StylistCapacity > 0 {
			stylists = *location.StylistCapacity
		}

		for _, day := range window.EachDay() {
			total += location.OperatingHours(day.Weekday(), cfg.DefaultDailyHours) * float64(stylists)
		}
	}

	return total
}

// buildCapacitySummary resume a utilização da capacidade instalada na
// janela. O gap nunca é negativo: overbooking aparece como utilização acima
// de 100%, não como receita perdida negativa.
func buildCapacitySummary(locations []*domain.Location, window *domain.PeriodWindow, bookedHours float64, bookedRevenue float64, cfg config.Capacity) *domain.CapacitySummary {
	available := availableHours(locations, window, cfg)

	gapHours := available - bookedHours
	if gapHours < 0 {
		gapHours = 0
	}

	revenuePerHour := utils.Ratio(bookedRevenue, bookedHours)

	return &domain.CapacitySummary{
		AvailableHours:  utils.RoundWithTwoDecimalPlace(available),
		BookedHours:     utils.RoundWithTwoDecimalPlace(bookedHours),
		UtilizationRate: utils.RoundWithTwoDecimalPlace(utils.Ratio(bookedHours, available) * 100),
		GapHours:        utils.RoundWithTwoDecimalPlace(gapHours),
		GapRevenue:      utils.RoundWithTwoDecimalPlace(gapHours * revenuePerHour),
	}
}
