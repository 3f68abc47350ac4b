package domain

import "time"

// DayHours é o horário de funcionamento de uma unidade em um dia da semana
type DayHours struct {
	Open   string `json:"open"`  // formato "HH:MM"
	Close  string `json:"close"` // formato "HH:MM"
	Closed bool   `json:"closed"`
}

// Location é uma unidade do salão, com a tabela estruturada de horários por
// dia da semana e a capacidade de cadeiras configurada
type Location struct {
	ID              string                    `json:"id"`
	OrganizationID  string                    `json:"organization_id"`
	Name            string                    `json:"name"`
	WeekdayHours    map[time.Weekday]DayHours `json:"weekday_hours"`
	StylistCapacity *int                      `json:"stylist_capacity"`
	Active          bool                      `json:"active"`
}

// OperatingHours retorna as horas de funcionamento da unidade no dia da
// semana informado. Dia fechado vale 0; configuração ausente ou inválida
// cai no padrão informado pelo chamador.
func (l *Location) OperatingHours(weekday time.Weekday, defaultHours float64) float64 {
	hours, ok := l.WeekdayHours[weekday]
	if !ok {
		return defaultHours
	}

	if hours.Closed {
		return 0
	}

	open, errOpen := time.Parse("15:04", hours.Open)
	closeAt, errClose := time.Parse("15:04", hours.Close)
	if errOpen != nil || errClose != nil {
		return defaultHours
	}

	span := closeAt.Sub(open).Hours()
	if span <= 0 {
		return defaultHours
	}

	return span
}
