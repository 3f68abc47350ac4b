package domain

import (
	"fmt"
	"time"
)

// RangeSelector identifica um intervalo de datas nomeado usado pelos dashboards
type RangeSelector string

const (
	RangeToday       RangeSelector = "today"
	Range7Days       RangeSelector = "7d"
	Range30Days      RangeSelector = "30d"
	Range90Days      RangeSelector = "90d"
	Range6Months     RangeSelector = "6m"
	Range365Days     RangeSelector = "365d"
	RangeMonthToDate RangeSelector = "mtd"
)

// PeriodWindow é um par de datas de calendário inclusivas, com a janela
// anterior opcional de mesma duração terminando na véspera do início
type PeriodWindow struct {
	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Prior     *PeriodWindow `json:"prior,omitempty"`
}

// Days retorna o número de dias de calendário da janela (inclusivo).
// As datas são normalizadas para UTC antes da subtração: em fusos com
// horário de verão a diferença em horas não é múltiplo exato de 24.
func (w *PeriodWindow) Days() int {
	start := time.Date(w.StartDate.Year(), w.StartDate.Month(), w.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(w.EndDate.Year(), w.EndDate.Month(), w.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// Contains indica se a data de calendário está dentro da janela
func (w *PeriodWindow) Contains(date time.Time) bool {
	d := truncateDate(date)
	return !d.Before(w.StartDate) && !d.After(w.EndDate)
}

// EachDay retorna todas as datas de calendário da janela, em ordem
func (w *PeriodWindow) EachDay() []time.Time {
	days := make([]time.Time, 0, w.Days())
	for d := w.StartDate; !d.After(w.EndDate); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ResolvePeriod converte um seletor nomeado em uma janela canônica ancorada
// na data de referência. Para "mtd" a duração é recalculada a cada dia, de
// modo que a janela anterior acompanha exatamente o tamanho da atual.
func ResolvePeriod(selector RangeSelector, reference time.Time, withPrior bool) (*PeriodWindow, error) {
	end := truncateDate(reference)

	var start time.Time
	switch selector {
	case RangeToday:
		start = end
	case Range7Days:
		start = end.AddDate(0, 0, -6)
	case Range30Days:
		start = end.AddDate(0, 0, -29)
	case Range90Days:
		start = end.AddDate(0, 0, -89)
	case Range6Months:
		start = end.AddDate(0, -6, 0).AddDate(0, 0, 1)
	case Range365Days:
		start = end.AddDate(0, 0, -364)
	case RangeMonthToDate:
		start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, end.Location())
	default:
		return nil, fmt.Errorf("seletor de período desconhecido: %q", selector)
	}

	window := &PeriodWindow{StartDate: start, EndDate: end}
	if withPrior {
		window.Prior = priorWindow(window)
	}

	return window, nil
}

// ResolveCustomPeriod monta uma janela a partir de datas explícitas
func ResolveCustomPeriod(from, to time.Time, withPrior bool) (*PeriodWindow, error) {
	start := truncateDate(from)
	end := truncateDate(to)

	if end.Before(start) {
		return nil, fmt.Errorf("a data final %s não pode ser anterior à inicial %s",
			end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	window := &PeriodWindow{StartDate: start, EndDate: end}
	if withPrior {
		window.Prior = priorWindow(window)
	}

	return window, nil
}

// priorWindow calcula a janela imediatamente anterior, com a mesma duração
// da janela atual e terminando na véspera do início dela
func priorWindow(current *PeriodWindow) *PeriodWindow {
	days := current.Days()
	priorEnd := current.StartDate.AddDate(0, 0, -1)
	priorStart := priorEnd.AddDate(0, 0, -(days - 1))

	return &PeriodWindow{StartDate: priorStart, EndDate: priorEnd}
}

func truncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
