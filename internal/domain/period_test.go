package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriod(t *testing.T) {
	// Data de referência: 16 de janeiro de 2024
	reference := time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		selector      RangeSelector
		expectedStart time.Time
		expectedEnd   time.Time
		expectedDays  int
	}{
		{
			name:          "today - início igual ao fim",
			selector:      RangeToday,
			expectedStart: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			expectedDays:  1,
		},
		{
			name:          "7 dias corridos incluindo hoje",
			selector:      Range7Days,
			expectedStart: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			expectedDays:  7,
		},
		{
			name:          "30 dias corridos",
			selector:      Range30Days,
			expectedStart: time.Date(2023, 12, 18, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			expectedDays:  30,
		},
		{
			name:          "90 dias corridos",
			selector:      Range90Days,
			expectedStart: time.Date(2023, 10, 19, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			expectedDays:  90,
		},
		{
			name:          "mês até a data - duração acompanha o dia corrente",
			selector:      RangeMonthToDate,
			expectedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			expectedDays:  16,
		},
		{
			name:          "365 dias corridos",
			selector:      Range365Days,
			expectedStart: time.Date(2023, 1, 17, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			expectedDays:  365,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, err := ResolvePeriod(tt.selector, reference, false)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedStart, window.StartDate)
			assert.Equal(t, tt.expectedEnd, window.EndDate)
			assert.Equal(t, tt.expectedDays, window.Days())
			assert.Nil(t, window.Prior)
		})
	}
}

func TestResolvePeriod_PriorWindow(t *testing.T) {
	reference := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	t.Run("janela anterior tem a mesma duração e termina na véspera", func(t *testing.T) {
		window, err := ResolvePeriod(Range7Days, reference, true)
		require.NoError(t, err)
		require.NotNil(t, window.Prior)

		assert.Equal(t, window.Days(), window.Prior.Days())
		assert.Equal(t, window.StartDate.AddDate(0, 0, -1), window.Prior.EndDate)
		assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), window.Prior.StartDate)
	})

	t.Run("mês até a data - anterior nunca é um mês fixo de 30 dias", func(t *testing.T) {
		window, err := ResolvePeriod(RangeMonthToDate, reference, true)
		require.NoError(t, err)
		require.NotNil(t, window.Prior)

		// 16 dias correntes => 16 dias anteriores, terminando em 31/12
		assert.Equal(t, 16, window.Prior.Days())
		assert.Equal(t, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), window.Prior.EndDate)
		assert.Equal(t, time.Date(2023, 12, 16, 0, 0, 0, 0, time.UTC), window.Prior.StartDate)
	})
}

func TestPeriodWindow_DiasComHorarioDeVerao(t *testing.T) {
	// A mudança de horário em março encurta um dia em uma hora. A contagem
	// de dias tem que bater com EachDay e manter a janela anterior do
	// mesmo tamanho mesmo assim.
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	window, err := ResolveCustomPeriod(
		time.Date(2026, 3, 1, 0, 0, 0, 0, loc),
		time.Date(2026, 3, 31, 0, 0, 0, 0, loc),
		true,
	)
	require.NoError(t, err)

	assert.Equal(t, 31, window.Days())
	assert.Len(t, window.EachDay(), 31)

	require.NotNil(t, window.Prior)
	assert.Equal(t, 31, window.Prior.Days())
	assert.Equal(t, time.Date(2026, 1, 29, 0, 0, 0, 0, loc), window.Prior.StartDate)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, loc), window.Prior.EndDate)
}

func TestResolvePeriod_SeletorInvalido(t *testing.T) {
	_, err := ResolvePeriod(RangeSelector("trimestre"), time.Now(), false)
	assert.Error(t, err)
}

func TestResolveCustomPeriod(t *testing.T) {
	from := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)

	t.Run("datas explícitas normalizadas para meia-noite", func(t *testing.T) {
		window, err := ResolveCustomPeriod(from, to, true)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), window.StartDate)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), window.EndDate)
		assert.Equal(t, 10, window.Days())
		assert.Equal(t, 10, window.Prior.Days())
	})

	t.Run("fim antes do início é rejeitado", func(t *testing.T) {
		_, err := ResolveCustomPeriod(to, from, false)
		assert.Error(t, err)
	})
}

func TestPeriodWindow_EachDay(t *testing.T) {
	window := &PeriodWindow{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
	}

	days := window.EachDay()
	require.Len(t, days, 3)
	assert.Equal(t, window.StartDate, days[0])
	assert.Equal(t, window.EndDate, days[2])

	assert.True(t, window.Contains(time.Date(2024, 1, 2, 18, 0, 0, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)))
}
