package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRate(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		denominator int
		expected    float64
	}{
		{name: "taxa simples", count: 4, denominator: 10, expected: 40},
		{name: "denominador zero retorna 0, não NaN", count: 5, denominator: 0, expected: 0},
		{name: "contagem zero", count: 0, denominator: 10, expected: 0},
		{name: "taxa cheia", count: 10, denominator: 10, expected: 100},
		{name: "arredondamento em duas casas", count: 1, denominator: 3, expected: 33.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Rate(tt.count, tt.denominator))
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 2.5, Ratio(5, 2))
	assert.Equal(t, 0.0, Ratio(5, 0))
}

func TestPercentChange(t *testing.T) {
	t.Run("anterior zero retorna nil", func(t *testing.T) {
		assert.Nil(t, PercentChange(500, 0))
	})

	t.Run("crescimento", func(t *testing.T) {
		change := PercentChange(150, 100)
		require.NotNil(t, change)
		assert.Equal(t, 50.0, *change)
	})

	t.Run("queda", func(t *testing.T) {
		change := PercentChange(80, 100)
		require.NotNil(t, change)
		assert.Equal(t, -20.0, *change)
	})
}
