package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Rate calcula count/denominator*100 com proteção de denominador zero.
// Denominador zero é condição esperada em dados esparsos de tenant: retorna
// 0, nunca NaN nem erro.
func Rate(count, denominator int) float64 {
	if denominator == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(float64(count) / float64(denominator) * 100)
}

// Ratio divide value/denominator com proteção de denominador zero
func Ratio(value, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	return value / denominator
}

// PercentChange calcula a variação percentual entre o valor atual e o
// anterior. Anterior zero significa variação indefinida: retorna nil,
// nunca ±infinito.
func PercentChange(current, prior float64) *float64 {
	if prior == 0 {
		return nil
	}

	change := RoundWithTwoDecimalPlace((current - prior) / prior * 100)
	return &change
}
