package calculator

import (
	"math"

	"SignalSentry/internal/model"
)

// dropInvalid filters out NaN and Inf samples before windowing.
func dropInvalid(closes []float64) []float64 {
	valid := make([]float64, 0, len(closes))
	for _, c := range closes {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

// SMA computes the arithmetic mean of the last period valid closes.
// Gaps are dropped before windowing; fewer than period valid samples is an
// ErrInsufficientHistory, never a partial result.
func SMA(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, model.ErrInsufficientHistory
	}
	valid := dropInvalid(closes)
	if len(valid) < period {
		return 0, model.ErrInsufficientHistory
	}
	sum := 0.0
	for i := len(valid) - period; i < len(valid); i++ {
		sum += valid[i]
	}
	return sum / float64(period), nil
}

// Round2 rounds to two decimal places for display. Indicator values are
// composed at full precision; only the formatting boundary rounds.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
