package calculator

import "SignalSentry/internal/model"

// EMA computes the exponential moving average with smoothing factor
// k = 2/(span+1), seeded from the first observation rather than a lookback
// average (the no-adjustment convention). Requires at least span valid
// samples.
func EMA(closes []float64, span int) (float64, error) {
	if span <= 0 {
		return 0, model.ErrInsufficientHistory
	}
	valid := dropInvalid(closes)
	if len(valid) < span {
		return 0, model.ErrInsufficientHistory
	}
	k := 2.0 / float64(span+1)
	ema := valid[0]
	for _, c := range valid[1:] {
		ema = c*k + ema*(1-k)
	}
	return ema, nil
}
