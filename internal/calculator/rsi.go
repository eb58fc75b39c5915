package calculator

import "SignalSentry/internal/model"

// RSI computes the relative strength index over the last period successive
// differences. Average gain and loss are simple rolling means, not Wilder's
// exponential smoothing. When the average loss is zero the result saturates
// to 100 instead of propagating a division fault. Requires at least period
// valid differences.
func RSI(closes []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, model.ErrInsufficientHistory
	}
	valid := dropInvalid(closes)
	if len(valid) < period+1 {
		return 0, model.ErrInsufficientHistory
	}

	var gainSum, lossSum float64
	for i := len(valid) - period; i < len(valid); i++ {
		change := valid[i] - valid[i-1]
		if change > 0 {
			gainSum += change
		} else {
			lossSum -= change
		}
	}
	avgGain := gainSum / float64(period)
	avgLoss := lossSum / float64(period)

	if avgLoss == 0 {
		return 100.0, nil
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), nil
}
