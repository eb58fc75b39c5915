package strategy

import (
	"math"

	"SignalSentry/internal/model"
)

// Score computes the composite 0-100 trend score from a market snapshot.
// Rules are strictly additive/subtractive and order-independent except for
// the final clamp.
func Score(snap *model.MarketSnapshot) *model.TrendScore {
	price, ema20, ema50, rsi := snap.Price, snap.EMA20, snap.EMA50, snap.RSI14
	score := 0

	// EMA structure, max 40.
	var bias model.Bias
	switch {
	case price > ema20 && ema20 > ema50:
		score += 40
		bias = model.BiasBullish
	case price < ema20 && ema20 < ema50:
		score += 40
		bias = model.BiasBearish
	default:
		score += 20
		bias = model.BiasSideways
	}

	// RSI momentum, max 30.
	var momentum model.Momentum
	switch {
	case rsi >= 55 && rsi <= 70:
		score += 30
		momentum = model.MomentumStrong
	case (rsi >= 45 && rsi < 55) || (rsi > 70 && rsi <= 80):
		score += 15
		momentum = model.MomentumModerate
	default:
		momentum = model.MomentumWeak
	}

	// Distance from EMA20, max 20.
	if ema20 != 0 {
		distance := math.Abs(price-ema20) / ema20 * 100
		if distance > 3 {
			score += 20
		} else if distance > 1 {
			score += 10
		}
	}

	// Risk adjustment.
	risk := model.RiskNormal
	if rsi > 80 {
		risk = model.RiskOverbought
		score -= 10
	} else if rsi < 20 {
		risk = model.RiskOversold
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return &model.TrendScore{
		Symbol:   snap.Symbol,
		Score:    score,
		Bias:     bias,
		Momentum: momentum,
		Risk:     risk,
		RSI:      rsi,
	}
}
