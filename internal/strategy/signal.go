package strategy

import (
	"time"

	"SignalSentry/internal/model"
)

// DefaultCooldown is the minimum gap between autonomous signals per symbol.
const DefaultCooldown = 15 * time.Minute

// Generator converts trend scores into directional signals. It owns the
// signal memory; all methods are safe for concurrent use.
type Generator struct {
	memory   *Memory
	cooldown time.Duration
}

// NewGenerator creates a signal generator with the given cooldown window.
func NewGenerator(cooldown time.Duration) *Generator {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Generator{memory: NewMemory(), cooldown: cooldown}
}

// qualify applies the threshold gate: score >= 70, bias matching the
// candidate direction, and an RSI safety bound so we do not signal deep
// into exhaustion (RSI < 75 for buys, > 25 for sells).
func qualify(ts *model.TrendScore) (model.Direction, bool) {
	switch {
	case ts.Score >= 70 && ts.Bias == model.BiasBullish && ts.RSI < 75:
		return model.DirectionBuy, true
	case ts.Score >= 70 && ts.Bias == model.BiasBearish && ts.RSI > 25:
		return model.DirectionSell, true
	}
	return "", false
}

// Generate returns a signal for the score, or nil. A candidate matching
// the last emitted direction for its symbol is suppressed; memory is
// updated only when a signal is actually emitted.
func (g *Generator) Generate(ts *model.TrendScore) *model.Signal {
	dir, ok := qualify(ts)
	if !ok {
		return nil
	}
	if last, seen := g.memory.LastDirection(ts.Symbol); seen && last == dir {
		return nil
	}
	g.memory.RecordEmission(ts.Symbol, dir)
	return &model.Signal{
		Symbol:    ts.Symbol,
		Direction: dir,
		Score:     ts.Score,
		Bias:      ts.Bias,
		RSI:       ts.RSI,
	}
}

// GenerateAutonomous is the sweep variant: rate-limited per symbol by the
// cooldown window instead of direction dedup, and carrying price plus the
// coarse EMA lean for the notification text. The cooldown reservation
// happens before the candidate is evaluated, so a non-qualifying check
// still resets the symbol's clock.
func (g *Generator) GenerateAutonomous(snap *model.MarketSnapshot, ts *model.TrendScore) *model.Signal {
	if !g.memory.TryReserve(ts.Symbol, g.cooldown) {
		return nil
	}
	dir, ok := qualify(ts)
	if !ok {
		return nil
	}

	trend := string(model.BiasSideways)
	if snap.EMA20 > snap.EMA50 {
		trend = string(model.BiasBullish)
	} else if snap.EMA20 < snap.EMA50 {
		trend = string(model.BiasBearish)
	}

	return &model.Signal{
		Symbol:    ts.Symbol,
		Direction: dir,
		Score:     ts.Score,
		Bias:      ts.Bias,
		RSI:       ts.RSI,
		Price:     snap.Price,
		Trend:     trend,
	}
}
