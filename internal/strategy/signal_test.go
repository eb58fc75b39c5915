package strategy

import (
	"testing"
	"time"

	"SignalSentry/internal/model"
)

func bullishScore(symbol string) *model.TrendScore {
	return &model.TrendScore{Symbol: symbol, Score: 90, Bias: model.BiasBullish, RSI: 60}
}

func bearishScore(symbol string) *model.TrendScore {
	return &model.TrendScore{Symbol: symbol, Score: 90, Bias: model.BiasBearish, RSI: 40}
}

func TestGenerate_ThresholdGate(t *testing.T) {
	tests := []struct {
		name string
		ts   model.TrendScore
		want model.Direction
		emit bool
	}{
		{"qualifying buy", model.TrendScore{Score: 70, Bias: model.BiasBullish, RSI: 60}, model.DirectionBuy, true},
		{"qualifying sell", model.TrendScore{Score: 70, Bias: model.BiasBearish, RSI: 40}, model.DirectionSell, true},
		{"score below threshold", model.TrendScore{Score: 69, Bias: model.BiasBullish, RSI: 60}, "", false},
		{"sideways bias", model.TrendScore{Score: 90, Bias: model.BiasSideways, RSI: 60}, "", false},
		{"buy into exhaustion", model.TrendScore{Score: 90, Bias: model.BiasBullish, RSI: 75}, "", false},
		{"sell into exhaustion", model.TrendScore{Score: 90, Bias: model.BiasBearish, RSI: 25}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(DefaultCooldown)
			tt.ts.Symbol = "TCS"
			sig := g.Generate(&tt.ts)
			if tt.emit {
				if sig == nil {
					t.Fatal("expected a signal")
				}
				if sig.Direction != tt.want {
					t.Errorf("expected %s, got %s", tt.want, sig.Direction)
				}
			} else if sig != nil {
				t.Errorf("expected suppression, got %+v", sig)
			}
		})
	}
}

func TestGenerate_DedupSameDirection(t *testing.T) {
	g := NewGenerator(DefaultCooldown)

	if sig := g.Generate(bullishScore("SBIN")); sig == nil {
		t.Fatal("first buy candidate must emit")
	}
	if sig := g.Generate(bullishScore("SBIN")); sig != nil {
		t.Errorf("repeated buy with no intervening sell must be suppressed, got %+v", sig)
	}
	if sig := g.Generate(bearishScore("SBIN")); sig == nil {
		t.Fatal("direction flip must emit")
	}
	if sig := g.Generate(bullishScore("SBIN")); sig == nil {
		t.Fatal("buy after sell must emit again")
	}
}

func TestGenerate_DedupIsPerSymbol(t *testing.T) {
	g := NewGenerator(DefaultCooldown)
	if sig := g.Generate(bullishScore("SBIN")); sig == nil {
		t.Fatal("expected signal for SBIN")
	}
	if sig := g.Generate(bullishScore("TCS")); sig == nil {
		t.Error("dedup for one symbol must not suppress another")
	}
}

func TestGenerate_SuppressedCandidateLeavesMemoryUntouched(t *testing.T) {
	g := NewGenerator(DefaultCooldown)
	g.Generate(&model.TrendScore{Symbol: "MRF", Score: 50, Bias: model.BiasBullish, RSI: 60})
	if _, seen := g.memory.LastDirection("MRF"); seen {
		t.Error("memory must only be updated on actual emission")
	}
}

func snapFor(ts *model.TrendScore) *model.MarketSnapshot {
	snap := &model.MarketSnapshot{Symbol: ts.Symbol, Price: 110, EMA20: 100, EMA50: 95, RSI14: ts.RSI}
	if ts.Bias == model.BiasBearish {
		snap.Price, snap.EMA20, snap.EMA50 = 90, 100, 105
	}
	return snap
}

func TestGenerateAutonomous_Cooldown(t *testing.T) {
	g := NewGenerator(900 * time.Second)
	t0 := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	now := t0
	g.memory.now = func() time.Time { return now }

	ts := bullishScore("RELIANCE")
	sig := g.GenerateAutonomous(snapFor(ts), ts)
	if sig == nil {
		t.Fatal("first qualifying candidate must emit")
	}
	if sig.Price != 110 {
		t.Errorf("sweep signal must carry the price, got %v", sig.Price)
	}
	if sig.Trend != string(model.BiasBullish) {
		t.Errorf("expected bullish trend lean, got %q", sig.Trend)
	}

	now = t0.Add(1 * time.Second)
	if sig := g.GenerateAutonomous(snapFor(ts), ts); sig != nil {
		t.Errorf("candidate inside cooldown must be suppressed, got %+v", sig)
	}

	now = t0.Add(901 * time.Second)
	if sig := g.GenerateAutonomous(snapFor(ts), ts); sig == nil {
		t.Error("candidate after cooldown must emit")
	}
}

func TestGenerateAutonomous_FirstCheckResetsClock(t *testing.T) {
	g := NewGenerator(900 * time.Second)
	t0 := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	now := t0
	g.memory.now = func() time.Time { return now }

	// First check does not qualify, but still starts the symbol's clock.
	weak := &model.TrendScore{Symbol: "ONGC", Score: 40, Bias: model.BiasSideways, RSI: 50}
	if sig := g.GenerateAutonomous(snapFor(weak), weak); sig != nil {
		t.Fatalf("non-qualifying candidate must not emit, got %+v", sig)
	}

	now = t0.Add(10 * time.Second)
	ts := bullishScore("ONGC")
	if sig := g.GenerateAutonomous(snapFor(ts), ts); sig != nil {
		t.Error("clock was reserved by the first check, candidate must wait out the cooldown")
	}

	now = t0.Add(901 * time.Second)
	if sig := g.GenerateAutonomous(snapFor(ts), ts); sig == nil {
		t.Error("expected emission after the cooldown elapsed")
	}
}

func TestGenerateAutonomous_CooldownIndependentOfDedup(t *testing.T) {
	g := NewGenerator(900 * time.Second)
	t0 := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	now := t0
	g.memory.now = func() time.Time { return now }

	ts := bullishScore("IRFC")
	if sig := g.GenerateAutonomous(snapFor(ts), ts); sig == nil {
		t.Fatal("expected first autonomous emission")
	}

	// Same direction again after the window: rate limiting, not dedup,
	// governs the sweep.
	now = t0.Add(901 * time.Second)
	if sig := g.GenerateAutonomous(snapFor(ts), ts); sig == nil {
		t.Error("autonomous sweep must re-emit the same direction once the cooldown elapses")
	}

	// And the sweep must not have poisoned the dedup map either.
	if _, seen := g.memory.LastDirection("IRFC"); seen {
		t.Error("autonomous emissions track cooldown state, not direction-dedup state")
	}
}
