package strategy

import (
	"strings"

	"SignalSentry/internal/model"
)

// ClassifyTrend maps a market snapshot to a discrete trend label.
// Decision order matters: the first matching rule wins.
func ClassifyTrend(snap *model.MarketSnapshot) *model.TrendReport {
	var label string
	switch {
	case snap.EMA20 > snap.EMA50 && snap.RSI14 > 55:
		label = model.TrendStrongBullish
	case snap.EMA20 < snap.EMA50 && snap.RSI14 < 45:
		label = model.TrendStrongBearish
	case snap.RSI14 >= 45 && snap.RSI14 <= 55:
		label = model.TrendSideways
	default:
		label = model.TrendWeak
	}

	// Secondary confirmation, display only: re-check RSI against 50 in the
	// direction the label implies. Never gates signals.
	status := "Weak Trend"
	if strings.Contains(label, "Bullish") && snap.RSI14 > 50 {
		status = "Trend Confirmed"
	} else if strings.Contains(label, "Bearish") && snap.RSI14 < 50 {
		status = "Trend Confirmed"
	}

	return &model.TrendReport{
		Symbol: snap.Symbol,
		Label:  label,
		RSI:    snap.RSI14,
		Status: status,
	}
}
