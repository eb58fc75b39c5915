package notifier

import (
	"fmt"
	"strings"

	"SignalSentry/internal/model"
)

// WelcomeText is the /start reply.
const WelcomeText = `Welcome to SignalSentry.
This bot delivers data-driven trading signals powered by technical analysis.
What you can expect:
• Real-time market analysis
• Trend, score and momentum breakdowns
• Price-threshold alerts
Markets are volatile. Trade responsibly.
Type /help to see available commands.`

// HelpText lists the supported commands.
const HelpText = `Available commands:
/start - Welcome message
/ping - Check if the bot is responsive
/id - Show this chat's id
/price SYMBOL - Current price
/alert SYMBOL TARGET_PRICE - Set a price alert
/sma SYMBOL - 20-day SMA
/ema SYMBOL [PERIOD] - EMA (default 20)
/rsi SYMBOL - 14-day RSI
/trend SYMBOL - Trend and momentum
/score SYMBOL - Composite trend score`

// FormatPrice renders a current-price reply.
func FormatPrice(symbol string, price float64) string {
	return fmt.Sprintf("%s price: ₹%.2f", symbol, price)
}

// FormatIndicator renders a single moving-average reply.
func FormatIndicator(symbol, name string, period int, value float64) string {
	return fmt.Sprintf("%s %d-day %s: ₹%.2f", symbol, period, name, value)
}

// FormatRSI renders an RSI reply.
func FormatRSI(symbol string, period int, value float64) string {
	return fmt.Sprintf("%s %d-day RSI: %.2f", symbol, period, value)
}

// FormatTrend renders the trend report with its confirmation status.
func FormatTrend(rep *model.TrendReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s Trend: %s\n", rep.Symbol, rep.Label))
	b.WriteString(fmt.Sprintf("RSI: %.2f\n", rep.RSI))
	b.WriteString(fmt.Sprintf("Status: %s", rep.Status))
	return b.String()
}

// FormatScore renders the composite score breakdown.
func FormatScore(ts *model.TrendScore) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 %s Trend Score\n", ts.Symbol))
	b.WriteString(fmt.Sprintf("Score: %d/100\n", ts.Score))
	b.WriteString(fmt.Sprintf("Bias: %s\n", ts.Bias))
	b.WriteString(fmt.Sprintf("Momentum: %s\n", ts.Momentum))
	b.WriteString(fmt.Sprintf("Risk: %s\n", ts.Risk))
	b.WriteString(fmt.Sprintf("RSI: %.2f", ts.RSI))
	return b.String()
}

// FormatSignal renders an autonomous sweep signal.
func FormatSignal(sig *model.Signal) string {
	var b strings.Builder
	b.WriteString("🚨 AUTO SIGNAL 🚨\n")
	b.WriteString(fmt.Sprintf("%s → %s\n", sig.Symbol, sig.Direction))
	if sig.Price > 0 {
		b.WriteString(fmt.Sprintf("Price: ₹%.2f\n", sig.Price))
	}
	if sig.Trend != "" {
		b.WriteString(fmt.Sprintf("Trend: %s\n", sig.Trend))
	}
	b.WriteString(fmt.Sprintf("Score: %d/100\n", sig.Score))
	b.WriteString(fmt.Sprintf("RSI: %.2f", sig.RSI))
	return b.String()
}

// FormatAlertSet confirms a newly created alert.
func FormatAlertSet(symbol string, targetPrice float64) string {
	return fmt.Sprintf("Alert set for %s at ₹%.2f", symbol, targetPrice)
}

// FormatAlertFired renders the fired-alert notification.
func FormatAlertFired(a model.Alert, currentPrice float64) string {
	return fmt.Sprintf("🚨 %s hit ₹%.2f!\nCurrent: ₹%.2f", a.Symbol, a.TargetPrice, currentPrice)
}
