package model

// Bias is the directional lean derived from price-vs-EMA ordering.
type Bias string

const (
	BiasBullish  Bias = "Bullish"
	BiasBearish  Bias = "Bearish"
	BiasSideways Bias = "Sideways"
)

// Momentum classifies RSI strength.
type Momentum string

const (
	MomentumStrong   Momentum = "Strong"
	MomentumModerate Momentum = "Moderate"
	MomentumWeak     Momentum = "Weak"
)

// Risk flags RSI exhaustion zones.
type Risk string

const (
	RiskOverbought Risk = "Overbought"
	RiskOversold   Risk = "Oversold"
	RiskNormal     Risk = "Normal"
)

// Direction is the side of an emitted trading signal.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

// Trend labels produced by the classifier, first match wins.
const (
	TrendStrongBullish = "Strong Bullish Uptrend"
	TrendStrongBearish = "Strong Bearish Downtrend"
	TrendSideways      = "Sideways / Low Momentum"
	TrendWeak          = "Weak / Transition Phase"
)

// TrendReport is the classifier output: the label plus a display-only
// confirmation status.
type TrendReport struct {
	Symbol string
	Label  string
	RSI    float64
	Status string // "Trend Confirmed" or "Weak Trend", never gates signals
}

// TrendScore is the composite market score. Score is clamped to [0,100]
// after all additive and subtractive rules are applied. RSI is carried at
// full precision; rounding happens at the formatting boundary.
type TrendScore struct {
	Symbol   string
	Score    int
	Bias     Bias
	Momentum Momentum
	Risk     Risk
	RSI      float64
}

// Signal is an emitted directional trading signal.
type Signal struct {
	Symbol    string
	Direction Direction
	Score     int
	Bias      Bias
	RSI       float64
	Price     float64 // set by the autonomous sweep, zero otherwise
	Trend     string  // coarse bullish/bearish/sideways lean, sweep only
}
