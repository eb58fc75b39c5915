package collector

import (
	"time"

	"SignalSentry/internal/model"
)

// Fetcher defines the market data provider contract. Implementations must
// surface every transport fault, malformed payload, and empty series as an
// error wrapping model.ErrUnavailable — never a partial result.
type Fetcher interface {
	// FetchCloses returns the close-price series for symbol over the given
	// Yahoo-style range ("3mo", "6mo", "2y") and interval ("1d", "1wk").
	FetchCloses(symbol, rng, interval string) (*model.PriceSeries, error)
	// FetchCurrentPrice returns the latest trade price for symbol.
	FetchCurrentPrice(symbol string) (float64, error)
	Name() string
}

// RetryPolicy bounds how hard a fetcher tries before reporting unavailable.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     time.Duration
}

// DefaultRetryPolicy is 3 attempts with a fixed 1s backoff between them.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, Backoff: time.Second}
