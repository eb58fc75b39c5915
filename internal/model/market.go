package model

import (
	"errors"
	"time"
)

// ErrUnavailable indicates the market data provider could not supply data
// (timeout, bad response, empty series).
var ErrUnavailable = errors.New("market data unavailable")

// ErrInsufficientHistory indicates the series holds fewer valid samples than
// the requested indicator period.
var ErrInsufficientHistory = errors.New("not enough history")

// PricePoint is a single close-price sample.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// PriceSeries holds ordered close prices for one symbol, ascending by time.
// The series may be ragged; indicator functions drop invalid samples.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Closes returns the raw close values in order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// MarketSnapshot bundles the inputs the trend classifier and scorer consume.
type MarketSnapshot struct {
	Symbol string
	Price  float64
	EMA20  float64
	EMA50  float64
	RSI14  float64
}
