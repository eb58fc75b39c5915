package collector

import (
	"errors"
	"fmt"

	"SignalSentry/internal/calculator"
	"SignalSentry/internal/model"
)

// Lookback ranges per operation. These follow the provider's range/interval
// vocabulary; RSI only depends on its trailing window so the snapshot path
// reuses the long series fetched for the EMAs.
const (
	RangeSMA      = "3mo"
	RangeRSI      = "6mo"
	RangeSnapshot = "2y"
	IntervalDaily = "1d"
)

// Collector orchestrates data fetching and indicator computation.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Closes fetches the close series for symbol over the given range.
func (c *Collector) Closes(symbol, rng string) ([]float64, error) {
	series, err := c.Fetcher.FetchCloses(symbol, rng, IntervalDaily)
	if err != nil {
		return nil, unavailable(symbol, err)
	}
	return series.Closes(), nil
}

// CurrentPrice fetches the latest trade price for symbol.
func (c *Collector) CurrentPrice(symbol string) (float64, error) {
	price, err := c.Fetcher.FetchCurrentPrice(symbol)
	if err != nil {
		return 0, unavailable(symbol, err)
	}
	return price, nil
}

// Snapshot fetches one long daily series plus the current price and derives
// the classifier/scorer inputs: EMA(20), EMA(50), RSI(14). Any failed input
// makes the whole snapshot undefined.
func (c *Collector) Snapshot(symbol string) (*model.MarketSnapshot, error) {
	closes, err := c.Closes(symbol, RangeSnapshot)
	if err != nil {
		return nil, err
	}
	price, err := c.CurrentPrice(symbol)
	if err != nil {
		return nil, err
	}

	ema20, err := calculator.EMA(closes, 20)
	if err != nil {
		return nil, fmt.Errorf("%s ema20: %w", symbol, err)
	}
	ema50, err := calculator.EMA(closes, 50)
	if err != nil {
		return nil, fmt.Errorf("%s ema50: %w", symbol, err)
	}
	rsi, err := calculator.RSI(closes, 14)
	if err != nil {
		return nil, fmt.Errorf("%s rsi14: %w", symbol, err)
	}

	return &model.MarketSnapshot{
		Symbol: symbol,
		Price:  price,
		EMA20:  ema20,
		EMA50:  ema50,
		RSI14:  rsi,
	}, nil
}

// unavailable collapses any provider failure into model.ErrUnavailable so
// callers never see transport detail.
func unavailable(symbol string, err error) error {
	if errors.Is(err, model.ErrUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", model.ErrUnavailable, symbol, err)
}
