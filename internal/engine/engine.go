// Package engine exposes the command-facing operations of the signal and
// alert engine. Every operation returns either a populated result or an
// error; nothing here panics across the dispatch boundary.
package engine

import (
	"fmt"
	"log"
	"math"
	"strings"

	"SignalSentry/internal/alerts"
	"SignalSentry/internal/calculator"
	"SignalSentry/internal/collector"
	"SignalSentry/internal/model"
	"SignalSentry/internal/strategy"
)

// Engine composes the collector, indicator functions, strategy logic, and
// alert store behind the command contract.
type Engine struct {
	collector *collector.Collector
	store     *alerts.Store
	generator *strategy.Generator
}

// New creates an engine over the given collaborators.
func New(col *collector.Collector, store *alerts.Store, gen *strategy.Generator) *Engine {
	return &Engine{collector: col, store: store, generator: gen}
}

// GetPrice returns the latest trade price for symbol.
func (e *Engine) GetPrice(symbol string) (float64, error) {
	return e.collector.CurrentPrice(symbol)
}

// GetSMA returns the simple moving average over the given period, rounded
// for display. The snapshot path keeps full precision; only these
// single-indicator lookups round.
func (e *Engine) GetSMA(symbol string, period int) (float64, error) {
	closes, err := e.collector.Closes(symbol, collector.RangeSMA)
	if err != nil {
		return 0, err
	}
	v, err := calculator.SMA(closes, period)
	if err != nil {
		return 0, err
	}
	return calculator.Round2(v), nil
}

// GetEMA returns the exponential moving average over the given span,
// rounded for display.
func (e *Engine) GetEMA(symbol string, span int) (float64, error) {
	closes, err := e.collector.Closes(symbol, collector.RangeSnapshot)
	if err != nil {
		return 0, err
	}
	v, err := calculator.EMA(closes, span)
	if err != nil {
		return 0, err
	}
	return calculator.Round2(v), nil
}

// GetRSI returns the relative strength index over the given period,
// rounded for display.
func (e *Engine) GetRSI(symbol string, period int) (float64, error) {
	closes, err := e.collector.Closes(symbol, collector.RangeRSI)
	if err != nil {
		return 0, err
	}
	v, err := calculator.RSI(closes, period)
	if err != nil {
		return 0, err
	}
	return calculator.Round2(v), nil
}

// GetTrend classifies the symbol's current trend.
func (e *Engine) GetTrend(symbol string) (*model.TrendReport, error) {
	snap, err := e.collector.Snapshot(symbol)
	if err != nil {
		return nil, err
	}
	return strategy.ClassifyTrend(snap), nil
}

// GetScore computes the composite trend score for symbol.
func (e *Engine) GetScore(symbol string) (*model.TrendScore, error) {
	snap, err := e.collector.Snapshot(symbol)
	if err != nil {
		return nil, err
	}
	return strategy.Score(snap), nil
}

// CreateAlert validates and persists a price alert, returning its id.
func (e *Engine) CreateAlert(chatID int64, symbol string, targetPrice float64) (int64, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return 0, fmt.Errorf("symbol is required")
	}
	if math.IsNaN(targetPrice) || math.IsInf(targetPrice, 0) || targetPrice <= 0 {
		return 0, fmt.Errorf("target price must be positive")
	}
	return e.store.Create(chatID, symbol, targetPrice)
}

// Sweep evaluates the watchlist and returns the autonomous signals that
// survived the threshold gate and the per-symbol cooldown. A symbol whose
// data is unavailable is skipped for this cycle.
func (e *Engine) Sweep(watchlist []string) []*model.Signal {
	var signals []*model.Signal
	for _, symbol := range watchlist {
		snap, err := e.collector.Snapshot(symbol)
		if err != nil {
			log.Printf("[WARN] sweep %s: %v", symbol, err)
			continue
		}
		ts := strategy.Score(snap)
		if sig := e.generator.GenerateAutonomous(snap, ts); sig != nil {
			signals = append(signals, sig)
		}
	}
	return signals
}

// Generate runs the dedup variant of the signal generator for one symbol.
func (e *Engine) Generate(symbol string) (*model.Signal, error) {
	snap, err := e.collector.Snapshot(symbol)
	if err != nil {
		return nil, err
	}
	return e.generator.Generate(strategy.Score(snap)), nil
}
