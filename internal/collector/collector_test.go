package collector

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"SignalSentry/internal/model"
)

func risingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100 + float64(i)*0.5
	}
	return closes
}

func TestSnapshot_DerivesAllInputs(t *testing.T) {
	col := NewCollector(&MockFetcher{Price: 180, Closes: risingCloses(120)})

	snap, err := col.Snapshot("SBIN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Price != 180 {
		t.Errorf("expected price 180, got %v", snap.Price)
	}
	// Rising series: short EMA above long EMA, RSI saturated at 100.
	if snap.EMA20 <= snap.EMA50 {
		t.Errorf("expected EMA20 > EMA50 on a rising series, got %v <= %v", snap.EMA20, snap.EMA50)
	}
	if snap.RSI14 != 100 {
		t.Errorf("expected RSI 100 on a strictly rising series, got %v", snap.RSI14)
	}
}

func TestSnapshot_InsufficientHistory(t *testing.T) {
	col := NewCollector(&MockFetcher{Price: 100, Closes: risingCloses(30)})
	if _, err := col.Snapshot("SBIN"); !errors.Is(err, model.ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory for a 30-bar series, got %v", err)
	}
}

func TestSnapshot_ProviderFailure(t *testing.T) {
	col := NewCollector(&MockFetcher{Err: fmt.Errorf("connection refused")})
	if _, err := col.Snapshot("SBIN"); !errors.Is(err, model.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
	if _, err := col.CurrentPrice("SBIN"); !errors.Is(err, model.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestCloses_RaggedSeriesSurvivesIndicators(t *testing.T) {
	closes := risingCloses(60)
	closes[10] = math.NaN()
	col := NewCollector(&MockFetcher{Price: 130, Closes: closes})
	got, err := col.Closes("TCS", RangeSMA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 60 {
		t.Fatalf("expected raw series passthrough, got %d points", len(got))
	}
}

func TestYahooSymbolNormalization(t *testing.T) {
	f := NewYahooFetcher(".NS", "", DefaultRetryPolicy)
	tests := []struct{ in, want string }{
		{"sbin", "SBIN.NS"},
		{" tcs ", "TCS.NS"},
		{"RELIANCE.NS", "RELIANCE.NS"},
		{"^NSEI", "^NSEI"},
	}
	for _, tt := range tests {
		if got := f.yahooSymbol(tt.in); got != tt.want {
			t.Errorf("yahooSymbol(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
