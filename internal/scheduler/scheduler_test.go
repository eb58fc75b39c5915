package scheduler

import (
	"context"
	"strings"
	"testing"

	"SignalSentry/internal/alerts"
	"SignalSentry/internal/collector"
	"SignalSentry/internal/engine"
	"SignalSentry/internal/strategy"
)

func newTestScheduler(t *testing.T, fetcher collector.Fetcher) *Scheduler {
	t.Helper()
	store, err := alerts.NewStore(":memory:")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	eng := engine.New(collector.NewCollector(fetcher), store, strategy.NewGenerator(strategy.DefaultCooldown))
	return NewScheduler(context.Background(), eng, nil, nil, []string{"SBIN"})
}

func TestHandleCommand_StaticReplies(t *testing.T) {
	s := newTestScheduler(t, &collector.MockFetcher{Price: 100})

	if got := s.HandleCommand(42, "/ping"); got != "Pong 🏓" {
		t.Errorf("/ping: got %q", got)
	}
	if got := s.HandleCommand(42, "/id"); got != "42" {
		t.Errorf("/id: got %q", got)
	}
	if got := s.HandleCommand(42, "/start"); !strings.Contains(got, "/help") {
		t.Errorf("/start should point at /help, got %q", got)
	}
	if got := s.HandleCommand(42, "/help"); !strings.Contains(got, "/alert") {
		t.Errorf("/help should list /alert, got %q", got)
	}
	if got := s.HandleCommand(42, "/bogus"); !strings.Contains(got, "Unknown command") {
		t.Errorf("unknown command: got %q", got)
	}
	if got := s.HandleCommand(42, "   "); got != "" {
		t.Errorf("blank input: got %q", got)
	}
}

func TestHandleCommand_Price(t *testing.T) {
	s := newTestScheduler(t, &collector.MockFetcher{Price: 512.3})

	if got := s.HandleCommand(42, "/price"); !strings.Contains(got, "Usage:") {
		t.Errorf("missing symbol must return usage, got %q", got)
	}
	got := s.HandleCommand(42, "/price sbin")
	if !strings.Contains(got, "SBIN") || !strings.Contains(got, "512.30") {
		t.Errorf("unexpected price reply: %q", got)
	}
}

func TestHandleCommand_IndicatorFailures(t *testing.T) {
	// Three bars: every indicator lacks history.
	s := newTestScheduler(t, &collector.MockFetcher{Price: 100, Closes: []float64{1, 2, 3}})

	for cmd, want := range map[string]string{
		"/sma SBIN":   "Could not calculate SMA",
		"/ema SBIN":   "Could not calculate EMA",
		"/rsi SBIN":   "Could not calculate RSI",
		"/trend SBIN": "Could not identify trend",
		"/score SBIN": "Could not calculate trend score",
	} {
		if got := s.HandleCommand(42, cmd); !strings.Contains(got, want) {
			t.Errorf("%s: expected %q reply, got %q", cmd, want, got)
		}
	}
}

func TestHandleCommand_SMA(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = float64(10 + i)
	}
	s := newTestScheduler(t, &collector.MockFetcher{Price: 29, Closes: closes})

	got := s.HandleCommand(42, "/sma SBIN")
	if !strings.Contains(got, "19.50") {
		t.Errorf("expected SMA 19.50 in reply, got %q", got)
	}
}

func TestHandleCommand_EMAPeriodArg(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100
	}
	s := newTestScheduler(t, &collector.MockFetcher{Price: 100, Closes: closes})

	if got := s.HandleCommand(42, "/ema SBIN 50"); !strings.Contains(got, "50-day EMA") {
		t.Errorf("expected 50-day EMA reply, got %q", got)
	}
	if got := s.HandleCommand(42, "/ema SBIN abc"); !strings.Contains(got, "Period must be") {
		t.Errorf("bad period must be rejected, got %q", got)
	}
}

func TestHandleCommand_Alert(t *testing.T) {
	s := newTestScheduler(t, &collector.MockFetcher{Price: 100})

	if got := s.HandleCommand(42, "/alert SBIN"); !strings.Contains(got, "Usage:") {
		t.Errorf("wrong arity must return usage, got %q", got)
	}
	if got := s.HandleCommand(42, "/alert SBIN abc"); !strings.Contains(got, "must be a number") {
		t.Errorf("non-numeric target must be rejected, got %q", got)
	}
	if got := s.HandleCommand(42, "/alert SBIN -10"); !strings.Contains(got, "must be positive") {
		t.Errorf("negative target must be rejected, got %q", got)
	}
	if got := s.HandleCommand(42, "/alert sbin 500"); !strings.Contains(got, "Alert set for SBIN") {
		t.Errorf("expected confirmation, got %q", got)
	}
}

func TestHandleCommand_StripsBotMention(t *testing.T) {
	s := newTestScheduler(t, &collector.MockFetcher{Price: 100})
	if got := s.HandleCommand(42, "/ping@SignalSentryBot"); got != "Pong 🏓" {
		t.Errorf("group-chat mention form must dispatch, got %q", got)
	}
}

func TestRegisterAll_RejectsBadSpec(t *testing.T) {
	s := newTestScheduler(t, &collector.MockFetcher{Price: 100})
	if err := s.RegisterAll("not a cron spec", "@every 5m"); err == nil {
		t.Error("expected an error for an invalid cron spec")
	}
	if err := s.RegisterAll("@every 1m", "@every 5m"); err != nil {
		t.Errorf("valid specs must register: %v", err)
	}
}
