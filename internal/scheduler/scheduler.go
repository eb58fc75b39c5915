package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"SignalSentry/internal/alerts"
	"SignalSentry/internal/engine"
	"SignalSentry/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the periodic alert and signal tasks and dispatches user
// commands into the engine.
type Scheduler struct {
	Cron      *cron.Cron
	Engine    *engine.Engine
	Matcher   *alerts.Matcher
	Notifier  *notifier.TelegramNotifier
	Watchlist []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler. Jobs are chained with
// SkipIfStillRunning so neither task overlaps itself; the two tasks may
// still interleave with each other and with command handling.
func NewScheduler(ctx context.Context, eng *engine.Engine, matcher *alerts.Matcher, tn *notifier.TelegramNotifier, watchlist []string) *Scheduler {
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		Engine:    eng,
		Matcher:   matcher,
		Notifier:  tn,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// RegisterAll registers the alert-matching and signal-sweep tasks.
func (s *Scheduler) RegisterAll(alertCron, signalCron string) error {
	if _, err := s.Cron.AddFunc(alertCron, s.alertTask); err != nil {
		return fmt.Errorf("register alert task: %w", err)
	}
	if _, err := s.Cron.AddFunc(signalCron, s.signalTask); err != nil {
		return fmt.Errorf("register signal task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunSweepNow executes the signal sweep immediately (for RUN_ON_START).
func (s *Scheduler) RunSweepNow() {
	s.signalTask()
}

func (s *Scheduler) alertTask() {
	s.Matcher.Run()
}

func (s *Scheduler) signalTask() {
	log.Println("[INFO] running signal sweep")
	for _, sig := range s.Engine.Sweep(s.Watchlist) {
		if err := s.Notifier.SendWithRetry(s.Ctx, notifier.FormatSignal(sig), 3); err != nil {
			log.Printf("[ERROR] send signal for %s: %v", sig.Symbol, err)
		}
	}
}

// HandleCommand processes a user command and returns the reply text.
// Failures are always converted to user-facing replies, never raised.
func (s *Scheduler) HandleCommand(chatID int64, text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	cmd := strings.ToLower(fields[0])
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i] // strip @botname suffix in group chats
	}
	args := fields[1:]

	switch cmd {
	case "/start":
		return notifier.WelcomeText
	case "/help":
		return notifier.HelpText
	case "/ping":
		return "Pong 🏓"
	case "/id":
		return strconv.FormatInt(chatID, 10)
	case "/price":
		return s.priceCommand(args)
	case "/sma":
		return s.smaCommand(args)
	case "/ema":
		return s.emaCommand(args)
	case "/rsi":
		return s.rsiCommand(args)
	case "/trend":
		return s.trendCommand(args)
	case "/score":
		return s.scoreCommand(args)
	case "/alert":
		return s.alertCommand(chatID, args)
	default:
		return "Unknown command. Type /help to see available commands."
	}
}

func (s *Scheduler) priceCommand(args []string) string {
	if len(args) == 0 {
		return "Usage: /price SYMBOL"
	}
	symbol := strings.ToUpper(args[0])
	price, err := s.Engine.GetPrice(symbol)
	if err != nil {
		return "Invalid stock symbol ❌"
	}
	return notifier.FormatPrice(symbol, price)
}

func (s *Scheduler) smaCommand(args []string) string {
	if len(args) == 0 {
		return "Usage: /sma SYMBOL, e.g. /sma SBIN"
	}
	symbol := strings.ToUpper(args[0])
	value, err := s.Engine.GetSMA(symbol, 20)
	if err != nil {
		return "Could not calculate SMA ❌"
	}
	return notifier.FormatIndicator(symbol, "SMA", 20, value)
}

func (s *Scheduler) emaCommand(args []string) string {
	if len(args) == 0 {
		return "Usage: /ema SYMBOL PERIOD, e.g. /ema SBIN 20"
	}
	symbol := strings.ToUpper(args[0])
	span := 20
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n <= 0 {
			return "Period must be a positive number."
		}
		span = n
	}
	value, err := s.Engine.GetEMA(symbol, span)
	if err != nil {
		return "Could not calculate EMA ❌"
	}
	return notifier.FormatIndicator(symbol, "EMA", span, value)
}

func (s *Scheduler) rsiCommand(args []string) string {
	if len(args) == 0 {
		return "Usage: /rsi SYMBOL, e.g. /rsi SBIN"
	}
	symbol := strings.ToUpper(args[0])
	value, err := s.Engine.GetRSI(symbol, 14)
	if err != nil {
		return "Could not calculate RSI ❌"
	}
	return notifier.FormatRSI(symbol, 14, value)
}

func (s *Scheduler) trendCommand(args []string) string {
	if len(args) == 0 {
		return "Usage: /trend SYMBOL, e.g. /trend SBIN"
	}
	rep, err := s.Engine.GetTrend(strings.ToUpper(args[0]))
	if err != nil {
		return "Could not identify trend ❌"
	}
	return notifier.FormatTrend(rep)
}

func (s *Scheduler) scoreCommand(args []string) string {
	if len(args) == 0 {
		return "Usage: /score SYMBOL, e.g. /score SBIN"
	}
	ts, err := s.Engine.GetScore(strings.ToUpper(args[0]))
	if err != nil {
		return "Could not calculate trend score ❌"
	}
	return notifier.FormatScore(ts)
}

func (s *Scheduler) alertCommand(chatID int64, args []string) string {
	if len(args) != 2 {
		return "Usage: /alert SYMBOL TARGET_PRICE"
	}
	symbol := strings.ToUpper(args[0])
	target, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return "Target price must be a number."
	}
	if target <= 0 {
		return "Target price must be positive."
	}
	if _, err := s.Engine.CreateAlert(chatID, symbol, target); err != nil {
		log.Printf("[ERROR] create alert: %v", err)
		return "Could not save alert ❌"
	}
	return notifier.FormatAlertSet(symbol, target)
}
