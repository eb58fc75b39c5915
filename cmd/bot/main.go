package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"SignalSentry/internal/alerts"
	"SignalSentry/internal/collector"
	"SignalSentry/internal/config"
	"SignalSentry/internal/engine"
	"SignalSentry/internal/notifier"
	"SignalSentry/internal/scheduler"
	"SignalSentry/internal/strategy"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SignalSentry starting...")

	// .env is optional; real deployments use environment variables.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init market data provider
	fetcher := collector.NewYahooFetcher(cfg.Market.ExchangeSuffix, cfg.Proxy, collector.DefaultRetryPolicy)
	log.Printf("[INFO] data source: %s (suffix %s)", fetcher.Name(), cfg.Market.ExchangeSuffix)
	col := collector.NewCollector(fetcher)

	// Init alert store
	store, err := alerts.NewStore(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("[FATAL] init alert store: %v", err)
	}
	defer store.Close()

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)

	// Init engine and matcher
	eng := engine.New(col, store, strategy.NewGenerator(cfg.Cooldown()))
	matcher := alerts.NewMatcher(store, col, tn, notifier.FormatAlertFired)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	sched := scheduler.NewScheduler(ctx, eng, matcher, tn, cfg.Market.Watchlist)
	if err := sched.RegisterAll(cfg.Schedule.AlertCron, cfg.Schedule.SignalCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, sched.HandleCommand)
	log.Println("[INFO] Telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing signal sweep now")
		go sched.RunSweepNow()
	}

	log.Println("[INFO] SignalSentry is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] SignalSentry stopped")
}
