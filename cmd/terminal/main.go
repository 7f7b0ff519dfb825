package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"MarketTerminal/internal/collector"
	"MarketTerminal/internal/config"
	"MarketTerminal/internal/display"
	"MarketTerminal/internal/logger"
	"MarketTerminal/internal/metrics"
	"MarketTerminal/internal/render"
	"MarketTerminal/internal/scheduler"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "market terminal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Log.Sync() }()

	schedule, err := config.ParseSchedule(cfg.Refresh.Schedule)
	if err != nil {
		return fmt.Errorf("refresh schedule: %w", err)
	}

	// Init sources
	crypto := collector.NewCoinGeckoSource(cfg.Crypto.APIKey,
		collector.WithBaseURL(cfg.Crypto.BaseURL),
		collector.WithProxy(cfg.Proxy))
	equity := collector.NewYahooSource(
		collector.WithBaseURL(cfg.Equity.BaseURL),
		collector.WithProxy(cfg.Proxy))
	col := collector.NewCollector(crypto, equity, collector.Watchlist{
		CryptoIDs:     cfg.Crypto.IDs,
		Currency:      cfg.Crypto.Currency,
		Tickers:       cfg.Equity.Tickers,
		StripSuffixes: cfg.Equity.StripSuffixes,
	})
	logger.Log.Info("data sources",
		zap.String("crypto", crypto.Name()),
		zap.String("equity", equity.Name()))

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.ListenAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Metrics.ListenAddr); err != nil {
				logger.Log.Error("metrics server", zap.Error(err))
			}
		}()
	}

	display.ConfigureColors(os.Stdout)
	display.Banner(os.Stdout, "Syncing with Wall Street & Crypto Exchanges...")

	live := display.NewLive(os.Stdout, cfg.Refresh.RedrawInterval)
	live.Start(render.Table(nil))
	defer live.Stop()

	sched := scheduler.NewScheduler(col, live, schedule)
	if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Log.Info("shutdown signal received, stopped")
	return nil
}
