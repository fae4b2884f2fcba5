package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/omx-labs/order-matcher-go/pkg/config"
	"github.com/omx-labs/order-matcher-go/pkg/console"
	"github.com/omx-labs/order-matcher-go/pkg/engine"
	"github.com/omx-labs/order-matcher-go/pkg/journal"
	"github.com/omx-labs/order-matcher-go/pkg/logging"
	"github.com/omx-labs/order-matcher-go/pkg/metrics"
)

func main() {
	envPath := flag.String("env", "", "path to .env file (default: ./.env if present)")
	flag.Parse()

	cfg := config.LoadFromEnv(*envPath)

	var (
		logger *zap.Logger
		err    error
	)
	if cfg.LogPath != "" {
		logger, err = logging.NewFileLogger(cfg.LogPath, cfg.LogLevel)
	} else {
		// No log file configured: keep the terminal clean.
		logger = zap.NewNop()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting matcher console", zap.String("instrument", cfg.Instrument))

	matcher := engine.NewMatcher(cfg.Instrument, logger)
	jnl := journal.New()
	c := console.New(matcher, jnl, os.Stdout, os.Stderr, cfg.Prompt, logger)

	if err := c.Run(os.Stdin); err != nil {
		logger.Error("console stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("session complete",
		zap.Int64("orders_accepted", metrics.GetOrdersAccepted()),
		zap.Int64("trades_executed", metrics.GetTradesExecuted()),
		zap.Int64("quantity_matched", metrics.GetQuantityMatched()),
	)
}
