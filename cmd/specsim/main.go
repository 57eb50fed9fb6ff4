// Package main provides the specsim CLI, which prints the stat-window attack,
// a greedy link skill pick list, or the best hyper stat allocation.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cory-johannsen/specsim/internal/calculator"
	"github.com/cory-johannsen/specsim/internal/config"
	"github.com/cory-johannsen/specsim/internal/game/stat"
	"github.com/cory-johannsen/specsim/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and SPECSIM_ environment overrides")
	mode := flag.String("mode", "", "override search.mode: attack, links, or hyper")
	flag.Parse()

	v := config.New()
	if *configPath != "" {
		v.SetConfigFile(*configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Fatalf("reading config file: %v", err)
		}
	}
	if *mode != "" {
		v.Set("search.mode", *mode)
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	// Interrupts cancel a long hyper stat search instead of killing it mid-write.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	calc := calculator.New(cfg, stat.Reference(), logger)
	res, err := calc.Run(ctx)
	if err != nil {
		logger.Error("calculation failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	if err := calculator.WriteReport(os.Stdout, res); err != nil {
		logger.Error("writing report", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
