package main

import (
	"context"
	"fmt"
	"os"

	"sampleapp/internal/bench/attack"
	"sampleapp/internal/bench/config"
	"sampleapp/internal/bench/preflight"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := preflight.Run(context.Background(), cfg.BaseURL, cfg.RateLimitBypass, cfg.InsecureSkipVerify, cfg.PreflightTimeout); err != nil {
		return fmt.Errorf("preflight failed: %w", err)
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		Type:               cfg.BenchType,
		RateLimitBypass:    cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
		Timeout:            cfg.Timeout,
	})
}
