package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sant0-9/promptgen/internal/config"
	"github.com/sant0-9/promptgen/internal/console"
	"github.com/sant0-9/promptgen/internal/generator"
	"github.com/sant0-9/promptgen/internal/llm"
	"github.com/sant0-9/promptgen/internal/logging"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default ~/.config/promptgen/config.yaml)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger := logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel))

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		logger.Error("creating provider", "err", err)
		os.Exit(1)
	}
	if cfg.MissingAPIKey() {
		logger.Warn("no API key configured; requests will be rejected", "provider", cfg.Provider, "env", config.EnvAPIKey)
	}

	optimizer := generator.NewOptimizer(provider, logger)
	if err := console.Run(context.Background(), os.Stdin, os.Stdout, optimizer); err != nil {
		logger.Error("console", "err", err)
		os.Exit(1)
	}
}
