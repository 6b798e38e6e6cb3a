package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/promptgen/internal/config"
	"github.com/sant0-9/promptgen/internal/generator"
	"github.com/sant0-9/promptgen/internal/llm"
	"github.com/sant0-9/promptgen/internal/logging"
	"github.com/sant0-9/promptgen/internal/tui"
)

var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default ~/.config/promptgen/config.yaml)")
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

	// The alt screen owns the terminal, so logs only go to a file.
	logger := logging.Discard()
	if cfg.LogFile != "" {
		l, f, err := logging.OpenFile(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = l
	}

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.MissingAPIKey() {
		logger.Warn("no API key configured; requests will be rejected", "provider", cfg.Provider, "env", config.EnvAPIKey)
	}

	app := tui.NewApp(generator.NewReusable(provider, logger), cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
