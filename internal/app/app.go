// Package app wires the configuration, event bus and UI together. Both
// entrypoints delegate here.
package app

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"boundless/internal/config"
	"boundless/internal/domain"
	"boundless/internal/eventbus"
	"boundless/internal/ui"
)

// Run parses arguments, loads configuration and runs the program until the
// user quits.
func Run(args []string) error {
	fs := flag.NewFlagSet("boundless", flag.ContinueOnError)
	var configPath string
	var debug bool
	fs.StringVar(&configPath, "config", "", "Path to a config file (default: user config dir)")
	fs.BoolVar(&debug, "debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Set up logging. The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile("boundless.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.WithError(err).Warn("could not open log file")
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	// Create event bus
	bus := eventbus.New()
	bus.Subscribe(eventbus.EventError, func(ev eventbus.DomainEvent) {
		e := ev.(domain.ErrorEvent)
		log.WithError(e.Err).Error(e.Message)
	})
	bus.Subscribe(eventbus.EventBoundaryReached, func(ev eventbus.DomainEvent) {
		e := ev.(domain.BoundaryReachedEvent)
		log.WithFields(log.Fields{"edge": e.EdgeKey, "trailing": e.Trailing}).Info("content boundary reached")
	})

	// Load configuration
	configService := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configService.LoadFromPath(configPath)
	} else {
		cfg, err = configService.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Create and run the UI
	model := ui.NewModel(bus, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
