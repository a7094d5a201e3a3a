package main

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"vo2lab/internal/config"
	"vo2lab/internal/store"
	"vo2lab/internal/tui"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		// First run: the defaults are complete, write them out and continue
		fmt.Println("No config file found. Creating default config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating default config: %w", err)
		}
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading created config: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	// Open database
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	// Launch TUI
	app := tui.NewApp(db, cfg)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
