package main

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/xrispmm/Reaction-game/game"
	"github.com/xrispmm/Reaction-game/hal"
	"github.com/xrispmm/Reaction-game/settings"
	"github.com/xrispmm/Reaction-game/sim"
)

func main() {
	settings.LoadEnvFiles()
	setupLogging()

	hw := sim.NewHardware()

	indicators := make([]hal.OutputPin, len(hw.Indicators))
	for i, p := range hw.Indicators {
		indicators[i] = p
	}

	cfg := game.Config{
		Display:    hw.Panel,
		Indicators: indicators,
		PlayerOne:  game.NewButton(settings.PlayerOneName, hw.PlayerOne, 0),
		PlayerTwo:  game.NewButton(settings.PlayerTwoName, hw.PlayerTwo, 0),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = game.NewManager(cfg).Run(ctx)
	}()

	log.Info("simulator starting")
	p := tea.NewProgram(sim.NewModel(hw), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Errorf("simulator exited with error: %v", err)
	}

	log.Info("simulator exiting")
}

func setupLogging() {
	if level, err := log.ParseLevel(settings.GetenvStr("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	// The TUI owns the terminal, so the diagnostic stream goes to a file.
	path := settings.GetenvStr("LOG_FILE")
	if path == "" {
		path = "reaction-game.log"
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}

	log.SetOutput(f)
}
