package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"heartbox/internal/game"
	"heartbox/internal/ui"
)

func main() {
	// The TUI owns the terminal, so logging is silenced unless debugging;
	// with HEARTBOX_DEBUG set, redirect stderr to a file to read the output.
	if os.Getenv("HEARTBOX_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetOutput(io.Discard)
	}

	gameManager := game.NewGameManager()
	p := tea.NewProgram(ui.NewGameModel(gameManager), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error %v", err)
		os.Exit(1)
	}
	log.Debug("clean shutdown")
}
