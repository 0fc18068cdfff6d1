package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leaving a game returns to the menu, which shows your best score
for each game since the arcade started.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Scores of this session
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --log-file arcade.log --debug`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	settings := loadSettings()
	logger, closeLog := newLogger(io.Discard, "arcade")
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		store = nil
	}

	runErr := tui.RunArcade(tui.ArcadeOptions{
		Host: registry.Host{
			Records: arena.NewRecords(),
			Logger:  logger,
			Config:  settings,
		},
		Store:   store,
		Player:  localPlayer(),
		Runtime: runtimeConfig(settings),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
