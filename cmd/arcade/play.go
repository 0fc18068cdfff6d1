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

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (default key bindings):
  Enter        - Start, and play again after game over
  Left/Right   - Steer (racing), move the crosshair (shooting)
  Up/Down      - Move the crosshair (shooting)
  Space/F      - Fire at the crosshair (shooting)
  Mouse click  - Shoot a target (shooting)
  R            - Restart after game over
  Esc/B        - Leave the game
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots

Examples:
  arcade play racing
  arcade play shooting --seed 42
  arcade play racing --config ./my-arcade.yaml --log-file arcade.log --debug`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	settings := loadSettings()
	logger, closeLog := newLogger(io.Discard, "arcade")
	defer closeLog()

	host := registry.Host{
		Records: arena.NewRecords(),
		Logger:  logger,
		Config:  settings,
	}

	game, err := registry.Create(gameID, host)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run ledger", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.RunGame(game, runtimeConfig(settings), tui.GameOptions{
		Store:  store,
		Logger: logger,
		Player: localPlayer(),
		Keys:   tui.NewKeyMapper(settings.Keys),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
