package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Alien Invasion",
	Long: `Start a game of Alien Invasion.

Controls:
  Left/A, Right/D  - Steer the ship (hold)
  Space            - Fire
  Enter/P/Click    - Start from the Play button
  P                - Pause / resume
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit (saves the high score)

Difficulty options:
  easy   - 5 ships, 5 bullets, slower fleet
  normal - Configured values
  hard   - 2 ships, 2 bullets, faster fleet
  fixed  - Speeds never increase between levels

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invasion.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger("invaders")
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	})
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	keeper, err := storage.NewHighScoreFile(flagHighScore)
	if err != nil {
		return err
	}
	logger.Debug("high score file", "path", keeper.Path())

	// Score history is optional; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	logger.Info("starting game", "size", fmt.Sprintf("%dx%d", width, height), "fps", flagFPS, "difficulty", flagDifficulty)
	runErr := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Keeper: keeper,
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
