// invaders is Alien Invasion for the terminal: shoot down a marching fleet
// before it reaches your ship.
//
// Usage:
//
//	invaders play            - Play a game
//	invaders scores          - Show the score history
//	invaders serve           - Start SSH server for remote play
//	invaders list            - List available games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.invaders/scores.db)
//	--high-score <path>   - Set high score file (default: ~/.invaders/high_score.txt)
//	--log <path>          - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invasion"
)

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagHighScore string
	flagLogPath   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Alien Invasion - defend the bottom of your terminal",
	Long: `Alien Invasion is a terminal arcade shooter. A fleet of aliens marches
across the screen and drops a row at every edge; shoot them all before they
reach your ship. Each cleared fleet brings a faster, more valuable one.

Available commands:
  play     - Play the game
  scores   - View the score history
  serve    - Start SSH server for remote play
  list     - Show available games

Examples:
  invaders play
  invaders play --difficulty hard
  invaders serve --ssh :2222
  invaders scores --plain`,
	SilenceUsage: true,
}

func init() {
	dir := "~/" + config.AppDir

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", dir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "high-score", dir+"/high_score.txt", "Path to the high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// gameID is the only game shipped.
const gameID = invasion.GameID

// openLogger returns a logger writing to the --log file, or a discarding one.
// The returned close func is always safe to call.
func openLogger(prefix string) (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
