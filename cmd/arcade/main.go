// arcade plays terminal arcade games locally or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade config <game>     - Print a game's default config
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--log-file <path>    - Write structured logs to a file
//	--log-level <level>  - Log level (debug, info, warn, error)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/rocket-arcade/internal/games/asteroids"
	_ "github.com/vovakirdan/rocket-arcade/internal/games/rocket"
)

var (
	// Global flags
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string

	logger  = log.New(io.Discard)
	logSink io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logSink != nil {
		logSink.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Rocket Arcade - dodge asteroids and rocks in your terminal",
	Long: `Rocket Arcade is a pair of small arcade games for the terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  config   - Print a game's default config

Examples:
  arcade list
  arcade play asteroids
  arcade play rocket --difficulty hard
  arcade menu
  arcade serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging opens the log file. Without one, the terminal modes log
// nowhere because stderr shares the screen with the game.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		logSink = f
		w = f
	case cmd.Name() == "serve":
		w = os.Stderr
	default:
		return nil
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return nil
}
