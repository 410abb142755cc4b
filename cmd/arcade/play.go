package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/games/asteroids"
	"github.com/vovakirdan/rocket-arcade/internal/games/rocket"
	"github.com/vovakirdan/rocket-arcade/internal/platform/tui"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCollision  string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, H/L  - Steer (asteroids)
  Space/Up/W       - Jump (rocket)
  R                - Retry (after game over)
  Q/Esc            - Leave the game
  Ctrl+C           - Exit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Collision options:
  freeze     - Obstacles stay where they were before the fatal tick
  immediate  - Obstacles keep the position they moved to

Examples:
  arcade play asteroids
  arcade play rocket --difficulty easy
  arcade play asteroids --collision immediate
  arcade play rocket --config ./my-rocket.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagCollision, "collision", "", "Collision policy: freeze, immediate")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}
	if err := configureGame(gameID); err != nil {
		return err
	}

	return runTUI(tui.AppOptions{GameID: gameID})
}

// configureGame validates the play flags and hands them to the game package
// before the game is created.
func configureGame(gameID string) error {
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}
	if flagCollision != "" {
		if _, err := config.ParseCollisionPolicy(flagCollision); err != nil {
			return err
		}
	}

	switch gameID {
	case "asteroids":
		if _, err := config.LoadAsteroids(flagConfig); err != nil {
			return err
		}
		asteroids.SetConfigPath(flagConfig)
		asteroids.SetDifficultyPreset(flagDifficulty)
		asteroids.SetCollisionPolicy(flagCollision)
	case "rocket":
		if _, err := config.LoadRocket(flagConfig); err != nil {
			return err
		}
		rocket.SetConfigPath(flagConfig)
		rocket.SetDifficultyPreset(flagDifficulty)
		rocket.SetCollisionPolicy(flagCollision)
	}
	return nil
}

// runTUI runs the arcade on the local terminal, sized to the terminal.
func runTUI(opts tui.AppOptions) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	opts.Runtime = core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
	opts.Logger = logger
	opts.Context = ctx

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running arcade: %w", err)
	}
	return nil
}
