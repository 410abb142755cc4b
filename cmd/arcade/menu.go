package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Leaving a game returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  arcade menu
  arcade menu --seed 42`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runTUI(tui.AppOptions{})
}
