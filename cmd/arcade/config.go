package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Print the embedded default YAML config of a game.

Save it to ~/.arcade/configs/<game>.yaml or ./configs/<game>.yaml and edit
any value; missing keys keep their defaults.

Examples:
  arcade config rocket > ~/.arcade/configs/rocket.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !registry.Exists(args[0]) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", args[0])
	}
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("game %q has no config", args[0])
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
