// game is a pirate deck platformer: run, jump and repair leaks before the boat sinks.
//
// Usage:
//
//	game play                  - Sail the deck
//	game replay <file>         - Watch a recorded voyage
//	game sim [--replay <file>] - Run the simulation headless and print a summary
//	game config check          - Validate the config and the stage
//
// Global flags:
//
//	--config <dir>      - Config directory with game.yaml and stages/ (default: built in)
//	--stage <name>      - Stage to load (default: deck)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/younwookim/pirate/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions holds the global flags shared by every command
type rootOptions struct {
	configDir string
	stage     string
	logLevel  string

	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "game",
		Short: "Pirate Deck - keep the boat afloat",
		Long: `Pirate Deck is a small platformer on a leaking boat.
Run and jump across the deck and hold repair next to a leak to patch it.
Every open leak drains the boat; the voyage ends when it sinks.

Examples:
  game play
  game play --record voyage.json
  game play --config ./configs
  game replay voyage.json
  game sim --replay voyage.json
  game config check --config ./configs`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			opts.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				ReportTimestamp: true,
				Prefix:          "pirate",
				Level:           level,
			})
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configDir, "config", "", "Config directory (empty = built in configs)")
	cmd.PersistentFlags().StringVar(&opts.stage, "stage", "deck", "Stage name under stages/")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(newPlayCmd(opts))
	cmd.AddCommand(newReplayCmd(opts))
	cmd.AddCommand(newSimCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// loader reads from --config, or from the configs built into the binary
func (o *rootOptions) loader() (*config.Loader, error) {
	if o.configDir != "" {
		return config.NewLoader(o.configDir), nil
	}
	sub, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("built in configs: %w", err)
	}
	return config.NewFSLoader(sub, "built in"), nil
}

// load reads and validates the game config and the named stage
func (o *rootOptions) load(stage string) (*config.Loader, *config.GameConfig, *config.StageConfig, error) {
	loader, err := o.loader()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config %s: %w", loader.BasePath(), err)
	}
	stageCfg, err := loader.LoadStage(stage)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("config %s: %w", loader.BasePath(), err)
	}
	if stageCfg.ID == "" {
		stageCfg.ID = stage
	}
	return loader, cfg, stageCfg, nil
}
