package main

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"github.com/younwookim/pirate/internal/application/game"
	"github.com/younwookim/pirate/internal/application/replay"
	"github.com/younwookim/pirate/internal/application/scene/playing"
	"github.com/younwookim/pirate/internal/infrastructure/config"
)

func newPlayCmd(opts *rootOptions) *cobra.Command {
	var (
		record string
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Sail the deck",
		Long: `Open the game window.

Controls (default bindings, see keys in game.yaml):
  A/D     - Move
  W       - Jump (hold for a higher jump)
  Space   - Hold next to a leak to repair it
  Q       - Toggle the menu
  Tab     - Hold for controller debug info

With --config, editing game.yaml or the stage file starts a new voyage with the new values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, cfg, stageCfg, err := opts.load(opts.stage)
			if err != nil {
				return err
			}
			if seed != 0 {
				cfg.Simulation.Seed = seed
			}
			if record == "auto" {
				record = replay.GenerateFilename()
			}

			sceneOpts := playing.Options{
				StageName:  opts.stage,
				RecordPath: record,
				Logger:     opts.logger,
			}
			if opts.configDir != "" {
				sceneOpts.Loader = loader
			}

			p, err := playing.New(cfg, stageCfg, sceneOpts)
			if err != nil {
				return err
			}
			return runWindow(cfg, p, "Pirate Deck")
		},
	}

	cmd.Flags().StringVar(&record, "record", "", `Record input to file ("auto" = timestamped name)`)
	cmd.Flags().Int64Var(&seed, "seed", 0, "Leak RNG seed (0 = config value, then time based)")
	return cmd
}

func newReplayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <file>",
		Short: "Watch a recorded voyage",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := replay.LoadReplay(args[0])
			if err != nil {
				return err
			}
			stage := opts.stage
			if data.Stage != "" {
				stage = data.Stage
			}

			_, cfg, stageCfg, err := opts.load(stage)
			if err != nil {
				return err
			}

			p, err := playing.New(cfg, stageCfg, playing.Options{
				StageName: stage,
				Replay:    data,
				Logger:    opts.logger,
			})
			if err != nil {
				return err
			}
			return runWindow(data.GameConfig(cfg), p, fmt.Sprintf("Pirate Deck - replay %s", args[0]))
		},
	}
}

// runWindow runs the scene until the window closes, then lets it save and clean up
func runWindow(cfg *config.GameConfig, p *playing.Playing, title string) error {
	display := cfg.Display
	g := game.New(p, display.ScreenWidth, display.ScreenHeight)
	g.UseClock(time.Now)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(title)
	if display.Framerate > 0 {
		ebiten.SetTPS(display.Framerate)
	}

	err := ebiten.RunGame(g)
	g.Current().OnExit()
	return err
}
