package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/younwookim/pirate/internal/application/system"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the game configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate game.yaml, the key bindings and the stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, cfg, stageCfg, err := opts.load(opts.stage)
			if err != nil {
				return err
			}
			if _, err := system.ParseKeyBindings(&cfg.Keys); err != nil {
				return fmt.Errorf("config %s: keys: %w", loader.BasePath(), err)
			}
			stage, err := system.LoadStage(stageCfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w, h := stage.PixelSize()
			c := cfg.Controller
			fmt.Fprintf(out, "config:     %s\n", loader.BasePath())
			fmt.Fprintf(out, "stage:      %s %dx%d tiles (%dx%d px), %d solid runs\n",
				stageCfg.ID, stage.Width, stage.Height, w, h, len(stage.SolidRects()))
			fmt.Fprintf(out, "controller: maxSpeed=%g jumpPower=%g coyote=%gs buffer=%gs\n",
				c.MaxSpeed, c.JumpPower, c.CoyoteTime, c.JumpBufferTime)
			fmt.Fprintf(out, "simulation: fixedDt=%gs maxStepsPerFrame=%d\n",
				cfg.Simulation.FixedDT, cfg.Simulation.MaxStepsPerFrame)
			fmt.Fprintln(out, "ok")
			return nil
		},
	})
	return cmd
}
