package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

var gotoCmd = &cobra.Command{
	Use:   "goto <x> <y>",
	Short: "send the vacuum to a map coordinate",
	Long:  `goto sends a single go-to waypoint in map millimeters.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("bad x %q: %w", args[0], err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad y %q: %w", args[1], err)
		}

		ctx := cmd.Context()
		cfg := ballet.FromEnv()
		dev, err := newDevice(ctx, cfg)
		if err != nil {
			return err
		}
		chor := ballet.NewChoreographer(dev, cfg)
		if err := chor.GoTo(ctx, ballet.Point{X: x, Y: y}); err != nil {
			return err
		}
		fmt.Printf("sent goto (%.0f, %.0f)\n", x, y)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(gotoCmd)
}
