package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

var traceOut string

var traceCmd = &cobra.Command{
	Use:   "trace <pattern> [size_mm]",
	Short: "render a pattern preview image without moving the robot",
	Long: `trace draws the waypoint path a dance would follow and writes it as a
PNG, so a pattern can be checked before the robot runs it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := ballet.ParseKind(args[0])
		if err != nil {
			return err
		}
		size, _, err := sizeBeatArgs(args)
		if err != nil {
			return err
		}

		cfg := ballet.FromEnv()
		pat, _, err := ballet.BuildPattern(cfg, kind, ballet.Point{}, size)
		if err != nil {
			return err
		}
		pts, err := pat.Waypoints()
		if err != nil {
			return err
		}
		img, err := ballet.RenderTrace(pts, 512, 512)
		if err != nil {
			return err
		}

		f, err := os.Create(traceOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, img); err != nil {
			return err
		}
		fmt.Printf("wrote %s (%d waypoints)\n", traceOut, len(pts))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)
	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "trace.png", "output PNG path")
}
