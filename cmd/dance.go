/*
Copyright © 2025 Shane Neeley
*/
package cmd

import (
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

const (
	defaultSizeMM = 600
	defaultBeatMS = 500
)

var (
	danceRotateDeg float64
	danceFlipX     bool
	danceFlipY     bool
	danceCenter    []float64
	danceArrival   bool
	danceThreshold float64
	danceTimeoutMS int
)

// danceCmd represents the dance command
var danceCmd = &cobra.Command{
	Use:   "dance <pattern> [size_mm] [beat_ms]",
	Short: "trace a dance pattern on the floor",
	Long: `dance sends the vacuum around a geometric pattern, one waypoint per
beat. Patterns: circle, square, figure8, liss, spin, spin_crazy, or
random to let the robot pick.

Size is the pattern radius (or half-width) in millimeters and is
clamped to a safe range; beat is the pause between waypoints in
milliseconds. Use --arrival to gate each step on the robot actually
getting near the waypoint instead of a fixed beat.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		random := args[0] == "random"
		var kind ballet.Kind
		if !random {
			var err error
			kind, err = ballet.ParseKind(args[0])
			if err != nil {
				return err
			}
		}
		size, beat, err := sizeBeatArgs(args)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg := ballet.FromEnv()
		dev, err := newDevice(ctx, cfg)
		if err != nil {
			return err
		}
		chor := ballet.NewChoreographer(dev, cfg)

		var explicit *ballet.Point
		if len(danceCenter) == 2 {
			explicit = &ballet.Point{X: danceCenter[0], Y: danceCenter[1]}
		} else if len(danceCenter) != 0 {
			return fmt.Errorf("--center wants X,Y, got %d values", len(danceCenter))
		}
		center, source := chor.ResolveCenter(ctx, explicit)
		log.Printf("dance center (%.0f, %.0f) from %s", center.X, center.Y, source)

		var (
			pat     ballet.Pattern
			clamped bool
		)
		if random {
			pat, clamped, err = ballet.RandomPattern(
				rand.New(rand.NewSource(time.Now().UnixNano())), cfg, center, size)
		} else {
			pat, clamped, err = ballet.BuildPattern(cfg, kind, center, size)
		}
		if err != nil {
			return err
		}
		kind = pat.Kind
		if clamped {
			log.Printf("size %.0fmm clamped to %.0fmm", size, pat.Size)
		}

		pacing := ballet.DefaultPacing(time.Duration(beat) * time.Millisecond)
		if danceArrival {
			pacing.Mode = ballet.ArrivalGated
			pacing.ArrivalThresholdMM = danceThreshold
			pacing.ArrivalTimeout = time.Duration(danceTimeoutMS) * time.Millisecond
		}
		tr := ballet.Transform{RotateDeg: danceRotateDeg, FlipX: danceFlipX, FlipY: danceFlipY}

		run, err := chor.Dance(ctx, pat, tr, pacing)
		if err != nil {
			return fmt.Errorf("dance aborted after %d/%d steps: %w",
				run.StepsCompleted, run.StepsTotal, err)
		}
		fmt.Printf("danced %s: %d waypoints\n", kind, run.StepsCompleted)
		return nil
	},
}

// sizeBeatArgs parses the optional positional size and beat arguments.
func sizeBeatArgs(args []string) (size float64, beat int, err error) {
	size, beat = defaultSizeMM, defaultBeatMS
	if len(args) > 1 {
		size, err = strconv.ParseFloat(args[1], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("bad size_mm %q: %w", args[1], err)
		}
	}
	if len(args) > 2 {
		beat, err = strconv.Atoi(args[2])
		if err != nil {
			return 0, 0, fmt.Errorf("bad beat_ms %q: %w", args[2], err)
		}
	}
	return size, beat, nil
}

func init() {
	rootCmd.AddCommand(danceCmd)
	danceCmd.Flags().Float64Var(&danceRotateDeg, "rotate-deg", 0,
		"rotate the pattern clockwise by this many degrees")
	danceCmd.Flags().BoolVar(&danceFlipX, "flipx", false, "mirror the pattern left/right")
	danceCmd.Flags().BoolVar(&danceFlipY, "flipy", false, "mirror the pattern up/down")
	danceCmd.Flags().Float64SliceVar(&danceCenter, "center", nil,
		"dance center as X,Y map millimeters")
	danceCmd.Flags().BoolVar(&danceArrival, "arrival", false,
		"advance when the robot nears each waypoint instead of on a fixed beat")
	danceCmd.Flags().Float64Var(&danceThreshold, "arrival-threshold", ballet.DefaultArrivalThresholdMM,
		"arrival distance threshold in millimeters")
	danceCmd.Flags().IntVar(&danceTimeoutMS, "arrival-timeout", int(ballet.DefaultArrivalTimeout/time.Millisecond),
		"per-step arrival timeout in milliseconds")
}
