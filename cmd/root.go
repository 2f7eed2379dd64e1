/*
Copyright © 2025 Shane Neeley
*/
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
	"github.com/Shane-Neeley/vacuum-ballet/ballet/sim"
)

var useSim bool

var rootCmd = &cobra.Command{
	Use:   "vacuum-ballet",
	Short: "Make a robot vacuum dance",
	Long: `vacuum-ballet drives a robot vacuum through simple geometric dance
patterns (circle, square, figure8, liss, spin, spin_crazy) by sending
go-to waypoints paced to a beat.

Credentials come from ROBO_EMAIL and ROBO_PASSWORD (a .env file works);
pass --sim to rehearse against the built-in simulated vacuum instead.`,
	SilenceUsage: true,
}

// Execute runs the root command. Non-zero exit on an aborted run, with
// the reason on stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadEnv)
	rootCmd.PersistentFlags().BoolVar(&useSim, "sim", false,
		"rehearse against the built-in simulated vacuum")
}

func loadEnv() {
	// A missing .env just means plain environment variables.
	_ = godotenv.Load()
}

// connectCloud is installed by the cloud transport binding. It stays
// nil when the binding is not linked in, in which case only --sim works.
var connectCloud func(ctx context.Context, email, password string) (ballet.Device, error)

// newDevice resolves the device a command will drive.
func newDevice(ctx context.Context, cfg ballet.Config) (ballet.Device, error) {
	if useSim {
		return sim.New(ballet.FallbackCenter), nil
	}
	if cfg.Email == "" || cfg.Password == "" {
		return nil, errors.New("ROBO_EMAIL and ROBO_PASSWORD must be set (or pass --sim)")
	}
	if connectCloud == nil {
		return nil, errors.New("cloud transport unavailable in this build; pass --sim")
	}
	return connectCloud(ctx, cfg.Email, cfg.Password)
}
