package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

// listCloudDevices is installed by the cloud transport binding
// alongside connectCloud.
var listCloudDevices func(ctx context.Context, email, password string) ([]string, error)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "list vacuums on the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if useSim {
			fmt.Println("sim (simulated S4 Max)")
			return nil
		}
		cfg := ballet.FromEnv()
		if cfg.Email == "" || cfg.Password == "" {
			return errors.New("ROBO_EMAIL and ROBO_PASSWORD must be set (or pass --sim)")
		}
		if listCloudDevices == nil {
			return errors.New("cloud transport unavailable in this build; pass --sim")
		}
		names, err := listCloudDevices(cmd.Context(), cfg.Email, cfg.Password)
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
