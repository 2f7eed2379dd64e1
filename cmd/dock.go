package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

// dockCmd sends the vacuum home. The show has to end somehow.
var dockCmd = &cobra.Command{
	Use:   "dock",
	Short: "send the vacuum back to its charging dock",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dev, err := newDevice(ctx, ballet.FromEnv())
		if err != nil {
			return err
		}
		if err := dev.Dock(ctx); err != nil {
			return err
		}
		fmt.Println("returning to dock")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dockCmd)
}
