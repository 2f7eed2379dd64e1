package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "start a normal cleaning run",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dev, err := newDevice(ctx, ballet.FromEnv())
		if err != nil {
			return err
		}
		if err := dev.Clean(ctx); err != nil {
			return err
		}
		fmt.Println("cleaning started")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
