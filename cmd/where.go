package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "report the vacuum's position and the resolved dance center",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg := ballet.FromEnv()
		dev, err := newDevice(ctx, cfg)
		if err != nil {
			return err
		}

		st, err := dev.Status(ctx)
		if err != nil || st.Position == nil {
			fmt.Println("position: unknown")
		} else {
			fmt.Printf("position: (%.0f, %.0f)\n", st.Position.X, st.Position.Y)
		}

		chor := ballet.NewChoreographer(dev, cfg)
		center, source := chor.ResolveCenter(ctx, nil)
		fmt.Printf("dance center: (%.0f, %.0f) from %s\n", center.X, center.Y, source)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whereCmd)
}
