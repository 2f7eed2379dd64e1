package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "show the vacuum's state and battery",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		dev, err := newDevice(ctx, ballet.FromEnv())
		if err != nil {
			return err
		}
		st, err := dev.Status(ctx)
		if err != nil {
			return err
		}

		state := st.State
		if state == "" {
			state = "unknown"
		}
		battery := "unknown"
		if st.Battery != nil {
			battery = fmt.Sprintf("%d%%", *st.Battery)
		}
		fmt.Printf("State: %s, Battery: %s\n", state, battery)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
