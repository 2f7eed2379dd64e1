package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Shane-Neeley/vacuum-ballet/ballet"
)

var beepCmd = &cobra.Command{
	Use:   "beep [times]",
	Short: "make the vacuum beep",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		times := 1
		if len(args) == 1 {
			var err error
			times, err = strconv.Atoi(args[0])
			if err != nil || times < 1 {
				return fmt.Errorf("bad times %q", args[0])
			}
		}

		ctx := cmd.Context()
		dev, err := newDevice(ctx, ballet.FromEnv())
		if err != nil {
			return err
		}
		for i := 0; i < times; i++ {
			if err := dev.Beep(ctx); err != nil {
				return err
			}
			fmt.Println("beep")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(beepCmd)
}
