package cmd

import (
	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/tui"
)

var (
	plainOutput bool
	showDay     int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Browse the itinerary",
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openTrip()
		if err != nil {
			return err
		}
		if plainOutput {
			return printTrip(cmd.OutOrStdout(), o.Trip, showDay)
		}
		if showDay != 0 {
			if _, err := o.Day(showDay); err != nil {
				return err
			}
		}
		return tui.Run(o.Trip, showDay)
	},
}

func init() {
	showCmd.Flags().BoolVar(&plainOutput, "plain", false, "plain text output instead of TUI")
	showCmd.Flags().IntVar(&showDay, "day", 0, "open on this day")
	rootCmd.AddCommand(showCmd)
}
