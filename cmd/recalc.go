package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/timeline"
)

var recalcDay int

var recalcCmd = &cobra.Command{
	Use:   "recalc",
	Short: "Recalculate start times and save the trip",
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openTrip()
		if err != nil {
			return err
		}

		changed := 0
		if recalcDay == 0 {
			changed = o.RecalculateAll()
		} else {
			d, err := o.Day(recalcDay)
			if err != nil {
				return err
			}
			next := timeline.Recalculate(d.Activities)
			for i := range next {
				if next[i].Time != d.Activities[i].Time {
					changed++
				}
			}
			d.Activities = next
		}

		if changed > 0 {
			if err := o.save(); err != nil {
				return fmt.Errorf("saving trip: %w", err)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d start time(s) changed.\n", changed)
		return printTrip(cmd.OutOrStdout(), o.Trip, recalcDay)
	},
}

func init() {
	recalcCmd.Flags().IntVar(&recalcDay, "day", 0, "only this day (default: all days)")
	rootCmd.AddCommand(recalcCmd)
}
