package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <activity-id>",
	Short: "Remove an activity and recalculate its day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openTrip()
		if err != nil {
			return err
		}
		day, id, err := resolveActivity(o.Trip, args[0])
		if err != nil {
			return err
		}
		if err := o.RemoveActivity(day, id); err != nil {
			return err
		}
		return saveAndPrintDay(cmd, o, day, fmt.Sprintf("Removed %s.", shortID(id)))
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <activity-id> <position>",
	Short: "Move an activity to a 1-based position within its day",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid position %q", args[1])
		}
		o, err := openTrip()
		if err != nil {
			return err
		}
		day, id, err := resolveActivity(o.Trip, args[0])
		if err != nil {
			return err
		}
		if err := o.MoveActivity(day, id, pos-1); err != nil {
			return err
		}
		return saveAndPrintDay(cmd, o, day, fmt.Sprintf("Moved %s to position %d.", shortID(id), pos))
	},
}

var altCmd = &cobra.Command{
	Use:   "alt <activity-id> <n>",
	Short: "Swap an activity with its n-th alternative",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid alternative %q", args[1])
		}
		o, err := openTrip()
		if err != nil {
			return err
		}
		day, id, err := resolveActivity(o.Trip, args[0])
		if err != nil {
			return err
		}
		if err := o.SwapAlternative(day, id, n-1); err != nil {
			return err
		}
		return saveAndPrintDay(cmd, o, day, fmt.Sprintf("Swapped in alternative %d.", n))
	},
}

func saveAndPrintDay(cmd *cobra.Command, o *openedTrip, day int, msg string) error {
	if err := o.save(); err != nil {
		return fmt.Errorf("saving trip: %w", err)
	}
	d, err := o.Day(day)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	printDay(cmd.OutOrStdout(), d)
	return nil
}

func init() {
	rootCmd.AddCommand(rmCmd, mvCmd, altCmd)
}
