package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/trip"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved trips",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := trip.NewStore()
		if err != nil {
			return err
		}
		trips, err := store.List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(trips) == 0 {
			fmt.Fprintln(out, "No trips yet. Create one with 'tripline new'.")
			return nil
		}
		current, err := store.Current()
		if err != nil && !errors.Is(err, trip.ErrNoTrip) {
			return err
		}
		for _, s := range trips {
			marker := " "
			if s.ID == current {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s  %-20s %s to %s  (%d days)\n", marker, s.ID, s.Destination, s.StartDate, s.EndDate, s.Days)
		}
		return nil
	},
}

var useCmd = &cobra.Command{
	Use:   "use <trip-id>",
	Short: "Make a saved trip the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := trip.NewStore()
		if err != nil {
			return err
		}
		t, err := store.Load(args[0])
		if err != nil {
			return err
		}
		if err := store.SetCurrent(t.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Now planning %s.\n", t.Destination)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <trip-id>",
	Short: "Delete a saved trip",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := trip.NewStore()
		if err != nil {
			return err
		}
		if err := store.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted trip %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd, useCmd, deleteCmd)
}
