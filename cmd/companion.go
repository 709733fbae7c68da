package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var companionCmd = &cobra.Command{
	Use:   "companion",
	Short: "Manage who shares the trip's expenses",
}

var companionAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a companion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editCompanions(cmd, args[0], true)
	},
}

var companionRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a companion",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editCompanions(cmd, args[0], false)
	},
}

func editCompanions(cmd *cobra.Command, name string, add bool) error {
	o, err := openTrip()
	if err != nil {
		return err
	}
	if add {
		err = o.AddCompanion(name)
	} else {
		err = o.RemoveCompanion(name)
	}
	if err != nil {
		return err
	}
	if err := o.save(); err != nil {
		return fmt.Errorf("saving trip: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Companions: %v\n", o.Companions)
	return nil
}

func init() {
	companionCmd.AddCommand(companionAddCmd, companionRmCmd)
	rootCmd.AddCommand(companionCmd)
}
