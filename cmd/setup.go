package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/profile"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure tripline (re-run anytime to edit settings)",
	// Bypass the normal PersistentPreRunE so setup works before profile exists.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(cmd.InOrStdin(), cmd.OutOrStdout(), false)
	},
}

// runSetup runs the interactive setup wizard.
// If firstRun is true, a welcome message is shown.
func runSetup(in io.Reader, out io.Writer, firstRun bool) error {
	if firstRun {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Welcome to tripline! Let's get you set up.")
	}

	// Load existing profile as defaults if present.
	var existing *profile.Profile
	if profile.Exists() {
		p, err := profile.Load()
		if err == nil {
			existing = p
		}
	}

	prof, err := profile.RunSetup(in, out, existing)
	if err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}

	if err := profile.Save(prof); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	fmt.Fprintln(out, "  ✓ Profile saved.")
	fmt.Fprintln(out, "  Setup complete. Run 'tripline new <destination> --start YYYY-MM-DD --end YYYY-MM-DD' to plan a trip.")
	fmt.Fprintln(out)
	return nil
}

func init() {
	rootCmd.AddCommand(setupCmd)
}
