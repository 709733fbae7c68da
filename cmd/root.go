package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/config"
	"github.com/fakeyudi/tripline/internal/profile"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

// activeProfile holds the loaded user profile.
var activeProfile *profile.Profile

var (
	tripFlag    string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "tripline",
	Short: "Plan trip days whose timelines keep themselves consistent",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip setup check for the setup command itself.
		if cmd.Name() == "setup" {
			return nil
		}

		// First-run: profile missing → run setup wizard automatically.
		// Only do this when stdin is an interactive terminal.
		if !profile.Exists() {
			if term.IsTerminal(os.Stdin.Fd()) {
				fmt.Fprintln(cmd.OutOrStdout())
				fmt.Fprintln(cmd.OutOrStdout(), "  Welcome to tripline! Looks like this is your first time.")
				if err := runSetup(cmd.InOrStdin(), cmd.OutOrStdout(), true); err != nil {
					return err
				}
			}
			// Non-interactive (tests, pipes): continue with defaults, no profile required.
		}

		return loadSettings()
	},
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}

// GetProfile returns the active user profile.
func GetProfile() *profile.Profile {
	return activeProfile
}

// loadSettings loads the profile and merged config into the package state.
// Profile preferences only apply where config left the defaults in place.
func loadSettings() error {
	activeProfile = nil
	if profile.Exists() {
		p, err := profile.Load()
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}
		activeProfile = p
	}

	global, err := config.LoadGlobal()
	if err != nil {
		return fmt.Errorf("loading global config: %w", err)
	}
	project, err := config.LoadProject()
	if err != nil {
		return fmt.Errorf("loading project config: %w", err)
	}
	cfg = config.Merge(global, project)

	if p := activeProfile; p != nil {
		defaults := config.Defaults()
		if cfg.DefaultFormat == defaults.DefaultFormat && p.DefaultFormat != "" {
			cfg.DefaultFormat = p.DefaultFormat
		}
		if cfg.OutputDir == defaults.OutputDir && p.OutputDir != "" {
			cfg.OutputDir = p.OutputDir
		}
	}
	return nil
}

// newLogger returns the diagnostic logger for long-running commands.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verboseFlag {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tripFlag, "trip", "", "trip ID or path to a trip file (default: current trip)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "verbose diagnostic output")
}
