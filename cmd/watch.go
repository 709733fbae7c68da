package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/trip"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Keep a hand-edited trip file's timeline recalculated",
	Long: `Watch a JSON or YAML trip file. Every time it is saved, every day is
recalculated and the file is rewritten if any start time changed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		w := &trip.Watcher{
			Path:   args[0],
			Logger: newLogger(cmd.ErrOrStderr()),
			OnSync: func(t *trip.Trip, changed int) {
				fmt.Fprintf(out, "Recalculated %s: %d start time(s) changed.\n", t.Destination, changed)
			},
		}
		fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", args[0])
		return w.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
