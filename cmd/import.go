package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/render"
	"github.com/fakeyudi/tripline/internal/trip"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an exported trip and make it the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", path)
			}
			return err
		}

		t, err := render.ParserForPath(path).Parse(data)
		if err != nil {
			return err
		}
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		changed := t.RecalculateAll()

		store, err := trip.NewStore()
		if err != nil {
			return err
		}
		if err := store.Save(t); err != nil {
			return fmt.Errorf("saving trip: %w", err)
		}
		if err := store.SetCurrent(t.ID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Imported trip to %s (%d days, %d start time(s) corrected), ID: %s\n",
			t.Destination, len(t.Itinerary), changed, t.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
