package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/trip"
)

var (
	newStart    string
	newEnd      string
	newCurrency string
	newRate     float64
)

var newCmd = &cobra.Command{
	Use:   "new <destination>",
	Short: "Create a trip and make it the current one",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := trip.New(strings.Join(args, " "), newStart, newEnd)
		if err != nil {
			return err
		}
		if p := GetProfile(); p != nil {
			if party := p.Party(); len(party) > 0 {
				t.Companions = party
			}
		}
		t.Currency = strings.ToUpper(newCurrency)
		t.ExchangeRate = newRate

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
		fmt.Fprintf(cmd.OutOrStdout(), "Created trip to %s (%d days), ID: %s\n", t.Destination, len(t.Itinerary), t.ID)
		return nil
	},
}

func init() {
	newCmd.Flags().StringVar(&newStart, "start", "", "first day (YYYY-MM-DD)")
	newCmd.Flags().StringVar(&newEnd, "end", "", "last day (YYYY-MM-DD)")
	newCmd.Flags().StringVar(&newCurrency, "currency", "", "currency expenses are recorded in")
	newCmd.Flags().Float64Var(&newRate, "rate", 0, "exchange rate from trip currency to home currency")
	_ = newCmd.MarkFlagRequired("start")
	_ = newCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(newCmd)
}
