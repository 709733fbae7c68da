package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/trip"
)

var (
	expensePayer string
	expenseDate  string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Track shared expenses",
}

var expenseAddCmd = &cobra.Command{
	Use:   "add <amount> <description>",
	Short: "Record an expense",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.ParseFloat(args[0], 64)
		if err != nil || amount < 0 {
			return fmt.Errorf("invalid amount %q", args[0])
		}
		o, err := openTrip()
		if err != nil {
			return err
		}
		if expensePayer != "" && !hasCompanion(o.Trip, expensePayer) {
			return fmt.Errorf("%w: %s", trip.ErrCompanionNotFound, expensePayer)
		}
		date := expenseDate
		if date == "" {
			date = time.Now().Format(trip.DateLayout)
		}
		o.AddExpense(trip.Expense{
			ID:          uuid.New().String(),
			Description: strings.Join(args[1:], " "),
			Amount:      amount,
			Payer:       expensePayer,
			Date:        date,
		})
		if err := o.save(); err != nil {
			return fmt.Errorf("saving trip: %w", err)
		}
		e := o.Expenses[len(o.Expenses)-1]
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.2f %s paid by %s.\n", e.Amount, o.Currency, e.Payer)
		return nil
	},
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses and totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openTrip()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(o.Expenses) == 0 {
			fmt.Fprintln(out, "No expenses yet.")
			return nil
		}
		for _, e := range o.Expenses {
			fmt.Fprintf(out, "  %s  %-24s %-10s %10.2f\n", e.Date, e.Description, e.Payer, e.Amount)
		}
		fmt.Fprintln(out)
		for _, p := range o.TotalsByPayer() {
			fmt.Fprintf(out, "  %-36s %10.2f\n", p.Payer, p.Amount)
		}
		fmt.Fprintf(out, "  %-36s %10.2f %s\n", "Total", o.Total(), o.Currency)
		if o.ExchangeRate != 0 {
			fmt.Fprintf(out, "  %-36s %10.2f\n", "Total (home currency)", o.TotalHome())
		}
		return nil
	},
}

var expenseSettleCmd = &cobra.Command{
	Use:   "settle",
	Short: "Show who pays whom to split expenses equally",
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openTrip()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		transfers := o.Settle()
		if len(transfers) == 0 {
			fmt.Fprintln(out, "All settled.")
			return nil
		}
		for _, t := range transfers {
			fmt.Fprintf(out, "  %s pays %s %.2f\n", t.From, t.To, t.Amount)
		}
		return nil
	},
}

func hasCompanion(t *trip.Trip, name string) bool {
	for _, c := range t.Companions {
		if c == name {
			return true
		}
	}
	return false
}

func init() {
	expenseAddCmd.Flags().StringVar(&expensePayer, "payer", "", "who paid (default: first companion)")
	expenseAddCmd.Flags().StringVar(&expenseDate, "date", "", "date of the expense (default: today)")
	expenseCmd.AddCommand(expenseAddCmd, expenseListCmd, expenseSettleCmd)
	rootCmd.AddCommand(expenseCmd)
}
