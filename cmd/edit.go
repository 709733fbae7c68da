package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/timeline"
)

var (
	editTime     string
	editDuration int
	editType     string
	editDesc     string
	editPlace    string
	editArrive   string
)

var editCmd = &cobra.Command{
	Use:   "edit <activity-id>",
	Short: "Change an activity and recalculate its day",
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
		d, err := o.Day(day)
		if err != nil {
			return err
		}
		_, idx, err := o.FindActivity(id)
		if err != nil {
			return err
		}
		a := d.Activities[idx].Clone()

		flags := cmd.Flags()
		if flags.Changed("type") {
			a.Type = timeline.ParseType(editType)
		}
		if flags.Changed("duration") {
			if editDuration < 0 {
				return fmt.Errorf("duration must not be negative, got %d", editDuration)
			}
			a.DurationMinutes = editDuration
		}
		if flags.Changed("desc") {
			a.Description = editDesc
		}
		if flags.Changed("place") {
			a.Location.Name = editPlace
		}

		switch {
		case a.Type == timeline.Flight:
			if a.FlightDetails == nil {
				dep := a.Time
				if flags.Changed("time") {
					dep = editTime
				}
				a.FlightDetails = flightDetails(dep, editArrive)
			} else {
				if flags.Changed("time") {
					a.FlightDetails.DepartureTime = timeline.FormatMinutes(timeline.ParseTime(editTime))
				}
				if flags.Changed("arrive") {
					a.FlightDetails.ArrivalTime = timeline.FormatMinutes(timeline.ParseTime(editArrive))
				}
			}
			a.Time = a.FlightDetails.DepartureTime
		default:
			a.FlightDetails = nil
			if flags.Changed("time") {
				a.Time = timeline.FormatMinutes(timeline.ParseTime(editTime))
			}
		}

		if err := o.UpdateActivity(day, a); err != nil {
			return err
		}
		if err := o.save(); err != nil {
			return fmt.Errorf("saving trip: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s.\n", shortID(id))
		printDay(cmd.OutOrStdout(), d)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editTime, "time", "", "start time (first activity) or departure time (flight)")
	editCmd.Flags().IntVar(&editDuration, "duration", 0, "duration in minutes")
	editCmd.Flags().StringVar(&editType, "type", "", "sight, food, transport, flight or other")
	editCmd.Flags().StringVar(&editDesc, "desc", "", "description")
	editCmd.Flags().StringVar(&editPlace, "place", "", "place name")
	editCmd.Flags().StringVar(&editArrive, "arrive", "", "flight arrival time")
	rootCmd.AddCommand(editCmd)
}
