package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/tripline/internal/timeline"
)

var (
	addDay      int
	addTime     string
	addDuration int
	addType     string
	addDesc     string
	addPlace    string
	addAddress  string
	addArrive   string
	addFrom     string
	addTo       string
	addFlight   string
	addAirline  string
	addAltOf    string
)

var addCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add an activity to a day and recalculate its timeline",
	Long: `Add an activity to a day. Start times after the first activity are
derived from durations, so --time only matters for a day's first activity
and for flights, where it is the departure time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := openTrip()
		if err != nil {
			return err
		}
		d, err := o.Day(addDay)
		if err != nil {
			return err
		}

		a := timeline.Activity{
			ID:              uuid.New().String(),
			Type:            timeline.ParseType(addType),
			Description:     strings.TrimSpace(addDesc + " " + strings.Join(args, " ")),
			DurationMinutes: cfg.DefaultDuration,
		}
		if cmd.Flags().Changed("duration") {
			if addDuration < 0 {
				return fmt.Errorf("duration must not be negative, got %d", addDuration)
			}
			a.DurationMinutes = addDuration
		}
		a.Location = timeline.Location{Name: addPlace, Address: addAddress}

		switch {
		case a.Type == timeline.Flight:
			if addTime == "" {
				return fmt.Errorf("a flight needs --time (departure)")
			}
			a.FlightDetails = flightDetails(addTime, addArrive)
			a.Time = a.FlightDetails.DepartureTime
			a.DurationMinutes = 0
		case addTime != "":
			a.Time = timeline.FormatMinutes(timeline.ParseTime(addTime))
		case len(d.Activities) == 0:
			a.Time = cfg.DefaultStart
		}

		if addAltOf != "" {
			return addAlternative(cmd, o, a)
		}

		if err := o.AddActivity(addDay, a); err != nil {
			return err
		}
		if err := o.save(); err != nil {
			return fmt.Errorf("saving trip: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s to day %d.\n", shortID(a.ID), addDay)
		printDay(cmd.OutOrStdout(), d)
		return nil
	},
}

func flightDetails(departure, arrival string) *timeline.FlightDetails {
	dep := timeline.ParseTime(departure)
	arr := dep + cfg.FlightDuration
	if arrival != "" {
		arr = timeline.ParseTime(arrival)
	}
	length := ((arr-dep)%(24*60) + 24*60) % (24 * 60)
	return &timeline.FlightDetails{
		DepartureTime:    timeline.FormatMinutes(dep),
		DepartureAirport: strings.ToUpper(addFrom),
		ArrivalTime:      timeline.FormatMinutes(arr),
		ArrivalAirport:   strings.ToUpper(addTo),
		FlightNumber:     strings.ToUpper(addFlight),
		Duration:         fmt.Sprintf("%dh %02dm", length/60, length%60),
		Airline:          addAirline,
	}
}

func addAlternative(cmd *cobra.Command, o *openedTrip, alt timeline.Activity) error {
	day, id, err := resolveActivity(o.Trip, addAltOf)
	if err != nil {
		return err
	}
	_, idx, err := o.FindActivity(id)
	if err != nil {
		return err
	}
	d, err := o.Day(day)
	if err != nil {
		return err
	}
	target := d.Activities[idx].Clone()
	target.Alternatives = append(target.Alternatives, alt)
	if err := o.UpdateActivity(day, target); err != nil {
		return err
	}
	if err := o.save(); err != nil {
		return fmt.Errorf("saving trip: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added alternative %d to %s.\n", len(target.Alternatives), shortID(id))
	return nil
}

func init() {
	addCmd.Flags().IntVar(&addDay, "day", 1, "day number (1-based)")
	addCmd.Flags().StringVar(&addTime, "time", "", "start time (first activity) or departure time (flight)")
	addCmd.Flags().IntVar(&addDuration, "duration", 0, "duration in minutes (default from config)")
	addCmd.Flags().StringVar(&addType, "type", "sight", "sight, food, transport, flight or other")
	addCmd.Flags().StringVar(&addDesc, "desc", "", "description")
	addCmd.Flags().StringVar(&addPlace, "place", "", "place name")
	addCmd.Flags().StringVar(&addAddress, "address", "", "street address")
	addCmd.Flags().StringVar(&addArrive, "arrive", "", "flight arrival time (default departure + flight_duration)")
	addCmd.Flags().StringVar(&addFrom, "from", "", "departure airport")
	addCmd.Flags().StringVar(&addTo, "to", "", "arrival airport")
	addCmd.Flags().StringVar(&addFlight, "flight", "", "flight number")
	addCmd.Flags().StringVar(&addAirline, "airline", "", "airline")
	addCmd.Flags().StringVar(&addAltOf, "alt-of", "", "add as an alternative of this activity instead")
	rootCmd.AddCommand(addCmd)
}
