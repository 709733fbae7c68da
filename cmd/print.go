package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fakeyudi/tripline/internal/render"
	"github.com/fakeyudi/tripline/internal/timeline"
	"github.com/fakeyudi/tripline/internal/trip"
)

// printDay writes a day's timeline as plain text.
func printDay(w io.Writer, d *trip.DayPlan) {
	fmt.Fprintf(w, "## Day %d  %s  %s\n", d.Day, d.Date, d.Location)
	if len(d.Activities) == 0 {
		fmt.Fprintln(w, "  (nothing planned)")
		return
	}
	for _, a := range d.Activities {
		var detail string
		if a.IsFlight() {
			detail = fmt.Sprintf("lands %s", a.FlightDetails.ArrivalTime)
		} else {
			detail = fmt.Sprintf("%d min, until %s", a.DurationMinutes, timeline.FormatMinutes(timeline.EndOf(a)))
		}
		fmt.Fprintf(w, "  %s  %-9s  %-8s  %s (%s)\n", a.Time, a.Type.Label(), shortID(a.ID), render.Describe(a), detail)
		for i, alt := range a.Alternatives {
			fmt.Fprintf(w, "             alt %d: %s\n", i+1, render.Describe(alt))
		}
	}
}

// printTrip writes a plain-text itinerary. day 0 prints every day.
func printTrip(w io.Writer, t *trip.Trip, day int) error {
	fmt.Fprintf(w, "# %s (%s to %s)\n", t.Destination, t.StartDate, t.EndDate)
	fmt.Fprintf(w, "  ID:          %s\n", t.ID)
	fmt.Fprintf(w, "  Companions:  %s\n", strings.Join(t.Companions, ", "))
	fmt.Fprintln(w)

	if day != 0 {
		d, err := t.Day(day)
		if err != nil {
			return err
		}
		printDay(w, d)
		return nil
	}
	for i := range t.Itinerary {
		printDay(w, &t.Itinerary[i])
		fmt.Fprintln(w)
	}

	if problems := t.Validate(); len(problems) > 0 {
		fmt.Fprintln(w, "## Problems")
		for _, p := range problems {
			fmt.Fprintf(w, "  ! %s\n", p)
		}
	}
	return nil
}
