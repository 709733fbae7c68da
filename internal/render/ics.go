package render

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/fakeyudi/tripline/internal/timeline"
	"github.com/fakeyudi/tripline/internal/trip"
)

// ICSRenderer renders a Trip as an iCalendar file with one event per
// activity.
type ICSRenderer struct {
	// Location anchors day dates and clock times. Nil means time.Local.
	Location *time.Location
	// Stamp is written as DTSTAMP; zero means now.
	Stamp time.Time
}

func (r *ICSRenderer) Render(t *trip.Trip) ([]byte, error) {
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	stamp := r.Stamp
	if stamp.IsZero() {
		stamp = time.Now()
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//tripline//itinerary//EN")
	cal.SetXWRCalName(t.Destination)

	for _, d := range t.Itinerary {
		date, err := time.ParseInLocation(trip.DateLayout, d.Date, loc)
		if err != nil {
			return nil, fmt.Errorf("day %d: bad date %q: %w", d.Day, d.Date, err)
		}
		for _, span := range DaySpans(date, d.Activities) {
			a := span.Activity
			ev := cal.AddEvent(a.ID + "@tripline")
			ev.SetDtStampTime(stamp)
			ev.SetStartAt(span.Start)
			ev.SetEndAt(span.End)
			ev.SetSummary(summary(a))
			if place := placeOf(a); place != "" {
				ev.SetLocation(place)
			}
			if a.Description != "" {
				ev.SetDescription(a.Description)
			}
			ev.SetProperty(ical.ComponentPropertyCategories, strings.ToUpper(string(a.Type)))
		}
	}

	return []byte(cal.Serialize()), nil
}

// Span is an activity placed on the calendar.
type Span struct {
	Activity timeline.Activity
	Start    time.Time
	End      time.Time
}

// DaySpans anchors a day's activities to concrete times on date. The
// rendered clock wraps at midnight, so a start earlier than the previous
// one is taken to be on the following day. Flights span departure to
// arrival, arriving the next day when arrival is before departure.
func DaySpans(date time.Time, activities []timeline.Activity) []Span {
	spans := make([]Span, 0, len(activities))
	offset, prev := 0, -1
	for _, a := range activities {
		startText := a.Time
		if a.IsFlight() && a.FlightDetails.DepartureTime != "" {
			startText = a.FlightDetails.DepartureTime
		}
		start := timeline.ParseTime(startText) % (24 * 60)
		if start < prev {
			offset += 24 * 60
		}
		prev = start

		var end int
		if a.IsFlight() {
			end = timeline.ParseTime(a.FlightDetails.ArrivalTime) % (24 * 60)
			if end < start {
				end += 24 * 60
			}
		} else {
			end = start + a.DurationMinutes
		}

		spans = append(spans, Span{
			Activity: a,
			Start:    date.Add(time.Duration(offset+start) * time.Minute),
			End:      date.Add(time.Duration(offset+end) * time.Minute),
		})
	}
	return spans
}

func summary(a timeline.Activity) string {
	if a.IsFlight() {
		fd := a.FlightDetails
		s := strings.TrimSpace(fmt.Sprintf("Flight %s %s → %s", fd.FlightNumber, fd.DepartureAirport, fd.ArrivalAirport))
		if a.Description != "" {
			s += ": " + a.Description
		}
		return s
	}
	if a.Description != "" {
		return a.Description
	}
	if a.Location.Name != "" {
		return a.Location.Name
	}
	return a.Type.Label()
}

func placeOf(a timeline.Activity) string {
	switch {
	case a.Location.Address != "" && a.Location.Name != "":
		return a.Location.Name + ", " + a.Location.Address
	case a.Location.Name != "":
		return a.Location.Name
	}
	return a.Location.Address
}
