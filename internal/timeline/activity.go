// Package timeline derives start times for one day's ordered activities.
//
// Everything here is pure: no I/O, no shared state, safe to call from any
// goroutine on independent inputs.
package timeline

import "strings"

// Type is the closed set of activity kinds.
type Type string

const (
	Sight     Type = "sight"
	Food      Type = "food"
	Transport Type = "transport"
	Flight    Type = "flight"
	Other     Type = "other"
)

// Types lists every activity kind in display order.
var Types = []Type{Sight, Food, Transport, Flight, Other}

// ParseType maps a tag to its Type, case-insensitively. Unknown or empty
// tags become Other.
func ParseType(s string) Type {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Sight:
		return Sight
	case Food:
		return Food
	case Transport:
		return Transport
	case Flight:
		return Flight
	case Other:
		return Other
	}
	return Other
}

// Label returns the display name of t.
func (t Type) Label() string {
	switch t {
	case Sight:
		return "Sight"
	case Food:
		return "Food"
	case Transport:
		return "Transport"
	case Flight:
		return "Flight"
	case Other:
		return "Other"
	}
	return "Other"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(ParseType(string(t))), nil
}

func (t *Type) UnmarshalText(text []byte) error {
	*t = ParseType(string(text))
	return nil
}

// Location is where an activity happens. The engine never reads it.
type Location struct {
	Name    string  `json:"name" yaml:"name"`
	Address string  `json:"address,omitempty" yaml:"address,omitempty"`
	Lat     float64 `json:"lat" yaml:"lat"`
	Lng     float64 `json:"lng" yaml:"lng"`
}

// FlightDetails carries the airline schedule for a flight activity.
// DepartureTime and ArrivalTime are authoritative.
type FlightDetails struct {
	DepartureTime    string `json:"departureTime" yaml:"departureTime"`
	DepartureAirport string `json:"departureAirport" yaml:"departureAirport"`
	ArrivalTime      string `json:"arrivalTime" yaml:"arrivalTime"`
	ArrivalAirport   string `json:"arrivalAirport" yaml:"arrivalAirport"`
	FlightNumber     string `json:"flightNumber" yaml:"flightNumber"`
	Duration         string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Airline          string `json:"airline,omitempty" yaml:"airline,omitempty"`
}

// Activity is one scheduled item in a day.
type Activity struct {
	ID              string         `json:"id" yaml:"id"`
	Time            string         `json:"time" yaml:"time"`
	DurationMinutes int            `json:"durationMinutes" yaml:"durationMinutes"`
	Description     string         `json:"description" yaml:"description"`
	Location        Location       `json:"location" yaml:"location"`
	Type            Type           `json:"type" yaml:"type"`
	Icon            string         `json:"icon,omitempty" yaml:"icon,omitempty"`
	FlightDetails   *FlightDetails `json:"flightDetails,omitempty" yaml:"flightDetails,omitempty"`
	Alternatives    []Activity     `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// IsFlight reports whether a is a flight carrying its own schedule.
func (a Activity) IsFlight() bool {
	return a.Type == Flight && a.FlightDetails != nil
}

// Clone returns a deep copy of a. The copy shares no pointers or slices
// with the original.
func (a Activity) Clone() Activity {
	c := a
	if a.FlightDetails != nil {
		fd := *a.FlightDetails
		c.FlightDetails = &fd
	}
	if a.Alternatives != nil {
		c.Alternatives = make([]Activity, len(a.Alternatives))
		for i, alt := range a.Alternatives {
			c.Alternatives[i] = alt.Clone()
		}
	}
	return c
}
