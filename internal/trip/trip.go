// Package trip holds the trip aggregate: day plans, companions and the
// shared expense ledger, plus the disk store that persists them.
package trip

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fakeyudi/tripline/internal/timeline"
)

// DateLayout is the layout of trip and day dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDates      = errors.New("invalid trip dates")
	ErrDayNotFound       = errors.New("day not found")
	ErrActivityNotFound  = errors.New("activity not found")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrCompanionExists   = errors.New("companion already exists")
	ErrCompanionNotFound = errors.New("companion not found")
)

// DefaultCompanion is the sole companion of a freshly created trip.
const DefaultCompanion = "me"

// Trip is a whole journey.
type Trip struct {
	ID           string    `json:"id" yaml:"id"`
	Destination  string    `json:"destination" yaml:"destination"`
	StartDate    string    `json:"startDate" yaml:"startDate"`
	EndDate      string    `json:"endDate" yaml:"endDate"`
	Currency     string    `json:"currency,omitempty" yaml:"currency,omitempty"`
	ExchangeRate float64   `json:"exchangeRate,omitempty" yaml:"exchangeRate,omitempty"` // foreign -> home currency
	Companions   []string  `json:"companions" yaml:"companions"`
	Itinerary    []DayPlan `json:"itinerary" yaml:"itinerary"`
	Expenses     []Expense `json:"expenses" yaml:"expenses"`
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	Day            int                 `json:"day" yaml:"day"`
	Date           string              `json:"date" yaml:"date"`
	Location       string              `json:"location,omitempty" yaml:"location,omitempty"`
	Activities     []timeline.Activity `json:"activities" yaml:"activities"`
	Weather        *Weather            `json:"weather,omitempty" yaml:"weather,omitempty"`
	Accommodations []Hotel             `json:"accommodationOptions,omitempty" yaml:"accommodationOptions,omitempty"`
}

// Weather is a cached forecast for a day.
type Weather struct {
	Condition string  `json:"condition" yaml:"condition"`
	MinTemp   float64 `json:"minTemp" yaml:"minTemp"`
	MaxTemp   float64 `json:"maxTemp" yaml:"maxTemp"`
	Icon      string  `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// Hotel is an accommodation option for a night.
type Hotel struct {
	Name         string `json:"name" yaml:"name"`
	Price        string `json:"price" yaml:"price"`
	Currency     string `json:"currency" yaml:"currency"`
	Availability int    `json:"availability" yaml:"availability"`
	Rating       string `json:"rating" yaml:"rating"`
	Address      string `json:"address" yaml:"address"`
	BookingURL   string `json:"bookingUrl" yaml:"bookingUrl"`
	Tag          string `json:"tag,omitempty" yaml:"tag,omitempty"`
}

// Expense is a single payment made by one companion.
type Expense struct {
	ID          string  `json:"id" yaml:"id"`
	Description string  `json:"description" yaml:"description"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Payer       string  `json:"payer" yaml:"payer"`
	Date        string  `json:"date" yaml:"date"`
}

// New creates a trip spanning start..end inclusive with one empty day plan
// per date.
func New(destination, start, end string) (*Trip, error) {
	days := TripDuration(start, end)
	if days == 0 {
		return nil, fmt.Errorf("%w: %q to %q", ErrInvalidDates, start, end)
	}
	first, _ := time.Parse(DateLayout, start)

	itinerary := make([]DayPlan, days)
	for i := range itinerary {
		itinerary[i] = DayPlan{
			Day:        i + 1,
			Date:       first.AddDate(0, 0, i).Format(DateLayout),
			Location:   destination,
			Activities: []timeline.Activity{},
		}
	}

	return &Trip{
		ID:          uuid.New().String(),
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Companions:  []string{DefaultCompanion},
		Itinerary:   itinerary,
		Expenses:    []Expense{},
	}, nil
}

// Day returns the plan for day n (1-based).
func (t *Trip) Day(n int) (*DayPlan, error) {
	for i := range t.Itinerary {
		if t.Itinerary[i].Day == n {
			return &t.Itinerary[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrDayNotFound, n)
}

// FindActivity locates an activity by ID anywhere in the itinerary.
func (t *Trip) FindActivity(id string) (day int, index int, err error) {
	for _, d := range t.Itinerary {
		for i, a := range d.Activities {
			if a.ID == id {
				return d.Day, i, nil
			}
		}
	}
	return 0, -1, fmt.Errorf("%w: %s", ErrActivityNotFound, id)
}
