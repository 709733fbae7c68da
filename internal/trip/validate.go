package trip

import (
	"fmt"

	"github.com/fakeyudi/tripline/internal/timeline"
)

// Problem is something in the itinerary the editor should flag. Problems
// never block recalculation.
type Problem struct {
	Day        int
	ActivityID string
	Message    string
}

func (p Problem) String() string {
	if p.ActivityID == "" {
		return fmt.Sprintf("day %d: %s", p.Day, p.Message)
	}
	return fmt.Sprintf("day %d, %s: %s", p.Day, p.ActivityID, p.Message)
}

// Validate reports inconsistencies across the itinerary.
func (t *Trip) Validate() []Problem {
	var problems []Problem
	for _, d := range t.Itinerary {
		seen := make(map[string]bool, len(d.Activities))
		for _, a := range d.Activities {
			add := func(format string, args ...any) {
				problems = append(problems, Problem{Day: d.Day, ActivityID: a.ID, Message: fmt.Sprintf(format, args...)})
			}
			if a.ID == "" {
				add("activity has no id")
			} else if seen[a.ID] {
				add("duplicate activity id")
			}
			seen[a.ID] = true

			if a.DurationMinutes < 0 {
				add("negative duration %d", a.DurationMinutes)
			}
			switch a.Type {
			case timeline.Flight:
				if a.FlightDetails == nil {
					add("flight has no schedule; it is placed like a regular activity")
				}
			case timeline.Sight, timeline.Food, timeline.Transport, timeline.Other:
				if a.FlightDetails != nil {
					add("%s activity carries flight details", a.Type)
				}
			}
		}
	}
	return problems
}
