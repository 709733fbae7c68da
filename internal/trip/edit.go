package trip

import (
	"fmt"

	"github.com/fakeyudi/tripline/internal/timeline"
)

// Every edit builds a fresh activity slice and runs it through
// timeline.Recalculate, so slices handed out earlier are never written to.

// AddActivity appends a to the given day and recalculates it.
func (t *Trip) AddActivity(day int, a timeline.Activity) error {
	d, err := t.Day(day)
	if err != nil {
		return err
	}
	next := make([]timeline.Activity, 0, len(d.Activities)+1)
	next = append(next, d.Activities...)
	next = append(next, a)
	d.Activities = timeline.Recalculate(next)
	return nil
}

// UpdateActivity replaces the activity with a.ID on the given day.
func (t *Trip) UpdateActivity(day int, a timeline.Activity) error {
	d, idx, err := t.locate(day, a.ID)
	if err != nil {
		return err
	}
	next := copyActivities(d.Activities)
	next[idx] = a
	d.Activities = timeline.Recalculate(next)
	return nil
}

// RemoveActivity deletes the activity with the given ID from the day.
func (t *Trip) RemoveActivity(day int, id string) error {
	d, idx, err := t.locate(day, id)
	if err != nil {
		return err
	}
	next := make([]timeline.Activity, 0, len(d.Activities)-1)
	next = append(next, d.Activities[:idx]...)
	next = append(next, d.Activities[idx+1:]...)
	d.Activities = timeline.Recalculate(next)
	return nil
}

// MoveActivity moves the activity to position to (0-based) within its day.
func (t *Trip) MoveActivity(day int, id string, to int) error {
	d, idx, err := t.locate(day, id)
	if err != nil {
		return err
	}
	if to < 0 || to >= len(d.Activities) {
		return fmt.Errorf("%w: %d (day has %d activities)", ErrIndexOutOfRange, to, len(d.Activities))
	}

	moved := d.Activities[idx]
	rest := make([]timeline.Activity, 0, len(d.Activities))
	rest = append(rest, d.Activities[:idx]...)
	rest = append(rest, d.Activities[idx+1:]...)

	next := make([]timeline.Activity, 0, len(d.Activities))
	next = append(next, rest[:to]...)
	next = append(next, moved)
	next = append(next, rest[to:]...)
	d.Activities = timeline.Recalculate(next)
	return nil
}

// SwapAlternative promotes alternative alt of the activity into its slot.
// The replaced activity takes the alternative's place in the list, and
// the promoted one keeps the slot's ID and start time.
func (t *Trip) SwapAlternative(day int, id string, alt int) error {
	d, idx, err := t.locate(day, id)
	if err != nil {
		return err
	}
	current := d.Activities[idx].Clone()
	if alt < 0 || alt >= len(current.Alternatives) {
		return fmt.Errorf("%w: alternative %d (activity has %d)", ErrIndexOutOfRange, alt, len(current.Alternatives))
	}

	promoted := current.Alternatives[alt].Clone()
	alts := current.Alternatives
	current.Alternatives = nil

	promoted.ID, current.ID = current.ID, promoted.ID
	promoted.Time = current.Time
	alts[alt] = current
	promoted.Alternatives = alts

	next := copyActivities(d.Activities)
	next[idx] = promoted
	d.Activities = timeline.Recalculate(next)
	return nil
}

// RecalculateAll recalculates every day and reports how many activity
// times changed.
func (t *Trip) RecalculateAll() int {
	changed := 0
	for i := range t.Itinerary {
		d := &t.Itinerary[i]
		if len(d.Activities) == 0 {
			continue
		}
		next := timeline.Recalculate(d.Activities)
		for j := range next {
			if next[j].Time != d.Activities[j].Time {
				changed++
			}
		}
		d.Activities = next
	}
	return changed
}

func (t *Trip) locate(day int, id string) (*DayPlan, int, error) {
	d, err := t.Day(day)
	if err != nil {
		return nil, -1, err
	}
	for i, a := range d.Activities {
		if a.ID == id {
			return d, i, nil
		}
	}
	return nil, -1, fmt.Errorf("%w: %s on day %d", ErrActivityNotFound, id, day)
}

func copyActivities(in []timeline.Activity) []timeline.Activity {
	out := make([]timeline.Activity, len(in))
	copy(out, in)
	return out
}
