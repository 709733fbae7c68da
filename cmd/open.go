package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fakeyudi/tripline/internal/trip"
)

// openedTrip is the trip a command operates on, together with where it
// must be written back to.
type openedTrip struct {
	*trip.Trip
	path  string // set for standalone trip files
	store trip.Store
}

// openTrip resolves --trip: a path to a JSON/YAML trip file, a stored trip
// ID, or, when empty, the current trip.
func openTrip() (*openedTrip, error) {
	if isTripFile(tripFlag) {
		t, err := trip.ReadFile(tripFlag)
		if err != nil {
			return nil, err
		}
		return &openedTrip{Trip: t, path: tripFlag}, nil
	}

	store, err := trip.NewStore()
	if err != nil {
		return nil, err
	}
	id := tripFlag
	if id == "" {
		id, err = store.Current()
		if errors.Is(err, trip.ErrNoTrip) {
			return nil, fmt.Errorf("no current trip: create one with 'tripline new' or pass --trip")
		}
		if err != nil {
			return nil, err
		}
	}
	t, err := store.Load(id)
	if err != nil {
		return nil, err
	}
	return &openedTrip{Trip: t, store: store}, nil
}

// save writes the trip back where it came from.
func (o *openedTrip) save() error {
	if o.path != "" {
		return trip.WriteFile(o.path, o.Trip)
	}
	return o.store.Save(o.Trip)
}

func isTripFile(ref string) bool {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	if strings.ContainsRune(ref, os.PathSeparator) {
		_, err := os.Stat(ref)
		return err == nil
	}
	return false
}

// resolveActivity finds an activity by full ID or unique ID prefix and
// returns its day.
func resolveActivity(t *trip.Trip, ref string) (day int, id string, err error) {
	if d, _, err := t.FindActivity(ref); err == nil {
		return d, ref, nil
	}
	var matches []string
	for _, d := range t.Itinerary {
		for _, a := range d.Activities {
			if ref != "" && strings.HasPrefix(a.ID, ref) {
				matches = append(matches, a.ID)
				day = d.Day
			}
		}
	}
	switch len(matches) {
	case 0:
		return 0, "", fmt.Errorf("%w: %s", trip.ErrActivityNotFound, ref)
	case 1:
		return day, matches[0], nil
	}
	return 0, "", fmt.Errorf("activity prefix %q is ambiguous (%d matches)", ref, len(matches))
}

// shortID is the prefix shown in listings.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
