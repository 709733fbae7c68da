package trip

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoTrip is returned by Load when no trip with the given ID is stored.
var ErrNoTrip = errors.New("no such trip")

// Store persists trips.
type Store interface {
	Save(t *Trip) error
	Load(id string) (*Trip, error) // returns ErrNoTrip if none exists
	List() ([]Summary, error)
	Delete(id string) error
	// SetCurrent and Current track the trip commands act on by default.
	SetCurrent(id string) error
	Current() (string, error) // returns ErrNoTrip if none is selected
}

// Summary is the listing view of a stored trip.
type Summary struct {
	ID          string
	Destination string
	StartDate   string
	EndDate     string
	Days        int
}

// diskStore keeps one JSON file per trip under the XDG data directory.
type diskStore struct {
	dir string
}

// NewStore returns a Store backed by the XDG data directory.
// Path: $XDG_DATA_HOME/tripline/trips or ~/.local/share/tripline/trips
func NewStore() (Store, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, fmt.Errorf("resolving data directory: %w", err)
	}
	dir = filepath.Join(dir, "trips")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &diskStore{dir: dir}, nil
}

// dataDir returns the tripline-specific XDG data directory.
func dataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(base, "tripline"), nil
}

func (d *diskStore) path(id string) string {
	return filepath.Join(d.dir, id+".json")
}

// Save writes t atomically via a temp file + os.Rename.
func (d *diskStore) Save(t *Trip) error {
	if t.ID == "" || strings.ContainsAny(t.ID, `/\`) {
		return fmt.Errorf("failed to persist trip: invalid id %q", t.ID)
	}
	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to persist trip: %w", err)
	}
	if err := writeAtomic(d.path(t.ID), data); err != nil {
		return fmt.Errorf("failed to persist trip: %w", err)
	}
	return nil
}

// Load reads the trip with the given ID.
func (d *diskStore) Load(id string) (*Trip, error) {
	data, err := os.ReadFile(d.path(id))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoTrip, id)
		}
		return nil, fmt.Errorf("failed to read trip: %w", err)
	}

	var t Trip
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, &ParseError{Path: d.path(id), Err: err}
	}
	return &t, nil
}

// List returns every stored trip ordered by start date, then destination.
// Unreadable files are skipped.
func (d *diskStore) List() ([]Summary, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	var out []Summary
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		t, err := d.Load(strings.TrimSuffix(e.Name(), ".json"))
		if err != nil {
			continue
		}
		out = append(out, Summary{
			ID:          t.ID,
			Destination: t.Destination,
			StartDate:   t.StartDate,
			EndDate:     t.EndDate,
			Days:        len(t.Itinerary),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate != out[j].StartDate {
			return out[i].StartDate < out[j].StartDate
		}
		return out[i].Destination < out[j].Destination
	})
	return out, nil
}

// Delete removes the trip file. Deleting a missing trip is not an error.
// If id was the current trip, the selection is cleared.
func (d *diskStore) Delete(id string) error {
	if err := os.Remove(d.path(id)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	if cur, err := d.Current(); err == nil && cur == id {
		if err := os.Remove(d.currentPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to clear current trip: %w", err)
		}
	}
	return nil
}

func (d *diskStore) currentPath() string {
	return filepath.Join(filepath.Dir(d.dir), "current")
}

// SetCurrent records id as the default trip.
func (d *diskStore) SetCurrent(id string) error {
	if err := writeAtomic(d.currentPath(), []byte(id+"\n")); err != nil {
		return fmt.Errorf("failed to select trip: %w", err)
	}
	return nil
}

// Current returns the default trip ID.
func (d *diskStore) Current() (string, error) {
	data, err := os.ReadFile(d.currentPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoTrip
		}
		return "", fmt.Errorf("failed to read current trip: %w", err)
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", ErrNoTrip
	}
	return id, nil
}

// writeAtomic writes data to a temp file next to path and renames it into
// place.
func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any error path.
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
