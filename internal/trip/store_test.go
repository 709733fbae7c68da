package trip

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakeyudi/tripline/internal/timeline"
)

func newTestStore(t *testing.T) Store {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	s, err := NewStore()
	require.NoError(t, err)
	return s
}

func TestStoreSaveLoad(t *testing.T) {
	s := newTestStore(t)
	tr := sampleTrip(t)
	d, _ := tr.Day(2)
	d.Activities = []timeline.Activity{{
		ID: "fl", Time: "07:10", Type: timeline.Flight,
		FlightDetails: &timeline.FlightDetails{DepartureTime: "07:10", ArrivalTime: "11:00", FlightNumber: "CI100"},
	}}

	require.NoError(t, s.Save(tr))
	got, err := s.Load(tr.ID)
	require.NoError(t, err)
	assert.Equal(t, tr, got)
}

func TestStoreLoadMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Load("nope")
	assert.True(t, errors.Is(err, ErrNoTrip))
}

func TestStoreRejectsPathIDs(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.Save(&Trip{ID: "../escape"}))
	assert.Error(t, s.Save(&Trip{}))
}

func TestStoreListAndDelete(t *testing.T) {
	s := newTestStore(t)
	later, err := New("Kyoto", "2025-10-01", "2025-10-02")
	require.NoError(t, err)
	earlier, err := New("Busan", "2025-09-01", "2025-09-04")
	require.NoError(t, err)
	require.NoError(t, s.Save(later))
	require.NoError(t, s.Save(earlier))

	list, err := s.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Busan", list[0].Destination)
	assert.Equal(t, 4, list[0].Days)

	require.NoError(t, s.Delete(earlier.ID))
	require.NoError(t, s.Delete(earlier.ID))
	list, err = s.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestReadWriteFileFormats(t *testing.T) {
	dir := t.TempDir()
	tr := sampleTrip(t)
	tr.Currency = "JPY"
	tr.ExchangeRate = 0.21

	for _, name := range []string{"trip.json", "trip.yaml", "trip.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, WriteFile(path, tr))
			got, err := ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tr, got)
		})
	}
}

func TestYAMLUsesTypeTags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.yaml")
	require.NoError(t, WriteFile(path, sampleTrip(t)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: transport")
}

func TestReadFileParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := ReadFile(path)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, path, perr.Path)
}

func TestUnknownTypeDecodesAsOther(t *testing.T) {
	tr, err := Decode([]byte(`{"id":"x","itinerary":[{"day":1,"activities":[{"id":"a","type":"museum"}]}]}`), false)
	require.NoError(t, err)
	assert.Equal(t, timeline.Other, tr.Itinerary[0].Activities[0].Type)
}

func TestStoreCurrent(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Current()
	assert.ErrorIs(t, err, ErrNoTrip)

	tr := sampleTrip(t)
	require.NoError(t, s.Save(tr))
	require.NoError(t, s.SetCurrent(tr.ID))
	id, err := s.Current()
	require.NoError(t, err)
	assert.Equal(t, tr.ID, id)

	require.NoError(t, s.Delete(tr.ID))
	_, err = s.Current()
	assert.ErrorIs(t, err, ErrNoTrip)
}
