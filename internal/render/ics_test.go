package render_test

import (
	"bytes"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakeyudi/tripline/internal/render"
	"github.com/fakeyudi/tripline/internal/timeline"
)

func TestICSRenderEvents(t *testing.T) {
	tr := sampleTrip(t)
	r := &render.ICSRenderer{Location: time.UTC, Stamp: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}

	out, err := r.Render(tr)
	require.NoError(t, err)

	cal, err := ical.ParseCalendar(bytes.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 3)

	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	wants := []struct {
		uid        string
		summary    string
		start, end time.Time
	}{
		{"fl@tripline", "Flight BR198 TPE → NRT", day.Add(7*time.Hour + 30*time.Minute), day.Add(11*time.Hour + 45*time.Minute)},
		{"s1@tripline", "Temple | gate", day.Add(12*time.Hour + 45*time.Minute), day.Add(14*time.Hour + 15*time.Minute)},
		{"f1@tripline", "Ramen", day.Add(14*time.Hour + 30*time.Minute), day.Add(15*time.Hour + 30*time.Minute)},
	}
	for i, w := range wants {
		ev := events[i]
		assert.Equal(t, w.uid, ev.Id())
		assert.Equal(t, w.summary, ev.GetProperty(ical.ComponentPropertySummary).Value)

		start, err := ev.GetStartAt()
		require.NoError(t, err)
		end, err := ev.GetEndAt()
		require.NoError(t, err)
		assert.True(t, w.start.Equal(start), "event %d start %v, want %v", i, start, w.start)
		assert.True(t, w.end.Equal(end), "event %d end %v, want %v", i, end, w.end)
	}
	assert.Equal(t, "Senso-ji", events[1].GetProperty(ical.ComponentPropertyLocation).Value)
}

func TestICSRenderBadDate(t *testing.T) {
	tr := sampleTrip(t)
	tr.Itinerary[0].Date = "someday"
	_, err := (&render.ICSRenderer{Location: time.UTC}).Render(tr)
	assert.Error(t, err)
}

func TestDaySpansRollPastMidnight(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	acts := timeline.Recalculate([]timeline.Activity{
		{ID: "a", Time: "22:30", DurationMinutes: 60, Type: timeline.Sight},
		{ID: "b", DurationMinutes: 30, Type: timeline.Food},
		{ID: "red-eye", Type: timeline.Flight, Time: "23:50", FlightDetails: &timeline.FlightDetails{DepartureTime: "23:50", ArrivalTime: "04:10"}},
	})

	spans := render.DaySpans(day, acts)
	require.Len(t, spans, 3)
	assert.Equal(t, day.Add(22*time.Hour+30*time.Minute), spans[0].Start)
	// b is rendered as 23:45, later than a, so stays on the same date
	assert.Equal(t, day.Add(23*time.Hour+45*time.Minute), spans[1].Start)
	assert.Equal(t, day.Add(23*time.Hour+50*time.Minute), spans[2].Start)
	assert.Equal(t, day.Add(28*time.Hour+10*time.Minute), spans[2].End)
}

func TestDaySpansWrappedStartMovesToNextDay(t *testing.T) {
	day := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	acts := timeline.Recalculate([]timeline.Activity{
		{ID: "a", Time: "23:00", DurationMinutes: 90, Type: timeline.Sight},
		{ID: "b", DurationMinutes: 30, Type: timeline.Food},
	})
	require.Equal(t, "00:45", acts[1].Time)

	spans := render.DaySpans(day, acts)
	assert.Equal(t, day.Add(24*time.Hour+45*time.Minute), spans[1].Start)
	assert.Equal(t, day.Add(25*time.Hour+15*time.Minute), spans[1].End)
}
