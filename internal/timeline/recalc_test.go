package timeline

import (
	"reflect"
	"testing"

	"pgregory.net/rapid"
)

func flight(id, dep, arr string) Activity {
	return Activity{
		ID:   id,
		Time: dep,
		Type: Flight,
		FlightDetails: &FlightDetails{
			DepartureTime: dep,
			ArrivalTime:   arr,
			FlightNumber:  "BR198",
		},
		DurationMinutes: 180,
	}
}

func TestRecalculateEmpty(t *testing.T) {
	got := Recalculate(nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("Recalculate(nil) = %#v, want empty slice", got)
	}
	if got := Recalculate([]Activity{}); len(got) != 0 {
		t.Fatalf("Recalculate([]) = %#v, want empty slice", got)
	}
}

func TestRecalculateSingleActivityKeepsTime(t *testing.T) {
	in := []Activity{{ID: "a", Time: "09:00", DurationMinutes: 60, Type: Sight}}
	got := Recalculate(in)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("got %+v, want %+v", got, in)
	}
}

func TestRecalculateAddsTransitionBuffer(t *testing.T) {
	in := []Activity{
		{ID: "a", Time: "09:00", DurationMinutes: 60, Type: Sight},
		{ID: "b", Time: "00:00", DurationMinutes: 30, Type: Food},
	}
	got := Recalculate(in)
	if got[1].Time != "10:15" {
		t.Errorf("second time = %q, want 10:15", got[1].Time)
	}
}

func TestRecalculateTransportHasNoBuffer(t *testing.T) {
	in := []Activity{
		{ID: "a", Time: "09:00", DurationMinutes: 30, Type: Transport},
		{ID: "b", Time: "x", DurationMinutes: 20, Type: Sight},
	}
	got := Recalculate(in)
	if got[1].Time != "09:30" {
		t.Errorf("second time = %q, want 09:30", got[1].Time)
	}
}

func TestRecalculateFlightResetsCursor(t *testing.T) {
	f := flight("f", "08:00", "10:00")
	in := []Activity{f, {ID: "s", Time: "x", DurationMinutes: 30, Type: Sight}}
	got := Recalculate(in)

	if !reflect.DeepEqual(got[0], f) {
		t.Errorf("flight changed: got %+v, want %+v", got[0], f)
	}
	if got[1].Time != "11:00" {
		t.Errorf("sight time = %q, want 11:00", got[1].Time)
	}
}

func TestRecalculateFlightMidDay(t *testing.T) {
	in := []Activity{
		{ID: "a", Time: "07:00", DurationMinutes: 45, Type: Food},
		{ID: "b", Time: "x", DurationMinutes: 30, Type: Transport},
		flight("f", "11:30", "15:40"),
		{ID: "c", Time: "x", DurationMinutes: 90, Type: Sight},
		{ID: "d", Time: "x", DurationMinutes: 60, Type: Food},
	}
	got := Recalculate(in)
	want := []string{"07:00", "08:00", "11:30", "16:40", "18:25"}
	for i, w := range want {
		if got[i].Time != w {
			t.Errorf("activity %d time = %q, want %q", i, got[i].Time, w)
		}
	}
}

func TestRecalculateIgnoresFlightDuration(t *testing.T) {
	a := flight("f", "08:00", "10:00")
	b := a
	b.DurationMinutes = 9999
	next := Activity{ID: "s", Time: "x", DurationMinutes: 10, Type: Sight}

	got1 := Recalculate([]Activity{a, next})
	got2 := Recalculate([]Activity{b, next})
	if got1[1].Time != got2[1].Time {
		t.Errorf("flight duration changed the cursor: %q vs %q", got1[1].Time, got2[1].Time)
	}
}

func TestRecalculateFlightWithoutDetailsIsScheduled(t *testing.T) {
	in := []Activity{
		{ID: "a", Time: "09:00", DurationMinutes: 60, Type: Sight},
		{ID: "f", Time: "23:00", DurationMinutes: 120, Type: Flight},
		{ID: "b", Time: "x", DurationMinutes: 10, Type: Food},
	}
	got := Recalculate(in)
	if got[1].Time != "10:15" {
		t.Errorf("flight without details time = %q, want 10:15", got[1].Time)
	}
	if got[2].Time != "12:30" {
		t.Errorf("following time = %q, want 12:30", got[2].Time)
	}
}

func TestRecalculateCursorCrossesMidnight(t *testing.T) {
	in := []Activity{
		{ID: "a", Time: "23:00", DurationMinutes: 90, Type: Sight},
		{ID: "b", Time: "x", DurationMinutes: 30, Type: Food},
		{ID: "c", Time: "x", DurationMinutes: 0, Type: Other},
	}
	got := Recalculate(in)
	if got[1].Time != "00:45" {
		t.Errorf("b time = %q, want 00:45", got[1].Time)
	}
	if got[2].Time != "01:30" {
		t.Errorf("c time = %q, want 01:30", got[2].Time)
	}
}

func TestRecalculateNormalizesMeridiemFirstTime(t *testing.T) {
	in := []Activity{{ID: "a", Time: "9:05 pm", DurationMinutes: 10, Type: Sight}}
	got := Recalculate(in)
	if got[0].Time != "21:05" {
		t.Errorf("time = %q, want 21:05", got[0].Time)
	}
}

func genActivity(t *rapid.T, label string) Activity {
	typ := rapid.SampledFrom(Types).Draw(t, label+"_type")
	a := Activity{
		ID:              rapid.StringMatching(`[a-z0-9]{1,8}`).Draw(t, label+"_id"),
		Time:            rapid.SampledFrom([]string{"09:00", "7:30 AM", "1:15 PM", "", "junk", "23:45"}).Draw(t, label+"_time"),
		DurationMinutes: rapid.IntRange(0, 600).Draw(t, label+"_duration"),
		Description:     rapid.String().Draw(t, label+"_desc"),
		Location:        Location{Name: rapid.String().Draw(t, label+"_place")},
		Type:            typ,
	}
	if typ == Flight && rapid.Bool().Draw(t, label+"_has_details") {
		a.FlightDetails = &FlightDetails{
			DepartureTime: a.Time,
			ArrivalTime:   rapid.SampledFrom([]string{"10:00", "6:20 PM", "00:30"}).Draw(t, label+"_arrival"),
		}
	}
	if rapid.Bool().Draw(t, label+"_has_alt") {
		a.Alternatives = []Activity{{ID: a.ID + "-alt", Time: "12:00", Type: Food}}
	}
	return a
}

func genDay(t *rapid.T) []Activity {
	n := rapid.IntRange(0, 12).Draw(t, "n")
	day := make([]Activity, n)
	for i := range day {
		day[i] = genActivity(t, "activity")
	}
	return day
}

func cloneDay(day []Activity) []Activity {
	out := make([]Activity, len(day))
	for i, a := range day {
		out[i] = a.Clone()
	}
	return out
}

// Feature: tripline, Property 5: recalculation preserves shape and payload
func TestRecalculatePreservesShape(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := genDay(t)
		out := Recalculate(in)

		if len(out) != len(in) {
			t.Fatalf("length %d, want %d", len(out), len(in))
		}
		for i := range in {
			if in[i].IsFlight() {
				if !reflect.DeepEqual(out[i], in[i]) {
					t.Fatalf("flight %d changed: %+v -> %+v", i, in[i], out[i])
				}
				continue
			}
			want := in[i].Clone()
			want.Time = out[i].Time
			if !reflect.DeepEqual(out[i], want) {
				t.Fatalf("activity %d changed beyond time: %+v -> %+v", i, in[i], out[i])
			}
		}
	})
}

// Feature: tripline, Property 6: input is never mutated
func TestRecalculateDoesNotMutateInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := genDay(t)
		snapshot := cloneDay(in)
		out := Recalculate(in)

		if !reflect.DeepEqual(in, snapshot) {
			t.Fatalf("input mutated")
		}
		for i := range out {
			if out[i].FlightDetails != nil {
				out[i].FlightDetails.ArrivalTime = "mutated"
			}
			if len(out[i].Alternatives) > 0 {
				out[i].Alternatives[0].Time = "mutated"
			}
		}
		if !reflect.DeepEqual(in, snapshot) {
			t.Fatalf("output shares memory with input")
		}
	})
}

// Feature: tripline, Property 7: a second pass is a fixed point
func TestRecalculateIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		once := Recalculate(genDay(t))
		twice := Recalculate(once)
		if !reflect.DeepEqual(once, twice) {
			t.Fatalf("second pass differs:\n%+v\n%+v", once, twice)
		}
	})
}

// Feature: tripline, Property 8: non-flight times are always canonical
func TestRecalculateEmitsCanonicalTimes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		for _, a := range Recalculate(genDay(t)) {
			if a.IsFlight() {
				continue
			}
			if FormatMinutes(ParseTime(a.Time)) != a.Time || len(a.Time) != 5 {
				t.Fatalf("non-canonical time %q", a.Time)
			}
		}
	})
}

func TestEndOf(t *testing.T) {
	if got := EndOf(Activity{Time: "09:00", DurationMinutes: 45, Type: Sight}); got != 585 {
		t.Errorf("EndOf sight = %d, want 585", got)
	}
	if got := EndOf(flight("f", "08:00", "10:00")); got != 600 {
		t.Errorf("EndOf flight = %d, want 600", got)
	}
}
