package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fakeyudi/tripline/internal/timeline"
	"github.com/fakeyudi/tripline/internal/trip"
)

func testTrip(t *testing.T) *trip.Trip {
	t.Helper()
	tr, err := trip.New("Tokyo", "2025-04-01", "2025-04-02")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := tr.AddActivity(1, timeline.Activity{ID: "a", Time: "09:00", DurationMinutes: 60, Type: timeline.Sight, Description: "Senso-ji"}); err != nil {
		t.Fatal(err)
	}
	if err := tr.AddActivity(1, timeline.Activity{
		ID: "f", Type: timeline.Flight, Time: "13:00",
		FlightDetails: &timeline.FlightDetails{DepartureTime: "13:00", ArrivalTime: "15:30", FlightNumber: "JL1"},
	}); err != nil {
		t.Fatal(err)
	}
	tr.AddExpense(trip.Expense{Description: "Tickets", Amount: 500, Date: "2025-04-01"})
	return tr
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabNavigation(t *testing.T) {
	m := New(testTrip(t), 0)
	var model tea.Model = m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	model, _ = model.Update(key("l"))
	if got := model.(Model).activeTab; got != 1 {
		t.Fatalf("after l: tab %d, want 1", got)
	}
	model, _ = model.Update(key("h"))
	model, _ = model.Update(key("h"))
	if got := model.(Model).activeTab; got != 3 {
		t.Fatalf("after wrapping left: tab %d, want 3 (expenses)", got)
	}
	model, _ = model.Update(key("9"))
	if got := model.(Model).activeTab; got != 3 {
		t.Fatalf("out-of-range jump moved tab to %d", got)
	}
	model, _ = model.Update(key("2"))
	if got := model.(Model).activeTab; got != 1 {
		t.Fatalf("after 2: tab %d, want 1", got)
	}

	view := model.View()
	for _, want := range []string{"Overview", "Day 1", "Day 2", "Expenses", "Senso-ji"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestNewOpensRequestedDay(t *testing.T) {
	if got := New(testTrip(t), 2).activeTab; got != 2 {
		t.Errorf("activeTab = %d, want 2", got)
	}
	if got := New(testTrip(t), 7).activeTab; got != 0 {
		t.Errorf("activeTab = %d, want 0 for unknown day", got)
	}
}

func TestViewBeforeResize(t *testing.T) {
	if got := New(testTrip(t), 0).View(); got != "Loading itinerary…" {
		t.Errorf("View() = %q", got)
	}
}

func TestRenderDay(t *testing.T) {
	tr := testTrip(t)
	out := RenderDay(&tr.Itinerary[0])
	for _, want := range []string{"09:00", "60 min, until 10:00", "lands 15:30, free from 16:30", "JL1"} {
		if !strings.Contains(out, want) {
			t.Errorf("day view missing %q:\n%s", want, out)
		}
	}
	if out := RenderDay(&tr.Itinerary[1]); !strings.Contains(out, "nothing planned") {
		t.Errorf("empty day view:\n%s", out)
	}
}

func TestRenderExpenses(t *testing.T) {
	tr := testTrip(t)
	if err := tr.AddCompanion("amy"); err != nil {
		t.Fatal(err)
	}
	out := RenderExpenses(tr)
	for _, want := range []string{"Tickets", "500.00", "Settle up", "amy → me  250.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expenses view missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOverviewListsProblems(t *testing.T) {
	tr := testTrip(t)
	tr.Itinerary[1].Activities = []timeline.Activity{{ID: "x", Type: timeline.Flight}}
	out := RenderOverview(tr)
	if !strings.Contains(out, "Problems (1)") {
		t.Errorf("overview missing problems:\n%s", out)
	}
}
