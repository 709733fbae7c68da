// Package render turns trips into shareable files and reads them back.
package render

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fakeyudi/tripline/internal/timeline"
	"github.com/fakeyudi/tripline/internal/trip"
)

const (
	versionSentinel = "<!-- tripline-version: 1 -->"
	dataPrefix      = "<!-- tripline-data: "
	dataSuffix      = " -->"
)

// Renderer serializes a Trip to bytes.
type Renderer interface {
	Render(t *trip.Trip) ([]byte, error)
}

// JSONRenderer renders a Trip as indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(t *trip.Trip) ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// MarkdownRenderer renders a Trip as a readable itinerary with an embedded
// base64 JSON payload for lossless re-import.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(t *trip.Trip) ([]byte, error) {
	jsonBytes, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal trip: %w", err)
	}
	encoded := base64.StdEncoding.EncodeToString(jsonBytes)

	var sb strings.Builder

	// Sentinel and embedded payload.
	sb.WriteString(versionSentinel + "\n")
	fmt.Fprintf(&sb, "%s%s%s\n\n", dataPrefix, encoded, dataSuffix)

	fmt.Fprintf(&sb, "# %s (%s to %s)\n\n", t.Destination, t.StartDate, t.EndDate)

	// ## Summary
	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- Days: %d\n", len(t.Itinerary))
	if len(t.Companions) > 0 {
		fmt.Fprintf(&sb, "- Companions: %s\n", strings.Join(t.Companions, ", "))
	}
	if t.Currency != "" {
		fmt.Fprintf(&sb, "- Currency: %s\n", t.Currency)
	}
	sb.WriteString("\n")

	for _, d := range t.Itinerary {
		heading := fmt.Sprintf("## Day %d", d.Day)
		if d.Date != "" {
			heading += " · " + d.Date
		}
		if d.Location != "" {
			heading += " · " + d.Location
		}
		sb.WriteString(heading + "\n\n")

		if d.Weather != nil {
			fmt.Fprintf(&sb, "_Weather: %s, %.0f to %.0f°C_\n\n", d.Weather.Condition, d.Weather.MinTemp, d.Weather.MaxTemp)
		}

		if len(d.Activities) == 0 {
			sb.WriteString("_Nothing planned._\n\n")
			continue
		}
		sb.WriteString("| Time | Type | Activity | Duration |\n")
		sb.WriteString("|------|------|----------|----------|\n")
		for _, a := range d.Activities {
			fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n", a.Time, a.Type.Label(), escapeCell(Describe(a)), durationCell(a))
		}
		sb.WriteString("\n")

		if len(d.Accommodations) > 0 {
			sb.WriteString("### Stay\n\n")
			for _, h := range d.Accommodations {
				fmt.Fprintf(&sb, "- %s, %s %s (%s)\n", h.Name, h.Price, h.Currency, h.Rating)
			}
			sb.WriteString("\n")
		}
	}

	// ## Expenses
	sb.WriteString("## Expenses\n\n")
	if len(t.Expenses) == 0 {
		sb.WriteString("_No expenses recorded._\n")
	} else {
		sb.WriteString("| Date | Description | Payer | Amount |\n")
		sb.WriteString("|------|-------------|-------|--------|\n")
		for _, e := range t.Expenses {
			fmt.Fprintf(&sb, "| %s | %s | %s | %.2f |\n", e.Date, escapeCell(e.Description), e.Payer, e.Amount)
		}
		fmt.Fprintf(&sb, "\n- Total: %.2f %s\n", t.Total(), t.Currency)
		for _, tf := range t.Settle() {
			fmt.Fprintf(&sb, "- %s pays %s %.2f\n", tf.From, tf.To, tf.Amount)
		}
	}
	sb.WriteString("\n")

	return []byte(sb.String()), nil
}

// Describe returns a one-line description of an activity. Flights show
// their route and arrival.
func Describe(a timeline.Activity) string {
	text := a.Description
	if a.Location.Name != "" {
		if text == "" {
			text = a.Location.Name
		} else {
			text += " @ " + a.Location.Name
		}
	}
	if a.IsFlight() {
		fd := a.FlightDetails
		route := fmt.Sprintf("%s %s → %s, arrives %s", fd.FlightNumber, fd.DepartureAirport, fd.ArrivalAirport, fd.ArrivalTime)
		route = strings.TrimSpace(route)
		if text == "" {
			return route
		}
		return text + " (" + route + ")"
	}
	return text
}

func durationCell(a timeline.Activity) string {
	if a.IsFlight() {
		return ""
	}
	return fmt.Sprintf("%d min", a.DurationMinutes)
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// ForFormat returns the renderer and file extension for a format name.
func ForFormat(format string, ics *ICSRenderer) (Renderer, string, error) {
	switch strings.ToLower(format) {
	case "", "markdown", "md":
		return &MarkdownRenderer{}, ".md", nil
	case "json":
		return &JSONRenderer{}, ".json", nil
	case "ics", "ical":
		if ics == nil {
			ics = &ICSRenderer{}
		}
		return ics, ".ics", nil
	}
	return nil, "", fmt.Errorf("unknown format %q (want markdown, json or ics)", format)
}
