// Package tui provides a Bubble Tea TUI for browsing a trip itinerary.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fakeyudi/tripline/internal/render"
	"github.com/fakeyudi/tripline/internal/timeline"
	"github.com/fakeyudi/tripline/internal/trip"
)

// ── Styles ────────────

const (
	colorSea   = lipgloss.Color("30")
	colorSand  = lipgloss.Color("223")
	colorInk   = lipgloss.Color("252")
	colorShade = lipgloss.Color("236")
	colorMuted = lipgloss.Color("244")
)

var (
	barStyle = lipgloss.NewStyle().Background(colorShade).Foreground(colorMuted)

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorSand).Background(colorSea).Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSand).Background(colorSea).Padding(0, 1)
	// Inactive tabs and separators sit on the bar background.
	inactiveTabStyle = barStyle.Padding(0, 1)
	tabSepStyle      = barStyle.Foreground(lipgloss.Color("239"))
	statusBarStyle   = barStyle.Padding(0, 1)

	sectionHeader = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorSea)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorInk)
	dimStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	timeStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorSand)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	typeStyles = map[timeline.Type]lipgloss.Style{
		timeline.Sight:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		timeline.Food:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		timeline.Transport: lipgloss.NewStyle().Foreground(lipgloss.Color("43")),
		timeline.Flight:    lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		timeline.Other:     lipgloss.NewStyle().Foreground(colorMuted),
	}
)

// ── Model ────────────────────

// Model is the root Bubble Tea model for the TUI.
//
// Tab 0 is the overview, tabs 1..N are the days, the last tab is the
// expense ledger.
type Model struct {
	trip      *trip.Trip
	activeTab int
	viewports []viewport.Model
	width     int
	height    int
	ready     bool
}

// New creates a TUI model for t, opening on the given day (0 for the
// overview).
func New(t *trip.Trip, day int) Model {
	m := Model{trip: t}
	if day > 0 && day <= len(t.Itinerary) {
		m.activeTab = day
	}
	return m
}

func (m Model) tabCount() int { return len(m.trip.Itinerary) + 2 }

func (m Model) tabName(i int) string {
	switch {
	case i == 0:
		return "Overview"
	case i == m.tabCount()-1:
		return "Expenses"
	}
	return fmt.Sprintf("Day %d", m.trip.Itinerary[i-1].Day)
}

// ── Bubble Tea interface ───────────────

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		n := m.tabCount()
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab", "l", "right":
			m.activeTab = (m.activeTab + 1) % n
			return m, nil
		case "shift+tab", "h", "left":
			m.activeTab = (m.activeTab - 1 + n) % n
			return m, nil
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			if i := int(key[0] - '1'); i < n {
				m.activeTab = i
			}
			return m, nil
		}
		if !m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.initViewports()
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading itinerary…"
	}

	title := titleStyle.Width(m.width).Render(fmt.Sprintf("  tripline  %s  %s to %s", m.trip.Destination, m.trip.StartDate, m.trip.EndDate))

	var tabParts []string
	n := m.tabCount()
	for i := 0; i < n; i++ {
		label := " " + m.tabName(i) + " "
		if i < 9 {
			label = fmt.Sprintf(" %d %s ", i+1, m.tabName(i))
		}
		if i == m.activeTab {
			tabParts = append(tabParts, activeTabStyle.Render(label))
		} else {
			tabParts = append(tabParts, inactiveTabStyle.Render(label))
		}
		if i < n-1 {
			tabParts = append(tabParts, tabSepStyle.Render("│"))
		}
	}
	tabRow := barStyle.Width(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabParts...))

	content := m.viewports[m.activeTab].View()

	hint := "  ←/→ tab  ↑/↓ scroll  1-9 jump  q quit"
	where := fmt.Sprintf("%s · %d%%", m.tabName(m.activeTab), int(m.viewports[m.activeTab].ScrollPercent()*100))
	gap := max(1, m.width-lipgloss.Width(hint)-lipgloss.Width(where)-2)
	statusBar := statusBarStyle.Width(m.width).Render(hint + strings.Repeat(" ", gap) + where)

	return lipgloss.JoinVertical(lipgloss.Left, title, tabRow, content, statusBar)
}

// ── Viewport management ───────────────────────────────────────────────────────

func (m *Model) initViewports() {
	// Title, tab row and status bar take one line each.
	height := max(1, m.height-3)
	m.viewports = make([]viewport.Model, m.tabCount())
	for i := range m.viewports {
		m.viewports[i] = viewport.New(m.width, height)
		m.viewports[i].SetContent(m.renderTab(i))
	}
}

// ── Tab renderers ─────────────────────────────────────────────────────────────

func (m *Model) renderTab(i int) string {
	switch {
	case i == 0:
		return RenderOverview(m.trip)
	case i == m.tabCount()-1:
		return RenderExpenses(m.trip)
	}
	return RenderDay(&m.trip.Itinerary[i-1])
}

func heading(s string) string {
	return "\n  " + sectionHeader.Render(s) + "\n\n"
}

func row(sb *strings.Builder, label, value string) {
	sb.WriteString(labelStyle.Render(fmt.Sprintf("  %-14s", label)) + "  " + value + "\n")
}

// RenderOverview renders the trip summary and any itinerary problems.
func RenderOverview(t *trip.Trip) string {
	var sb strings.Builder
	sb.WriteString(heading("Trip"))
	row(&sb, "Destination:", t.Destination)
	row(&sb, "Dates:", t.StartDate+" to "+t.EndDate)
	row(&sb, "Days:", fmt.Sprintf("%d", len(t.Itinerary)))
	row(&sb, "Companions:", strings.Join(t.Companions, ", "))
	if t.Currency != "" {
		row(&sb, "Currency:", t.Currency)
	}

	sb.WriteString(heading("Days"))
	for _, d := range t.Itinerary {
		first := dimStyle.Render("nothing planned")
		if len(d.Activities) > 0 {
			first = fmt.Sprintf("%d activities from %s", len(d.Activities), d.Activities[0].Time)
		}
		row(&sb, fmt.Sprintf("Day %d:", d.Day), d.Date+"  "+first)
	}

	if problems := t.Validate(); len(problems) > 0 {
		sb.WriteString(heading(fmt.Sprintf("Problems (%d)", len(problems))))
		for _, p := range problems {
			sb.WriteString(warnStyle.Render("  ! ") + p.String() + "\n")
		}
	}
	return sb.String()
}

// RenderDay renders one day's timeline.
func RenderDay(d *trip.DayPlan) string {
	var sb strings.Builder
	title := fmt.Sprintf("Day %d", d.Day)
	if d.Date != "" {
		title += "  " + d.Date
	}
	if d.Location != "" {
		title += "  " + d.Location
	}
	sb.WriteString(heading(title))
	if d.Weather != nil {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s, %.0f to %.0f°C", d.Weather.Condition, d.Weather.MinTemp, d.Weather.MaxTemp)) + "\n\n")
	}

	if len(d.Activities) == 0 {
		sb.WriteString(dimStyle.Render("  (nothing planned)") + "\n")
		return sb.String()
	}

	for _, a := range d.Activities {
		ts := timeStyle.Render(a.Time)
		badge := badgeFor(a.Type).Render(fmt.Sprintf("  %-10s", strings.ToUpper(a.Type.Label())))
		text := render.Describe(a)
		if text == "" {
			text = dimStyle.Render("(untitled)")
		}
		sb.WriteString(ts + badge + "  " + text + "\n")

		if a.IsFlight() {
			next := timeline.FormatMinutes(timeline.ParseTime(a.FlightDetails.ArrivalTime) + timeline.ArrivalBuffer)
			sb.WriteString(dimStyle.Render(fmt.Sprintf("        lands %s, free from %s", a.FlightDetails.ArrivalTime, next)) + "\n")
		} else {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("        %d min, until %s", a.DurationMinutes, timeline.FormatMinutes(timeline.EndOf(a)))) + "\n")
		}
		if len(a.Alternatives) > 0 {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("        %d alternative(s)", len(a.Alternatives))) + "\n")
		}
		sb.WriteString("\n")
	}

	if len(d.Accommodations) > 0 {
		sb.WriteString(heading("Stay"))
		for _, h := range d.Accommodations {
			row(&sb, h.Name, strings.TrimSpace(h.Price+" "+h.Currency+"  "+h.Rating))
		}
	}
	return sb.String()
}

// RenderExpenses renders the ledger, per-payer totals and settlement.
func RenderExpenses(t *trip.Trip) string {
	var sb strings.Builder
	sb.WriteString(heading(fmt.Sprintf("Expenses (%d)", len(t.Expenses))))
	if len(t.Expenses) == 0 {
		sb.WriteString(dimStyle.Render("  (none)") + "\n")
		return sb.String()
	}
	for _, e := range t.Expenses {
		sb.WriteString(fmt.Sprintf("  %s  %-24s %-10s %10.2f\n", timeStyle.Render(e.Date), e.Description, e.Payer, e.Amount))
	}

	sb.WriteString(heading("By payer"))
	for _, p := range t.TotalsByPayer() {
		row(&sb, p.Payer, fmt.Sprintf("%.2f", p.Amount))
	}
	row(&sb, "Total:", fmt.Sprintf("%.2f %s", t.Total(), t.Currency))
	if t.ExchangeRate != 0 {
		row(&sb, "Home total:", fmt.Sprintf("%.2f", t.TotalHome()))
	}

	if transfers := t.Settle(); len(transfers) > 0 {
		sb.WriteString(heading("Settle up"))
		for _, tf := range transfers {
			sb.WriteString(fmt.Sprintf("  %s → %s  %.2f\n", tf.From, tf.To, tf.Amount))
		}
	}
	return sb.String()
}

func badgeFor(t timeline.Type) lipgloss.Style {
	if s, ok := typeStyles[t]; ok {
		return s
	}
	return typeStyles[timeline.Other]
}

// Run starts the TUI for the given trip.
func Run(t *trip.Trip, day int) error {
	p := tea.NewProgram(New(t, day), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
