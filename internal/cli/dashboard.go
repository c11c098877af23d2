package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alexanderramin/pokerlog/internal/analytics"
	pokerapp "github.com/alexanderramin/pokerlog/internal/app"
	"github.com/alexanderramin/pokerlog/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Browse the stats interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(app)
		},
	}
}

func runDashboard(app *App) error {
	_, err := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen()).Run()
	return err
}

// ── tabs and keys ────────────────────────────────────────────────────────────

type dashboardTab int

const (
	tabOverview dashboardTab = iota
	tabMonths
	tabWeekdays
	tabDays
	tabSessions
	tabCount
)

var dashboardTabNames = [tabCount]string{"Overview", "Months", "Weekdays", "Dates", "Sessions"}

type dashboardKeyMap struct {
	NextTab   key.Binding
	PrevTab   key.Binding
	OlderYear key.Binding
	NewerYear key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		NextTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		OlderYear: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "older year")),
		NewerYear: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "newer year")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.OlderYear, k.NewerYear, k.Refresh, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.NextTab, k.PrevTab}, {k.OlderYear, k.NewerYear}, {k.Refresh, k.Quit}}
}

// ── messages ─────────────────────────────────────────────────────────────────

// reportLoadedMsg carries a freshly built report and the selectable years.
type reportLoadedMsg struct {
	report *analytics.Report
	years  []int
	err    error
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel shows one report year at a time, one view per tab.
type dashboardModel struct {
	app      *App
	keys     dashboardKeyMap
	help     help.Model
	viewport viewport.Model
	ready    bool

	tab     dashboardTab
	year    int
	years   []int
	report  *analytics.Report
	loading bool
	err     error
}

const (
	dashHeaderHeight = 3
	dashFooterHeight = 2
)

func newDashboardModel(app *App) *dashboardModel {
	return &dashboardModel{
		app:     app,
		keys:    newDashboardKeyMap(),
		help:    help.New(),
		year:    app.now().Year(),
		loading: true,
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m *dashboardModel) load() tea.Cmd {
	app, year := m.app, m.year
	return func() tea.Msg {
		ctx := context.Background()
		now := app.now()

		req := pokerapp.NewStatsRequest(now)
		req.Year = year
		req.AsOf = &now
		report, err := app.Stats.Report(ctx, req)
		if err != nil {
			return reportLoadedMsg{err: err}
		}
		years, err := app.Stats.Years(ctx, now)
		if err != nil {
			return reportLoadedMsg{err: err}
		}
		return reportLoadedMsg{report: report, years: years}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-dashHeaderHeight-dashFooterHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.help.Width = msg.Width
		m.refreshContent()
		return m, nil

	case reportLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.report = msg.report
			m.years = msg.years
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.refreshContent()
			return m, nil
		case key.Matches(msg, m.keys.OlderYear):
			return m, m.stepYear(+1)
		case key.Matches(msg, m.keys.NewerYear):
			return m, m.stepYear(-1)
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.load()
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// stepYear moves through the year list, which is sorted newest first, so
// +1 is older.
func (m *dashboardModel) stepYear(delta int) tea.Cmd {
	idx := slices.Index(m.years, m.year)
	if idx < 0 {
		return nil
	}
	next := idx + delta
	if next < 0 || next >= len(m.years) {
		return nil
	}
	m.year = m.years[next]
	m.loading = true
	return m.load()
}

func (m *dashboardModel) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.body())
	m.viewport.GotoTop()
}

func (m *dashboardModel) body() string {
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error())
	}
	if m.report == nil {
		return "\n  " + formatter.Dim("Loading...")
	}

	r := m.report
	switch m.tab {
	case tabMonths:
		return formatter.FormatMonths(r)
	case tabWeekdays:
		return formatter.FormatWeekdays(r)
	case tabDays:
		return formatter.FormatDays(r)
	case tabSessions:
		return formatter.FormatSessionList(fmt.Sprintf("Sessions %d", r.Year), r.Sessions)
	default:
		return formatter.FormatOverview(r)
	}
}

// ── view rendering ───────────────────────────────────────────────────────────

func (m *dashboardModel) View() string {
	var b strings.Builder

	title := formatter.StyleHeader.Render(fmt.Sprintf("POKERLOG · %d", m.year))
	if m.loading {
		title += "  " + formatter.Dim("loading...")
	}
	b.WriteString(title + "\n")
	b.WriteString(m.renderTabs() + "\n\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else {
		b.WriteString(m.body())
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m *dashboardModel) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	tabs := make([]string, 0, tabCount)
	for i, name := range dashboardTabNames {
		if dashboardTab(i) == m.tab {
			tabs = append(tabs, active.Render(name))
		} else {
			tabs = append(tabs, inactive.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
