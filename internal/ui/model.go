package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwhalen/weather-deck/internal/citystore"
	"github.com/mwhalen/weather-deck/internal/dashboard"
	"go.uber.org/zap"
)

// AppState represents the current state of the application
type AppState int

const (
	StateLoading AppState = iota // Initial bulk fetch in flight
	StateReady                   // Dashboard displayed
)

// Options configures a new dashboard model.
type Options struct {
	Fetcher    dashboard.Fetcher
	Store      *citystore.Store // nil disables saving cities
	Cities     []string         // Cities fetched on startup
	Fahrenheit bool             // Start with temperatures in °F
	Timeout    time.Duration
	Logger     *zap.Logger
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int

	// Search
	searchInput textinput.Model
	lastQuery   string

	// Collaborators
	fetcher dashboard.Fetcher
	store   *citystore.Store
	board   *dashboard.State
	logger  *zap.Logger

	cities  []string
	timeout time.Duration

	// View state
	spinner    spinner.Model
	selected   int
	useCelsius bool
	searching  bool // At most one search in flight
	refreshing bool // At most one refresh in flight, dashboard-wide
	searchErr  string
	status     string
}

// NewModel creates a new dashboard model.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a city (e.g. Lisbon)..."
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 44

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return Model{
		state:       StateLoading,
		searchInput: ti,
		spinner:     s,
		fetcher:     opts.Fetcher,
		store:       opts.Store,
		board:       dashboard.NewState(),
		logger:      opts.Logger,
		cities:      opts.Cities,
		timeout:     opts.Timeout,
		useCelsius:  !opts.Fahrenheit,
	}
}

// Init starts the initial bulk fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		loadDashboard(m.fetcher, m.cities, m.timeout),
		textinput.Blink,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case dashboardLoadedMsg:
		m.board.SetRecords(msg.records)
		m.state = StateReady
		m.selected = 0
		m.logger.Info("dashboard loaded",
			zap.Int("requested", len(m.cities)), zap.Int("loaded", m.board.Len()))
		return m, nil

	case searchResultMsg:
		m.searching = false
		if msg.err != nil {
			m.searchErr = fmt.Sprintf("city not found: %s", m.lastQuery)
			m.logger.Debug("search failed", zap.String("query", m.lastQuery), zap.Error(msg.err))
			return m, nil
		}
		m.board.Upsert(msg.record)
		m.selected = 0
		m.searchInput.SetValue("")
		return m, nil

	case refreshResultMsg:
		m.refreshing = false
		if msg.err != nil {
			// Silent per-city failure: the indicator returning to idle
			// is the only feedback.
			m.logger.Debug("refresh failed", zap.Int("id", msg.id), zap.Error(msg.err))
			return m, nil
		}
		m.board.Replace(msg.id, msg.record)
		return m, nil

	case citySavedMsg:
		if msg.err != nil {
			m.logger.Warn("saving city failed", zap.String("city", msg.city), zap.Error(msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("saved %s", msg.city)
		return m, nil

	case cityRemovedMsg:
		if msg.err != nil {
			m.logger.Warn("removing city failed", zap.String("city", msg.city), zap.Error(msg.err))
			return m, nil
		}
		m.status = fmt.Sprintf("removed %s", msg.city)
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}

	return m, nil
}

// handleKey handles keyboard input. The search input stays focused, so
// actions are bound to control chords and arrow keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		return m.handleSearch()

	case tea.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case tea.KeyDown:
		if m.selected < m.board.Len()-1 {
			m.selected++
		}
		return m, nil

	case tea.KeyEsc:
		m.searchInput.SetValue("")
		return m, nil

	case tea.KeyCtrlU:
		m.useCelsius = !m.useCelsius
		return m, nil

	case tea.KeyCtrlR:
		return m.handleRefresh()

	case tea.KeyCtrlS:
		if city, ok := m.selectedCity(); ok && m.store != nil {
			return m, saveCity(m.store, city)
		}
		return m, nil

	case tea.KeyCtrlX:
		if city, ok := m.selectedCity(); ok && m.store != nil {
			return m, removeCity(m.store, city)
		}
		return m, nil
	}

	m.status = ""
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleSearch submits the current query. Blank queries are rejected
// locally with no network call and no error; submitting clears any
// previous search error.
func (m Model) handleSearch() (tea.Model, tea.Cmd) {
	if m.state != StateReady || m.searching {
		return m, nil
	}

	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		return m, nil
	}

	m.searching = true
	m.searchErr = ""
	m.status = ""
	m.lastQuery = query
	return m, searchCity(m.fetcher, query, m.timeout)
}

// handleRefresh re-fetches the selected card's city in place.
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	if m.state != StateReady || m.refreshing {
		return m, nil
	}

	records := m.board.Records()
	if m.selected < 0 || m.selected >= len(records) {
		return m, nil
	}

	record := records[m.selected]
	m.refreshing = true
	return m, refreshCity(m.fetcher, record.ID, record.City, m.timeout)
}

// selectedCity returns the city name of the selected card.
func (m Model) selectedCity() (string, bool) {
	records := m.board.Records()
	if m.selected < 0 || m.selected >= len(records) {
		return "", false
	}
	return records[m.selected].City, true
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateLoading:
		return m.viewLoading()
	case StateReady:
		return m.viewDashboard()
	}

	return ""
}

// viewLoading renders the initial bulk-fetch screen.
func (m Model) viewLoading() string {
	title := titleStyle.Render("☀ Weather Deck")
	status := mutedStyle.Render(fmt.Sprintf("Fetching weather for %d cities...", len(m.cities)))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		title,
		"",
		fmt.Sprintf("%s %s", m.spinner.View(), status),
	)
}

// viewDashboard renders the search box and the card list.
func (m Model) viewDashboard() string {
	var sections []string

	sections = append(sections, titleStyle.Render("☀ Weather Deck"))
	sections = append(sections, searchBoxStyle.Render(m.searchInput.View()))

	if m.searching {
		sections = append(sections, mutedStyle.Render("Searching..."))
	}
	if m.searchErr != "" {
		sections = append(sections, errorStyle.Render("✗ "+m.searchErr))
	}
	if m.status != "" {
		sections = append(sections, mutedStyle.Render(m.status))
	}

	sections = append(sections, "", m.renderCards())

	help := helpStyle.Render("Enter: search • ↑/↓: select • Ctrl+R: refresh • Ctrl+U: °C/°F • Ctrl+S: save • Ctrl+X: unsave • Ctrl+C: quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
