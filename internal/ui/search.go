package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const searchDebouncerName = "search"

func newSearchInput(theme Theme) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search titles…"
	ti.CharLimit = 100
	styleSearchInput(&ti, theme)
	return ti
}

func styleSearchInput(ti *textinput.Model, theme Theme) {
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Faint))
}

// focusSearch moves keyboard focus to the search field.
func (m *Model) focusSearch() tea.Cmd {
	m.searchFocused = true
	return m.search.Focus()
}

func (m *Model) blurSearch() {
	m.searchFocused = false
	m.search.Blur()
}

// handleSearchKey processes keys while the search field has focus. Typed
// text goes through the debouncer; Enter applies the query at once.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlF:
		// Already focused; swallow so the terminal never sees it.
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		query := m.search.Value()
		if pending, ok := m.debouncer.Flush(); ok {
			query = pending
		}
		m.applyFilter(query)
		m.blurSearch()
		return m, nil

	case key.Matches(msg, m.keys.LeaveSearch):
		m.blurSearch()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.debouncer.Schedule(m.search.Value()))
}

// applyFilter narrows the grid to query. Results only apply once a catalog
// is loaded and the grid or empty panel is showing; a filter firing during
// a load or after a failure is dropped.
func (m *Model) applyFilter(query string) {
	if !m.store.Loaded() {
		m.logger.Debug("filter ignored before load", "query", query)
		return
	}
	switch m.view.State() {
	case StateEmpty, StatePopulated:
	default:
		m.logger.Debug("filter ignored", "query", query, "state", m.view.State())
		return
	}

	items := m.store.Filter(query)
	m.view.ShowResults(items)
	m.grid.reset()
	m.logger.Debug("filter applied", "query", m.store.Query(), "matches", len(items))
}
