package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/debounce"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Source    catalog.Source
	Logger    *log.Logger
	ThemeName string
	// PrefsPath is where theme changes are saved; empty disables saving.
	PrefsPath string
	// Clipboard writes text to the system clipboard.
	Clipboard func(string) error
	// Tick schedules the search debounce and overlay focus timers.
	Tick debounce.TickFunc
	// CardsRendered is called each time the card grid becomes visible.
	CardsRendered func(n int)
}

// Model is the root application state for Bubble Tea. It owns the item
// store, the view state, the overlay and the search debouncer, and is the
// single place messages are dispatched.
type Model struct {
	// Configuration
	ctx       context.Context
	source    catalog.Source
	logger    *log.Logger
	prefsPath string
	clipboard func(string) error

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	width    int
	height   int
	ready    bool
	showHelp bool
	status   string

	// Catalog and views
	store   *state.Store
	view    *ViewController
	grid    gridState
	lock    *ScrollLock
	overlay *OverlayController

	// Search
	search        textinput.Model
	searchFocused bool
	debouncer     *debounce.Debouncer[string]

	// Loads
	attempt    int
	cancelLoad context.CancelFunc
}

// New creates the root model in the Loading state.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}
	theme := GetTheme(themeName)

	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	tick := opts.Tick
	if tick == nil {
		tick = tea.Tick
	}

	view := NewViewController()
	view.CardsRendered = func(n int) {
		logger.Debug("cards rendered", "count", n)
		if opts.CardsRendered != nil {
			opts.CardsRendered(n)
		}
	}

	lock := &ScrollLock{}

	return Model{
		ctx:       ctx,
		source:    opts.Source,
		logger:    logger,
		prefsPath: opts.PrefsPath,
		clipboard: write,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))),
		),
		store:     &state.Store{},
		view:      view,
		lock:      lock,
		overlay:   NewOverlayController(lock).WithTick(tick),
		search:    newSearchInput(theme),
		debouncer: debounce.New[string](searchDebouncerName, SearchDebounce).WithTick(tick),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(requestLoad, textinput.Blink)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.help.Width = msg.Width
		m.search.Width = max(msg.Width-6, 10)
		m.grid.follow(m.gridLayout())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case loadRequestMsg:
		return m, m.startLoad()

	case loadResultMsg:
		return m.handleLoadResult(msg)

	case debounce.FiredMsg[string]:
		if query, ok := m.debouncer.Accept(msg); ok {
			m.applyFilter(query)
		}
		return m, nil

	case overlayFocusMsg:
		m.overlay.handleFocus(msg)
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.logger.Warn("copy poster reference", "err", msg.err)
			m.status = "Clipboard unavailable"
		} else {
			m.status = "Copied poster reference"
		}
		return m, nil

	case spinner.TickMsg:
		if m.view.State() != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and anything else the search field wants.
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Starting marquee…"
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.overlay.IsOpen() {
		return m.renderOverlay()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchBar())
	b.WriteString("\n")

	height := max(m.height-contentTop-footerHeight, 0)
	lines := m.renderContent()
	for i := 0; i < height; i++ {
		if i < len(lines) {
			b.WriteString(ansi.Truncate(lines[i], m.width, ""))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) gridLayout() gridLayout {
	return newGridLayout(m.width, m.height)
}

// handleKey routes a key to the help modal, the overlay, the search field
// or the grid, in that order of precedence.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.overlay.IsOpen() {
		return m.handleOverlayKey(msg)
	}
	if m.searchFocused {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.FocusSearch):
		return m, m.focusSearch()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case key.Matches(msg, m.keys.Retry):
		return m, m.retry()
	case key.Matches(msg, m.keys.Escape):
		// Nothing open to dismiss.
		return m, nil
	}

	switch m.view.State() {
	case StateError:
		if key.Matches(msg, m.keys.Select) {
			return m, m.retry()
		}
	case StatePopulated:
		return m.handleGridKey(msg)
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.lock.Locked() {
		return m, nil
	}
	n := len(m.view.Items())
	layout := m.gridLayout()

	switch {
	case key.Matches(msg, m.keys.Up):
		m.grid.move(-layout.columns, n, layout)
	case key.Matches(msg, m.keys.Down):
		m.grid.move(layout.columns, n, layout)
	case key.Matches(msg, m.keys.Left):
		m.grid.move(-1, n, layout)
	case key.Matches(msg, m.keys.Right):
		m.grid.move(1, n, layout)
	case key.Matches(msg, m.keys.Top):
		m.grid.moveTo(0, n, layout)
	case key.Matches(msg, m.keys.Bottom):
		m.grid.moveTo(n-1, n, layout)
	case key.Matches(msg, m.keys.PageUp):
		m.grid.move(-layout.columns*layout.rows, n, layout)
	case key.Matches(msg, m.keys.PageDown):
		m.grid.move(layout.columns*layout.rows, n, layout)
	case key.Matches(msg, m.keys.Select):
		return m, m.selectItem(m.grid.cursor)
	}
	return m, nil
}

func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeOverlay("escape")
	case key.Matches(msg, m.keys.Select):
		if m.overlay.Focused() {
			m.closeOverlay("close control")
		}
	case key.Matches(msg, m.keys.FocusClose):
		m.overlay.FocusClose()
	case key.Matches(msg, m.keys.CopyPoster):
		return m, m.copyPoster()
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	leftPress := msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress

	if m.showHelp {
		if leftPress {
			m.showHelp = false
		}
		return m, nil
	}

	if m.overlay.IsOpen() {
		if !leftPress {
			return m, nil
		}
		layout := m.layoutOverlay()
		switch {
		case layout.close.contains(msg.X, msg.Y):
			m.closeOverlay("close control")
		case !layout.box.contains(msg.X, msg.Y):
			m.closeOverlay("backdrop")
		}
		return m, nil
	}

	if msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
		if m.view.State() == StatePopulated && !m.lock.Locked() {
			delta := 1
			if msg.Button == tea.MouseButtonWheelUp {
				delta = -1
			}
			m.grid.scroll(delta, len(m.view.Items()), m.gridLayout())
		}
		return m, nil
	}

	if !leftPress {
		return m, nil
	}
	if msg.Y == searchRow {
		return m, m.focusSearch()
	}

	switch m.view.State() {
	case StateError:
		if _, retry := m.errorPanel(); retry.contains(msg.X, msg.Y) {
			return m, m.retry()
		}
	case StatePopulated:
		if idx := m.grid.cardAt(msg.X, msg.Y, len(m.view.Items()), m.gridLayout()); idx >= 0 {
			m.blurSearch()
			return m, m.selectItem(idx)
		}
	}
	return m, nil
}

// selectItem opens the overlay for the card at idx. Keyboard and mouse
// activation both end up here.
func (m *Model) selectItem(idx int) tea.Cmd {
	items := m.view.Items()
	if idx < 0 || idx >= len(items) {
		return nil
	}
	m.grid.moveTo(idx, len(items), m.gridLayout())
	item := items[idx]
	m.logger.Debug("open details", "id", item.ID, "title", item.Title)
	return m.overlay.Open(item)
}

func (m *Model) closeOverlay(trigger string) {
	if item, ok := m.overlay.Item(); ok && m.overlay.Close() {
		m.logger.Debug("close details", "id", item.ID, "trigger", trigger)
	}
}

func (m *Model) copyPoster() tea.Cmd {
	item, ok := m.overlay.Item()
	if !ok {
		return nil
	}
	poster := strings.TrimSpace(item.PosterURL)
	if poster == "" {
		m.status = "No poster reference"
		return nil
	}
	write := m.clipboard
	return func() tea.Msg {
		return clipboardMsg{err: write(poster)}
	}
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	styleSearchInput(&m.search, m.theme)
	m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.logger.Warn("save prefs", "err", err)
	}
}

// retry starts a new load, but only from the Error state.
func (m *Model) retry() tea.Cmd {
	if !m.view.CanRetry() {
		return nil
	}
	m.logger.Info("retrying catalog load")
	return m.startLoad()
}

// startLoad begins a numbered load attempt. The previous attempt, if still
// running, is cancelled and its result will be discarded.
func (m *Model) startLoad() tea.Cmd {
	if m.cancelLoad != nil {
		m.cancelLoad()
	}
	m.attempt++
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancelLoad = cancel

	m.overlay.Close()
	m.debouncer.Cancel()
	m.grid.reset()
	m.view.BeginLoad()

	attempt, source := m.attempt, m.source
	location := ""
	if source != nil {
		location = source.Location()
	}
	m.logger.Info("loading catalog", "attempt", attempt, "source", location)

	load := func() tea.Msg {
		if source == nil {
			return loadResultMsg{attempt: attempt, err: errors.New("no catalog source configured")}
		}
		items, err := source.Load(ctx)
		return loadResultMsg{attempt: attempt, items: items, err: err}
	}
	return tea.Batch(m.spinner.Tick, load)
}

func (m Model) handleLoadResult(msg loadResultMsg) (tea.Model, tea.Cmd) {
	if msg.attempt != m.attempt {
		m.logger.Debug("discarding stale load result", "attempt", msg.attempt, "current", m.attempt)
		return m, nil
	}
	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}

	if msg.err != nil {
		m.logger.Error("catalog load failed", "attempt", msg.attempt, "err", msg.err)
		if err := m.view.LoadFailed(msg.err); err != nil {
			m.logger.Warn("apply load failure", "err", err)
		}
		return m, nil
	}

	m.store.Replace(msg.items)
	m.search.SetValue("")
	m.debouncer.Cancel()
	m.grid.reset()
	if err := m.view.LoadSucceeded(m.store.View()); err != nil {
		m.logger.Warn("apply load result", "err", err)
	}
	m.logger.Info("catalog loaded", "attempt", msg.attempt, "items", m.store.Len())
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.cancelLoad != nil {
		m.cancelLoad()
		m.cancelLoad = nil
	}
	return m, tea.Quit
}

// Messages

type loadRequestMsg struct{}

type loadResultMsg struct {
	attempt int
	items   []catalog.Item
	err     error
}

type clipboardMsg struct {
	err error
}

// Commands

func requestLoad() tea.Msg {
	return loadRequestMsg{}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	return err
}
