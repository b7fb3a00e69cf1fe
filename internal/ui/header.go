package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
)

// renderHeader renders the top status line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("marquee", styles.Logo)}
	switch m.view.State() {
	case StateLoading:
		parts = append(parts, bg.Render("loading", styles.WarningText))
	case StateError:
		parts = append(parts, bg.Render("load failed", styles.DangerText))
	case StateEmpty, StatePopulated:
		shown := len(m.view.Items())
		parts = append(parts, bg.Render(fmt.Sprintf("%d of %d titles", shown, m.store.Len()), styles.Text))
		if q := m.store.Query(); q != "" {
			parts = append(parts, bg.Render(fmt.Sprintf("matching %q", q), styles.AccentText))
		}
		if at := m.store.LoadedAt(); !at.IsZero() {
			parts = append(parts, bg.Render("loaded "+at.Format("15:04:05"), styles.FaintText))
		}
	}
	if m.source != nil {
		parts = append(parts, bg.Render(truncateMiddle(m.source.Location(), 48), styles.MutedText))
	}

	line := bg.Spaces(1) + bg.Join(parts, "  ")
	return bg.FillLine(line, m.width)
}

// renderSearchBar renders the search field row.
func (m Model) renderSearchBar() string {
	line := " " + m.search.View()
	if m.debouncer.Pending() {
		line += m.theme.Styles().FaintText.Render("  …")
	}
	return ansi.Truncate(line, m.width, "")
}

// renderFooter renders key hints for whatever has focus plus any transient
// status message.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	hints := m.help.View(footerKeys{bindings: m.footerBindings()})
	line := bg.Spaces(1) + hints
	if m.status != "" {
		line += bg.Spaces(2) + bg.Render(m.status, styles.InfoText)
	}
	return bg.FillLine(line, m.width)
}

func (m Model) footerBindings() []key.Binding {
	k := m.keys
	switch {
	case m.overlay.IsOpen():
		return []key.Binding{k.Escape, k.FocusClose, k.CopyPoster, k.Quit}
	case m.searchFocused:
		return []key.Binding{k.Confirm, k.LeaveSearch}
	case m.view.CanRetry():
		return []key.Binding{k.Retry, k.FocusSearch, k.Help, k.Quit}
	default:
		return k.ShortHelp()
	}
}
