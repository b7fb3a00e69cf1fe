package ui

import (
	"fmt"
	"strings"

	"github.com/five82/marquee/internal/catalog"
)

const (
	retryLabel  = "[ Retry ]"
	panelMargin = 2
)

// renderContent draws the region for the active view state, one string per
// screen line.
func (m Model) renderContent() []string {
	switch m.view.State() {
	case StateLoading:
		return m.renderLoading()
	case StateError:
		lines, _ := m.errorPanel()
		return lines
	case StateEmpty:
		return m.renderEmpty()
	case StatePopulated:
		return m.renderGrid(m.view.Items(), m.gridLayout())
	default:
		return nil
	}
}

func (m Model) renderLoading() []string {
	styles := m.theme.Styles()
	margin := strings.Repeat(" ", panelMargin)
	return []string{
		"",
		margin + m.spinner.View() + " " + styles.Text.Render("Loading catalog…"),
	}
}

// errorPanel returns the Error region and the position of its retry
// control.
func (m Model) errorPanel() ([]string, rect) {
	styles := m.theme.Styles()
	margin := strings.Repeat(" ", panelMargin)
	width := max(m.width-2*panelMargin, 10)

	lines := []string{
		"",
		margin + styles.DangerText.Render("Could not load the catalog"),
		margin + styles.MutedText.Render(describeLoadError(m.view.Err())),
	}
	if err := m.view.Err(); err != nil {
		for _, line := range wrapLines(err.Error(), width) {
			lines = append(lines, margin+styles.FaintText.Render(line))
		}
	}
	lines = append(lines, "")

	retryRow := len(lines)
	lines = append(lines, margin+styles.ButtonFocused.Render(retryLabel)+"  "+styles.FaintText.Render("press r or enter"))

	retry := rect{x: panelMargin, y: contentTop + retryRow, w: len(retryLabel), h: 1}
	return lines, retry
}

func describeLoadError(err error) string {
	kind, ok := catalog.KindOf(err)
	switch {
	case !ok:
		return "The catalog could not be read."
	case kind == catalog.KindParse:
		return "The catalog source returned something that is not a title list."
	default:
		return "The catalog source could not be reached."
	}
}

func (m Model) renderEmpty() []string {
	styles := m.theme.Styles()
	margin := strings.Repeat(" ", panelMargin)

	if m.store.Len() == 0 {
		return []string{
			"",
			margin + styles.Text.Render("The catalog is empty."),
			margin + styles.FaintText.Render("The source returned no titles."),
		}
	}
	query := truncate(m.store.Query(), max(m.width-24, 8))
	return []string{
		"",
		margin + styles.Text.Render(fmt.Sprintf("No titles match %q.", query)),
		margin + styles.FaintText.Render(fmt.Sprintf("Clear the search to see all %d titles.", m.store.Len())),
	}
}
