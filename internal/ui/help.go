package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Browse",
		items: []helpItem{
			{"←↓↑→ / hjkl", "Move between cards"},
			{"g/G", "First/last card"},
			{"pgup/pgdown", "Page up/down"},
			{"enter/space", "Open details"},
			{"click", "Open details"},
			{"wheel", "Scroll"},
		},
	},
	{
		title: "Search",
		items: []helpItem{
			{"ctrl+f or /", "Focus search"},
			{"enter", "Apply now"},
			{"esc/tab/↓", "Back to cards"},
		},
	},
	{
		title: "Details",
		items: []helpItem{
			{"esc", "Close"},
			{"tab", "Focus close"},
			{"y", "Copy poster reference"},
		},
	},
	{
		title: "General",
		items: []helpItem{
			{"r", "Retry failed load"},
			{"T", "Cycle theme"},
			{"?", "Toggle help"},
			{"q/ctrl+c", "Quit"},
		},
	},
}

// renderHelp renders the help modal centered over the screen.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Warning)).
		Width(14)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 34)))
	b.WriteString("\n\n")

	for i, section := range helpSections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(helpSections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44).
		Render(strings.TrimRight(b.String(), "\n"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
