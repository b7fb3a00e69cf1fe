package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/marquee/internal/catalog"
)

var testLocations = []string{
	"stub://movies.json",
	"/home/alice/.local/share/marquee/movies.json",
	"https://catalog.example.com/exports/2026/october/full-catalog/with/a/long/path/movies.json",
}

// drawnAt returns the plain text drawn in cells [x, x+width) of line.
func drawnAt(line string, x, width int) string {
	return ansi.Strip(ansi.Cut(line, x, x+width))
}

func TestModel_ViewFillsScreenAndClicksLandOnDrawnCards(t *testing.T) {
	const height = 24
	for _, width := range []int{40, 64, 80, 100} {
		for _, location := range testLocations {
			for _, query := range []string{"", "dark"} {
				name := fmt.Sprintf("w%d/%d-char-source/query=%q", width, len(location), query)
				t.Run(name, func(t *testing.T) {
					h := newHarness(&stubSource{items: twelveMovies(), location: location})
					m := h.start(t, Options{})
					m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: height})
					if query != "" {
						m, _ = update(t, m, keyType(tea.KeyCtrlF))
						m = typeText(t, m, query)
						m, _ = update(t, m, keyType(tea.KeyEnter))
					}
					m.status = "Copied poster reference to the system clipboard"

					lines := splitLines(m.View())
					if len(lines) != height {
						t.Fatalf("view lines = %d, want %d", len(lines), height)
					}
					if !strings.Contains(lines[headerRow], "marquee") {
						t.Fatalf("header row = %q, want logo", lines[headerRow])
					}
					if !strings.HasPrefix(lines[searchRow], " / ") {
						t.Fatalf("search row = %q, want the search prompt", lines[searchRow])
					}

					items := m.view.Items()
					layout := m.gridLayout()
					titleRow := contentTop + 1
					for col := 0; col < min(layout.columns, len(items)); col++ {
						x := col*(cardWidth+cardGap) + 2
						title := items[col].Title
						if got := drawnAt(lines[titleRow], x, ansi.StringWidth(title)); got != title {
							t.Fatalf("cells at (%d, %d) = %q, want %q", x, titleRow, got, title)
						}

						clicked, _ := update(t, m, leftClick(x, titleRow))
						item, ok := clicked.overlay.Item()
						if !ok || item.ID != items[col].ID {
							t.Fatalf("click on %q opened %q (open=%v)", title, item.Title, ok)
						}
						clicked.overlay.Close()
					}

					// Bottom border of the first card belongs to that card.
					clicked, _ := update(t, m, leftClick(2, contentTop+cardHeight-1))
					if item, ok := clicked.overlay.Item(); !ok || item.ID != items[0].ID {
						t.Fatalf("click on bottom border opened %q (open=%v), want %q", item.Title, ok, items[0].Title)
					}
					clicked.overlay.Close()

					focused, _ := update(t, m, leftClick(5, searchRow))
					if !focused.searchFocused || focused.overlay.IsOpen() {
						t.Fatalf("click on search row: searchFocused=%v overlayOpen=%v", focused.searchFocused, focused.overlay.IsOpen())
					}
				})
			}
		}
	}
}

func TestModel_ErrorPanelRetryAtNarrowWidths(t *testing.T) {
	const height = 20
	for _, width := range []int{40, 64, 80} {
		t.Run(fmt.Sprintf("w%d", width), func(t *testing.T) {
			src := &stubSource{
				err:      &catalog.LoadError{Kind: catalog.KindTransport, Location: testLocations[2], Err: errors.New("dial tcp 203.0.113.7:443: connect: connection refused")},
				location: testLocations[2],
			}
			h := newHarness(src)
			m := h.start(t, Options{})
			m, _ = update(t, m, tea.WindowSizeMsg{Width: width, Height: height})

			lines := splitLines(m.View())
			if len(lines) != height {
				t.Fatalf("view lines = %d, want %d", len(lines), height)
			}
			_, retry := m.errorPanel()
			if got := drawnAt(lines[retry.y], retry.x, retry.w); got != retryLabel {
				t.Fatalf("cells at retry control = %q, want %q", got, retryLabel)
			}

			retried, cmd := update(t, m, leftClick(retry.x+1, retry.y))
			if cmd == nil || retried.view.State() != StateLoading {
				t.Fatalf("click on retry: state = %v, cmd nil = %v", retried.view.State(), cmd == nil)
			}
		})
	}
}

func TestBgStyle_FillLineNeverWraps(t *testing.T) {
	bg := NewBgStyle("#000000")
	long := strings.Repeat("segment ", 20)

	got := bg.FillLine(long, 30)
	if strings.Contains(got, "\n") {
		t.Fatalf("FillLine wrapped: %q", got)
	}
	if w := ansi.StringWidth(got); w != 30 {
		t.Fatalf("FillLine width = %d, want 30", w)
	}
	if !strings.HasSuffix(ansi.Strip(got), ellipsis) {
		t.Fatalf("FillLine = %q, want ellipsis", ansi.Strip(got))
	}

	if w := ansi.StringWidth(bg.FillLine("short", 30)); w != 30 {
		t.Fatalf("FillLine pads to %d, want 30", w)
	}
	if got := bg.FillLine("status\nsecond", 30); strings.Contains(got, "\n") {
		t.Fatalf("FillLine kept a newline: %q", got)
	}
}

func TestDescribeLoadError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&catalog.LoadError{Kind: catalog.KindTransport, Err: errors.New("refused")}, "could not be reached"},
		{&catalog.LoadError{Kind: catalog.KindParse, Err: errors.New("payload is empty")}, "not a title list"},
		{fmt.Errorf("wrapped: %w", &catalog.LoadError{Kind: catalog.KindParse}), "not a title list"},
		{errors.New("no catalog source configured"), "could not be read"},
	}
	for _, tc := range cases {
		if got := describeLoadError(tc.err); !strings.Contains(got, tc.want) {
			t.Fatalf("describeLoadError(%v) = %q, want it to mention %q", tc.err, got, tc.want)
		}
	}
}
