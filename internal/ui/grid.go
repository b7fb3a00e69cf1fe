package ui

import (
	"strings"

	"github.com/five82/marquee/internal/catalog"
)

// gridLayout describes how cards fit the content region.
type gridLayout struct {
	columns int
	rows    int // rows visible at once
}

func newGridLayout(width, height int) gridLayout {
	columns := (width + cardGap) / (cardWidth + cardGap)
	if columns < 1 {
		columns = 1
	}
	rows := (height - contentTop - footerHeight) / cardHeight
	if rows < 1 {
		rows = 1
	}
	return gridLayout{columns: columns, rows: rows}
}

func (g gridLayout) totalRows(n int) int {
	if n == 0 {
		return 0
	}
	return (n + g.columns - 1) / g.columns
}

// gridState is the cursor and scroll position over the current cards.
type gridState struct {
	cursor int
	offset int // first visible row
}

func (s *gridState) reset() {
	s.cursor = 0
	s.offset = 0
}

// move shifts the cursor by delta cards, clamped to the item range, and
// scrolls so the cursor stays visible.
func (s *gridState) move(delta, n int, layout gridLayout) {
	if n == 0 {
		s.reset()
		return
	}
	s.cursor = clamp(s.cursor+delta, 0, n-1)
	s.follow(layout)
}

func (s *gridState) moveTo(index, n int, layout gridLayout) {
	s.move(index-s.cursor, n, layout)
}

func (s *gridState) follow(layout gridLayout) {
	row := s.cursor / layout.columns
	if row < s.offset {
		s.offset = row
	}
	if row >= s.offset+layout.rows {
		s.offset = row - layout.rows + 1
	}
}

// scroll moves the viewport by delta rows and pulls the cursor along when it
// would leave the visible rows.
func (s *gridState) scroll(delta, n int, layout gridLayout) {
	if n == 0 {
		return
	}
	maxOffset := layout.totalRows(n) - layout.rows
	s.offset = clamp(s.offset+delta, 0, maxOffset)

	row := s.cursor / layout.columns
	col := s.cursor % layout.columns
	switch {
	case row < s.offset:
		row = s.offset
	case row >= s.offset+layout.rows:
		row = s.offset + layout.rows - 1
	}
	s.cursor = clamp(row*layout.columns+col, 0, n-1)
}

// cardAt maps a screen cell to the index of the card drawn there, or -1.
func (s gridState) cardAt(x, y, n int, layout gridLayout) int {
	if x < 0 || y < contentTop {
		return -1
	}
	visibleRow := (y - contentTop) / cardHeight
	if visibleRow >= layout.rows {
		return -1
	}
	col := x / (cardWidth + cardGap)
	if col >= layout.columns || x%(cardWidth+cardGap) >= cardWidth {
		return -1
	}
	idx := (s.offset+visibleRow)*layout.columns + col
	if idx >= n {
		return -1
	}
	return idx
}

// renderGrid draws the visible rows of cards, one string per screen line.
func (m Model) renderGrid(items []catalog.Item, layout gridLayout) []string {
	styles := m.theme.Styles()
	gap := strings.Repeat(" ", cardGap)

	var lines []string
	last := min(m.grid.offset+layout.rows, layout.totalRows(len(items)))
	for row := m.grid.offset; row < last; row++ {
		rowLines := make([]string, cardHeight)
		for col := 0; col < layout.columns; col++ {
			idx := row*layout.columns + col
			if idx >= len(items) {
				break
			}
			card := strings.Split(m.renderCard(items[idx], idx == m.grid.cursor, styles), "\n")
			for i := 0; i < cardHeight && i < len(card); i++ {
				if col > 0 {
					rowLines[i] += gap
				}
				rowLines[i] += card[i]
			}
		}
		lines = append(lines, rowLines...)
	}
	return lines
}

func (m Model) renderCard(item catalog.Item, selected bool, styles Styles) string {
	inner := cardWidth - 4 // border and padding

	title := truncate(item.DisplayTitle(), inner)
	if selected {
		title = styles.AccentText.Bold(true).Render(title)
	} else {
		title = styles.Text.Bold(true).Render(title)
	}

	var meta []string
	if year := item.FormattedYear(); year != "" {
		meta = append(meta, styles.MutedText.Render(year))
	}
	meta = append(meta, styles.RatingStyle(item.Rating).Render("★ "+item.FormattedRating()))

	poster := item.PosterURL
	if strings.TrimSpace(poster) == "" {
		poster = "no poster"
	}
	poster = styles.FaintText.Render(truncateMiddle(poster, inner))

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	body := strings.Join([]string{title, strings.Join(meta, styles.FaintText.Render(" · ")), poster}, "\n")
	return style.Width(cardWidth - 2).Render(body)
}
