package ui

import (
	"strings"
	"testing"
)

func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

func TestNewGridLayout(t *testing.T) {
	cases := []struct {
		width, height int
		columns, rows int
	}{
		{100, 40, 3, 7},
		{30, 10, 1, 1},
		{10, 3, 1, 1},
		{126, 23, 4, 4},
	}
	for _, tc := range cases {
		g := newGridLayout(tc.width, tc.height)
		if g.columns != tc.columns || g.rows != tc.rows {
			t.Fatalf("newGridLayout(%d, %d) = %d cols %d rows, want %d/%d",
				tc.width, tc.height, g.columns, g.rows, tc.columns, tc.rows)
		}
	}
}

func TestGridState_MoveClampsAndFollows(t *testing.T) {
	layout := gridLayout{columns: 3, rows: 2}
	var s gridState

	s.move(-1, 12, layout)
	if s.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", s.cursor)
	}
	s.move(3*2, 12, layout) // row 2
	if s.cursor != 6 || s.offset != 1 {
		t.Fatalf("cursor/offset = %d/%d, want 6/1", s.cursor, s.offset)
	}
	s.moveTo(11, 12, layout)
	if s.cursor != 11 || s.offset != 2 {
		t.Fatalf("cursor/offset = %d/%d, want 11/2", s.cursor, s.offset)
	}
	s.move(100, 12, layout)
	if s.cursor != 11 {
		t.Fatalf("cursor = %d, want clamp to 11", s.cursor)
	}
	s.moveTo(0, 12, layout)
	if s.offset != 0 {
		t.Fatalf("offset = %d, want 0", s.offset)
	}

	s.move(1, 0, layout)
	if s.cursor != 0 || s.offset != 0 {
		t.Fatalf("move with no items should reset")
	}
}

func TestGridState_ScrollPullsCursor(t *testing.T) {
	layout := gridLayout{columns: 3, rows: 2}
	s := gridState{cursor: 1}

	s.scroll(1, 12, layout)
	if s.offset != 1 || s.cursor != 4 {
		t.Fatalf("offset/cursor = %d/%d, want 1/4", s.offset, s.cursor)
	}
	s.scroll(10, 12, layout)
	if s.offset != 2 {
		t.Fatalf("offset = %d, want clamp to 2", s.offset)
	}
	s.scroll(-10, 12, layout)
	if s.offset != 0 || s.cursor/layout.columns > 1 {
		t.Fatalf("offset/cursor = %d/%d after scrolling back", s.offset, s.cursor)
	}
}

func TestGridState_CardAt(t *testing.T) {
	layout := gridLayout{columns: 3, rows: 2}
	s := gridState{offset: 1}
	step := cardWidth + cardGap

	cases := []struct {
		name string
		x, y int
		n    int
		want int
	}{
		{"header", 5, 0, 12, -1},
		{"search bar", 5, 1, 12, -1},
		{"first visible card", 0, contentTop, 12, 3},
		{"second column", step, contentTop + 2, 12, 4},
		{"gap", cardWidth, contentTop, 12, -1},
		{"second row", 0, contentTop + cardHeight, 12, 6},
		{"below grid", 0, contentTop + 2*cardHeight, 12, -1},
		{"past columns", 3 * step, contentTop, 12, -1},
		{"missing card", 2 * step, contentTop + cardHeight, 7, -1},
	}
	for _, tc := range cases {
		if got := s.cardAt(tc.x, tc.y, tc.n, layout); got != tc.want {
			t.Fatalf("%s: cardAt(%d, %d) = %d, want %d", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRenderGrid_DrawsVisibleRows(t *testing.T) {
	h := newHarness(&stubSource{items: twelveMovies()})
	m := h.start(t, Options{})

	layout := m.gridLayout()
	lines := m.renderGrid(m.view.Items(), layout)
	wantRows := min(layout.rows, layout.totalRows(12))
	if len(lines) != wantRows*cardHeight {
		t.Fatalf("grid lines = %d, want %d", len(lines), wantRows*cardHeight)
	}
	if !strings.Contains(lines[1], "Inception") || !strings.Contains(lines[1], "The Dark Knight") {
		t.Fatalf("first row titles missing: %q", lines[1])
	}
	if !strings.Contains(lines[2], "★") {
		t.Fatalf("rating line missing: %q", lines[2])
	}
}
