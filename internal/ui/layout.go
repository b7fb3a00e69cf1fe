package ui

import "time"

// Screen rows reserved around the content region.
const (
	headerRow    = 0
	searchRow    = 1
	contentTop   = 2
	footerHeight = 1
)

// Card geometry, borders included.
const (
	cardWidth  = 30
	cardHeight = 5
	cardGap    = 2
)

// Overlay geometry.
const (
	overlayMaxWidth = 72
	overlayMargin   = 2
)

// Timing constants.
const (
	// SearchDebounce is the quiet period before typed text filters the grid.
	SearchDebounce = 300 * time.Millisecond

	// OverlayFocusDelay is how long after opening the overlay its close
	// control receives focus.
	OverlayFocusDelay = 50 * time.Millisecond
)

// rect is a screen region in cells.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}
