// Package ui implements the marquee terminal interface with Bubble Tea.
//
// # Layout
//
//	row 0        header: logo, view state, counts, source
//	row 1        search field
//	rows 2..H-2  content: spinner, error panel, empty notice or card grid
//	row H-1      footer: key hints and status
//
// The detail overlay and the help modal replace the whole screen while
// shown.
//
// # Components
//
//   - Model (app.go): the single owner of all state; dispatches every message
//   - ViewController (viewstate.go): Loading, Error, Empty and Populated,
//     exactly one visible at a time
//   - OverlayController (overlay.go): the detail overlay and its ScrollLock
//   - search.go: search field wiring and the debounced filter
//   - grid.go: card layout, cursor, scrolling and mouse hit-testing
//
// # Loads
//
// Every load gets an attempt number and its own context. Starting a new
// attempt cancels the previous one, and results carrying an older attempt
// number are dropped, so the last load started always wins.
//
// # Timers
//
// The search debounce and the overlay focus handoff are tea.Tick commands
// tagged with a sequence number. Options.Tick replaces tea.Tick in tests.
//
// # Key Bindings
//
//   - / or Ctrl+F: focus search (Ctrl+F is always consumed)
//   - Enter in search: filter now; Esc, Tab or Down: leave search
//   - arrows or hjkl, g/G, PgUp/PgDn: move between cards
//   - Enter or Space: open details for the selected card
//   - Esc: close details; Tab: focus the close control; y: copy poster
//   - r: retry after a failed load
//   - T: cycle theme; ?: help; q or Ctrl+C: quit
package ui
