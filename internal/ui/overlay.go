package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/debounce"
)

// ScrollLock freezes background grid movement while the overlay is open.
// It counts transitions so a paired lock and release can be verified.
type ScrollLock struct {
	locked   bool
	locks    int
	releases int
}

// Lock engages the lock. It reports false if it was already held.
func (l *ScrollLock) Lock() bool {
	if l.locked {
		return false
	}
	l.locked = true
	l.locks++
	return true
}

// Release drops the lock. It reports false if it was not held.
func (l *ScrollLock) Release() bool {
	if !l.locked {
		return false
	}
	l.locked = false
	l.releases++
	return true
}

// Locked reports whether background movement is suppressed.
func (l *ScrollLock) Locked() bool { return l.locked }

// Counts returns how many times the lock was engaged and released.
func (l *ScrollLock) Counts() (locks, releases int) { return l.locks, l.releases }

// overlayFocusMsg moves focus to the close control once the overlay has
// been drawn. Messages from an earlier open are ignored.
type overlayFocusMsg struct {
	generation uint64
}

// overlayContent is the item detail exactly as it will be shown.
type overlayContent struct {
	Title       string
	Year        string
	Rating      string
	Genre       string
	Description string
	Poster      string
}

func contentFor(item catalog.Item) overlayContent {
	return overlayContent{
		Title:       item.Title,
		Year:        item.FormattedYear(),
		Rating:      item.FormattedRating(),
		Genre:       item.Genre,
		Description: item.Description,
		Poster:      item.PosterURL,
	}
}

// OverlayController owns the detail overlay: which item it shows, whether
// its close control has focus, and the scroll lock it holds while open.
type OverlayController struct {
	lock  *ScrollLock
	tick  debounce.TickFunc
	delay time.Duration

	open       bool
	item       catalog.Item
	content    overlayContent
	generation uint64
	focused    bool
}

// NewOverlayController returns a closed overlay bound to lock.
func NewOverlayController(lock *ScrollLock) *OverlayController {
	if lock == nil {
		lock = &ScrollLock{}
	}
	return &OverlayController{lock: lock, tick: tea.Tick, delay: OverlayFocusDelay}
}

// WithTick replaces the timer used for the focus handoff.
func (o *OverlayController) WithTick(tick debounce.TickFunc) *OverlayController {
	if tick != nil {
		o.tick = tick
	}
	return o
}

// Open shows item. Opening while already open swaps the item and keeps the
// existing lock. The returned command hands focus to the close control.
func (o *OverlayController) Open(item catalog.Item) tea.Cmd {
	o.lock.Lock()
	o.open = true
	o.item = item
	o.content = contentFor(item)
	o.focused = false
	o.generation++

	gen := o.generation
	return o.tick(o.delay, func(time.Time) tea.Msg {
		return overlayFocusMsg{generation: gen}
	})
}

// Close hides the overlay and releases the scroll lock. Closing a closed
// overlay does nothing. It reports whether the overlay was open.
func (o *OverlayController) Close() bool {
	if !o.open {
		return false
	}
	o.open = false
	o.item = catalog.Item{}
	o.content = overlayContent{}
	o.focused = false
	o.generation++
	o.lock.Release()
	return true
}

// IsOpen reports whether the overlay is shown.
func (o *OverlayController) IsOpen() bool { return o.open }

// Item returns the displayed item.
func (o *OverlayController) Item() (catalog.Item, bool) { return o.item, o.open }

// Content returns the populated detail fields.
func (o *OverlayController) Content() overlayContent { return o.content }

// Focused reports whether the close control has focus.
func (o *OverlayController) Focused() bool { return o.focused }

// FocusClose gives the close control focus immediately.
func (o *OverlayController) FocusClose() {
	if o.open {
		o.focused = true
	}
}

// handleFocus applies a delayed focus handoff if it belongs to the current
// open.
func (o *OverlayController) handleFocus(msg overlayFocusMsg) bool {
	if !o.open || msg.generation != o.generation {
		return false
	}
	o.focused = true
	return true
}

const closeLabel = "[ Close ]"

// overlayLayout is the placed overlay box. View and mouse handling share it
// so clicks land on what was drawn.
type overlayLayout struct {
	box   rect
	close rect
	lines []string // box content, one entry per screen line
}

func (m Model) layoutOverlay() overlayLayout {
	styles := m.theme.Styles()
	c := m.overlay.Content()

	boxWidth := min(overlayMaxWidth, m.width-2*overlayMargin)
	if boxWidth < 20 {
		boxWidth = max(m.width, 1)
	}
	inner := max(boxWidth-4, 1)

	var body []string
	if c.Title != "" {
		body = append(body, styles.Text.Bold(true).Render(truncate(c.Title, inner)))
	}
	var meta []string
	if c.Year != "" {
		meta = append(meta, styles.MutedText.Render(c.Year))
	}
	meta = append(meta, styles.RatingStyle(m.overlayRating()).Render("★ "+c.Rating))
	if c.Genre != "" {
		meta = append(meta, styles.InfoText.Render(c.Genre))
	}
	body = append(body, truncate(strings.Join(meta, styles.FaintText.Render(" · ")), inner))

	if desc := wrapLines(c.Description, inner); len(desc) > 0 {
		body = append(body, "")
		for _, line := range desc {
			body = append(body, styles.Text.Render(line))
		}
	}
	if c.Poster != "" {
		body = append(body, "", styles.FaintText.Render("poster ")+styles.AccentText.Render(truncateMiddle(c.Poster, inner-7)))
	}

	body = append(body, "")
	closeLine := len(body)
	closeStyle := styles.Button
	if m.overlay.Focused() {
		closeStyle = styles.ButtonFocused
	}
	body = append(body, closeStyle.Render(closeLabel)+"  "+styles.FaintText.Render("esc close · y copy poster"))

	rendered := styles.Overlay.Width(boxWidth - 2).Render(strings.Join(body, "\n"))
	lines := strings.Split(rendered, "\n")

	w := lipgloss.Width(rendered)
	h := len(lines)
	left := max((m.width-w)/2, 0)
	top := max((m.height-h)/2, 0)

	return overlayLayout{
		box:   rect{x: left, y: top, w: w, h: h},
		close: rect{x: left + 2, y: top + 1 + closeLine, w: lipgloss.Width(closeLabel), h: 1},
		lines: lines,
	}
}

func (m Model) overlayRating() float64 {
	item, _ := m.overlay.Item()
	return item.Rating
}

// renderOverlay draws the box centered on a blank backdrop.
func (m Model) renderOverlay() string {
	layout := m.layoutOverlay()
	pad := strings.Repeat(" ", layout.box.x)

	out := make([]string, 0, m.height)
	for i := 0; i < layout.box.y; i++ {
		out = append(out, "")
	}
	for _, line := range layout.lines {
		out = append(out, pad+line)
	}
	for len(out) < m.height {
		out = append(out, "")
	}
	if m.height > 0 && len(out) > m.height {
		out = out[:m.height]
	}
	return strings.Join(out, "\n")
}
