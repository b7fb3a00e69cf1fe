// Package debounce coalesces bursts of events into a single delayed action
// inside a Bubble Tea update loop.
//
// Each Schedule returns a tick command carrying a sequence number. When the
// tick fires, the model passes the message to Accept, which only succeeds
// for the most recent sequence that has not been cancelled, flushed or
// delivered already. Stale ticks are dropped, so a burst of N schedules
// runs the action at most once, with the last payload.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickFunc matches tea.Tick and can be swapped out in tests.
type TickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// FiredMsg is delivered when a scheduled delay elapses.
type FiredMsg[T any] struct {
	Name    string
	Seq     uint64
	Payload T
}

// Debouncer delays an action until calls stop arriving for the configured
// delay. It is not safe for concurrent use; keep it on the model.
type Debouncer[T any] struct {
	name    string
	delay   time.Duration
	tick    TickFunc
	seq     uint64
	pending bool
	payload T
}

// New returns a debouncer identified by name. The name keeps FiredMsgs from
// two debouncers with the same payload type apart.
func New[T any](name string, delay time.Duration) *Debouncer[T] {
	if delay < 0 {
		delay = 0
	}
	return &Debouncer[T]{name: name, delay: delay, tick: tea.Tick}
}

// WithTick replaces the timer source and returns the debouncer.
func (d *Debouncer[T]) WithTick(tick TickFunc) *Debouncer[T] {
	if tick != nil {
		d.tick = tick
	}
	return d
}


// Schedule supersedes any pending invocation with payload and returns the
// command that reports back after the delay.
func (d *Debouncer[T]) Schedule(payload T) tea.Cmd {
	d.seq++
	d.pending = true
	d.payload = payload

	name, seq := d.name, d.seq
	return d.tick(d.delay, func(time.Time) tea.Msg {
		return FiredMsg[T]{Name: name, Seq: seq, Payload: payload}
	})
}

// Accept reports whether msg is the current firing of this debouncer and,
// if so, returns its payload. A successful Accept clears the pending state.
func (d *Debouncer[T]) Accept(msg tea.Msg) (T, bool) {
	var zero T
	fired, ok := msg.(FiredMsg[T])
	if !ok || fired.Name != d.name {
		return zero, false
	}
	if !d.pending || fired.Seq != d.seq {
		return zero, false
	}
	d.pending = false
	d.payload = zero
	return fired.Payload, true
}

// Cancel drops the pending invocation, if any.
func (d *Debouncer[T]) Cancel() {
	var zero T
	d.seq++
	d.pending = false
	d.payload = zero
}

// Flush takes the pending payload immediately. The outstanding tick will be
// rejected when it arrives.
func (d *Debouncer[T]) Flush() (T, bool) {
	var zero T
	if !d.pending {
		return zero, false
	}
	payload := d.payload
	d.Cancel()
	return payload, true
}

// Pending reports whether an invocation is waiting to fire.
func (d *Debouncer[T]) Pending() bool { return d.pending }
