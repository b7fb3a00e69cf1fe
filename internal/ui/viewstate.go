package ui

import (
	"errors"
	"fmt"

	"github.com/five82/marquee/internal/catalog"
)

// ViewState is the content region currently shown. Exactly one is active.
type ViewState int

const (
	StateLoading ViewState = iota
	StateError
	StateEmpty
	StatePopulated
)

func (s ViewState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when a load result arrives while no load
// is in progress.
var ErrInvalidTransition = errors.New("invalid view transition")

// ViewController owns the active ViewState and the data that belongs to
// it. Leaving a state drops that state's data.
type ViewController struct {
	state ViewState
	items []catalog.Item
	err   error

	// CardsRendered is called with the card count each time the grid
	// becomes the active region.
	CardsRendered func(n int)
}

// NewViewController starts in Loading.
func NewViewController() *ViewController {
	return &ViewController{state: StateLoading}
}

// State returns the active state.
func (v *ViewController) State() ViewState { return v.state }

// Items returns the cards shown in Populated; nil otherwise.
func (v *ViewController) Items() []catalog.Item { return v.items }

// Err returns the load failure shown in Error; nil otherwise.
func (v *ViewController) Err() error { return v.err }

// CanRetry reports whether the retry action is available.
func (v *ViewController) CanRetry() bool { return v.state == StateError }

// BeginLoad enters Loading from any state.
func (v *ViewController) BeginLoad() {
	v.enter(StateLoading, nil, nil)
}

// LoadSucceeded leaves Loading for Populated, or Empty when items is empty.
func (v *ViewController) LoadSucceeded(items []catalog.Item) error {
	if v.state != StateLoading {
		return fmt.Errorf("load succeeded in %s: %w", v.state, ErrInvalidTransition)
	}
	v.ShowResults(items)
	return nil
}

// LoadFailed leaves Loading for Error.
func (v *ViewController) LoadFailed(err error) error {
	if v.state != StateLoading {
		return fmt.Errorf("load failed in %s: %w", v.state, ErrInvalidTransition)
	}
	if err == nil {
		err = errors.New("unknown load failure")
	}
	v.enter(StateError, nil, err)
	return nil
}

// ShowResults shows a filter result: Populated with at least one item,
// Empty otherwise.
func (v *ViewController) ShowResults(items []catalog.Item) {
	if len(items) == 0 {
		v.enter(StateEmpty, nil, nil)
		return
	}
	v.enter(StatePopulated, items, nil)
}

func (v *ViewController) enter(state ViewState, items []catalog.Item, err error) {
	v.state = state
	v.items = items
	v.err = err
	if state == StatePopulated && v.CardsRendered != nil {
		v.CardsRendered(len(items))
	}
}
