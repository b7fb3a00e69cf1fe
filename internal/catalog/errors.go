package catalog

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a catalog load failed.
type ErrorKind int

const (
	// KindTransport covers unreachable sources and non-success statuses.
	KindTransport ErrorKind = iota
	// KindParse covers payloads that are not a valid item sequence.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Sentinels for errors.Is checks against a *LoadError.
var (
	ErrTransport = errors.New("catalog source unreachable")
	ErrParse     = errors.New("catalog payload malformed")
)

// LoadError is returned by every Source when a load fails.
type LoadError struct {
	Kind     ErrorKind
	Location string
	Err      error
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("load %s: %s error", e.Location, e.Kind)
	}
	return fmt.Sprintf("load %s: %v", e.Location, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrTransport) and errors.Is(err, ErrParse) match
// on the error kind.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrParse:
		return e.Kind == KindParse
	}
	return false
}

func transportError(location string, err error) error {
	return &LoadError{Kind: KindTransport, Location: location, Err: err}
}

func parseError(location string, err error) error {
	return &LoadError{Kind: KindParse, Location: location, Err: err}
}

// KindOf reports the kind of a load error. ok is false for errors that did
// not come from a Source.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr.Kind, true
	}
	return 0, false
}
