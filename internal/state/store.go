package state

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/five82/marquee/internal/catalog"
)

// Store holds the loaded catalog and the currently filtered view of it.
// It is owned by the UI update loop and is not safe for concurrent use.
type Store struct {
	items    []catalog.Item
	folded   []string
	view     []catalog.Item
	query    string
	loaded   bool
	loadedAt time.Time
}

// Replace installs items as the full collection and resets the view to
// show everything.
func (s *Store) Replace(items []catalog.Item) {
	s.items = cloneItems(items)
	s.folded = make([]string, len(s.items))
	for i, item := range s.items {
		s.folded[i] = fold(item.Title)
	}
	s.view = s.items
	s.query = ""
	s.loaded = true
	s.loadedAt = time.Now()
}

// Filter returns the items whose title contains query, ignoring case and
// surrounding whitespace, in collection order. An empty query returns the
// full collection. The result becomes the current view.
func (s *Store) Filter(query string) []catalog.Item {
	needle := fold(strings.TrimSpace(query))
	s.query = strings.TrimSpace(query)
	if needle == "" {
		s.view = s.items
		return cloneItems(s.view)
	}

	matches := make([]catalog.Item, 0, len(s.items))
	for i, item := range s.items {
		if strings.Contains(s.folded[i], needle) {
			matches = append(matches, item)
		}
	}
	s.view = matches
	return cloneItems(matches)
}


// View returns a copy of the most recent filter result.
func (s *Store) View() []catalog.Item {
	return cloneItems(s.view)
}

// Query returns the normalized query behind the current view.
func (s *Store) Query() string {
	return s.query
}

// Len returns the size of the full collection.
func (s *Store) Len() int {
	return len(s.items)
}

// Loaded reports whether Replace has been called at least once.
func (s *Store) Loaded() bool {
	return s.loaded
}

// LoadedAt returns the time of the last Replace.
func (s *Store) LoadedAt() time.Time {
	return s.loadedAt
}

func fold(s string) string {
	return cases.Fold().String(s)
}

func cloneItems(items []catalog.Item) []catalog.Item {
	dup := make([]catalog.Item, len(items))
	copy(dup, items)
	return dup
}
