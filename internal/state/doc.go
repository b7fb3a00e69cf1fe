// Package state holds the loaded catalog for the UI.
//
// # Overview
//
// Store is the single owner of the item collection. A successful load
// calls Replace, which swaps in the whole collection and resets the view
// to "show all". Search calls Filter, which narrows the view without
// touching the collection.
//
// # Filtering
//
// Filter trims the query and compares it against each title using Unicode
// case folding (golang.org/x/text/cases), so "dark" matches "The Dark
// Knight" and "AMÉLIE" matches "Amélie". Folded titles are computed once in
// Replace. Results keep collection order, and the same query always yields
// the same result.
//
//	store.Replace(items)
//	store.Filter("dark")   // The Dark Knight, Dark City
//	store.Filter("   ")    // every item
//
// # Ownership
//
// The Store is only touched from the Bubble Tea update loop, so it carries
// no lock. Every accessor returns a copy so callers cannot mutate the
// collection through a returned slice.
package state
