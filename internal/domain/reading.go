// Package domain contains the core types shared by the reading-log pipeline and the lookup backend.
package domain

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Column names recognized in a reading-log export.
const (
	ColumnShelf   = "Exclusive Shelf"
	ColumnAuthor  = "Author"
	ColumnAuthors = "Authors"
)

// RawRow is one record of a reading-log export, keyed by header name.
// The set of keys depends on the exporting service and is not known statically.
type RawRow map[string]string

// Field returns the value stored under key and whether the key was present.
func (r RawRow) Field(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// AuthorName is a trimmed, non-empty author name. Two names are the same
// author iff the strings are equal.
type AuthorName string

// ShelfSelection is the set of reading-status shelves a user has chosen.
// Members are stored case-folded so lookups are insensitive to export casing.
type ShelfSelection struct {
	members map[string]struct{}
}

// FoldShelf trims and case-folds a shelf identifier.
// A Caser is stateful, so each call builds its own.
func FoldShelf(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// NewShelfSelection builds a selection from shelf identifiers. Blank
// identifiers are ignored.
func NewShelfSelection(shelves ...string) ShelfSelection {
	sel := ShelfSelection{members: make(map[string]struct{}, len(shelves))}
	for _, s := range shelves {
		if f := FoldShelf(s); f != "" {
			sel.members[f] = struct{}{}
		}
	}
	return sel
}

// Contains reports whether the folded shelf is selected.
func (s ShelfSelection) Contains(shelf string) bool {
	if len(s.members) == 0 {
		return false
	}
	_, ok := s.members[FoldShelf(shelf)]
	return ok
}

// Len returns the number of selected shelves.
func (s ShelfSelection) Len() int {
	return len(s.members)
}

// Shelves returns the selected shelves in sorted order.
func (s ShelfSelection) Shelves() []string {
	out := make([]string, 0, len(s.members))
	for m := range s.members {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

// Equal reports whether both selections contain the same shelves.
func (s ShelfSelection) Equal(other ShelfSelection) bool {
	return slices.Equal(s.Shelves(), other.Shelves())
}
