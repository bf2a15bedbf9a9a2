// Package shelf selects reading-log rows by their reading-status shelf.
package shelf

import (
	"github.com/georeads/georeads/internal/domain"
)

// Standard shelves present in every Goodreads export.
const (
	Read             = "read"
	CurrentlyReading = "currently-reading"
	ToRead           = "to-read"
)

// KnownShelves lists the standard shelves in display order.
//
//nolint:gochecknoglobals // Static list.
var KnownShelves = []string{Read, CurrentlyReading, ToRead}

// DefaultSelection returns the selection a new session starts with.
func DefaultSelection() domain.ShelfSelection {
	return domain.NewShelfSelection(Read)
}

// Filter returns the rows whose shelf field, trimmed and case-folded, is in sel.
// Rows without a shelf field are dropped. The input is not modified.
func Filter(rows []domain.RawRow, sel domain.ShelfSelection) []domain.RawRow {
	if len(rows) == 0 || sel.Len() == 0 {
		return []domain.RawRow{}
	}

	out := make([]domain.RawRow, 0, len(rows))
	for _, row := range rows {
		value, ok := row.Field(domain.ColumnShelf)
		if !ok {
			continue
		}
		folded := domain.FoldShelf(value)
		if folded == "" {
			continue
		}
		if sel.Contains(folded) {
			out = append(out, row)
		}
	}
	return out
}
