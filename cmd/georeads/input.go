package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/georeads/georeads/internal/domain"
	"github.com/georeads/georeads/internal/readinglog"
	"github.com/georeads/georeads/internal/shelf"
)

// readRows parses the export at path ("-" for stdin). A malformed file is
// reported on stderr and treated as having no rows.
func readRows(cmd *cobra.Command, path string) ([]domain.RawRow, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open export: %w", err)
		}
		defer f.Close()
		r = f
	}

	rows, err := readinglog.Parse(r)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not parse %s: %v\n", path, err)
		return []domain.RawRow{}, nil
	}
	return rows, nil
}

// addShelfFlag registers --shelf and returns a function building the
// selection. Only the standard shelves are accepted.
func addShelfFlag(cmd *cobra.Command) func() (domain.ShelfSelection, error) {
	var shelves []string
	known := strings.Join(shelf.KnownShelves, ", ")
	cmd.Flags().StringSliceVar(&shelves, "shelf", []string{shelf.Read},
		"shelves to include ("+known+"); repeat or comma-separate")
	return func() (domain.ShelfSelection, error) {
		for _, s := range shelves {
			if !slices.Contains(shelf.KnownShelves, domain.FoldShelf(s)) {
				return domain.ShelfSelection{}, fmt.Errorf("unknown shelf %q (want one of %s)", s, known)
			}
		}
		return domain.NewShelfSelection(shelves...), nil
	}
}
