package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/georeads/georeads/internal/authors"
	"github.com/georeads/georeads/internal/shelf"
)

func newAuthorsCmd(root *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "authors <export.csv>",
		Short: "List the distinct authors on the selected shelves",
		Args:  cobra.ExactArgs(1),
	}
	selection := addShelfFlag(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON array instead of one name per line")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		sel, err := selection()
		if err != nil {
			return err
		}
		rows, err := readRows(cmd, args[0])
		if err != nil {
			return err
		}

		names := authors.Strings(authors.Extract(shelf.Filter(rows, sel)))
		root.newLogger(cmd).Debug("authors extracted", "rows", len(rows), "authors", len(names))

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(names)
		}
		for _, n := range names {
			if _, err := fmt.Fprintln(out, n); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}
