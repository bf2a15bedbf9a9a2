package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/georeads/georeads/internal/lookup"
	"github.com/georeads/georeads/internal/pipeline"
)

func newMapCmd(root *rootOptions) *cobra.Command {
	var (
		apiBase string
		format  string
		iso3    bool
	)
	cmd := &cobra.Command{
		Use:   "map <export.csv>",
		Short: "Resolve author nationalities and print per-country counts",
		Args:  cobra.ExactArgs(1),
	}
	selection := addShelfFlag(cmd)
	cmd.Flags().StringVar(&apiBase, "api-base", "", "lookup API base URL (default: API_BASE or the environment default)")
	cmd.Flags().StringVar(&format, "format", formatTable, "output format: json, yaml or table")
	cmd.Flags().BoolVar(&iso3, "iso3", false, "key counts by ISO 3166-1 alpha-3 code")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !validFormat(format) {
			return fmt.Errorf("unknown format %q (want json, yaml or table)", format)
		}
		sel, err := selection()
		if err != nil {
			return err
		}

		rows, err := readRows(cmd, args[0])
		if err != nil {
			return err
		}

		base, err := root.apiBase(apiBase)
		if err != nil {
			return err
		}

		log := root.newLogger(cmd)
		client, err := lookup.New(base, log.WithComponent("lookup"))
		if err != nil {
			return err
		}

		session := pipeline.NewSession(pipeline.NewResolver(client, log.WithComponent("resolver")), log.WithComponent("session"))
		session.SetShelves(sel)
		session.SetRows(rows)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		snap, err := session.Resolve(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", pipeline.FetchErrorMessage, err)
		}

		stderr := cmd.ErrOrStderr()
		for _, label := range snap.Unmapped {
			_, _ = fmt.Fprintf(stderr, "unmapped nationality: %s\n", label)
		}

		return writeCounts(cmd.OutOrStdout(), stderr, format, iso3, snap.Counts)
	}
	return cmd
}
