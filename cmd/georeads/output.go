package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/georeads/georeads/internal/aggregate"
	"github.com/georeads/georeads/internal/domain"
)

const (
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatTable = "table"
)

func validFormat(f string) bool {
	return f == formatJSON || f == formatYAML || f == formatTable
}

// writeCounts renders counts to out. With iso3 the map is re-keyed by
// country code and countries without one are reported on errOut.
func writeCounts(out, errOut io.Writer, format string, iso3 bool, counts domain.CountryCountMap) error {
	if iso3 {
		byCode, missing := aggregate.ByISO3(counts)
		for _, name := range missing {
			_, _ = fmt.Fprintf(errOut, "no ISO code for %s\n", name)
		}
		counts = domain.CountryCountMap(byCode)
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]int(counts))
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]int(counts)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return writeTable(out, counts)
	}
}

func writeTable(out io.Writer, counts domain.CountryCountMap) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "COUNTRY\tAUTHORS")
	for _, e := range aggregate.Ranked(counts) {
		_, _ = fmt.Fprintf(tw, "%s\t%d\n", e.Country, e.Count)
	}
	_, _ = fmt.Fprintf(tw, "TOTAL\t%d\n", counts.Total())
	return tw.Flush()
}
