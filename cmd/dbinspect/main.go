// Package main prints a summary of a nationality cache: raw labels, the
// countries they normalize to and labels missing from the alias table.
//
// Usage:
//
//	DATA_PATH=~/GeoReads/data go run ./cmd/dbinspect
//	DATA_PATH=~/GeoReads/data STORE_BACKEND=sqlite go run ./cmd/dbinspect
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/georeads/georeads/internal/aggregate"
	"github.com/georeads/georeads/internal/config"
	"github.com/georeads/georeads/internal/country"
	"github.com/georeads/georeads/internal/domain"
	"github.com/georeads/georeads/internal/store"
	"github.com/georeads/georeads/internal/store/sqlite"
)

func main() {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		dataPath = os.ExpandEnv("$HOME/GeoReads/data")
	}
	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = config.BackendBadger
	}

	var (
		cache store.NationalityCache
		err   error
	)
	switch backend {
	case config.BackendSQLite:
		cache, err = sqlite.Open(filepath.Join(dataPath, "georeads.db"), 0, nil)
	default:
		cache, err = store.OpenReadOnly(filepath.Join(dataPath, "badger"), 0)
	}
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer cache.Close()

	raw, err := cache.NationalityCounts(context.Background())
	if err != nil {
		log.Fatalf("Failed to count nationalities: %v", err)
	}

	fmt.Println("=== Nationality Cache Inspection ===")
	fmt.Printf("Backend: %s\n\n", backend)

	diagnostics := country.NewDiagnostics()
	normalizer := country.NewNormalizer(diagnostics, nil)
	canonical := make(domain.CountryCountMap)
	authors := 0
	for label, n := range raw {
		authors += n
		if name := normalizer.Normalize(label); name != "" {
			canonical[name] += n
		}
	}

	fmt.Printf("Cached authors: %d\n", authors)
	fmt.Printf("Distinct labels: %d\n", len(raw))
	fmt.Printf("Countries: %d\n\n", len(canonical))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNTRY\tISO3\tAUTHORS")
	for _, e := range aggregate.Ranked(canonical) {
		code, ok := country.ISO3(e.Country)
		if !ok {
			code = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", e.Country, code, e.Count)
	}
	_ = tw.Flush()

	if unmapped := diagnostics.Unmapped(); len(unmapped) > 0 {
		fmt.Println("\nLabels missing from the alias table:")
		for _, label := range unmapped {
			fmt.Printf("  %s (%d)\n", label, raw[label])
		}
	}
}
