// Package aggregate folds normalized nationality records into per-country counts.
package aggregate

import (
	"cmp"
	"slices"
	"strings"

	"github.com/georeads/georeads/internal/country"
	"github.com/georeads/georeads/internal/domain"
)

// Aggregate counts records per country. Records whose nationality is empty
// after trimming are skipped, so the total equals the number of records that
// carry a nationality.
func Aggregate(records []domain.NormalizedNationalityRecord) domain.CountryCountMap {
	counts := make(domain.CountryCountMap)
	for _, r := range records {
		name := strings.TrimSpace(r.Nationality)
		if name == "" {
			continue
		}
		counts[name]++
	}
	return counts
}

// ByISO3 re-keys canonical counts by ISO 3166-1 alpha-3 code. Countries
// without a code are returned in sorted order as missing.
func ByISO3(counts domain.CountryCountMap) (byCode map[string]int, missing []string) {
	byCode = make(map[string]int, len(counts))
	for name, n := range counts {
		code, ok := country.ISO3(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		byCode[code] += n
	}
	slices.Sort(missing)
	return byCode, missing
}

// Entry is one row of a ranked listing.
type Entry struct {
	Country string `json:"country" yaml:"country"`
	Count   int    `json:"count" yaml:"count"`
}

// Ranked lists counts from most to least common, ties broken by name.
func Ranked(counts domain.CountryCountMap) []Entry {
	out := make([]Entry, 0, len(counts))
	for name, n := range counts {
		out = append(out, Entry{Country: name, Count: n})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Country, b.Country)
	})
	return out
}
