package domain

// UnknownNationality is the label the lookup backend reports when no
// country of citizenship could be found for an author.
const UnknownNationality = "Unknown"

// NationalityRecord is the lookup result for one author. Nationality is the
// label as returned by the source and may be historical or aliased.
type NationalityRecord struct {
	Name        string `json:"name"`
	Nationality string `json:"nationality"`
	// Cached reports that the backend served a previously computed value.
	// It is informational only.
	Cached bool `json:"cached"`
}

// NormalizedNationalityRecord pairs an author with a canonical country name,
// or with the raw label when the alias table does not cover it. Nationality is
// empty only when the source returned none.
type NormalizedNationalityRecord struct {
	Name        string `json:"name" yaml:"name"`
	Nationality string `json:"nationality" yaml:"nationality"`
}

// CountryCountMap maps canonical country names to the number of authors
// attributed to them. A missing key means zero.
type CountryCountMap map[string]int

// Total returns the sum of all counts.
func (m CountryCountMap) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Clone returns an independent copy of the map.
func (m CountryCountMap) Clone() CountryCountMap {
	out := make(CountryCountMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
