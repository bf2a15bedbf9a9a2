package store

import "fmt"

const nationalityPrefix = "nationality:author:"

// nationalityKey returns the key for an author's cached nationality.
// Names are stored verbatim so lookups stay exact.
func nationalityKey(name string) []byte {
	return fmt.Appendf(nil, "%s%s", nationalityPrefix, name)
}
