// Package authors derives the set of author names from reading-log rows.
package authors

import (
	"regexp"
	"strings"

	"github.com/georeads/georeads/internal/domain"
)

// separator splits multi-author fields ("A, B"). It is purely syntactic:
// a comma inside one person's name is also treated as a separator.
//
//nolint:gochecknoglobals // Compiled once.
var separator = regexp.MustCompile(`,\s*`)

// Extract returns the distinct author names found in rows, in order of first
// appearance. The primary author column wins over the fallback column; rows
// where both are missing or blank contribute nothing.
func Extract(rows []domain.RawRow) []domain.AuthorName {
	seen := make(map[domain.AuthorName]struct{})
	out := make([]domain.AuthorName, 0, len(rows))

	for _, row := range rows {
		field := authorField(row)
		if field == "" {
			continue
		}
		for _, token := range Split(field) {
			if _, dup := seen[token]; dup {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return out
}

// Split breaks a raw author field into trimmed, non-empty names.
func Split(field string) []domain.AuthorName {
	parts := separator.Split(field, -1)
	names := make([]domain.AuthorName, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, domain.AuthorName(p))
		}
	}
	return names
}

// Strings converts names to plain strings.
func Strings(names []domain.AuthorName) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

func authorField(row domain.RawRow) string {
	for _, col := range []string{domain.ColumnAuthor, domain.ColumnAuthors} {
		if v, ok := row.Field(col); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}
