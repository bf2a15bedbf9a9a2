// Package country maps raw nationality labels onto canonical present-day country names.
package country

import (
	"log/slog"
	"sync"

	"github.com/georeads/georeads/internal/domain"
)

// Normalize maps a raw nationality label to its canonical country name.
//
// Lookup is exact and case-sensitive. Aliases resolve to their canonical
// name and canonical names are recognized as-is. Anything else, including the
// "Unknown" sentinel, is returned unchanged with mapped == false so every
// author keeps a label. An empty label carries no nationality and stays empty.
func Normalize(raw string) (canonical string, mapped bool) {
	if raw == "" {
		return "", true
	}
	if c, ok := aliases[raw]; ok {
		return c, true
	}
	if IsCanonical(raw) {
		return raw, true
	}
	return raw, false
}

// Diagnostics collects unmapped labels in first-seen order.
// It is safe for concurrent use.
type Diagnostics struct {
	mu       sync.Mutex
	seen     map[string]struct{}
	unmapped []string
}

// NewDiagnostics creates an empty collector.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{seen: make(map[string]struct{})}
}

// record adds label and reports whether it was new.
func (d *Diagnostics) record(label string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[label]; ok {
		return false
	}
	d.seen[label] = struct{}{}
	d.unmapped = append(d.unmapped, label)
	return true
}

// Unmapped returns a copy of the collected labels.
func (d *Diagnostics) Unmapped() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.unmapped))
	copy(out, d.unmapped)
	return out
}

// Len returns the number of distinct unmapped labels.
func (d *Diagnostics) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.unmapped)
}

// UnmappedHook is called once for every label the normalizer passes through.
type UnmappedHook func(label string)

// Normalizer applies Normalize and reports gaps in the alias table.
type Normalizer struct {
	diagnostics *Diagnostics
	logger      *slog.Logger
	onUnmapped  UnmappedHook
}

// NewNormalizer creates a normalizer that records gaps into diagnostics.
// A nil diagnostics gets a fresh collector; a nil logger disables logging.
func NewNormalizer(diagnostics *Diagnostics, logger *slog.Logger) *Normalizer {
	if diagnostics == nil {
		diagnostics = NewDiagnostics()
	}
	return &Normalizer{diagnostics: diagnostics, logger: logger}
}

// OnUnmapped installs a hook called for each unmapped label occurrence.
func (n *Normalizer) OnUnmapped(hook UnmappedHook) {
	n.onUnmapped = hook
}

// Diagnostics returns the collector used by this normalizer.
func (n *Normalizer) Diagnostics() *Diagnostics {
	return n.diagnostics
}

// Normalize returns the canonical name for raw, recording a diagnostic
// when raw is not covered by the table.
func (n *Normalizer) Normalize(raw string) string {
	canonical, mapped := Normalize(raw)
	if mapped {
		return canonical
	}

	if n.onUnmapped != nil {
		n.onUnmapped(raw)
	}
	if n.diagnostics.record(raw) && n.logger != nil {
		n.logger.Warn("unmapped nationality", "nationality", raw)
	}
	return canonical
}

// NormalizeRecords normalizes every record, preserving order.
func (n *Normalizer) NormalizeRecords(records []domain.NationalityRecord) []domain.NormalizedNationalityRecord {
	out := make([]domain.NormalizedNationalityRecord, len(records))
	for i, r := range records {
		out[i] = domain.NormalizedNationalityRecord{
			Name:        r.Name,
			Nationality: n.Normalize(r.Nationality),
		}
	}
	return out
}
