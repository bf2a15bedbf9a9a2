// Package id generates prefixed identifiers for resolution runs and requests.
package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Prefixes for the identifiers GeoReads hands out.
const (
	PrefixRun   = "run"
	PrefixBatch = "batch"
)

// shortAlphabet avoids '-' and '_' so short IDs stay readable in logs.
const shortAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ShortLength is the length of the random part produced by Short.
const ShortLength = 12

// Generate returns prefix-nanoid, e.g. "run-V1StGXR8_Z5jdHi6B-myT".
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// Short returns prefix-xxxxxxxxxxxx using a lowercase alphanumeric alphabet.
func Short(prefix string) (string, error) {
	id, err := gonanoid.Generate(shortAlphabet, ShortLength)
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}

// NewRunID identifies one resolution run of a pipeline session.
func NewRunID() (string, error) {
	return Generate(PrefixRun)
}

// NewBatchID identifies one author batch handled by the lookup backend.
func NewBatchID() string {
	id, err := Short(PrefixBatch)
	if err != nil {
		return PrefixBatch + "-unknown"
	}
	return id
}
