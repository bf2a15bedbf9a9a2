// Package readinglog reads reading-log CSV exports into raw rows.
package readinglog

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/georeads/georeads/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrNoHeader is returned for input without a header row.
var ErrNoHeader = errors.New("readinglog: missing header row")

// Parse reads a CSV export. The first record names the columns; each later
// record becomes a row keyed by those names. Short records are allowed and
// simply lack the trailing keys; extra cells are ignored. Header names are
// trimmed and all text is NFC-normalized.
func Parse(r io.Reader) ([]domain.RawRow, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i, h := range header {
		header[i] = norm.NFC.String(strings.TrimSpace(h))
	}

	rows := []domain.RawRow{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		if isBlank(record) {
			continue
		}

		row := make(domain.RawRow, len(header))
		for i, cell := range record {
			if i >= len(header) {
				break
			}
			if header[i] == "" {
				continue
			}
			row[header[i]] = norm.NFC.String(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
