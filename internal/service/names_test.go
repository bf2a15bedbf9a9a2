package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"single", "George Orwell", []string{"George Orwell"}},
		{"trims and drops empties", " Orwell , ,Rowling,, Tolkien ", []string{"Orwell", "Rowling", "Tolkien"}},
		{"dedupes in first-seen order", "B,A,B,C,A", []string{"B", "A", "C"}},
		{"empty", "", []string{}},
		{"only separators", " , , ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNames(tt.raw))
		})
	}
}
