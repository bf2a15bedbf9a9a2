package authors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/georeads/georeads/internal/domain"
	"github.com/georeads/georeads/internal/shelf"
)

func TestExtract_SharedAuthorAcrossRows(t *testing.T) {
	rows := []domain.RawRow{
		{domain.ColumnShelf: "read", domain.ColumnAuthor: "Jane Austen"},
		{domain.ColumnShelf: "read", domain.ColumnAuthor: "Jane Austen, Another Writer"},
	}

	got := Extract(shelf.Filter(rows, shelf.DefaultSelection()))

	assert.Equal(t, []domain.AuthorName{"Jane Austen", "Another Writer"}, got)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		rows []domain.RawRow
		want []domain.AuthorName
	}{
		{
			name: "no rows",
			rows: nil,
			want: []domain.AuthorName{},
		},
		{
			name: "fallback column used when primary missing",
			rows: []domain.RawRow{{domain.ColumnAuthors: "Terry Pratchett, Neil Gaiman"}},
			want: []domain.AuthorName{"Terry Pratchett", "Neil Gaiman"},
		},
		{
			name: "fallback column used when primary blank",
			rows: []domain.RawRow{{domain.ColumnAuthor: "   ", domain.ColumnAuthors: "Ursula K. Le Guin"}},
			want: []domain.AuthorName{"Ursula K. Le Guin"},
		},
		{
			name: "primary column wins",
			rows: []domain.RawRow{{domain.ColumnAuthor: "Italo Calvino", domain.ColumnAuthors: "Someone Else"}},
			want: []domain.AuthorName{"Italo Calvino"},
		},
		{
			name: "rows without author skipped",
			rows: []domain.RawRow{{"Title": "Anonymous"}, {domain.ColumnAuthor: "Homer"}},
			want: []domain.AuthorName{"Homer"},
		},
		{
			name: "empty tokens dropped",
			rows: []domain.RawRow{{domain.ColumnAuthor: " A ,, B,"}},
			want: []domain.AuthorName{"A", "B"},
		},
		{
			name: "comma inside a name splits it",
			rows: []domain.RawRow{{domain.ColumnAuthor: "Martin Luther King, Jr."}},
			want: []domain.AuthorName{"Martin Luther King", "Jr."},
		},
		{
			name: "identity is exact",
			rows: []domain.RawRow{{domain.ColumnAuthor: "jane austen, Jane Austen"}},
			want: []domain.AuthorName{"jane austen", "Jane Austen"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.rows))
		})
	}
}

func TestExtract_NoDuplicatesFirstSeenOrder(t *testing.T) {
	rows := []domain.RawRow{
		{domain.ColumnAuthor: "C, A"},
		{domain.ColumnAuthor: "B, C"},
		{domain.ColumnAuthor: "A"},
		{domain.ColumnAuthor: "D,B"},
	}

	got := Extract(rows)

	assert.Equal(t, []domain.AuthorName{"C", "A", "B", "D"}, got)
	seen := make(map[domain.AuthorName]bool)
	for _, n := range got {
		assert.False(t, seen[n], "duplicate %q", n)
		seen[n] = true
	}
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []domain.AuthorName{"A", "B", "C"}, Split("A,B,   C"))
	assert.Empty(t, Split(" , "))
	assert.Equal(t, []string{"A", "B"}, Strings([]domain.AuthorName{"A", "B"}))
}
