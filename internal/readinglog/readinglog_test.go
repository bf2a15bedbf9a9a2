package readinglog

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georeads/georeads/internal/authors"
	"github.com/georeads/georeads/internal/domain"
	"github.com/georeads/georeads/internal/shelf"
)

const goodreadsExport = "\ufeffBook Id,Title,Author,Additional Authors,Exclusive Shelf\n" +
	"1,Emma,Jane Austen,,read\n" +
	"2,\"Good Omens\",\"Terry Pratchett, Neil Gaiman\",,read\n" +
	"\n" +
	"3,War and Peace,Leo Tolstoy,,to-read\n"

func TestParse_GoodreadsExport(t *testing.T) {
	rows, err := Parse(strings.NewReader(goodreadsExport))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "1", rows[0]["Book Id"], "BOM must be stripped from the first header")
	assert.Equal(t, "Terry Pratchett, Neil Gaiman", rows[1][domain.ColumnAuthor])

	names := authors.Extract(shelf.Filter(rows, shelf.DefaultSelection()))
	assert.Equal(t, []domain.AuthorName{"Jane Austen", "Terry Pratchett", "Neil Gaiman"}, names)
}

func TestParse_RaggedRows(t *testing.T) {
	rows, err := Parse(strings.NewReader(" Author , Exclusive Shelf \nA\nB,read,extra\n"))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, domain.RawRow{"Author": "A"}, rows[0])
	_, ok := rows[0].Field(domain.ColumnShelf)
	assert.False(t, ok)
	assert.Equal(t, domain.RawRow{"Author": "B", "Exclusive Shelf": "read"}, rows[1])
}

func TestParse_NormalizesToNFC(t *testing.T) {
	decomposed := "Gabriel Garci\u0301a Ma\u0301rquez"
	rows, err := Parse(strings.NewReader("Author\n" + decomposed + "\n"))
	require.NoError(t, err)

	assert.Equal(t, "Gabriel Garc\u00eda M\u00e1rquez", rows[0]["Author"])
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoHeader)

	boom := errors.New("disk gone")
	_, err = Parse(io.MultiReader(strings.NewReader("Author\nA\n"), iotest.ErrReader(boom)))
	assert.ErrorIs(t, err, boom)
}

func TestParse_HeaderOnly(t *testing.T) {
	rows, err := Parse(strings.NewReader("Author,Exclusive Shelf\n"))
	require.NoError(t, err)
	assert.Empty(t, rows)
}
