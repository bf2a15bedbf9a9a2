package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/georeads/georeads/internal/config"
)

const exportCSV = "Title,Author,Exclusive Shelf\n" +
	"Pride and Prejudice,Jane Austen,read\n" +
	"Emma,Jane Austen,read\n" +
	"Things Fall Apart,Chinua Achebe,read\n" +
	"The Prisoner of Zenda,Anthony Hope,read\n" +
	"Half of a Yellow Sun,Chimamanda Ngozi Adichie,to-read\n"

func writeExport(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// lookupServer answers author_batch from a fixed table.
func lookupServer(t *testing.T, answers map[string]string, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		if r.URL.Path != "/api/author_batch" {
			http.NotFound(w, r)
			return
		}
		type result struct {
			Name        string `json:"name"`
			Nationality string `json:"nationality"`
			Cached      bool   `json:"cached"`
		}
		var results []result
		for _, n := range strings.Split(r.URL.Query().Get("names"), ",") {
			results = append(results, result{Name: n, Nationality: answers[n]})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAuthorsCommand(t *testing.T) {
	path := writeExport(t, exportCSV)

	stdout, _, err := run(t, "authors", path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Austen\nChinua Achebe\nAnthony Hope\n", stdout)

	stdout, _, err = run(t, "authors", path, "--shelf", "to-read", "--json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &names))
	assert.Equal(t, []string{"Chimamanda Ngozi Adichie"}, names)
}

func TestMapCommand_JSON(t *testing.T) {
	srv := lookupServer(t, map[string]string{
		"Jane Austen":   "Kingdom of Great Britain",
		"Chinua Achebe": "Nigeria",
		"Anthony Hope":  "Ruritania",
	}, nil)
	path := writeExport(t, exportCSV)

	stdout, stderr, err := run(t, "map", path, "--api-base", srv.URL+"/api", "--format", "json")
	require.NoError(t, err)

	var counts map[string]int
	require.NoError(t, json.Unmarshal([]byte(stdout), &counts))
	assert.Equal(t, map[string]int{"United Kingdom": 1, "Nigeria": 1, "Ruritania": 1}, counts)
	assert.Contains(t, stderr, "unmapped nationality: Ruritania")
}

func TestMapCommand_YAMLByISO3(t *testing.T) {
	srv := lookupServer(t, map[string]string{
		"Jane Austen":   "England",
		"Chinua Achebe": "Nigeria",
		"Anthony Hope":  "Unknown",
	}, nil)
	path := writeExport(t, exportCSV)

	stdout, stderr, err := run(t, "map", path, "--api-base", srv.URL+"/api", "--format", "yaml", "--iso3")
	require.NoError(t, err)

	var counts map[string]int
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &counts))
	assert.Equal(t, map[string]int{"GBR": 1, "NGA": 1}, counts)
	assert.Contains(t, stderr, "unmapped nationality: Unknown")
	assert.Contains(t, stderr, "no ISO code for Unknown")
}

func TestMapCommand_Table(t *testing.T) {
	srv := lookupServer(t, map[string]string{
		"Jane Austen":   "United Kingdom",
		"Chinua Achebe": "Nigeria",
		"Anthony Hope":  "England",
	}, nil)
	path := writeExport(t, exportCSV)

	stdout, _, err := run(t, "map", path, "--api-base", srv.URL+"/api")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "COUNTRY"))
	assert.Equal(t, []string{"United Kingdom", "2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Nigeria", "1"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"TOTAL", "3"}, strings.Fields(lines[3]))
}

func TestMapCommand_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	path := writeExport(t, exportCSV)

	stdout, _, err := run(t, "map", path, "--api-base", srv.URL+"/api", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error fetching nationalities")
	assert.Empty(t, stdout)
}

func TestMapCommand_EmptyShelfMakesNoRequest(t *testing.T) {
	var calls atomic.Int32
	srv := lookupServer(t, nil, &calls)
	path := writeExport(t, exportCSV)

	stdout, _, err := run(t, "map", path, "--api-base", srv.URL+"/api", "--shelf", "currently-reading", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, stdout)
	assert.Zero(t, calls.Load())
}

func TestMapCommand_UnparseableExport(t *testing.T) {
	var calls atomic.Int32
	srv := lookupServer(t, nil, &calls)
	path := writeExport(t, "")

	stdout, stderr, err := run(t, "map", path, "--api-base", srv.URL+"/api", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, stdout)
	assert.Contains(t, stderr, "could not parse")
	assert.Zero(t, calls.Load())
}

func TestMapCommand_BadFormat(t *testing.T) {
	path := writeExport(t, exportCSV)

	_, _, err := run(t, "map", path, "--api-base", "http://localhost:1/api", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestMapCommand_ProductionNeedsPublicOrigin(t *testing.T) {
	t.Setenv("API_BASE", "")
	t.Setenv("PUBLIC_ORIGIN", "")
	path := writeExport(t, exportCSV)

	_, _, err := run(t, "--env", "production", "map", path, "--format", "json")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrNoPublicOrigin)
}

func TestMapCommand_ProductionUsesPublicOrigin(t *testing.T) {
	var calls atomic.Int32
	srv := lookupServer(t, map[string]string{
		"Jane Austen":   "England",
		"Chinua Achebe": "Nigeria",
		"Anthony Hope":  "United Kingdom",
	}, &calls)
	t.Setenv("API_BASE", "")
	t.Setenv("PUBLIC_ORIGIN", srv.URL)
	path := writeExport(t, exportCSV)

	stdout, _, err := run(t, "--env", "production", "map", path, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"United Kingdom": 2, "Nigeria": 1}`, stdout)
	assert.Equal(t, int32(1), calls.Load())
}

func TestShelfFlag_OnlyStandardShelves(t *testing.T) {
	path := writeExport(t, exportCSV)

	_, _, err := run(t, "authors", path, "--shelf", "favourites")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown shelf "favourites"`)

	_, _, err = run(t, "map", path, "--api-base", "http://localhost:1/api", "--shelf", "read,dnf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown shelf "dnf"`)

	stdout, _, err := run(t, "authors", path, "--shelf", "To-Read")
	require.NoError(t, err)
	assert.Equal(t, "Chimamanda Ngozi Adichie\n", stdout)
}
