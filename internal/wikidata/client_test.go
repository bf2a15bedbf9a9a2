package wikidata

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/georeads/georeads/internal/domain"
)

const austenResponse = `{
  "head": {"vars": ["countryLabel"]},
  "results": {"bindings": [
    {"countryLabel": {"xml:lang": "en", "type": "literal", "value": "Kingdom of Great Britain"}}
  ]}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client, err := New(Config{Endpoint: server.URL + "/sparql", RPS: 1000}, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	client.http = server.Client()
	t.Cleanup(client.Close)
	return client
}

func TestClient_CountryOfCitizenship(t *testing.T) {
	tests := []struct {
		name       string
		response   string
		statusCode int
		want       string
		wantErr    error
	}{
		{
			name:       "match",
			response:   austenResponse,
			statusCode: http.StatusOK,
			want:       "Kingdom of Great Britain",
		},
		{
			name:       "no bindings",
			response:   `{"results": {"bindings": []}}`,
			statusCode: http.StatusOK,
			want:       domain.UnknownNationality,
		},
		{
			name:       "binding without label",
			response:   `{"results": {"bindings": [{}]}}`,
			statusCode: http.StatusOK,
			want:       domain.UnknownNationality,
		},
		{
			name:       "rate limited",
			statusCode: http.StatusTooManyRequests,
			wantErr:    ErrRateLimited,
		},
		{
			name:       "bad query",
			statusCode: http.StatusBadRequest,
			wantErr:    ErrBadRequest,
		},
		{
			name:       "server error",
			statusCode: http.StatusBadGateway,
			wantErr:    ErrServer,
		},
		{
			name:       "forbidden",
			statusCode: http.StatusForbidden,
			wantErr:    ErrStatus,
		},
		{
			name:       "malformed json",
			response:   `<html>`,
			statusCode: http.StatusOK,
			wantErr:    ErrParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response))
			})

			got, err := client.CountryOfCitizenship(context.Background(), "Jane Austen")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				var wdErr *Error
				if !errors.As(err, &wdErr) || wdErr.Name != "Jane Austen" {
					t.Errorf("expected *Error naming the author, got %#v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClient_RequestShape(t *testing.T) {
	var gotQuery, gotAccept, gotUA string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(austenResponse))
	})

	if _, err := client.CountryOfCitizenship(context.Background(), `Dwayne "The Rock" Johnson`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAccept != sparqlResultsJSON {
		t.Errorf("Accept = %q", gotAccept)
	}
	if !strings.HasPrefix(gotUA, "GeoReads/") {
		t.Errorf("User-Agent = %q", gotUA)
	}
	for _, want := range []string{`rdfs:label "Dwayne \"The Rock\" Johnson"@en`, "wdt:P27", "wd:Q5", "LIMIT 1"} {
		if !strings.Contains(gotQuery, want) {
			t.Errorf("query missing %q:\n%s", want, gotQuery)
		}
	}
}

func TestClient_ObserverAndEmptyName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	var observed []error
	client.Observe(func(_ time.Time, err error) { observed = append(observed, err) })

	if _, err := client.CountryOfCitizenship(context.Background(), ""); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := client.CountryOfCitizenship(context.Background(), "Jane Austen"); err == nil {
		t.Fatal("expected error")
	}

	if len(observed) != 1 || !errors.Is(observed[0], ErrServer) {
		t.Errorf("observer saw %v, want one ErrServer", observed)
	}
}

func TestClient_ContextCanceledWhileThrottled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	slow, err := New(Config{Endpoint: "http://127.0.0.1:1/sparql", RPS: 0.01}, logger)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer slow.Close()
	slow.limiter.Allow(slow.limitKey)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := slow.CountryOfCitizenship(ctx, "Jane Austen"); err == nil {
		t.Fatal("expected the limiter wait to fail")
	}
}

func TestEscapeLiteral(t *testing.T) {
	tests := map[string]string{
		"Jane Austen":       "Jane Austen",
		`O"Brien`:           `O\"Brien`,
		`back\slash`:        `back\\slash`,
		"line\nbreak":       `line\nbreak`,
		"Flannery O'Connor": "Flannery O'Connor",
	}
	for in, want := range tests {
		if got := escapeLiteral(in); got != want {
			t.Errorf("escapeLiteral(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNew_InvalidEndpoint(t *testing.T) {
	if _, err := New(Config{Endpoint: "::not a url"}, slog.Default()); err == nil {
		t.Fatal("expected error")
	}
}
