package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newPretty(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(NewPrettyHandler(buf, &slog.HandlerOptions{Level: level}, false))
}

func TestNew_FormatAutoDetection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		wantJSON    bool
	}{
		{name: "production uses json", environment: "production", wantJSON: true},
		{name: "development uses pretty", environment: "development"},
		{name: "empty uses pretty", environment: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(Config{Environment: tt.environment, Writer: &buf, NoColor: true}).Info("hello")

			if tt.wantJSON {
				assert.Contains(t, buf.String(), `"msg":"hello"`)
			} else {
				assert.Contains(t, buf.String(), "INF hello")
			}
		})
	}
}

func TestNew_ExplicitFormatWins(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Format: FormatJSON, Environment: "development", Writer: &buf}).Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}, false)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	newPretty(&buf, slog.LevelDebug).Warn("unmapped nationality", "nationality", "Ruritania", "count", 2)

	assert.Contains(t, buf.String(), "WRN unmapped nationality nationality=Ruritania count=2")
	assert.NotContains(t, buf.String(), ansiReset)
}

func TestPrettyHandler_QuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	newPretty(&buf, slog.LevelInfo).Info("lookup", "author", "Jane Austen")

	assert.Contains(t, buf.String(), `author="Jane Austen"`)
}

func TestPrettyHandler_Colour(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewPrettyHandler(&buf, nil, true)).Error("boom")

	assert.Contains(t, buf.String(), ansiRed+"ERR"+ansiReset)
}

func TestPrettyHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := newPretty(&buf, slog.LevelInfo).
		With("component", "api").
		WithGroup("request").
		With("id", "abc")

	l.Info("served", "status", 200, slog.Group("timing", "total", time.Second))

	out := buf.String()
	assert.Contains(t, out, "component=api")
	assert.Contains(t, out, "request.id=abc")
	assert.Contains(t, out, "request.status=200")
	assert.Contains(t, out, "request.timing.total=1s")
}

func TestPrettyHandler_WithSource(t *testing.T) {
	var buf bytes.Buffer
	slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{AddSource: true}, false)).Info("here")

	assert.Contains(t, buf.String(), "logger_test.go:")
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{slog.LevelDebug, "DBG"},
		{slog.LevelInfo, "INF"},
		{slog.LevelWarn, "WRN"},
		{slog.LevelError, "ERR"},
		{slog.LevelError + 4, "ERR"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got, _ := levelLabel(tt.level)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_Helpers(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Format: FormatJSON, Writer: &buf})

	l.WithError(errors.New("upstream timeout")).WithField("batch", 3).Info("lookup failed")
	l.WithComponent("wikidata").Info("query")

	out := buf.String()
	assert.Contains(t, out, `"error":"upstream timeout"`)
	assert.Contains(t, out, `"batch":3`)
	assert.Contains(t, out, `"component":"wikidata"`)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("ignored") })
}
