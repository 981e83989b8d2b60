package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "unknown", want: slog.LevelWarn},
		{in: "", want: slog.LevelWarn},
	}

	for _, tc := range cases {
		got := parseLogLevel(tc.in)
		if got != tc.want {
			t.Fatalf("parseLogLevel(%q)=%v want=%v", tc.in, got, tc.want)
		}
	}
}

func TestNewFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, "warn")
	log.Debug("hidden")
	log.Warn("shown", "alg", "sha256")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record leaked: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "alg=sha256") {
		t.Fatalf("warn record missing: %q", out)
	}
}
