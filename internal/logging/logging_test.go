package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		got := ParseLevel(tt.input)
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "json", slog.LevelInfo))

	logger.Info("fetch started", "lang", "simple")

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("expected valid JSON output, got error: %v\noutput: %s", err, buf.String())
	}
	if m["msg"] != "fetch started" {
		t.Errorf("expected msg 'fetch started', got %q", m["msg"])
	}
	if m["lang"] != "simple" {
		t.Errorf("expected lang 'simple', got %q", m["lang"])
	}
}

func TestNewHandler_TextDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "", slog.LevelInfo))

	logger.Info("fetch started", "lang", "simple")

	out := buf.String()
	if !strings.Contains(out, "msg=\"fetch started\"") {
		t.Errorf("expected text output containing msg, got: %s", out)
	}
	if !strings.Contains(out, "lang=simple") {
		t.Errorf("expected text output containing lang=simple, got: %s", out)
	}
}

func TestNewHandler_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(newHandler(&buf, "text", slog.LevelWarn))

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line should be filtered at warn level, got: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line missing, got: %s", out)
	}
}
