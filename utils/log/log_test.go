package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"ERROR": slog.LevelError,
	}
	for input, expected := range cases {
		level, err := ParseLevel(input)
		if err != nil {
			t.Errorf("Expected no error for %s, got %v", input, err)
		}
		if level != expected {
			t.Errorf("Expected %v for %s, got %v", expected, input, level)
		}
	}

	level, err := ParseLevel("TRACE")
	if err == nil || level != slog.LevelInfo {
		t.Errorf("Expected INFO fallback with error, got %v / %v", level, err)
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buffer bytes.Buffer
	logger := NewLogger(&buffer, slog.LevelWarn)

	logger.Info("no se ve")
	logger.Warn("se ve")

	output := buffer.String()
	if strings.Contains(output, "no se ve") {
		t.Errorf("Expected INFO line to be filtered, got %q", output)
	}
	if !strings.Contains(output, "se ve") || !strings.Contains(output, "modulo=simulador") {
		t.Errorf("Expected WARN line with modulo attribute, got %q", output)
	}
}
