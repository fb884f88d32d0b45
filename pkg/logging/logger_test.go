package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"panomaster/pkg/config"
)

func TestInit(t *testing.T) {
	tempDir := t.TempDir()
	serverLog := filepath.Join(tempDir, "server.log")
	eventLog := filepath.Join(tempDir, "events.log")

	cfg := &config.LogConfig{
		Server: config.LogSettings{
			Path:  serverLog,
			Level: "DEBUG",
		},
		Events: config.LogSettings{
			Path: eventLog,
		},
	}

	// Run Init
	cleanup, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer cleanup()

	// Verify server log created
	if _, err := os.Stat(serverLog); os.IsNotExist(err) {
		t.Error("Server log file not created")
	}
}

func TestLogEvent(t *testing.T) {
	tempDir := t.TempDir()
	eventLog := filepath.Join(tempDir, "events.log")
	SetEventLogPath(eventLog)
	defer SetEventLogPath("")

	LogEvent("move", "direction", "forward", "id", "abc")
	LogEvent("scene", "id", "xyz")

	data, err := os.ReadFile(eventLog)
	if err != nil {
		t.Fatalf("event log not written: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 event lines, got %d", len(lines))
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("event line is not JSON: %v", err)
	}
	if entry["event"] != "move" || entry["direction"] != "forward" || entry["id"] != "abc" {
		t.Errorf("unexpected event entry: %v", entry)
	}
}

func TestLogCaptureWriter(t *testing.T) {
	w := &LogCaptureWriter{}

	if got := w.GetLastLine(); got != "" {
		t.Errorf("fresh capture = %q, want empty", got)
	}

	if _, err := w.Write([]byte("first line")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, err := w.Write([]byte("second line")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if got := w.GetLastLine(); got != "second line" {
		t.Errorf("GetLastLine = %q, want %q", got, "second line")
	}
}
