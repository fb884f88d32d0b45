package api

import (
	"testing"
)

func TestFormatLogLine(t *testing.T) {
	input := `time=2026-08-25T06:50:46.074+01:00 level=INFO msg="Scene preset saved" name=plaza panoid=abc longparam=thisiswaytooLongtobedisplayed`
	expected := "06:50:46 Scene preset saved (name=plaza, panoid=abc)"

	result := formatLogLine(input)
	if result != expected {
		t.Errorf("Expected '%s', got '%s'", expected, result)
	}
}

func TestFormatLogLinePassthrough(t *testing.T) {
	input := "plain text without attributes"
	if got := formatLogLine(input); got != input {
		t.Errorf("Expected passthrough, got '%s'", got)
	}
}
