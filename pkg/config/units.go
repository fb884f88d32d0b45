package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration to support extended units (d, w) in YAML.
type Duration time.Duration

// Common durations.
const (
	Day  = 24 * time.Hour
	Week = 7 * Day
)

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

var extendedUnitRe = regexp.MustCompile(`(\d+(?:\.\d+)?)([dw])`)

// ParseDuration parses a duration string, supporting d and w on top of the
// standard units by rewriting them to hours.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if !strings.ContainsAny(s, "dw") {
		return time.ParseDuration(s)
	}

	converted := extendedUnitRe.ReplaceAllStringFunc(s, func(match string) string {
		parts := extendedUnitRe.FindStringSubmatch(match)
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return match
		}
		hours := v * 24
		if parts[2] == "w" {
			hours *= 7
		}
		return fmt.Sprintf("%gh", hours)
	})

	return time.ParseDuration(converted)
}
