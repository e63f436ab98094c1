package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// AbsoluteTimeLayout is the accepted absolute date format.
const AbsoluteTimeLayout = "2006-01-02"

// relativeDurationRegex matches patterns like "7d", "24h", "60m", "30s"
var relativeDurationRegex = regexp.MustCompile(`^(\d+)([hmsd])$`)

// ParseRelativeDuration parses a string like "7d" into a time.Duration.
func ParseRelativeDuration(s string) (time.Duration, error) {
	matches := relativeDurationRegex.FindStringSubmatch(s)
	if len(matches) != 3 {
		return 0, fmt.Errorf("invalid duration format: %q. Expected format like '7d', '24h', '60m'", s)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid duration value %q: %w", matches[1], err)
	}

	unit := time.Second
	switch matches[2] {
	case "d":
		unit = 24 * time.Hour
	case "h":
		unit = time.Hour
	case "m":
		unit = time.Minute
	}
	return time.Duration(value) * unit, nil
}

// ParseSince turns either a relative duration ("7d", meaning before now) or
// a YYYY-MM-DD date into a point in time.
func ParseSince(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("time string cannot be empty")
	}

	if d, err := ParseRelativeDuration(s); err == nil {
		return now.Add(-d), nil
	}

	if t, err := time.ParseInLocation(AbsoluteTimeLayout, s, now.Location()); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("invalid time format: %q. Use '7d'/'24h' or 'YYYY-MM-DD'", s)
}
