// Package timeutil provides utility functions for working with time values
package timeutil

import (
	"fmt"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// keyLayout is a fixed-width timestamp so that keys sort chronologically.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SecsToMinsAndSecs splits a number of seconds into whole minutes and the
// remaining seconds.
func SecsToMinsAndSecs(secs int) (mins, rem int) {
	if secs < 0 {
		secs = 0
	}

	return secs / 60, secs % 60
}

// FormatClock renders a countdown as "MM:SS". Minutes are not capped at 59,
// so a 90 minute session shows as "90:00".
func FormatClock(secs int) string {
	m, s := SecsToMinsAndSecs(secs)

	return fmt.Sprintf("%02d:%02d", m, s)
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}

// FromStr parses a date such as "yesterday" or "3 days ago" relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	d, err := dateparser.Parse(cfg, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse %q as a date: %w", s, err)
	}

	return d.Time, nil
}

// FormatDuration renders whole seconds as "1h05m", "25m" or "45s".
func FormatDuration(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", max(secs, 0))
	}

	mins := secs / 60
	if mins < 60 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh%02dm", mins/60, mins%60)
}
