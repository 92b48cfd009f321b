// Package session defines the pomodoro session modes
package session

import "strings"

// Mode represents the kind of interval being timed.
type Mode string

const (
	Focus      Mode = "focus"
	ShortBreak Mode = "shortBreak"
	LongBreak  Mode = "longBreak"
)

// Modes lists every mode in display order.
var Modes = []Mode{Focus, ShortBreak, LongBreak}

// Label returns the human-readable name of the mode.
func (m Mode) Label() string {
	switch m {
	case Focus:
		return "Focus Session"
	case ShortBreak:
		return "Short Break"
	default:
		return "Long Break"
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case Focus, ShortBreak, LongBreak:
		return true
	}

	return false
}

func (m Mode) String() string {
	return string(m)
}

// Parse converts user input such as "short-break" or "long_break" into a
// Mode. The second return value is false if the input matches no mode.
func Parse(s string) (Mode, bool) {
	normalised := strings.NewReplacer("-", "", "_", "", " ", "").
		Replace(strings.ToLower(strings.TrimSpace(s)))

	switch normalised {
	case "focus", "work":
		return Focus, true
	case "shortbreak", "short":
		return ShortBreak, true
	case "longbreak", "long":
		return LongBreak, true
	}

	return "", false
}
