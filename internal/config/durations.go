package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/ayoisaiah/pomo/internal/session"
)

const (
	DefaultFocusMinutes      = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultCycles            = 4

	// MinCycles is the smallest accepted number of focus sessions before a
	// long break.
	MinCycles = 2
)

// Durations holds the length of each session mode in whole minutes and the
// number of focus sessions that make up a cycle.
type Durations struct {
	Minutes               map[session.Mode]int
	CyclesBeforeLongBreak int
}

// DefaultDurations returns the classic 25/5/15 configuration with a long
// break after every fourth focus session.
func DefaultDurations() *Durations {
	return &Durations{
		Minutes: map[session.Mode]int{
			session.Focus:      DefaultFocusMinutes,
			session.ShortBreak: DefaultShortBreakMinutes,
			session.LongBreak:  DefaultLongBreakMinutes,
		},
		CyclesBeforeLongBreak: DefaultCycles,
	}
}

// Seconds returns the duration of mode in seconds.
func (d *Durations) Seconds(mode session.Mode) int {
	return d.Minutes[mode] * 60
}

// SetDurations replaces all four settings at once. Nothing is changed unless
// every duration is positive and cycles is at least MinCycles.
func (d *Durations) SetDurations(focus, shortBreak, longBreak, cycles int) error {
	if focus <= 0 || shortBreak <= 0 || longBreak <= 0 || cycles < MinCycles {
		return ErrInvalidSettings
	}

	d.Minutes = map[session.Mode]int{
		session.Focus:      focus,
		session.ShortBreak: shortBreak,
		session.LongBreak:  longBreak,
	}
	d.CyclesBeforeLongBreak = cycles

	return nil
}

// ParseDurations is SetDurations for raw form input. Each value must be a
// whole number.
func (d *Durations) ParseDurations(focus, shortBreak, longBreak, cycles string) error {
	values := make([]int, 0, 4)

	for _, s := range []string{focus, shortBreak, longBreak, cycles} {
		n, ok := ParseWhole(s)
		if !ok {
			return ErrInvalidSettings
		}

		values = append(values, n)
	}

	return d.SetDurations(values[0], values[1], values[2], values[3])
}

// SetMinutes updates a single mode duration if n is positive.
func (d *Durations) SetMinutes(mode session.Mode, n int) bool {
	if !mode.Valid() || n <= 0 {
		return false
	}

	if d.Minutes == nil {
		d.Minutes = make(map[session.Mode]int)
	}

	d.Minutes[mode] = n

	return true
}

// SetCycles updates the cycle threshold if n is at least MinCycles.
func (d *Durations) SetCycles(n int) bool {
	if n < MinCycles {
		return false
	}

	d.CyclesBeforeLongBreak = n

	return true
}

// Validate checks the rules that SetDurations enforces.
func (d *Durations) Validate() error {
	for _, mode := range session.Modes {
		if d.Minutes[mode] <= 0 {
			return errInvalidDuration.Fmt(mode.Label())
		}
	}

	if d.CyclesBeforeLongBreak < MinCycles {
		return errInvalidCycles.Fmt(MinCycles)
	}

	return nil
}

// ParseWhole parses s as a whole number. Surrounding whitespace is ignored
// and a number with a zero fractional part such as "10.0" is accepted.
func ParseWhole(s string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}
