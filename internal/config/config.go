// Package config holds the pomo configuration: the session durations and
// cycle threshold that drive the timer, plus the ambient settings read from
// the config file and command-line flags
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ayoisaiah/pomo/internal/session"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		System        SystemConfig       `mapstructure:"-"`
		Overrides     Overrides          `mapstructure:"-"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Sound   bool `mapstructure:"sound"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
		NoColor        bool `mapstructure:"-"`
	}

	// SettingsConfig holds miscellaneous behaviour settings.
	SettingsConfig struct {
		// Cmd is executed after every naturally completed session
		Cmd string `mapstructure:"cmd"`
	}

	// SystemConfig holds file locations and process-level switches.
	SystemConfig struct {
		ConfigPath string
		DBPath     string
		StatusPath string
		LogPath    string
		Ephemeral  bool
		Debug      bool
	}

	// Overrides are duration settings supplied for a single run. A zero value
	// means the field was not specified.
	Overrides struct {
		Focus      int
		ShortBreak int
		LongBreak  int
		Cycles     int
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	return cfg, nil
}

// Set reports whether any override was supplied.
func (o Overrides) Set() bool {
	return o.Focus != 0 || o.ShortBreak != 0 || o.LongBreak != 0 ||
		o.Cycles != 0
}

// Apply replaces the durations with the overridden values. Unspecified fields
// keep their current value and the result is validated as a whole, so an
// invalid override leaves d untouched.
func (o Overrides) Apply(d *Durations) error {
	if !o.Set() {
		return nil
	}

	focus := overrideOr(o.Focus, d.Minutes[session.Focus])
	shortBreak := overrideOr(o.ShortBreak, d.Minutes[session.ShortBreak])
	longBreak := overrideOr(o.LongBreak, d.Minutes[session.LongBreak])
	cycles := d.CyclesBeforeLongBreak

	if o.Cycles != 0 {
		cycles = o.Cycles
	}

	if err := d.SetDurations(focus, shortBreak, longBreak, cycles); err != nil {
		return fmt.Errorf("applying overrides: %w", err)
	}

	return nil
}

func overrideOr(override, current int) int {
	if override != 0 {
		return override
	}

	return current
}
