package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	SessionCmd    string
	Focus         int
	ShortBreak    int
	LongBreak     int
	Cycles        int
	DisableNotify bool
	NoColor       bool
	Ephemeral     bool
	Debug         bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
// Flags take precedence over the config file, so this option must be
// applied after WithViperConfig.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Focus:         ctx.Int("focus"),
			ShortBreak:    ctx.Int("short-break"),
			LongBreak:     ctx.Int("long-break"),
			Cycles:        ctx.Int("cycles"),
			SessionCmd:    ctx.String("session-cmd"),
			DisableNotify: ctx.Bool("disable-notification"),
			NoColor:       ctx.Bool("no-color"),
			Ephemeral:     ctx.Bool("ephemeral"),
			Debug:         ctx.Bool("debug"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	c.Overrides = Overrides{
		Focus:      opts.Focus,
		ShortBreak: opts.ShortBreak,
		LongBreak:  opts.LongBreak,
		Cycles:     opts.Cycles,
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	c.Display.NoColor = opts.NoColor
	c.System.Ephemeral = opts.Ephemeral
	c.System.Debug = opts.Debug
}
