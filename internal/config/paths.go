package config

import (
	"github.com/ayoisaiah/pomo/internal/pathutil"
)

// WithPaths returns an Option that resolves the application file locations.
func WithPaths() Option {
	return func(c *Config) error {
		if err := pathutil.Initialize(); err != nil {
			return errInitPaths.Wrap(err)
		}

		p := pathutil.Must()

		c.System.ConfigPath = p.ConfigFilePath()
		c.System.DBPath = p.DBFilePath()
		c.System.StatusPath = p.StatusFilePath()
		c.System.LogPath = p.LogFilePath()

		return nil
	}
}
