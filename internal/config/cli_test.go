package config

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestWithCLIConfig(t *testing.T) {
	f := flag.NewFlagSet("pomo", flag.ContinueOnError)

	flags := map[string]string{
		"focus":                "50",
		"cycles":               "3",
		"session-cmd":          "echo done",
		"disable-notification": "true",
		"ephemeral":            "true",
	}

	for k, v := range flags {
		_ = f.String(k, "", "")

		require.NoError(t, f.Set(k, v))
	}

	ctx := cli.NewContext(&cli.App{}, f, nil)

	cfg := &Config{
		Notifications: NotificationConfig{Enabled: true},
	}

	require.NoError(t, WithCLIConfig(ctx)(cfg))

	assert.Equal(t, Overrides{Focus: 50, Cycles: 3}, cfg.Overrides)
	assert.Equal(t, "echo done", cfg.Settings.Cmd)
	assert.False(t, cfg.Notifications.Enabled)
	assert.True(t, cfg.System.Ephemeral)
	assert.False(t, cfg.System.Debug)
}
