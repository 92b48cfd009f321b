package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/config"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Notifications: config.NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Display: config.DisplayConfig{
			DarkTheme: true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err, "default config should be written")
	assert.Contains(t, string(b), "dark_theme: true")
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	modified := `notifications:
  enabled: false
  sound: true
display:
  dark_theme: false
  24hr_clock: true
settings:
  cmd: notify-send done
`

	require.NoError(t, os.WriteFile(configPath, []byte(modified), 0o600))

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)

	want := &config.Config{
		Notifications: config.NotificationConfig{
			Enabled: false,
			Sound:   true,
		},
		Display: config.DisplayConfig{
			DarkTheme:      false,
			TwentyFourHour: true,
		},
		Settings: config.SettingsConfig{
			Cmd: "notify-send done",
		},
	}

	assert.Equal(t, want, cfg)
}

func TestViperMalformedConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	require.NoError(t, os.WriteFile(configPath, []byte("display: [unterminated"), 0o600))

	_, err := config.New(config.WithViperConfig(configPath))
	assert.Error(t, err)
}
