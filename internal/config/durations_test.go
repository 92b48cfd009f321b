package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/session"
)

func TestSetDurationsValid(t *testing.T) {
	cases := []struct {
		Name                                 string
		Focus, ShortBreak, LongBreak, Cycles int
	}{
		{"defaults", 25, 5, 15, 4},
		{"minimum values", 1, 1, 1, 2},
		{"long sessions", 90, 20, 45, 8},
		{"break longer than focus", 10, 30, 60, 3},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			d := config.DefaultDurations()

			err := d.SetDurations(tc.Focus, tc.ShortBreak, tc.LongBreak, tc.Cycles)
			require.NoError(t, err)

			assert.Equal(t, tc.Focus*60, d.Seconds(session.Focus))
			assert.Equal(t, tc.ShortBreak*60, d.Seconds(session.ShortBreak))
			assert.Equal(t, tc.LongBreak*60, d.Seconds(session.LongBreak))
			assert.Equal(t, tc.Cycles, d.CyclesBeforeLongBreak)
		})
	}
}

func TestSetDurationsIsAllOrNothing(t *testing.T) {
	cases := []struct {
		Name                                 string
		Focus, ShortBreak, LongBreak, Cycles int
	}{
		{"zero focus", 0, 5, 15, 4},
		{"negative short break", 25, -5, 15, 4},
		{"zero long break", 25, 5, 0, 4},
		{"one cycle", 25, 5, 15, 1},
		{"everything invalid", -1, -1, -1, -1},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			d := config.DefaultDurations()

			err := d.SetDurations(tc.Focus, tc.ShortBreak, tc.LongBreak, tc.Cycles)
			assert.ErrorIs(t, err, config.ErrInvalidSettings)

			if diff := cmp.Diff(config.DefaultDurations(), d); diff != "" {
				t.Errorf("durations changed on failure (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDurations(t *testing.T) {
	d := config.DefaultDurations()

	require.NoError(t, d.ParseDurations("50", " 10 ", "30.0", "6"))

	want := &config.Durations{
		Minutes: map[session.Mode]int{
			session.Focus:      50,
			session.ShortBreak: 10,
			session.LongBreak:  30,
		},
		CyclesBeforeLongBreak: 6,
	}

	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseDurationsRejectsNonIntegers(t *testing.T) {
	inputs := [][4]string{
		{"25.5", "5", "15", "4"},
		{"25", "five", "15", "4"},
		{"25", "5", "", "4"},
		{"25", "5", "15", "2.5"},
		{"25", "5", "15", "Inf"},
	}

	for _, in := range inputs {
		d := config.DefaultDurations()

		err := d.ParseDurations(in[0], in[1], in[2], in[3])
		assert.ErrorIs(t, err, config.ErrInvalidSettings, in)
		assert.Equal(t, config.DefaultDurations(), d, in)
	}
}

func TestSingleFieldSetters(t *testing.T) {
	d := config.DefaultDurations()

	assert.False(t, d.SetMinutes(session.Focus, -5))
	assert.True(t, d.SetMinutes(session.ShortBreak, 10))
	assert.False(t, d.SetMinutes(session.Mode("nap"), 10))
	assert.False(t, d.SetCycles(1))
	assert.True(t, d.SetCycles(3))

	assert.Equal(t, 25, d.Minutes[session.Focus])
	assert.Equal(t, 10, d.Minutes[session.ShortBreak])
	assert.Equal(t, 3, d.CyclesBeforeLongBreak)
	assert.NoError(t, d.Validate())
}

func TestValidate(t *testing.T) {
	d := &config.Durations{
		Minutes: map[session.Mode]int{
			session.Focus:      25,
			session.ShortBreak: 5,
		},
		CyclesBeforeLongBreak: 4,
	}

	assert.EqualError(t, d.Validate(), "Long Break duration must be a positive number of minutes")

	d.Minutes[session.LongBreak] = 15
	d.CyclesBeforeLongBreak = 1

	assert.EqualError(t, d.Validate(), "cycles before a long break must be at least 2")
}

func TestOverrides(t *testing.T) {
	d := config.DefaultDurations()

	err := config.Overrides{Focus: 50, Cycles: 2}.Apply(d)
	require.NoError(t, err)

	assert.Equal(t, 50, d.Minutes[session.Focus])
	assert.Equal(t, 5, d.Minutes[session.ShortBreak])
	assert.Equal(t, 2, d.CyclesBeforeLongBreak)

	err = config.Overrides{LongBreak: -1}.Apply(d)
	assert.ErrorIs(t, err, config.ErrInvalidSettings)
	assert.Equal(t, 15, d.Minutes[session.LongBreak])

	assert.NoError(t, config.Overrides{}.Apply(d))
}
