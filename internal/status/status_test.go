package status_test

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/status"
	"github.com/ayoisaiah/pomo/internal/testutil"
)

var updated = time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

func TestWriteRead(t *testing.T) {
	path := testutil.TempFile(t, "status.json")

	want := &status.Status{
		UpdatedAt: updated,
		Mode:      session.ShortBreak,
		CycleText: "Cycle 2 of 4",
		Remaining: 245,
		Running:   true,
	}

	require.NoError(t, status.Write(path, want))

	got, err := status.Read(path)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReadMissing(t *testing.T) {
	got, err := status.Read(testutil.TempFile(t, "status.json"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReadMalformed(t *testing.T) {
	path := testutil.TempFile(t, "status.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := status.Read(path)
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	path := testutil.TempFile(t, "status.json")
	require.NoError(t, status.Write(path, &status.Status{}))

	require.NoError(t, status.Remove(path))
	assert.NoFileExists(t, path)

	assert.NoError(t, status.Remove(path))
}

func TestLine(t *testing.T) {
	cases := []struct {
		name string
		s    status.Status
		now  time.Time
		want string
	}{
		{
			name: "running",
			s: status.Status{
				UpdatedAt: updated,
				Mode:      session.Focus,
				CycleText: "Cycle 2 of 4",
				Remaining: 760,
				Running:   true,
			},
			now:  updated.Add(6 * time.Second),
			want: "[Focus Session]: 12:34 (Cycle 2 of 4)",
		},
		{
			name: "paused",
			s: status.Status{
				UpdatedAt: updated,
				Mode:      session.LongBreak,
				CycleText: "Cycle 1 of 4",
				Remaining: 900,
			},
			now:  updated.Add(time.Hour),
			want: "[Long Break]: 15:00 (Cycle 1 of 4) [paused]",
		},
		{
			name: "stale",
			s: status.Status{
				UpdatedAt: updated,
				Mode:      session.ShortBreak,
				CycleText: "Cycle 3 of 4",
				Remaining: 10,
				Running:   true,
			},
			now:  updated.Add(time.Minute),
			want: "[Short Break]: 00:00 (Cycle 3 of 4)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.s.Line(tc.now))
		})
	}
}
