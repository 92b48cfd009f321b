package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/store"
)

func newClient(t *testing.T) (*store.Client, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "pomo.db")

	c, err := store.NewClient(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c, dbPath
}

func TestClientGetPut(t *testing.T) {
	c, _ := newClient(t)

	v, err := c.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, c.Put("key", []byte("value")))

	v, err = c.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), v)
}

func TestClientSettingsSurviveReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pomo.db")

	c, err := store.NewClient(dbPath)
	require.NoError(t, err)

	want := config.DefaultDurations()
	require.NoError(t, want.SetDurations(45, 15, 30, 3))
	require.NoError(t, store.SaveSettings(c, want))
	require.NoError(t, c.Close())

	c, err = store.NewClient(dbPath)
	require.NoError(t, err)

	defer c.Close()

	got := config.DefaultDurations()

	_, err = store.LoadSettings(c, got)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func history(base time.Time) []*models.Record {
	return []*models.Record{
		{
			EndedAt:        base,
			Mode:           session.Focus,
			Next:           session.ShortBreak,
			ElapsedSeconds: 1500,
			FocusCompleted: 1,
		},
		{
			EndedAt:        base.Add(5 * time.Minute),
			Mode:           session.ShortBreak,
			Next:           session.Focus,
			ElapsedSeconds: 300,
			FocusCompleted: 1,
		},
		{
			EndedAt:        base.Add(10 * time.Minute),
			Mode:           session.Focus,
			Next:           session.ShortBreak,
			ElapsedSeconds: 120,
			FocusCompleted: 2,
			Skipped:        true,
		},
	}
}

func TestRecords(t *testing.T) {
	base := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	dbs := map[string]store.DB{
		"bolt":   func() store.DB { c, _ := newClient(t); return c }(),
		"memory": store.NewMemory(),
	}

	for name, db := range dbs {
		t.Run(name, func(t *testing.T) {
			recs := history(base)

			// insert out of order
			for _, i := range []int{2, 0, 1} {
				require.NoError(t, db.AddRecord(recs[i]))
			}

			all, err := db.Records(base, base.Add(time.Hour))
			require.NoError(t, err)
			require.Len(t, all, 3)

			for i := range recs {
				assert.True(t, recs[i].EndedAt.Equal(all[i].EndedAt))
				assert.Equal(t, recs[i].Mode, all[i].Mode)
				assert.Equal(t, recs[i].Skipped, all[i].Skipped)
				assert.Equal(t, recs[i].ElapsedSeconds, all[i].ElapsedSeconds)
			}

			some, err := db.Records(base.Add(time.Minute), base.Add(5*time.Minute))
			require.NoError(t, err)
			require.Len(t, some, 1)
			assert.Equal(t, session.ShortBreak, some[0].Mode)

			none, err := db.Records(base.Add(time.Hour), base.Add(2*time.Hour))
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestInUse(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.db")

	inUse, err := store.InUse(missing)
	require.NoError(t, err)
	assert.False(t, inUse)

	c, dbPath := newClient(t)

	inUse, err = store.InUse(dbPath)
	require.NoError(t, err)
	assert.True(t, inUse)

	require.NoError(t, c.Close())

	inUse, err = store.InUse(dbPath)
	require.NoError(t, err)
	assert.False(t, inUse)
}

func TestSecondClientIsRejected(t *testing.T) {
	_, dbPath := newClient(t)

	_, err := store.NewClient(dbPath)
	assert.ErrorContains(t, err, "already running")
}
