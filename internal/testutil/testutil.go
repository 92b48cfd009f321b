// Package testutil holds fixtures shared by the pomo test suites
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/ayoisaiah/pomo/internal/config"
)

// FailingKV is a key-value store whose every operation fails with Err.
type FailingKV struct {
	Err error
}

func (f FailingKV) Get(string) ([]byte, error) {
	return nil, f.Err
}

func (f FailingKV) Put(string, []byte) error {
	return f.Err
}

// Durations returns a configuration with the given values and fails the
// test if they are not valid.
func Durations(
	t testing.TB,
	focus, shortBreak, longBreak, cycles int,
) *config.Durations {
	t.Helper()

	d := config.DefaultDurations()

	if err := d.SetDurations(focus, shortBreak, longBreak, cycles); err != nil {
		t.Fatalf("invalid durations %d/%d/%d/%d: %v", focus, shortBreak, longBreak, cycles, err)
	}

	return d
}

// TempFile returns the path of a file called name in a directory that is
// removed when the test ends. The file is not created.
func TempFile(t testing.TB, name string) string {
	t.Helper()

	return filepath.Join(t.TempDir(), name)
}
