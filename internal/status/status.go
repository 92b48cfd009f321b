// Package status shares the state of a running pomo instance with the
// `pomo status` command through a small JSON file
package status

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/goccy/go-json"

	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/timeutil"
)

// Status is the content of the status file.
type Status struct {
	UpdatedAt time.Time    `json:"updated_at"`
	Mode      session.Mode `json:"mode"`
	CycleText string       `json:"cycle"`
	Remaining int          `json:"remaining"`
	Running   bool         `json:"running"`
}

// Write replaces the status file at path with s.
func Write(path string, s *Status) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	defer func() {
		ferr := f.Close()
		if ferr != nil && err == nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)

	if _, err = w.Write(b); err != nil {
		return err
	}

	return w.Flush()
}

// Read loads the status file at path. A missing file yields nil and no
// error.
func Read(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

// Remove deletes the status file. A missing file is not an error.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}

// RemainingAt returns the countdown as it would read at now. A running
// countdown keeps decreasing after the file was written.
func (s *Status) RemainingAt(now time.Time) int {
	if !s.Running {
		return s.Remaining
	}

	elapsed := int(now.Sub(s.UpdatedAt) / time.Second)

	return max(s.Remaining-max(elapsed, 0), 0)
}

// Line renders the status as printed by `pomo status`, for example
// "[Focus Session]: 12:34 (Cycle 2 of 4)".
func (s *Status) Line(now time.Time) string {
	line := fmt.Sprintf(
		"[%s]: %s (%s)",
		s.Mode.Label(),
		timeutil.FormatClock(s.RemainingAt(now)),
		s.CycleText,
	)

	if !s.Running {
		line += " [paused]"
	}

	return line
}
