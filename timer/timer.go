// Package timer implements the pomodoro session state machine and the
// scheduler that drives its countdown
package timer

import (
	"fmt"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/session"
)

// State is a snapshot of the session state machine.
type State struct {
	Mode session.Mode `json:"mode"`
	// Remaining is the countdown in whole seconds
	Remaining      int  `json:"remaining"`
	Running        bool `json:"running"`
	FocusCompleted int  `json:"focus_completed"`
}

// Timer cycles through focus and break sessions. It is not safe for
// concurrent use: every method must be called from the same goroutine as
// the scheduler's tick consumer.
type Timer struct {
	durations *config.Durations
	sched     Scheduler
	state     State
}

// New returns a paused timer in focus mode with a full focus countdown.
// Durations are read on every mode switch or reset, so changes made to d
// take effect the next time the countdown is refilled. Durations that fail
// validation are replaced with the defaults.
func New(d *config.Durations, sched Scheduler) *Timer {
	if d == nil {
		d = config.DefaultDurations()
	}

	if err := d.Validate(); err != nil {
		*d = *config.DefaultDurations()
	}

	t := &Timer{
		durations: d,
		sched:     sched,
		state: State{
			Mode: session.Focus,
		},
	}

	t.state.Remaining = d.Seconds(session.Focus)

	return t
}

// State returns a copy of the current state.
func (t *Timer) State() State {
	return t.state
}

// Start activates the countdown. It reports false if the timer was already
// running.
func (t *Timer) Start() bool {
	if t.state.Running {
		return false
	}

	t.state.Running = true
	t.sched.Start()

	return true
}

// Pause stops the countdown. Pausing a paused timer has no effect.
func (t *Timer) Pause() {
	t.state.Running = false
	t.sched.Stop()
}

// Reset pauses the timer and refills the countdown for the current mode.
// The mode and the completed focus counter are left alone.
func (t *Timer) Reset() {
	t.Pause()
	t.state.Remaining = t.durations.Seconds(t.state.Mode)
}

// SetMode switches to mode and, if resetTimer is set, refills the countdown
// with the new mode's duration. The running status is not changed: a
// running timer keeps counting down in the new mode.
func (t *Timer) SetMode(mode session.Mode, resetTimer bool) {
	t.state.Mode = mode

	if resetTimer {
		t.state.Remaining = t.durations.Seconds(mode)
	}
}

// Skip ends the current session early and moves to the next mode as if it
// had completed. Leaving a focus session counts towards the cycle.
func (t *Timer) Skip() session.Mode {
	t.Pause()

	next := t.nextMode()
	t.SetMode(next, true)

	return next
}

// Tick advances the countdown by one second. When the countdown reaches
// zero the timer pauses, moves to the next mode and reports true along
// with that mode.
func (t *Timer) Tick() (session.Mode, bool) {
	if t.state.Remaining > 0 {
		t.state.Remaining--
	}

	if t.state.Remaining > 0 {
		return t.state.Mode, false
	}

	t.Pause()

	next := t.nextMode()
	t.SetMode(next, true)

	return next, true
}

// nextMode applies the transition rule. It is the only place where
// completed focus sessions are counted, so it must run exactly once per
// completion or skip.
func (t *Timer) nextMode() session.Mode {
	if t.state.Mode != session.Focus {
		return session.Focus
	}

	t.state.FocusCompleted++

	if t.state.FocusCompleted%t.durations.CyclesBeforeLongBreak == 0 {
		return session.LongBreak
	}

	return session.ShortBreak
}

// CycleProgress returns the 1-based position of the current focus session
// within its cycle.
func (t *Timer) CycleProgress() int {
	return t.state.FocusCompleted%t.durations.CyclesBeforeLongBreak + 1
}

// CycleText describes the cycle progress, e.g. "Cycle 2 of 4".
func (t *Timer) CycleText() string {
	return fmt.Sprintf(
		"Cycle %d of %d",
		t.CycleProgress(),
		t.durations.CyclesBeforeLongBreak,
	)
}

// Elapsed returns the fraction of the current session that has elapsed.
func (t *Timer) Elapsed() float64 {
	total := t.durations.Seconds(t.state.Mode)
	if total <= 0 {
		return 1
	}

	f := float64(total-t.state.Remaining) / float64(total)

	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}

	return f
}
