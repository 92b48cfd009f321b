// Package controller binds the session state machine to settings
// persistence, notifications and history. Every operation returns a Status
// describing the outcome for display.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/pomo/internal/config"
	"github.com/ayoisaiah/pomo/internal/logger"
	"github.com/ayoisaiah/pomo/internal/models"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/timeutil"
	"github.com/ayoisaiah/pomo/notify"
	"github.com/ayoisaiah/pomo/store"
	"github.com/ayoisaiah/pomo/timer"
)

const (
	msgRunning        = "Timer running."
	msgPaused         = "Timer paused."
	msgReset          = "Timer reset."
	msgSettingsSaved  = "Settings saved."
	msgInvalid        = "Please enter valid positive numbers (cycles must be at least 2)."
	msgNotSaved       = "Settings applied but could not be saved."
	msgLoadFailed     = "Could not load saved settings."
	msgUnknownMode    = "Unknown mode."
	msgCompleteFormat = "Session complete. Switched to %s."
	msgSkippedFormat  = "Skipped. Switched to %s."
	msgSwitchedFormat = "Switched to %s."
)

// Status is the outcome of a controller operation. An empty Message means
// there is nothing new to show.
type Status struct {
	Err     error
	Message string
}

// IsError reports whether the status describes a failure.
func (s Status) IsError() bool {
	return s.Err != nil
}

// Runner starts an external command without waiting for it.
type Runner func(name string, args ...string) error

// Options configures a Controller. Durations, Scheduler and DB are required.
type Options struct {
	Durations *config.Durations
	Scheduler timer.Scheduler
	DB        store.DB
	// Notifier defaults to a notifier that is always denied
	Notifier notify.Notifier
	// Clock stamps history records and defaults to the real clock
	Clock clockwork.Clock
	// Runner starts SessionCmd and defaults to exec
	Runner     Runner
	Overrides  config.Overrides
	SessionCmd string
}

// Controller owns the single Durations and Timer pair of a pomo instance.
// Like Timer it must only be used from one goroutine.
type Controller struct {
	durations  *config.Durations
	timer      *timer.Timer
	db         store.DB
	notifier   notify.Notifier
	clock      clockwork.Clock
	runner     Runner
	overrides  config.Overrides
	sessionCmd string
}

// New returns a controller with a paused focus session.
func New(opts Options) *Controller {
	c := &Controller{
		durations:  opts.Durations,
		timer:      timer.New(opts.Durations, opts.Scheduler),
		db:         opts.DB,
		notifier:   opts.Notifier,
		clock:      opts.Clock,
		runner:     opts.Runner,
		overrides:  opts.Overrides,
		sessionCmd: opts.SessionCmd,
	}

	if c.notifier == nil {
		c.notifier = notify.NewDesktop(false, "", nil)
	}

	if c.clock == nil {
		c.clock = clockwork.NewRealClock()
	}

	if c.runner == nil {
		c.runner = startCommand
	}

	return c
}

// Init loads the saved settings, applies the run's overrides on top of them
// and refills the countdown. Notification permission is requested if it
// has not been decided yet.
func (c *Controller) Init() Status {
	var st Status

	rejected, err := store.LoadSettings(c.db, c.durations)
	if err != nil {
		slog.Error("loading settings failed", "error", err)

		st = Status{Message: msgLoadFailed, Err: err}
	}

	if len(rejected) > 0 {
		slog.Warn("ignored invalid saved settings", "fields", rejected)
	}

	if err := c.overrides.Apply(c.durations); err != nil {
		slog.Warn("ignored duration overrides", "error", err)
	}

	c.timer.Reset()

	c.requestPermission()

	slog.Debug("controller initialised", "durations", logger.Dump(c.durations))

	return st
}

func (c *Controller) requestPermission() {
	if c.notifier.Permission() != notify.PermissionDefault {
		return
	}

	perm, err := c.notifier.RequestPermission()
	if err != nil {
		slog.Debug("notification permission not granted", "error", err)
		return
	}

	slog.Debug("notification permission", "permission", perm.String())
}

// Toggle pauses a running timer and starts a paused one.
func (c *Controller) Toggle() Status {
	if c.timer.State().Running {
		return c.Pause()
	}

	return c.Start()
}

// Start runs the countdown. Starting a running timer is a no-op.
func (c *Controller) Start() Status {
	if !c.timer.Start() {
		return Status{}
	}

	return Status{Message: msgRunning}
}

func (c *Controller) Pause() Status {
	c.timer.Pause()

	return Status{Message: msgPaused}
}

// Reset refills the current session without changing the mode or the
// number of completed focus sessions.
func (c *Controller) Reset() Status {
	c.timer.Reset()

	return Status{Message: msgReset}
}

// Skip ends the current session early. Skipping is recorded in the history
// but does not notify or run the session command.
func (c *Controller) Skip() Status {
	ended := c.timer.State()
	next := c.timer.Skip()

	c.record(ended, next, true)

	return Status{Message: fmt.Sprintf(msgSkippedFormat, next.Label())}
}

// SelectMode switches to mode with a full countdown. A running timer keeps
// running.
func (c *Controller) SelectMode(mode session.Mode) Status {
	if !mode.Valid() {
		return Status{
			Message: msgUnknownMode,
			Err:     fmt.Errorf("unknown mode %q", mode),
		}
	}

	c.timer.SetMode(mode, true)

	return Status{Message: fmt.Sprintf(msgSwitchedFormat, mode.Label())}
}

// Tick advances the countdown by one second. The returned status is empty
// unless the session completed.
func (c *Controller) Tick() Status {
	ended := c.timer.State()

	next, done := c.timer.Tick()
	if !done {
		return Status{}
	}

	c.record(ended, next, false)
	c.notify(next)
	c.runSessionCmd()

	return Status{Message: fmt.Sprintf(msgCompleteFormat, next.Label())}
}

// SaveSettings validates the submitted form values, applies and persists
// them, then resets the timer. Invalid input changes nothing.
func (c *Controller) SaveSettings(
	focus, shortBreak, longBreak, cycles string,
) Status {
	err := c.durations.ParseDurations(focus, shortBreak, longBreak, cycles)
	if err != nil {
		return Status{Message: msgInvalid, Err: err}
	}

	saveErr := store.SaveSettings(c.db, c.durations)

	c.timer.Reset()

	if saveErr != nil {
		slog.Error("saving settings failed", "error", saveErr)

		return Status{Message: msgNotSaved, Err: saveErr}
	}

	slog.Debug("settings saved", "durations", logger.Dump(c.durations))

	return Status{Message: msgSettingsSaved}
}

func (c *Controller) notify(next session.Mode) {
	if c.notifier.Permission() != notify.PermissionGranted {
		return
	}

	err := c.notifier.Notify(notify.Title, notify.Body(next))
	if err != nil {
		slog.Debug("notification failed", "error", err)
	}
}

func (c *Controller) record(ended timer.State, next session.Mode, skipped bool) {
	elapsed := c.durations.Seconds(ended.Mode) - ended.Remaining
	if !skipped {
		elapsed = c.durations.Seconds(ended.Mode)
	}

	r := &models.Record{
		EndedAt:        c.clock.Now(),
		Mode:           ended.Mode,
		Next:           next,
		ElapsedSeconds: max(elapsed, 0),
		FocusCompleted: c.timer.State().FocusCompleted,
		Skipped:        skipped,
	}

	if err := c.db.AddRecord(r); err != nil {
		slog.Error("recording session failed", "error", err)
	}
}

func (c *Controller) runSessionCmd() {
	if c.sessionCmd == "" {
		return
	}

	args, err := shellquote.Split(c.sessionCmd)
	if err != nil {
		slog.Error("invalid session command", "cmd", c.sessionCmd, "error", err)
		return
	}

	if len(args) == 0 {
		return
	}

	if err := c.runner(args[0], args[1:]...); err != nil {
		slog.Error("session command failed", "cmd", c.sessionCmd, "error", err)
	}
}

func startCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				slog.Warn("session command exited", "code", exitErr.ExitCode())
				return
			}

			slog.Error("session command failed", "error", err)
		}
	}()

	return nil
}

// State returns the current session state.
func (c *Controller) State() timer.State {
	return c.timer.State()
}

// Durations returns the configuration in use.
func (c *Controller) Durations() *config.Durations {
	return c.durations
}

// Snapshot is a render-ready view of the controller.
type Snapshot struct {
	Mode      session.Mode
	Label     string
	Clock     string
	CycleText string
	// Settings holds the form values in the order focus, short break, long
	// break, cycles
	Settings       [4]string
	Elapsed        float64
	Remaining      int
	FocusCompleted int
	Running        bool
}

func (c *Controller) Snapshot() Snapshot {
	st := c.timer.State()
	d := c.durations

	return Snapshot{
		Mode:           st.Mode,
		Label:          st.Mode.Label(),
		Clock:          timeutil.FormatClock(st.Remaining),
		CycleText:      c.timer.CycleText(),
		Elapsed:        c.timer.Elapsed(),
		Remaining:      st.Remaining,
		FocusCompleted: st.FocusCompleted,
		Running:        st.Running,
		Settings: [4]string{
			strconv.Itoa(d.Minutes[session.Focus]),
			strconv.Itoa(d.Minutes[session.ShortBreak]),
			strconv.Itoa(d.Minutes[session.LongBreak]),
			strconv.Itoa(d.CyclesBeforeLongBreak),
		},
	}
}
