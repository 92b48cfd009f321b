// Package tui is the terminal interface of pomo
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/jonboulle/clockwork"

	"github.com/ayoisaiah/pomo/controller"
	"github.com/ayoisaiah/pomo/internal/logger"
	"github.com/ayoisaiah/pomo/internal/session"
	"github.com/ayoisaiah/pomo/internal/status"
	"github.com/ayoisaiah/pomo/timer"
)

// TickMsg carries a scheduler tick into the bubbletea event loop.
type TickMsg timer.Tick

// TickSource reports whether a tick belongs to the active countdown.
// *timer.Ticker implements it.
type TickSource interface {
	Current(tick timer.Tick) bool
}

// Options configures a Model.
type Options struct {
	Clock clockwork.Clock
	// Status is shown until the first operation replaces it
	Status controller.Status
	// StatusPath is the status file kept up to date for `pomo status`. An
	// empty path disables it.
	StatusPath     string
	DarkTheme      bool
	TwentyFourHour bool
}

// Model is the bubbletea model of the timer screen.
type Model struct {
	ctrl     *controller.Controller
	ticks    TickSource
	clock    clockwork.Clock
	form     *huh.Form
	values   *[4]string
	style    Style
	status   controller.Status
	help     help.Model
	progress progress.Model
	keys     keyMap
	opts     Options
	quitting bool
}

// New returns the timer screen for ctrl. ctrl must already be initialised.
func New(ctrl *controller.Controller, ticks TickSource, opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}

	style := NewStyle(opts.DarkTheme)

	bar := progress.New(
		progress.WithSolidFill(style.Fill[session.Focus]),
		progress.WithoutPercentage(),
	)

	return &Model{
		ctrl:     ctrl,
		ticks:    ticks,
		clock:    opts.Clock,
		style:    style,
		status:   opts.Status,
		help:     help.New(),
		progress: bar,
		keys:     defaultKeymap,
		opts:     opts,
	}
}

func (m *Model) Init() tea.Cmd {
	m.writeStatus()

	return nil
}

// Status returns the last status reported by the controller.
func (m *Model) Status() controller.Status {
	return m.status
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(TickMsg); ok {
		return m.handleTick(tick)
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("tui message", "msg", logger.Dump(msg))
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(msg.Width-padding*2-4, maxWidth)
		m.help.Width = msg.Width

		return m, nil
	}

	return m, nil
}

func (m *Model) handleTick(tick TickMsg) (tea.Model, tea.Cmd) {
	if !m.ticks.Current(timer.Tick(tick)) {
		return m, nil
	}

	m.apply(m.ctrl.Tick())

	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, m.quit()

	case key.Matches(msg, m.keys.togglePlay):
		m.apply(m.ctrl.Toggle())

	case key.Matches(msg, m.keys.reset):
		m.apply(m.ctrl.Reset())

	case key.Matches(msg, m.keys.skip):
		m.apply(m.ctrl.Skip())

	case key.Matches(msg, m.keys.focus):
		m.apply(m.ctrl.SelectMode(session.Focus))

	case key.Matches(msg, m.keys.shortBreak):
		m.apply(m.ctrl.SelectMode(session.ShortBreak))

	case key.Matches(msg, m.keys.longBreak):
		m.apply(m.ctrl.SelectMode(session.LongBreak))

	case key.Matches(msg, m.keys.settings):
		return m, m.openSettings()

	case key.Matches(msg, m.keys.help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// apply records the outcome of a controller operation and publishes the
// new state. Empty statuses keep the previous message on screen.
func (m *Model) apply(st controller.Status) {
	if st.Message != "" {
		m.status = st
	}

	m.writeStatus()
}

func (m *Model) writeStatus() {
	if m.opts.StatusPath == "" {
		return
	}

	snap := m.ctrl.Snapshot()

	err := status.Write(m.opts.StatusPath, &status.Status{
		UpdatedAt: m.clock.Now(),
		Mode:      snap.Mode,
		CycleText: snap.CycleText,
		Remaining: snap.Remaining,
		Running:   snap.Running,
	})
	if err != nil {
		slog.Debug("unable to write status file", "error", err)
	}
}

func (m *Model) quit() tea.Cmd {
	m.ctrl.Pause()
	m.quitting = true

	if m.opts.StatusPath != "" {
		if err := status.Remove(m.opts.StatusPath); err != nil {
			slog.Debug("unable to remove status file", "error", err)
		}
	}

	return tea.Batch(tea.ClearScreen, tea.Quit)
}

// openSettings shows the settings form prefilled with the current values.
// The countdown keeps running underneath.
func (m *Model) openSettings() tea.Cmd {
	values := m.ctrl.Snapshot().Settings
	m.values = &values

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Focus (minutes)").
				Value(&m.values[0]),
			huh.NewInput().
				Title("Short break (minutes)").
				Value(&m.values[1]),
			huh.NewInput().
				Title("Long break (minutes)").
				Value(&m.values[2]),
			huh.NewInput().
				Title("Focus sessions before a long break").
				Value(&m.values[3]),
		),
	).WithShowHelp(false)

	return m.form.Init()
}

func (m *Model) closeSettings() {
	m.form = nil
	m.values = nil
}

func (m *Model) submitSettings() {
	v := m.values
	m.closeSettings()

	m.apply(m.ctrl.SaveSettings(v[0], v[1], v[2], v[3]))
}

func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, m.quit()
		case key.Matches(keyMsg, m.keys.cancel):
			m.closeSettings()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitSettings()
		return m, nil
	case huh.StateAborted:
		m.closeSettings()
		return m, nil
	}

	return m, cmd
}

// endTime returns when the current session will end if left running.
func (m *Model) endTime(remaining int) time.Time {
	return m.clock.Now().Add(time.Duration(remaining) * time.Second)
}
