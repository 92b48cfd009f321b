package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

func (m *Model) timerView() string {
	snap := m.ctrl.Snapshot()

	var s strings.Builder

	s.WriteString(m.style.Mode[snap.Mode].Render(snap.Label))

	if snap.Running {
		timeFormat := "03:04 PM"
		if m.opts.TwentyFourHour {
			timeFormat = "15:04"
		}

		s.WriteString(
			m.style.Hint.Render("until " + m.endTime(snap.Remaining).Format(timeFormat)),
		)
	} else {
		s.WriteString(m.style.Secondary.Render("[Paused]"))
	}

	s.WriteString("\n")
	s.WriteString(m.style.Hint.Render(snap.CycleText))

	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(snap.Clock))

	m.progress.FullColor = m.style.Fill[snap.Mode]

	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(snap.Elapsed))

	return s.String()
}

func (m *Model) statusView() string {
	if m.status.Message == "" {
		return ""
	}

	if m.status.IsError() {
		return "\n\n" + m.style.Error.Render(m.status.Message)
	}

	return "\n\n" + m.style.Info.Render(m.status.Message)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	view := m.timerView() + m.statusView()

	if m.form != nil {
		view += "\n\n" + m.form.View()
		view += "\n\n" + m.help.ShortHelpView(
			[]key.Binding{m.keys.cancel},
		)
	} else {
		view += "\n\n" + m.help.View(m.keys)
	}

	return m.style.Base.Render(view)
}
