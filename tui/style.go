package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/pomo/internal/session"
)

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles of the timer view.
type Style struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Info      lipgloss.Style
	Error     lipgloss.Style
	Mode      map[session.Mode]lipgloss.Style
	// Fill is the progress bar colour of each mode
	Fill map[session.Mode]string
}

type palette struct {
	text, muted, hint, info, err string
	focus, shortBreak, longBreak string
}

var (
	lightPalette = palette{
		text:       "#1f1f1f",
		muted:      "#5c5c5c",
		hint:       "#8a8a8a",
		info:       "#2a6f97",
		err:        "#c0392b",
		focus:      "#c0392b",
		shortBreak: "#2e8b57",
		longBreak:  "#2a6f97",
	}

	darkPalette = palette{
		text:       "#f5f5f5",
		muted:      "#bdbdbd",
		hint:       "#8a8a8a",
		info:       "#7fc8f8",
		err:        "#ff6b6b",
		focus:      "#ff6b6b",
		shortBreak: "#7bd88f",
		longBreak:  "#7fc8f8",
	}
)

// NewStyle returns the styles for a light or dark terminal background.
func NewStyle(dark bool) Style {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	badge := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#ffffff"))

	return Style{
		Base: lipgloss.NewStyle().Padding(1, padding),
		Main: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.text)),
		Secondary: lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.hint)),
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.info)),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.err)),
		Mode: map[session.Mode]lipgloss.Style{
			session.Focus:      badge.Background(lipgloss.Color(p.focus)),
			session.ShortBreak: badge.Background(lipgloss.Color(p.shortBreak)),
			session.LongBreak:  badge.Background(lipgloss.Color(p.longBreak)),
		},
		Fill: map[session.Mode]string{
			session.Focus:      p.focus,
			session.ShortBreak: p.shortBreak,
			session.LongBreak:  p.longBreak,
		},
	}
}
