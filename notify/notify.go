// Package notify dispatches desktop notifications when a session completes
package notify

import (
	"log/slog"
	"strings"

	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/pomo/internal/apperr"
	"github.com/ayoisaiah/pomo/internal/session"
)

// Permission mirrors the states of a platform notification permission.
type Permission int

const (
	// PermissionDefault means the user has not been asked yet.
	PermissionDefault Permission = iota
	PermissionGranted
	PermissionDenied
)

func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "default"
	}
}

// ErrPermission is returned when notifications are not permitted. Callers
// are expected to ignore it beyond logging.
var ErrPermission = &apperr.Error{
	Message: "notification permission not granted",
}

// Title is the title of every completion notification.
const Title = "Pomodoro"

// Notifier delivers one-shot notifications.
type Notifier interface {
	Permission() Permission
	RequestPermission() (Permission, error)
	Notify(title, body string) error
}

// Body returns the notification text announcing the upcoming mode.
func Body(next session.Mode) string {
	return "Time for " + strings.ToLower(next.Label()) + "."
}

// Desktop sends notifications through the operating system's notification
// service and optionally plays a chime.
type Desktop struct {
	send       func(title, message, icon string) error
	chime      *Chime
	iconPath   string
	permission Permission
	enabled    bool
}

// NewDesktop returns a desktop notifier. When enabled is false every
// permission request is denied. chime may be nil.
func NewDesktop(enabled bool, iconPath string, chime *Chime) *Desktop {
	return &Desktop{
		send:     beeep.Notify,
		chime:    chime,
		iconPath: iconPath,
		enabled:  enabled,
	}
}

func (d *Desktop) Permission() Permission {
	return d.permission
}

// RequestPermission resolves the permission from the user's configuration.
// Desktop notification services have no consent prompt of their own.
func (d *Desktop) RequestPermission() (Permission, error) {
	if !d.enabled {
		d.permission = PermissionDenied

		return d.permission, ErrPermission
	}

	d.permission = PermissionGranted

	return d.permission, nil
}

func (d *Desktop) Notify(title, body string) error {
	if d.permission != PermissionGranted {
		return ErrPermission
	}

	if d.chime != nil {
		if err := d.chime.Play(); err != nil {
			slog.Debug("unable to play chime", "error", err)
		}
	}

	return d.send(title, body, d.iconPath)
}
