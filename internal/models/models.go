// Package models defines the records persisted by the store
package models

import (
	"time"

	"github.com/ayoisaiah/pomo/internal/session"
)

// Record describes a session that ended, either because its countdown ran
// out or because the user skipped it.
type Record struct {
	EndedAt        time.Time    `json:"ended_at"`
	Mode           session.Mode `json:"mode"`
	Next           session.Mode `json:"next"`
	ElapsedSeconds int          `json:"elapsed_seconds"`
	FocusCompleted int          `json:"focus_completed"`
	Skipped        bool         `json:"skipped"`
}
