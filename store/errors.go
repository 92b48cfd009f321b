package store

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	// ErrLoadSettings is returned when stored settings cannot be read or
	// decoded. The configuration being loaded into is left untouched.
	ErrLoadSettings = &apperr.Error{
		Message: "could not load saved settings",
	}

	// ErrSaveSettings is returned when settings cannot be written.
	ErrSaveSettings = &apperr.Error{
		Message: "could not save settings",
	}

	errPomoRunning = &apperr.Error{
		Message: "is pomo already running? Only one instance can be active at a time",
	}

	errNotAnObject = &apperr.Error{
		Message: "stored settings are not a JSON object",
	}

	errTrailingData = &apperr.Error{
		Message: "unexpected data after stored settings",
	}
)
