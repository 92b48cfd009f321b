package config

import "github.com/ayoisaiah/pomo/internal/apperr"

var (
	// ErrInvalidSettings is returned when submitted settings are rejected.
	ErrInvalidSettings = &apperr.Error{
		Message: "please enter valid positive numbers (cycles must be at least 2)",
	}

	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be a positive number of minutes",
	}

	errInvalidCycles = &apperr.Error{
		Message: "cycles before a long break must be at least %d",
	}

	errInitPaths = &apperr.Error{
		Message: "unable to resolve application paths",
	}
)
