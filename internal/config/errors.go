package config

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "user prompt failed",
	}

	errInvalidDriver = &apperr.Error{
		Message: "unknown storage driver %q: use one of %v",
	}

	errEmptyNamespace = &apperr.Error{
		Message: "storage namespace cannot be empty",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "invalid %s sound file format: %s (must be mp3, ogg, flac, or wav)",
	}

	errInvalidRingRadius = &apperr.Error{
		Message: "ring radius must be greater than zero, got %v",
	}

	errInvalidPort = &apperr.Error{
		Message: "offline port must be between 1 and 65535, got %d",
	}

	errEmptyCacheName = &apperr.Error{
		Message: "offline cache name cannot be empty",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "invalid log level %q",
	}
)
