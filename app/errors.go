package app

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errStorageUnavailable = &apperr.Error{
		Message: "storage is unavailable",
	}

	errListen = &apperr.Error{
		Message: "unable to serve on %s",
	}
)
