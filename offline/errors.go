package offline

import "github.com/ayoisaiah/focusflow/internal/apperr"

var (
	errOpenCache = &apperr.Error{
		Message: "unable to open offline cache at %s",
	}

	errCacheLocked = &apperr.Error{
		Message: "offline cache is in use by another focusflow process",
	}

	errPrecache = &apperr.Error{
		Message: "unable to precache %s",
	}

	errOriginStatus = &apperr.Error{
		Message: "origin responded with status %d",
	}

	errNotCached = &apperr.Error{
		Message: "%s is not cached and the origin is unreachable",
	}

	errInvalidOrigin = &apperr.Error{
		Message: "invalid origin URL %q",
	}
)
