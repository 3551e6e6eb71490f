package selection

import "github.com/ayoisaiah/avail/internal/apperr"

var (
	errUnknownScheme = &apperr.Error{
		Message: "unknown selection scheme %q (expected linear or square)",
		Cause:   apperr.ErrInvalidArgument,
	}

	errNotInGrid = &apperr.Error{
		Message: "%s time %s is not a slot in the grid",
		Cause:   apperr.ErrInvalidArgument,
	}

	errUnknownMode = &apperr.Error{
		Message: "unknown merge mode %d",
		Cause:   apperr.ErrInvalidArgument,
	}
)
