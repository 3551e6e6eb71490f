package grid

import "github.com/ayoisaiah/avail/internal/apperr"

var (
	errEmptyGrid = &apperr.Error{
		Message: "grid has no time slots",
		Cause:   apperr.ErrInvalidArgument,
	}

	errRaggedGrid = &apperr.Error{
		Message: "day %d has %d slots, expected %d",
		Cause:   apperr.ErrInvalidArgument,
	}

	errUnorderedGrid = &apperr.Error{
		Message: "time slot at day %d, hour %d is not after the previous slot",
		Cause:   apperr.ErrInvalidArgument,
	}

	errInvalidDayCount = &apperr.Error{
		Message: "number of days must be at least 1, got %d",
		Cause:   apperr.ErrInvalidArgument,
	}

	errInvalidHourRange = &apperr.Error{
		Message: "hour range %d-%d must satisfy 0 <= min <= max <= 23",
		Cause:   apperr.ErrInvalidArgument,
	}
)
