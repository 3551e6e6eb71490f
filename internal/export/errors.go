package export

import "github.com/ayoisaiah/avail/internal/apperr"

const noSlotsMsg = "No time slots selected"

var (
	errUnknownFormat = &apperr.Error{
		Message: "unknown output format %q (expected text, json, yaml or ics)",
		Cause:   apperr.ErrInvalidArgument,
	}

	errInvalidRepeat = &apperr.Error{
		Message: "cannot repeat a selection for %d weeks (maximum is %d)",
		Cause:   apperr.ErrInvalidArgument,
	}

	errReadInput = &apperr.Error{
		Message: "reading selection failed",
	}
)
