package app

import "github.com/ayoisaiah/avail/internal/apperr"

var (
	errReadInput = &apperr.Error{
		Message: "unable to read the input selection",
	}

	errWriteOutput = &apperr.Error{
		Message: "unable to write the selection",
	}

	errInvalidEndpoint = &apperr.Error{
		Message: "invalid drag endpoint",
	}

	errParseCmd = &apperr.Error{
		Message: "unable to parse the settings.cmd option",
	}

	errRunCmd = &apperr.Error{
		Message: "selection command failed",
	}
)
