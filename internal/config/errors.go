package config

import "github.com/ayoisaiah/avail/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errPrompt = &apperr.Error{
		Message: "first-run prompt failed",
	}

	errInvalidNumDays = &apperr.Error{
		Message: "number of days must be between %d and %d, got %d",
	}

	errInvalidHourRange = &apperr.Error{
		Message: "hour range %d-%d must satisfy 0 <= min_time <= max_time <= 23",
	}

	errEmptyDateFormat = &apperr.Error{
		Message: "date format cannot be empty",
	}

	errInvalidStart = &apperr.Error{
		Message: "invalid start date",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidCellWidth = &apperr.Error{
		Message: "cell width must be between %d and %d, got %d",
	}

	errInvalidMargin = &apperr.Error{
		Message: "margin must be between 0 and %d, got %d",
	}

	errInvalidRepeat = &apperr.Error{
		Message: "repeat weeks must be between 0 and %d, got %d",
	}
)
