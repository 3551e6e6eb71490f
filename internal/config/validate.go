package config

import (
	"regexp"
	"strings"

	"github.com/ayoisaiah/avail/internal/export"
	"github.com/ayoisaiah/avail/internal/selection"
	"github.com/ayoisaiah/avail/internal/timeutil"
)

var (
	minNumDays = 1
	maxNumDays = 31

	minCellWidth = 3
	maxCellWidth = 12

	maxMargin = 4

	maxRepeatWeeks = 52

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its fields,
// and derives the runtime values from them.
func (c *Config) Validate() error {
	if err := c.validateGrid(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	return c.validateOutput()
}

func (c *Config) validateGrid() error {
	if c.Grid.NumDays < minNumDays || c.Grid.NumDays > maxNumDays {
		return errInvalidNumDays.Fmt(minNumDays, maxNumDays, c.Grid.NumDays)
	}

	if c.Grid.MinTime < 0 || c.Grid.MaxTime >= timeutil.HoursInADay ||
		c.Grid.MinTime > c.Grid.MaxTime {
		return errInvalidHourRange.Fmt(c.Grid.MinTime, c.Grid.MaxTime)
	}

	if strings.TrimSpace(c.Grid.DateFormat) == "" {
		return errEmptyDateFormat
	}

	scheme, err := selection.ParseScheme(c.Grid.Scheme)
	if err != nil {
		return err
	}

	start, err := timeutil.ParseDate(c.Grid.Start, c.Runtime.Now)
	if err != nil {
		return errInvalidStart.Wrap(err)
	}

	c.Runtime.Scheme = scheme
	c.Runtime.StartDate = timeutil.RoundToStart(start)

	return nil
}

func (c *Config) validateDisplay() error {
	colors := map[string]string{
		"selected":   c.Display.SelectedColor,
		"unselected": c.Display.UnselectedColor,
		"hovered":    c.Display.HoveredColor,
	}

	for name, color := range colors {
		if !hexColorRegex.MatchString(color) {
			return errInvalidColor.Fmt(name, color)
		}
	}

	if c.Display.CellWidth < minCellWidth || c.Display.CellWidth > maxCellWidth {
		return errInvalidCellWidth.Fmt(minCellWidth, maxCellWidth, c.Display.CellWidth)
	}

	if c.Display.Margin < 0 || c.Display.Margin > maxMargin {
		return errInvalidMargin.Fmt(maxMargin, c.Display.Margin)
	}

	return nil
}

func (c *Config) validateOutput() error {
	format, err := export.ParseFormat(c.Output.Format)
	if err != nil {
		return err
	}

	if c.Output.RepeatWeeks < 0 || c.Output.RepeatWeeks > maxRepeatWeeks {
		return errInvalidRepeat.Fmt(maxRepeatWeeks, c.Output.RepeatWeeks)
	}

	c.Runtime.Format = format

	return nil
}
