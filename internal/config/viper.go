package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viperKeys defines the mapping between config keys and their Viper counterparts.
const (
	keyGridStart       = "grid.start"
	keyGridNumDays     = "grid.num_days"
	keyGridMinTime     = "grid.min_time"
	keyGridMaxTime     = "grid.max_time"
	keyGridScheme      = "grid.selection_scheme"
	keyGridDateFormat  = "grid.date_format"
	keySelectedColor   = "display.selected_color"
	keyUnselectedColor = "display.unselected_color"
	keyHoveredColor    = "display.hovered_color"
	keyCellWidth       = "display.cell_width"
	keyMargin          = "display.margin"
	keyTwentyFourHour  = "display.24hr_clock"
	keyDarkTheme       = "display.dark_theme"
	keyOutputFormat    = "output.format"
	keyOutputFile      = "output.file"
	keyOutputSummary   = "output.summary"
	keyRepeatWeeks     = "output.repeat_weeks"
	keySessionCmd      = "settings.cmd"
	keyDebug           = "settings.debug"
	keyNotifyEnabled   = "notifications.enabled"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any prompt values already
// applied to c.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyGridStart, "today")
	v.SetDefault(keyGridNumDays, 7)
	v.SetDefault(keyGridMinTime, 9)
	v.SetDefault(keyGridMaxTime, 23)
	v.SetDefault(keyGridScheme, "square")
	v.SetDefault(keyGridDateFormat, "1/2")
	v.SetDefault(keySelectedColor, "#3B82F6")
	v.SetDefault(keyUnselectedColor, "#DBEAFE")
	v.SetDefault(keyHoveredColor, "#93C5FD")
	v.SetDefault(keyCellWidth, 6)
	v.SetDefault(keyMargin, 1)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyOutputFormat, "text")
	v.SetDefault(keyOutputFile, "")
	v.SetDefault(keyOutputSummary, "Available")
	v.SetDefault(keyRepeatWeeks, 0)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDebug, false)
	v.SetDefault(keyNotifyEnabled, false)

	// values answered in the first-run prompt
	if c.Grid.NumDays != 0 {
		v.Set(keyGridNumDays, c.Grid.NumDays)
		v.Set(keyGridMinTime, c.Grid.MinTime)
		v.Set(keyGridMaxTime, c.Grid.MaxTime)
	}

	if c.Grid.Scheme != "" {
		v.Set(keyGridScheme, c.Grid.Scheme)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
