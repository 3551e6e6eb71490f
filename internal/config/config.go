// Package config loads avail's settings from the config file, first-run
// prompts and command-line flags
package config

import (
	"io"
	"os"
	"time"

	"github.com/ayoisaiah/avail/internal/export"
	"github.com/ayoisaiah/avail/internal/selection"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Grid          GridConfig         `mapstructure:"grid"`
		Display       DisplayConfig      `mapstructure:"display"`
		Output        OutputConfig       `mapstructure:"output"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Runtime       RuntimeConfig      `mapstructure:"-"`
	}

	// GridConfig describes the days x hours grid and how gestures select it.
	GridConfig struct {
		Start      string `mapstructure:"start"`
		Scheme     string `mapstructure:"selection_scheme"`
		DateFormat string `mapstructure:"date_format"`
		NumDays    int    `mapstructure:"num_days"`
		MinTime    int    `mapstructure:"min_time"`
		MaxTime    int    `mapstructure:"max_time"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		SelectedColor   string `mapstructure:"selected_color"`
		UnselectedColor string `mapstructure:"unselected_color"`
		HoveredColor    string `mapstructure:"hovered_color"`
		CellWidth       int    `mapstructure:"cell_width"`
		Margin          int    `mapstructure:"margin"`
		TwentyFourHour  bool   `mapstructure:"24hr_clock"`
		DarkTheme       bool   `mapstructure:"dark_theme"`
	}

	// OutputConfig controls how the final selection is written.
	OutputConfig struct {
		Format      string `mapstructure:"format"`
		File        string `mapstructure:"file"`
		Summary     string `mapstructure:"summary"`
		RepeatWeeks int    `mapstructure:"repeat_weeks"`
	}

	// SettingsConfig holds general settings.
	SettingsConfig struct {
		Cmd   string `mapstructure:"cmd"`
		Debug bool   `mapstructure:"debug"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// RuntimeConfig holds values derived from the settings once they are
	// loaded. It is never written to the config file.
	RuntimeConfig struct {
		Now       time.Time
		StartDate time.Time
		Input     string
		Format    export.Format
		Scheme    selection.Scheme
		NoColor   bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// WithClock fixes the time that relative dates such as "today" are
// resolved against.
func WithClock(now time.Time) Option {
	return func(c *Config) error {
		c.Runtime.Now = now
		return nil
	}
}

// New creates a new Config, applies opts in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if cfg.Runtime.Now.IsZero() {
		cfg.Runtime.Now = time.Now()
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
