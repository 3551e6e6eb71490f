package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options. Only flags
// that were explicitly set override the config file.
type CLIOptions struct {
	Start       *string
	Scheme      *string
	Format      *string
	Output      *string
	Summary     *string
	Cmd         *string
	Input       string
	NumDays     *int
	MinTime     *int
	MaxTime     *int
	RepeatWeeks *int
	Debug       bool
	Notify      bool
	NoColor     bool
}

func stringFlag(ctx *cli.Context, name string) *string {
	if !ctx.IsSet(name) {
		return nil
	}

	s := ctx.String(name)

	return &s
}

func intFlag(ctx *cli.Context, name string) *int {
	if !ctx.IsSet(name) {
		return nil
	}

	i := ctx.Int(name)

	return &i
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Start:       stringFlag(ctx, "start"),
			Scheme:      stringFlag(ctx, "scheme"),
			Format:      stringFlag(ctx, "format"),
			Output:      stringFlag(ctx, "output"),
			Summary:     stringFlag(ctx, "summary"),
			Cmd:         stringFlag(ctx, "cmd"),
			NumDays:     intFlag(ctx, "days"),
			MinTime:     intFlag(ctx, "min-time"),
			MaxTime:     intFlag(ctx, "max-time"),
			RepeatWeeks: intFlag(ctx, "repeat"),
			Input:       ctx.String("input"),
			Debug:       ctx.Bool("debug"),
			Notify:      ctx.Bool("notify"),
			NoColor:     ctx.Bool("no-color"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	setString(&c.Grid.Start, opts.Start)
	setString(&c.Grid.Scheme, opts.Scheme)
	setString(&c.Output.Format, opts.Format)
	setString(&c.Output.File, opts.Output)
	setString(&c.Output.Summary, opts.Summary)
	setString(&c.Settings.Cmd, opts.Cmd)

	setInt(&c.Grid.NumDays, opts.NumDays)
	setInt(&c.Grid.MinTime, opts.MinTime)
	setInt(&c.Grid.MaxTime, opts.MaxTime)
	setInt(&c.Output.RepeatWeeks, opts.RepeatWeeks)

	if opts.Debug {
		c.Settings.Debug = true
	}

	if opts.Notify {
		c.Notifications.Enabled = true
	}

	c.Runtime.Input = opts.Input
	c.Runtime.NoColor = opts.NoColor
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst, src *int) {
	if src != nil {
		*dst = *src
	}
}
