package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/ayoisaiah/avail/internal/timeutil"
)

const asciiLogo = `
 █████╗ ██╗   ██╗ █████╗ ██╗██╗
██╔══██╗██║   ██║██╔══██╗██║██║
███████║██║   ██║███████║██║██║
██╔══██║╚██╗ ██╔╝██╔══██║██║██║
██║  ██║ ╚████╔╝ ██║  ██║██║███████╗
╚═╝  ╚═╝  ╚═══╝  ╚═╝  ╚═╝╚═╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Scheme  string
	NumDays int
	MinTime int
	MaxTime int
}

// WithPromptConfig returns an Option that configures the grid via
// interactive prompts when no config file exists yet.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		return applyPromptOptions(c, opts)
	}
}

func hourOptions(from, to int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, to-from+1)

	for h := from; h <= to; h++ {
		opts = append(opts, huh.NewOption(timeutil.FormatHour(h, false), h))
	}

	return opts
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Scheme:  "square",
		NumDays: 7,
		MinTime: 9,
		MaxTime: 23,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure avail for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'avail edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should a drag select slots?").
				Options(
					huh.NewOption("Square: the rectangle between two cells", "square"),
					huh.NewOption("Linear: every slot in between, across days", "linear"),
				).
				Value(&opts.Scheme),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Number of days to show").
				Options(
					huh.NewOption("5 days", 5),
					huh.NewOption("7 days", 7),
					huh.NewOption("14 days", 14),
				).
				Value(&opts.NumDays),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("First hour of the day").
				Options(hourOptions(0, 12)...).
				Value(&opts.MinTime),
			huh.NewSelect[int]().
				Title("Last hour of the day").
				Options(hourOptions(12, 23)...).
				Value(&opts.MaxTime),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) error {
	c.Grid.Scheme = opts.Scheme
	c.Grid.NumDays = opts.NumDays
	c.Grid.MinTime = opts.MinTime
	c.Grid.MaxTime = opts.MaxTime

	return nil
}
