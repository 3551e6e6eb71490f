package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/avail/internal/config"
)

// Get retrieves the avail app instance.
func Get() *cli.App {
	availApp := &cli.App{
		Name: "avail",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		avail is a command-line availability picker. Drag across a grid of days
		and hours to mark when you are free, then share the result as a table,
		JSON, YAML or an iCalendar file.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name: "resolve",
				Usage: `
				Print the slots a drag between two times would select, without
				opening the picker`,
				Flags:  append([]cli.Flag{fromFlag, toFlag}, gridFlags()...),
				Action: resolveAction,
			},
		},
		Flags:  append(gridFlags(), pickerFlags()...),
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return availApp
}
