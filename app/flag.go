package app

import "github.com/urfave/cli/v2"

var (
	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "First day of the grid (e.g. 'today', 'next monday', '2026-11-02')",
	}

	daysFlag = &cli.IntFlag{
		Name:    "days",
		Aliases: []string{"d"},
		Usage:   "Number of days to show (default: 7)",
	}

	minTimeFlag = &cli.IntFlag{
		Name:  "min-time",
		Usage: "First hour of each day, 0-23 (default: 9)",
	}

	maxTimeFlag = &cli.IntFlag{
		Name:  "max-time",
		Usage: "Last hour of each day, 0-23 (default: 23)",
	}

	schemeFlag = &cli.StringFlag{
		Name:  "scheme",
		Usage: "How a drag selects slots: 'square' or 'linear' (default: square)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: text, json, yaml or ics (default: text)",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the selection to a file instead of standard output",
	}

	summaryFlag = &cli.StringFlag{
		Name:  "summary",
		Usage: "Event title used in iCalendar output (default: Available)",
	}

	repeatFlag = &cli.IntFlag{
		Name:  "repeat",
		Usage: "Repeat iCalendar events weekly for this many weeks",
	}

	inputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "Start from the selection in a json, yaml or ics file",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute a command after the selection is saved. It receives the selection as JSON on stdin",
	}

	notifyFlag = &cli.BoolFlag{
		Name:  "notify",
		Usage: "Show a desktop notification after the selection is saved",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug logs",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	fromFlag = &cli.StringFlag{
		Name:     "from",
		Usage:    "Where the drag starts (e.g. 'tomorrow 9am')",
		Required: true,
	}

	toFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Where the drag ends. Defaults to --from",
	}
)

// gridFlags are the flags shared by every command that builds a grid.
func gridFlags() []cli.Flag {
	return []cli.Flag{
		startFlag,
		daysFlag,
		minTimeFlag,
		maxTimeFlag,
		schemeFlag,
		formatFlag,
		outputFlag,
		summaryFlag,
		repeatFlag,
		debugFlag,
		noColorFlag,
	}
}

func pickerFlags() []cli.Flag {
	return []cli.Flag{
		inputFlag,
		cmdFlag,
		notifyFlag,
	}
}
