package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/avail/internal/config"
	"github.com/ayoisaiah/avail/internal/export"
	"github.com/ayoisaiah/avail/internal/grid"
	"github.com/ayoisaiah/avail/internal/logutil"
	"github.com/ayoisaiah/avail/internal/osutil"
	"github.com/ayoisaiah/avail/internal/pathutil"
	"github.com/ayoisaiah/avail/internal/selection"
	"github.com/ayoisaiah/avail/internal/timeutil"
	"github.com/ayoisaiah/avail/internal/ui"
	"github.com/ayoisaiah/avail/picker"
)

const (
	envNoColor      = "NO_COLOR"
	envAvailNoColor = "AVAIL_NO_COLOR"
)

// logFile is the rotated log opened by setupLogging.
var logFile io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// disableStyling disables all styling provided by pterm and lipgloss.
func disableStyling() {
	ui.DisableStyling()
	lipgloss.SetColorProfile(termenv.Ascii)
}

// loadConfig builds the configuration for the current invocation and
// starts logging with it.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	if logFile == nil {
		logFile, err = logutil.Setup(
			pathutil.LogFilePath(),
			cfg.Settings.Debug,
		)
		if err != nil {
			return nil, err
		}
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.Runtime.NoColor {
		disableStyling()
	}

	slog.Debug(
		"config loaded",
		slog.String("path", configPath),
		slog.Time("start", cfg.Runtime.StartDate),
		slog.String("scheme", cfg.Runtime.Scheme.String()),
	)

	return cfg, nil
}

func newGrid(cfg *config.Config) (*grid.Grid, error) {
	return grid.New(grid.Params{
		Start:   cfg.Runtime.StartDate,
		NumDays: cfg.Grid.NumDays,
		MinTime: cfg.Grid.MinTime,
		MaxTime: cfg.Grid.MaxTime,
	})
}

// initialSelection reads the selection to start from. Slots that are not
// part of g are dropped.
func initialSelection(cfg *config.Config, g *grid.Grid) (selection.Set, error) {
	if cfg.Runtime.Input == "" {
		return selection.NewSet(), nil
	}

	slots, err := export.ReadFile(cfg.Runtime.Input)
	if err != nil {
		return selection.Set{}, errReadInput.Wrap(err)
	}

	set := selection.NewSet()

	var dropped int

	for _, t := range slots {
		if _, ok := g.Locate(t); !ok {
			dropped++
			continue
		}

		set.Add(t)
	}

	if dropped > 0 {
		slog.Warn(
			"ignoring slots outside the grid",
			slog.String("input", cfg.Runtime.Input),
			slog.Int("count", dropped),
		)
	}

	return set, nil
}

func exportOptions(cfg *config.Config) export.Options {
	return export.Options{
		Stamp:          cfg.Runtime.Now,
		Format:         cfg.Runtime.Format,
		Scheme:         cfg.Runtime.Scheme.String(),
		Summary:        cfg.Output.Summary,
		RepeatWeeks:    cfg.Output.RepeatWeeks,
		TwentyFourHour: cfg.Display.TwentyFourHour,
	}
}

// writeSelection writes slots to the configured file or standard output.
func writeSelection(cfg *config.Config, slots []time.Time) error {
	opts := exportOptions(cfg)

	if cfg.Output.File == "" {
		return export.Write(config.Stdout, slots, opts)
	}

	f, err := os.OpenFile(
		cfg.Output.File,
		os.O_CREATE|os.O_WRONLY|os.O_TRUNC,
		osutil.FilePermission,
	)
	if err != nil {
		return errWriteOutput.Wrap(err)
	}

	err = export.Write(f, slots, opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return errWriteOutput.Wrap(err)
	}

	pterm.Success.Printfln(
		"Saved %s slots in %s ranges to %s",
		ui.Green(len(slots)),
		ui.Yellow(len(export.Ranges(slots))),
		ui.Highlight(cfg.Output.File),
	)

	return nil
}

// defaultAction opens the picker and writes the confirmed selection.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	g, err := newGrid(cfg)
	if err != nil {
		return err
	}

	initial, err := initialSelection(cfg, g)
	if err != nil {
		return err
	}

	pk := picker.New(cfg, g, initial)

	p := tea.NewProgram(
		pk,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx.Context),
	)

	if _, err = p.Run(); err != nil {
		return err
	}

	if !pk.Confirmed() {
		slog.Info("selection discarded")
		return nil
	}

	slots := pk.Selection().Times()

	err = writeSelection(cfg, slots)
	if err != nil {
		return err
	}

	err = runSelectionCmd(ctx.Context, cfg.Settings.Cmd, slots, cfg.Runtime.Scheme, config.Stderr)
	if err != nil {
		return err
	}

	if cfg.Notifications.Enabled {
		notify(slots)
	}

	return nil
}

// resolveAction prints the region between --from and --to on the
// configured grid.
func resolveAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	g, err := newGrid(cfg)
	if err != nil {
		return err
	}

	from, err := timeutil.ParseDate(ctx.String("from"), cfg.Runtime.Now)
	if err != nil {
		return errInvalidEndpoint.Wrap(err)
	}

	to := from

	if ctx.IsSet("to") {
		to, err = timeutil.ParseDate(ctx.String("to"), cfg.Runtime.Now)
		if err != nil {
			return errInvalidEndpoint.Wrap(err)
		}
	}

	region, err := selection.Resolve(
		cfg.Runtime.Scheme,
		timeutil.TruncateHour(from),
		timeutil.TruncateHour(to),
		g,
	)
	if err != nil {
		return err
	}

	slog.Info(
		"region resolved",
		slog.Time("from", from),
		slog.Time("to", to),
		slog.Int("slots", len(region)),
	)

	return writeSelection(cfg, region)
}

// editConfigAction handles the edit-config command which opens the avail
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/avail/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if AVAIL_NO_COLOR is set
	if _, exists := os.LookupEnv(envAvailNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting avail")

	if logFile == nil {
		return nil
	}

	err := logFile.Close()
	logFile = nil

	return err
}
