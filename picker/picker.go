// Package picker hosts the interactive availability grid: it renders the
// days x hours matrix and translates keys and mouse events into selection
// gestures
package picker

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/avail/internal/config"
	"github.com/ayoisaiah/avail/internal/gesture"
	"github.com/ayoisaiah/avail/internal/grid"
	"github.com/ayoisaiah/avail/internal/selection"
)

type styles struct {
	title      lipgloss.Style
	hint       lipgloss.Style
	err        lipgloss.Style
	label      lipgloss.Style
	header     lipgloss.Style
	selected   lipgloss.Style
	unselected lipgloss.Style
	hovered    lipgloss.Style
}

func newStyles(d config.DisplayConfig, labelWidth int) styles {
	text := lipgloss.Color("#1F2937")
	muted := lipgloss.Color("#6B7280")

	if d.DarkTheme {
		text = lipgloss.Color("#F9FAFB")
		muted = lipgloss.Color("#9CA3AF")
	}

	cell := lipgloss.NewStyle().
		Width(d.CellWidth).
		Align(lipgloss.Center)

	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(text),
		hint:   lipgloss.NewStyle().Foreground(muted),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		label:  lipgloss.NewStyle().Width(labelWidth).Align(lipgloss.Right).Foreground(muted),
		header: cell.Foreground(text),
		selected: cell.
			Background(lipgloss.Color(d.SelectedColor)).
			Foreground(lipgloss.Color("#FFFFFF")),
		unselected: cell.Background(lipgloss.Color(d.UnselectedColor)),
		hovered: cell.
			Background(lipgloss.Color(d.HoveredColor)).
			Foreground(lipgloss.Color("#111827")),
	}
}

// Picker is the bubbletea model for the availability grid.
type Picker struct {
	Opts      *config.Config
	machine   *gesture.Machine
	help      help.Model
	err       error
	styles    styles
	layout    Layout
	cursor    grid.Position
	confirmed bool
	aborted   bool
}

// New returns a picker over g with initial as the committed selection.
func New(cfg *config.Config, g *grid.Grid, initial selection.Set) *Picker {
	m := gesture.New(g, cfg.Runtime.Scheme, initial)

	m.OnChange = func(s selection.Set) {
		slog.Info(
			"selection changed",
			slog.Int("selected", s.Len()),
		)
	}

	layout := newLayout(
		g,
		cfg.Display.CellWidth,
		cfg.Display.Margin,
		cfg.Display.TwentyFourHour,
	)

	return &Picker{
		Opts:    cfg,
		machine: m,
		help:    help.New(),
		styles:  newStyles(cfg.Display, layout.LabelWidth),
		layout:  layout,
	}
}

func (p *Picker) Init() tea.Cmd {
	return nil
}

// Layout returns the geometry used to hit-test mouse events.
func (p *Picker) Layout() Layout {
	return p.layout
}

// Machine returns the gesture machine driven by the picker.
func (p *Picker) Machine() *gesture.Machine {
	return p.machine
}

// Cursor returns the keyboard cursor position.
func (p *Picker) Cursor() grid.Position {
	return p.cursor
}

// Confirmed reports whether the user finished with enter or q.
func (p *Picker) Confirmed() bool {
	return p.confirmed
}

// Aborted reports whether the user discarded the session with ctrl+c.
func (p *Picker) Aborted() bool {
	return p.aborted
}

// Selection returns the committed selection.
func (p *Picker) Selection() selection.Set {
	return p.machine.Selection()
}

// timeAt returns the grid time point at pos.
func (p *Picker) timeAt(pos grid.Position) (time.Time, bool) {
	return p.machine.Grid().At(pos)
}
