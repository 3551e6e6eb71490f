package picker

import (
	"fmt"
	"strings"

	"github.com/ayoisaiah/avail/internal/gesture"
	"github.com/ayoisaiah/avail/internal/grid"
	"github.com/ayoisaiah/avail/internal/timeutil"
)

const (
	selectedMark = "●"
	cursorMark   = "·"
)

// fit truncates s to at most w runes.
func fit(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}

	return string(r[:w])
}

func (p *Picker) titleView() string {
	var s strings.Builder

	s.WriteString(p.styles.title.Render("avail"))

	status := fmt.Sprintf(
		"  %s · %d selected",
		p.machine.Scheme(),
		p.machine.Draft().Len(),
	)

	if g, ok := p.machine.Gesture(); ok {
		status += fmt.Sprintf(" · dragging (%s)", g.Mode)
	}

	s.WriteString(p.styles.hint.Render(status))

	return s.String()
}

func (p *Picker) headerView() string {
	g := p.machine.Grid()
	gap := strings.Repeat(" ", p.layout.Margin)

	headers := make([]string, 0, p.layout.Days)

	for d := range p.layout.Days {
		t, _ := g.At(grid.Position{Day: d})
		label := fit(t.Format(p.Opts.Grid.DateFormat), p.layout.CellWidth)
		headers = append(headers, p.styles.header.Render(label))
	}

	return strings.Repeat(" ", p.layout.LabelWidth) + gap +
		strings.Join(headers, gap)
}

func (p *Picker) cellView(pos grid.Position) string {
	t, _ := p.machine.Grid().At(pos)
	selected := p.machine.Selected(t)

	if pos == p.cursor {
		if selected {
			return p.styles.hovered.Render(selectedMark)
		}

		return p.styles.hovered.Render(cursorMark)
	}

	if selected {
		return p.styles.selected.Render(selectedMark)
	}

	return p.styles.unselected.Render("")
}

func (p *Picker) rowView(hour int) string {
	g := p.machine.Grid()
	gap := strings.Repeat(" ", p.layout.Margin)

	t, _ := g.At(grid.Position{Hour: hour})
	label := timeutil.FormatHour(t.Hour(), p.Opts.Display.TwentyFourHour)

	cells := make([]string, 0, p.layout.Days)

	for d := range p.layout.Days {
		cells = append(cells, p.cellView(grid.Position{Day: d, Hour: hour}))
	}

	return p.styles.label.Render(label) + gap + strings.Join(cells, gap)
}

func (p *Picker) helpView() string {
	if p.err != nil {
		return p.styles.err.Render(p.err.Error())
	}

	if p.machine.State() == gesture.Dragging {
		return p.help.ShortHelpView(defaultKeymap.dragHelp())
	}

	return p.help.View(defaultKeymap)
}

func (p *Picker) View() string {
	if p.confirmed || p.aborted {
		return ""
	}

	pad := strings.Repeat(" ", paddingLeft)

	lines := make([]string, 0, paddingTop+headerLines+p.layout.Hours+2)

	for range paddingTop {
		lines = append(lines, "")
	}

	lines = append(lines, pad+p.titleView(), "", pad+p.headerView())

	for h := range p.layout.Hours {
		lines = append(lines, pad+p.rowView(h))
	}

	lines = append(lines, "", pad+p.helpView())

	return strings.Join(lines, "\n")
}
