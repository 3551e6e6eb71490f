package picker

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/avail/internal/gesture"
	"github.com/ayoisaiah/avail/internal/grid"
)

// setErr records the outcome of a gesture operation for the status line.
func (p *Picker) setErr(err error) {
	p.err = err

	if err != nil {
		slog.Warn("gesture failed", slog.Any("err", err))
	}
}

// begin starts a gesture at pos.
func (p *Picker) begin(pos grid.Position) {
	t, ok := p.timeAt(pos)
	if !ok {
		return
	}

	p.setErr(p.machine.Begin(t))
}

// moveTo extends an active gesture to pos. Nothing happens while idle.
func (p *Picker) moveTo(pos grid.Position) {
	if p.machine.State() != gesture.Dragging {
		return
	}

	t, ok := p.timeAt(pos)
	if !ok {
		return
	}

	if g, _ := p.machine.Gesture(); g.Moved && g.End.Equal(t) {
		return
	}

	p.setErr(p.machine.Move(t))
}

func (p *Picker) release() {
	_, err := p.machine.Release()
	p.setErr(err)
}

// moveCursor shifts the keyboard cursor, clamped to the grid.
func (p *Picker) moveCursor(days, hours int) {
	p.cursor.Day = min(max(p.cursor.Day+days, 0), p.layout.Days-1)
	p.cursor.Hour = min(max(p.cursor.Hour+hours, 0), p.layout.Hours-1)

	p.moveTo(p.cursor)
}

func (p *Picker) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.up):
		p.moveCursor(0, -1)

	case key.Matches(msg, defaultKeymap.down):
		p.moveCursor(0, 1)

	case key.Matches(msg, defaultKeymap.left):
		p.moveCursor(-1, 0)

	case key.Matches(msg, defaultKeymap.right):
		p.moveCursor(1, 0)

	case key.Matches(msg, defaultKeymap.toggle):
		if p.machine.State() == gesture.Dragging {
			p.release()
			break
		}

		p.begin(p.cursor)

	case key.Matches(msg, defaultKeymap.esc):
		if p.machine.State() == gesture.Dragging {
			_, err := p.machine.Cancel()
			p.setErr(err)
		}

	case key.Matches(msg, defaultKeymap.scheme):
		p.setErr(p.machine.SetScheme(p.machine.Scheme().Next()))

	case key.Matches(msg, defaultKeymap.confirm),
		key.Matches(msg, defaultKeymap.quit):
		if p.machine.State() == gesture.Dragging {
			p.release()
		}

		p.confirmed = true

		return p, tea.Quit

	case key.Matches(msg, defaultKeymap.abort):
		p.machine.Abort()
		p.aborted = true

		return p, tea.Quit
	}

	return p, nil
}

func (p *Picker) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos, inGrid := p.layout.CellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inGrid {
			return p, nil
		}

		p.cursor = pos

		if p.machine.State() == gesture.Dragging {
			// a release was lost outside the terminal
			p.release()
		}

		p.begin(pos)

	case tea.MouseActionMotion:
		if !inGrid {
			return p, nil
		}

		p.cursor = pos

		if msg.Button == tea.MouseButtonLeft {
			p.moveTo(pos)
		}

	case tea.MouseActionRelease:
		if p.machine.State() == gesture.Dragging {
			p.release()
		}
	}

	return p, nil
}

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.Opts.Settings.Debug {
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return p.handleKeyPress(msg)

	case tea.MouseMsg:
		return p.handleMouse(msg)

	case tea.WindowSizeMsg:
		p.help.Width = msg.Width - paddingLeft

		return p, nil
	}

	return p, nil
}
