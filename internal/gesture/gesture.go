// Package gesture tracks a press-to-release selection gesture over a grid
// and commits its region to the selection when the gesture ends
package gesture

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/avail/internal/grid"
	"github.com/ayoisaiah/avail/internal/selection"
)

// State is the phase of the gesture machine.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}

	return "idle"
}

// Gesture is the transient record of an active drag.
type Gesture struct {
	Start time.Time
	End   time.Time
	Mode  selection.Mode
	Moved bool
}

// last returns the endpoint used to resolve the region: the last position
// reached, or the start when the pointer never moved.
func (g Gesture) last() time.Time {
	if g.Moved {
		return g.End
	}

	return g.Start
}

// Machine owns the committed selection for one grid and stages a draft of
// it while a gesture is active.
type Machine struct {
	// OnChange is called with a copy of the committed selection each time a
	// gesture is committed.
	OnChange  func(selection.Set)
	grid      *grid.Grid
	active    *Gesture
	committed selection.Set
	draft     selection.Set
	scheme    selection.Scheme
}

// New returns an idle machine over g seeded with initial.
func New(
	g *grid.Grid,
	scheme selection.Scheme,
	initial selection.Set,
) *Machine {
	return &Machine{
		grid:      g,
		scheme:    scheme,
		committed: initial.Clone(),
		draft:     initial.Clone(),
	}
}

// State reports whether a gesture is in progress.
func (m *Machine) State() State {
	if m.active == nil {
		return Idle
	}

	return Dragging
}

// Gesture returns the active gesture, if any.
func (m *Machine) Gesture() (Gesture, bool) {
	if m.active == nil {
		return Gesture{}, false
	}

	return *m.active, true
}

// Grid returns the grid the machine resolves against.
func (m *Machine) Grid() *grid.Grid {
	return m.grid
}

// Scheme returns the current selection scheme.
func (m *Machine) Scheme() selection.Scheme {
	return m.scheme
}

// SetScheme changes the selection scheme. An active gesture restages its
// draft under the new scheme.
func (m *Machine) SetScheme(s selection.Scheme) error {
	m.scheme = s

	if m.active == nil {
		return nil
	}

	return m.stage(m.active.last())
}

// SetGrid replaces the grid. Any active gesture is discarded since its
// endpoints may no longer exist.
func (m *Machine) SetGrid(g *grid.Grid) {
	m.Abort()
	m.grid = g
}

// Selection returns a copy of the committed selection.
func (m *Machine) Selection() selection.Set {
	return m.committed.Clone()
}

// SetSelection replaces the committed selection, discarding any active
// gesture.
func (m *Machine) SetSelection(s selection.Set) {
	m.active = nil
	m.committed = s.Clone()
	m.draft = s.Clone()
}

// Selected reports whether t is selected in the draft, which includes the
// region of the active gesture.
func (m *Machine) Selected(t time.Time) bool {
	return m.draft.Contains(t)
}

// Draft returns a copy of the staged selection.
func (m *Machine) Draft() selection.Set {
	return m.draft.Clone()
}

// Begin starts a gesture at t. The gesture removes slots when t is already
// selected and adds them otherwise.
func (m *Machine) Begin(t time.Time) error {
	if m.active != nil {
		return ErrGestureActive
	}

	mode := selection.ModeAdd
	if m.committed.Contains(t) {
		mode = selection.ModeRemove
	}

	m.active = &Gesture{
		Start: t,
		End:   t,
		Mode:  mode,
	}

	err := m.stage(t)
	if err != nil {
		return err
	}

	slog.Debug(
		"gesture started",
		slog.Time("start", t),
		slog.String("mode", mode.String()),
		slog.String("scheme", m.scheme.String()),
	)

	return nil
}

// Move extends the active gesture to t and restages the draft. Moves while
// idle are ignored. If the region cannot be resolved the gesture is
// aborted and the committed selection is left as it was.
func (m *Machine) Move(t time.Time) error {
	if m.active == nil {
		return nil
	}

	m.active.End = t
	m.active.Moved = true

	return m.stage(t)
}

// Release commits the region of the active gesture and returns to idle.
func (m *Machine) Release() (selection.Set, error) {
	if m.active == nil {
		return m.committed.Clone(), nil
	}

	g := *m.active

	region, err := selection.Resolve(m.scheme, g.Start, g.last(), m.grid)
	if err != nil {
		m.Abort()
		return m.committed.Clone(), err
	}

	next, err := selection.Merge(m.committed, region, g.Mode)
	if err != nil {
		m.Abort()
		return m.committed.Clone(), err
	}

	m.committed = next
	m.draft = next.Clone()
	m.active = nil

	slog.Debug(
		"gesture committed",
		slog.String("mode", g.Mode.String()),
		slog.Int("region", len(region)),
		slog.Int("selected", next.Len()),
	)

	if m.OnChange != nil {
		m.OnChange(next.Clone())
	}

	return next.Clone(), nil
}

// Cancel ends a gesture interrupted by the platform. It commits whatever
// region was last staged, exactly like Release.
func (m *Machine) Cancel() (selection.Set, error) {
	return m.Release()
}

// Abort discards the active gesture without committing it.
func (m *Machine) Abort() {
	if m.active != nil {
		slog.Debug("gesture aborted")
	}

	m.active = nil
	m.draft = m.committed.Clone()
}

// stage recomputes the draft for a gesture ending at end.
func (m *Machine) stage(end time.Time) error {
	region, err := selection.Resolve(m.scheme, m.active.Start, end, m.grid)
	if err == nil {
		var draft selection.Set

		draft, err = selection.Merge(m.committed, region, m.active.Mode)
		if err == nil {
			m.draft = draft
			return nil
		}
	}

	slog.Debug("gesture aborted", slog.Any("err", err))

	m.active = nil
	m.draft = m.committed.Clone()

	return err
}
