// Package grid builds the days x hours matrix of selectable time slots
package grid

import (
	"time"

	"github.com/ayoisaiah/avail/internal/timeutil"
)

// Params are the construction parameters of a Grid. Any change to them
// requires a new Grid.
type Params struct {
	Start   time.Time
	NumDays int
	MinTime int
	MaxTime int
}

// Grid is an immutable matrix of hourly time points. The outer index is the
// day and the inner index is the hour offset from MinTime.
type Grid struct {
	days   [][]time.Time
	params Params
}

// Position is the (day, hour) index of a time point within a Grid.
type Position struct {
	Day  int
	Hour int
}

// New builds the grid for p. Days start at midnight of p.Start in its
// location and slots fall on wall-clock hours, except where a daylight
// saving change skips an hour.
func New(p Params) (*Grid, error) {
	if p.NumDays < 1 {
		return nil, errInvalidDayCount.Fmt(p.NumDays)
	}

	if p.MinTime < 0 || p.MaxTime >= timeutil.HoursInADay ||
		p.MinTime > p.MaxTime {
		return nil, errInvalidHourRange.Fmt(p.MinTime, p.MaxTime)
	}

	start := timeutil.RoundToStart(p.Start)
	days := make([][]time.Time, p.NumDays)

	var prev time.Time

	for d := range p.NumDays {
		day := make([]time.Time, 0, p.MaxTime-p.MinTime+1)

		for h := p.MinTime; h <= p.MaxTime; h++ {
			t := time.Date(
				start.Year(),
				start.Month(),
				start.Day()+d,
				h,
				0,
				0,
				0,
				start.Location(),
			)

			// an hour skipped by a DST change normalises onto the next
			// one, so it takes the next free hour instead
			if !prev.IsZero() && !t.After(prev) {
				t = prev.Add(time.Hour)
			}

			day = append(day, t)
			prev = t
		}

		days[d] = day
	}

	g := &Grid{
		days:   days,
		params: p,
	}

	return g, g.Validate()
}

// FromDays wraps an existing matrix without copying it. It is meant for
// callers that construct unusual grids; Validate reports whether the matrix
// is usable.
func FromDays(days [][]time.Time) *Grid {
	return &Grid{days: days}
}

// Params returns the parameters the grid was built from.
func (g *Grid) Params() Params {
	return g.params
}

// Days returns the number of days in the grid.
func (g *Grid) Days() int {
	return len(g.days)
}

// Hours returns the number of hour slots in each day.
func (g *Grid) Hours() int {
	if len(g.days) == 0 {
		return 0
	}

	return len(g.days[0])
}

// Empty reports whether the grid has no time points.
func (g *Grid) Empty() bool {
	return g == nil || g.Days() == 0 || g.Hours() == 0
}

// At returns the time point at pos.
func (g *Grid) At(pos Position) (time.Time, bool) {
	if pos.Day < 0 || pos.Day >= g.Days() ||
		pos.Hour < 0 || pos.Hour >= g.Hours() {
		return time.Time{}, false
	}

	return g.days[pos.Day][pos.Hour], true
}

// Locate finds t in the grid by minute equality. Positions are never cached
// because grids are rebuilt whenever their parameters change.
func (g *Grid) Locate(t time.Time) (Position, bool) {
	key := timeutil.MinuteKey(t)

	for d, day := range g.days {
		for h, p := range day {
			if timeutil.MinuteKey(p) == key {
				return Position{Day: d, Hour: h}, true
			}
		}
	}

	return Position{}, false
}

// FlatIndex returns the row-major index of pos.
func (g *Grid) FlatIndex(pos Position) int {
	return pos.Day*g.Hours() + pos.Hour
}

// Flatten returns every time point in day-major, then hour order.
func (g *Grid) Flatten() []time.Time {
	out := make([]time.Time, 0, g.Days()*g.Hours())

	for _, day := range g.days {
		out = append(out, day...)
	}

	return out
}

// Validate checks that every day has the same number of slots and that
// the time points strictly increase in (day, hour) order.
func (g *Grid) Validate() error {
	if g.Empty() {
		return errEmptyGrid
	}

	width := len(g.days[0])

	var prev time.Time

	for d, day := range g.days {
		if len(day) != width {
			return errRaggedGrid.Fmt(d, len(day), width)
		}

		for h, t := range day {
			if (d > 0 || h > 0) && !t.After(prev) {
				return errUnorderedGrid.Fmt(d, h)
			}

			prev = t
		}
	}

	return nil
}
