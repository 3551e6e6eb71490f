package picker

import (
	"github.com/ayoisaiah/avail/internal/grid"
	"github.com/ayoisaiah/avail/internal/timeutil"
)

const (
	paddingTop  = 1
	paddingLeft = 2

	// title line, blank line, date header
	headerLines = 3
)

// Layout maps terminal coordinates to grid cells. It mirrors the geometry
// produced by View: each hour is one line and each day is a column of
// CellWidth characters separated by Margin blank columns.
type Layout struct {
	LabelWidth int
	CellWidth  int
	Margin     int
	Days       int
	Hours      int
}

func newLayout(g *grid.Grid, cellWidth, margin int, twentyFourHour bool) Layout {
	l := Layout{
		CellWidth: cellWidth,
		Margin:    margin,
		Days:      g.Days(),
		Hours:     g.Hours(),
	}

	minTime := g.Params().MinTime
	if t, ok := g.At(grid.Position{}); ok {
		minTime = t.Hour()
	}

	for h := range l.Hours {
		label := timeutil.FormatHour(minTime+h, twentyFourHour)
		l.LabelWidth = max(l.LabelWidth, len(label))
	}

	return l
}

// OriginX is the column of the first cell of the first day.
func (l Layout) OriginX() int {
	return paddingLeft + l.LabelWidth + l.Margin
}

// OriginY is the line of the first hour row.
func (l Layout) OriginY() int {
	return paddingTop + headerLines
}

// Width is the number of columns the grid occupies, padding included.
func (l Layout) Width() int {
	if l.Days == 0 {
		return l.OriginX()
	}

	return l.OriginX() + l.Days*l.CellWidth + (l.Days-1)*l.Margin
}

// CellAt returns the cell under the terminal coordinate (x, y). Margins
// between days and everything outside the grid report false.
func (l Layout) CellAt(x, y int) (grid.Position, bool) {
	row := y - l.OriginY()
	col := x - l.OriginX()

	if row < 0 || row >= l.Hours || col < 0 {
		return grid.Position{}, false
	}

	stride := l.CellWidth + l.Margin

	day := col / stride
	if day >= l.Days || col%stride >= l.CellWidth {
		return grid.Position{}, false
	}

	return grid.Position{Day: day, Hour: row}, true
}
