package selection

import (
	"time"

	"github.com/ayoisaiah/avail/internal/grid"
)

const errTimeLayout = "Mon Jan 2 15:04"

// Resolve returns the slots spanned by a gesture from start to end under
// scheme, in grid order. The result does not depend on the direction of the
// gesture, and start == end yields the single slot start.
func Resolve(
	scheme Scheme,
	start, end time.Time,
	g *grid.Grid,
) ([]time.Time, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	from, ok := g.Locate(start)
	if !ok {
		return nil, errNotInGrid.Fmt("start", start.Format(errTimeLayout))
	}

	to, ok := g.Locate(end)
	if !ok {
		return nil, errNotInGrid.Fmt("end", end.Format(errTimeLayout))
	}

	switch scheme {
	case Linear:
		return linear(from, to, g), nil
	case Square:
		return square(from, to, g), nil
	default:
		return nil, errUnknownScheme.Fmt(scheme.String())
	}
}

func linear(from, to grid.Position, g *grid.Grid) []time.Time {
	lo, hi := g.FlatIndex(from), g.FlatIndex(to)
	if lo > hi {
		lo, hi = hi, lo
	}

	flat := g.Flatten()

	return flat[lo : hi+1]
}

func square(from, to grid.Position, g *grid.Grid) []time.Time {
	dayLow, dayHigh := min(from.Day, to.Day), max(from.Day, to.Day)
	hourLow, hourHigh := min(from.Hour, to.Hour), max(from.Hour, to.Hour)

	region := make([]time.Time, 0, (dayHigh-dayLow+1)*(hourHigh-hourLow+1))

	for d := dayLow; d <= dayHigh; d++ {
		for h := hourLow; h <= hourHigh; h++ {
			t, _ := g.At(grid.Position{Day: d, Hour: h})
			region = append(region, t)
		}
	}

	return region
}
