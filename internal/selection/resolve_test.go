package selection

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/avail/internal/apperr"
	"github.com/ayoisaiah/avail/internal/grid"
)

// testGrid is 2 days x hours {9, 10, 11}, flattened as
// [d0h9, d0h10, d0h11, d1h9, d1h10, d1h11].
func testGrid(t *testing.T) *grid.Grid {
	t.Helper()

	g, err := grid.New(grid.Params{
		Start:   time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		NumDays: 2,
		MinTime: 9,
		MaxTime: 11,
	})
	if err != nil {
		t.Fatal(err)
	}

	return g
}

func slot(day, hour int) time.Time {
	return time.Date(2026, 10, 19+day, hour, 0, 0, 0, time.UTC)
}

type resolveTest struct {
	Start  time.Time
	End    time.Time
	Name   string
	Want   []time.Time
	Scheme Scheme
}

var resolveTests = []resolveTest{
	{
		Name:   "tap selects a single slot",
		Scheme: Linear,
		Start:  slot(0, 10),
		End:    slot(0, 10),
		Want:   []time.Time{slot(0, 10)},
	},
	{
		Name:   "linear span wraps into the next day",
		Scheme: Linear,
		Start:  slot(0, 10),
		End:    slot(1, 9),
		Want:   []time.Time{slot(0, 10), slot(0, 11), slot(1, 9)},
	},
	{
		Name:   "linear span is independent of drag direction",
		Scheme: Linear,
		Start:  slot(1, 9),
		End:    slot(0, 10),
		Want:   []time.Time{slot(0, 10), slot(0, 11), slot(1, 9)},
	},
	{
		Name:   "square spans both days but only the dragged hours",
		Scheme: Square,
		Start:  slot(0, 9),
		End:    slot(1, 10),
		Want:   []time.Time{slot(0, 9), slot(0, 10), slot(1, 9), slot(1, 10)},
	},
	{
		Name:   "square from the bottom right corner",
		Scheme: Square,
		Start:  slot(1, 11),
		End:    slot(0, 10),
		Want:   []time.Time{slot(0, 10), slot(0, 11), slot(1, 10), slot(1, 11)},
	},
	{
		Name:   "square within a single day",
		Scheme: Square,
		Start:  slot(0, 11),
		End:    slot(0, 9),
		Want:   []time.Time{slot(0, 9), slot(0, 10), slot(0, 11)},
	},
	{
		Name:   "endpoints are matched at minute resolution",
		Scheme: Linear,
		Start:  slot(0, 9).Add(20 * time.Second),
		End:    slot(0, 10).Add(999 * time.Millisecond),
		Want:   []time.Time{slot(0, 9), slot(0, 10)},
	},
}

func TestResolve(t *testing.T) {
	g := testGrid(t)

	for _, tc := range resolveTests {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := Resolve(tc.Scheme, tc.Start, tc.End, g)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tc.Want, got); diff != "" {
				t.Fatalf("region mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveSymmetric(t *testing.T) {
	g := testGrid(t)
	points := g.Flatten()

	for _, scheme := range Schemes {
		for _, a := range points {
			for _, b := range points {
				ab, err := Resolve(scheme, a, b, g)
				if err != nil {
					t.Fatal(err)
				}

				ba, err := Resolve(scheme, b, a, g)
				if err != nil {
					t.Fatal(err)
				}

				if !NewSet(ab...).Equal(NewSet(ba...)) {
					t.Errorf("%s: region %v -> %v differs from %v -> %v",
						scheme, a, b, b, a)
				}
			}
		}
	}
}

func TestResolveReflexive(t *testing.T) {
	g := testGrid(t)

	for _, scheme := range Schemes {
		for _, p := range g.Flatten() {
			got, err := Resolve(scheme, p, p, g)
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff([]time.Time{p}, got); diff != "" {
				t.Errorf("%s: tap on %v (-want +got):\n%s", scheme, p, diff)
			}
		}
	}
}

func TestResolveErrors(t *testing.T) {
	g := testGrid(t)

	cases := []struct {
		Grid   *grid.Grid
		Start  time.Time
		End    time.Time
		Name   string
		Scheme Scheme
	}{
		{
			Name:   "start outside the grid",
			Grid:   g,
			Scheme: Linear,
			Start:  slot(0, 8),
			End:    slot(0, 10),
		},
		{
			Name:   "end outside the grid",
			Grid:   g,
			Scheme: Square,
			Start:  slot(0, 9),
			End:    slot(2, 9),
		},
		{
			Name:   "unknown scheme",
			Grid:   g,
			Scheme: Scheme(42),
			Start:  slot(0, 9),
			End:    slot(0, 10),
		},
		{
			Name:   "zero scheme",
			Grid:   g,
			Start:  slot(0, 9),
			End:    slot(0, 9),
		},
		{
			Name:   "grid without days",
			Grid:   grid.FromDays(nil),
			Scheme: Linear,
			Start:  slot(0, 9),
			End:    slot(0, 9),
		},
		{
			Name:   "grid without hours",
			Grid:   grid.FromDays([][]time.Time{{}, {}}),
			Scheme: Square,
			Start:  slot(0, 9),
			End:    slot(0, 9),
		},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			region, err := Resolve(tc.Scheme, tc.Start, tc.End, tc.Grid)
			if !errors.Is(err, apperr.ErrInvalidArgument) {
				t.Fatalf("expected invalid argument, got %v", err)
			}

			if region != nil {
				t.Fatalf("expected no region on error, got %v", region)
			}
		})
	}
}

func TestParseScheme(t *testing.T) {
	for _, s := range Schemes {
		got, err := ParseScheme(s.String())
		if err != nil {
			t.Fatal(err)
		}

		if got != s {
			t.Errorf("expected %s, got %s", s, got)
		}
	}

	if got, err := ParseScheme(" Square "); err != nil || got != Square {
		t.Errorf("expected case and space insensitive parsing, got %v (%v)", got, err)
	}

	if _, err := ParseScheme("diagonal"); !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Errorf("expected invalid argument, got %v", err)
	}

	if Linear.Next() != Square || Square.Next() != Linear {
		t.Error("expected Next to alternate between schemes")
	}
}
