package grid

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/avail/internal/apperr"
)

var monday = time.Date(2026, 10, 19, 15, 42, 0, 0, time.UTC)

func at(day, hour int) time.Time {
	return time.Date(2026, 10, 19+day, hour, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	g, err := New(Params{Start: monday, NumDays: 2, MinTime: 9, MaxTime: 11})
	if err != nil {
		t.Fatal(err)
	}

	if g.Days() != 2 || g.Hours() != 3 {
		t.Fatalf("expected 2x3 grid, got %dx%d", g.Days(), g.Hours())
	}

	want := []time.Time{
		at(0, 9), at(0, 10), at(0, 11),
		at(1, 9), at(1, 10), at(1, 11),
	}

	if diff := cmp.Diff(want, g.Flatten()); diff != "" {
		t.Fatalf("flattened grid mismatch (-want +got):\n%s", diff)
	}
}

func TestNewInvalidParams(t *testing.T) {
	cases := []Params{
		{Start: monday, NumDays: 0, MinTime: 9, MaxTime: 11},
		{Start: monday, NumDays: 1, MinTime: 12, MaxTime: 11},
		{Start: monday, NumDays: 1, MinTime: -1, MaxTime: 11},
		{Start: monday, NumDays: 1, MinTime: 0, MaxTime: 24},
	}

	for _, p := range cases {
		if _, err := New(p); !errors.Is(err, apperr.ErrInvalidArgument) {
			t.Errorf("%+v: expected invalid argument, got %v", p, err)
		}
	}
}

func TestLocate(t *testing.T) {
	g, err := New(Params{Start: monday, NumDays: 2, MinTime: 9, MaxTime: 11})
	if err != nil {
		t.Fatal(err)
	}

	pos, ok := g.Locate(at(1, 10).Add(30 * time.Second))
	if !ok {
		t.Fatal("expected time to be found at minute resolution")
	}

	if pos != (Position{Day: 1, Hour: 1}) {
		t.Fatalf("unexpected position %+v", pos)
	}

	if g.FlatIndex(pos) != 4 {
		t.Fatalf("expected flat index 4, got %d", g.FlatIndex(pos))
	}

	if _, ok := g.Locate(at(0, 12)); ok {
		t.Fatal("expected time outside the hour range to be missing")
	}

	if _, ok := g.At(Position{Day: 2}); ok {
		t.Fatal("expected out of range position to be missing")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string][][]time.Time{
		"empty":     {},
		"no hours":  {{}, {}},
		"ragged":    {{at(0, 9), at(0, 10)}, {at(1, 9)}},
		"unordered": {{at(0, 10), at(0, 9)}},
		"overlap":   {{at(0, 9), at(0, 10)}, {at(0, 10), at(0, 11)}},
	}

	for name, days := range cases {
		if err := FromDays(days).Validate(); !errors.Is(err, apperr.ErrInvalidArgument) {
			t.Errorf("%s: expected invalid argument, got %v", name, err)
		}
	}

	if err := FromDays([][]time.Time{{at(0, 9)}}).Validate(); err != nil {
		t.Errorf("expected single slot grid to be valid, got %v", err)
	}
}

func loadLocation(t *testing.T, name string) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("time zone data unavailable: %v", err)
	}

	return loc
}

func TestNewAcrossSpringForward(t *testing.T) {
	ny := loadLocation(t, "America/New_York")

	// clocks jump from 02:00 to 03:00 on 2026-03-08
	start := time.Date(2026, 3, 7, 12, 0, 0, 0, ny)

	g, err := New(Params{Start: start, NumDays: 3, MinTime: 0, MaxTime: 23})
	if err != nil {
		t.Fatal(err)
	}

	if g.Days() != 3 || g.Hours() != 24 {
		t.Fatalf("expected 3x24 grid, got %dx%d", g.Days(), g.Hours())
	}

	for h, want := range map[int]int{0: 0, 1: 1, 2: 3, 3: 4} {
		got, _ := g.At(Position{Day: 1, Hour: h})
		if got.Hour() != want {
			t.Errorf("day 1 row %d: expected %02d:00, got %s", h, want, got.Format("15:04 MST"))
		}
	}

	first, _ := g.At(Position{Day: 0, Hour: 0})
	if first.Location() != ny || first.Hour() != 0 || first.Day() != 7 {
		t.Fatalf("expected grid to start at local midnight, got %s", first)
	}
}

func TestNewWorkingHoursAcrossSpringForward(t *testing.T) {
	ny := loadLocation(t, "America/New_York")

	start := time.Date(2026, 3, 7, 0, 0, 0, 0, ny)

	g, err := New(Params{Start: start, NumDays: 2, MinTime: 9, MaxTime: 17})
	if err != nil {
		t.Fatal(err)
	}

	for d := range g.Days() {
		for h := range g.Hours() {
			got, _ := g.At(Position{Day: d, Hour: h})
			if got.Hour() != 9+h {
				t.Errorf("day %d row %d: expected %02d:00, got %s", d, h, 9+h, got.Format("15:04 MST"))
			}
		}
	}

	sat, _ := g.At(Position{Day: 0})
	sun, _ := g.At(Position{Day: 1})

	if sun.Sub(sat) != 23*time.Hour {
		t.Fatalf("expected 23 elapsed hours between 9am rows, got %s", sun.Sub(sat))
	}
}

func TestNewAcrossFallBack(t *testing.T) {
	ny := loadLocation(t, "America/New_York")

	// clocks fall back from 02:00 to 01:00 on 2026-11-01
	start := time.Date(2026, 10, 31, 0, 0, 0, 0, ny)

	g, err := New(Params{Start: start, NumDays: 2, MinTime: 0, MaxTime: 23})
	if err != nil {
		t.Fatal(err)
	}

	for h := range g.Hours() {
		got, _ := g.At(Position{Day: 1, Hour: h})
		if got.Hour() != h {
			t.Errorf("row %d: expected %02d:00, got %s", h, h, got.Format("15:04 MST"))
		}
	}
}
