package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/avail/internal/config"
	"github.com/ayoisaiah/avail/internal/export"
	"github.com/ayoisaiah/avail/internal/grid"
	"github.com/ayoisaiah/avail/internal/pathutil"
	"github.com/ayoisaiah/avail/internal/selection"
	"github.com/ayoisaiah/avail/internal/testutil"
)

const testConfig = `grid:
  start: "2026-10-19"
  num_days: 2
  min_time: 9
  max_time: 11
`

// setupPaths points the XDG directories at a temporary directory and
// writes a config file there so that no prompt is shown.
func setupPaths(t *testing.T) {
	t.Helper()

	dir := t.TempDir()

	t.Cleanup(xdg.Reload)

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	xdg.Reload()

	if err := pathutil.Initialize(); err != nil {
		t.Fatal(err)
	}

	testutil.WriteFile(t, pathutil.ConfigFilePath(), testConfig)
}

func TestResolveCommand(t *testing.T) {
	setupPaths(t)

	t.Run("square", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "region.json")

		err := Get().Run([]string{
			"avail", "resolve",
			"--from", "2026-10-20 10:00",
			"--to", "2026-10-19 09:00",
			"--format", "json",
			"--output", out,
		})
		if err != nil {
			t.Fatal(err)
		}

		slots, err := export.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}

		if len(slots) != 4 {
			t.Fatalf("expected 4 slots, got %d: %v", len(slots), slots)
		}

		for _, s := range slots {
			if s.Hour() < 9 || s.Hour() > 10 || s.Day() < 19 || s.Day() > 20 {
				t.Fatalf("unexpected slot %v", s)
			}
		}
	})

	t.Run("linear", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "region.json")

		err := Get().Run([]string{
			"avail", "resolve",
			"--scheme", "linear",
			"--from", "2026-10-19 11:00",
			"--to", "2026-10-20 09:00",
			"--format", "json",
			"--output", out,
		})
		if err != nil {
			t.Fatal(err)
		}

		slots, err := export.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}

		if len(slots) != 2 {
			t.Fatalf("expected the run to wrap across days, got %v", slots)
		}
	})

	t.Run("outside grid", func(t *testing.T) {
		err := Get().Run([]string{
			"avail", "resolve",
			"--from", "2026-10-25 09:00",
			"--format", "json",
			"--output", filepath.Join(t.TempDir(), "region.json"),
		})
		if err == nil || !strings.Contains(err.Error(), "invalid argument") {
			t.Fatalf("expected an invalid argument error, got %v", err)
		}
	})
}

func TestInitialSelection(t *testing.T) {
	g, err := grid.New(grid.Params{
		Start:   slot(0, 0),
		NumDays: 2,
		MinTime: 9,
		MaxTime: 11,
	})
	if err != nil {
		t.Fatal(err)
	}

	input := filepath.Join(t.TempDir(), "previous.json")

	f, err := os.Create(input)
	if err != nil {
		t.Fatal(err)
	}

	err = export.Write(f, []time.Time{slot(0, 9), slot(1, 11), slot(3, 9)}, export.Options{
		Format: export.FormatJSON,
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{}
	cfg.Runtime.Input = input

	got, err := initialSelection(cfg, g)
	if err != nil {
		t.Fatal(err)
	}

	want := selection.NewSet(slot(0, 9), slot(1, 11))
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want.Times(), got.Times())
	}

	cfg.Runtime.Input = ""

	got, err = initialSelection(cfg, g)
	if err != nil {
		t.Fatal(err)
	}

	if got.Len() != 0 {
		t.Fatalf("expected an empty selection without input, got %d slots", got.Len())
	}
}
