// Package testutil holds helpers shared by avail's tests
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/avail/internal/osutil"
)

// GoldenTest produces the output compared against testdata/<name>.golden.
// A nil output asserts that no golden file exists for name.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile verifies that the output of tc matches its golden file.
// Run the tests with -update to rewrite the files.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		// TODO: golden files are written with LF line endings
		t.Skip("skipping golden file test in Windows")
	}

	snap, name := tc.Output()

	if snap == nil {
		f := filepath.Join("testdata", name+".golden")
		if _, err := os.Stat(f); err == nil || errors.Is(err, os.ErrExist) {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g := goldie.New(
		t,
		goldie.WithFixtureDir("testdata"),
	)

	g.Assert(t, name, snap)
}

// WriteFile creates the file at path with content, failing the test on
// error. Missing parent directories are created.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), osutil.FilePermission); err != nil {
		t.Fatal(err)
	}
}
