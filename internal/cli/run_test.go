// seehuhn.de/go/stringart - thread patterns from raster images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/testcases"
)

// writeTestImage writes a PNG file with a dark disc and returns its name.
func writeTestImage(t *testing.T, dir string, size int) string {
	t.Helper()
	fileName := filepath.Join(dir, "disc.png")
	f, err := os.Create(fileName)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, testcases.Disc(size, size, float64(size)/4)); err != nil {
		t.Fatal(err)
	}
	return fileName
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	t.Cleanup(func() { stringart.SetLogger(nil) })

	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRunCommand(t *testing.T) {
	dir := t.TempDir()
	img := writeTestImage(t, dir, 64)
	out := filepath.Join(dir, "out")

	stdout, stderr, err := execute(t, "run", img,
		"--count", "40", "--budget", "30", "--cap", "round",
		"--pdf", "--preview", "--labels", "-o", out)
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"disc.json", "disc-threads.png", "disc-preview.png", "disc.pdf"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Error(err)
		}
		if !strings.Contains(stdout, name) {
			t.Errorf("%s not reported:\n%s", name, stdout)
		}
	}
	if !strings.Contains(stdout, "line budget reached") {
		t.Errorf("summary lacks the stop reason:\n%s", stdout)
	}
	if !strings.Contains(stderr, "session reset") || !strings.Contains(stderr, "Drew") {
		t.Errorf("log output:\n%s", stderr)
	}
}

func TestRunCommandScaled(t *testing.T) {
	dir := t.TempDir()
	img := writeTestImage(t, dir, 120)

	_, _, err := execute(t, "run", img, "--max-size", "40", "--budget", "5", "-o", dir)
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(filepath.Join(dir, "disc-threads.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width > 40 || cfg.Height > 40 {
		t.Errorf("output %dx%d exceeds the size limit", cfg.Width, cfg.Height)
	}
}

func TestRunCommandErrors(t *testing.T) {
	dir := t.TempDir()
	img := writeTestImage(t, dir, 32)

	tests := [][]string{
		{"run"},
		{"run", filepath.Join(dir, "missing.png")},
		{"run", img, "--cap", "pointy"},
		{"run", img, "--aggregation", "median"},
		{"run", img, "--budget", "0"},
		{"run", img, "--pins", filepath.Join(dir, "missing.json")},
	}
	for _, args := range tests {
		if _, _, err := execute(t, args...); err == nil {
			t.Errorf("%v: no error", args)
		}
	}
}

func TestPinsCommand(t *testing.T) {
	dir := t.TempDir()
	layout := filepath.Join(dir, "pins.json")
	if _, _, err := execute(t, "pins", "--width", "50", "--height", "40",
		"--layout", "rectangle", "--count", "24", "--y-up", "-o", layout); err != nil {
		t.Fatal(err)
	}

	// A layout written by "pins" can be used by "run".
	img := filepath.Join(dir, "gradient.png")
	f, err := os.Create(img)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, testcases.Gradient(50, 40)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	stdout, _, err := execute(t, "run", img, "--pins", layout, "--budget", "10", "-o", dir)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, "24") {
		t.Errorf("pin count not reported:\n%s", stdout)
	}

	stdout, _, err = execute(t, "pins", "--width", "10", "--height", "10", "--layout", "grid")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout, `"pins"`) {
		t.Errorf("layout not written to stdout:\n%s", stdout)
	}

	if _, _, err := execute(t, "pins"); err == nil {
		t.Error("pins without a size accepted")
	}
}
