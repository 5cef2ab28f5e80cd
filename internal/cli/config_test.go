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
	"io"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/export"
	"seehuhn.de/go/stringart/testcases"
)

func TestLoadConfig(t *testing.T) {
	const doc = `
line_cap = "round"
max_size = 300

[pins]
layout = "grid"
cols = 4
rows = 3

[params]
line_budget = 123
aggregation = "sum"

[output]
pdf = true
`
	fileName := filepath.Join(t.TempDir(), "stringart.toml")
	if err := os.WriteFile(fileName, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxSize != 300 || cfg.Pins.Layout != layoutGrid || cfg.Pins.Cols != 4 || cfg.Pins.Rows != 3 {
		t.Errorf("config %+v", cfg)
	}
	if !cfg.Output.PDF || !cfg.Output.JSON {
		t.Errorf("output %+v", cfg.Output)
	}

	p, err := cfg.params()
	if err != nil {
		t.Fatal(err)
	}
	if p.LineBudget != 123 || p.Aggregation != stringart.Sum || p.LineCap != graphics.LineCapRound {
		t.Errorf("params %+v", p)
	}
	if p.LineWeight != stringart.DefaultParams().LineWeight {
		t.Errorf("default line weight lost: %d", p.LineWeight)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}

	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[params\nline_budget = 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(bad); err == nil {
		t.Error("malformed file accepted")
	}

	cfg := DefaultConfig()
	cfg.LineCap = "pointy"
	if _, err := cfg.params(); err == nil {
		t.Error("unknown line cap accepted")
	}
}

func TestPinLayout(t *testing.T) {
	tests := []struct {
		cfg  PinsConfig
		want int
	}{
		{PinsConfig{Layout: layoutCircle, Count: 30}, 30},
		{PinsConfig{Layout: layoutRectangle, Count: 50, Margin: 2}, 50},
		{PinsConfig{Layout: layoutGrid, Cols: 3, Rows: 4}, 12},
	}
	for _, test := range tests {
		t.Run(test.cfg.Layout, func(t *testing.T) {
			pins, yUp, err := pinLayout(&test.cfg, 64, 48)
			if err != nil {
				t.Fatal(err)
			}
			if len(pins) != test.want || yUp {
				t.Fatalf("%d pins, yUp=%t", len(pins), yUp)
			}
			for _, p := range pins {
				if p.X < test.cfg.Margin || p.X > 63-test.cfg.Margin || p.Y < test.cfg.Margin || p.Y > 47-test.cfg.Margin {
					t.Errorf("pin %v outside the image", p)
				}
			}
		})
	}

	for _, cfg := range []PinsConfig{
		{Layout: "spiral", Count: 10},
		{Layout: layoutCircle},
		{Layout: layoutGrid, Cols: 0, Rows: 2},
		{Layout: layoutCircle, Count: 10, Margin: 40},
	} {
		if _, _, err := pinLayout(&cfg, 64, 48); err == nil {
			t.Errorf("%+v accepted", cfg)
		}
	}
}

func TestPinLayoutFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "pins.json")
	l := export.NewLayout(32, 32, testcases.Circle(16, 15.5, 15.5, 15))
	l.YUp = true
	if err := writeFile(fileName, func(w io.Writer) error { return export.WriteLayout(w, l) }); err != nil {
		t.Fatal(err)
	}

	cfg := PinsConfig{Layout: layoutFile, File: fileName}
	pins, yUp, err := pinLayout(&cfg, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	if len(pins) != 16 || !yUp {
		t.Errorf("%d pins, yUp=%t", len(pins), yUp)
	}

	if _, _, err := pinLayout(&cfg, 64, 32); err == nil {
		t.Error("layout for a different image size accepted")
	}
}
