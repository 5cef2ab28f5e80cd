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
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/stringart"
	"seehuhn.de/go/stringart/export"
	"seehuhn.de/go/stringart/testcases"
)

// Pin layouts known to the "pins" and "run" commands.
const (
	layoutCircle    = "circle"
	layoutRectangle = "rectangle"
	layoutGrid      = "grid"
	layoutFile      = "file"
)

// Config is the content of a configuration file:
//
//	line_cap = "round"
//	max_size = 600
//
//	[pins]
//	layout = "circle"
//	count = 240
//
//	[params]
//	line_budget = 3000
//	aggregation = "sum"
//
//	[output]
//	dir = "out"
//	pdf = true
//
// Command line flags take precedence over values from the file.
type Config struct {
	// LineCap is one of "butt", "round" or "square".
	LineCap string `toml:"line_cap"`

	// MaxSize limits the larger side of the source image; larger images
	// are scaled down. Zero keeps the original size.
	MaxSize int `toml:"max_size"`

	Pins   PinsConfig       `toml:"pins"`
	Params stringart.Params `toml:"params"`
	Output OutputConfig     `toml:"output"`
}

// PinsConfig describes where the pins are placed.
type PinsConfig struct {
	Layout string  `toml:"layout"` // circle, rectangle, grid or file
	Count  int     `toml:"count"`  // number of pins for circle and rectangle
	Cols   int     `toml:"cols"`   // grid columns
	Rows   int     `toml:"rows"`   // grid rows
	Margin float64 `toml:"margin"` // distance from the image border, in pixels
	File   string  `toml:"file"`   // layout file written by "stringart pins"
}

// OutputConfig selects the files written after a run.
type OutputConfig struct {
	Dir           string  `toml:"dir"`
	JSON          bool    `toml:"json"`
	PDF           bool    `toml:"pdf"`
	PNG           bool    `toml:"png"`
	Preview       bool    `toml:"preview"`
	PreviewScale  float64 `toml:"preview_scale"`
	PreviewLabels bool    `toml:"preview_labels"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		LineCap: "butt",
		Pins: PinsConfig{
			Layout: layoutCircle,
			Count:  200,
			Cols:   10,
			Rows:   10,
		},
		Params: stringart.DefaultParams(),
		Output: OutputConfig{
			Dir:          ".",
			JSON:         true,
			PNG:          true,
			PreviewScale: 4,
		},
	}
}

// LoadConfig reads a TOML configuration file. Keys missing from the file
// keep their default values.
func LoadConfig(fileName string) (*Config, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return cfg, nil
}

// params returns the run parameters, including the line cap.
func (c *Config) params() (stringart.Params, error) {
	p := c.Params
	lineCap, err := parseLineCap(c.LineCap)
	if err != nil {
		return p, err
	}
	p.LineCap = lineCap
	return p, p.Validate()
}

func parseLineCap(s string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(s) {
	case "", "butt":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	default:
		return 0, fmt.Errorf("unknown line cap %q (want butt, round or square)", s)
	}
}

// pinLayout places pins for an image of the given size, in image pixel
// coordinates with y pointing down. For file layouts, the second return
// value reports whether the file uses a bottom-left origin.
func pinLayout(cfg *PinsConfig, width, height int) ([]vec.Vec2, bool, error) {
	x0, y0 := cfg.Margin, cfg.Margin
	x1 := float64(width-1) - cfg.Margin
	y1 := float64(height-1) - cfg.Margin
	if cfg.Layout != layoutFile && (x1 < x0 || y1 < y0) {
		return nil, false, fmt.Errorf("margin %g too large for a %dx%d image", cfg.Margin, width, height)
	}

	switch cfg.Layout {
	case layoutCircle:
		if cfg.Count < 1 {
			return nil, false, fmt.Errorf("invalid pin count %d", cfg.Count)
		}
		r := min(x1-x0, y1-y0) / 2
		return testcases.Circle(cfg.Count, (x0+x1)/2, (y0+y1)/2, r), false, nil
	case layoutRectangle:
		if cfg.Count < 1 {
			return nil, false, fmt.Errorf("invalid pin count %d", cfg.Count)
		}
		return testcases.Rectangle(cfg.Count, x0, y0, x1, y1), false, nil
	case layoutGrid:
		if cfg.Cols < 1 || cfg.Rows < 1 {
			return nil, false, fmt.Errorf("invalid grid %dx%d", cfg.Cols, cfg.Rows)
		}
		return testcases.Grid(cfg.Cols, cfg.Rows, x0, y0, x1, y1), false, nil
	case layoutFile:
		f, err := os.Open(cfg.File)
		if err != nil {
			return nil, false, err
		}
		defer f.Close()
		l, err := export.ReadLayout(f)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", cfg.File, err)
		}
		if l.Width != 0 && (l.Width != width || l.Height != height) {
			return nil, false, fmt.Errorf("%s: layout for a %dx%d image, not %dx%d",
				cfg.File, l.Width, l.Height, width, height)
		}
		return l.Points(), l.YUp, nil
	default:
		return nil, false, fmt.Errorf("unknown pin layout %q", cfg.Layout)
	}
}
