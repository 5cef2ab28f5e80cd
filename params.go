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

package stringart

import (
	"fmt"
	"math"
	"runtime"

	"seehuhn.de/go/pdf/graphics"
)

// Aggregation selects how the darkness samples along a chord are combined
// into a single score.
type Aggregation int

const (
	// Mean uses the (truncated) average darkness, which favours chords
	// through uniformly dark regions regardless of their length.
	Mean Aggregation = iota

	// Sum uses the total darkness, which favours long chords.
	Sum
)

func (a Aggregation) String() string {
	switch a {
	case Mean:
		return "mean"
	case Sum:
		return "sum"
	default:
		return fmt.Sprintf("Aggregation(%d)", int(a))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (a Aggregation) MarshalText() ([]byte, error) {
	if a != Mean && a != Sum {
		return nil, fmt.Errorf("invalid aggregation %d", int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// Besides "mean" and "sum", "average" is accepted as an alias for Mean.
func (a *Aggregation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "mean", "average":
		*a = Mean
	case "sum":
		*a = Sum
	default:
		return fmt.Errorf("unknown aggregation %q", text)
	}
	return nil
}

// Params holds the run parameters of a session. The zero value is not
// useful; start from [DefaultParams].
type Params struct {
	// LineBudget is the maximal length of the pin path, including the
	// seed pin.
	LineBudget int `toml:"line_budget"`

	// LineWidth is the thread width in pixels.
	LineWidth float64 `toml:"line_width"`

	// LineWeight is the darkness, 0-255, one fully covered pixel of
	// thread explains.
	LineWeight int `toml:"line_weight"`

	// LineCap is the cap style used when drawing a chord.
	LineCap graphics.LineCapStyle `toml:"-"`

	// SkipLatest excludes this many of the most recently visited pins.
	// Values below 1 are treated as 1.
	SkipLatest int `toml:"skip_latest"`

	// SkipNeighbors excludes candidates whose index differs from the
	// current pin's index by less than this value.
	SkipNeighbors int `toml:"skip_neighbors"`

	Aggregation Aggregation `toml:"aggregation"`

	// Iterations is the number of steps performed per batch.
	Iterations int `toml:"iterations"`

	// MinSeparation is the deduplication tolerance for pins.
	MinSeparation float64 `toml:"min_separation"`

	// SeedPin is the index of the first pin of the path.
	SeedPin int `toml:"seed_pin"`

	// Workers bounds the number of goroutines scoring candidates.
	// Zero means GOMAXPROCS.
	Workers int `toml:"workers"`

	// YUp indicates that pin coordinates use a bottom-left origin with
	// the y axis pointing up. Otherwise they are image pixel coordinates.
	YUp bool `toml:"y_up"`
}

// DefaultParams returns the default run parameters.
func DefaultParams() Params {
	return Params{
		LineBudget:    2000,
		LineWidth:     1.0,
		LineWeight:    50,
		LineCap:       graphics.LineCapButt,
		SkipLatest:    3,
		SkipNeighbors: 20,
		Aggregation:   Mean,
		Iterations:    10,
		MinSeparation: 1.05,
	}
}

// Validate checks that p can be used to initialise a session.
func (p *Params) Validate() error {
	switch {
	case p.LineBudget < 1:
		return fmt.Errorf("%w: line budget %d < 1", ErrInvalidInput, p.LineBudget)
	case !(p.LineWidth > 0) || math.IsInf(p.LineWidth, 0):
		return fmt.Errorf("%w: line width %g", ErrInvalidInput, p.LineWidth)
	case p.LineWeight < 0 || p.LineWeight > 255:
		return fmt.Errorf("%w: line weight %d not in [0, 255]", ErrInvalidInput, p.LineWeight)
	case p.LineCap != graphics.LineCapButt && p.LineCap != graphics.LineCapRound && p.LineCap != graphics.LineCapSquare:
		return fmt.Errorf("%w: line cap %d", ErrInvalidInput, p.LineCap)
	case p.SkipNeighbors < 0:
		return fmt.Errorf("%w: skip neighbours %d < 0", ErrInvalidInput, p.SkipNeighbors)
	case p.Aggregation != Mean && p.Aggregation != Sum:
		return fmt.Errorf("%w: aggregation %d", ErrInvalidInput, int(p.Aggregation))
	case p.Iterations < 1:
		return fmt.Errorf("%w: %d iterations per batch", ErrInvalidInput, p.Iterations)
	case p.MinSeparation < 0:
		return fmt.Errorf("%w: negative minimum separation", ErrInvalidInput)
	case p.SeedPin < 0:
		return fmt.Errorf("%w: seed pin %d", ErrInvalidInput, p.SeedPin)
	case p.Workers < 0:
		return fmt.Errorf("%w: %d workers", ErrInvalidInput, p.Workers)
	}
	return nil
}

func (p *Params) workers() int {
	if p.Workers > 0 {
		return p.Workers
	}
	return runtime.GOMAXPROCS(0)
}
