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
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// rowPins returns a pin set whose raster coordinates equal pts.
func rowPins(t *testing.T, pts ...vec.Vec2) *PinSet {
	t.Helper()
	ps, err := NewPinSet(pts, rect.Rect{URx: 1000, URy: 1000}, 1.05)
	if err != nil {
		t.Fatal(err)
	}
	if ps.Len() != len(pts) {
		t.Fatalf("got %d pins, want %d", ps.Len(), len(pts))
	}
	return ps
}

func TestChordDarknessUniform(t *testing.T) {
	r := NewRaster(10, 10, 0)
	ps := rowPins(t, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 9, Y: 0}, vec.Vec2{X: 9, Y: 9})

	// 8 interior samples on the edge, 11 on the diagonal
	if got := chordDarkness(r.View(), ps, 0, 1, Sum); got != 8*255 {
		t.Errorf("edge sum = %d, want %d", got, 8*255)
	}
	if got := chordDarkness(r.View(), ps, 0, 2, Sum); got != 11*255 {
		t.Errorf("diagonal sum = %d, want %d", got, 11*255)
	}
	if got := chordDarkness(r.View(), ps, 2, 0, Mean); got != 255 {
		t.Errorf("diagonal mean = %d, want 255", got)
	}
}

func TestChordDarknessMeanTruncates(t *testing.T) {
	r := NewRaster(5, 1, 255)
	copy(r.Pix, []uint8{255, 0, 255, 254, 255})
	ps := rowPins(t, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 4, Y: 0})

	// samples at x = 1, 2, 3 have darkness 255, 0, 1
	if got := chordDarkness(r.View(), ps, 0, 1, Sum); got != 256 {
		t.Errorf("sum = %d, want 256", got)
	}
	if got := chordDarkness(r.View(), ps, 0, 1, Mean); got != 85 {
		t.Errorf("mean = %d, want 85", got)
	}
}

func TestChordDarknessDegenerate(t *testing.T) {
	r := NewRaster(4, 4, 0)
	ps := rowPins(t, vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1.5, Y: 0}, vec.Vec2{X: 1.5, Y: 1.99})

	for _, agg := range []Aggregation{Mean, Sum} {
		if got := chordDarkness(r.View(), ps, 0, 1, agg); got != 0 {
			t.Errorf("%s: short chord scored %d", agg, got)
		}
		if got := chordDarkness(r.View(), ps, 1, 2, agg); got != 0 {
			t.Errorf("%s: chord with d < 2 scored %d", agg, got)
		}
	}
}

func TestGrayAtClamps(t *testing.T) {
	r := NewRaster(3, 2, 0)
	copy(r.Pix, []uint8{
		1, 2, 3,
		4, 5, 6,
	})
	v := r.View()

	tests := []struct {
		x, y int
		want uint8
	}{
		{0, 0, 1},
		{2, 1, 6},
		{-5, 0, 1},
		{-1, 7, 4},
		{3, 0, 3},
		{100, -100, 3},
		{1, 2, 5},
	}
	for _, test := range tests {
		if got := v.GrayAt(test.x, test.y); got != test.want {
			t.Errorf("GrayAt(%d, %d) = %d, want %d", test.x, test.y, got, test.want)
		}
	}

	if w, h := v.Size(); w != 3 || h != 2 {
		t.Errorf("Size() = %d, %d", w, h)
	}
}
