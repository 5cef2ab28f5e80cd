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

package testcases

import (
	"math"
	"testing"
)

func TestCircle(t *testing.T) {
	pins := Circle(8, 10, 10, 5)
	if len(pins) != 8 {
		t.Fatalf("%d pins", len(pins))
	}
	for i, p := range pins {
		if r := math.Hypot(p.X-10, p.Y-10); math.Abs(r-5) > 1e-12 {
			t.Errorf("pin %d at distance %g", i, r)
		}
	}
	if pins[0] != pt(15, 10) {
		t.Errorf("first pin %v", pins[0])
	}
	// counter-clockwise on screen: the second pin is above the first
	if pins[1].Y >= pins[0].Y {
		t.Errorf("second pin %v", pins[1])
	}
}

func TestRectangle(t *testing.T) {
	pins := Rectangle(12, 0, 0, 4, 2)
	for i, p := range pins {
		onX := p.X == 0 || p.X == 4
		onY := p.Y == 0 || p.Y == 2
		if !onX && !onY || p.X < 0 || p.X > 4 || p.Y < 0 || p.Y > 2 {
			t.Errorf("pin %d %v not on the boundary", i, p)
		}
	}
	if pins[0] != pt(0, 0) || pins[4] != pt(4, 0) || pins[6] != pt(4, 2) || pins[10] != pt(0, 2) {
		t.Errorf("corners %v %v %v %v", pins[0], pins[4], pins[6], pins[10])
	}
}

func TestGridAndFlip(t *testing.T) {
	pins := Grid(3, 2, 1, 1, 5, 9)
	want := []float64{1, 3, 5, 1, 3, 5}
	for i, p := range pins {
		if p.X != want[i] {
			t.Errorf("pin %d: x = %g", i, p.X)
		}
	}
	flipped := FlipY(pins, 10)
	if flipped[0] != pt(1, 8) || flipped[5] != pt(5, 0) {
		t.Errorf("flipped %v", flipped)
	}
	back := FlipY(flipped, 10)
	for i := range pins {
		if back[i] != pins[i] {
			t.Errorf("pin %d: %v != %v", i, back[i], pins[i])
		}
	}
}
