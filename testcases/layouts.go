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

	"seehuhn.de/go/geom/vec"
)

// Circle returns n pins evenly spaced on a circle, counter-clockwise in
// image coordinates starting at the rightmost point.
func Circle(n int, cx, cy, radius float64) []vec.Vec2 {
	pins := make([]vec.Vec2, n)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pins[i] = pt(cx+radius*math.Cos(phi), cy-radius*math.Sin(phi))
	}
	return pins
}

// Rectangle returns n pins evenly spaced along the boundary of the
// rectangle [x0, x1]×[y0, y1], clockwise in image coordinates starting at
// the top-left corner.
func Rectangle(n int, x0, y0, x1, y1 float64) []vec.Vec2 {
	w := x1 - x0
	h := y1 - y0
	perimeter := 2 * (w + h)

	pins := make([]vec.Vec2, n)
	for i := range n {
		s := perimeter * float64(i) / float64(n)
		switch {
		case s < w:
			pins[i] = pt(x0+s, y0)
		case s < w+h:
			pins[i] = pt(x1, y0+s-w)
		case s < 2*w+h:
			pins[i] = pt(x1-(s-w-h), y1)
		default:
			pins[i] = pt(x0, y1-(s-2*w-h))
		}
	}
	return pins
}

// Corners returns the four corners of a width×height image, clockwise
// from the top-left.
func Corners(width, height int) []vec.Vec2 {
	x1 := float64(width - 1)
	y1 := float64(height - 1)
	return []vec.Vec2{pt(0, 0), pt(x1, 0), pt(x1, y1), pt(0, y1)}
}

// Grid returns nx×ny pins on a regular grid covering [x0, x1]×[y0, y1],
// row by row.
func Grid(nx, ny int, x0, y0, x1, y1 float64) []vec.Vec2 {
	pins := make([]vec.Vec2, 0, nx*ny)
	for j := range ny {
		y := y0
		if ny > 1 {
			y += (y1 - y0) * float64(j) / float64(ny-1)
		}
		for i := range nx {
			x := x0
			if nx > 1 {
				x += (x1 - x0) * float64(i) / float64(nx-1)
			}
			pins = append(pins, pt(x, y))
		}
	}
	return pins
}

// FlipY converts pins between top-left and bottom-left origin for an
// image of the given height.
func FlipY(pins []vec.Vec2, height int) []vec.Vec2 {
	res := make([]vec.Vec2, len(pins))
	for i, p := range pins {
		res[i] = pt(p.X, float64(height-1)-p.Y)
	}
	return res
}
