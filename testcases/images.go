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
	"image"
	"image/color"
	"math"
)

// Uniform returns a width×height image of a single gray level.
func Uniform(width, height int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// Gradient returns an image which is white at the left edge and black at
// the right edge.
func Gradient(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			v := 255 - 255*x/max(width-1, 1)
			img.SetGray(x, y, color.Gray{Y: uint8(v)})
		}
	}
	return img
}

// Disc returns a white image with a black disc of the given radius in
// its centre.
func Disc(width, height int, radius float64) *image.Gray {
	img := Uniform(width, height, 255)
	cx := float64(width-1) / 2
	cy := float64(height-1) / 2
	for y := range height {
		for x := range width {
			if math.Hypot(float64(x)-cx, float64(y)-cy) <= radius {
				img.SetGray(x, y, color.Gray{})
			}
		}
	}
	return img
}

// Cross returns a white RGBA image with a dark red horizontal bar and a
// dark blue vertical bar of the given thickness through the centre.
func Cross(width, height, thickness int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			c := color.RGBA{255, 255, 255, 255}
			if abs(2*y-height) < thickness {
				c = color.RGBA{80, 0, 0, 255}
			}
			if abs(2*x-width) < thickness {
				c = color.RGBA{0, 0, 80, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
