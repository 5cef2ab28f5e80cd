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
	"image"

	"golang.org/x/image/draw"
)

// View gives read-only access to a grayscale raster.
// Coordinates outside the bounds are clamped to the nearest edge pixel.
type View interface {
	// Size returns the width and height of the raster.
	Size() (width, height int)

	// GrayAt returns the 8-bit intensity at (x, y), 0 being black.
	GrayAt(x, y int) uint8
}

// Raster is a mutable 8-bit grayscale buffer in row-major order.
type Raster struct {
	Pix    []uint8
	Stride int
	Width  int
	Height int
}

// NewRaster allocates a raster filled with the intensity v.
func NewRaster(width, height int, v uint8) *Raster {
	r := &Raster{
		Pix:    make([]uint8, width*height),
		Stride: width,
		Width:  width,
		Height: height,
	}
	if v != 0 {
		for i := range r.Pix {
			r.Pix[i] = v
		}
	}
	return r
}

// RasterFromImage converts the region crop of src to luminance.
// The crop rectangle is given in the coordinates of src. Pixels of crop
// which are outside the bounds of src are white.
func RasterFromImage(src image.Image, crop image.Rectangle) *Raster {
	r := NewRaster(crop.Dx(), crop.Dy(), 255)
	dst := &image.Gray{Pix: r.Pix, Stride: r.Stride, Rect: image.Rect(0, 0, r.Width, r.Height)}
	draw.Draw(dst, dst.Rect, src, crop.Min, draw.Src)
	return r
}

// Size implements [View].
func (r *Raster) Size() (int, int) {
	return r.Width, r.Height
}

// GrayAt implements [View].
func (r *Raster) GrayAt(x, y int) uint8 {
	x = min(max(x, 0), r.Width-1)
	y = min(max(y, 0), r.Height-1)
	return r.Pix[y*r.Stride+x]
}

// View returns a read-only view of r.
func (r *Raster) View() View {
	return rasterView{r}
}

// Image returns a copy of r as an [image.Gray].
func (r *Raster) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, r.Width, r.Height))
	for y := range r.Height {
		copy(img.Pix[y*img.Stride:y*img.Stride+r.Width], r.Pix[y*r.Stride:])
	}
	return img
}

// Clone returns a deep copy of r.
func (r *Raster) Clone() *Raster {
	c := *r
	c.Pix = append([]uint8(nil), r.Pix...)
	return &c
}

// rasterView hides the mutable fields of a Raster from the scoring
// workers.
type rasterView struct {
	r *Raster
}

func (v rasterView) Size() (int, int)      { return v.r.Width, v.r.Height }
func (v rasterView) GrayAt(x, y int) uint8 { return v.r.GrayAt(x, y) }

// darkness converts an intensity to darkness: black is 255, white is 0.
func darkness(v uint8) int {
	return 255 - int(v)
}
