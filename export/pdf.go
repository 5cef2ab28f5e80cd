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

package export

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/stringart"
)

// PDFOptions controls the appearance of [WritePDF] output.
// A nil *PDFOptions uses the defaults.
type PDFOptions struct {
	// Scale is the size of one raster pixel in PDF points.
	// The default is 1.
	Scale float64

	// PinRadius is the radius of the pin markers in pixels.
	// Zero omits the markers.
	PinRadius float64
}

// WritePDF writes the thread pattern of s to a single page PDF file.
// The page covers the cropped raster of the session, one pixel per
// point unless opt says otherwise.
func WritePDF(fileName string, s *stringart.Session, opt *PDFOptions) error {
	pins := s.Pins()
	if pins == nil {
		return fmt.Errorf("%w: session not initialized", stringart.ErrInvalidInput)
	}
	scale := 1.0
	var pinRadius float64
	if opt != nil {
		if opt.Scale > 0 {
			scale = opt.Scale
		}
		pinRadius = opt.PinRadius
	}

	crop := s.Crop()
	w := float64(crop.Dx())
	h := float64(crop.Dy())
	paper := &pdf.Rectangle{URx: w * scale, URy: h * scale}

	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The raster has its origin at the top-left corner.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, h * scale})

	p := s.Params()
	page.SetFillColor(color.DeviceGray(1))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	page.SetStrokeColor(color.DeviceGray(threadGray(p.LineWeight)))
	page.SetLineWidth(p.LineWidth)
	page.SetLineCap(p.LineCap)
	page.SetLineJoin(graphics.LineJoinRound)
	path := s.Path()
	for i := 1; i < len(path); i++ {
		a := pins.At(path[i-1])
		b := pins.At(path[i])
		page.MoveTo(a.X+0.5, a.Y+0.5)
		page.LineTo(b.X+0.5, b.Y+0.5)
		page.Stroke()
	}

	if pinRadius > 0 {
		page.SetFillColor(color.DeviceGray(0.5))
		for i := range pins.Len() {
			c := pins.At(i)
			page.Rectangle(c.X+0.5-pinRadius, c.Y+0.5-pinRadius, 2*pinRadius, 2*pinRadius)
		}
		page.Fill()
	}

	return page.Close()
}

// threadGray returns the gray level, 0 to 1, of a thread which darkens a
// fully covered pixel by weight.
func threadGray(weight int) float64 {
	return 1 - float64(weight)/255
}
