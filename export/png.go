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
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/stringart"
)

// WriteOutputPNG writes the output raster of s, which shows the threads
// as simulated by the session.
func WriteOutputPNG(w io.Writer, s *stringart.Session) error {
	img := s.Output()
	if img == nil {
		return fmt.Errorf("%w: session not initialized", stringart.ErrInvalidInput)
	}
	return png.Encode(w, img)
}

// PreviewOptions controls the appearance of [Preview] images.
// A nil *PreviewOptions uses the defaults.
type PreviewOptions struct {
	// Scale is the size of one raster pixel in preview pixels.
	// The default is 4.
	Scale float64

	// PinLabels marks every pin with its index.
	PinLabels bool
}

// Preview draws the committed threads of s on a white canvas. Threads are
// drawn translucent so that crossings darken, similar to the output raster
// but without its quantisation.
func Preview(s *stringart.Session, opt *PreviewOptions) (image.Image, error) {
	pins := s.Pins()
	if pins == nil {
		return nil, fmt.Errorf("%w: session not initialized", stringart.ErrInvalidInput)
	}
	scale := 4.0
	var labels bool
	if opt != nil {
		scale = opt.Scale
		labels = opt.PinLabels
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("%w: preview scale %g", stringart.ErrInvalidInput, scale)
	}

	crop := s.Crop()
	dc := gg.NewContext(int(float64(crop.Dx())*scale+0.5), int(float64(crop.Dy())*scale+0.5))
	dc.SetColor(color.White)
	dc.Clear()

	p := s.Params()
	dc.SetRGBA(0, 0, 0, float64(p.LineWeight)/255)
	dc.SetLineWidth(p.LineWidth * scale)
	switch p.LineCap {
	case graphics.LineCapRound:
		dc.SetLineCap(gg.LineCapRound)
	case graphics.LineCapSquare:
		dc.SetLineCap(gg.LineCapSquare)
	default:
		dc.SetLineCap(gg.LineCapButt)
	}

	path := s.Path()
	for i := 1; i < len(path); i++ {
		a := pins.At(path[i-1])
		b := pins.At(path[i])
		dc.DrawLine((a.X+0.5)*scale, (a.Y+0.5)*scale, (b.X+0.5)*scale, (b.Y+0.5)*scale)
		dc.Stroke()
	}

	if labels {
		ttf, err := truetype.Parse(gomono.TTF)
		if err != nil {
			return nil, fmt.Errorf("failed to parse font: %v", err)
		}
		dc.SetFontFace(truetype.NewFace(ttf, &truetype.Options{
			Size:    max(6, 2*scale),
			DPI:     72,
			Hinting: font.HintingFull,
		}))
		dc.SetRGB(0.8, 0, 0)
		cx := float64(crop.Dx()) / 2 * scale
		cy := float64(crop.Dy()) / 2 * scale
		for i := range pins.Len() {
			c := pins.At(i).Add(vec.Vec2{X: 0.5, Y: 0.5}).Mul(scale)
			dc.DrawCircle(c.X, c.Y, max(1, scale/2))
			dc.Fill()

			// Labels point away from the centre of the raster.
			ax, ay := 0.5, 0.5
			if c.X < cx {
				ax = 1
			} else if c.X > cx {
				ax = 0
			}
			if c.Y < cy {
				ay = 0
			} else if c.Y > cy {
				ay = 1
			}
			dc.DrawStringAnchored(strconv.Itoa(i), c.X, c.Y, ax, ay)
		}
	}
	return dc.Image(), nil
}

// WritePreviewPNG writes the image returned by [Preview] as PNG.
func WritePreviewPNG(w io.Writer, s *stringart.Session, opt *PreviewOptions) error {
	img, err := Preview(s, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
