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
	"image"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/stringart/testcases"
)

// BenchmarkStrokeChord benchmarks our rasteriser drawing a diagonal
// chord across a square raster.
func BenchmarkStrokeChord(b *testing.B) {
	sizes := []int{20, 200, 2000}
	caps := []graphics.LineCapStyle{graphics.LineCapButt, graphics.LineCapRound}

	for _, size := range sizes {
		for _, lineCap := range caps {
			b.Run(fmt.Sprintf("%dx%d_%s", size, size, lineCap), func(b *testing.B) {
				r := NewRasteriser(rect.Rect{URx: float64(size), URy: float64(size)})
				r.Width = 1.5
				r.Cap = lineCap
				dst := image.NewAlpha(image.Rect(0, 0, size, size))

				from := vec.Vec2{X: 0.5, Y: float64(size) * 0.9}
				to := vec.Vec2{X: float64(size) - 0.5, Y: float64(size) * 0.1}

				b.ReportAllocs()
				for b.Loop() {
					r.StrokeChord(from, to, func(y, xMin int, coverage []float32) {
						row := dst.Pix[y*dst.Stride+xMin:]
						for i, c := range coverage {
							row[i] = uint8(c * 255)
						}
					})
				}
			})
		}
	}
}

// BenchmarkVectorChord benchmarks x/image/vector drawing the same chord
// with butt caps.
func BenchmarkVectorChord(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			from := vec.Vec2{X: 0.5, Y: float64(size) * 0.9}
			to := vec.Vec2{X: float64(size) - 0.5, Y: float64(size) * 0.1}
			t := to.Sub(from)
			n := vec.Vec2{X: -t.Y, Y: t.X}.Mul(0.75 / t.Length())
			corners := []vec.Vec2{from.Add(n), to.Add(n), to.Sub(n), from.Sub(n)}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(corners[0].X), float32(corners[0].Y))
				for _, c := range corners[1:] {
					r.LineTo(float32(c.X), float32(c.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			}
		})
	}
}

// BenchmarkChordDarkness measures the scoring of all chords from one pin.
func BenchmarkChordDarkness(b *testing.B) {
	img := testcases.Gradient(400, 400)
	pins := testcases.Circle(200, 199.5, 199.5, 199)
	s := NewSession()
	if err := s.Reset(img, pins, DefaultParams()); err != nil {
		b.Fatal(err)
	}
	v := s.working.View()

	b.ResetTimer()
	for b.Loop() {
		for c := 1; c < s.pins.Len(); c++ {
			chordDarkness(v, s.pins, 0, c, Mean)
		}
	}
}

// BenchmarkStep measures complete greedy steps, including the parallel
// candidate scoring.
func BenchmarkStep(b *testing.B) {
	img := testcases.Disc(400, 400, 120)
	pins := testcases.Circle(240, 199.5, 199.5, 199)

	for _, workers := range []int{1, 4, 0} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			p := DefaultParams()
			p.Workers = workers
			s := NewSession()

			b.ReportAllocs()
			for b.Loop() {
				if _, ok := s.Step(); !ok {
					b.StopTimer()
					if err := s.Reset(img, pins, p); err != nil {
						b.Fatal(err)
					}
					b.StartTimer()
				}
			}
		})
	}
}
