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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) top() float64    { return min(e.y0, e.y1) }
func (e *edge) bottom() float64 { return max(e.y0, e.y1) }

// Rasteriser computes anti-aliased pixel coverage for stroked chords.
//
// Coverage is the exact fraction of each pixel's area inside the outline,
// found by accumulating signed edge areas along each scanline. Device
// pixel (x, y) covers the square [x, x+1)×[y, y+1).
//
// The zero value is not usable; call [NewRasteriser]. Internal buffers are
// reused between calls. A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip bounds the output. Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal deviation, in pixels, of the polygon
	// approximating a round cap.
	Flatness float64

	// Width is the stroke width in pixels.
	Width float64

	// Cap is the style of the chord ends.
	Cap graphics.LineCapStyle

	outline *path.Data
	edges   []edge
	active  []int     // indices into edges crossing the current scanline
	cover   []float32 // per pixel change of the winding contribution
	area    []float32 // per pixel signed area left of the edges

	bboxEmpty    bool
	bxMin, bxMax float64
	byMin, byMax float64
}

// NewRasteriser returns a Rasteriser for a one pixel wide chord with butt
// caps, clipped to clip.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapButt,
		outline:  &path.Data{},
	}
}

// StrokeChord computes the coverage of the straight thread from a to b.
// The emit callback is called once for every scanline with non-zero
// coverage, in increasing order of y; its slice argument is valid only
// during the call.
func (r *Rasteriser) StrokeChord(a, b vec.Vec2, emit func(y, xMin int, coverage []float32)) {
	if !r.chordOutline(a, b) {
		return
	}
	r.FillNonZero(r.outline, emit)
}

// chordOutline replaces r.outline by the closed outline of the stroke
// from a to b. It reports false if the stroke has no area.
func (r *Rasteriser) chordOutline(a, b vec.Vec2) bool {
	o := r.outline
	o.Cmds = o.Cmds[:0]
	o.Coords = o.Coords[:0]

	d := r.Width / 2
	if !(d > 0) {
		return false
	}

	length := b.Sub(a).Length()
	if length < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			ux := vec.Vec2{X: 1}
			uy := vec.Vec2{Y: 1}
			o.MoveTo(a.Add(ux.Mul(d)))
			r.arc(a, d, ux, uy)
			r.arc(a, d, uy, ux.Mul(-1))
			r.arc(a, d, ux.Mul(-1), uy.Mul(-1))
			r.arc(a, d, uy.Mul(-1), ux)
			o.Close()
			return true
		case graphics.LineCapSquare:
			o.MoveTo(vec.Vec2{X: a.X - d, Y: a.Y - d}).
				LineTo(vec.Vec2{X: a.X + d, Y: a.Y - d}).
				LineTo(vec.Vec2{X: a.X + d, Y: a.Y + d}).
				LineTo(vec.Vec2{X: a.X - d, Y: a.Y + d}).
				Close()
			return true
		default:
			return false
		}
	}

	t := b.Sub(a).Mul(1 / length)  // unit tangent
	n := vec.Vec2{X: -t.Y, Y: t.X} // unit normal

	if r.Cap == graphics.LineCapSquare {
		a = a.Sub(t.Mul(d))
		b = b.Add(t.Mul(d))
	}

	o.MoveTo(a.Add(n.Mul(d)))
	o.LineTo(b.Add(n.Mul(d)))
	if r.Cap == graphics.LineCapRound {
		r.arc(b, d, n, t)
		r.arc(b, d, t, n.Mul(-1))
	} else {
		o.LineTo(b.Sub(n.Mul(d)))
	}
	o.LineTo(a.Sub(n.Mul(d)))
	if r.Cap == graphics.LineCapRound {
		r.arc(a, d, n.Mul(-1), t.Mul(-1))
		r.arc(a, d, t.Mul(-1), n)
	}
	o.Close()
	return true
}

// arc appends a quarter circle around c with radius d, from c+d*u to
// c+d*v, as a cubic Bézier curve. The unit vectors u and v must be
// orthogonal.
func (r *Rasteriser) arc(c vec.Vec2, d float64, u, v vec.Vec2) {
	r.outline.CubeTo(
		c.Add(u.Add(v.Mul(arcKappa)).Mul(d)),
		c.Add(v.Add(u.Mul(arcKappa)).Mul(d)),
		c.Add(v.Mul(d)),
	)
}

// FillNonZero computes the coverage of the region enclosed by p, using
// the nonzero winding rule. The emit callback behaves as for [Rasteriser.StrokeChord].
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]
	clear(r.cover)
	clear(r.area)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.top(), b.top())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].top() < yBot {
			r.active = append(r.active, next)
			next++
		}

		lo, hi := width, -1
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.bottom() <= yTop {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			l, h := accumulate(e, y, r.cover, r.area, xMin, xMax)
			lo = min(lo, l)
			hi = max(hi, h)
			i++
		}
		if hi < lo {
			continue
		}

		// Left of lo nothing was touched, and right of hi the winding
		// contributions of a closed outline cancel.
		cover := r.cover[lo : hi+1]
		area := r.area[lo : hi+1]
		integrateNonZero(cover, area)
		if row, offs := trimZeros(cover); row != nil {
			emit(y, xMin+lo+offs, row)
		}
		clear(cover)
		clear(area)
	}
}

// collectEdges flattens p into r.edges and returns the pixel bounding box
// of the edges, clipped to r.Clip.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var cur, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cur = p.Coords[k]
			start = cur
			k++
		case path.CmdLineTo:
			r.addEdge(cur, p.Coords[k])
			cur = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// degree elevation
			c, end := p.Coords[k], p.Coords[k+1]
			r.flattenCubic(cur, cur.Add(c.Sub(cur).Mul(2.0/3)), end.Add(c.Sub(end).Mul(2.0/3)), end)
			cur = end
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(cur, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			cur = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	if r.bboxEmpty {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(p0.X, p1.X), max(p0.X, p1.X)
		r.byMin, r.byMax = min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, p0.X, p1.X)
	r.bxMax = max(r.bxMax, p0.X, p1.X)
	r.byMin = min(r.byMin, p0.Y, p1.Y)
	r.byMax = max(r.byMax, p0.Y, p1.Y)
}

// flattenCubic replaces the cubic Bézier curve p0, p1, p2, p3 by line
// segments, using Wang's formula to choose the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// accumulate adds the part of e within scanline y to the cover and area
// buffers, which are indexed by x-xMin. It returns the range of buffer
// indices touched; lo > hi if there were none.
//
// A piece of the edge between heights yA < yB inside pixel column x
// contributes cover = ±(yB-yA) to that pixel, and the fraction of this
// which lies to the right of the edge to area. Summing cover from the
// left and adding area gives the signed coverage of each pixel.
func accumulate(e *edge, y int, cover, area []float32, xMin, xMax int) (lo, hi int) {
	n := len(cover)
	lo, hi = n, -1

	yTop := max(float64(y), e.top())
	yBot := min(float64(y+1), e.bottom())
	if yBot <= yTop {
		return lo, hi
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	deposit := func(x int, ya, yb float64) {
		c := sign * float32(yb-ya)
		if x >= xMax {
			// The outline continues beyond the clip rectangle.
			hi = n - 1
			return
		}
		idx := 0
		if x < xMin {
			cover[0] += c
			area[0] += c
		} else {
			xMid := e.x0 + e.dxdy*((ya+yb)/2-e.y0)
			idx = x - xMin
			cover[idx] += c
			area[idx] += c * float32(1-(xMid-float64(x)))
		}
		lo = min(lo, idx)
		hi = max(hi, idx)
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	if xa > xb {
		xa, xb = xb, xa
	}
	left := int(math.Floor(xa))
	right := int(math.Floor(xb))

	switch {
	case right < xMin:
		deposit(xMin-1, yTop, yBot)
	case left >= xMax:
		deposit(xMax, yTop, yBot)
	case left == right:
		deposit(left, yTop, yBot)
	default:
		dydx := 1 / e.dxdy
		for x := left; x <= right; x++ {
			ya := e.y0 + dydx*(float64(x)-e.x0)
			yb := e.y0 + dydx*(float64(x+1)-e.x0)
			segTop := max(min(ya, yb), yTop)
			segBot := min(max(ya, yb), yBot)
			if segBot > segTop {
				deposit(x, segTop, segBot)
			}
		}
	}
	return lo, hi
}

// integrateNonZero turns accumulated cover and area values into coverage,
// in place, using the nonzero winding rule.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries, and the offset of this part.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

const (
	defaultFlatness = 0.25

	// arcKappa places the control points of a cubic Bézier quarter
	// circle: 4/3*(sqrt(2)-1).
	arcKappa = 0.5522847498307936

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
)
