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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// PinSet is the immutable, deduplicated set of anchor points of a session.
//
// Pins are indexed by their position in the deduplicated input order.
// Each pin has two coordinates: the point as given by the caller, and
// its position in the session raster (pixel units, origin at the top-left
// corner of the cropped raster, y pointing down).
//
// A PinSet is safe for concurrent reads.
type PinSet struct {
	host  []vec.Vec2
	local []vec.Vec2
	dist  distanceTable
	input int
}

// NewPinSet deduplicates and filters points.
//
// A point is discarded if it is closer than minSeparation to an earlier
// point that was kept, or if it lies outside bounds (bounds are
// inclusive on all sides). The surviving points keep their relative
// order. The local coordinates of the result equal the input coordinates;
// [Session.Reset] maps them into raster space.
func NewPinSet(points []vec.Vec2, bounds rect.Rect, minSeparation float64) (*PinSet, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: no pins given", ErrInvalidInput)
	}

	kept := dedupe(points, minSeparation)
	kept = filterInside(kept, bounds)
	if len(kept) == 0 {
		return nil, ErrEmptyPinSet
	}

	return newPinSet(kept, kept, len(points)), nil
}

func newPinSet(host, local []vec.Vec2, input int) *PinSet {
	return &PinSet{
		host:  host,
		local: local,
		dist:  newDistanceTable(local),
		input: input,
	}
}

// dedupe keeps each point which is not closer than tol to any point kept
// before it.
func dedupe(points []vec.Vec2, tol float64) []vec.Vec2 {
	kept := make([]vec.Vec2, 0, len(points))
	for _, p := range points {
		dup := false
		for _, q := range kept {
			if p.Sub(q).Length() < tol {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, p)
		}
	}
	return kept
}

func filterInside(points []vec.Vec2, bounds rect.Rect) []vec.Vec2 {
	res := points[:0]
	for _, p := range points {
		if p.X >= bounds.LLx && p.X <= bounds.URx && p.Y >= bounds.LLy && p.Y <= bounds.URy {
			res = append(res, p)
		}
	}
	return res
}

// Len returns the number of pins.
func (ps *PinSet) Len() int {
	return len(ps.local)
}

// At returns the raster position of pin i.
func (ps *PinSet) At(i int) vec.Vec2 {
	return ps.local[i]
}

// Host returns pin i in the caller's coordinate system.
func (ps *PinSet) Host(i int) vec.Vec2 {
	return ps.host[i]
}

// Distance returns the length of the chord between pins i and j.
func (ps *PinSet) Distance(i, j int) float64 {
	return ps.dist.get(i, j)
}

// Dropped returns the number of input points which did not become pins.
func (ps *PinSet) Dropped() int {
	return ps.input - len(ps.local)
}

// Warning returns a [*PinsDroppedError] if some input points were
// discarded, and nil otherwise.
func (ps *PinSet) Warning() error {
	if ps.Dropped() == 0 {
		return nil
	}
	return &PinsDroppedError{Input: ps.input, Kept: len(ps.local)}
}

// distanceTable stores the strictly upper triangle of the pairwise
// distance matrix. Row i holds the distances from pin i to pins i+1, ...,
// n-1.
type distanceTable [][]float64

func newDistanceTable(pts []vec.Vec2) distanceTable {
	n := len(pts)
	if n < 2 {
		return nil
	}
	t := make(distanceTable, n-1)
	for i := range n - 1 {
		row := make([]float64, n-i-1)
		for j := i + 1; j < n; j++ {
			row[j-i-1] = pts[i].Sub(pts[j]).Length()
		}
		t[i] = row
	}
	return t
}

func (t distanceTable) get(i, j int) float64 {
	if i == j {
		return 0
	}
	if i > j {
		i, j = j, i
	}
	return t[i][j-i-1]
}

// pair is an unordered pair of pin indices, normalised so that a < b.
type pair struct {
	a, b int
}

func makePair(i, j int) pair {
	if i > j {
		i, j = j, i
	}
	return pair{i, j}
}
