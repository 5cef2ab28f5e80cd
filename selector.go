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
	"golang.org/x/sync/errgroup"
)

// selector picks the next pin of the path. It owns scratch buffers which
// are reused between steps.
type selector struct {
	pins     *PinSet
	scores   []int
	excluded []bool
}

func newSelector(pins *PinSet) *selector {
	n := pins.Len()
	return &selector{
		pins:     pins,
		scores:   make([]int, n),
		excluded: make([]bool, n),
	}
}

// next returns the pin to connect to the last pin of path.
//
// Excluded are the max(1, SkipLatest) most recent pins of the path, all
// pins whose index differs from the current one by less than
// SkipNeighbors, and all pins already joined to the current pin by a
// chord. The remaining candidates are scored concurrently; v must not
// change until next returns. Excluded candidates score 0, and the first
// index holding the maximal score wins.
//
// The second return value is false if no candidate is eligible, or if
// the winning index is an excluded pin (all eligible candidates scored 0
// and an excluded pin has a lower index).
func (s *selector) next(v View, path []int, used map[pair]struct{}, p *Params) (int, bool) {
	n := s.pins.Len()
	cur := path[len(path)-1]

	clear(s.scores)
	clear(s.excluded)
	for _, i := range path[max(0, len(path)-max(1, p.SkipLatest)):] {
		s.excluded[i] = true
	}
	var candidates []int
	for c := range n {
		if cur-c < p.SkipNeighbors && c-cur < p.SkipNeighbors {
			s.excluded[c] = true
		}
		if _, seen := used[makePair(cur, c)]; seen {
			s.excluded[c] = true
		}
		if !s.excluded[c] {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return -1, false
	}

	// Every worker writes to its own entries of s.scores, so the result
	// does not depend on scheduling.
	workers := min(p.workers(), len(candidates))
	chunk := (len(candidates) + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < len(candidates); lo += chunk {
		part := candidates[lo:min(lo+chunk, len(candidates))]
		g.Go(func() error {
			for _, c := range part {
				s.scores[c] = chordDarkness(v, s.pins, cur, c, p.Aggregation)
			}
			return nil
		})
	}
	_ = g.Wait()

	best := 0
	for c := 1; c < n; c++ {
		if s.scores[c] > s.scores[best] {
			best = c
		}
	}
	if s.excluded[best] {
		return -1, false
	}
	return best, true
}
