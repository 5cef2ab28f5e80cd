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

// chordDarkness scores the chord between pins a and b on v.
//
// The chord is divided into unit steps; at each of the floor(d)-1
// interior points the darkness of the pixel containing the point is
// read. With Mean the truncated average is returned, with Sum the total.
// Chords without interior points score 0.
func chordDarkness(v View, pins *PinSet, a, b int, agg Aggregation) int {
	d := pins.Distance(a, b)
	n := int(d) - 1
	if n <= 0 {
		return 0
	}

	pa := pins.At(a)
	pb := pins.At(b)
	total := 0
	for i := 1; i <= n; i++ {
		f := float64(i) / d
		p := pa.Mul(1 - f).Add(pb.Mul(f))
		total += darkness(v.GrayAt(int(p.X), int(p.Y)))
	}

	if agg == Sum {
		return total
	}
	return total / n
}
