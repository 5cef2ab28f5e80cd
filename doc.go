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

// Package stringart approximates a grayscale image by a single thread
// wound around a fixed set of pins.
//
// Starting from a seed pin, each step greedily chooses the chord from the
// current pin to the candidate pin which crosses the most darkness in a
// working copy of the image. The chosen chord is then drawn into the
// working raster, lightening it, so that darkness explained by one thread
// is not counted again, and into an output raster, which shows the
// result. A [Session] keeps this state between calls, so that a host can
// run the algorithm in small batches and display intermediate results.
//
// The result is locally optimal at each step only; its quality depends on
// the pin placement and the parameters in [Params].
package stringart
