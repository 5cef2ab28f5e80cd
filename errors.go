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
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a session is initialised without a
	// source image, without pins, or with unusable parameters.
	ErrInvalidInput = errors.New("stringart: invalid input")

	// ErrEmptyPinSet is returned when no pin survives deduplication and
	// the bounds test.
	ErrEmptyPinSet = errors.New("stringart: no pin inside the image")

	// ErrPinsDropped identifies the non-fatal warning returned by
	// [PinSet.Warning] when some of the input points were discarded.
	ErrPinsDropped = errors.New("stringart: pins dropped")

	// ErrNoViableCandidate is reported by [Session.Err] after a step found
	// no legal next pin. The session is exhausted, but this is not a
	// failure of the algorithm.
	ErrNoViableCandidate = errors.New("stringart: no viable candidate")
)

// PinsDroppedError describes how many input points were discarded because
// they were outside the image or too close to an earlier point.
type PinsDroppedError struct {
	Input int // number of points given
	Kept  int // number of pins in the registry
}

func (e *PinsDroppedError) Error() string {
	return fmt.Sprintf("stringart: %d of %d pins dropped (outside the image or closer than the minimum separation)",
		e.Input-e.Kept, e.Input)
}

// Is makes errors.Is(err, ErrPinsDropped) succeed.
func (e *PinsDroppedError) Is(target error) bool {
	return target == ErrPinsDropped
}
