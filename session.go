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
	"context"
	"fmt"
	"image"
	"math"

	"github.com/google/uuid"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// State is the lifecycle state of a [Session].
type State int

const (
	// Uninitialized sessions have no pins and no rasters.
	Uninitialized State = iota

	// Active sessions accept further steps.
	Active

	// Exhausted sessions have reached their line budget, or found no
	// legal next pin. Only a reset leaves this state.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Active:
		return "active"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Line is a committed thread, in the caller's coordinate system.
type Line struct {
	From, To int // pin indices
	A, B     vec.Vec2
}

// Session holds the state of one resettable string art run: the pin
// registry, the working raster from which explained darkness is removed,
// the output raster which accumulates the drawn threads, and the pin path.
//
// A session is driven by repeated calls to [Session.Batch] or
// [Session.Solve]. Each step either commits completely or changes
// nothing, so a caller may stop between any two calls.
//
// Methods of a Session must not be called concurrently.
type Session struct {
	id     uuid.UUID
	state  State
	err    error
	params Params

	pins    *PinSet
	ctm     matrix.Matrix
	crop    image.Rectangle
	working *Raster
	output  *Raster
	rast    *Rasteriser
	sel     *selector

	path  []int
	used  map[pair]struct{}
	lines []Line
}

// NewSession returns an uninitialized session.
func NewSession() *Session {
	return &Session{}
}

// Reset discards all previous state and initialises the session from the
// source image, the pin points and the parameters.
//
// Pins are given in the coordinate system of src (pixel units, see
// [Params.YUp] for the orientation of the y axis) and must lie inside
// [0, width-1]×[0, height-1]. The rasters are cropped to the pixel
// bounding box of the surviving pins.
//
// On error the session is left uninitialized. Pins dropped during
// deduplication are not an error; see [PinSet.Warning].
func (s *Session) Reset(src image.Image, points []vec.Vec2, p Params) error {
	*s = Session{}

	if src == nil {
		return fmt.Errorf("%w: no source image", ErrInvalidInput)
	}
	if len(points) == 0 {
		return fmt.Errorf("%w: no pins given", ErrInvalidInput)
	}
	if err := p.Validate(); err != nil {
		return err
	}
	b := src.Bounds()
	if b.Empty() {
		return fmt.Errorf("%w: empty source image", ErrInvalidInput)
	}

	bounds := rect.Rect{URx: float64(b.Dx() - 1), URy: float64(b.Dy() - 1)}
	pins, err := NewPinSet(points, bounds, p.MinSeparation)
	if err != nil {
		return err
	}
	if p.SeedPin >= pins.Len() {
		return fmt.Errorf("%w: seed pin %d of %d", ErrInvalidInput, p.SeedPin, pins.Len())
	}

	// Map to raster space, then crop to the pixel bounding box.
	ctm := matrix.Identity
	if p.YUp {
		ctm = matrix.Matrix{1, 0, 0, -1, 0, float64(b.Dy() - 1)}
	}
	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for i := range pins.Len() {
		q := apply(ctm, pins.Host(i))
		xMin, xMax = min(xMin, q.X), max(xMax, q.X)
		yMin, yMax = min(yMin, q.Y), max(yMax, q.Y)
	}
	crop := image.Rect(int(xMin), int(yMin), int(xMax)+1, int(yMax)+1)
	ctm[4] -= float64(crop.Min.X)
	ctm[5] -= float64(crop.Min.Y)

	// ctm is an isometry, so the distance table stays valid.
	local := make([]vec.Vec2, pins.Len())
	for i := range local {
		local[i] = apply(ctm, pins.Host(i))
	}
	pins.local = local

	w, h := crop.Dx(), crop.Dy()
	rast := NewRasteriser(rect.Rect{URx: float64(w), URy: float64(h)})
	rast.Width = p.LineWidth
	rast.Cap = p.LineCap

	*s = Session{
		id:      uuid.New(),
		state:   Active,
		params:  p,
		pins:    pins,
		ctm:     ctm,
		crop:    crop,
		working: RasterFromImage(src, crop.Add(b.Min)),
		output:  NewRaster(w, h, 255),
		rast:    rast,
		sel:     newSelector(pins),
		path:    []int{p.SeedPin},
		used:    make(map[pair]struct{}),
	}

	log := Logger()
	log.Info("session reset",
		"session", s.id,
		"pins", pins.Len(),
		"width", w,
		"height", h,
		"budget", p.LineBudget)
	if warn := pins.Warning(); warn != nil {
		log.Warn(warn.Error(), "session", s.id, "dropped", pins.Dropped())
	}

	s.checkBudget()
	return nil
}

// SetParams changes the parameters used by the following steps.
// MinSeparation, SeedPin and YUp only take effect at the next reset.
func (s *Session) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if s.state != Uninitialized {
		p.MinSeparation = s.params.MinSeparation
		p.SeedPin = s.params.SeedPin
		p.YUp = s.params.YUp
		s.rast.Width = p.LineWidth
		s.rast.Cap = p.LineCap
	}
	s.params = p

	if s.state == Active {
		s.checkBudget()
	}
	return nil
}

// Step performs one greedy step. It returns the newly visited pin, or
// false if the session is not active or has become exhausted without
// committing a chord.
func (s *Session) Step() (int, bool) {
	if s.state != Active {
		return -1, false
	}
	if s.checkBudget() {
		return -1, false
	}

	next, ok := s.sel.next(s.working.View(), s.path, s.used, &s.params)
	if !ok {
		s.exhaust(ErrNoViableCandidate)
		return -1, false
	}
	s.commit(next)
	s.checkBudget()
	return next, true
}

// Batch performs up to [Params.Iterations] steps and returns the number
// of committed chords. The context is checked between steps only; a
// cancelled context stops the batch and its error is returned.
func (s *Session) Batch(ctx context.Context) (int, error) {
	if s.state == Uninitialized {
		return 0, fmt.Errorf("%w: session not initialized", ErrInvalidInput)
	}
	done := 0
	for range s.params.Iterations {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if _, ok := s.Step(); !ok {
			break
		}
		done++
	}
	return done, nil
}

// Input is the data of one invocation of [Session.Solve].
type Input struct {
	Image  image.Image
	Pins   []vec.Vec2
	Params Params

	// Run requests a batch of steps.
	Run bool

	// Reset discards the session state before anything else. The first
	// invocation of an uninitialized session always resets.
	Reset bool
}

// Result is a snapshot of the committed state of a session.
type Result struct {
	ID     uuid.UUID
	State  State
	Path   []int
	Lines  []Line
	Output *image.Gray

	// Committed is the number of chords added by this invocation.
	Committed int

	// Warning is non-nil if some pins were dropped during the last reset.
	Warning error
}

// Solve performs one invocation on behalf of a host which re-enters the
// session repeatedly: it resets the session if requested (or if it is
// uninitialized), otherwise applies the run parameters of in, runs one
// batch if in.Run is set, and returns the committed state.
func (s *Session) Solve(ctx context.Context, in *Input) (*Result, error) {
	if in.Reset || s.state == Uninitialized {
		if err := s.Reset(in.Image, in.Pins, in.Params); err != nil {
			return nil, err
		}
	} else if err := s.SetParams(in.Params); err != nil {
		return nil, err
	}

	var n int
	if in.Run {
		var err error
		n, err = s.Batch(ctx)
		if err != nil {
			return nil, err
		}
	}

	res := s.Result()
	res.Committed = n
	return res, nil
}

// Result returns a snapshot of the session.
func (s *Session) Result() *Result {
	res := &Result{
		ID:    s.id,
		State: s.state,
		Path:  s.Path(),
		Lines: s.Lines(),
	}
	if s.state != Uninitialized {
		res.Output = s.output.Image()
		res.Warning = s.pins.Warning()
	}
	return res
}

func (s *Session) commit(next int) {
	cur := s.path[len(s.path)-1]
	removed := s.drawChord(cur, next)

	s.path = append(s.path, next)
	s.used[makePair(cur, next)] = struct{}{}
	s.lines = append(s.lines, Line{
		From: cur,
		To:   next,
		A:    s.pins.Host(cur),
		B:    s.pins.Host(next),
	})

	Logger().Debug("chord",
		"session", s.id,
		"from", cur,
		"to", next,
		"length", len(s.path),
		"darkness", removed)
}

// drawChord lightens the working raster along the chord between pins a
// and b and darkens the output raster by the same amount. It returns the
// total darkness moved.
func (s *Session) drawChord(a, b int) int {
	center := vec.Vec2{X: 0.5, Y: 0.5}
	weight := float32(s.params.LineWeight)
	wPix, wStride := s.working.Pix, s.working.Stride
	oPix, oStride := s.output.Pix, s.output.Stride

	total := 0
	s.rast.StrokeChord(s.pins.At(a).Add(center), s.pins.At(b).Add(center), func(y, xMin int, coverage []float32) {
		wRow := wPix[y*wStride+xMin:]
		oRow := oPix[y*oStride+xMin:]
		for i, c := range coverage {
			d := min(int(weight*c+0.5), 255-int(wRow[i]))
			wRow[i] += uint8(d)
			oRow[i] -= uint8(d)
			total += d
		}
	})
	return total
}

// checkBudget exhausts the session if the path has reached the line
// budget.
func (s *Session) checkBudget() bool {
	if len(s.path) >= s.params.LineBudget {
		s.exhaust(nil)
		return true
	}
	return false
}

func (s *Session) exhaust(err error) {
	s.state = Exhausted
	s.err = err
	Logger().Info("session exhausted",
		"session", s.id,
		"length", len(s.path),
		"reason", s.Reason())
}

// ID returns the identifier assigned at the last reset.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Err returns [ErrNoViableCandidate] if the session became exhausted
// because no legal next pin was found, and nil otherwise.
func (s *Session) Err() error {
	return s.err
}

// Reason describes why the session is in its current state.
func (s *Session) Reason() string {
	switch {
	case s.state != Exhausted:
		return s.state.String()
	case s.err != nil:
		return "no viable candidate"
	default:
		return "line budget reached"
	}
}

// Params returns the parameters in effect.
func (s *Session) Params() Params {
	return s.params
}

// Pins returns the pin registry, or nil for an uninitialized session.
func (s *Session) Pins() *PinSet {
	return s.pins
}

// Transform returns the map from the caller's coordinates to raster
// coordinates.
func (s *Session) Transform() matrix.Matrix {
	return s.ctm
}

// Crop returns the region of the source image covered by the rasters,
// relative to the image origin.
func (s *Session) Crop() image.Rectangle {
	return s.crop
}

// Path returns a copy of the pin path, starting with the seed pin.
func (s *Session) Path() []int {
	return append([]int(nil), s.path...)
}

// Lines returns a copy of the committed threads.
func (s *Session) Lines() []Line {
	return append([]Line(nil), s.lines...)
}

// Output returns a copy of the output raster, or nil if the session is
// uninitialized.
func (s *Session) Output() *image.Gray {
	if s.output == nil {
		return nil
	}
	return s.output.Image()
}

// Working returns a copy of the working raster, or nil if the session is
// uninitialized.
func (s *Session) Working() *image.Gray {
	if s.working == nil {
		return nil
	}
	return s.working.Image()
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}
