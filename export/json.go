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

// Package export writes the results of string art sessions: a JSON
// document with the pin path and the thread segments, a vector PDF of the
// thread pattern, and PNG images of the simulated result.
package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stringart"
)

// Layout is a list of pins for a source image of the given size.
// Layouts are written by the "pins" command and read by "run".
type Layout struct {
	Width  int          `json:"width"`
	Height int          `json:"height"`
	YUp    bool         `json:"y_up,omitempty"`
	Pins   [][2]float64 `json:"pins"`
}

// NewLayout returns a layout for the given pins.
func NewLayout(width, height int, pins []vec.Vec2) *Layout {
	l := &Layout{Width: width, Height: height, Pins: make([][2]float64, len(pins))}
	for i, p := range pins {
		l.Pins[i] = [2]float64{p.X, p.Y}
	}
	return l
}

// Points returns the pins of l.
func (l *Layout) Points() []vec.Vec2 {
	res := make([]vec.Vec2, len(l.Pins))
	for i, p := range l.Pins {
		res[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return res
}

// WriteLayout writes l as indented JSON.
func WriteLayout(w io.Writer, l *Layout) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

// ReadLayout reads a layout written by [WriteLayout].
func ReadLayout(r io.Reader) (*Layout, error) {
	l := &Layout{}
	if err := json.NewDecoder(r).Decode(l); err != nil {
		return nil, fmt.Errorf("pin layout: %w", err)
	}
	if len(l.Pins) == 0 {
		return nil, fmt.Errorf("pin layout: no pins")
	}
	return l, nil
}

// Document is the JSON form of a session result.
type Document struct {
	ID     uuid.UUID `json:"id"`
	State  string    `json:"state"`
	Reason string    `json:"reason"`

	// Crop is the region of the source image covered by the session,
	// as [x0, y0, x1, y1].
	Crop [4]int `json:"crop"`

	Params docParams    `json:"params"`
	Pins   [][2]float64 `json:"pins"`
	Path   []int        `json:"path"`
	Lines  []docLine    `json:"lines"`
}

type docParams struct {
	LineBudget    int                   `json:"line_budget"`
	LineWidth     float64               `json:"line_width"`
	LineWeight    int                   `json:"line_weight"`
	LineCap       string                `json:"line_cap"`
	SkipLatest    int                   `json:"skip_latest"`
	SkipNeighbors int                   `json:"skip_neighbors"`
	Aggregation   stringart.Aggregation `json:"aggregation"`
	YUp           bool                  `json:"y_up"`
}

type docLine struct {
	From int        `json:"from"`
	To   int        `json:"to"`
	A    [2]float64 `json:"a"`
	B    [2]float64 `json:"b"`
}

// NewDocument collects the committed state of s. Pins and lines are
// given in the caller's coordinate system.
func NewDocument(s *stringart.Session) *Document {
	p := s.Params()
	crop := s.Crop()
	doc := &Document{
		ID:     s.ID(),
		State:  s.State().String(),
		Reason: s.Reason(),
		Crop:   [4]int{crop.Min.X, crop.Min.Y, crop.Max.X, crop.Max.Y},
		Params: docParams{
			LineBudget:    p.LineBudget,
			LineWidth:     p.LineWidth,
			LineWeight:    p.LineWeight,
			LineCap:       p.LineCap.String(),
			SkipLatest:    p.SkipLatest,
			SkipNeighbors: p.SkipNeighbors,
			Aggregation:   p.Aggregation,
			YUp:           p.YUp,
		},
		Path: s.Path(),
	}
	if pins := s.Pins(); pins != nil {
		doc.Pins = make([][2]float64, pins.Len())
		for i := range pins.Len() {
			h := pins.Host(i)
			doc.Pins[i] = [2]float64{h.X, h.Y}
		}
	}
	for _, l := range s.Lines() {
		doc.Lines = append(doc.Lines, docLine{
			From: l.From,
			To:   l.To,
			A:    [2]float64{l.A.X, l.A.Y},
			B:    [2]float64{l.B.X, l.B.Y},
		})
	}
	return doc
}

// WriteJSON writes the committed state of s as indented JSON.
func WriteJSON(w io.Writer, s *stringart.Session) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewDocument(s))
}
