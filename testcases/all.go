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

package testcases

// All contains all scenarios, grouped by category.
var All = map[string][]Scenario{
	"basic":    basicScenarios,
	"shape":    shapeScenarios,
	"boundary": boundaryScenarios,
}

var basicScenarios = []Scenario{
	{
		Name:   "corners_black",
		Image:  Uniform(10, 10, 0),
		Pins:   Corners(10, 10),
		Budget: 0,
	},
	{
		Name:   "circle_white",
		Image:  Uniform(64, 64, 255),
		Pins:   Circle(24, 31.5, 31.5, 30),
		Budget: 50,
	},
	{
		Name:   "circle_gradient",
		Image:  Gradient(64, 64),
		Pins:   Circle(36, 31.5, 31.5, 31),
		Budget: 120,
	},
}

var shapeScenarios = []Scenario{
	{
		Name:   "disc",
		Image:  Disc(80, 80, 18),
		Pins:   Circle(60, 39.5, 39.5, 39),
		Budget: 200,
	},
	{
		Name:   "cross_rectangle",
		Image:  Cross(96, 64, 8),
		Pins:   Rectangle(64, 0, 0, 95, 63),
		Budget: 150,
	},
	{
		Name:   "grid",
		Image:  Disc(40, 40, 10),
		Pins:   Grid(5, 5, 2, 2, 37, 37),
		Budget: 60,
	},
}

var boundaryScenarios = []Scenario{
	{
		Name:  "single_pin",
		Image: Uniform(16, 16, 0),
		Pins:  Corners(16, 16)[:1],
	},
	{
		Name:  "two_pins",
		Image: Uniform(16, 16, 0),
		Pins:  Corners(16, 16)[:2],
	},
	{
		Name:   "duplicates",
		Image:  Uniform(32, 32, 0),
		Pins:   append(Circle(8, 15.5, 15.5, 14), Circle(8, 15.5, 15.5, 14)...),
		Budget: 30,
	},
}
