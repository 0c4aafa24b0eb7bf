// seehuhn.de/go/trace - a pixel-exact raster-to-vector tracer
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

// Package testcases defines named tracing scenarios shared by the
// tests, the benchmarks, and the reference tools.
package testcases

import "image/color"

// TestCase defines a single tracing scenario.
type TestCase struct {
	Name    string       // lowercase a-z and _ only
	Width   int          // grid width in pixels
	Height  int          // grid height in pixels
	Pix     []color.RGBA // row-major pixel data
	Regions int          // expected number of regions
	Holes   int          // expected total number of holes
}

// palette maps the characters used in scenario art to colors.
var palette = map[byte]color.RGBA{
	'.': {R: 255, G: 255, B: 255, A: 255},
	'#': {A: 255},
	'r': {R: 255, A: 255},
	'g': {G: 255, A: 255},
	'b': {B: 255, A: 255},
}

// tc builds a test case from rows of scenario art. Each character is
// one pixel, looked up in palette.
func tc(name string, regions, holes int, rows ...string) TestCase {
	w := len(rows[0])
	h := len(rows)
	pix := make([]color.RGBA, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			panic("testcases: ragged rows in " + name)
		}
		for i := range len(row) {
			c, ok := palette[row[i]]
			if !ok {
				panic("testcases: unknown pixel character in " + name)
			}
			pix = append(pix, c)
		}
	}
	return TestCase{
		Name:    name,
		Width:   w,
		Height:  h,
		Pix:     pix,
		Regions: regions,
		Holes:   holes,
	}
}
