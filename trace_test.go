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

package trace

import (
	"errors"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/trace/testcases"
)

// TestScenarios checks the structural invariants of the tracer on all
// named scenarios: region and hole counts, winding directions, contour
// simplicity, and round-trip fidelity (rasterizing every record
// reproduces the input grid exactly, with each cell covered by exactly
// one record of the right color).
func TestScenarios(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				g, err := NewGrid(tc.Width, tc.Height, tc.Pix)
				if err != nil {
					t.Fatal(err)
				}
				records, err := Trace(g)
				if err != nil {
					t.Fatal(err)
				}

				if len(records) != tc.Regions {
					t.Errorf("got %d regions, want %d", len(records), tc.Regions)
				}
				holes := 0
				for i := range records {
					holes += len(records[i].Holes)
				}
				if holes != tc.Holes {
					t.Errorf("got %d holes, want %d", holes, tc.Holes)
				}

				covered := make([]int, tc.Width*tc.Height)
				for i := range records {
					r := &records[i]

					if a := r.Outer.Area(); a <= 0 {
						t.Errorf("record %d: outer contour area %g, want > 0", i, a)
					}
					assertSimple(t, r.Outer)
					for _, h := range r.Holes {
						if a := h.Area(); a >= 0 {
							t.Errorf("record %d: hole contour area %g, want < 0", i, a)
						}
						assertSimple(t, h)
					}

					mask := rasterizeRecord(r, tc.Width, tc.Height)
					for j, in := range mask {
						if !in {
							continue
						}
						covered[j]++
						if g.Pix[j] != r.Color {
							t.Errorf("cell %d has color %v but is covered by a %v record",
								j, g.Pix[j], r.Color)
						}
					}
				}
				for j, n := range covered {
					if n != 1 {
						t.Errorf("cell (%d,%d) covered by %d records, want 1",
							j%tc.Width, j/tc.Width, n)
					}
				}
			})
		}
	}
}

// TestIdempotence verifies that tracing the same grid twice yields
// identical records.
func TestIdempotence(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			g, err := NewGrid(tc.Width, tc.Height, tc.Pix)
			if err != nil {
				t.Fatal(err)
			}
			first, err := Trace(g)
			if err != nil {
				t.Fatal(err)
			}
			second, err := Trace(g)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(first, second); d != "" {
				t.Errorf("%s_%s: records differ between runs (-first +second):\n%s",
					category, tc.Name, d)
			}
		}
	}
}

func TestInvalidGrid(t *testing.T) {
	black := color.RGBA{A: 255}
	cases := []struct {
		name          string
		width, height int
		pix           []color.RGBA
	}{
		{"empty", 0, 0, nil},
		{"zero_width", 0, 3, nil},
		{"negative_height", 2, -1, nil},
		{"short_pix", 2, 2, []color.RGBA{black, black, black}},
		{"long_pix", 1, 1, []color.RGBA{black, black}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewGrid(c.width, c.height, c.pix)
			var igErr *InvalidGridError
			if !errors.As(err, &igErr) {
				t.Fatalf("NewGrid: got error %v, want *InvalidGridError", err)
			}

			_, err = Trace(&Grid{Width: c.width, Height: c.height, Pix: c.pix})
			if !errors.As(err, &igErr) {
				t.Fatalf("Trace: got error %v, want *InvalidGridError", err)
			}
		})
	}
}

// TestSinglePixel pins down the exact contour of a 1x1 grid: one
// region whose outline is the unit square.
func TestSinglePixel(t *testing.T) {
	g, err := NewGrid(1, 1, []color.RGBA{{A: 255}})
	if err != nil {
		t.Fatal(err)
	}
	records, err := Trace(g)
	if err != nil {
		t.Fatal(err)
	}
	want := []PathRecord{{
		Color: color.RGBA{A: 255},
		Outer: Contour{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)},
	}}
	if d := cmp.Diff(want, records); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}
}

// TestCenterHole pins down the 3x3 grid with a white center: the black
// record carries the center as a counter-clockwise hole.
func TestCenterHole(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pix := []color.RGBA{
		black, black, black,
		black, white, black,
		black, black, black,
	}
	g, err := NewGrid(3, 3, pix)
	if err != nil {
		t.Fatal(err)
	}
	records, err := Trace(g)
	if err != nil {
		t.Fatal(err)
	}
	want := []PathRecord{
		{
			Color: black,
			Outer: Contour{pt(0, 0), pt(3, 0), pt(3, 3), pt(0, 3)},
			Holes: []Contour{{pt(1, 1), pt(1, 2), pt(2, 2), pt(2, 1)}},
		},
		{
			Color: white,
			Outer: Contour{pt(1, 1), pt(2, 1), pt(2, 2), pt(1, 2)},
		},
	}
	if d := cmp.Diff(want, records); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}
}

// TestCheckerboard verifies that diagonally touching same-color cells
// stay separate regions.
func TestCheckerboard(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	g, err := NewGrid(2, 2, []color.RGBA{black, white, white, black})
	if err != nil {
		t.Fatal(err)
	}
	records, err := Trace(g)
	if err != nil {
		t.Fatal(err)
	}
	want := []PathRecord{
		{Color: black, Outer: Contour{pt(0, 0), pt(1, 0), pt(1, 1), pt(0, 1)}},
		{Color: white, Outer: Contour{pt(1, 0), pt(2, 0), pt(2, 1), pt(1, 1)}},
		{Color: white, Outer: Contour{pt(0, 1), pt(1, 1), pt(1, 2), pt(0, 2)}},
		{Color: black, Outer: Contour{pt(1, 1), pt(2, 1), pt(2, 2), pt(1, 2)}},
	}
	if d := cmp.Diff(want, records); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}
}

// assertSimple checks that a contour has no repeated vertex and that
// all segments are axis-aligned.
func assertSimple(t *testing.T, c Contour) {
	t.Helper()
	seen := make(map[vec.Vec2]bool, len(c))
	for i, p := range c {
		if seen[p] {
			t.Errorf("contour repeats vertex (%g,%g)", p.X, p.Y)
		}
		seen[p] = true

		q := c[(i+1)%len(c)]
		if p.X != q.X && p.Y != q.Y {
			t.Errorf("contour segment (%g,%g)-(%g,%g) is not axis-aligned",
				p.X, p.Y, q.X, q.Y)
		}
	}
}

// rasterizeRecord fills the record's path with x/image/vector and
// thresholds the coverage into a boolean mask. For grid-aligned
// contours every pixel is either fully covered or not at all, so the
// threshold is not delicate.
func rasterizeRecord(r *PathRecord, w, h int) []bool {
	ras := vector.NewRasterizer(w, h)
	p := r.Path()

	ci := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			v := p.Coords[ci]
			ras.MoveTo(float32(v.X), float32(v.Y))
			ci++
		case path.CmdLineTo:
			v := p.Coords[ci]
			ras.LineTo(float32(v.X), float32(v.Y))
			ci++
		case path.CmdClose:
			ras.ClosePath()
		}
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(dst, dst.Bounds(), image.NewUniform(color.Alpha{A: 255}), image.Point{})

	mask := make([]bool, w*h)
	for y := range h {
		for x := range w {
			mask[y*w+x] = dst.Pix[y*dst.Stride+x] >= 128
		}
	}
	return mask
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
