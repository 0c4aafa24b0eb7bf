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
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Grid is a raster of flat color values, stored in row-major order.
// It is the immutable input to the tracer; the tracer never modifies
// Pix, and the caller must not modify it while a trace is in progress.
type Grid struct {
	Width  int
	Height int
	Pix    []color.RGBA // len must be Width*Height
}

// NewGrid creates a Grid and validates its shape. The pixel slice is
// used directly, without copying.
func NewGrid(width, height int, pix []color.RGBA) (*Grid, error) {
	g := &Grid{Width: width, Height: height, Pix: pix}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// FromImage converts an image to a Grid. The image is redrawn into RGBA
// form first, so any color model is accepted. Images with empty bounds
// yield a grid which fails validation when traced.
func FromImage(img image.Image) *Grid {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	pix := make([]color.RGBA, w*h)
	for y := range h {
		for x := range w {
			o := rgba.PixOffset(x, y)
			pix[y*w+x] = color.RGBA{
				R: rgba.Pix[o],
				G: rgba.Pix[o+1],
				B: rgba.Pix[o+2],
				A: rgba.Pix[o+3],
			}
		}
	}
	return &Grid{Width: w, Height: h, Pix: pix}
}

// At returns the color of the cell at (x, y). The coordinates must be
// within the grid.
func (g *Grid) At(x, y int) color.RGBA {
	return g.Pix[y*g.Width+x]
}

func (g *Grid) validate() error {
	if g.Width <= 0 || g.Height <= 0 || len(g.Pix) != g.Width*g.Height {
		return &InvalidGridError{Width: g.Width, Height: g.Height, Len: len(g.Pix)}
	}
	return nil
}

// InvalidGridError reports a grid with non-positive dimensions or a
// pixel slice whose length does not match them.
type InvalidGridError struct {
	Width  int
	Height int
	Len    int
}

func (e *InvalidGridError) Error() string {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Sprintf("trace: invalid grid dimensions %dx%d", e.Width, e.Height)
	}
	return fmt.Sprintf("trace: grid %dx%d needs %d pixels, got %d",
		e.Width, e.Height, e.Width*e.Height, e.Len)
}
