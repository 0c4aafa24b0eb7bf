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

// Package svg serializes traced path records into an SVG document.
package svg

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"seehuhn.de/go/trace"
)

// Options control document generation.
type Options struct {
	// Background folds the color covering the most cells into a
	// single background rectangle; regions of that color emit no
	// path. Ties are broken in favor of the color appearing first
	// in the record order.
	Background bool
}

// Write serializes the records into an SVG document with a viewBox
// matching the grid dimensions. One path element is emitted per
// record, filled under the even-odd rule; hole contours are wound
// opposite to outer contours, so nonzero filling renders identically.
func Write(w io.Writer, g *trace.Grid, records []trace.PathRecord, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}

	bw := bufio.NewWriter(w)
	canvas := svgo.New(bw)
	canvas.Startview(g.Width, g.Height, 0, 0, g.Width, g.Height)

	var background color.RGBA
	if opt.Background && len(records) > 0 {
		background = dominantColor(records)
		canvas.Rect(0, 0, g.Width, g.Height,
			fmt.Sprintf(`fill="%s" shape-rendering="crispEdges"`, hexColor(background)))
	}

	for i := range records {
		r := &records[i]
		if opt.Background && r.Color == background {
			continue
		}
		canvas.Path(pathData(r), fillAttrs(r.Color))
	}

	canvas.End()
	return bw.Flush()
}

// pathData renders a record's contours as SVG path data, one closed
// subpath per contour, with coordinates in pixel-grid units.
func pathData(r *trace.PathRecord) string {
	var sb strings.Builder
	appendContour(&sb, r.Outer)
	for _, h := range r.Holes {
		sb.WriteByte(' ')
		appendContour(&sb, h)
	}
	return sb.String()
}

func appendContour(sb *strings.Builder, c trace.Contour) {
	fmt.Fprintf(sb, "M %d %d", int(c[0].X), int(c[0].Y))
	for _, v := range c[1:] {
		fmt.Fprintf(sb, " L %d %d", int(v.X), int(v.Y))
	}
	sb.WriteString(" Z")
}

func fillAttrs(c color.RGBA) string {
	attrs := fmt.Sprintf(`fill="%s" fill-rule="evenodd" shape-rendering="crispEdges"`, hexColor(c))
	if c.A != 255 {
		attrs += fmt.Sprintf(` fill-opacity="%.3f"`, float64(c.A)/255)
	}
	return attrs
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// dominantColor returns the color covering the largest cell count,
// computed from the signed contour areas (outer minus holes).
func dominantColor(records []trace.PathRecord) color.RGBA {
	totals := make(map[color.RGBA]float64)
	var order []color.RGBA
	for i := range records {
		r := &records[i]
		if _, seen := totals[r.Color]; !seen {
			order = append(order, r.Color)
		}
		area := r.Outer.Area()
		for _, h := range r.Holes {
			area += h.Area() // hole areas are negative
		}
		totals[r.Color] += area
	}

	best := order[0]
	for _, c := range order[1:] {
		if totals[c] > totals[best] {
			best = c
		}
	}
	return best
}
