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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Contour is a closed rectilinear polygon on the pixel lattice. The
// vertices are corners only: collinear runs of unit edges are collapsed
// into single segments. The closing segment from the last vertex back
// to the first is implicit.
//
// Contours produced by the tracer keep the region interior on the
// right-hand side of the direction of travel. In image coordinates
// (y grows downward) this makes outer boundaries clockwise with
// positive signed area, and hole boundaries counter-clockwise with
// negative signed area.
type Contour []vec.Vec2

// Area returns the signed area enclosed by the contour, computed with
// the shoelace formula. Positive for outer boundaries, negative for
// holes.
func (c Contour) Area() float64 {
	var sum float64
	for i, p := range c {
		q := c[(i+1)%len(c)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Bounds returns the bounding box of the contour.
func (c Contour) Bounds() rect.Rect {
	b := rect.Rect{LLx: c[0].X, LLy: c[0].Y, URx: c[0].X, URy: c[0].Y}
	for _, p := range c[1:] {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// Boundary edges are directed unit segments between lattice vertices,
// stored as a per-vertex bitmask of outgoing directions. Each member
// cell contributes one edge per side facing a non-member cell (or the
// grid frame), oriented so that the cell lies to the right of the edge:
//
//	east along the top side, south along the right side,
//	west along the bottom side, north along the left side.
//
// Chaining these edges head-to-tail yields the region's closed
// contours. At a vertex where the region touches itself diagonally,
// two outgoing edges are available; the walk takes the sharpest left
// turn relative to the incoming direction. This splits the loops at
// the shared vertex (taking the right turn instead would stitch an
// outer boundary and a hole into one self-touching loop), keeps every
// loop simple, and is the deterministic tie-break that makes tracing
// idempotent.
const (
	dirEast = iota
	dirSouth
	dirWest
	dirNorth
)

// contours extracts the boundary of one region: exactly one outer
// contour and zero or more hole contours.
func (l *labeling) contours(id int32) (Contour, []Contour, error) {
	info := &l.regions[id]
	w := l.grid.Width

	// Lattice of vertices covering the region's bounding box.
	vw := info.maxX - info.minX + 2
	vh := info.maxY - info.minY + 2
	outMask := make([]uint8, vw*vh)

	remaining := 0
	for y := info.minY; y <= info.maxY; y++ {
		for x := info.minX; x <= info.maxX; x++ {
			if l.ids[y*w+x] != id {
				continue
			}
			cx, cy := x-info.minX, y-info.minY
			if l.idAt(x, y-1) != id {
				outMask[cy*vw+cx] |= 1 << dirEast
				remaining++
			}
			if l.idAt(x+1, y) != id {
				outMask[cy*vw+cx+1] |= 1 << dirSouth
				remaining++
			}
			if l.idAt(x, y+1) != id {
				outMask[(cy+1)*vw+cx+1] |= 1 << dirWest
				remaining++
			}
			if l.idAt(x-1, y) != id {
				outMask[(cy+1)*vw+cx] |= 1 << dirNorth
				remaining++
			}
		}
	}

	var outer Contour
	var holes []Contour
	outerCount := 0
	for vi := range outMask {
		for outMask[vi] != 0 {
			d := dirEast
			for outMask[vi]&(1<<d) == 0 {
				d++
			}
			c, used, stuck := walkLoop(outMask, vw, vi, d, info.minX, info.minY)
			remaining -= used
			if stuck >= 0 {
				return nil, nil, l.malformed(info, fmt.Sprintf(
					"boundary walk stuck at vertex (%d,%d)",
					info.minX+stuck%vw, info.minY+stuck/vw))
			}
			if c.Area() > 0 {
				outer = c
				outerCount++
			} else {
				holes = append(holes, c)
			}
		}
	}

	// Both conditions are internal invariants; with correct labeling
	// neither can fail.
	if outerCount != 1 {
		return nil, nil, l.malformed(info, fmt.Sprintf("%d outer loops, want 1", outerCount))
	}
	if remaining != 0 {
		return nil, nil, l.malformed(info, fmt.Sprintf("%d unconsumed boundary edges", remaining))
	}

	return outer, holes, nil
}

func (l *labeling) malformed(info *regionInfo, reason string) error {
	return &MalformedBoundaryError{
		X:      info.firstCell % l.grid.Width,
		Y:      info.firstCell / l.grid.Width,
		Reason: reason,
	}
}

// walkLoop follows boundary edges from the outgoing edge (v0, d0) until
// the walk returns to v0, consuming each visited edge. It returns the
// resulting contour in grid coordinates and the number of edges
// consumed. If the walk reaches a vertex with no outgoing edge, the
// vertex index is returned as stuck; stuck is -1 on success.
func walkLoop(outMask []uint8, vw, v0, d0, offX, offY int) (c Contour, used int, stuck int) {
	delta := [4]int{dirEast: 1, dirSouth: vw, dirWest: -1, dirNorth: -vw}
	point := func(v int) vec.Vec2 {
		return vec.Vec2{X: float64(offX + v%vw), Y: float64(offY + v/vw)}
	}

	pts := make(Contour, 0, 8)
	pts = append(pts, point(v0))

	v, d := v0, d0
	for {
		outMask[v] &^= 1 << d
		used++

		nv := v + delta[d]
		if nv == v0 {
			break
		}

		// Turn priority: left, straight, right. Reversing is never
		// valid: both directions of one segment would require member
		// cells on both sides, which is not a boundary.
		nd := -1
		for _, off := range [3]int{3, 0, 1} {
			t := (d + off) & 3
			if outMask[nv]&(1<<t) != 0 {
				nd = t
				break
			}
		}
		if nd < 0 {
			return nil, used, nv
		}

		if nd != d {
			pts = append(pts, point(nv))
		}
		v, d = nv, nd
	}

	// If the loop closed in the middle of a straight run, the start
	// vertex is not a corner; drop it.
	if n := len(pts); n >= 3 {
		a, b, q := pts[n-1], pts[0], pts[1]
		if (a.X == b.X && b.X == q.X) || (a.Y == b.Y && b.Y == q.Y) {
			pts = pts[1:]
		}
	}

	return pts, used, -1
}

// MalformedBoundaryError reports an internal consistency violation
// during boundary extraction. (X, Y) is the first cell of the affected
// region in scan order.
type MalformedBoundaryError struct {
	X, Y   int
	Reason string
}

func (e *MalformedBoundaryError) Error() string {
	return fmt.Sprintf("trace: malformed boundary for region at (%d,%d): %s", e.X, e.Y, e.Reason)
}
