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

import "image/color"

// labeling assigns every grid cell to a maximal 4-connected same-color
// region. Region ids are dense, starting at 0, in scan order of each
// region's first cell.
type labeling struct {
	grid    *Grid
	ids     []int32 // per-cell region id
	regions []regionInfo
}

// regionInfo holds per-region data collected during labeling.
type regionInfo struct {
	color                  color.RGBA
	minX, minY, maxX, maxY int // cell bounding box, inclusive
	firstCell              int // row-major index of the first cell
	cells                  int // number of member cells
}

// labelRegions partitions the grid using flood fill with an explicit
// stack. Each cell is pushed exactly once, so the whole pass is
// O(width*height) in time and space.
func labelRegions(g *Grid) *labeling {
	w, h := g.Width, g.Height
	n := w * h

	l := &labeling{
		grid: g,
		ids:  make([]int32, n),
	}
	for i := range l.ids {
		l.ids[i] = -1
	}

	var stack []int32
	for i := range n {
		if l.ids[i] >= 0 {
			continue
		}

		id := int32(len(l.regions))
		c := g.Pix[i]
		info := regionInfo{
			color:     c,
			minX:      i % w,
			minY:      i / w,
			maxX:      i % w,
			maxY:      i / w,
			firstCell: i,
		}

		l.ids[i] = id
		stack = append(stack[:0], int32(i))
		for len(stack) > 0 {
			j := int(stack[len(stack)-1])
			stack = stack[:len(stack)-1]

			x, y := j%w, j/w
			info.cells++
			if x < info.minX {
				info.minX = x
			}
			if x > info.maxX {
				info.maxX = x
			}
			if y < info.minY {
				info.minY = y
			}
			if y > info.maxY {
				info.maxY = y
			}

			// 4-connected neighbors only; diagonal contact does
			// not join regions.
			if x > 0 && l.ids[j-1] < 0 && g.Pix[j-1] == c {
				l.ids[j-1] = id
				stack = append(stack, int32(j-1))
			}
			if x < w-1 && l.ids[j+1] < 0 && g.Pix[j+1] == c {
				l.ids[j+1] = id
				stack = append(stack, int32(j+1))
			}
			if y > 0 && l.ids[j-w] < 0 && g.Pix[j-w] == c {
				l.ids[j-w] = id
				stack = append(stack, int32(j-w))
			}
			if y < h-1 && l.ids[j+w] < 0 && g.Pix[j+w] == c {
				l.ids[j+w] = id
				stack = append(stack, int32(j+w))
			}
		}

		l.regions = append(l.regions, info)
	}

	return l
}

// idAt returns the region id of the cell at (x, y), or -1 for
// coordinates outside the grid.
func (l *labeling) idAt(x, y int) int32 {
	if x < 0 || y < 0 || x >= l.grid.Width || y >= l.grid.Height {
		return -1
	}
	return l.ids[y*l.grid.Width+x]
}
