// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zone

// A Rect is an axis-aligned rectangle of modules.
type Rect struct {
	Row, Col int // top left corner
	W, H     int // width and height in modules
}

// Anchor returns the top left position of a w by h label centred
// within r.  The label must not be larger than r.
func (r Rect) Anchor(w, h int) Pos {
	return Pos{r.Row + (r.H-h)/2, r.Col + (r.W-w)/2}
}

// MaxRect returns the all-true rectangle of maximum area in grid with
// width at least minW and height at least minH, and true, or the zero
// Rect and false if no such rectangle exists.  Among equal-area
// rectangles the first found wins, scanning rows top to bottom, then
// extending each column run leftward.
func MaxRect(grid [][]bool, minW, minH int) (Rect, bool) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Rect{}, false
	}
	cols := len(grid[0])
	runs := make([]int, cols) // consecutive true cells ending here

	var best Rect
	area := 0
	for row := range grid {
		for col, v := range grid[row] {
			if !v {
				runs[col] = 0
				continue
			}
			runs[col]++

			// Extend leftward, tracking the lowest run.
			h := runs[col]
			for k := col; k >= 0 && runs[k] > 0; k-- {
				h = min(h, runs[k])
				w := col - k + 1
				if w*h > area && w >= minW && h >= minH {
					best = Rect{row - h + 1, k, w, h}
					area = w * h
				}
			}
		}
	}
	return best, area > 0
}
