// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package zone computes which modules of a QR code may be recoloured
without harming decodability, and searches the resulting safe grid
for label placement rectangles.
*/
package zone

// MinVersion and MaxVersion bound the supported QR versions.
// A QR code with version v has 4v+17 modules on a side.
const (
	MinVersion = 1
	MaxVersion = 40
)

// Size returns the side length of a QR code with the given version.
func Size(ver int) int {
	return ver*4 + 17
}

// A Pos is a 0-indexed (row, column) module coordinate.
type Pos struct {
	Row, Col int
}

// A Set is a set of module positions.
type Set map[Pos]struct{}

func (s Set) add(row, col int) {
	s[Pos{row, col}] = struct{}{}
}

// Contains returns true if (row, col) is in s.
func (s Set) Contains(row, col int) bool {
	_, ok := s[Pos{row, col}]
	return ok
}

// acoord holds the second and third alignment pattern centre
// coordinates for each version.  The first centre is always 6, further
// centres continue at the stride of the second and third up to size-7.
// Versions 1 to 6 have at most two distinct coordinates.
// From the qrencode-3.1.1 tables.
var acoord = [MaxVersion + 1][2]uint8{
	{0, 0},
	{0, 0}, {18, 0}, {22, 0}, {26, 0}, {30, 0}, // 1- 5
	{34, 0}, {22, 38}, {24, 42}, {26, 46}, {28, 50}, // 6-10
	{30, 54}, {32, 58}, {34, 62}, {26, 46}, {26, 48}, //11-15
	{26, 50}, {30, 54}, {30, 56}, {30, 58}, {34, 62}, //16-20
	{28, 50}, {26, 50}, {30, 54}, {28, 54}, {32, 58}, //21-25
	{30, 58}, {34, 62}, {26, 50}, {30, 54}, {26, 52}, //26-30
	{30, 56}, {34, 60}, {30, 58}, {34, 62}, {30, 54}, //31-35
	{24, 50}, {28, 54}, {32, 58}, {26, 54}, {30, 58}, //36-40
}

// AlignCenters returns the alignment pattern centre coordinates for
// the given version.  The same coordinates apply to rows and columns.
// Versions below 2 have no alignment patterns.
func AlignCenters(ver int) []int {
	if ver < 2 || ver > MaxVersion {
		return nil
	}
	a, b := int(acoord[ver][0]), int(acoord[ver][1])
	c := []int{6, a}
	if b != 0 {
		for step, last := b-a, Size(ver)-7; b <= last; b += step {
			c = append(c, b)
		}
	}
	return c
}

// inLocator returns true if an alignment pattern centred at (row, col)
// would overlap a locator corner.
func inLocator(row, col, siz int) bool {
	return row <= 8 && col <= 8 ||
		row <= 8 && col >= siz-8 ||
		row >= siz-8 && col <= 8
}

// Forbidden returns the set of module positions of a QR code of the
// given version that must not be recoloured: the three locator corners
// with their separators, the timing row and column, the alignment
// patterns and the dark module.  The quiet zone lies outside the grid
// and is not represented.  Forbidden is a pure function of ver.
func Forbidden(ver int) Set {
	siz := Size(ver)
	s := make(Set)

	// Locator corners, 7x7 plus separator: 9x9 top left, clipped to
	// 9x8 top right and 8x9 bottom left.
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			s.add(row, col)
		}
		for col := siz - 8; col < siz; col++ {
			s.add(row, col)
		}
	}
	for row := siz - 8; row < siz; row++ {
		for col := 0; col < 9; col++ {
			s.add(row, col)
		}
	}

	// Timing row 6 and column 6 between the locators.
	for i := 8; i < siz-8; i++ {
		s.add(6, i)
		s.add(i, 6)
	}

	// Alignment patterns, 5x5 around each centre pair, skipping
	// centres inside locator corners.
	cc := AlignCenters(ver)
	for _, crow := range cc {
		for _, ccol := range cc {
			if inLocator(crow, ccol, siz) {
				continue
			}
			for row := crow - 2; row <= crow+2; row++ {
				for col := ccol - 2; col <= ccol+2; col++ {
					if 0 <= row && row < siz &&
						0 <= col && col < siz {
						s.add(row, col)
					}
				}
			}
		}
	}

	// Dark module.
	s.add(ver*4+9, 8)
	return s
}

// Safe returns a boolean grid of the given version's size, true where
// the module is absent from Forbidden(ver).
func Safe(ver int) [][]bool {
	siz := Size(ver)
	forbidden := Forbidden(ver)
	grid := make([][]bool, siz)
	for row := range grid {
		grid[row] = make([]bool, siz)
		for col := range grid[row] {
			grid[row][col] = !forbidden.Contains(row, col)
		}
	}
	return grid
}
