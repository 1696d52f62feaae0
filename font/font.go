// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package font holds a fixed 3x5 pixel font for QR code labels.

The character set is A-Z, 0-9, space and ".-:/+!?".  Lookup of any
other character fails with UnsupportedError; there is no placeholder
glyph.  Callers wanting case-insensitive labels must uppercase first.
*/
package font

import "strconv"

// Glyph geometry in modules.
const (
	GlyphWidth = 3 // columns per glyph
	Height     = 5 // rows, shared by all glyphs
	Spacing    = 1 // columns between glyphs
)

// An UnsupportedError reports a character absent from the font.
type UnsupportedError rune

func (e UnsupportedError) Error() string {
	return "font: unsupported character " + strconv.QuoteRune(rune(e))
}

// A Glyph is a 3x5 bitmap packed row-major into the low 15 bits,
// top left pixel at bit 14.
type Glyph uint16

// Bit returns true if the glyph pixel at (row, col) is set.
func (g Glyph) Bit(row, col int) bool {
	return g>>(14-row*GlyphWidth-col)&1 != 0
}

var glyphs = map[rune]Glyph{
	'A': 0b010_101_111_101_101,
	'B': 0b110_101_110_101_110,
	'C': 0b011_100_100_100_011,
	'D': 0b110_101_101_101_110,
	'E': 0b111_100_110_100_111,
	'F': 0b111_100_110_100_100,
	'G': 0b011_100_101_101_011,
	'H': 0b101_101_111_101_101,
	'I': 0b111_010_010_010_111,
	'J': 0b001_001_001_101_010,
	'K': 0b101_101_110_101_101,
	'L': 0b100_100_100_100_111,
	'M': 0b101_111_111_101_101,
	'N': 0b110_101_101_101_101,
	'O': 0b010_101_101_101_010,
	'P': 0b110_101_110_100_100,
	'Q': 0b010_101_101_010_001,
	'R': 0b110_101_110_101_101,
	'S': 0b011_100_010_001_110,
	'T': 0b111_010_010_010_010,
	'U': 0b101_101_101_101_111,
	'V': 0b101_101_101_101_010,
	'W': 0b101_101_111_111_101,
	'X': 0b101_101_010_101_101,
	'Y': 0b101_101_010_010_010,
	'Z': 0b111_001_010_100_111,
	'0': 0b111_101_101_101_111,
	'1': 0b010_110_010_010_111,
	'2': 0b111_001_111_100_111,
	'3': 0b111_001_111_001_111,
	'4': 0b101_101_111_001_001,
	'5': 0b111_100_111_001_111,
	'6': 0b111_100_111_101_111,
	'7': 0b111_001_001_010_010,
	'8': 0b111_101_111_101_111,
	'9': 0b111_101_111_001_111,
	' ': 0b000_000_000_000_000,
	'.': 0b000_000_000_000_010,
	'-': 0b000_000_111_000_000,
	':': 0b000_010_000_010_000,
	'/': 0b001_001_010_100_100,
	'+': 0b000_010_111_010_000,
	'!': 0b010_010_010_000_010,
	'?': 0b110_001_010_000_010,
}

// Lookup returns the glyph for r.
func Lookup(r rune) (Glyph, error) {
	g, ok := glyphs[r]
	if !ok {
		return 0, UnsupportedError(r)
	}
	return g, nil
}

// Width returns the width in modules of s rendered in the font:
// the glyph widths plus inter-glyph spacing.  It fails on the first
// unsupported character.  The width of the empty string is zero.
func Width(s string) (int, error) {
	n := 0
	for _, r := range s {
		if _, ok := glyphs[r]; !ok {
			return 0, UnsupportedError(r)
		}
		n++
	}
	if n == 0 {
		return 0, nil
	}
	return n*GlyphWidth + (n-1)*Spacing, nil
}
