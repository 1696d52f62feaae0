// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrlabel

import (
	"image"

	"github.com/unixdj/qrlabel/font"
	"github.com/unixdj/qrlabel/zone"
)

// padding is the width of the white band around the label, in modules.
const padding = 1

// Render rasterizes a module grid as a two-tone grayscale image at
// scale pixels per module with a quiet border of border modules.
func Render(grid [][]bool, scale, border int) *image.Gray {
	siz := len(grid)
	pix := scale * (siz + border*2)
	img := image.NewGray(image.Rect(0, 0, pix, pix))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for row := range grid {
		for col, dark := range grid[row] {
			if dark {
				block(img, scale, border, row, col)
			}
		}
	}
	return img
}

// block paints the module (row, col) black.
func block(img *image.Gray, scale, border, row, col int) {
	x := (border + col) * scale
	y := (border + row) * scale
	for i := 0; i < scale; i++ {
		r := img.Pix[(y+i)*img.Stride+x:]
		for j := 0; j < scale; j++ {
			r[j] = 0
		}
	}
}

// Overlay burns label into img at anchor, the label's top left module
// position within the grid rendered by Render with the same scale and
// border.  A white band of padding modules is painted around the
// label first, so glyphs never touch raw grid modules.  The caller
// must ensure the padded label lies within the grid; Overlay painting
// outside img is a contract violation and panics.
func Overlay(img *image.Gray, scale, border int, anchor zone.Pos, label string) error {
	w, err := font.Width(label)
	if err != nil {
		return err
	}

	// Background band.
	x := (border + anchor.Col - padding) * scale
	y := (border + anchor.Row - padding) * scale
	for i := 0; i < (font.Height+2*padding)*scale; i++ {
		r := img.Pix[(y+i)*img.Stride+x:]
		for j := 0; j < (w+2*padding)*scale; j++ {
			r[j] = 0xff
		}
	}

	// Glyphs.
	col := anchor.Col
	for _, r := range label {
		g, err := font.Lookup(r)
		if err != nil {
			return err
		}
		for i := 0; i < font.Height; i++ {
			for j := 0; j < font.GlyphWidth; j++ {
				if g.Bit(i, j) {
					block(img, scale, border,
						anchor.Row+i, col+j)
				}
			}
		}
		col += font.GlyphWidth + font.Spacing
	}
	return nil
}
