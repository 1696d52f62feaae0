// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrlabel

import (
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/unixdj/qr/coding"
)

// An Encoder returns the module grid of a QR code encoding payload at
// the given version, true for dark modules.  The grid must be square
// with 4*ver+17 modules on a side.  Encoding fails if payload does
// not fit at the version.
type Encoder func(payload string, ver int) ([][]bool, error)

// A Decoder returns the payloads of any QR codes found in img, or
// nothing.
type Decoder func(img image.Image) []string

// EncodeQR is the default Encoder.  It encodes payload in byte mode
// at error correction level H, leaving mask selection to the coding
// package, which makes it deterministic.
func EncodeQR(payload string, ver int) ([][]bool, error) {
	c, err := coding.Encode(coding.Version(ver), coding.H,
		coding.Segment{Text: payload, Mode: coding.Byte})
	if err != nil {
		return nil, err
	}
	grid := make([][]bool, c.Size)
	for y := range grid {
		grid[y] = make([]bool, c.Size)
		for x := range grid[y] {
			grid[y][x] = c.Black(x, y)
		}
	}
	return grid, nil
}

// DecodeQR is the default Decoder, reading img with a zxing QR
// reader.
func DecodeQR(img image.Image) []string {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil
	}
	res, err := qrcode.NewQRCodeReader().Decode(bmp,
		map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		})
	if err != nil {
		return nil
	}
	return []string{res.GetText()}
}
