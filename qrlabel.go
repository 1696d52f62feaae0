// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrlabel generates QR codes with a human-readable pixel text
label embedded in the symbol.

The label is painted over data modules only, never over locator,
timing or alignment patterns, and every generated code is decoded
before being returned.  Codes are generated at error correction
level H and the version is raised until the labelled code still
decodes to the original payload.
*/
package qrlabel

import (
	"context"
	"errors"
	"image"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/unixdj/qrlabel/font"
	"github.com/unixdj/qrlabel/zone"
)

// Generator defaults.
const (
	DefaultStart  = 5  // first QR version tried
	DefaultMax    = 40 // last QR version tried
	DefaultScale  = 10 // image pixels per module
	DefaultBorder = 4  // quiet zone width in modules

	step = 2 // version increment between attempts
)

// ErrEmptyLabel is returned for an empty label.
var ErrEmptyLabel = errors.New("qrlabel: empty label")

// An ExhaustedError reports that no version up to Max produced a
// labelled code that decodes to its payload.
type ExhaustedError struct {
	Iterations int // number of versions tried
	Max        int // maximum version configured
}

func (e *ExhaustedError) Error() string {
	return "qrlabel: no scannable code after " +
		strconv.Itoa(e.Iterations) + " attempts up to version " +
		strconv.Itoa(e.Max)
}

// A Generator generates labelled QR codes.  The zero value uses the
// defaults and the built-in encoder and decoder.  Generators are
// stateless; a single Generator may be used concurrently.
type Generator struct {
	Start  int // first version to try [5]
	Max    int // last version to try [40]
	Scale  int // image pixels per module [10]
	Border int // quiet zone width in modules [4]

	Encode Encoder // QR encoder [EncodeQR]
	Decode Decoder // QR decoder [DecodeQR]
}

// A Result is a verified labelled QR code.
type Result struct {
	Image      *image.Gray // the labelled code, already decode-checked
	Label      string      // the label as embedded, uppercased
	Version    int         // version of the final code
	Iterations int         // number of versions tried
}

// upper uppercases a label.  Casers carry transform state, so each
// call gets its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// Generate generates a QR code for payload with label embedded,
// verified to decode to payload.  The label is uppercased; characters
// outside the font fail with font.UnsupportedError.  Versions
// Start, Start+2, ... are tried until the labelled code decodes to
// payload byte for byte; if version Max is passed, Generate fails
// with ExhaustedError.  ctx is checked between attempts.
func (g *Generator) Generate(ctx context.Context, payload, label string) (*Result, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	label = upper(label)
	w, err := font.Width(label)
	if err != nil {
		return nil, err
	}

	start, max := g.Start, g.Max
	if start == 0 {
		start = DefaultStart
	}
	if max == 0 {
		max = DefaultMax
	}
	scale, border := g.Scale, g.Border
	if scale == 0 {
		scale = DefaultScale
	}
	if border == 0 {
		border = DefaultBorder
	}
	encode, decode := g.Encode, g.Decode
	if encode == nil {
		encode = EncodeQR
	}
	if decode == nil {
		decode = DecodeQR
	}

	iter := 0
	for ver := start; ver <= max; ver += step {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iter++
		grid, err := encode(payload, ver)
		if err != nil {
			// Payload does not fit at this version.
			continue
		}
		rect, ok := zone.MaxRect(zone.Safe(ver), w, font.Height)
		if !ok {
			continue
		}
		img := Render(grid, scale, border)
		if err := Overlay(img, scale, border,
			rect.Anchor(w, font.Height), label); err != nil {
			return nil, err
		}
		for _, s := range decode(img) {
			if s == payload {
				return &Result{img, label, ver, iter}, nil
			}
		}
	}
	return nil, &ExhaustedError{iter, max}
}

// Generate generates a labelled QR code with the default Generator.
func Generate(payload, label string) (*Result, error) {
	var g Generator
	return g.Generate(context.Background(), payload, label)
}

// ExtractDomain returns the uppercased host part of rawurl, without
// a leading "www.", for use as a default label, or "QR-CODE" if
// rawurl has no host.
func ExtractDomain(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil || u.Host == "" {
		return "QR-CODE"
	}
	return upper(strings.TrimPrefix(u.Host, "www."))
}
