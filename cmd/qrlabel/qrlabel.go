// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Qrlabel generates a QR code for a URL with a pixel text label
// embedded in the symbol, and writes it as a PNG image.
package main

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/qrlabel"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	text    string // label text
	fn      string // output filename
	scale   int    // pixels per module
	border  int    // quiet zone
	ver     int    // starting version
	max     int    // maximum version
	verbose bool   // report attempts
}{}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "QR code generator with embedded pixel text\n"+
		"Usage: ", cl.Program(), " ", cl.UsageLine(), " url\n"+
		"The label defaults to the domain of the URL, uppercased.\n\n")
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`qrlabel version 0.1.0
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.SetParameters("url")
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V',
		"print version and copyright").SetFlag()
	getopt.FlagLong(&g.text, "text", 't',
		"label text [domain of the URL]", "text")
	getopt.FlagLong(&g.fn, "output", 'o', `output file, or "-" for `+
		`standard output [<domain>.png, "-" if not a TTY]`, "file")
	scale := getopt.Unsigned('s', qrlabel.DefaultScale,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 64},
		"image pixels per QR module", "scale")
	border := getopt.Unsigned('m', qrlabel.DefaultBorder,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 64},
		"quiet zone width in modules", "margin")
	ver := getopt.Unsigned('v', qrlabel.DefaultStart,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"starting QR version", "ver")
	max := getopt.Unsigned('M', qrlabel.DefaultMax,
		&getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 1, Max: 40},
		"maximum QR version", "ver")
	getopt.FlagLong(&g.verbose, "verbose", 0, "report progress")

	getopt.Parse()
	g.scale = int(*scale)
	g.border = int(*border)
	g.ver = int(*ver)
	g.max = int(*max)
}

func main() {
	log.SetFlags(0)
	parseFlags()
	args := getopt.Args()
	if len(args) != 1 {
		usage()
	}
	url := args[0]
	text := g.text
	if text == "" {
		text = qrlabel.ExtractDomain(url)
	}
	if len(text) > 15 {
		log.Printf("warning: label is %d characters, wide labels "+
			"shrink the safe area (recommended: up to 15)",
			len(text))
	}
	if g.verbose {
		log.Println("generating QR code for:", url)
		log.Println("embedding label:", text)
	}

	gen := qrlabel.Generator{
		Start:  g.ver,
		Max:    g.max,
		Scale:  g.scale,
		Border: g.border,
	}
	res, err := gen.Generate(context.Background(), url, text)
	if err != nil {
		log.Fatalln(err)
	}

	fn := g.fn
	if fn == "" && isatty.IsTerminal(uintptr(syscall.Stdout)) {
		fn = strings.NewReplacer(".", "_", ":", "_").
			Replace(strings.ToLower(text)) + ".png"
	}
	w := os.Stdout
	if fn != "" && fn != "-" {
		if w, err = os.OpenFile(fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			log.Fatalln(err)
		}
	}
	if err = png.Encode(w, res.Image); err == nil && w != os.Stdout {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
	if fn != "" && fn != "-" {
		log.Println("generated QR code:", fn)
	}
	log.Println("  QR version:", res.Version)
	log.Println("  iterations:", res.Iterations)
	log.Println("  embedded label:", res.Label)
}
