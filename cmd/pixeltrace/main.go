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

// Command pixeltrace converts PNG images to pixel-exact SVG files.
// Each maximal same-color pixel region becomes one SVG path, so the
// output renders identically to the input at every scale.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/trace"
	"seehuhn.de/go/trace/svg"
)

func main() {
	log.SetFlags(0)

	background := flag.Bool("background", true,
		"fold the most common color into a background rectangle")
	output := flag.String("o", "",
		"output file name (single input only; default: input with .svg suffix)")
	flag.Usage = usage
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		usage()
		os.Exit(2)
	}
	if *output != "" && len(files) > 1 {
		log.Fatal("pixeltrace: -o cannot be used with multiple input files")
	}

	opt := &svg.Options{Background: *background}

	failed := 0
	for i, fname := range files {
		log.Printf("[%d/%d] %s", i+1, len(files), filepath.Base(fname))

		outName := *output
		if outName == "" {
			outName = strings.TrimSuffix(fname, filepath.Ext(fname)) + ".svg"
		}
		if err := convert(fname, outName, opt); err != nil {
			log.Printf("  error: %v", err)
			failed++
			continue
		}
		log.Printf("  wrote %s", outName)
	}

	if len(files) > 1 {
		log.Printf("%d converted, %d failed", len(files)-failed, failed)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func convert(fname, outName string, opt *svg.Options) error {
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("cannot decode %s: %w", fname, err)
	}

	g := trace.FromImage(img)
	records, err := trace.Trace(g)
	if err != nil {
		return err
	}

	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	if err := svg.Write(out, g, records, opt); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: pixeltrace [options] input.png ...\n\n")
	fmt.Fprintf(os.Stderr, "Converts PNG images to pixel-exact SVG files.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
