// Package pkg provides the core libraries for chordchart, a generator of
// printable chord reference diagrams for the GKOS six-key chorded keyboard.
//
// # Overview
//
// GKOS types with six keys, three under each hand, and every character is a
// simultaneous combination (a chord) of those keys. A chord is a 6-bit mask;
// a layout maps chords to the characters they produce in the letter, number,
// and symbol modes. chordchart turns a layout definition into a single SVG
// reference sheet showing every chord with a miniature keyboard picture.
//
// The pkg directory is organized as:
//
//  1. [chord] - Chord bitmask algebra (keys, hands, grid positions)
//  2. [layout] - Layout XML model and parser
//  3. [render] - Output conversion (SVG to PDF/PNG)
//  4. [render/chart] - The diagram renderer itself
//  5. [bigram] - Word-pair suggestion data preparation
//  6. [errors] - Structured error handling with error codes
//  7. [buildinfo] - Build-time version metadata
//
// # Quick Start
//
// Parse a layout and render its reference diagram:
//
//	import (
//	    "github.com/bluezoo/chordchart/pkg/layout"
//	    "github.com/bluezoo/chordchart/pkg/render/chart"
//	)
//
//	lay, _ := layout.ParseFile("layouts/en.xml")
//	svg := chart.Render(lay, chart.WithVariant("Optimized"))
//	os.WriteFile("en.svg", svg, 0o644)
//
// Convert to other formats (requires rsvg-convert on PATH):
//
//	pdf, _ := render.ToPDF(ctx, svg)
//	png, _ := render.ToPNG(ctx, svg, 2.0)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/render/...    # Specific package
//
// [chord]: https://pkg.go.dev/github.com/bluezoo/chordchart/pkg/chord
// [layout]: https://pkg.go.dev/github.com/bluezoo/chordchart/pkg/layout
// [render]: https://pkg.go.dev/github.com/bluezoo/chordchart/pkg/render
// [render/chart]: https://pkg.go.dev/github.com/bluezoo/chordchart/pkg/render/chart
// [bigram]: https://pkg.go.dev/github.com/bluezoo/chordchart/pkg/bigram
// [errors]: https://pkg.go.dev/github.com/bluezoo/chordchart/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/bluezoo/chordchart/pkg/buildinfo
package pkg
