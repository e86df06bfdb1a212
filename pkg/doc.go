// Package pkg provides the libraries behind textlabel, a layout engine for
// multi-line SVG text labels.
//
// # Overview
//
// A label is a piece of text attached to a point of a chart. Placing it
// well means splitting it into lines, resolving per-line styles, shifting
// the block so the chosen vertical anchor sits on the point, spacing the
// lines by blended font sizes and line heights, and rotating it (polar
// charts orient labels along the angle of their data point). The pkg
// directory is organized as:
//
//  1. [label] - The layout engine: request in, descriptor out
//  2. [scale] - Linear scales mapping data values to pixels
//  3. [io] - Label documents in TOML, YAML and JSON
//  4. [pipeline] - Orchestration (load → layout → render)
//  5. [render] and [render/sink] - SVG and JSON output, PNG and PDF conversion
//
// # Architecture
//
//	Label document (TOML / YAML / JSON)
//	         ↓
//	    [io] package (decode + validate → label requests)
//	         ↓
//	    [label] package (content → style → geometry → transform → assembly)
//	         ↓
//	    [render/sink] package (SVG, JSON; PNG/PDF via rsvg-convert)
//
// # Quick Start
//
// Lay out a single label and draw it:
//
//	import (
//	    "github.com/matzehuels/textlabel/pkg/label"
//	    "github.com/matzehuels/textlabel/pkg/render/sink"
//	)
//
//	e := label.New()
//	d, ok := e.Layout(label.Request{
//	    X:              label.Float(200),
//	    Y:              label.Float(150),
//	    Text:           label.Literal(label.String("Revenue\n2024")),
//	    VerticalAnchor: label.Literal(label.VerticalEnd),
//	    LineHeight:     label.Literal(label.LineHeights(1, 1.5)),
//	})
//	if ok {
//	    svg := sink.RenderSVG([]label.Descriptor{d})
//	}
//
// Render a whole document:
//
//	runner := pipeline.NewRunner(logger)
//	doc, _ := runner.Load(ctx, "labels.toml")
//	result, _ := runner.Execute(ctx, doc, pipeline.Options{Formats: []string{"svg", "png"}})
//
// # Supporting Packages
//
// [errors] - Coded errors used outside the engine (documents, flags, HTTP).
//
// [observability] - Hooks for decode, layout, render and HTTP events.
//
// [buildinfo] - Version information injected at build time.
//
// [label]: https://pkg.go.dev/github.com/matzehuels/textlabel/pkg/label
// [scale]: https://pkg.go.dev/github.com/matzehuels/textlabel/pkg/scale
// [io]: https://pkg.go.dev/github.com/matzehuels/textlabel/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/textlabel/pkg/pipeline
// [render]: https://pkg.go.dev/github.com/matzehuels/textlabel/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/textlabel/pkg/render/sink
// [errors]: https://pkg.go.dev/github.com/matzehuels/textlabel/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/textlabel/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/textlabel/pkg/buildinfo
package pkg
