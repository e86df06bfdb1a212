// Package sink provides output format renderers for laid-out labels.
//
// # Overview
//
// A "sink" transforms [label.Descriptor] values into a final output format:
//
//   - SVG: one <text> element per label, one <tspan> per line
//   - JSON: descriptor export for external renderers
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster image output (requires rsvg-convert)
//
// Labels with nothing to render never reach a sink: [label.Engine.Layout]
// reports them and callers skip them.
//
// # SVG Output
//
//	svg := sink.RenderSVG(descriptors,
//	    sink.WithSize(400, 300),
//	    sink.WithBackground("white"),
//	)
//
// Container attributes go on the <text> element; line offsets, text anchors
// and resolved styles go on each <tspan> as attributes and an inline style.
// Labels whose descriptor has Portal set are drawn last in a separate
// <g class="portal"> overlay so they stack above every other label.
//
// # SVG Options
//
//   - [WithSize]: canvas size in pixels (default 400x300)
//   - [WithBackground]: fill a background rectangle
//   - [WithAnchors]: mark each label's anchor point, for debugging placement
//
// # JSON Output
//
// [RenderJSON] writes the canvas size and every descriptor with its lines
// and resolved styles. Absent per-line offsets are omitted rather than
// written as zero.
package sink
