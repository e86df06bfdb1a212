// Package io reads and writes label documents.
//
// # Overview
//
// A document describes a canvas, optional linear scales and a list of
// labels. Documents can be written as TOML, YAML or JSON; the encoding is
// chosen from the file extension by [Import] and [Export].
//
// # TOML Format
//
//	width = 400
//	height = 300
//
//	[scale.x]
//	domain = [0, 10]
//	range = [0, 400]
//
//	[scale.y]
//	domain = [0, 10]
//	range = [300, 0]
//
//	[[labels]]
//	id = "peak"
//	text = "peak\n9.5"
//	datum = { x = 7, y = 9.5 }
//	vertical_anchor = "end"
//	line_heights = [1, 1.4]
//
//	[[labels.style]]
//	font_size = "12px"
//	fill = "tomato"
//
// # Label Fields
//
// Content comes from lines (one entry per line, never split), text (split
// on newlines) or number, in that order. Position comes from x/y when set,
// otherwise from the datum mapped through the scales. Style entries are
// passed to the layout engine as-is after snake_case keys are converted to
// camelCase, so font_size and fontSize are equivalent.
//
// [Document.Requests] converts the labels into [label.Request] values ready
// for the layout engine.
package io
