// Package label computes the layout of SVG text labels.
//
// # Overview
//
// A [Request] describes a label: where it is anchored (literal coordinates
// or a datum run through a [Scale]), what it says, how it is styled and how
// it is rotated. [Engine.Layout] turns it into a [Descriptor], the attributes
// of one outer text element and one entry per rendered line, ready for a
// render target such as the SVG sink.
//
// Layout runs five stages over the request:
//
//   - content: the text becomes a list of lines
//   - style: each style is merged over [Defaults] and gets a numeric font size
//   - geometry: anchor point, dx and the aggregate baseline offset dy
//   - transform: custom transform plus rotation about the anchor point
//   - assembly: container attributes and per-line offsets
//
// # Props
//
// Most request fields are a [Prop], either a [Literal] or a function of the
// request built with [Computed]:
//
//	req := label.Request{
//	    Text:  label.Literal(label.String("revenue\n2024")),
//	    Datum: &label.Datum{X: 3, Y: 12},
//	    Scale: label.Scale{label.DimX: xs.Map, label.DimY: ys.Map},
//	    Style: []label.Style{{
//	        label.KeyFill: label.Computed(func(r *label.Request) any {
//	            if r.Datum.Y < 0 {
//	                return "tomato"
//	            }
//	            return "black"
//	        }),
//	    }},
//	    VerticalAnchor: label.Literal(label.VerticalEnd),
//	}
//	d, ok := label.New(label.WithLogger(logger)).Layout(req)
//
// # Vertical anchoring
//
// The container dy places the block of lines relative to the anchor using
// the cap height (default [DefaultCapHeight]) of the first style's font:
//
//	end:    dy + (capHeight/2 + (0.5 - lines)   * lineHeight) * fontSize
//	middle: dy + (capHeight/2 + (0.5 - lines/2) * lineHeight) * fontSize
//	start:  dy + (capHeight/2 + lineHeight/2) * fontSize
//
// Every line after the first is then offset from the previous one by its
// blended line height times its blended font size, so lines with different
// styles stack smoothly. Inline labels keep all lines on one baseline.
//
// # Errors
//
// Layout never fails. A label without text yields false and must not be
// drawn. Malformed font sizes fall back to the default size and log a
// warning through the engine's [Logger].
package label
