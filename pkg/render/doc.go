// Package render converts rendered label SVG into other formats.
//
// # Overview
//
// Label layout produces [label.Descriptor] values; the [sink] subpackage turns
// them into SVG or JSON. This package handles the remaining formats:
//
//	svg := sink.RenderSVG(descriptors, sink.WithSize(400, 300))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg), which must
// be on PATH:
//
//	brew install librsvg        # macOS
//	apt install librsvg2-bin    # Debian/Ubuntu
//
// [label.Descriptor]: github.com/matzehuels/textlabel/pkg/label.Descriptor
// [sink]: github.com/matzehuels/textlabel/pkg/render/sink
package render
