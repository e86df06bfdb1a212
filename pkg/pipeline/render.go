package pipeline

import (
	"fmt"

	"github.com/matzehuels/textlabel/pkg/label"
	"github.com/matzehuels/textlabel/pkg/render/sink"
)

// Render generates output artifacts in the requested formats. Options
// must already be validated.
func Render(labels []label.Descriptor, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(labels, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(labels, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(labels, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(labels, sink.WithJSONSize(opts.Width, opts.Height))
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithSize(opts.Width, opts.Height)}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	if opts.Anchors {
		svgOpts = append(svgOpts, sink.WithAnchors())
	}
	return svgOpts
}
