package sink

import (
	"bytes"
	"testing"

	"github.com/matzehuels/textlabel/pkg/errors"
	"github.com/matzehuels/textlabel/pkg/label"
	"github.com/matzehuels/textlabel/pkg/render"
)

func TestRenderRaster(t *testing.T) {
	labels := layout(t, label.Request{
		X:    label.Float(10),
		Y:    label.Float(20),
		Text: label.Literal(label.String("raster")),
	})
	svgOpts := []SVGOption{WithSize(100, 50)}

	if !render.Available() {
		if _, err := RenderPNG(labels, WithPNGSVGOptions(svgOpts...)); !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("RenderPNG() error = %v, want %v", err, errors.ErrCodeUnsupported)
		}
		if _, err := RenderPDF(labels, WithPDFSVGOptions(svgOpts...)); !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("RenderPDF() error = %v, want %v", err, errors.ErrCodeUnsupported)
		}
		return
	}

	png, err := RenderPNG(labels, WithPNGSVGOptions(svgOpts...), WithScale(1))
	if err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("RenderPNG() output is not a PNG")
	}

	pdf, err := RenderPDF(labels, WithPDFSVGOptions(svgOpts...))
	if err != nil {
		t.Fatalf("RenderPDF() error = %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("RenderPDF() output is not a PDF")
	}
}
