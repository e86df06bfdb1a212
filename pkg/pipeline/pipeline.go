// Package pipeline runs label documents through the load → layout → render
// stages shared by the CLI and the HTTP service.
//
// # Stages
//
//  1. Load: decode a TOML, YAML or JSON label document
//  2. Layout: lay out every label in parallel, keeping document order
//  3. Render: produce SVG, JSON, PNG or PDF artifacts
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	doc, err := runner.Load(ctx, "labels.toml")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx, doc, pipeline.Options{Formats: []string{"svg"}})
//	if err != nil {
//	    return err
//	}
//	svg := result.Artifacts["svg"]
//
// Stage events are reported through [observability.Pipeline].
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/textlabel/pkg/errors"
	"github.com/matzehuels/textlabel/pkg/label"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the canvas width used when neither the options nor
	// the document set one.
	DefaultWidth = 400.0

	// DefaultHeight is the canvas height used when neither the options nor
	// the document set one.
	DefaultHeight = 300.0

	// DefaultScale is the PNG rasterization factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run. It supports JSON serialization for
// API requests.
type Options struct {
	Formats    []string `json:"formats,omitempty"`
	Width      float64  `json:"width,omitempty"`
	Height     float64  `json:"height,omitempty"`
	Background string   `json:"background,omitempty"`
	Anchors    bool     `json:"anchors,omitempty"` // Mark label anchor points in SVG output
	Scale      float64  `json:"scale,omitempty"`   // PNG rasterization factor

	// Concurrency bounds parallel layout. Zero means one worker per CPU.
	Concurrency int `json:"-"`

	Logger *log.Logger `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Labels holds one descriptor per rendered label, in document order.
	Labels []label.Descriptor

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LabelCount int // Labels in the document
	Rendered   int // Labels with content
	LayoutTime time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults. Width
// and height fall back to the document canvas, then to the package defaults.
func (o *Options) ValidateAndSetDefaults(docWidth, docHeight float64) error {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.Formats = slices.Compact(slices.Clone(o.Formats))
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Width < 0 || o.Height < 0 || o.Scale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "width, height and scale must not be negative")
	}
	if o.Width == 0 {
		o.Width = docWidth
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = docHeight
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}
