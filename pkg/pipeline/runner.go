package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/textlabel/pkg/errors"
	pkgio "github.com/matzehuels/textlabel/pkg/io"
	"github.com/matzehuels/textlabel/pkg/label"
	"github.com/matzehuels/textlabel/pkg/observability"
)

// Runner executes the pipeline. It holds no per-run state, so one Runner
// can serve concurrent runs with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses the charmbracelet default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Load reads the label document at path.
func (r *Runner) Load(ctx context.Context, path string) (*pkgio.Document, error) {
	format, err := pkgio.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, string(format))
	start := time.Now()

	doc, err := pkgio.Import(path)
	hooks.OnDecodeComplete(ctx, string(format), labelCount(doc), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("loaded document", "path", path, "labels", len(doc.Labels))
	return doc, nil
}

// Decode reads a label document from rd.
func (r *Runner) Decode(ctx context.Context, rd io.Reader, format pkgio.Format) (*pkgio.Document, error) {
	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, string(format))
	start := time.Now()

	doc, err := pkgio.Read(rd, format)
	hooks.OnDecodeComplete(ctx, string(format), labelCount(doc), time.Since(start), err)
	return doc, err
}

// Engine returns a layout engine configured with the document defaults.
// Engine warnings go to logger.
func Engine(doc *pkgio.Document, logger *log.Logger) *label.Engine {
	opts := []label.Option{label.WithDefaults(doc.EngineDefaults())}
	if logger != nil {
		opts = append(opts, label.WithLogger(logger))
	}
	return label.New(opts...)
}

// LayoutDocument runs the layout stage only.
func (r *Runner) LayoutDocument(ctx context.Context, doc *pkgio.Document, opts Options) ([]label.Descriptor, error) {
	logger := opts.Logger
	if logger == nil {
		logger = r.Logger
	}

	reqs := doc.Requests()
	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, len(reqs))
	start := time.Now()

	labels, err := Layout(ctx, Engine(doc, logger), reqs, opts.Concurrency)
	hooks.OnLayoutComplete(ctx, len(labels), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return labels, nil
}

// Execute runs layout and render over doc.
func (r *Runner) Execute(ctx context.Context, doc *pkgio.Document, opts Options) (*Result, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "document is required")
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(doc.Width, doc.Height); err != nil {
		return nil, err
	}

	result := &Result{}
	result.Stats.LabelCount = len(doc.Labels)

	layoutStart := time.Now()
	labels, err := r.LayoutDocument(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	result.Labels = labels
	result.Stats.Rendered = len(labels)
	result.Stats.LayoutTime = time.Since(layoutStart)

	r.Logger.Info("laid out labels",
		"labels", result.Stats.LabelCount,
		"rendered", result.Stats.Rendered,
		"duration", result.Stats.LayoutTime)

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()

	artifacts, err := Render(labels, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func labelCount(doc *pkgio.Document) int {
	if doc == nil {
		return 0
	}
	return len(doc.Labels)
}
