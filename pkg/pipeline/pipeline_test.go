package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	pkgerrors "github.com/matzehuels/textlabel/pkg/errors"
	pkgio "github.com/matzehuels/textlabel/pkg/io"
	"github.com/matzehuels/textlabel/pkg/label"
	"github.com/matzehuels/textlabel/pkg/observability"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !pkgerrors.Is(err, pkgerrors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want INVALID_FORMAT", tt.format, pkgerrors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var o Options
		if err := o.ValidateAndSetDefaults(0, 0); err != nil {
			t.Fatalf("ValidateAndSetDefaults() error = %v", err)
		}
		if diff := cmp.Diff([]string{FormatSVG}, o.Formats); diff != "" {
			t.Errorf("Formats mismatch (-want +got):\n%s", diff)
		}
		if o.Width != DefaultWidth || o.Height != DefaultHeight || o.Scale != DefaultScale {
			t.Errorf("size = %vx%v scale %v", o.Width, o.Height, o.Scale)
		}
		if o.Logger == nil {
			t.Error("Logger not set")
		}
	})

	t.Run("document size", func(t *testing.T) {
		o := Options{Width: 50}
		if err := o.ValidateAndSetDefaults(800, 600); err != nil {
			t.Fatal(err)
		}
		if o.Width != 50 || o.Height != 600 {
			t.Errorf("size = %vx%v, want 50x600", o.Width, o.Height)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, o := range []Options{
			{Formats: []string{"gif"}},
			{Width: -1},
			{Scale: -2},
		} {
			if err := o.ValidateAndSetDefaults(0, 0); err == nil {
				t.Errorf("ValidateAndSetDefaults(%+v) = nil, want error", o)
			}
		}
	})
}

func requests(texts ...string) []label.Request {
	reqs := make([]label.Request, len(texts))
	for i, s := range texts {
		reqs[i] = label.Request{ID: s}
		if s != "" {
			reqs[i].Text = label.Literal(label.String(s))
		}
	}
	return reqs
}

func TestLayoutOrder(t *testing.T) {
	reqs := requests("a", "", "b", "c", "", "d", "e", "f")

	got, err := Layout(context.Background(), label.New(), reqs, 3)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}

	ids := make([]string, len(got))
	for i, d := range got {
		ids[i] = d.Container.ID
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d", "e", "f"}, ids); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Layout(ctx, label.New(), requests("a", "b"), 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Layout() error = %v, want context.Canceled", err)
	}
}

func TestRender(t *testing.T) {
	labels, err := Layout(context.Background(), label.New(), requests("hello"), 1)
	if err != nil {
		t.Fatal(err)
	}

	opts := Options{Formats: []string{FormatSVG, FormatJSON}, Background: "white", Anchors: true}
	if err := opts.ValidateAndSetDefaults(0, 0); err != nil {
		t.Fatal(err)
	}
	artifacts, err := Render(labels, opts)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	svg := string(artifacts[FormatSVG])
	for _, want := range []string{`viewBox="0 0 400 300"`, `fill="white"`, `class="anchor"`, ">hello</tspan>"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}

	var decoded struct {
		Width  float64 `json:"width"`
		Labels []any   `json:"labels"`
	}
	if err := json.Unmarshal(artifacts[FormatJSON], &decoded); err != nil {
		t.Fatalf("json artifact: %v", err)
	}
	if decoded.Width != 400 || len(decoded.Labels) != 1 {
		t.Errorf("json artifact = %+v", decoded)
	}
}

const sampleDoc = `
width = 200
height = 100

[scale.x]
domain = [0, 10]
range = [0, 200]

[[labels]]
id = "first"
text = "one\ntwo"
datum = { x = 5, y = 0 }

[[labels]]
id = "empty"

[[labels]]
id = "bad"
text = "x"
[[labels.style]]
font_size = "big"
`

type recordingHooks struct {
	observability.NoopPipelineHooks
	mu     sync.Mutex
	events []string
}

func (h *recordingHooks) record(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, s)
}

func (h *recordingHooks) OnDecodeStart(context.Context, string) { h.record("decode") }
func (h *recordingHooks) OnLayoutComplete(_ context.Context, rendered int, _ time.Duration, err error) {
	if err == nil && rendered == 2 {
		h.record("layout")
	}
}
func (h *recordingHooks) OnRenderComplete(_ context.Context, formats []string, _ time.Duration, err error) {
	if err == nil {
		h.record("render:" + strings.Join(formats, ","))
	}
}

func TestRunnerExecute(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	t.Cleanup(observability.Reset)

	var logs bytes.Buffer
	runner := NewRunner(log.New(&logs))

	ctx := context.Background()
	doc, err := runner.Decode(ctx, strings.NewReader(sampleDoc), pkgio.FormatTOML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	result, err := runner.Execute(ctx, doc, Options{Formats: []string{FormatSVG}})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Stats.LabelCount != 3 || result.Stats.Rendered != 2 {
		t.Errorf("Stats = %+v, want 3 labels, 2 rendered", result.Stats)
	}
	if got := result.Labels[0].Container.X; got != 100 {
		t.Errorf("scaled x = %v, want 100", got)
	}
	if !strings.Contains(string(result.Artifacts[FormatSVG]), `viewBox="0 0 200 100"`) {
		t.Error("svg does not use the document size")
	}
	if !strings.Contains(logs.String(), "fontSize should be expressed as a number of pixels") {
		t.Errorf("font size warning not logged:\n%s", logs.String())
	}
	if diff := cmp.Diff([]string{"decode", "layout", "render:svg"}, hooks.events); diff != "" {
		t.Errorf("hook events mismatch (-want +got):\n%s", diff)
	}
}

func TestRunnerExecuteNilDocument(t *testing.T) {
	runner := NewRunner(log.New(io.Discard))
	_, err := runner.Execute(context.Background(), nil, Options{})
	if !pkgerrors.Is(err, pkgerrors.ErrCodeInvalidInput) {
		t.Errorf("Execute(nil) error = %v, want INVALID_INPUT", err)
	}
}

func TestRunnerLoadMissing(t *testing.T) {
	runner := NewRunner(log.New(io.Discard))
	_, err := runner.Load(context.Background(), t.TempDir()+"/missing.toml")
	if !pkgerrors.Is(err, pkgerrors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}
