package sink

import (
	"encoding/json"

	"github.com/matzehuels/textlabel/pkg/label"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	width, height float64
}

// WithJSONSize records the canvas size in the output.
func WithJSONSize(w, h float64) JSONOption {
	return func(r *jsonRenderer) { r.width, r.height = w, h }
}

type jsonOutput struct {
	Width  float64     `json:"width,omitempty"`
	Height float64     `json:"height,omitempty"`
	Labels []JSONLabel `json:"labels"`
}

// JSONLabel is the serialized form of a [label.Descriptor].
type JSONLabel struct {
	X         float64           `json:"x"`
	Y         float64           `json:"y"`
	Dx        float64           `json:"dx"`
	Dy        float64           `json:"dy"`
	Transform string            `json:"transform,omitempty"`
	Direction string            `json:"direction,omitempty"`
	ID        string            `json:"id,omitempty"`
	Class     string            `json:"class,omitempty"`
	Title     string            `json:"title,omitempty"`
	Desc      string            `json:"desc,omitempty"`
	Events    map[string]string `json:"events,omitempty"`
	Portal    bool              `json:"portal,omitempty"`
	Lines     []JSONLine        `json:"lines"`
}

// JSONLine is one line of a [JSONLabel].
type JSONLine struct {
	Key        string    `json:"key"`
	Text       string    `json:"text"`
	X          *float64  `json:"x,omitempty"`
	Dx         float64   `json:"dx"`
	Dy         *float64  `json:"dy,omitempty"`
	TextAnchor string    `json:"text_anchor"`
	Style      JSONStyle `json:"style"`
}

// JSONStyle is a resolved line style.
type JSONStyle struct {
	Fill       string         `json:"fill"`
	FontSize   float64        `json:"font_size"`
	FontFamily string         `json:"font_family"`
	Stroke     string         `json:"stroke"`
	Extra      map[string]any `json:"extra,omitempty"`
}

// RenderJSON serializes laid-out labels for external renderers.
func RenderJSON(labels []label.Descriptor, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Width:  r.width,
		Height: r.height,
		Labels: make([]JSONLabel, len(labels)),
	}
	for i, d := range labels {
		out.Labels[i] = ToJSONLabel(d)
	}
	return json.MarshalIndent(out, "", "  ")
}

// ToJSONLabel converts a descriptor to its serialized form.
func ToJSONLabel(d label.Descriptor) JSONLabel {
	c := d.Container
	jl := JSONLabel{
		X:         c.X,
		Y:         c.Y,
		Dx:        c.Dx,
		Dy:        c.Dy,
		Transform: c.Transform,
		Direction: string(c.Direction),
		ID:        c.ID,
		Class:     c.ClassName,
		Title:     c.Title,
		Desc:      c.Desc,
		Events:    c.Events,
		Portal:    d.Portal,
		Lines:     make([]JSONLine, len(d.Lines)),
	}
	for i, l := range d.Lines {
		jl.Lines[i] = JSONLine{
			Key:        l.Key,
			Text:       l.Text,
			X:          l.X,
			Dx:         l.Dx,
			Dy:         l.Dy,
			TextAnchor: string(l.TextAnchor),
			Style: JSONStyle{
				Fill:       l.Style.Fill,
				FontSize:   l.Style.FontSize,
				FontFamily: l.Style.FontFamily,
				Stroke:     l.Style.Stroke,
				Extra:      l.Style.Extra,
			},
		}
	}
	return jl
}
