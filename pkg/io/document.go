package io

import (
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/matzehuels/textlabel/pkg/errors"
	"github.com/matzehuels/textlabel/pkg/label"
	"github.com/matzehuels/textlabel/pkg/scale"
)

// Document is a set of labels drawn on one canvas.
type Document struct {
	Width    float64          `toml:"width" yaml:"width" json:"width"`
	Height   float64          `toml:"height" yaml:"height" json:"height"`
	Polar    bool             `toml:"polar,omitempty" yaml:"polar,omitempty" json:"polar,omitempty"`
	Origin   *Point           `toml:"origin,omitempty" yaml:"origin,omitempty" json:"origin,omitempty"`
	Scale    map[string]Scale `toml:"scale,omitempty" yaml:"scale,omitempty" json:"scale,omitempty"`
	Defaults *Defaults        `toml:"defaults,omitempty" yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Labels   []Label          `toml:"labels" yaml:"labels" json:"labels"`
}

// Point is a pixel coordinate.
type Point struct {
	X float64 `toml:"x" yaml:"x" json:"x"`
	Y float64 `toml:"y" yaml:"y" json:"y"`
}

// Scale is a linear scale for one dimension.
type Scale struct {
	Domain [2]float64 `toml:"domain" yaml:"domain" json:"domain"`
	Range  [2]float64 `toml:"range" yaml:"range" json:"range"`
	Clamp  bool       `toml:"clamp,omitempty" yaml:"clamp,omitempty" json:"clamp,omitempty"`
}

// Defaults overrides the stock label style. Zero fields keep the stock value.
type Defaults struct {
	Fill       string  `toml:"fill,omitempty" yaml:"fill,omitempty" json:"fill,omitempty"`
	FontSize   float64 `toml:"font_size,omitempty" yaml:"font_size,omitempty" json:"font_size,omitempty"`
	FontFamily string  `toml:"font_family,omitempty" yaml:"font_family,omitempty" json:"font_family,omitempty"`
	Stroke     string  `toml:"stroke,omitempty" yaml:"stroke,omitempty" json:"stroke,omitempty"`
}

// Datum is the data point a label is attached to.
type Datum struct {
	X      float64        `toml:"x" yaml:"x" json:"x"`
	Y      float64        `toml:"y" yaml:"y" json:"y"`
	Fields map[string]any `toml:"fields,omitempty" yaml:"fields,omitempty" json:"fields,omitempty"`
}

// LineList is sequence content. An empty, non-nil list is a label with
// no lines and survives encoding; a nil list is omitted.
type LineList []string

// IsZero reports whether the list is unset. It drives omitempty in YAML
// and omitzero in JSON; the TOML encoder skips nil slices on its own.
func (l LineList) IsZero() bool { return l == nil }

// Label is the serialized form of a [label.Request]. Text comes from Lines
// when set, then Text, then Number.
type Label struct {
	ID     string   `toml:"id,omitempty" yaml:"id,omitempty" json:"id,omitempty"`
	Text   *string  `toml:"text,omitempty" yaml:"text,omitempty" json:"text,omitempty"`
	Lines  LineList `toml:"lines" yaml:"lines,omitempty" json:"lines,omitzero"`
	Number *float64 `toml:"number,omitempty" yaml:"number,omitempty" json:"number,omitempty"`
	X      *float64 `toml:"x,omitempty" yaml:"x,omitempty" json:"x,omitempty"`
	Y      *float64 `toml:"y,omitempty" yaml:"y,omitempty" json:"y,omitempty"`
	Datum  *Datum   `toml:"datum,omitempty" yaml:"datum,omitempty" json:"datum,omitempty"`
	Dx     *float64 `toml:"dx,omitempty" yaml:"dx,omitempty" json:"dx,omitempty"`
	Dy     *float64 `toml:"dy,omitempty" yaml:"dy,omitempty" json:"dy,omitempty"`
	Angle  *float64 `toml:"angle,omitempty" yaml:"angle,omitempty" json:"angle,omitempty"`

	Transform      string    `toml:"transform,omitempty" yaml:"transform,omitempty" json:"transform,omitempty"`
	TextAnchor     string    `toml:"text_anchor,omitempty" yaml:"text_anchor,omitempty" json:"text_anchor,omitempty"`
	VerticalAnchor string    `toml:"vertical_anchor,omitempty" yaml:"vertical_anchor,omitempty" json:"vertical_anchor,omitempty"`
	LineHeight     *float64  `toml:"line_height,omitempty" yaml:"line_height,omitempty" json:"line_height,omitempty"`
	LineHeights    []float64 `toml:"line_heights,omitempty" yaml:"line_heights,omitempty" json:"line_heights,omitempty"`
	CapHeight      *float64  `toml:"cap_height,omitempty" yaml:"cap_height,omitempty" json:"cap_height,omitempty"`
	Placement      string    `toml:"label_placement,omitempty" yaml:"label_placement,omitempty" json:"label_placement,omitempty"`
	Inline         bool      `toml:"inline,omitempty" yaml:"inline,omitempty" json:"inline,omitempty"`
	Direction      string    `toml:"direction,omitempty" yaml:"direction,omitempty" json:"direction,omitempty"`
	Portal         bool      `toml:"render_in_portal,omitempty" yaml:"render_in_portal,omitempty" json:"render_in_portal,omitempty"`

	Class  string            `toml:"class,omitempty" yaml:"class,omitempty" json:"class,omitempty"`
	Title  string            `toml:"title,omitempty" yaml:"title,omitempty" json:"title,omitempty"`
	Desc   string            `toml:"desc,omitempty" yaml:"desc,omitempty" json:"desc,omitempty"`
	Events map[string]string `toml:"events,omitempty" yaml:"events,omitempty" json:"events,omitempty"`
	Style  []map[string]any  `toml:"style,omitempty" yaml:"style,omitempty" json:"style,omitempty"`
}

// Validate checks the document for values the layout engine would
// silently misinterpret.
func (d *Document) Validate() error {
	if d.Width < 0 || d.Height < 0 {
		return errors.New(errors.ErrCodeInvalidDocument, "canvas size must not be negative (got %gx%g)", d.Width, d.Height)
	}
	for dim := range d.Scale {
		if dim != string(label.DimX) && dim != string(label.DimY) {
			return errors.New(errors.ErrCodeInvalidDocument, "unknown scale dimension %q (want x or y)", dim)
		}
	}

	if def := d.Defaults; def != nil {
		for key, v := range map[string]string{"fill": def.Fill, "font_family": def.FontFamily, "stroke": def.Stroke} {
			if err := errors.ValidateStyleValue(key, v); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDocument, err, "defaults")
			}
		}
	}

	seen := make(map[string]int, len(d.Labels))
	for i, l := range d.Labels {
		if err := l.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLabel, err, "label %d", i)
		}
		if l.ID == "" {
			continue
		}
		if j, dup := seen[l.ID]; dup {
			return errors.New(errors.ErrCodeInvalidLabel, "labels %d and %d share id %q", j, i, l.ID)
		}
		seen[l.ID] = i
	}
	return nil
}

func (l *Label) validate() error {
	if err := errors.ValidateLabelID(l.ID); err != nil {
		return err
	}
	if err := errors.ValidateTextAnchor(l.TextAnchor); err != nil {
		return err
	}
	if err := errors.ValidateVerticalAnchor(l.VerticalAnchor); err != nil {
		return err
	}
	if err := errors.ValidateDirection(l.Direction); err != nil {
		return err
	}
	for _, name := range slices.Sorted(maps.Keys(l.Events)) {
		if err := errors.ValidateEventName(name); err != nil {
			return err
		}
	}
	for i, style := range l.Style {
		if err := validateStyle(style); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidLabel, err, "style %d", i)
		}
	}
	switch label.Placement(l.Placement) {
	case "", label.PlacementParallel, label.PlacementPerpendicular, label.PlacementVertical:
	default:
		return errors.New(errors.ErrCodeInvalidLabel, "invalid label placement %q", l.Placement)
	}
	if l.LineHeight != nil && l.LineHeights != nil {
		return errors.New(errors.ErrCodeInvalidLabel, "set line_height or line_heights, not both")
	}
	return nil
}

func validateStyle(style map[string]any) error {
	for _, key := range slices.Sorted(maps.Keys(style)) {
		if err := errors.ValidateStyleKey(key); err != nil {
			return err
		}
		if v, ok := style[key].(string); ok {
			if err := errors.ValidateStyleValue(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// EngineDefaults returns the stock defaults with the document overrides applied.
func (d *Document) EngineDefaults() label.Defaults {
	def := label.DefaultStyle()
	if d.Defaults == nil {
		return def
	}
	if d.Defaults.Fill != "" {
		def.Fill = d.Defaults.Fill
	}
	if d.Defaults.FontSize > 0 {
		def.FontSize = d.Defaults.FontSize
	}
	if d.Defaults.FontFamily != "" {
		def.FontFamily = d.Defaults.FontFamily
	}
	if d.Defaults.Stroke != "" {
		def.Stroke = d.Defaults.Stroke
	}
	return def
}

// Scales returns the document's scale functions.
func (d *Document) Scales() label.Scale {
	out := make(label.Scale, len(d.Scale))
	for dim, s := range d.Scale {
		lin := scale.Linear{Domain: s.Domain, Range: s.Range, Clamp: s.Clamp}
		out[label.Dimension(dim)] = lin.Map
	}
	return out
}

// Requests converts every label into a layout request, in document order.
func (d *Document) Requests() []label.Request {
	scales := d.Scales()
	var origin *label.Point
	if d.Origin != nil {
		origin = &label.Point{X: d.Origin.X, Y: d.Origin.Y}
	}

	reqs := make([]label.Request, len(d.Labels))
	for i := range d.Labels {
		r := d.Labels[i].Request()
		r.Scale = scales
		r.Polar = d.Polar
		r.Origin = origin
		reqs[i] = r
	}
	return reqs
}

// Request converts the label into a layout request without scales.
func (l *Label) Request() label.Request {
	r := label.Request{
		X:              l.X,
		Y:              l.Y,
		LabelPlacement: label.Placement(l.Placement),
		Inline:         l.Inline,
		Direction:      label.Direction(l.Direction),
		RenderInPortal: l.Portal,
		ID:             l.ID,
		ClassName:      l.Class,
		Title:          l.Title,
		Desc:           l.Desc,
		Events:         l.Events,
	}

	switch {
	case l.Lines != nil:
		r.Text = label.Literal(label.Lines(l.Lines...))
	case l.Text != nil:
		r.Text = label.Literal(label.String(*l.Text))
	case l.Number != nil:
		r.Text = label.Literal(label.Number(*l.Number))
	}

	if l.Datum != nil {
		r.Datum = &label.Datum{X: l.Datum.X, Y: l.Datum.Y, Fields: l.Datum.Fields}
	}
	setFloat(&r.Dx, l.Dx)
	setFloat(&r.Dy, l.Dy)
	setFloat(&r.Angle, l.Angle)
	setFloat(&r.CapHeight, l.CapHeight)

	if l.Transform != "" {
		r.Transform = label.Literal(label.RawTransform(l.Transform))
	}
	if l.TextAnchor != "" {
		r.TextAnchor = label.Literal(label.TextAnchor(l.TextAnchor))
	}
	if l.VerticalAnchor != "" {
		r.VerticalAnchor = label.Literal(label.VerticalAnchor(l.VerticalAnchor))
	}
	switch {
	case l.LineHeights != nil:
		r.LineHeight = label.Literal(label.LineHeights(l.LineHeights...))
	case l.LineHeight != nil:
		r.LineHeight = label.Literal(label.UniformLineHeight(*l.LineHeight))
	}

	for _, s := range l.Style {
		r.Style = append(r.Style, styleFrom(s))
	}
	return r
}

func setFloat(p *label.Prop[float64], v *float64) {
	if v != nil {
		*p = label.Literal(*v)
	}
}

func styleFrom(m map[string]any) label.Style {
	s := make(label.Style, len(m))
	for k, v := range m {
		s[camelCase(k)] = label.Literal(v)
	}
	return s
}

// camelCase turns document keys such as font_size into fontSize.
// Keys without underscores are returned unchanged.
func camelCase(key string) string {
	if !strings.Contains(key, "_") {
		return key
	}
	var b strings.Builder
	upper := false
	for _, r := range key {
		if r == '_' {
			upper = b.Len() > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
