package label

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Style keys understood by the resolver. Other keys pass through to the
// render target untouched.
const (
	KeyFill           = "fill"
	KeyFontSize       = "fontSize"
	KeyFontFamily     = "fontFamily"
	KeyStroke         = "stroke"
	KeyTextAnchor     = "textAnchor"
	KeyVerticalAnchor = "verticalAnchor"
	KeyAngle          = "angle"
	KeyTransform      = "transform"
)

const fontSizeWarning = "fontSize should be expressed as a number of pixels"

// Style is a set of style entries, each literal or computed from the request.
type Style map[string]Prop[any]

// Defaults is the base style every label style is merged over.
type Defaults struct {
	Fill       string
	FontSize   float64
	FontFamily string
	Stroke     string
}

// DefaultStyle returns the stock label defaults.
func DefaultStyle() Defaults {
	return Defaults{
		Fill:       "#252525",
		FontSize:   14,
		FontFamily: "'Gill Sans', 'Gill Sans MT', 'Seravek', 'Trebuchet MS', sans-serif",
		Stroke:     "transparent",
	}
}

func (d Defaults) entries() map[string]any {
	return map[string]any{
		KeyFill:       d.Fill,
		KeyFontSize:   d.FontSize,
		KeyFontFamily: d.FontFamily,
		KeyStroke:     d.Stroke,
	}
}

// ResolvedStyle is a style with every entry evaluated and a numeric font size.
type ResolvedStyle struct {
	Fill       string
	FontSize   float64
	FontFamily string
	Stroke     string

	TextAnchor     TextAnchor
	VerticalAnchor VerticalAnchor
	Angle          *float64
	Transform      Transform

	// Extra holds every other evaluated entry, keyed as given.
	Extra map[string]any
}

// resolveStyles returns one resolved style per entry of r.Style, or a
// single style when r.Style has fewer than two entries.
func (e *Engine) resolveStyles(r *Request) []ResolvedStyle {
	if len(r.Style) == 0 {
		return []ResolvedStyle{e.resolveStyle(r, nil)}
	}
	out := make([]ResolvedStyle, len(r.Style))
	for i, s := range r.Style {
		out[i] = e.resolveStyle(r, s)
	}
	return out
}

func (e *Engine) resolveStyle(r *Request, s Style) ResolvedStyle {
	merged := e.defaults.entries()
	for k, p := range s {
		if v, ok := p.Resolve(r); ok {
			merged[k] = v
		}
	}

	rs := ResolvedStyle{
		Fill:       stringValue(merged[KeyFill]),
		FontFamily: stringValue(merged[KeyFontFamily]),
		Stroke:     stringValue(merged[KeyStroke]),
		FontSize:   e.fontSize(merged[KeyFontSize]),
	}
	for k, v := range merged {
		switch k {
		case KeyFill, KeyFontFamily, KeyStroke, KeyFontSize:
		case KeyTextAnchor:
			rs.TextAnchor = TextAnchor(stringValue(v))
		case KeyVerticalAnchor:
			rs.VerticalAnchor = VerticalAnchor(stringValue(v))
		case KeyAngle:
			if f, ok := numberValue(v); ok {
				rs.Angle = &f
			}
		case KeyTransform:
			rs.Transform = transformValue(v)
		default:
			if rs.Extra == nil {
				rs.Extra = make(map[string]any)
			}
			rs.Extra[k] = v
		}
	}
	return rs
}

// fontSize converts a style's font size to pixels. Malformed values fall
// back to the default size with a warning.
func (e *Engine) fontSize(v any) float64 {
	if v == nil {
		return e.defaults.FontSize
	}
	if f, ok := numberValue(v); ok {
		if validFontSize(f) {
			return f
		}
		e.logger.Warn(fontSizeWarning, "value", f)
		return e.defaults.FontSize
	}
	s, ok := v.(string)
	if !ok {
		return e.defaults.FontSize
	}
	if f, ok := parsePixels(s); ok && validFontSize(f) {
		return f
	}
	e.logger.Warn(fontSizeWarning, "value", s)
	return e.defaults.FontSize
}

func validFontSize(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}

// parsePixels parses a size such as "12", "12px" or " 12.5px ".
// A blank string is zero.
func parsePixels(s string) (float64, bool) {
	s = strings.TrimSpace(strings.Replace(s, "px", "", 1))
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	if f, ok := numberValue(v); ok {
		return formatNumber(f)
	}
	return fmt.Sprint(v)
}
