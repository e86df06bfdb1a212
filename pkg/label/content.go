package label

import (
	"math"
	"strconv"
	"strings"
)

// Text is label content: either a scalar that is split on newlines, or a
// sequence with one entry per line.
type Text struct {
	scalar string
	lines  []Prop[string]
	seq    bool
}

// String returns scalar text content.
func String(s string) *Text { return &Text{scalar: s} }

// Number returns scalar numeric content.
func Number(n float64) *Text { return &Text{scalar: formatNumber(n)} }

// Lines returns sequence content, one line per entry.
func Lines(lines ...string) *Text {
	props := make([]Prop[string], len(lines))
	for i, l := range lines {
		props[i] = Literal(l)
	}
	return &Text{lines: props, seq: true}
}

// LineProps returns sequence content whose entries may be computed.
func LineProps(lines ...Prop[string]) *Text {
	return &Text{lines: append([]Prop[string](nil), lines...), seq: true}
}

// resolveContent returns the lines to render, or false when the label
// has nothing to render.
func resolveContent(r *Request) ([]string, bool) {
	t, ok := r.Text.Resolve(r)
	if !ok || t == nil {
		return nil, false
	}
	if t.seq {
		lines := make([]string, len(t.lines))
		for i, l := range t.lines {
			lines[i] = l.ResolveOr(r, "")
		}
		return lines, true
	}
	return strings.Split(t.scalar, "\n"), true
}

var exponentTrim = strings.NewReplacer("e+0", "e+", "e-0", "e-")

// formatNumber renders n the way a JavaScript number stringifies.
func formatNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	abs := math.Abs(n)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		return exponentTrim.Replace(strconv.FormatFloat(n, 'e', -1, 64))
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
