package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/matzehuels/textlabel/pkg/errors"
	"github.com/matzehuels/textlabel/pkg/label"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	background    string
	anchors       bool
}

func WithSize(w, h float64) SVGOption      { return func(r *svgRenderer) { r.width, r.height = w, h } }
func WithBackground(fill string) SVGOption { return func(r *svgRenderer) { r.background = fill } }
func WithAnchors() SVGOption               { return func(r *svgRenderer) { r.anchors = true } }

// RenderSVG draws the labels into a standalone SVG document. Labels marked
// for portal rendering are drawn after all other labels, in their own
// overlay group, so they stay on top.
func RenderSVG(labels []label.Descriptor, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(r.width), num(r.height), num(r.width), num(r.height))

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))
	}

	regular, portal := splitPortal(labels)
	buf.WriteString(`  <g class="labels">` + "\n")
	for _, d := range regular {
		r.renderLabel(&buf, d)
	}
	buf.WriteString("  </g>\n")

	if len(portal) > 0 {
		buf.WriteString(`  <g class="portal">` + "\n")
		for _, d := range portal {
			r.renderLabel(&buf, d)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{width: 400, height: 300}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// splitPortal separates portal labels from the rest, keeping input order.
func splitPortal(labels []label.Descriptor) (regular, portal []label.Descriptor) {
	for _, d := range labels {
		if d.Portal {
			portal = append(portal, d)
		} else {
			regular = append(regular, d)
		}
	}
	return regular, portal
}

func (r *svgRenderer) renderLabel(buf *bytes.Buffer, d label.Descriptor) {
	c := d.Container
	buf.WriteString("    <text")
	attr(buf, "x", num(c.X))
	attr(buf, "y", num(c.Y))
	attr(buf, "dx", num(c.Dx))
	attr(buf, "dy", num(c.Dy))
	if c.Transform != "" {
		attr(buf, "transform", c.Transform)
	}
	if c.Direction != "" && c.Direction != label.DirectionInherit {
		attr(buf, "direction", string(c.Direction))
	}
	if c.ID != "" {
		attr(buf, "id", c.ID)
	}
	if c.ClassName != "" {
		attr(buf, "class", c.ClassName)
	}
	for _, k := range sortedKeys(c.Events) {
		// Names are written unescaped, so anything but onfoo is dropped.
		if errors.ValidateEventName(k) != nil {
			continue
		}
		attr(buf, strings.ToLower(k), c.Events[k])
	}
	buf.WriteString(">")

	if c.Title != "" {
		fmt.Fprintf(buf, "<title>%s</title>", escapeXML(c.Title))
	}
	if c.Desc != "" {
		fmt.Fprintf(buf, "<desc>%s</desc>", escapeXML(c.Desc))
	}
	for _, l := range d.Lines {
		renderLine(buf, l)
	}
	buf.WriteString("</text>\n")

	if r.anchors {
		fmt.Fprintf(buf, `    <circle cx="%s" cy="%s" r="2" fill="red" class="anchor"/>`+"\n", num(c.X), num(c.Y))
	}
}

func renderLine(buf *bytes.Buffer, l label.Line) {
	buf.WriteString("<tspan")
	if l.X != nil {
		attr(buf, "x", num(*l.X))
	}
	attr(buf, "dx", num(l.Dx))
	if l.Dy != nil {
		attr(buf, "dy", num(*l.Dy))
	}
	if l.TextAnchor != "" {
		attr(buf, "text-anchor", string(l.TextAnchor))
	}
	attr(buf, "style", styleCSS(l.Style))
	buf.WriteString(">")
	buf.WriteString(escapeXML(l.Text))
	buf.WriteString("</tspan>")
}

// styleCSS renders a resolved style as an inline CSS declaration list.
// Declarations whose property or value could start another declaration
// are left out.
func styleCSS(s label.ResolvedStyle) string {
	var decls []string
	add := func(prop, value string) {
		if errors.ValidateStyleKey(prop) != nil || errors.ValidateStyleValue(prop, value) != nil {
			return
		}
		decls = append(decls, prop+": "+value)
	}
	add("fill", s.Fill)
	add("font-size", num(s.FontSize)+"px")
	add("font-family", s.FontFamily)
	add("stroke", s.Stroke)
	for _, k := range sortedKeys(s.Extra) {
		add(kebabCase(k), cssValue(s.Extra[k]))
	}
	return strings.Join(decls, "; ")
}

func cssValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return num(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	}
	return fmt.Sprint(v)
}

func attr(buf *bytes.Buffer, name, value string) {
	fmt.Fprintf(buf, ` %s="%s"`, name, escapeXML(value))
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func kebabCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
