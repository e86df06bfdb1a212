package sink

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/textlabel/pkg/label"
)

func layout(t *testing.T, reqs ...label.Request) []label.Descriptor {
	t.Helper()
	e := label.New()
	var out []label.Descriptor
	for _, r := range reqs {
		if d, ok := e.Layout(r); ok {
			out = append(out, d)
		}
	}
	return out
}

func TestRenderSVGWellFormed(t *testing.T) {
	labels := layout(t,
		label.Request{
			ID:    "a",
			X:     label.Float(10),
			Y:     label.Float(20),
			Text:  label.Literal(label.String("one & two\n<three>")),
			Title: "tips & tricks",
			Angle: label.Literal(30.0),
		},
		label.Request{ID: "b", Text: label.Literal(label.String("plain"))},
	)

	svg := RenderSVG(labels, WithSize(200, 100), WithBackground("white"), WithAnchors())

	dec := xml.NewDecoder(strings.NewReader(string(svg)))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("RenderSVG() produced invalid XML: %v\n%s", err, svg)
		}
	}

	out := string(svg)
	for _, want := range []string{
		`viewBox="0 0 200 100"`,
		`<rect width="100%" height="100%" fill="white"/>`,
		`one &amp; two`,
		`&lt;three&gt;`,
		`<title>tips &amp; tricks</title>`,
		`transform="rotate(30,10,20)"`,
		`class="anchor"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderSVG() missing %q\n%s", want, out)
		}
	}
}

func TestRenderSVGLines(t *testing.T) {
	labels := layout(t, label.Request{
		X:    label.Float(5),
		Y:    label.Float(6),
		Text: label.Literal(label.String("a\nb")),
		Style: []label.Style{{
			label.KeyFill:   label.Literal[any]("tomato"),
			"fontWeight":    label.Literal[any]("bold"),
			label.KeyStroke: label.Literal[any]("none"),
		}},
	})
	out := string(RenderSVG(labels))

	if n := strings.Count(out, "<tspan"); n != 2 {
		t.Errorf("tspan count = %d, want 2", n)
	}
	if !strings.Contains(out, `dy="14"`) {
		t.Errorf("second line dy missing:\n%s", out)
	}
	if !strings.Contains(out, "fill: tomato; font-size: 14px;") {
		t.Errorf("style missing:\n%s", out)
	}
	if !strings.Contains(out, "font-weight: bold") {
		t.Errorf("extra style missing:\n%s", out)
	}
	if !strings.Contains(out, `text-anchor="start"`) {
		t.Errorf("text-anchor missing:\n%s", out)
	}
}

func TestRenderSVGInline(t *testing.T) {
	labels := layout(t, label.Request{
		X:      label.Float(5),
		Text:   label.Literal(label.String("a\nb")),
		Inline: true,
	})
	out := string(RenderSVG(labels))
	if strings.Contains(out, `<tspan x=`) {
		t.Errorf("inline tspans must not reset x:\n%s", out)
	}
}

func TestRenderSVGPortal(t *testing.T) {
	labels := layout(t,
		label.Request{ID: "overlay", RenderInPortal: true, Text: label.Literal(label.String("top"))},
		label.Request{ID: "base", Text: label.Literal(label.String("bottom"))},
	)
	out := string(RenderSVG(labels))

	portal := strings.Index(out, `<g class="portal">`)
	if portal < 0 {
		t.Fatalf("portal group missing:\n%s", out)
	}
	if base := strings.Index(out, `id="base"`); base < 0 || base > portal {
		t.Errorf("regular label must precede the portal group")
	}
	if overlay := strings.Index(out, `id="overlay"`); overlay < portal {
		t.Errorf("portal label must be inside the portal group")
	}

	out = string(RenderSVG(layout(t, label.Request{Text: label.Literal(label.String("x"))})))
	if strings.Contains(out, "portal") {
		t.Errorf("portal group rendered without portal labels")
	}
}

func TestRenderSVGEventsAndDirection(t *testing.T) {
	labels := layout(t, label.Request{
		Text:      label.Literal(label.String("x")),
		Direction: label.DirectionRTL,
		Events:    map[string]string{"onClick": "pick('x')", "onMouseOver": "hover()"},
	})
	out := string(RenderSVG(labels))
	for _, want := range []string{`direction="rtl"`, `onclick="pick(&#39;x&#39;)"`, `onmouseover="hover()"`} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "onclick") > strings.Index(out, "onmouseover") {
		t.Error("event attributes not sorted")
	}
}

func TestRenderSVGDropsUnsafeEventNames(t *testing.T) {
	labels := layout(t, label.Request{
		ID:   "e",
		Text: label.Literal(label.String("x")),
		Events: map[string]string{
			`x="1"><script>alert(1)</script><g a`: "v",
			"on click":                            "v",
			"onClick":                             "ok()",
		},
	})
	out := string(RenderSVG(labels))

	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("output is not well-formed XML: %v\n%s", err, out)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "script" {
			t.Fatalf("event name injected a <script> element:\n%s", out)
		}
	}
	if strings.Contains(out, "alert(1)") || strings.Contains(out, "on click") {
		t.Errorf("unsafe event name rendered:\n%s", out)
	}
	if !strings.Contains(out, `onclick="ok()"`) {
		t.Errorf("valid event handler missing:\n%s", out)
	}
}

func TestStyleCSSDropsUnsafeDeclarations(t *testing.T) {
	got := styleCSS(label.ResolvedStyle{
		Fill:       "red; display: none",
		FontSize:   12,
		FontFamily: "Helvetica, sans-serif",
		Stroke:     "none",
		Extra: map[string]any{
			"fontWeight":    "bold",
			"letterSpacing": "1px}",
			"x:y":           "1",
		},
	})
	want := "font-size: 12px; font-family: Helvetica, sans-serif; stroke: none; font-weight: bold"
	if got != want {
		t.Errorf("styleCSS() = %q, want %q", got, want)
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:          "0",
		100:        "100",
		4.97:       "4.97",
		-30.03:     "-30.03",
		1.005:      "1",
		12.5:       "12.5",
		-0.0001:    "0",
		2.3456e+02: "234.56",
	}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestKebabCase(t *testing.T) {
	tests := map[string]string{
		"fill":          "fill",
		"fontWeight":    "font-weight",
		"letterSpacing": "letter-spacing",
	}
	for in, want := range tests {
		if got := kebabCase(in); got != want {
			t.Errorf("kebabCase(%q) = %q, want %q", in, got, want)
		}
	}
}
