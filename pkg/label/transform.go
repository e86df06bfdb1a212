package label

import "strings"

// TransformOp is a single SVG transform function such as translate(10,5).
type TransformOp struct {
	Name string
	Args []float64
}

func (op TransformOp) String() string {
	args := make([]string, len(op.Args))
	for i, a := range op.Args {
		args[i] = formatNumber(a)
	}
	return op.Name + "(" + strings.Join(args, ",") + ")"
}

// Transform is a custom transform: a raw SVG transform string, or an
// ordered list of operations.
type Transform struct {
	Raw string
	Ops []TransformOp
}

// RawTransform returns a Transform emitted verbatim.
func RawTransform(s string) Transform { return Transform{Raw: s} }

// Translate returns a translate(x,y) operation.
func Translate(x, y float64) TransformOp {
	return TransformOp{Name: "translate", Args: []float64{x, y}}
}

// ScaleBy returns a scale(x,y) operation.
func ScaleBy(x, y float64) TransformOp {
	return TransformOp{Name: "scale", Args: []float64{x, y}}
}

// Rotate returns a rotate(angle,cx,cy) operation.
func Rotate(angle, cx, cy float64) TransformOp {
	return TransformOp{Name: "rotate", Args: []float64{angle, cx, cy}}
}

// IsZero reports whether the transform is empty.
func (t Transform) IsZero() bool { return t.Raw == "" && len(t.Ops) == 0 }

func (t Transform) String() string {
	if t.Raw != "" {
		return t.Raw
	}
	parts := make([]string, len(t.Ops))
	for i, op := range t.Ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, " ")
}

func transformValue(v any) Transform {
	switch t := v.(type) {
	case Transform:
		return t
	case *Transform:
		if t != nil {
			return *t
		}
	case TransformOp:
		return Transform{Ops: []TransformOp{t}}
	case []TransformOp:
		return Transform{Ops: t}
	case string:
		return RawTransform(t)
	}
	return Transform{}
}

// resolveTransform composes the custom transform with the label rotation
// about (x, y). It returns "" when there is nothing to apply.
func (e *Engine) resolveTransform(r *Request, style ResolvedStyle, x, y float64) string {
	angle := e.resolveAngle(r, style)

	custom := style.Transform
	if t, ok := r.Transform.Resolve(r); ok && !t.IsZero() {
		custom = t
	}

	if custom.IsZero() && angle == 0 {
		return ""
	}
	var parts []string
	if !custom.IsZero() {
		parts = append(parts, custom.String())
	}
	if angle != 0 {
		parts = append(parts, Rotate(angle, x, y).String())
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// resolveAngle prefers the style angle over the request angle. Polar
// labels without either take the polar angle helper's value.
func (e *Engine) resolveAngle(r *Request, style ResolvedStyle) float64 {
	if style.Angle != nil {
		return *style.Angle
	}
	if a, ok := r.Angle.Resolve(r); ok {
		return a
	}
	if r.Polar {
		return e.polarAngle(r)
	}
	return 0
}
