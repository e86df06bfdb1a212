package label

import "strconv"

// Logger receives non-fatal warnings. *log.Logger from
// github.com/charmbracelet/log satisfies it.
type Logger interface {
	Warn(msg any, keyvals ...any)
}

type discardLogger struct{}

func (discardLogger) Warn(any, ...any) {}

// Option configures an [Engine].
type Option func(*Engine)

// WithLogger routes layout warnings to l.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDefaults replaces the base style labels are merged over.
func WithDefaults(d Defaults) Option { return func(e *Engine) { e.defaults = d } }

// WithPolarAngle replaces the helper used to orient polar labels.
func WithPolarAngle(fn func(*Request) float64) Option {
	return func(e *Engine) {
		if fn != nil {
			e.polarAngle = fn
		}
	}
}

// Engine lays out labels. It holds no per-label state and is safe for
// concurrent use.
type Engine struct {
	logger     Logger
	defaults   Defaults
	polarAngle func(*Request) float64
}

// New returns an Engine with the stock defaults.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:     discardLogger{},
		defaults:   DefaultStyle(),
		polarAngle: PolarAngle,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Defaults returns the base style of the engine.
func (e *Engine) Defaults() Defaults { return e.defaults }

// Container holds the attributes of the outer text element.
type Container struct {
	X, Y      float64
	Dx, Dy    float64
	Transform string
	Direction Direction
	ClassName string
	Title     string
	Desc      string
	ID        string
	Events    map[string]string
}

// Line is one rendered line of a label.
type Line struct {
	Key        string
	Dx         float64
	TextAnchor TextAnchor
	Style      ResolvedStyle
	Text       string

	// X resets the line to the container x. Nil for inline labels.
	X *float64

	// Dy is the offset from the previous line. Nil for the first line and
	// for inline labels.
	Dy *float64
}

// Descriptor is everything a render target needs to draw a label.
type Descriptor struct {
	Container Container
	Lines     []Line

	// Portal asks the render target to draw the label above regular content.
	Portal bool
}

// Geometry returns the container placement of d.
func (d Descriptor) Geometry() Geometry {
	c := d.Container
	return Geometry{X: c.X, Y: c.Y, Dx: c.Dx, Dy: c.Dy, Transform: c.Transform}
}

// Layout computes the descriptor for r. It returns false when the label
// has no content and nothing should be rendered.
func (e *Engine) Layout(r Request) (Descriptor, bool) {
	req := &r
	content, ok := resolveContent(req)
	if !ok {
		return Descriptor{}, false
	}

	styles := e.resolveStyles(req)
	lh := lineHeightOf(req)
	textAnchor := req.TextAnchor.ResolveOr(req, AnchorStart)
	dx := req.Dx.ResolveOr(req, 0)
	x := position(req, DimX)
	y := position(req, DimY)

	direction := req.Direction
	if direction == "" {
		direction = DirectionInherit
	}

	d := Descriptor{
		Container: Container{
			X:         x,
			Y:         y,
			Dx:        dx,
			Dy:        baselineOffset(req, styles[0], len(content), lh),
			Transform: e.resolveTransform(req, styles[0], x, y),
			Direction: direction,
			ClassName: req.ClassName,
			Title:     req.Title,
			Desc:      req.Desc,
			ID:        req.ID,
			Events:    req.Events,
		},
		Lines:  make([]Line, len(content)),
		Portal: req.RenderInPortal,
	}

	for i, text := range content {
		current := styleAt(styles, i)
		previous := styleAt(styles, i-1)
		fontSize := (current.FontSize + previous.FontSize) / 2

		line := Line{
			Key:        req.ID + "-key-" + strconv.Itoa(i),
			Dx:         dx,
			TextAnchor: textAnchor,
			Style:      current,
			Text:       text,
		}
		if current.TextAnchor != "" {
			line.TextAnchor = current.TextAnchor
		}
		if !req.Inline {
			line.X = Float(x)
			if i > 0 {
				line.Dy = Float(lh.spacing(i) * fontSize)
			}
		}
		d.Lines[i] = line
	}
	return d, true
}

// styleAt returns styles[i], or the first style when i is out of range.
func styleAt(styles []ResolvedStyle, i int) ResolvedStyle {
	if i >= 0 && i < len(styles) {
		return styles[i]
	}
	return styles[0]
}
