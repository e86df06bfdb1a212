package label

// Dimension names a scaled axis.
type Dimension string

const (
	DimX Dimension = "x"
	DimY Dimension = "y"
)

// ScaleFunc maps a data value to a pixel coordinate.
type ScaleFunc func(float64) float64

// Scale maps each dimension to its scale function.
type Scale map[Dimension]ScaleFunc

// Point is a pixel coordinate.
type Point struct {
	X, Y float64
}

// Datum is the data record a label belongs to. X and Y feed the scale
// lookup; Fields is free-form and available to computed props.
type Datum struct {
	X, Y   float64
	Fields map[string]any
}

// Field returns the named free-form field.
func (d *Datum) Field(name string) (any, bool) {
	if d == nil || d.Fields == nil {
		return nil, false
	}
	v, ok := d.Fields[name]
	return v, ok
}

// TextAnchor is the SVG text-anchor of a line.
type TextAnchor string

const (
	AnchorStart   TextAnchor = "start"
	AnchorMiddle  TextAnchor = "middle"
	AnchorEnd     TextAnchor = "end"
	AnchorInherit TextAnchor = "inherit"
)

// VerticalAnchor selects which part of the text block aligns with the
// anchor point's y coordinate.
type VerticalAnchor string

const (
	VerticalStart  VerticalAnchor = "start"
	VerticalMiddle VerticalAnchor = "middle"
	VerticalEnd    VerticalAnchor = "end"
)

// Direction is the SVG writing direction.
type Direction string

const (
	DirectionInherit Direction = "inherit"
	DirectionLTR     Direction = "ltr"
	DirectionRTL     Direction = "rtl"
)

// Placement controls the label angle in polar charts.
type Placement string

const (
	PlacementParallel      Placement = "parallel"
	PlacementPerpendicular Placement = "perpendicular"
	PlacementVertical      Placement = "vertical"
)

// LineHeight is either a single multiplier or one multiplier per line.
type LineHeight struct {
	values  []float64
	perLine bool
}

// UniformLineHeight returns a line height shared by every line.
func UniformLineHeight(v float64) LineHeight {
	return LineHeight{values: []float64{v}}
}

// LineHeights returns per-line heights. An empty sequence means 1.
func LineHeights(v ...float64) LineHeight {
	return LineHeight{values: append([]float64(nil), v...), perLine: true}
}

// PerLine reports whether the line height is a sequence.
func (lh LineHeight) PerLine() bool { return lh.perLine }

// Values returns a copy of the underlying multipliers.
func (lh LineHeight) Values() []float64 { return append([]float64(nil), lh.values...) }

// first is the multiplier used for the block baseline.
func (lh LineHeight) first() float64 {
	if len(lh.values) == 0 {
		return 1
	}
	return lh.values[0]
}

// at returns the multiplier for line i, or the first one past the end.
func (lh LineHeight) at(i int) float64 {
	if i >= 0 && i < len(lh.values) {
		return lh.values[i]
	}
	return lh.first()
}

// spacing returns the height between line i-1 and line i.
func (lh LineHeight) spacing(i int) float64 {
	if !lh.perLine {
		return lh.first()
	}
	if len(lh.values) == 0 {
		return 1
	}
	prev := lh.at(0)
	if i > 0 {
		prev = lh.at(i - 1)
	}
	return (lh.at(i) + prev) / 2
}

// Request describes one label. It is read-only during layout; computed
// props receive a pointer to it.
type Request struct {
	// X and Y pin the anchor point. When nil the position comes from the
	// scale lookup of Datum.
	X, Y  *float64
	Datum *Datum
	Scale Scale

	// Origin is the center of a polar chart.
	Origin *Point
	Polar  bool

	Text  Prop[*Text]
	Style []Style

	Dx, Dy    Prop[float64]
	Angle     Prop[float64]
	Transform Prop[Transform]

	TextAnchor     Prop[TextAnchor]
	VerticalAnchor Prop[VerticalAnchor]
	LineHeight     Prop[LineHeight]
	CapHeight      Prop[float64]

	LabelPlacement Placement
	Inline         bool
	Direction      Direction
	RenderInPortal bool

	ID        string
	ClassName string
	Title     string
	Desc      string
	Events    map[string]string
}

// Float returns a pointer to v, for the X and Y fields.
func Float(v float64) *float64 { return &v }
