package label

// DefaultCapHeight is the capital-letter height as a fraction of font size.
const DefaultCapHeight = 0.71

// Geometry is the resolved placement of a label's text block.
type Geometry struct {
	X, Y   float64
	Dx, Dy float64

	// Transform is the SVG transform attribute, empty for none.
	Transform string
}

// position returns the anchor coordinate along dim.
func position(r *Request, dim Dimension) float64 {
	if dim == DimX && r.X != nil {
		return *r.X
	}
	if dim == DimY && r.Y != nil {
		return *r.Y
	}
	if r.Datum == nil {
		return 0
	}
	p := scalePoint(r)
	if dim == DimX {
		return p.X
	}
	return p.Y
}

func lineHeightOf(r *Request) LineHeight {
	return r.LineHeight.ResolveOr(r, UniformLineHeight(1))
}

// baselineOffset is the aggregate dy of the text container. It places a
// block of lines relative to the anchor using the cap height as the
// single-line reference.
func baselineOffset(r *Request, first ResolvedStyle, lines int, lh LineHeight) float64 {
	fontSize := first.FontSize
	lineHeight := lh.first()
	dy := r.Dy.ResolveOr(r, 0)
	capHeight := r.CapHeight.ResolveOr(r, DefaultCapHeight)
	length := float64(lines)

	anchor := first.VerticalAnchor
	if anchor == "" {
		anchor = r.VerticalAnchor.ResolveOr(r, VerticalMiddle)
	}

	switch anchor {
	case VerticalEnd:
		return dy + (capHeight/2+(0.5-length)*lineHeight)*fontSize
	case VerticalMiddle:
		return dy + (capHeight/2+(0.5-length/2)*lineHeight)*fontSize
	default:
		return dy + (capHeight/2+lineHeight/2)*fontSize
	}
}
