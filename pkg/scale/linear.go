// Package scale provides the coordinate scales labels are positioned with.
package scale

// Linear maps a continuous domain onto a continuous range.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
	Clamp  bool
}

// NewLinear returns a linear scale from [d0, d1] to [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Map scales v. A degenerate domain maps everything to the range midpoint.
func (s Linear) Map(v float64) float64 {
	span := s.Domain[1] - s.Domain[0]
	if span == 0 {
		return (s.Range[0] + s.Range[1]) / 2
	}
	t := (v - s.Domain[0]) / span
	if s.Clamp {
		t = max(0, min(1, t))
	}
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Invert maps a range value back into the domain.
func (s Linear) Invert(v float64) float64 {
	span := s.Range[1] - s.Range[0]
	if span == 0 {
		return (s.Domain[0] + s.Domain[1]) / 2
	}
	return s.Domain[0] + (v-s.Range[0])/span*(s.Domain[1]-s.Domain[0])
}

// Identity is the scale that leaves values unchanged.
func Identity(v float64) float64 { return v }
