package label

import "math"

// PolarAngle is the default polar angle helper. It orients a label on a
// polar chart from the datum's angular position: vertical (or unset)
// placement keeps text level, perpendicular placement runs along the
// radius, parallel placement follows the circumference.
func PolarAngle(r *Request) float64 {
	if r.LabelPlacement == "" || r.LabelPlacement == PlacementVertical {
		return 0
	}
	degrees := datumDegrees(r)
	sign := -1.0
	if (degrees > 90 && degrees < 180) || degrees > 270 {
		sign = 1
	}
	var angle float64
	switch {
	case degrees == 0 || degrees == 180:
		angle = 90
	case degrees > 0 && degrees < 180:
		angle = 90 - degrees
	case degrees > 180 && degrees < 360:
		angle = 270 - degrees
	}
	rotation := 90.0
	if r.LabelPlacement == PlacementPerpendicular {
		rotation = 0
	}
	return angle + sign*rotation
}

func datumDegrees(r *Request) float64 {
	if r.Datum == nil {
		return 0
	}
	radians := r.Scale.apply(DimX, r.Datum.X)
	return math.Mod(radians*180/math.Pi, 360)
}

// apply scales v along dim. A missing scale is the identity.
func (s Scale) apply(dim Dimension, v float64) float64 {
	if f, ok := s[dim]; ok && f != nil {
		return f(v)
	}
	return v
}

// scalePoint maps the datum to pixels. Polar requests treat the x scale
// as an angle in radians and the y scale as a radius around Origin.
func scalePoint(r *Request) Point {
	x := r.Scale.apply(DimX, r.Datum.X)
	y := r.Scale.apply(DimY, r.Datum.Y)
	if !r.Polar {
		return Point{X: x, Y: y}
	}
	var origin Point
	if r.Origin != nil {
		origin = *r.Origin
	}
	return Point{
		X: y*math.Cos(x) + origin.X,
		Y: -y*math.Sin(x) + origin.Y,
	}
}
