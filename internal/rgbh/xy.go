package rgbh

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Basis vectors of the hue plane. Red lies on the X axis; green and blue are
// 120° either side of it.
var (
	xVector = []float64{1.0, cos120, cos120}
	yVector = []float64{0.0, sin120, -sin120}
)

// XY is the projection of an RGB triple onto the hue plane, in the channel
// units of the source triple.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// XYFromRGB projects rgb onto the hue plane.
func XYFromRGB[C Channel[C]](rgb RGB[C]) XY {
	v := []float64{float64(rgb[0]), float64(rgb[1]), float64(rgb[2])}
	return XY{
		X: floats.Dot(xVector, v),
		Y: floats.Dot(yVector, v),
	}
}

// Angle returns the direction of the point from the origin in radians. It
// is NaN when the point is the origin, i.e. when the source was grey.
func (p XY) Angle() float64 {
	if p.X == 0 && p.Y == 0 {
		return math.NaN()
	}
	return math.Atan2(p.Y, p.X)
}

// Hypot returns the distance of the point from the origin.
func (p XY) Hypot() float64 {
	return math.Hypot(p.X, p.Y)
}

// Scaled returns the point moved along its ray by factor k.
func (p XY) Scaled(k float64) XY {
	return XY{X: p.X * k, Y: p.Y * k}
}

// FloatRGB returns the non-negative triple, with at least one zero
// component, whose projection is p. It is the darkest color with p's hue and
// chroma; adding the same amount to every component raises its value
// without moving the point.
func (p XY) FloatRGB() FloatRGB {
	a := p.X / cos120
	b := p.Y / sin120
	switch {
	case p.Y > 0:
		if a > b {
			return FloatRGB{0, (a + b) / 2, (a - b) / 2}
		}
		return FloatRGB{p.X - b*cos120, b, 0}
	case p.Y < 0:
		if a > -b {
			return FloatRGB{0, (a + b) / 2, (a - b) / 2}
		}
		return FloatRGB{p.X + b*cos120, 0, -b}
	case p.X < 0:
		return FloatRGB{0, a / 2, a / 2}
	default:
		return FloatRGB{p.X, 0, 0}
	}
}
