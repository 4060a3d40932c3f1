package rgbh

import "math"

// Angles used by the sector and band classifications.
const (
	Pi60  = math.Pi / 3
	Pi120 = 2 * math.Pi / 3
)

var sin120 = math.Sin(Pi120)

// cos(120°) computed by math.Cos is off in the last place.
const cos120 = -0.5

// NormalizeAngle wraps an angle in radians into the range (-π, π].
// NaN and infinities yield NaN.
func NormalizeAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a = math.Pi
	}
	return a
}

// Degrees converts radians to degrees.
func Degrees(a float64) float64 {
	return a * 180 / math.Pi
}

// Radians converts degrees to radians.
func Radians(d float64) float64 {
	return d * math.Pi / 180
}

// rotationBand classifies a rotation delta. Each direction has two 120° wide
// bands; the zero delta is the identity.
type rotationBand int

const (
	bandIdentity rotationBand = iota
	bandPosNear               // (0, 120°]
	bandPosFar                // (120°, 180°]
	bandNegNear               // [-120°, 0)
	bandNegFar                // [-180°, -120°)
)

// bandSources lists, for each destination component, the two source
// components blended by weights k1 and k2.
var bandSources = [...][3][2]int{
	bandPosNear: {{0, 2}, {1, 0}, {2, 1}},
	bandPosFar:  {{2, 1}, {0, 2}, {1, 0}},
	bandNegNear: {{0, 1}, {1, 2}, {2, 0}},
	bandNegFar:  {{1, 2}, {2, 0}, {0, 1}},
}

// classifyRotation returns the band for delta and the residual angle, in
// [0, 120°], from which the blend weights are computed.
func classifyRotation(delta float64) (rotationBand, float64) {
	switch {
	case delta > Pi120:
		return bandPosFar, delta - Pi120
	case delta > 0:
		return bandPosNear, delta
	case delta < -Pi120:
		return bandNegFar, -delta - Pi120
	case delta < 0:
		return bandNegNear, -delta
	default:
		return bandIdentity, 0
	}
}

// blendWeights returns k1 and k2 with k1 + k2 = 1 for a residual angle.
func blendWeights(residual float64) (k1, k2 float64) {
	a := math.Sin(residual)
	b := math.Sin(Pi120 - residual)
	c := a + b
	return b / c, a / c
}
