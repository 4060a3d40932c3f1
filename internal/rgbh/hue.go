package rgbh

import (
	"fmt"
	"math"
)

// sector classifies the magnitude of a hue angle.
type sector int

const (
	sectorNear sector = iota // [0, 60°]: red dominant
	sectorMid                // (60°, 120°]: green or blue dominant, red secondary
	sectorFar                // (120°, 180°]: green or blue dominant, the other secondary
)

// sectorIO gives the index order for each sector, for non-negative and
// negative angles. The negative order is the non-negative one with green and
// blue swapped.
var sectorIO = [...][2][3]int{
	sectorNear: {{0, 1, 2}, {0, 2, 1}},
	sectorMid:  {{1, 0, 2}, {2, 0, 1}},
	sectorFar:  {{1, 2, 0}, {2, 1, 0}},
}

// classifySector returns the sector of |angle| and the offset angle, in
// [0, 60°], from which the secondary component is computed.
func classifySector(absAngle float64) (sector, float64) {
	switch {
	case absAngle <= Pi60:
		return sectorNear, absAngle
	case absAngle <= Pi120:
		return sectorMid, Pi120 - absAngle
	default:
		return sectorFar, absAngle - Pi120
	}
}

// Hue is a direction around the hue hexagon.
//
// IO orders the component indices as (dominant, secondary, weakest). Other is
// the magnitude of the secondary component when the dominant one is One,
// so 0 <= Other <= One. Angle is in [-π, π], or NaN for grey, in which case
// IO is meaningless and Other is One.
type Hue[C Channel[C]] struct {
	IO    [3]int
	Other C
	Angle float64
}

// HueFromAngle returns the hue for angle radians. NaN yields the grey hue.
// It panics if |angle| > π.
func HueFromAngle[C Channel[C]](angle float64) Hue[C] {
	if math.IsNaN(angle) {
		return Hue[C]{IO: [3]int{2, 1, 0}, Other: One[C](), Angle: angle}
	}
	if math.Abs(angle) > math.Pi {
		panic(fmt.Sprintf("rgbh: hue angle %v outside [-π, π]", angle))
	}
	sec, offset := classifySector(math.Abs(angle))
	sign := 0
	if angle < 0 {
		sign = 1
	}
	// Offsets just past 60° come out of the far sector at the limits of
	// float precision; keep Other within [0, One].
	other := round[C](float64(One[C]()) * math.Sin(offset) / math.Sin(Pi120-offset))
	return Hue[C]{
		IO:    sectorIO[sec][sign],
		Other: min(max(other, 0), One[C]()),
		Angle: angle,
	}
}

// HueFromRGB returns the hue of rgb.
func HueFromRGB[C Channel[C]](rgb RGB[C]) Hue[C] {
	return HueFromAngle[C](XYFromRGB(rgb).Angle())
}

// IsGrey reports whether the hue is undefined.
func (h Hue[C]) IsGrey() bool {
	return math.IsNaN(h.Angle)
}

// Equal reports whether h and o have the same angle. Greys are equal to each
// other and to nothing else.
func (h Hue[C]) Equal(o Hue[C]) bool {
	if h.IsGrey() {
		return o.IsGrey()
	}
	return h.Angle == o.Angle
}

// Less orders hues by angle with grey before every defined angle.
func (h Hue[C]) Less(o Hue[C]) bool {
	if h.IsGrey() {
		return !o.IsGrey()
	}
	if o.IsGrey() {
		return false
	}
	return h.Angle < o.Angle
}

// Compare returns -1, 0 or +1 following Equal and Less.
func (h Hue[C]) Compare(o Hue[C]) int {
	switch {
	case h.Equal(o):
		return 0
	case h.Less(o):
		return -1
	default:
		return 1
	}
}

// Sub returns the signed angle from o to h, wrapped into [-π, π]. The result
// is NaN when either hue is grey.
func (h Hue[C]) Sub(o Hue[C]) float64 {
	diff := h.Angle - o.Angle
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}

// RGB returns the canonical triple for the hue: dominant at One, secondary at
// Other and weakest at zero. Grey yields white.
func (h Hue[C]) RGB() RGB[C] {
	if h.IsGrey() {
		return Grey(One[C]())
	}
	var rgb RGB[C]
	rgb[h.IO[0]] = One[C]()
	rgb[h.IO[1]] = h.Other
	return rgb
}

// MaxChromaValue returns the value of the canonical triple, the value at
// which the hue reaches full chroma.
func (h Hue[C]) MaxChromaValue() float64 {
	return float64(One[C]()+h.Other) / float64(Three[C]())
}

// RGBWithTotal returns the triple with this hue having the given component
// total, clamped to [0, 3*One].
//
// Below the canonical total the two non-zero components are scaled down
// towards black. Above it the dominant component stays at One and the excess
// is shared by the weakest and secondary components on the way to white.
func (h Hue[C]) RGBWithTotal(total C) RGB[C] {
	total = min(max(total, 0), Three[C]())
	if h.IsGrey() {
		return Grey(round[C](float64(total) / 3))
	}
	one := One[C]()
	cur := one + h.Other
	shortfall := total - cur
	var rgb RGB[C]
	switch {
	case shortfall == 0:
		rgb[h.IO[0]] = one
		rgb[h.IO[1]] = h.Other
	case shortfall < 0:
		rgb[h.IO[0]] = round[C](float64(one) * float64(total) / float64(cur))
		rgb[h.IO[1]] = total - rgb[h.IO[0]]
	default:
		rgb[h.IO[0]] = one
		// The weakest share is computed first; the secondary takes the rest.
		rgb[h.IO[2]] = round[C](float64(shortfall) * float64(one) / float64(Two[C]()-h.Other))
		rgb[h.IO[1]] = h.Other + shortfall - rgb[h.IO[2]]
	}
	return rgb
}

// RGBWithValue returns the triple with this hue and the given value.
func (h Hue[C]) RGBWithValue(value float64) RGB[C] {
	return h.RGBWithTotal(round[C](value * float64(h.RGB().Max()) * 3))
}

// ChromaCorrection returns the factor that converts the distance of a point
// from the origin of the hue plane into chroma. It is 1 along the six primary
// and secondary directions and for grey.
func (h Hue[C]) ChromaCorrection() float64 {
	if h.IsGrey() {
		return 1.0
	}
	a := float64(One[C]())
	b := float64(h.Other)
	if a == b || b == 0 {
		return 1.0
	}
	return a / math.Sqrt(a*a+b*b-a*b)
}

// PointForChroma returns the point of the hue plane at the given chroma in
// this hue's direction. It panics unless 0 < chroma <= 1.
func (h Hue[C]) PointForChroma(chroma float64) XY {
	if !(chroma > 0 && chroma <= 1) {
		panic(fmt.Sprintf("rgbh: chroma %v outside (0, 1]", chroma))
	}
	hypot := chroma * float64(One[C]()) / h.ChromaCorrection()
	return XY{X: hypot * math.Cos(h.Angle), Y: hypot * math.Sin(h.Angle)}
}

// RotatedBy returns the hue delta radians further round the hexagon. The
// angle is wrapped back into (-π, π]. Grey stays grey.
func (h Hue[C]) RotatedBy(delta float64) Hue[C] {
	return HueFromAngle[C](NormalizeAngle(h.Angle + delta))
}

// String formats the hue angle in degrees.
func (h Hue[C]) String() string {
	if h.IsGrey() {
		return "Hue(grey)"
	}
	return fmt.Sprintf("Hue(%.2f°)", Degrees(h.Angle))
}
