package rgbh

import "math"

// Attributes are the derived attributes of a proportion triple.
type Attributes struct {
	RGB    RGB[Proportion]
	XY     XY
	Value  float64
	Hue    Hue[Proportion]
	Chroma float64
}

// AttributesOf derives value, hue and chroma from rgb.
func AttributesOf(rgb RGB[Proportion]) Attributes {
	xy := XYFromRGB(rgb)
	hue := HueFromAngle[Proportion](xy.Angle())
	return Attributes{
		RGB:    rgb,
		XY:     xy,
		Value:  rgb.Value(),
		Hue:    hue,
		Chroma: math.Min(xy.Hypot()*hue.ChromaCorrection(), 1.0),
	}
}

// Manipulator holds a color and adjusts one of its attributes at a time
// while keeping the other two as fixed as the geometry allows.
//
// Every successful adjustment replaces the whole Attributes value derived
// from the new color, so the cached attributes always match the color.
// Adjustments that cannot be made return false and change nothing.
//
// The zero value holds black. A Manipulator is not safe for concurrent use.
type Manipulator struct {
	attr  Attributes
	valid bool
}

// NewManipulator returns a manipulator holding rgb.
func NewManipulator(rgb RGB[Proportion]) *Manipulator {
	m := &Manipulator{}
	m.set(rgb)
	return m
}

// NewManipulatorFrom returns a manipulator holding rgb converted from any
// channel kind.
func NewManipulatorFrom[C Channel[C]](rgb RGB[C]) *Manipulator {
	return NewManipulator(Convert[Proportion](rgb))
}

// SetRGB replaces the color held by m with rgb converted from any channel
// kind.
func SetRGB[C Channel[C]](m *Manipulator, rgb RGB[C]) {
	m.set(Convert[Proportion](rgb))
}

// RGBAs returns the color held by m converted to channel kind C.
func RGBAs[C Channel[C]](m *Manipulator) RGB[C] {
	return Convert[C](m.attrs().RGB)
}

func (m *Manipulator) set(rgb RGB[Proportion]) {
	m.attr = AttributesOf(rgb)
	m.valid = true
}

// attrs returns the cached attributes, deriving those of black first for a
// zero Manipulator.
func (m *Manipulator) attrs() *Attributes {
	if !m.valid {
		m.set(RGB[Proportion]{})
	}
	return &m.attr
}

// Attributes returns the current color and its derived attributes.
func (m *Manipulator) Attributes() Attributes { return *m.attrs() }

// RGB returns the current color.
func (m *Manipulator) RGB() RGB[Proportion] { return m.attrs().RGB }

// Value returns the current value.
func (m *Manipulator) Value() float64 { return m.attrs().Value }

// Hue returns the current hue.
func (m *Manipulator) Hue() Hue[Proportion] { return m.attrs().Hue }

// Chroma returns the current chroma.
func (m *Manipulator) Chroma() float64 { return m.attrs().Chroma }

// setFloat stores a reconstructed triple. Components can land a rounding
// error outside [0, 1]; they are clamped back.
func (m *Manipulator) setFloat(f FloatRGB) {
	m.set(RoundFloat[Proportion](f).ClampedLow().ClampedHigh())
}

// raised returns f with delta added to every component.
func raised(f FloatRGB, delta float64) FloatRGB {
	return FloatRGB{f[0] + delta, f[1] + delta, f[2] + delta}
}

// DecreaseValue lowers the value by up to delta. The floor is the darkest
// color with the same hue and chroma; it returns false if already there.
func (m *Manipulator) DecreaseValue(delta float64) bool {
	a := *m.attrs()
	base := a.XY.FloatRGB()
	floor := base.Sum() / 3
	if a.Value <= floor {
		return false
	}
	newValue := math.Max(floor, a.Value-delta)
	if newValue == floor {
		m.setFloat(base)
	} else {
		m.setFloat(raised(base, newValue-floor))
	}
	return true
}

// IncreaseValue raises the value by up to delta, stopping when the strongest
// component reaches one. It returns false if there is no headroom.
func (m *Manipulator) IncreaseValue(delta float64) bool {
	a := *m.attrs()
	base := a.XY.FloatRGB()
	headroom := 1.0 - base.Max()
	if headroom <= 0 {
		return false
	}
	floor := base.Sum() / 3
	newValue := math.Min(floor+headroom, a.Value+delta)
	if newValue <= a.Value {
		return false
	}
	m.setFloat(raised(base, newValue-floor))
	return true
}

// DecreaseChroma moves the color towards grey by up to delta at constant
// value. It returns false if the color is already grey.
func (m *Manipulator) DecreaseChroma(delta float64) bool {
	a := *m.attrs()
	if a.Chroma <= 0 {
		return false
	}
	newChroma := a.Chroma - delta
	if newChroma <= 0 {
		m.set(Grey(Proportion(a.Value)))
		return true
	}
	m.rescaleChroma(newChroma)
	return true
}

// MaxChroma returns the largest chroma reachable with the current hue at the
// current value. A grey has no hue, so any hue will do: the limit is then
// set by the distance to black or white alone.
func (m *Manipulator) MaxChroma() float64 {
	a := m.attrs()
	v := a.Value
	mcv := a.Hue.MaxChromaValue()
	if a.Hue.IsGrey() {
		mcv = 0.5
	}
	return math.Max(0, math.Min(1, math.Min(v/mcv, (1-v)/(1-mcv))))
}

// IncreaseChroma moves the color away from grey by up to delta at constant
// value, stopping at the hue's boundary. From grey it introduces a hue
// between red and magenta. It returns false if the color is already on the
// boundary, or is black or white.
func (m *Manipulator) IncreaseChroma(delta float64) bool {
	a := *m.attrs()
	v := a.Value
	if v <= 0 || v >= 1 {
		return false
	}
	if a.Chroma <= 0 {
		// (v+d, v-d, v) has chroma 2d.
		d := math.Min(delta/2, math.Min(v, 1-v))
		m.set(NewRGB(Proportion(v+d), Proportion(v-d), Proportion(v)))
		return true
	}
	if a.RGB.Min() <= 0 || a.RGB.Max() >= 1 {
		return false
	}
	limit := m.MaxChroma()
	if a.Chroma >= limit {
		return false
	}
	newChroma := math.Min(limit, a.Chroma+delta)
	m.rescaleChroma(newChroma)
	if newChroma == limit {
		m.snapToBoundary(a.Value)
	}
	return true
}

// snapToBoundary puts a color that reached its maximum chroma exactly on
// the hexagon edge: the weakest component to zero at or below the hue's
// max chroma value, the strongest to one at or above it. Rescaling leaves
// rounding residue there that would read as room for more chroma.
func (m *Manipulator) snapToBoundary(value float64) {
	a := *m.attrs()
	rgb := a.RGB
	order := IndexOrder(rgb)
	mcv := a.Hue.MaxChromaValue()
	if value <= mcv {
		rgb[order[2]] = 0
	}
	if value >= mcv {
		rgb[order[0]] = 1
	}
	m.set(rgb)
}

// rescaleChroma moves the color along its hue ray to newChroma and restores
// the value where the geometry allows.
func (m *Manipulator) rescaleChroma(newChroma float64) {
	a := *m.attrs()
	base := a.XY.Scaled(newChroma / a.Chroma).FloatRGB()
	m.setFloat(liftTo(base, a.Value))
}

// liftTo raises base towards value without letting any component pass one.
func liftTo(base FloatRGB, value float64) FloatRGB {
	delta := math.Min(1.0-base.Max(), value-base.Sum()/3)
	if delta > 0 {
		return raised(base, delta)
	}
	return base
}

// RotateHue rotates the hue by delta radians at constant chroma, keeping
// the value as close to the current one as the new direction allows. It
// returns false for grey, or for a delta that is not a finite angle.
func (m *Manipulator) RotateHue(delta float64) bool {
	a := *m.attrs()
	if a.Hue.IsGrey() || math.IsNaN(delta) || math.IsInf(delta, 0) {
		return false
	}
	base := a.Hue.RotatedBy(delta).PointForChroma(a.Chroma).FloatRGB()
	m.setFloat(liftTo(base, a.Value))
	return true
}
