package rgbh

import (
	"fmt"
	"math"
	"math/big"
)

// Component indices.
const (
	Red   = 0
	Green = 1
	Blue  = 2
)

// RGB is a red/green/blue triple over channel kind C.
//
// Components are normally within [0, One]. Arithmetic may produce values
// outside that range; use HasUnderflow/HasOverflow to detect them and
// ClampedLow/ClampedHigh to correct them. RGB is a value type, so every
// operation returns a new triple.
type RGB[C Channel[C]] [3]C

// NewRGB returns the triple (r, g, b).
func NewRGB[C Channel[C]](r, g, b C) RGB[C] {
	return RGB[C]{r, g, b}
}

// Grey returns the achromatic triple with all components equal to c.
func Grey[C Channel[C]](c C) RGB[C] {
	return RGB[C]{c, c, c}
}

// Sum returns the component total.
func (rgb RGB[C]) Sum() C {
	return rgb[0] + rgb[1] + rgb[2]
}

// Value returns the mean component as a proportion of One (0 = black,
// 1 = white).
func (rgb RGB[C]) Value() float64 {
	return float64(rgb.Sum()) / float64(Three[C]())
}

// ExactValue returns Value as an exact rational. For integral kinds this is
// Sum/(3*One) with no rounding; for Proportion it is the exact binary value
// of the floating point mean.
func (rgb RGB[C]) ExactValue() *big.Rat {
	if integral[C]() {
		return big.NewRat(int64(rgb.Sum()), int64(Three[C]()))
	}
	return new(big.Rat).SetFloat64(rgb.Value())
}

// Max returns the largest component.
func (rgb RGB[C]) Max() C {
	return max(rgb[0], rgb[1], rgb[2])
}

// Min returns the smallest component.
func (rgb RGB[C]) Min() C {
	return min(rgb[0], rgb[1], rgb[2])
}

// HasUnderflow reports whether any component is below zero.
func (rgb RGB[C]) HasUnderflow() bool {
	return rgb.Min() < 0
}

// HasOverflow reports whether any component is above One.
func (rgb RGB[C]) HasOverflow() bool {
	return rgb.Max() > One[C]()
}

// ClampedLow returns a copy with negative components raised to zero.
func (rgb RGB[C]) ClampedLow() RGB[C] {
	for i, c := range rgb {
		rgb[i] = max(c, 0)
	}
	return rgb
}

// ClampedHigh returns a copy with components above One lowered to One.
func (rgb RGB[C]) ClampedHigh() RGB[C] {
	one := One[C]()
	for i, c := range rgb {
		rgb[i] = min(c, one)
	}
	return rgb
}

// Add returns a copy with delta added to every component.
func (rgb RGB[C]) Add(delta C) RGB[C] {
	for i := range rgb {
		rgb[i] += delta
	}
	return rgb
}

// IsGrey reports whether all components are equal.
func (rgb RGB[C]) IsGrey() bool {
	return rgb[0] == rgb[1] && rgb[1] == rgb[2]
}

// String formats the triple as "RGB8(0x64, 0x0, 0x0)" for integral kinds and
// "RGBPN(1.000000, 0.000000, 0.000000)" for proportions.
func (rgb RGB[C]) String() string {
	if !integral[C]() {
		return fmt.Sprintf("RGBPN(%f, %f, %f)", float64(rgb[0]), float64(rgb[1]), float64(rgb[2]))
	}
	name := "RGB8"
	if int64(One[C]()) == int64(One[Bits16]()) {
		name = "RGB16"
	}
	return fmt.Sprintf("%s(0x%X, 0x%X, 0x%X)", name, int64(rgb[0]), int64(rgb[1]), int64(rgb[2]))
}

// IndexOrder returns the component indices sorted by descending magnitude.
//
// Ties are broken so that higher indices come first when components are
// equal: a grey yields (2, 1, 0). Hue sector classification at boundaries
// depends on this exact order.
func IndexOrder[C Channel[C]](rgb RGB[C]) [3]int {
	if rgb[0] > rgb[1] {
		if rgb[0] > rgb[2] {
			if rgb[1] > rgb[2] {
				return [3]int{0, 1, 2}
			}
			return [3]int{0, 2, 1}
		}
		return [3]int{2, 0, 1}
	}
	if rgb[1] > rgb[2] {
		if rgb[0] > rgb[2] {
			return [3]int{1, 0, 2}
		}
		return [3]int{1, 2, 0}
	}
	return [3]int{2, 1, 0}
}

// NonZeroCount returns the number of components strictly greater than zero.
func NonZeroCount[C Channel[C]](rgb RGB[C]) int {
	n := 0
	for _, c := range rgb {
		if c > 0 {
			n++
		}
	}
	return n
}

// NonZeroCountAndOrder returns NonZeroCount and IndexOrder together.
func NonZeroCountAndOrder[C Channel[C]](rgb RGB[C]) (int, [3]int) {
	return NonZeroCount(rgb), IndexOrder(rgb)
}

// Rotated returns a triple with the same value as rgb but with its hue
// rotated by delta radians, which must be within [-π, π].
//
// The rotation moves the point within the hue hexagon; it is not a rotation
// of the RGB cube. The hue angle moves by exactly delta but the distance from
// grey is not renormalized, so chroma is not generally kept. When chroma
// matters, use Hue.RotatedBy and rebuild the color instead.
//
// For integral kinds the rounded components are corrected so that the
// component total, and therefore Value, is unchanged.
func Rotated[C Channel[C]](rgb RGB[C], delta float64) RGB[C] {
	band, residual := classifyRotation(delta)
	if band == bandIdentity {
		return rgb
	}
	k1, k2 := blendWeights(residual)

	var exact [3]float64
	var result RGB[C]
	for i, src := range bandSources[band] {
		exact[i] = float64(rgb[src[0]])*k1 + float64(rgb[src[1]])*k2
		result[i] = round[C](exact[i])
	}
	if integral[C]() {
		result = preserveTotal(result, exact, rgb.Sum())
	}
	return result
}

// preserveTotal nudges rounded components by one unit at a time until their
// total equals want, choosing the component whose rounding error is largest
// in the needed direction.
func preserveTotal[C Channel[C]](rgb RGB[C], exact [3]float64, want C) RGB[C] {
	for diff := want - rgb.Sum(); diff != 0; diff = want - rgb.Sum() {
		step := C(1)
		if diff < 0 {
			step = -1
		}
		best, bestErr := 0, math.Inf(-1)
		for i := range rgb {
			e := (exact[i] - float64(rgb[i])) * float64(step)
			if e > bestErr {
				best, bestErr = i, e
			}
		}
		rgb[best] += step
	}
	return rgb
}

// Convert scales rgb from channel kind From to channel kind To, rounding with
// the rules of To.
func Convert[To Channel[To], From Channel[From]](rgb RGB[From]) RGB[To] {
	to, from := float64(One[To]()), float64(One[From]())
	var out RGB[To]
	for i, c := range rgb {
		out[i] = round[To](float64(c) * to / from)
	}
	return out
}

// FloatRGB is a triple of real numbers in the channel units of whatever
// produced it.
type FloatRGB [3]float64

// Sum returns the component total.
func (f FloatRGB) Sum() float64 {
	return f[0] + f[1] + f[2]
}

// Max returns the largest component.
func (f FloatRGB) Max() float64 {
	return max(f[0], f[1], f[2])
}

// RoundFloat rounds each component of f into channel kind C without scaling.
func RoundFloat[C Channel[C]](f FloatRGB) RGB[C] {
	return RGB[C]{round[C](f[0]), round[C](f[1]), round[C](f[2])}
}
