// Package rgbh implements the hexagon color model used by the paint mixer.
//
// A red/green/blue triple is decomposed into three attributes:
//   - Value: the mean of the three components (0 = black, 1 = white)
//   - Chroma: how far the color is from grey, normalized to 0-1
//   - Hue: the direction of the color around the RGB hexagon
//
// Unlike HSV or HSL, hue is measured around a hexagon rather than a circle.
// The six primary and secondary directions (red, yellow, green, cyan, blue,
// magenta) have exact, non-transcendental relationships with the RGB
// components, so conversions along those directions are exact.
//
// # Channel Kinds
//
// Every type in this package is generic over a channel kind:
//   - Bits8: integer components 0-255
//   - Bits16: integer components 0-65535
//   - Proportion: floating point components 0.0-1.0
//
// The same derivations work for all three. Integral kinds round results with
// round-half-up; Proportion keeps full precision.
//
// # Derivation and Reconstruction
//
// Derivation flows RGB -> XY -> Hue -> {value, chroma}. Reconstruction flows
// the other way: a Hue plus a requested value, chroma or rotation yields a new
// RGB. The Manipulator type combines both directions to adjust one attribute
// while holding the other two as fixed as the geometry allows.
//
// # Error Handling
//
// Calls that are geometrically impossible (raising the chroma of a fully
// saturated color, rotating a grey) report false and leave state unchanged.
// Calls that violate a precondition (a chroma outside (0, 1], a hue angle
// outside [-π, π]) are caller bugs and panic.
//
// # Thread Safety
//
// RGB, XY and Hue are immutable values and are safe to share. A Manipulator is
// mutable and must be confined to one goroutine or guarded by the caller.
package rgbh
