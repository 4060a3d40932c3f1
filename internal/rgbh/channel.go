package rgbh

// Channel is the constraint satisfied by the supported channel kinds.
//
// A channel kind is a numeric type whose methods describe the representation:
// the component value meaning full intensity, and how a real number is rounded
// into a component. The methods are called on the zero value, so they must not
// depend on the receiver.
type Channel[C any] interface {
	~int64 | ~float64

	// One returns the component value representing full intensity.
	One() C

	// Round converts a real number, in channel units, into a component.
	Round(x float64) C

	// Integral reports whether components are whole numbers.
	Integral() bool
}

// Bits8 is a component with 8 bits per channel (0-255).
//
// The underlying type is wider than 8 bits so that arithmetic may transiently
// leave the valid range; see RGB.HasOverflow and RGB.HasUnderflow.
type Bits8 int64

// One returns 255.
func (Bits8) One() Bits8 { return 0xFF }

// Round rounds half up.
func (Bits8) Round(x float64) Bits8 { return Bits8(x + 0.5) }

// Integral returns true.
func (Bits8) Integral() bool { return true }

// Bits16 is a component with 16 bits per channel (0-65535).
type Bits16 int64

// One returns 65535.
func (Bits16) One() Bits16 { return 0xFFFF }

// Round rounds half up.
func (Bits16) Round(x float64) Bits16 { return Bits16(x + 0.5) }

// Integral returns true.
func (Bits16) Integral() bool { return true }

// Proportion is a component expressed as a real number between 0 and 1.
type Proportion float64

// One returns 1.0.
func (Proportion) One() Proportion { return 1.0 }

// Round returns x unchanged.
func (Proportion) Round(x float64) Proportion { return Proportion(x) }

// Integral returns false.
func (Proportion) Integral() bool { return false }

// Zero returns the component value for no intensity.
func Zero[C Channel[C]]() C {
	return 0
}

// One returns the component value for full intensity.
func One[C Channel[C]]() C {
	var c C
	return c.One()
}

// Two returns 2 * One.
func Two[C Channel[C]]() C {
	return 2 * One[C]()
}

// Three returns 3 * One, the component total of white.
func Three[C Channel[C]]() C {
	return 3 * One[C]()
}

// Six returns 6 * One.
func Six[C Channel[C]]() C {
	return 6 * One[C]()
}

// round rounds x using the rules of channel kind C.
func round[C Channel[C]](x float64) C {
	var c C
	return c.Round(x)
}

func integral[C Channel[C]]() bool {
	var c C
	return c.Integral()
}
