package rgbh

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestXYFromRGB(t *testing.T) {
	p := XYFromRGB(RGB[Bits8]{100, 0, 0})
	if p.X != 100 || p.Y != 0 {
		t.Errorf("XYFromRGB(100,0,0): got %+v, want {100 0}", p)
	}

	tests := []struct {
		name  string
		rgb   RGB[Bits8]
		hypot float64
	}{
		{"red", RGB[Bits8]{100, 0, 0}, 100},
		{"grey", RGB[Bits8]{100, 100, 100}, 0},
		{"green", RGB[Bits8]{0, 100, 0}, 100},
		{"blue", RGB[Bits8]{0, 0, 100}, 100},
		{"cyan", RGB[Bits8]{0, 100, 100}, 100},
		{"between green and cyan", RGB[Bits8]{0, 100, 50}, 86.60254037844386},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XYFromRGB(tt.rgb).Hypot(); !scalar.EqualWithinAbs(got, tt.hypot, tol) {
				t.Errorf("Hypot: got %v, want %v", got, tt.hypot)
			}
		})
	}
}

func TestXY_Angle(t *testing.T) {
	if a := XYFromRGB(RGB[Bits16]{500, 500, 500}).Angle(); !math.IsNaN(a) {
		t.Errorf("grey Angle: got %v, want NaN", a)
	}
	if a := XYFromRGB(RGB[Proportion]{0, 0, 0}).Angle(); !math.IsNaN(a) {
		t.Errorf("black Angle: got %v, want NaN", a)
	}

	tests := []struct {
		name string
		rgb  RGB[Proportion]
		want float64
	}{
		{"red", RGB[Proportion]{1, 0, 0}, 0},
		{"yellow", RGB[Proportion]{1, 1, 0}, Pi60},
		{"green", RGB[Proportion]{0, 1, 0}, Pi120},
		{"cyan", RGB[Proportion]{0, 1, 1}, math.Pi},
		{"blue", RGB[Proportion]{0, 0, 1}, -Pi120},
		{"magenta", RGB[Proportion]{1, 0, 1}, -Pi60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := XYFromRGB(tt.rgb).Angle()
			if !scalar.EqualWithinAbs(math.Abs(NormalizeAngle(got-tt.want)), 0, tol) {
				t.Errorf("Angle: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestXY_FloatRGB(t *testing.T) {
	// FloatRGB recovers the triple less its smallest component.
	tests := []struct {
		name string
		rgb  RGB[Proportion]
		want [3]float64
	}{
		{"y>0, a>b", RGB[Proportion]{0.2, 0.6, 0.4}, [3]float64{0, 0.4, 0.2}},
		{"y>0, a<=b", RGB[Proportion]{0.6, 0.4, 0.2}, [3]float64{0.4, 0.2, 0}},
		{"y<0, a>-b", RGB[Proportion]{0.2, 0.4, 0.6}, [3]float64{0, 0.2, 0.4}},
		{"y<0, a<=-b", RGB[Proportion]{0.6, 0.2, 0.4}, [3]float64{0.4, 0, 0.2}},
		{"yellowish", RGB[Proportion]{0.5, 0.5, 0.2}, [3]float64{0.3, 0.3, 0}},
		{"y=0, x<0", RGB[Proportion]{0.2, 0.5, 0.5}, [3]float64{0, 0.3, 0.3}},
		{"y=0, x>0", RGB[Proportion]{0.7, 0.2, 0.2}, [3]float64{0.5, 0, 0}},
		{"grey", RGB[Proportion]{0.4, 0.4, 0.4}, [3]float64{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundFloat[Proportion](XYFromRGB(tt.rgb).FloatRGB())
			approxRGB(t, "FloatRGB", got, tt.want)
		})
	}
}

func TestXY_Scaled(t *testing.T) {
	p := XY{X: 0.3, Y: -0.2}.Scaled(2)
	if !scalar.EqualWithinAbs(p.X, 0.6, tol) || !scalar.EqualWithinAbs(p.Y, -0.4, tol) {
		t.Errorf("Scaled: got %+v, want {0.6 -0.4}", p)
	}
}
