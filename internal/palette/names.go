package palette

import (
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/ironsheep/paint-mix-mcp/internal/rgbh"
)

// Luma weights used by BestForeground.
const (
	lumaRed   = 0.299
	lumaGreen = 0.587
	lumaBlue  = 0.114
)

// FromColorful converts c to a proportion triple at eight bit precision.
// Components outside [0, 1] are clamped.
func FromColorful(c colorful.Color) rgbh.RGB[rgbh.Proportion] {
	r, g, b := c.Clamped().RGB255()
	return rgbh.Convert[rgbh.Proportion](rgbh.NewRGB(rgbh.Bits8(r), rgbh.Bits8(g), rgbh.Bits8(b)))
}

// ToColorful converts rgb to a colorful.Color.
func ToColorful[C rgbh.Channel[C]](rgb rgbh.RGB[C]) colorful.Color {
	p := rgbh.Convert[rgbh.Proportion](rgb)
	return colorful.Color{R: float64(p[rgbh.Red]), G: float64(p[rgbh.Green]), B: float64(p[rgbh.Blue])}
}

type namedColor struct {
	name  string
	color colorful.Color
}

var namedColors = sync.OnceValue(func() []namedColor {
	out := make([]namedColor, 0, len(colornames.Names))
	for _, name := range colornames.Names {
		c, ok := colorful.MakeColor(colornames.Map[name])
		if !ok {
			continue
		}
		out = append(out, namedColor{name: name, color: c})
	}
	return out
})

// Names returns the known color names in alphabetical order.
func Names() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}

// Named returns the color with the given CSS name. Lookup ignores case and
// surrounding space.
func Named(name string) (rgbh.RGB[rgbh.Proportion], bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return rgbh.RGB[rgbh.Proportion]{}, false
	}
	return rgbh.Convert[rgbh.Proportion](rgbh.NewRGB(rgbh.Bits8(c.R), rgbh.Bits8(c.G), rgbh.Bits8(c.B))), true
}

// Nearest returns the name of the named color closest to rgb and the
// CIEDE2000 distance to it.
func Nearest[C rgbh.Channel[C]](rgb rgbh.RGB[C]) (string, float64) {
	target := ToColorful(rgb)
	best, bestDist := "", -1.0
	for _, nc := range namedColors() {
		d := target.DistanceCIEDE2000(nc.color)
		if bestDist < 0 || d < bestDist {
			best, bestDist = nc.name, d
		}
	}
	return best, bestDist
}

// BestForeground returns black when the weighted luma of rgb exceeds
// threshold times One, and white otherwise.
func BestForeground[C rgbh.Channel[C]](rgb rgbh.RGB[C], threshold float64) rgbh.RGB[C] {
	luma := float64(rgb[rgbh.Red])*lumaRed + float64(rgb[rgbh.Green])*lumaGreen + float64(rgb[rgbh.Blue])*lumaBlue
	if luma > float64(rgbh.One[C]())*threshold {
		return rgbh.RGB[C]{}
	}
	return rgbh.Grey(rgbh.One[C]())
}
