package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/paint-mix-mcp/internal/rgbh"
)

// Region is a rectangle within an image. (X1, Y1) is the inclusive top-left
// corner and (X2, Y2) the exclusive bottom-right corner.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect returns the region as an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// SampleColor returns the color of the pixel at (x, y) with sixteen bits per
// channel. Alpha is divided out, so a translucent pixel reports the color it
// would have if opaque; a fully transparent pixel reads as black.
func SampleColor(img image.Image, x, y int) (rgbh.RGB[rgbh.Bits16], error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return rgbh.RGB[rgbh.Bits16]{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	c := color.NRGBA64Model.Convert(img.At(x, y)).(color.NRGBA64)
	return rgbh.NewRGB(rgbh.Bits16(c.R), rgbh.Bits16(c.G), rgbh.Bits16(c.B)), nil
}

// SampleRegion returns the mean color of the pixels in region as a
// proportion triple. The region is read at eight bits per channel.
func SampleRegion(img image.Image, region Region) (rgbh.RGB[rgbh.Proportion], error) {
	r := region.Rect()
	if r.Empty() {
		return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("invalid region: x1 must be < x2 and y1 must be < y2")
	}
	if !r.In(img.Bounds()) {
		return rgbh.RGB[rgbh.Proportion]{}, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
	}

	crop := imaging.Crop(img, r)
	var sum [3]float64
	for i := 0; i < len(crop.Pix); i += 4 {
		sum[0] += float64(crop.Pix[i])
		sum[1] += float64(crop.Pix[i+1])
		sum[2] += float64(crop.Pix[i+2])
	}
	n := float64(len(crop.Pix) / 4)
	return rgbh.NewRGB(
		rgbh.Proportion(sum[0]/n/255),
		rgbh.Proportion(sum[1]/n/255),
		rgbh.Proportion(sum[2]/n/255),
	), nil
}
