package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/paint-mix-mcp/internal/rgbh"
)

// MaxSwatchSide bounds each side of a rendered swatch in pixels.
const MaxSwatchSide = 2048

// SwatchResult holds a rendered swatch strip.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatch draws colors as equal patches side by side, each patchSize
// pixels square, and returns the strip as a base64 PNG.
func RenderSwatch(colors []rgbh.RGB[rgbh.Bits16], patchSize int) (*SwatchResult, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("no colors to render")
	}
	if patchSize <= 0 || patchSize > MaxSwatchSide || patchSize*len(colors) > MaxSwatchSide {
		return nil, fmt.Errorf("swatch of %d patches at %dpx exceeds %dpx", len(colors), patchSize, MaxSwatchSide)
	}

	strip := imaging.New(patchSize*len(colors), patchSize, color.Black)
	for i, c := range colors {
		patch := imaging.New(patchSize, patchSize, colorOf(c))
		strip = imaging.Paste(strip, patch, image.Pt(i*patchSize, 0))
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, strip, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	return &SwatchResult{
		Width:       strip.Bounds().Dx(),
		Height:      strip.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

func colorOf(rgb rgbh.RGB[rgbh.Bits16]) color.Color {
	return color.NRGBA64{
		R: uint16(rgb[rgbh.Red]),
		G: uint16(rgb[rgbh.Green]),
		B: uint16(rgb[rgbh.Blue]),
		A: 0xFFFF,
	}
}
