// Package imaging reads paint swatch images and turns pixels into channel
// triples for the color mixer, and renders mixer colors back into images.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based with the origin at the
// top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// Images are decoded with their EXIF orientation applied, so coordinates
// refer to the image as it is displayed.
//
// # Sampling
//
// SampleColor reads a single pixel at sixteen bits per channel, which is
// exact for 16-bit PNG and TIFF sources. SampleRegion averages a rectangle
// of pixels into a proportion triple; averaging over a patch of paint
// smooths out texture and sensor noise.
//
// # Rendering
//
// RenderSwatch draws a strip of flat color patches and returns it as a
// base64 encoded PNG suitable for an MCP response.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The sampling and rendering
// functions are stateless.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates or regions outside image bounds
//   - Empty regions (x1 >= x2 or y1 >= y2)
//   - File I/O and decoding errors during image loading
//   - Swatches too large to render
package imaging
