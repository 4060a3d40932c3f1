// Package palette converts between the channel triples of package rgbh and
// the textual and named forms colors take at the edges of the server.
//
// # Hex Notation
//
// Hex formats a triple as "#RRGGBB" after conversion to eight bits per
// channel, and Hex16 as "#RRRRGGGGBBBB" at full sixteen bit precision.
// ParseHex accepts "#RGB", "#RRGGBB" and "#RRRRGGGGBBBB" in either case.
//
// HexField and ParseHexField render and read a single channel value in the
// "0x" prefixed, zero padded form used by channel entry fields.
//
// # Named Colors
//
// Names come from the CSS color keyword table. Nearest finds the named color
// perceptually closest to a triple using the CIEDE2000 difference; ties are
// broken by name so the result is stable.
//
// # Foreground Selection
//
// BestForeground picks black or white text for a background color from its
// weighted luma.
package palette
