// Package segment encodes characters as segment patterns for the
// MAX7219 in no-decode mode.
//
// Each Pattern is one byte driving one digit: bits 6-0 map to segments
// A-G and bit 7 to the decimal point, matching the chip's digit
// register layout when Code B decoding is disabled.
//
// Segment layout of a digit:
//
//	 _A_
//	F| |B
//	 |_G_|
//	E| |C
//	 |_D_| .DP
//
// The table covers ASCII '-' (0x2D) through 'Z' (0x5A). Lowercase
// letters fold to their uppercase glyph, so 'a' and 'A' render
// identically. Everything else, including letters that cannot be drawn
// legibly on seven segments, maps to Blank rather than an error.
//
// Example usage:
//
//	p := segment.Lookup('5') // 0x5B: segments A, C, D, F, G
//
//	// Light the decimal point next to the glyph
//	p = p.WithDot()
//
//	// Unmappable characters degrade to Blank
//	segment.Lookup('*') // Blank
package segment
