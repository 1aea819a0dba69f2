// Package segment encodes characters as MAX7219 no-decode segment
// patterns.
package segment

// Pattern is one digit's segment bitmap in the MAX7219 no-decode data
// format: bit 6 down to bit 0 drive segments A through G, bit 7 drives
// the decimal point.
type Pattern byte

const (
	// Blank turns every segment off.
	Blank Pattern = 0x00

	// Dot is the decimal point segment on its own. To light it on a
	// glyph, use WithDot.
	Dot Pattern = 0x80
)

// first is the lowest character with a table entry.
const first = '-'

// patterns covers '-' (0x2D) through 'Z' (0x5A), indexed by character
// minus '-'. Letters with no legible 7-segment rendering (K, M, Q, W,
// X, Z) and the punctuation between '9' and 'A' are blank.
var patterns = [...]Pattern{
	0x01, // -
	0x80, // .
	0x00, // /
	0x7E, // 0
	0x30, // 1
	0x6D, // 2
	0x79, // 3
	0x33, // 4
	0x5B, // 5
	0x5F, // 6
	0x70, // 7
	0x7F, // 8
	0x7B, // 9
	0x00, // :
	0x00, // ;
	0x00, // <
	0x00, // =
	0x00, // >
	0x00, // ?
	0x00, // @
	0x77, // A
	0x1F, // B
	0x0D, // C
	0x3D, // D
	0x4F, // E
	0x47, // F
	0x7B, // G
	0x37, // H
	0x30, // I
	0x38, // J
	0x00, // K
	0x0E, // L
	0x00, // M
	0x15, // N
	0x7E, // O
	0x67, // P
	0x00, // Q
	0x05, // R
	0x5B, // S
	0x0F, // T
	0x3E, // U
	0x1C, // V
	0x00, // W
	0x00, // X
	0x3B, // Y
	0x00, // Z
}

// Lookup returns the pattern for r. Lowercase letters fold to their
// uppercase glyph. Characters outside the table render Blank.
func Lookup(r rune) Pattern {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < first || r > 'Z' {
		return Blank
	}
	return patterns[r-first]
}

// WithDot returns p with the decimal point segment lit.
func (p Pattern) WithDot() Pattern {
	return p | Dot
}
