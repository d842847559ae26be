// Package glyph defines the read-only bitmap and font sources consumed by the
// SSD1322 drawing functions, and builds them from Go images and font faces.
//
// All bitmaps are continuous 4-bit nibble streams: pixel k of a w×h bitmap,
// counted row-major, is nibble k of Pix, high nibble first. Rows are not
// padded, so an odd-width bitmap starts every other row on a low nibble.
package glyph

// Bitmap is a W×H 4-bit grayscale bitmap stored as a packed nibble stream.
type Bitmap struct {
	Pix  []byte
	W, H int
}

// Glyph is the bitmap of one character. The cursor advances by W after the
// glyph is drawn.
type Glyph struct {
	Bitmap
}

// Table is a font: a glyph per character code in [First, Last].
//
// Glyphs[i] holds the glyph of character First+i.
type Table struct {
	First, Last byte
	Glyphs      []Glyph
}

// Lookup returns the glyph for ch. ok is false when ch is outside the table.
func (t *Table) Lookup(ch byte) (g Glyph, ok bool) {
	if t == nil || ch < t.First || ch > t.Last {
		return Glyph{}, false
	}
	i := int(ch - t.First)
	if i >= len(t.Glyphs) {
		return Glyph{}, false
	}
	return t.Glyphs[i], true
}

// Height returns the tallest glyph height of the table.
func (t *Table) Height() int {
	h := 0
	for _, g := range t.Glyphs {
		if g.H > h {
			h = g.H
		}
	}
	return h
}

// Width returns the advance of s when drawn with t, stopping at the first
// newline. Characters outside the table advance by 0.
func (t *Table) Width(s string) int {
	w := 0
	for i := 0; i < len(s) && s[i] != '\n'; i++ {
		if g, ok := t.Lookup(s[i]); ok {
			w += g.W
		}
	}
	return w
}

// Pack packs 4-bit values into a nibble stream, high nibble first. Values
// wider than 4 bits are masked.
func Pack(values []uint8) []byte {
	out := make([]byte, (len(values)+1)/2)
	for k, v := range values {
		if k%2 == 0 {
			out[k/2] |= (v & 0x0F) << 4
		} else {
			out[k/2] |= v & 0x0F
		}
	}
	return out
}
