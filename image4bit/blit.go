package image4bit

// Drawing primitives. Every operation goes through SetGray4 one pixel at a
// time, so clipping follows the same rule: pixels outside Rect are dropped.

// HLine draws the pixels (x, y) for x in [x1, x2).
func (p *HorizontalNibble) HLine(x1, x2, y int, c Gray4) {
	for x := x1; x < x2; x++ {
		p.SetGray4(x, y, c)
	}
}

// VLine draws the pixels (x, y) for y in [y1, y2).
func (p *HorizontalNibble) VLine(y1, y2, x int, c Gray4) {
	for y := y1; y < y2; y++ {
		p.SetGray4(x, y, c)
	}
}

// StrokeRect draws the outline of the w×h rectangle whose top-left corner is (x, y).
func (p *HorizontalNibble) StrokeRect(x, y, w, h int, c Gray4) {
	if w <= 0 || h <= 0 {
		return
	}
	p.HLine(x, x+w, y, c)
	p.HLine(x, x+w, y+h-1, c)
	p.VLine(y, y+h, x, c)
	p.VLine(y, y+h, x+w-1, c)
}

// FillRect paints the w×h rectangle whose top-left corner is (x, y).
func (p *HorizontalNibble) FillRect(x, y, w, h int, c Gray4) {
	for row := y; row < y+h; row++ {
		p.HLine(x, x+w, row, c)
	}
}

// Nibble returns the k-th 4-bit value of a packed nibble stream. Within each
// byte the high nibble comes first.
func Nibble(src []byte, k int) uint8 {
	b := src[k/2]
	if k%2 == 0 {
		return b >> 4
	}
	return b & 0x0F
}

// Bitmap4 copies a w×h bitmap stored as a continuous stream of 4-bit values
// to (x, y).
//
// Destination pixel k, counted row-major, takes nibble k of src. The stream is
// not padded per row: with an odd w, the second row starts on a low nibble.
// Drawing stops early if src holds fewer than w*h nibbles.
func (p *HorizontalNibble) Bitmap4(x, y int, src []byte, w, h int) {
	n := len(src) * 2
	k := 0
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if k >= n {
				return
			}
			p.SetGray4(i, j, Gray4{Y: Nibble(src, k)})
			k++
		}
	}
}

// Bitmap8 copies a w×h bitmap with one byte per pixel to (x, y). Only the
// high nibble of each byte is kept.
// Drawing stops early if src holds fewer than w*h bytes.
func (p *HorizontalNibble) Bitmap8(x, y int, src []byte, w, h int) {
	k := 0
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if k >= len(src) {
				return
			}
			p.SetGray4(i, j, Gray4{Y: src[k] >> 4})
			k++
		}
	}
}
