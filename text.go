package ssd1322

import "github.com/flavioheleno/ssd1322fb/glyph"

// DrawChar draws the glyph of ch with its top-left corner at (x, y).
// Characters missing from font are skipped.
func (d *Dev) DrawChar(x, y int, ch byte, font *glyph.Table) {
	g, ok := font.Lookup(ch)
	if !ok {
		return
	}
	d.fb.Bitmap4(x, y, g.Pix, g.W, g.H)
}

// DrawString draws s on a single line starting at (x, y) and returns the
// cursor position after the last drawn character.
//
// The cursor advances by the width of each glyph. Drawing stops at a newline
// or once the cursor reaches the right edge; text never wraps. Characters
// missing from font are skipped without advancing the cursor.
func (d *Dev) DrawString(x, y int, s string, font *glyph.Table) int {
	for i := 0; i < len(s) && s[i] != '\n' && x < d.rect.Dx(); i++ {
		g, ok := font.Lookup(s[i])
		if !ok {
			continue
		}
		d.fb.Bitmap4(x, y, g.Pix, g.W, g.H)
		x += g.W
	}
	return x
}
