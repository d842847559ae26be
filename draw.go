package ssd1322

import (
	"github.com/flavioheleno/ssd1322fb/glyph"
	"github.com/flavioheleno/ssd1322fb/image4bit"
)

// Drawing functions only modify the framebuffer; call Flush to update the
// panel. Colors are 4-bit gray levels, wider values are masked. Pixels
// outside the display are dropped.

// SetPixel sets the pixel (x, y) to color c.
func (d *Dev) SetPixel(x, y int, c uint8) {
	d.fb.SetGray4(x, y, image4bit.Gray4{Y: c})
}

// Pixel returns the gray level of the pixel (x, y).
func (d *Dev) Pixel(x, y int) uint8 {
	return d.fb.Gray4At(x, y).Y
}

// Fill sets every framebuffer byte to (c<<4) | (c&0xF).
func (d *Dev) Fill(c uint8) {
	d.fb.Fill(image4bit.Gray4{Y: c})
}

// DrawHLine draws row y from x1 up to, but not including, x2.
func (d *Dev) DrawHLine(x1, x2, y int, c uint8) {
	d.fb.HLine(x1, x2, y, image4bit.Gray4{Y: c})
}

// DrawVLine draws column x from y1 up to, but not including, y2.
func (d *Dev) DrawVLine(y1, y2, x int, c uint8) {
	d.fb.VLine(y1, y2, x, image4bit.Gray4{Y: c})
}

// DrawRect draws the outline of a w×h rectangle with its top-left corner at
// (x, y).
func (d *Dev) DrawRect(x, y, w, h int, c uint8) {
	d.fb.StrokeRect(x, y, w, h, image4bit.Gray4{Y: c})
}

// FillRect paints a w×h rectangle with its top-left corner at (x, y).
func (d *Dev) FillRect(x, y, w, h int, c uint8) {
	d.fb.FillRect(x, y, w, h, image4bit.Gray4{Y: c})
}

// DrawBitmap4 draws a w×h bitmap given as a continuous 4-bit nibble stream.
// See image4bit.HorizontalNibble.Bitmap4 for the stream layout.
func (d *Dev) DrawBitmap4(x, y int, src []byte, w, h int) {
	d.fb.Bitmap4(x, y, src, w, h)
}

// DrawBitmap8 draws a w×h bitmap with one byte per pixel, keeping the high
// nibble of each byte.
func (d *Dev) DrawBitmap8(x, y int, src []byte, w, h int) {
	d.fb.Bitmap8(x, y, src, w, h)
}

// DrawBitmap draws bm with its top-left corner at (x, y).
func (d *Dev) DrawBitmap(x, y int, bm glyph.Bitmap) {
	d.fb.Bitmap4(x, y, bm.Pix, bm.W, bm.H)
}
