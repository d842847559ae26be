package image4bit

import (
	"image"
	"image/color"
)

// Gray4 is one of the 16 panel gray levels. Bits of Y above the low nibble
// are ignored.
type Gray4 struct {
	Y uint8
}

// RGBA implements color.Color. Level 15 maps to 0xFFFF.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y&0x0F) * 0x1111
	return y, y, y, 0xFFFF
}

func toGray4(c color.Color) color.Color {
	if v, ok := c.(Gray4); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	// Rec. 601 luma on 16-bit channels, then keep the top 4 bits.
	luma := (299*r + 587*g + 114*b + 500) / 1000
	return Gray4{Y: uint8(luma >> 12)}
}

// Gray4Model converts any color to its Gray4 luma level.
var Gray4Model = color.ModelFunc(toGray4)

// HorizontalNibble is the packed framebuffer: two pixels per byte, even x in
// the high nibble. Rows are Stride = ceil(width/2) bytes long; with an odd
// width the low nibble ending each row is padding.
type HorizontalNibble struct {
	Pix    []byte
	Stride int
	Rect   image.Rectangle
}

// PackedWidth returns the number of bytes needed to hold a row of w pixels.
func PackedWidth(w int) int {
	return (w + 1) / 2
}

// NewHorizontalNibble returns a black framebuffer covering r. An empty r
// gives an image without pixels.
func NewHorizontalNibble(r image.Rectangle) *HorizontalNibble {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &HorizontalNibble{Rect: r}
	}
	stride := PackedWidth(w)
	return &HorizontalNibble{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

func (p *HorizontalNibble) ColorModel() color.Model {
	return Gray4Model
}

func (p *HorizontalNibble) Bounds() image.Rectangle {
	return p.Rect
}

func (p *HorizontalNibble) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the level of pixel (x, y), or black outside Rect.
func (p *HorizontalNibble) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	i, shift := p.pixOffset(x, y)
	return Gray4{Y: p.Pix[i] >> shift & 0x0F}
}

// Set implements draw.Image.
func (p *HorizontalNibble) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 writes the nibble of pixel (x, y) and leaves its neighbour alone.
// Pixels outside Rect are dropped.
func (p *HorizontalNibble) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i, shift := p.pixOffset(x, y)
	p.Pix[i] = p.Pix[i]&^(0x0F<<shift) | (c.Y&0x0F)<<shift
}

// Fill sets every pixel to c. Both nibbles of every byte, padding included,
// hold the same value.
func (p *HorizontalNibble) Fill(c Gray4) {
	b := FillByte(c.Y)
	for i := range p.Pix {
		p.Pix[i] = b
	}
}

// FillByte returns the packed byte used by Fill for the color value v:
// (v<<4) | (v&0xF), computed in byte arithmetic so the high bits of v are
// discarded.
func FillByte(v uint8) byte {
	return v<<4 | v&0x0F
}

func (p *HorizontalNibble) pixOffset(x, y int) (offset int, shift uint) {
	return NibbleOffset(x-p.Rect.Min.X, y-p.Rect.Min.Y, p.Stride)
}

// NibbleOffset returns the byte offset and bit shift of the pixel (x, y) in a
// packed buffer with stride bytes per row.
//
// Even x (0, 2, 4...) uses the high nibble (shift 4), odd x the low nibble
// (shift 0).
func NibbleOffset(x, y, stride int) (offset int, shift uint) {
	offset = x/2 + y*stride
	shift = uint(4 * (1 - (x & 1)))
	return
}
