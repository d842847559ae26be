package glyph

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII, the default character range of the builders below.
const (
	FirstPrintable byte = 0x20
	LastPrintable  byte = 0x7E
)

// FromFace rasterizes the characters [first, last] of face into a Table.
//
// Every glyph is a cell as wide as the character advance and as tall as the
// face line height, with the baseline at the face ascent. Characters the
// face cannot render get a blank cell of the advance width, or an empty
// glyph when the face reports no advance.
func FromFace(face font.Face, first, last byte) *Table {
	t := &Table{First: first, Last: last}
	if first > last {
		return t
	}
	m := face.Metrics()
	h := m.Height.Ceil()
	ascent := m.Ascent.Ceil()

	for ch := int(first); ch <= int(last); ch++ {
		adv, ok := face.GlyphAdvance(rune(ch))
		w := adv.Round()
		if !ok || w <= 0 {
			t.Glyphs = append(t.Glyphs, Glyph{})
			continue
		}
		cell := image.NewGray(image.Rect(0, 0, w, h))
		dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, ascent), rune(ch))
		if ok {
			xdraw.DrawMask(cell, dr, image.White, image.Point{}, mask, maskp, xdraw.Over)
		}
		t.Glyphs = append(t.Glyphs, Glyph{Bitmap: FromImage(cell)})
	}
	return t
}

// Basic returns printable ASCII rendered from the 7×13 fixed face of
// golang.org/x/image/font/basicfont.
func Basic() *Table {
	return FromFace(basicfont.Face7x13, FirstPrintable, LastPrintable)
}

// FromTrueType parses a TrueType font and rasterizes [first, last] at size
// points (72 DPI, so one point is one display pixel).
func FromTrueType(ttf []byte, size float64, first, last byte) (*Table, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse truetype font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	return FromFace(face, first, last), nil
}

// GoRegular returns printable ASCII of the Go Regular font at size points.
func GoRegular(size float64) (*Table, error) {
	return FromTrueType(goregular.TTF, size, FirstPrintable, LastPrintable)
}
