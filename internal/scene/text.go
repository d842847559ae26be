package scene

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/flavioheleno/ssd1322fb"
	"github.com/flavioheleno/ssd1322fb/glyph"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Text shows one line per font source: the fixed basic face, Go Regular at
// o.FontSize and the tinyfont proggy face drawn through the tinygo adapter.
func Text(_ context.Context, d *ssd1322.Dev, o Options) error {
	o.defaults()
	regular, err := glyph.GoRegular(o.FontSize)
	if err != nil {
		return err
	}
	basic := glyph.Basic()
	b := d.Bounds()

	d.Fill(0)
	d.DrawRect(0, 0, b.Dx(), b.Dy(), 4)
	y := 2
	d.DrawString(3, y, "SSD1322 4-bit", basic)
	y += basic.Height()
	d.DrawString(3, y, fmt.Sprintf("%dx%d gray", b.Dx(), b.Dy()), regular)
	y += regular.Height()

	// tinyfont positions text by its baseline.
	tinyfont.WriteLine(d.Displayer(), &proggy.TinySZ8pt7b, 3, int16(y+10), "tinyfont", white)
	return d.Flush()
}

// Image shows the picture at o.ImagePath scaled to fit and centered.
func Image(_ context.Context, d *ssd1322.Dev, o Options) error {
	f, err := os.Open(o.ImagePath)
	if err != nil {
		return err
	}
	defer f.Close()
	b := d.Bounds()
	bm, err := glyph.DecodeFit(f, b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	d.Fill(0)
	d.DrawBitmap((b.Dx()-bm.W)/2, (b.Dy()-bm.H)/2, bm)
	return d.Flush()
}
