package scene

import (
	"context"
	"image"
	"image/draw"

	"github.com/flavioheleno/ssd1322fb"
	"github.com/flavioheleno/ssd1322fb/image4bit"
)

// Gradient shows a horizontal ramp through the 16 gray levels.
func Gradient(_ context.Context, d *ssd1322.Dev, _ Options) error {
	img := image4bit.NewHorizontalNibble(d.Bounds())
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray4(x, y, image4bit.Gray4{Y: byte(x * 16 / w)})
		}
	}
	return d.Draw(d.Bounds(), img, image.Point{})
}

// Patterns shows a checkerboard on the top half and one bar per gray level
// on the bottom half.
func Patterns(_ context.Context, d *ssd1322.Dev, _ Options) error {
	const check = 4
	b := d.Bounds()
	half := b.Dy() / 2
	d.Fill(0)
	for y := 0; y < half; y += check {
		for x := (y / check % 2) * check; x < b.Dx(); x += 2 * check {
			d.FillRect(x, y, check, check, 15)
		}
	}
	bar := b.Dx() / 16
	if bar == 0 {
		bar = 1
	}
	for i := 0; i < 16; i++ {
		d.FillRect(i*bar, half, bar, b.Dy()-half, uint8(i))
	}
	d.DrawHLine(0, b.Dx(), half, 8)
	return d.Flush()
}

// Contrast shows mid gray and sweeps the contrast current, then restores
// the default.
func Contrast(ctx context.Context, d *ssd1322.Dev, o Options) error {
	o.defaults()
	gray := image.NewUniform(image4bit.Gray4{Y: 8})
	draw.Draw(d.Framebuffer(), d.Bounds(), gray, image.Point{}, draw.Src)
	if err := d.Flush(); err != nil {
		return err
	}
	for c := 0; c < 256; c += 16 {
		if err := d.SetContrast(byte(c)); err != nil {
			return err
		}
		o.Logger.Debug("contrast", "value", c)
		if err := wait(ctx, o.Delay); err != nil {
			return err
		}
	}
	return d.SetContrast(ssd1322.DefaultContrast)
}

// Scroll moves the start line through every row, which scrolls the picture
// vertically without rewriting RAM.
func Scroll(ctx context.Context, d *ssd1322.Dev, o Options) error {
	o.defaults()
	b := d.Bounds()
	d.Fill(0)
	for y := 0; y < b.Dy(); y += 8 {
		d.FillRect(0, y, b.Dx(), 4, 15)
	}
	for x := 0; x < b.Dx(); x += 16 {
		d.DrawVLine(0, b.Dy(), x, 6)
	}
	if err := d.Flush(); err != nil {
		return err
	}
	for line := 0; line < b.Dy(); line++ {
		if err := d.SetStartLine(byte(line)); err != nil {
			return err
		}
		if err := wait(ctx, o.Delay); err != nil {
			return err
		}
	}
	return d.SetStartLine(0)
}
