package ssd1322

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// Displayer returns an adapter implementing the tinygo drivers.Displayer
// interface, so tinygo libraries such as tinyfont can render into the
// framebuffer. Display on the adapter flushes.
func (d *Dev) Displayer() drivers.Displayer {
	return displayer{d}
}

type displayer struct {
	d *Dev
}

func (a displayer) Size() (x, y int16) {
	return int16(a.d.rect.Dx()), int16(a.d.rect.Dy())
}

func (a displayer) SetPixel(x, y int16, c color.RGBA) {
	a.d.fb.Set(int(x), int(y), c)
}

func (a displayer) Display() error {
	return a.d.Flush()
}
