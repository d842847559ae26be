package ssd1322

import "github.com/flavioheleno/ssd1322fb/image4bit"

// columnWindow addresses packed columns [start, stop]. The controller column
// offset is added after the 7-bit wrap.
//
// One column address is one framebuffer byte (two pixels), which is also how
// ssd1322sim models RAM. The datasheet column register counts 4-pixel
// groups and ends at 0x77, so a 256-pixel-wide window (0x1C..0x9B) overruns
// it on real glass.
func columnWindow(start, stop int) command {
	return command{SetColumnAddress, []byte{
		columnOffset + byte(start&0x7F),
		columnOffset + byte(stop&0x7F),
	}}
}

// rowWindow addresses rows [start, stop].
func rowWindow(start, stop int) command {
	return command{SetRowAddress, []byte{byte(start & 0x7F), byte(stop & 0x7F)}}
}

// fullWindow addresses the whole framebuffer, column window first.
func (d *Dev) fullWindow() []command {
	return []command{
		columnWindow(0, image4bit.PackedWidth(d.rect.Dx())-1),
		rowWindow(0, d.rect.Dy()-1),
	}
}
