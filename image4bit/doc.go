// Package image4bit implements the packed 4-bit grayscale framebuffer used by
// the SSD1322 driver.
//
// Gray levels run from 0 (off) to 15 (full intensity). HorizontalNibble
// stores two horizontally adjacent pixels per byte, the even x in the high
// nibble, matching the controller graphics RAM byte for byte:
//
//	x:      0    1    2    3    4
//	level:  5    10   3    12   7
//	Pix:    0x5A      0x3C      0x70
//
// A row of w pixels takes ceil(w/2) bytes. With an odd width the low nibble
// of the last byte of each row is padding and is never drawn.
//
// Besides the image.Image and draw.Image methods, HorizontalNibble provides
// stop-exclusive line primitives, rectangle outlines and fills, and blitters
// for 4-bit nibble-stream and 8-bit bitmaps. All of them clip to the image
// bounds.
//
//	fb := image4bit.NewHorizontalNibble(image.Rect(0, 0, 256, 64))
//	fb.HLine(0, 100, 30, image4bit.Gray4{Y: 15}) // x = 0..99
//	fb.StrokeRect(0, 0, 256, 64, image4bit.Gray4{Y: 4})
//	draw.Draw(fb, fb.Bounds(), logo, image.Point{}, draw.Over)
package image4bit
