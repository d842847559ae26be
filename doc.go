// Package ssd1322 controls a SSD1322 OLED display via SPI.
//
// The SSD1322 is a 4-bit grayscale OLED controller. This driver keeps a
// framebuffer mirror of the controller graphics RAM, draws into it and
// streams it to the panel on Flush.
//
// # Display Characteristics
//
// - 4-bit grayscale with 16 intensity levels (0-15)
// - Panels up to 256×128 pixels, typically 256×64
// - Two pixels per framebuffer byte: high nibble = even x, low nibble = odd x
// - Adjustable contrast current (0-255) and master brightness (0-15)
// - Normal, inverse, all-on and all-off display modes
// - Custom grayscale ramps
//
// # Hardware Connection
//
// Connect the SSD1322 display to your system via 4-wire SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select, or a GPIO passed as Pins.CS
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/flavioheleno/ssd1322fb"
//		"github.com/flavioheleno/ssd1322fb/glyph"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatal(err)
//		}
//		p, err := spireg.Open("")
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer p.Close()
//
//		dev, err := ssd1322.NewSPI(p, ssd1322.Pins{
//			DC:    gpioreg.ByName("GPIO25"),
//			Reset: gpioreg.ByName("GPIO24"),
//		}, &ssd1322.Opts{W: 256, H: 64})
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer dev.Halt()
//
//		dev.DrawRect(0, 0, 256, 64, 15)
//		dev.DrawString(4, 4, "hello", glyph.Basic())
//		if err := dev.Flush(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Initialization
//
// NewSPI pulses RST (when wired), then sends a fixed configuration program:
// unlock, sleep, clock, voltages, enhancement registers, multiplex ratio and
// RAM windows, remap, wake, default grayscale, contrast 128 and brightness
// 15. It finally clears RAM and selects normal mode. Any error aborts
// construction and no Dev is returned.
//
// # Drawing
//
// Lines are stop-exclusive: DrawHLine(2, 5, y, c) sets x = 2, 3 and 4.
// Out-of-range pixels are dropped.
//
// DrawBitmap4 reads its source as a continuous nibble stream that does not
// restart at row boundaries. With an odd width, every other row begins on a
// low nibble. glyph.Bitmap and glyph.Table produce data in that layout.
//
// DrawBitmap8 takes one byte per pixel and keeps its high nibble.
//
// DrawString lays glyphs out on one line, stops at '\n' or at the right edge
// and never wraps.
//
// # Compatibility
//
// Dev implements the display.Drawer interface from periph.io, and
// Dev.Displayer returns a tinygo drivers.Displayer so tinyfont can render
// into the framebuffer.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/SSD1322.pdf
package ssd1322
