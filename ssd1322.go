package ssd1322

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/flavioheleno/ssd1322fb/image4bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Largest panel addressable through the 7-bit column and row windows.
const (
	MaxWidth  = 256
	MaxHeight = 128
)

// Opts is the configuration for the SSD1322 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (default: 256, at most MaxWidth)
	H int // Height (default: 64, at most MaxHeight)

	// SPI clock (default: 16MHz)
	Frequency physic.Frequency

	// Logger receives debug traces of the command stream. Nil discards.
	Logger *slog.Logger
}

// Pins is the GPIO assignment of the display.
type Pins struct {
	DC    gpio.PinOut // Data/Command select, required
	Reset gpio.PinOut // Optional, nil if RST is not wired
	CS    gpio.PinOut // Optional, nil if the SPI port drives chip select
}

// Dev is the device handle for the SSD1322 display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	c         conn.Conn
	dc        gpio.PinOut
	rst       gpio.PinOut
	cs        gpio.PinOut
	maxTxSize int
	log       *slog.Logger

	// Display geometry
	rect image.Rectangle

	// Framebuffer mirror of the controller RAM
	fb *image4bit.HorizontalNibble

	halted bool
}

// NewSPI creates a new SSD1322 device connected via SPI.
//
// The SPI port is configured for Mode0 (CPOL=0, CPHA=0), 8-bit transfers at
// opts.Frequency. The device is reset, configured, cleared and switched to
// normal display mode before NewSPI returns.
//
// opts can be nil to use defaults (256x64 display).
func NewSPI(p spi.Port, pins Pins, opts *Opts) (*Dev, error) {
	o := Opts{W: 256, H: 64}
	if opts != nil {
		o = *opts
	}
	if o.Frequency == 0 {
		o.Frequency = 16 * physic.MegaHertz
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	if pins.DC == nil {
		return nil, errors.New("ssd1322: DC pin is required")
	}
	if o.W <= 0 || o.W > MaxWidth || o.H <= 0 || o.H > MaxHeight {
		return nil, fmt.Errorf("%w: %dx%d outside 1x1..%dx%d", ErrAllocation, o.W, o.H, MaxWidth, MaxHeight)
	}

	d := &Dev{
		dc:   pins.DC,
		rst:  pins.Reset,
		cs:   pins.CS,
		log:  o.Logger,
		rect: image.Rect(0, 0, o.W, o.H),
		fb:   image4bit.NewHorizontalNibble(image.Rect(0, 0, o.W, o.H)),
	}

	// Idle levels: panel held in reset, DC on data, chip deselected.
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("ssd1322: failed to pull RST low: %w", err)
		}
	}
	if err := d.dc.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("ssd1322: failed to pull DC high: %w", err)
	}
	if d.cs != nil {
		if err := d.cs.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("ssd1322: failed to pull CS high: %w", err)
		}
	}

	c, err := p.Connect(o.Frequency, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBusAttach, err)
	}
	d.c = c
	if l, ok := c.(conn.Limits); ok {
		d.maxTxSize = l.MaxTxSize()
	}

	d.log.Debug("ssd1322: attached", "bus", c.String(), "w", o.W, "h", o.H, "freq", o.Frequency)
	if err := d.hardwareReset(); err != nil {
		d.release()
		return nil, err
	}
	if err := d.init(); err != nil {
		d.release()
		return nil, err
	}
	return d, nil
}

// release drops the bus binding and the framebuffer.
func (d *Dev) release() {
	if d.cs != nil {
		_ = d.cs.Out(gpio.High)
	}
	d.c = nil
	d.fb = image4bit.NewHorizontalNibble(image.Rectangle{})
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image4bit.Gray4Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Framebuffer returns the framebuffer mirror. Changes become visible on the
// next Flush.
func (d *Dev) Framebuffer() *image4bit.HorizontalNibble {
	return d.fb
}

// Flush sends the whole framebuffer to the controller RAM.
func (d *Dev) Flush() error {
	if d.halted {
		return ErrHalted
	}
	return d.flush()
}

func (d *Dev) flush() error {
	if err := d.sendAll(d.fullWindow()); err != nil {
		return err
	}
	return d.send(WriteRAM, d.fb.Pix...)
}

// Write replaces the framebuffer with pixels, in HorizontalNibble format,
// and flushes it.
// The data must be exactly ceil(W/2) * H bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.fb.Pix) {
		return 0, ErrBufferSize
	}
	copy(d.fb.Pix, pixels)
	if err := d.flush(); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw draws src into the framebuffer over the dst rectangle and flushes it.
// The src image is aligned so that sp lands on dst.Min.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	clipped := dst.Intersect(d.rect)
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(dst.Min))
	dst = clipped

	// Fast path: full frame already in the native format.
	if img, ok := src.(*image4bit.HorizontalNibble); ok && dst == d.rect && img.Rect == d.rect && sp == (image.Point{}) {
		copy(d.fb.Pix, img.Pix)
	} else {
		draw.Draw(d.fb, dst, src, sp, draw.Src)
	}
	return d.flush()
}

// Mode is the display mode, selecting what the panel shows.
type Mode Opcode

// Display modes.
const (
	ModeNormal  = Mode(DisplayNormal)  // RAM content
	ModeInverse = Mode(DisplayInverse) // RAM content, inverted gray levels
	ModeAllOn   = Mode(DisplayAllOn)   // every pixel at full gray level
	ModeAllOff  = Mode(DisplayAllOff)  // every pixel off
)

// SetMode selects the display mode.
func (d *Dev) SetMode(m Mode) error {
	return d.Command(Opcode(m))
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	if invert {
		return d.SetMode(ModeInverse)
	}
	return d.SetMode(ModeNormal)
}

// Sleep turns the panel off. RAM content is kept.
func (d *Dev) Sleep() error {
	return d.Command(SleepOn)
}

// Wake turns the panel back on after Sleep.
func (d *Dev) Wake() error {
	return d.Command(SleepOff)
}

// GrayscaleTable holds one pulse width per gray level.
type GrayscaleTable [16]byte

// SetDefaultGrayscale selects the built-in linear grayscale ramp.
func (d *Dev) SetDefaultGrayscale() error {
	return d.Command(SelectDefaultGrayscale)
}

// SetGrayscaleTable loads and enables a custom grayscale ramp.
func (d *Dev) SetGrayscaleTable(t GrayscaleTable) error {
	if err := d.Command(EnableGrayscaleTable); err != nil {
		return err
	}
	return d.Command(SetGrayscaleTable, t[:]...)
}

// SetContrast sets the segment output current (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	return d.Command(SetContrastCurrent, contrast)
}

// SetBrightness sets the master contrast (0-15). Higher bits are ignored.
func (d *Dev) SetBrightness(brightness byte) error {
	return d.Command(MasterContrast, brightness&0x0F)
}

// SetStartLine sets the RAM row shown on the first panel line. Changing it
// scrolls the picture vertically without rewriting RAM.
func (d *Dev) SetStartLine(line byte) error {
	return d.Command(SetStartLine, line&0x7F)
}

// SetDisplayOffset shifts the mapping of panel rows to COM lines.
func (d *Dev) SetDisplayOffset(offset byte) error {
	return d.Command(SetDisplayOffset, offset&0x7F)
}

// SetCommandLock locks or unlocks the command interface. While locked the
// controller ignores every command but SetCommandLock.
func (d *Dev) SetCommandLock(lock bool) error {
	b := byte(commandUnlock)
	if lock {
		b = commandLock
	}
	return d.Command(SetCommandLock, b)
}

// Command sends a raw command with its data bytes.
func (d *Dev) Command(op Opcode, data ...byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.send(op, data...)
}

// Halt puts the controller to sleep and releases the bus and the
// framebuffer. After calling Halt, the device will not respond to further
// calls until it is re-created with NewSPI.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.send(SleepOn)
	d.halted = true
	d.release()
	d.log.Debug("ssd1322: halted", "err", err)
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ssd1322.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

var _ display.Drawer = &Dev{}
