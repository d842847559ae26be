// Package ssd1322sim is a software model of an SSD1322 controller wired to a
// 4-wire SPI bus.
//
// A Controller is an spi.Port and owns the DC, CS and RST pins of the
// virtual panel. It decodes the byte stream written by the ssd1322 driver
// (or any other client) into controller state and a graphics RAM model, so
// the driver can be exercised without hardware.
//
// RAM is modelled with one column address per packed byte: the column window
// values sent by the host, minus the 28 column offset, address bytes of a
// 128 byte (256 pixel) row. 128 rows are available.
package ssd1322sim

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/flavioheleno/ssd1322fb"
	"github.com/flavioheleno/ssd1322fb/image4bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// RAM geometry.
const (
	RAMStride = 128 // bytes per row
	RAMRows   = 128

	columnOffset = 28
)

// Command is a decoded command with the data bytes received after it.
type Command struct {
	Op   ssd1322.Opcode
	Data []byte
}

func (c Command) String() string {
	return fmt.Sprintf("%s % X", c.Op, c.Data)
}

// Transfer is one SPI transaction as seen on the wire.
type Transfer struct {
	DC gpio.Level
	W  []byte
}

// Controller models one SSD1322.
type Controller struct {
	mu sync.Mutex

	dc, cs, rst *Pin
	freq        physic.Frequency
	maxTxSize   int

	connectErr error
	failAfter  int
	failErr    error

	transfers []Transfer
	commands  []Command
	resets    int

	state
}

// state is everything a hardware reset restores.
type state struct {
	locked     bool
	asleep     bool
	mode       ssd1322.Opcode
	customGray bool
	regs       map[ssd1322.Opcode][]byte

	colStart, colEnd int
	rowStart, rowEnd int
	col, row         int

	// current is the index in commands of the command receiving data, -1
	// when data bytes have no command to attach to.
	current int
	ram     [RAMStride * RAMRows]byte
}

// New returns a controller in its power-on state.
func New() *Controller {
	c := &Controller{failAfter: -1}
	c.dc = &Pin{name: "DC", c: c, level: gpio.High}
	c.cs = &Pin{name: "CS", c: c, level: gpio.High}
	c.rst = &Pin{name: "RST", c: c, level: gpio.High}
	c.powerOn()
	return c
}

func (c *Controller) powerOn() {
	ram := c.ram
	c.state = state{
		asleep: true,
		mode:   ssd1322.DisplayNormal,
		regs: map[ssd1322.Opcode][]byte{
			ssd1322.SetContrastCurrent: {0x7F},
			ssd1322.MasterContrast:     {0x0F},
			ssd1322.SetMuxRatio:        {0x7F},
			ssd1322.SetStartLine:       {0x00},
			ssd1322.SetDisplayOffset:   {0x00},
		},
		colEnd:  RAMStride - 1,
		rowEnd:  RAMRows - 1,
		current: -1,
		ram:     ram,
	}
}

// DC returns the data/command pin.
func (c *Controller) DC() *Pin { return c.dc }

// CS returns the chip select pin. Until it is driven for the first time the
// controller behaves as if chip select were tied low.
func (c *Controller) CS() *Pin { return c.cs }

// Reset returns the RST pin. A low to high transition restores the power-on
// state; RAM content is kept.
func (c *Controller) Reset() *Pin { return c.rst }

// FailConnect makes the next Connect calls return err.
func (c *Controller) FailConnect(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connectErr = err
}

// FailAfter makes every transaction after the first n successful ones fail
// with err. A negative n disables failures.
func (c *Controller) FailAfter(n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failAfter = n
	c.failErr = err
}

// SetMaxTxSize sets the transaction size limit reported through conn.Limits.
// Zero means unlimited.
func (c *Controller) SetMaxTxSize(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxTxSize = n
}

// String implements spi.Port.
func (c *Controller) String() string {
	return "ssd1322sim"
}

// Connect implements spi.Port. The SSD1322 accepts SPI modes 0 and 3 with
// 8-bit words.
func (c *Controller) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.connectErr != nil {
		return nil, c.connectErr
	}
	if bits != 8 {
		return nil, fmt.Errorf("ssd1322sim: unsupported word size %d", bits)
	}
	if m := mode &^ spi.NoCS &^ spi.HalfDuplex &^ spi.LSBFirst; m != spi.Mode0 && m != spi.Mode3 {
		return nil, fmt.Errorf("ssd1322sim: unsupported mode %s", mode)
	}
	c.freq = f
	return &simConn{c: c}, nil
}

// LimitSpeed implements spi.Port.
func (c *Controller) LimitSpeed(f physic.Frequency) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.freq == 0 || f < c.freq {
		c.freq = f
	}
	return nil
}

// Close implements spi.PortCloser.
func (c *Controller) Close() error {
	return nil
}

// Frequency returns the clock the port was connected at.
func (c *Controller) Frequency() physic.Frequency {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.freq
}

// Transfers returns every transaction received so far.
func (c *Controller) Transfers() []Transfer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Transfer, len(c.transfers))
	copy(out, c.transfers)
	return out
}

// Commands returns the decoded command log.
func (c *Controller) Commands() []Command {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Command, len(c.commands))
	for i, cmd := range c.commands {
		out[i] = Command{Op: cmd.Op, Data: append([]byte(nil), cmd.Data...)}
	}
	return out
}

// ClearLog forgets the recorded transfers and commands.
func (c *Controller) ClearLog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transfers = nil
	c.commands = nil
	c.current = -1
}

// Resets returns the number of hardware resets seen on RST.
func (c *Controller) Resets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resets
}

var errRSTLow = errors.New("ssd1322sim: controller held in reset")

func (c *Controller) tx(w []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failAfter == 0 {
		return c.failErr
	}
	if c.failAfter > 0 {
		c.failAfter--
	}
	if c.rst.driven && c.rst.level == gpio.Low {
		return errRSTLow
	}
	if c.cs.driven && c.cs.level == gpio.High {
		// Not selected: the controller does not see the bytes.
		return nil
	}
	dc := c.dc.level
	c.transfers = append(c.transfers, Transfer{DC: dc, W: append([]byte(nil), w...)})
	if dc == gpio.Low {
		for _, b := range w {
			c.command(ssd1322.Opcode(b))
		}
		return nil
	}
	c.data(w)
	return nil
}

func (c *Controller) command(op ssd1322.Opcode) {
	c.commands = append(c.commands, Command{Op: op})
	c.current = len(c.commands) - 1
	if c.locked && op != ssd1322.SetCommandLock {
		c.current = -1
		return
	}
	switch op {
	case ssd1322.SleepOn:
		c.asleep = true
	case ssd1322.SleepOff:
		c.asleep = false
	case ssd1322.DisplayNormal, ssd1322.DisplayInverse, ssd1322.DisplayAllOn, ssd1322.DisplayAllOff:
		c.mode = op
	case ssd1322.SelectDefaultGrayscale:
		c.customGray = false
	case ssd1322.EnableGrayscaleTable:
		c.customGray = true
	case ssd1322.WriteRAM:
		c.col, c.row = c.colStart, c.rowStart
	}
}

func (c *Controller) data(w []byte) {
	if c.current < 0 || len(w) == 0 {
		return
	}
	cmd := &c.commands[c.current]
	cmd.Data = append(cmd.Data, w...)
	if cmd.Op == ssd1322.WriteRAM {
		c.writeRAM(w)
		return
	}
	d := cmd.Data
	switch cmd.Op {
	case ssd1322.SetCommandLock:
		c.locked = d[0] == 0x16
	case ssd1322.SetColumnAddress:
		if len(d) >= 2 {
			c.colStart = clamp(int(d[0])-columnOffset, RAMStride-1)
			c.colEnd = clamp(int(d[1])-columnOffset, RAMStride-1)
		}
	case ssd1322.SetRowAddress:
		if len(d) >= 2 {
			c.rowStart = clamp(int(d[0]), RAMRows-1)
			c.rowEnd = clamp(int(d[1]), RAMRows-1)
		}
	}
	c.regs[cmd.Op] = append([]byte(nil), d...)
}

// writeRAM stores bytes at the write pointer. The pointer walks the window
// row-major and wraps to its start.
func (c *Controller) writeRAM(w []byte) {
	for _, b := range w {
		c.ram[c.row*RAMStride+c.col] = b
		c.col++
		if c.col > c.colEnd {
			c.col = c.colStart
			c.row++
			if c.row > c.rowEnd {
				c.row = c.rowStart
			}
		}
	}
}

func (c *Controller) hardwareReset() {
	c.resets++
	c.powerOn()
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// Register returns the last data bytes received for op, or the power-on
// value for the registers that have one.
func (c *Controller) Register(op ssd1322.Opcode) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.regs[op]...)
}

// Locked reports whether the command interface is locked.
func (c *Controller) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locked
}

// Asleep reports whether the panel is in sleep mode.
func (c *Controller) Asleep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.asleep
}

// Mode returns the display mode opcode in effect.
func (c *Controller) Mode() ssd1322.Opcode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// CustomGrayscale reports whether the loaded grayscale table is in use.
func (c *Controller) CustomGrayscale() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.customGray
}

// Window returns the RAM window in byte columns and rows, bounds included.
func (c *Controller) Window() (colStart, colEnd, rowStart, rowEnd int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.colStart, c.colEnd, c.rowStart, c.rowEnd
}

// Snapshot copies the top-left w×h pixels of RAM, as stored.
func (c *Controller) Snapshot(w, h int) *image4bit.HorizontalNibble {
	c.mu.Lock()
	defer c.mu.Unlock()
	img := image4bit.NewHorizontalNibble(image.Rect(0, 0, w, h))
	for y := 0; y < h && y < RAMRows; y++ {
		n := img.Stride
		if n > RAMStride {
			n = RAMStride
		}
		copy(img.Pix[y*img.Stride:y*img.Stride+n], c.ram[y*RAMStride:])
	}
	return img
}

// Render returns what a w×h panel shows: RAM rows are taken from the start
// line on, then display mode, sleep and master contrast are applied.
func (c *Controller) Render(w, h int) *image.Gray {
	c.mu.Lock()
	defer c.mu.Unlock()
	img := image.NewGray(image.Rect(0, 0, w, h))
	start := int(c.regs[ssd1322.SetStartLine][0])
	master := int(c.regs[ssd1322.MasterContrast][0] & 0x0F)
	for y := 0; y < h; y++ {
		row := (y + start) % RAMRows
		for x := 0; x < w && x/2 < RAMStride; x++ {
			offset, shift := image4bit.NibbleOffset(x, row, RAMStride)
			g := int(c.ram[offset]>>shift) & 0x0F
			switch {
			case c.asleep || c.mode == ssd1322.DisplayAllOff:
				g = 0
			case c.mode == ssd1322.DisplayAllOn:
				g = 15
			case c.mode == ssd1322.DisplayInverse:
				g = 15 - g
			}
			g = g * (master + 1) / 16
			img.Pix[y*img.Stride+x] = uint8(g * 17)
		}
	}
	return img
}

type simConn struct {
	c *Controller
}

func (s *simConn) String() string {
	return "ssd1322sim"
}

func (s *simConn) Duplex() conn.Duplex {
	return conn.Half
}

// Tx implements conn.Conn. Reads are not supported on the 4-wire interface.
func (s *simConn) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errors.New("ssd1322sim: read not supported")
	}
	return s.c.tx(w)
}

// TxPackets implements spi.Conn.
func (s *simConn) TxPackets(p []spi.Packet) error {
	for _, pkt := range p {
		if err := s.Tx(pkt.W, pkt.R); err != nil {
			return err
		}
	}
	return nil
}

// MaxTxSize implements conn.Limits.
func (s *simConn) MaxTxSize() int {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	return s.c.maxTxSize
}

var (
	_ spi.PortCloser = &Controller{}
	_ spi.Conn       = &simConn{}
	_ conn.Limits    = &simConn{}
)
