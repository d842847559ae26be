package ssd1322

import (
	"periph.io/x/conn/v3/gpio"
)

// send issues op as a one byte command transaction followed, when payload is
// not empty, by a data transaction carrying payload.
//
// Each phase is bracketed by its own chip-select assertion when a CS pin is
// assigned. Transport and pin errors are returned as is.
func (d *Dev) send(op Opcode, payload ...byte) error {
	if err := d.transmit(gpio.Low, []byte{byte(op)}); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	return d.transmit(gpio.High, payload)
}

// sendAll sends a command program in order, stopping at the first error.
func (d *Dev) sendAll(cmds []command) error {
	for _, c := range cmds {
		d.log.Debug("ssd1322: command", "op", c.op, "len", len(c.data))
		if err := d.send(c.op, c.data...); err != nil {
			return err
		}
	}
	return nil
}

// transmit drives DC to dc and writes p. Writes larger than the connection
// limit are split but stay inside one chip-select bracket.
func (d *Dev) transmit(dc gpio.Level, p []byte) (err error) {
	if err := d.dc.Out(dc); err != nil {
		return err
	}
	if d.cs != nil {
		if err := d.cs.Out(gpio.Low); err != nil {
			return err
		}
		defer func() {
			if csErr := d.cs.Out(gpio.High); err == nil {
				err = csErr
			}
		}()
	}
	for len(p) > 0 {
		n := len(p)
		if d.maxTxSize > 0 && n > d.maxTxSize {
			n = d.maxTxSize
		}
		if err := d.c.Tx(p[:n], nil); err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}
