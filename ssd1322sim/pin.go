package ssd1322sim

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// Pin is a controller input driven by the host.
type Pin struct {
	name   string
	c      *Controller
	level  gpio.Level
	driven bool
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return "ssd1322sim." + p.name
}

// Halt implements conn.Resource.
func (p *Pin) Halt() error {
	return nil
}

// Name implements pin.Pin.
func (p *Pin) Name() string {
	return p.name
}

// Number implements pin.Pin.
func (p *Pin) Number() int {
	return -1
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	return string(p.Func())
}

// Func implements pin.PinFunc.
func (p *Pin) Func() pin.Func {
	return gpio.OUT
}

// SupportedFuncs implements pin.PinFunc.
func (p *Pin) SupportedFuncs() []pin.Func {
	return []pin.Func{gpio.OUT}
}

// SetFunc implements pin.PinFunc.
func (p *Pin) SetFunc(f pin.Func) error {
	if f != gpio.OUT {
		return errors.New("ssd1322sim: pins are output only")
	}
	return nil
}

// Level returns the last level driven on the pin.
func (p *Pin) Level() gpio.Level {
	p.c.mu.Lock()
	defer p.c.mu.Unlock()
	return p.level
}

// Out implements gpio.PinOut. A rising edge on RST resets the controller.
func (p *Pin) Out(l gpio.Level) error {
	p.c.mu.Lock()
	defer p.c.mu.Unlock()
	rising := p.level == gpio.Low && l == gpio.High
	p.level = l
	p.driven = true
	if p == p.c.rst && rising {
		p.c.hardwareReset()
	}
	return nil
}

// PWM implements gpio.PinOut.
func (p *Pin) PWM(gpio.Duty, physic.Frequency) error {
	return errors.New("ssd1322sim: PWM not supported")
}

var _ gpio.PinOut = &Pin{}
