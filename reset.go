package ssd1322

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// sleep is replaced in tests.
var sleep = time.Sleep

// resetPulse is the RST waveform: each level is held for the given time.
var resetPulse = []struct {
	level gpio.Level
	hold  time.Duration
}{
	{gpio.High, 10 * time.Microsecond},
	{gpio.Low, 100 * time.Microsecond},
	{gpio.High, 10 * time.Millisecond}, // settle before the first command
}

// hardwareReset pulses RST low. It does nothing when no reset pin is wired.
func (d *Dev) hardwareReset() error {
	if d.rst == nil {
		return nil
	}
	for _, step := range resetPulse {
		if err := d.rst.Out(step.level); err != nil {
			return fmt.Errorf("ssd1322: failed to drive RST %s: %w", step.level, err)
		}
		sleep(step.hold)
	}
	return nil
}
