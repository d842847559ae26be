package ssd1322

import "github.com/flavioheleno/ssd1322fb/image4bit"

// Power-on defaults applied by the init program.
const (
	DefaultContrast   = 128
	DefaultBrightness = 15
)

// initProgram returns the configuration sequence for a w×h panel. It leaves
// the controller awake with the default grayscale ramp; clearing RAM and
// selecting the display mode are done by init afterwards.
func initProgram(w, h int) []command {
	return []command{
		{SetCommandLock, []byte{commandUnlock}},
		{SleepOn, nil},
		{SetClockDivider, []byte{clockDivider(2, 15)}},

		{FunctionSelect, []byte{internalVDD}},
		{SetPrechargeVoltage, []byte{prechargeVoltage}},
		{SetSecondPrechargePeriod, []byte{secondPrechargePhase}},
		{SetVCOMH, []byte{vcomhVoltage}},

		{DisplayEnhancementA, []byte{enhancementA0, enhancementA1}},
		{DisplayEnhancementB, []byte{enhancementB0, enhancementB1}},

		{SetMuxRatio, []byte{byte(h - 1)}},
		{ExitPartialDisplay, nil},
		columnWindow(0, image4bit.PackedWidth(w)-1),
		rowWindow(0, h-1),
		{SetDisplayOffset, []byte{0}},
		{SetStartLine, []byte{0}},
		{SetRemap, panelRemap.bytes()},

		{SleepOff, nil},
		{SelectDefaultGrayscale, nil},
		{SetContrastCurrent, []byte{DefaultContrast}},
		{MasterContrast, []byte{DefaultBrightness & 0x0F}},
	}
}

// init runs the init program, clears the panel and selects normal mode.
func (d *Dev) init() error {
	if err := d.sendAll(initProgram(d.rect.Dx(), d.rect.Dy())); err != nil {
		return err
	}
	d.fb.Fill(image4bit.Gray4{})
	if err := d.flush(); err != nil {
		return err
	}
	return d.send(DisplayNormal)
}
