package ssd1322

import "fmt"

// Opcode is an SSD1322 command byte.
type Opcode byte

// Command set used by this driver. Values follow the SSD1322 register map.
const (
	EnableGrayscaleTable     Opcode = 0x00
	SetColumnAddress         Opcode = 0x15
	WriteRAM                 Opcode = 0x5C
	SetRowAddress            Opcode = 0x75
	SetRemap                 Opcode = 0xA0
	SetStartLine             Opcode = 0xA1
	SetDisplayOffset         Opcode = 0xA2
	DisplayAllOff            Opcode = 0xA4
	DisplayAllOn             Opcode = 0xA5
	DisplayNormal            Opcode = 0xA6
	DisplayInverse           Opcode = 0xA7
	ExitPartialDisplay       Opcode = 0xA9
	FunctionSelect           Opcode = 0xAB
	SleepOn                  Opcode = 0xAE
	SleepOff                 Opcode = 0xAF
	SetClockDivider          Opcode = 0xB3
	DisplayEnhancementA      Opcode = 0xB4
	SetSecondPrechargePeriod Opcode = 0xB6
	SetGrayscaleTable        Opcode = 0xB8
	SelectDefaultGrayscale   Opcode = 0xB9
	SetPrechargeVoltage      Opcode = 0xBB
	SetVCOMH                 Opcode = 0xBE
	SetContrastCurrent       Opcode = 0xC1
	MasterContrast           Opcode = 0xC7
	SetMuxRatio              Opcode = 0xCA
	DisplayEnhancementB      Opcode = 0xD1
	SetCommandLock           Opcode = 0xFD
)

var opcodeNames = map[Opcode]string{
	EnableGrayscaleTable:     "EnableGrayscaleTable",
	SetColumnAddress:         "SetColumnAddress",
	WriteRAM:                 "WriteRAM",
	SetRowAddress:            "SetRowAddress",
	SetRemap:                 "SetRemap",
	SetStartLine:             "SetStartLine",
	SetDisplayOffset:         "SetDisplayOffset",
	DisplayAllOff:            "DisplayAllOff",
	DisplayAllOn:             "DisplayAllOn",
	DisplayNormal:            "DisplayNormal",
	DisplayInverse:           "DisplayInverse",
	ExitPartialDisplay:       "ExitPartialDisplay",
	FunctionSelect:           "FunctionSelect",
	SleepOn:                  "SleepOn",
	SleepOff:                 "SleepOff",
	SetClockDivider:          "SetClockDivider",
	DisplayEnhancementA:      "DisplayEnhancementA",
	SetSecondPrechargePeriod: "SetSecondPrechargePeriod",
	SetGrayscaleTable:        "SetGrayscaleTable",
	SelectDefaultGrayscale:   "SelectDefaultGrayscale",
	SetPrechargeVoltage:      "SetPrechargeVoltage",
	SetVCOMH:                 "SetVCOMH",
	SetContrastCurrent:       "SetContrastCurrent",
	MasterContrast:           "MasterContrast",
	SetMuxRatio:              "SetMuxRatio",
	DisplayEnhancementB:      "DisplayEnhancementB",
	SetCommandLock:           "SetCommandLock",
}

func (o Opcode) String() string {
	if s, ok := opcodeNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Opcode(0x%02X)", byte(o))
}

// Register payload constants.
const (
	commandUnlock = 0x12
	commandLock   = 0x16

	// Column addresses of a panel narrower than the 480 column RAM start at 28.
	columnOffset = 28

	// Vendor tuning bytes for the display enhancement registers.
	enhancementA0 = 0xA0
	enhancementA1 = 0xFD
	enhancementB0 = 0x82
	enhancementB1 = 0x20

	internalVDD          = 0x01
	prechargeVoltage     = 0x1F
	secondPrechargePhase = 0x08
	vcomhVoltage         = 0x07
)

// command is one entry of a command program: an opcode and its data bytes.
type command struct {
	op   Opcode
	data []byte
}

// clockDivider encodes register 0xB3: the front clock divider in the low
// nibble, the oscillator frequency in the high nibble.
func clockDivider(divider, freq byte) byte {
	return (freq&0x0F)<<4 | divider&0x0F
}

// remap is the two-byte payload of SetRemap.
type remap struct {
	verticalIncrement bool // A[0]
	columnRemap       bool // A[1]
	nibbleRemap       bool // A[2]
	horizontalMirror  bool // A[4], COM scan direction
	oddEvenSplit      bool // A[5]
	dualLine          bool // B[4], dual COM line mode
}

func (r remap) bytes() []byte {
	var a byte
	if r.verticalIncrement {
		a |= 1 << 0
	}
	if r.columnRemap {
		a |= 1 << 1
	}
	if r.nibbleRemap {
		a |= 1 << 2
	}
	if r.horizontalMirror {
		a |= 1 << 4
	}
	if r.oddEvenSplit {
		a |= 1 << 5
	}
	// B[0] is reserved and must be 1.
	b := byte(1 << 0)
	if r.dualLine {
		b |= 1 << 4
	}
	return []byte{a, b}
}

// panelRemap matches the orientation of the common 256x64 modules.
var panelRemap = remap{
	nibbleRemap:      true,
	horizontalMirror: true,
	dualLine:         true,
}
