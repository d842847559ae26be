package ssd1322

import "errors"

var (
	// ErrAllocation reports a geometry the framebuffer and controller RAM
	// cannot hold.
	ErrAllocation = errors.New("ssd1322: framebuffer allocation failed")
	// ErrBusAttach wraps the error returned by spi.Port.Connect.
	ErrBusAttach = errors.New("ssd1322: cannot attach to SPI port")
	// ErrHalted is returned by every bus operation after Halt.
	ErrHalted = errors.New("ssd1322: halted")
	// ErrBufferSize is returned by Write when the pixel buffer does not match
	// the framebuffer size.
	ErrBufferSize = errors.New("ssd1322: invalid buffer size")
)
