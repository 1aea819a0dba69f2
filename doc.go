// Package sevenseg controls a MAX7219-driven 8-digit 7-segment LED
// module over three bit-banged GPIO lines.
//
// The MAX7219 multiplexes up to eight 7-segment digits and is the
// controller on the common blue 8-digit modules. This driver keeps the
// chip in no-decode mode and renders characters through the glyph
// table in the segment sub-package.
//
// # Display Characteristics
//
// - 8 digit positions, each with 7 segments plus decimal point
// - 16 intensity levels (0-15)
// - Hardware shutdown (low-power) mode that retains register contents
// - Display-test mode lighting every segment
// - Write-only: the chip has no read-back or acknowledgment path
//
// # Hardware Connection
//
// Connect the module to any three GPIO outputs:
//
//	Module Pin → System Pin
//	GND        → GND
//	VCC        → 5V
//	DIN        → any GPIO (serial data)
//	CLK        → any GPIO (serial clock)
//	CS         → any GPIO (chip select / load)
//
// No hardware SPI peripheral is used; the driver shifts bits out
// itself, MSB first, latching each 16-bit frame on the rising CS edge.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/devices/v3/sevenseg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Resolve the three lines
//		din := gpioreg.ByName("GPIO10")
//		clk := gpioreg.ByName("GPIO11")
//		cs := gpioreg.ByName("GPIO8")
//
//		// Create the device (nil opts: full brightness, all digits)
//		dev, _ := sevenseg.New(din, clk, cs, nil)
//		defer dev.Halt()
//
//		dev.SetString("HELLO")
//	}
//
// # Character Rendering
//
// SetChar and SetString map ASCII to segment patterns via the fixed
// table in the segment sub-package. Lowercase letters fold to their
// uppercase glyph; characters with no legible 7-segment rendering
// (and anything outside '-' through 'Z') come out blank rather than
// failing. SetString writes right to left, so "HELLO" puts 'O' on
// digit position 7 and leaves positions 0-2 untouched.
//
// # Error Model
//
// The chip never reports back, so the only errors are input-range
// violations (brightness, scan limit, digit position) and GPIO write
// failures. Bring-up in New is best effort: failed steps are logged
// and construction continues.
//
// # Concurrency
//
// Dev is not safe for concurrent use. The CS/CLK sequence is not
// reentrant; interleaved calls corrupt the in-flight frame.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package sevenseg
