// Package sevenseg controls a MAX7219-driven 8-digit 7-segment LED
// module over three bit-banged GPIO lines.
//
// See the examples for how to use this package.
package sevenseg

import (
	"errors"
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/devices/v3/sevenseg/segment"
)

// MAX7219 control register addresses (Table 2 of the datasheet).
// Digit registers are 0x01-0x08, one per digit position.
const (
	regDecodeMode  byte = 0x09 // never written: decode stays off, glyphs come from segment
	regIntensity   byte = 0x0A
	regScanLimit   byte = 0x0B
	regShutdown    byte = 0x0C
	regDisplayTest byte = 0x0F
)

// Digits is the number of digit positions on a single module.
const Digits = 8

// Opts is the configuration for the display.
type Opts struct {
	// Brightness is the initial intensity register value (0-15).
	Brightness int

	// ScanLimit is the highest digit position scanned by the chip
	// (0-7). 7 drives all eight digits.
	ScanLimit int

	// Settle is how long to wait after bring-up before New returns,
	// giving the module time to stabilize. Zero skips the delay.
	Settle time.Duration
}

// DefaultOpts is used when New is called with nil opts: full
// brightness, all eight digits scanned, one second settle delay.
var DefaultOpts = Opts{Brightness: 15, ScanLimit: 7, Settle: time.Second}

// Config is the last configuration written to the chip.
//
// The MAX7219 is write-only, so this is a shadow copy kept for
// diagnostics, not a read-back: if the display side is reset or loses
// power, the two silently diverge.
type Config struct {
	Brightness  int
	ScanLimit   int
	On          bool
	DisplayTest bool
	Digits      [Digits]segment.Pattern
}

// Dev is the device handle for the display module.
//
// Dev is not safe for concurrent use: an operation interleaved from
// another goroutine would corrupt the in-flight frame on the wire.
type Dev struct {
	// The three output lines.
	din gpio.PinOut // serial data
	clk gpio.PinOut // serial clock
	cs  gpio.PinOut // chip select, idles high

	cfg    Config
	halted bool
}

var errHalted = errors.New("sevenseg: halted")

// New creates a device handle on the given lines and brings the chip
// up: display-test off, scan limit and brightness set, powered on,
// all positions blanked.
//
// The chip offers no feedback channel, so bring-up is best effort: a
// failed step is logged and the remaining steps still run.
//
// opts can be nil to use DefaultOpts.
func New(din, clk, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	if din == nil || clk == nil || cs == nil {
		return nil, errors.New("sevenseg: DIN, CLK and CS pins are all required")
	}
	if opts == nil {
		o := DefaultOpts
		opts = &o
	}
	if opts.Brightness < 0 || opts.Brightness > 15 {
		return nil, errors.New("sevenseg: brightness must be between 0 and 15")
	}
	if opts.ScanLimit < 0 || opts.ScanLimit > 7 {
		return nil, errors.New("sevenseg: scan limit must be between 0 and 7")
	}

	d := &Dev{din: din, clk: clk, cs: cs}

	// Idle levels: data and clock low, chip select high (latched).
	if err := din.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("sevenseg: failed to configure DIN: %w", err)
	}
	if err := clk.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("sevenseg: failed to configure CLK: %w", err)
	}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("sevenseg: failed to configure CS: %w", err)
	}

	d.init(opts)
	return d, nil
}

// init sends the bring-up sequence. Failures are logged but do not
// abort construction.
func (d *Dev) init(opts *Opts) {
	if err := d.DisplayTest(false); err != nil {
		log.Printf("sevenseg: disabling display test: %v", err)
	}
	if err := d.SetScanLimit(opts.ScanLimit); err != nil {
		log.Printf("sevenseg: setting scan limit: %v", err)
	}
	if err := d.SetBrightness(opts.Brightness); err != nil {
		log.Printf("sevenseg: setting brightness: %v", err)
	}
	if err := d.TurnOn(); err != nil {
		log.Printf("sevenseg: powering on: %v", err)
	}
	if err := d.Clear(); err != nil {
		log.Printf("sevenseg: clearing display: %v", err)
	}
	if opts.Settle > 0 {
		time.Sleep(opts.Settle)
	}
}

// TurnOn takes the chip out of shutdown mode so the digits light up.
func (d *Dev) TurnOn() error {
	if d.halted {
		return errHalted
	}
	if err := d.writeRegister(regShutdown, 1); err != nil {
		return err
	}
	d.cfg.On = true
	return nil
}

// TurnOff puts the chip in shutdown (low-power) mode. Register
// contents are retained, so TurnOn restores the previous display.
func (d *Dev) TurnOff() error {
	if d.halted {
		return errHalted
	}
	if err := d.writeRegister(regShutdown, 0); err != nil {
		return err
	}
	d.cfg.On = false
	return nil
}

// SetBrightness sets the display intensity (0-15). Out-of-range
// values are rejected without touching the wire.
func (d *Dev) SetBrightness(value int) error {
	if d.halted {
		return errHalted
	}
	if value < 0 || value > 15 {
		return fmt.Errorf("sevenseg: brightness %d out of range 0-15", value)
	}
	if err := d.writeRegister(regIntensity, byte(value)); err != nil {
		return err
	}
	d.cfg.Brightness = value
	return nil
}

// SetScanLimit sets the highest digit position the chip scans (0-7).
// Out-of-range values are rejected without touching the wire.
func (d *Dev) SetScanLimit(limit int) error {
	if d.halted {
		return errHalted
	}
	if limit < 0 || limit > 7 {
		return fmt.Errorf("sevenseg: scan limit %d out of range 0-7", limit)
	}
	if err := d.writeRegister(regScanLimit, byte(limit)); err != nil {
		return err
	}
	d.cfg.ScanLimit = limit
	return nil
}

// DisplayTest switches the chip's test mode, which lights every
// segment at full intensity regardless of register contents.
func (d *Dev) DisplayTest(on bool) error {
	if d.halted {
		return errHalted
	}
	var v byte
	if on {
		v = 1
	}
	if err := d.writeRegister(regDisplayTest, v); err != nil {
		return err
	}
	d.cfg.DisplayTest = on
	return nil
}

// SetChar renders a single character at digit position place (0-7).
// Lowercase letters fold to uppercase; characters without a glyph
// render blank, which is not an error.
func (d *Dev) SetChar(place int, r rune) error {
	if d.halted {
		return errHalted
	}
	if place < 0 || place >= Digits {
		return fmt.Errorf("sevenseg: digit position %d out of range 0-%d", place, Digits-1)
	}
	p := segment.Lookup(r)
	// Digit registers are 1-indexed on the wire.
	if err := d.writeRegister(byte(place)+1, byte(p)); err != nil {
		return err
	}
	d.cfg.Digits[place] = p
	return nil
}

// SetString renders up to the first 8 characters of s right to left:
// the rightmost rendered character lands on digit position 7. Shorter
// strings leave the lower positions untouched; call Clear first for a
// clean slate.
func (d *Dev) SetString(s string) error {
	if d.halted {
		return errHalted
	}
	runes := []rune(s)
	if len(runes) > Digits {
		runes = runes[:Digits]
	}
	place := Digits - 1
	for i := len(runes) - 1; i >= 0; i-- {
		if err := d.SetChar(place, runes[i]); err != nil {
			return err
		}
		place--
	}
	return nil
}

// Clear blanks all eight digit positions.
func (d *Dev) Clear() error {
	if d.halted {
		return errHalted
	}
	for place := 0; place < Digits; place++ {
		if err := d.writeRegister(byte(place)+1, byte(segment.Blank)); err != nil {
			return err
		}
		d.cfg.Digits[place] = segment.Blank
	}
	return nil
}

// Config returns a snapshot of the last configuration written to the
// chip. See the Config type for the caveat on staleness.
func (d *Dev) Config() Config {
	return d.cfg
}

// Halt powers off the display. After calling Halt, the device will
// not respond to further commands until re-created with New.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.writeRegister(regShutdown, 0)
	d.halted = true
	d.cfg.On = false
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("sevenseg.Dev{DIN:%s, CLK:%s, CS:%s}", d.din.Name(), d.clk.Name(), d.cs.Name())
}

// writeRegister sends one 16-bit frame: the register address byte,
// then the data byte, both MSB first. CS frames the transfer; the
// chip latches the frame on the rising CS edge.
func (d *Dev) writeRegister(reg, data byte) error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("sevenseg: failed to assert CS: %w", err)
	}
	if err := d.shiftOut(reg); err != nil {
		return err
	}
	if err := d.shiftOut(data); err != nil {
		return err
	}
	if err := d.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("sevenseg: failed to latch CS: %w", err)
	}
	return nil
}

// shiftOut clocks one byte onto DIN, MSB first. The MAX7219 samples
// DIN on the rising CLK edge and accepts up to 10MHz, so no inter-bit
// delay is needed at GPIO toggle speeds.
func (d *Dev) shiftOut(b byte) error {
	for bit := 7; bit >= 0; bit-- {
		if err := d.din.Out(gpio.Level(b&(1<<bit) != 0)); err != nil {
			return fmt.Errorf("sevenseg: failed to set DIN: %w", err)
		}
		if err := d.clk.Out(gpio.High); err != nil {
			return fmt.Errorf("sevenseg: failed to raise CLK: %w", err)
		}
		if err := d.clk.Out(gpio.Low); err != nil {
			return fmt.Errorf("sevenseg: failed to lower CLK: %w", err)
		}
	}
	return nil
}

var _ conn.Resource = &Dev{}
