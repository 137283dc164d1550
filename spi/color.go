package spi

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/joywire/joywire/wire"
)

// Color is one RGB triplet as stored in flash.
type Color struct {
	R, G, B uint8
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses exactly six hex characters ("ff8000") into a Color.
// Calling it with any other length is a caller error and panics; a non-hex
// character is a recoverable parse failure returned to the caller.
func ParseColor(s string) (Color, error) {
	if len(s) != 6 {
		panic(fmt.Sprintf("spi: color string must be 6 hex characters, got %q", s))
	}
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("spi: bad color %q: %w", s, err)
		}
		ch[i] = uint8(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ControllerColor is the set of stored body colors, 12 bytes at 0x6050.
type ControllerColor struct {
	Body      Color
	Buttons   Color
	LeftGrip  Color
	RightGrip Color
}

func (c ControllerColor) Range() Range { return RangeControllerColor }

func (c ControllerColor) Size() int { return 12 }

func (c ControllerColor) MarshalBinary() ([]byte, error) {
	return []byte{
		c.Body.R, c.Body.G, c.Body.B,
		c.Buttons.R, c.Buttons.G, c.Buttons.B,
		c.LeftGrip.R, c.LeftGrip.G, c.LeftGrip.B,
		c.RightGrip.R, c.RightGrip.G, c.RightGrip.B,
	}, nil
}

func (c *ControllerColor) UnmarshalBinary(data []byte) error {
	if len(data) < c.Size() {
		return io.ErrUnexpectedEOF
	}
	c.Body = Color{data[0], data[1], data[2]}
	c.Buttons = Color{data[3], data[4], data[5]}
	c.LeftGrip = Color{data[6], data[7], data[8]}
	c.RightGrip = Color{data[9], data[10], data[11]}
	return nil
}

func (c ControllerColor) String() string {
	return fmt.Sprintf("ControllerColor{body: %v, buttons: %v, left_grip: %v, right_grip: %v}",
		c.Body, c.Buttons, c.LeftGrip, c.RightGrip)
}

// ColorUsage tells the firmware which of the stored colors to report.
type ColorUsage uint8

const (
	ColorUsageNone          ColorUsage = 0
	ColorUsageWithoutGrip   ColorUsage = 1
	ColorUsageIncludingGrip ColorUsage = 2
)

func (u ColorUsage) Valid() bool {
	return u <= ColorUsageIncludingGrip
}

func (u ColorUsage) String() string {
	switch u {
	case ColorUsageNone:
		return "None"
	case ColorUsageWithoutGrip:
		return "WithoutGrip"
	case ColorUsageIncludingGrip:
		return "IncludingGrip"
	}
	return fmt.Sprintf("ColorUsage(0x%02x)", uint8(u))
}

// ColorUsageFlag is the one-byte flash record at 0x601B holding a
// ColorUsage. The raw byte is preserved even when it names no known usage.
type ColorUsageFlag struct {
	id wire.RawID[ColorUsage]
}

// NewColorUsageFlag builds the record for a known usage value.
func NewColorUsageFlag(u ColorUsage) ColorUsageFlag {
	return ColorUsageFlag{id: wire.FromID(u)}
}

// Usage decodes the stored byte; ok is false for unknown values.
func (f ColorUsageFlag) Usage() (ColorUsage, bool) {
	return f.id.ID()
}

func (f ColorUsageFlag) Range() Range { return RangeColorUsage }

func (f ColorUsageFlag) Size() int { return 1 }

func (f ColorUsageFlag) MarshalBinary() ([]byte, error) {
	return []byte{f.id.Byte()}, nil
}

func (f *ColorUsageFlag) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return io.ErrUnexpectedEOF
	}
	f.id = wire.NewRawID[ColorUsage](data[0])
	return nil
}

func (f ColorUsageFlag) String() string {
	return f.id.String()
}

// SerialNumber is the 16-byte serial record at 0x6000. All-0xFF means no
// serial is programmed.
type SerialNumber [16]byte

func (s SerialNumber) Range() Range { return RangeSerialNumber }

func (s SerialNumber) Size() int { return 16 }

func (s SerialNumber) MarshalBinary() ([]byte, error) {
	out := make([]byte, 16)
	copy(out, s[:])
	return out, nil
}

func (s *SerialNumber) UnmarshalBinary(data []byte) error {
	if len(data) < 16 {
		return io.ErrUnexpectedEOF
	}
	copy(s[:], data[:16])
	return nil
}

func (s SerialNumber) String() string {
	var b strings.Builder
	for _, c := range s {
		if c == 0xFF || c == 0 {
			continue
		}
		if c < 0x20 || c > 0x7E {
			return fmt.Sprintf("% 02x", s[:])
		}
		b.WriteByte(c)
	}
	if b.Len() == 0 {
		return "<none>"
	}
	return b.String()
}

// StickParameters1 is the opaque 24-byte block at 0x6080. The first six
// bytes have been observed to hold a horizontal offset; the rest is
// undocumented and kept raw.
type StickParameters1 [24]byte

func (p StickParameters1) Range() Range { return RangeStickParameters1 }

func (p StickParameters1) Size() int { return 24 }

func (p StickParameters1) MarshalBinary() ([]byte, error) {
	out := make([]byte, 24)
	copy(out, p[:])
	return out, nil
}

func (p *StickParameters1) UnmarshalBinary(data []byte) error {
	if len(data) < 24 {
		return io.ErrUnexpectedEOF
	}
	copy(p[:], data[:24])
	return nil
}

// HorizontalOffset returns the first six bytes of the block.
func (p StickParameters1) HorizontalOffset() [6]byte {
	var out [6]byte
	copy(out[:], p[:6])
	return out
}

func (p StickParameters1) String() string {
	return fmt.Sprintf("StickParameters1{horizontal_offset: % 02x, raw: % 02x}", p[:6], p[6:])
}

// StickParameters2 is the opaque 18-byte block at 0x6098, semantics
// undocumented.
type StickParameters2 [18]byte

func (p StickParameters2) Range() Range { return RangeStickParameters2 }

func (p StickParameters2) Size() int { return 18 }

func (p StickParameters2) MarshalBinary() ([]byte, error) {
	out := make([]byte, 18)
	copy(out, p[:])
	return out, nil
}

func (p *StickParameters2) UnmarshalBinary(data []byte) error {
	if len(data) < 18 {
		return io.ErrUnexpectedEOF
	}
	copy(p[:], data[:18])
	return nil
}

func (p StickParameters2) String() string {
	return fmt.Sprintf("StickParameters2{% 02x}", p[:])
}
