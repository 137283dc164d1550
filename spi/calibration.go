package spi

import (
	"fmt"
	"io"
)

// Stick calibration stores 12-bit x/y pairs packed two-per-three-bytes:
//
//	byte0 = x & 0xFF
//	byte1 = (x>>8 & 0xF) | (y&0xF)<<4
//	byte2 = y >> 4
//
// 24 bits for 24 bits of data, exact in both directions.
func packCoords(x, y uint16) [3]byte {
	return [3]byte{
		byte(x & 0x00FF),
		byte((x>>8)&0x000F) | byte((y&0x000F)<<4),
		byte(y >> 4),
	}
}

func unpackX(raw [3]byte) uint16 {
	return (uint16(raw[1])<<8)&0xF00 | uint16(raw[0])
}

func unpackY(raw [3]byte) uint16 {
	return uint16(raw[2])<<4 | uint16(raw[1]>>4)
}

// axisMax caps min/max at the 12-bit range of the stick ADC.
const axisMax = 0xFFF

// The min/max fields hold offsets relative to center. Max is added and
// clamped to the ADC range; min is subtracted with a floor at zero, never
// wrapped.
func absMax(center uint16, raw [3]byte, unpack func([3]byte) uint16) uint16 {
	v := center + unpack(raw)
	if v > axisMax {
		return axisMax
	}
	return v
}

func absMin(center uint16, raw [3]byte, unpack func([3]byte) uint16) uint16 {
	off := unpack(raw)
	if off > center {
		return 0
	}
	return center - off
}

func satSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}

func clampAxis(v uint16) uint16 {
	if v > axisMax {
		return axisMax
	}
	return v
}

// relativeFields converts absolute min/center/max positions into the packed
// center-relative representation stored in flash.
func relativeFields(minX, minY, centerX, centerY, maxX, maxY uint16) (minRaw, centerRaw, maxRaw [3]byte) {
	minX, minY = clampAxis(minX), clampAxis(minY)
	centerX, centerY = clampAxis(centerX), clampAxis(centerY)
	maxX, maxY = clampAxis(maxX), clampAxis(maxY)
	minRaw = packCoords(satSub(centerX, minX), satSub(centerY, minY))
	centerRaw = packCoords(centerX, centerY)
	maxRaw = packCoords(satSub(maxX, centerX), satSub(maxY, centerY))
	return minRaw, centerRaw, maxRaw
}

// Factory default calibration constants, identical for both sticks apart
// from field order.
var (
	defaultStickMax    = packCoords(0x510, 0x479)
	defaultStickCenter = packCoords(0x79F, 0x8A0)
	defaultStickMin    = packCoords(0x4F7, 0x424)
)

// LeftStickCalibration is the left stick's 9-byte packed calibration record.
// Field order on the wire: max, center, min.
type LeftStickCalibration struct {
	max    [3]byte
	center [3]byte
	min    [3]byte
}

// NewLeftStickCalibration builds a record from absolute stick positions.
// Inputs are clamped to the 12-bit ADC range.
func NewLeftStickCalibration(minX, minY, centerX, centerY, maxX, maxY uint16) LeftStickCalibration {
	minRaw, centerRaw, maxRaw := relativeFields(minX, minY, centerX, centerY, maxX, maxY)
	return LeftStickCalibration{max: maxRaw, center: centerRaw, min: minRaw}
}

// DefaultLeftStickCalibration returns the factory constants.
func DefaultLeftStickCalibration() LeftStickCalibration {
	return LeftStickCalibration{
		max:    defaultStickMax,
		center: defaultStickCenter,
		min:    defaultStickMin,
	}
}

// Center returns the absolute center position.
func (c LeftStickCalibration) Center() (x, y uint16) {
	return unpackX(c.center), unpackY(c.center)
}

// Max returns the absolute maximum position, clamped to the ADC range.
func (c LeftStickCalibration) Max() (x, y uint16) {
	cx, cy := c.Center()
	return absMax(cx, c.max, unpackX), absMax(cy, c.max, unpackY)
}

// Min returns the absolute minimum position, floored at zero.
func (c LeftStickCalibration) Min() (x, y uint16) {
	cx, cy := c.Center()
	return absMin(cx, c.min, unpackX), absMin(cy, c.min, unpackY)
}

func (c LeftStickCalibration) Size() int { return 9 }

func (c LeftStickCalibration) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, c.Size())
	b = append(b, c.max[:]...)
	b = append(b, c.center[:]...)
	b = append(b, c.min[:]...)
	return b, nil
}

func (c *LeftStickCalibration) UnmarshalBinary(data []byte) error {
	if len(data) < c.Size() {
		return io.ErrUnexpectedEOF
	}
	copy(c.max[:], data[0:3])
	copy(c.center[:], data[3:6])
	copy(c.min[:], data[6:9])
	return nil
}

func (c LeftStickCalibration) String() string {
	return stickCalibString(c)
}

// RightStickCalibration is the right stick's 9-byte packed calibration
// record. Same packing as the left stick, different field order on the wire:
// center, min, max.
type RightStickCalibration struct {
	center [3]byte
	min    [3]byte
	max    [3]byte
}

// NewRightStickCalibration builds a record from absolute stick positions.
// Inputs are clamped to the 12-bit ADC range.
func NewRightStickCalibration(minX, minY, centerX, centerY, maxX, maxY uint16) RightStickCalibration {
	minRaw, centerRaw, maxRaw := relativeFields(minX, minY, centerX, centerY, maxX, maxY)
	return RightStickCalibration{center: centerRaw, min: minRaw, max: maxRaw}
}

// DefaultRightStickCalibration returns the factory constants.
func DefaultRightStickCalibration() RightStickCalibration {
	return RightStickCalibration{
		center: defaultStickCenter,
		min:    defaultStickMin,
		max:    defaultStickMax,
	}
}

// Center returns the absolute center position.
func (c RightStickCalibration) Center() (x, y uint16) {
	return unpackX(c.center), unpackY(c.center)
}

// Max returns the absolute maximum position, clamped to the ADC range.
func (c RightStickCalibration) Max() (x, y uint16) {
	cx, cy := c.Center()
	return absMax(cx, c.max, unpackX), absMax(cy, c.max, unpackY)
}

// Min returns the absolute minimum position, floored at zero.
func (c RightStickCalibration) Min() (x, y uint16) {
	cx, cy := c.Center()
	return absMin(cx, c.min, unpackX), absMin(cy, c.min, unpackY)
}

func (c RightStickCalibration) Size() int { return 9 }

func (c RightStickCalibration) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, c.Size())
	b = append(b, c.center[:]...)
	b = append(b, c.min[:]...)
	b = append(b, c.max[:]...)
	return b, nil
}

func (c *RightStickCalibration) UnmarshalBinary(data []byte) error {
	if len(data) < c.Size() {
		return io.ErrUnexpectedEOF
	}
	copy(c.center[:], data[0:3])
	copy(c.min[:], data[3:6])
	copy(c.max[:], data[6:9])
	return nil
}

func (c RightStickCalibration) String() string {
	return stickCalibString(c)
}

type stickCalib interface {
	Min() (uint16, uint16)
	Center() (uint16, uint16)
	Max() (uint16, uint16)
}

func stickCalibString(c stickCalib) string {
	minX, minY := c.Min()
	cenX, cenY := c.Center()
	maxX, maxY := c.Max()
	return fmt.Sprintf("StickCalibration{min: (%d, %d), center: (%d, %d), max: (%d, %d)}",
		minX, minY, cenX, cenY, maxX, maxY)
}

// SticksCalibration is the factory calibration record for both sticks, 18
// bytes at 0x603D.
type SticksCalibration struct {
	Left  LeftStickCalibration
	Right RightStickCalibration
}

// DefaultSticksCalibration returns the factory constants for both sticks.
func DefaultSticksCalibration() SticksCalibration {
	return SticksCalibration{
		Left:  DefaultLeftStickCalibration(),
		Right: DefaultRightStickCalibration(),
	}
}

func (c SticksCalibration) Range() Range { return RangeFactoryStickCalibration }

func (c SticksCalibration) MarshalBinary() ([]byte, error) {
	left, _ := c.Left.MarshalBinary()
	right, _ := c.Right.MarshalBinary()
	return append(left, right...), nil
}

func (c *SticksCalibration) UnmarshalBinary(data []byte) error {
	if len(data) < 18 {
		return io.ErrUnexpectedEOF
	}
	if err := c.Left.UnmarshalBinary(data[0:9]); err != nil {
		return err
	}
	return c.Right.UnmarshalBinary(data[9:18])
}

func (c SticksCalibration) String() string {
	return fmt.Sprintf("SticksCalibration{left: %v, right: %v}", c.Left, c.Right)
}

// User calibration records gate their payload behind a 2-byte magic
// sentinel: present means a user override exists, absent means fall back to
// factory values.
var (
	userCalibMagic   = [2]byte{0xB2, 0xA1}
	userNoCalibMagic = [2]byte{0xFF, 0xFF}
)

// LeftUserStickCalibration is the user override slot for the left stick.
type LeftUserStickCalibration struct {
	magic [2]byte
	calib LeftStickCalibration
}

// DefaultLeftUserStickCalibration is present with factory values.
func DefaultLeftUserStickCalibration() LeftUserStickCalibration {
	return LeftUserStickCalibration{
		magic: userCalibMagic,
		calib: DefaultLeftStickCalibration(),
	}
}

// Calib returns the override, present only when the sentinel matches.
func (c LeftUserStickCalibration) Calib() (LeftStickCalibration, bool) {
	return c.calib, c.magic == userCalibMagic
}

// SetCalib stores an override and marks it present.
func (c *LeftUserStickCalibration) SetCalib(calib LeftStickCalibration) {
	c.magic = userCalibMagic
	c.calib = calib
}

// SetMagic forces the sentinel without touching the payload.
func (c *LeftUserStickCalibration) SetMagic(present bool) {
	if present {
		c.magic = userCalibMagic
	} else {
		c.magic = userNoCalibMagic
	}
}

func (c LeftUserStickCalibration) Size() int { return 11 }

func (c LeftUserStickCalibration) MarshalBinary() ([]byte, error) {
	inner, _ := c.calib.MarshalBinary()
	return append([]byte{c.magic[0], c.magic[1]}, inner...), nil
}

func (c *LeftUserStickCalibration) UnmarshalBinary(data []byte) error {
	if len(data) < c.Size() {
		return io.ErrUnexpectedEOF
	}
	copy(c.magic[:], data[0:2])
	return c.calib.UnmarshalBinary(data[2:11])
}

func (c LeftUserStickCalibration) String() string {
	if calib, ok := c.Calib(); ok {
		return calib.String()
	}
	return "NoUserStickCalibration"
}

// RightUserStickCalibration is the user override slot for the right stick.
type RightUserStickCalibration struct {
	magic [2]byte
	calib RightStickCalibration
}

// DefaultRightUserStickCalibration is present with factory values.
func DefaultRightUserStickCalibration() RightUserStickCalibration {
	return RightUserStickCalibration{
		magic: userCalibMagic,
		calib: DefaultRightStickCalibration(),
	}
}

// Calib returns the override, present only when the sentinel matches.
func (c RightUserStickCalibration) Calib() (RightStickCalibration, bool) {
	return c.calib, c.magic == userCalibMagic
}

// SetCalib stores an override and marks it present.
func (c *RightUserStickCalibration) SetCalib(calib RightStickCalibration) {
	c.magic = userCalibMagic
	c.calib = calib
}

// SetMagic forces the sentinel without touching the payload.
func (c *RightUserStickCalibration) SetMagic(present bool) {
	if present {
		c.magic = userCalibMagic
	} else {
		c.magic = userNoCalibMagic
	}
}

func (c RightUserStickCalibration) Size() int { return 11 }

func (c RightUserStickCalibration) MarshalBinary() ([]byte, error) {
	inner, _ := c.calib.MarshalBinary()
	return append([]byte{c.magic[0], c.magic[1]}, inner...), nil
}

func (c *RightUserStickCalibration) UnmarshalBinary(data []byte) error {
	if len(data) < c.Size() {
		return io.ErrUnexpectedEOF
	}
	copy(c.magic[:], data[0:2])
	return c.calib.UnmarshalBinary(data[2:11])
}

func (c RightUserStickCalibration) String() string {
	if calib, ok := c.Calib(); ok {
		return calib.String()
	}
	return "NoUserStickCalibration"
}

// UserSticksCalibration is the user calibration record for both sticks, 22
// bytes at 0x8010.
type UserSticksCalibration struct {
	Left  LeftUserStickCalibration
	Right RightUserStickCalibration
}

func (c UserSticksCalibration) Range() Range { return RangeUserStickCalibration }

func (c UserSticksCalibration) MarshalBinary() ([]byte, error) {
	left, _ := c.Left.MarshalBinary()
	right, _ := c.Right.MarshalBinary()
	return append(left, right...), nil
}

func (c *UserSticksCalibration) UnmarshalBinary(data []byte) error {
	if len(data) < 22 {
		return io.ErrUnexpectedEOF
	}
	if err := c.Left.UnmarshalBinary(data[0:11]); err != nil {
		return err
	}
	return c.Right.UnmarshalBinary(data[11:22])
}

func (c UserSticksCalibration) String() string {
	return fmt.Sprintf("UserSticksCalibration{left: %v, right: %v}", c.Left, c.Right)
}
