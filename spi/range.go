// Package spi implements the codec for the controller's internal flash
// ("SPI") transactions: read/write request and result frames, the fixed
// address map, and the calibration and color records stored there.
package spi

import (
	"encoding"
	"fmt"
)

// MaxTransfer is the largest payload a single SPI transaction can carry.
// Hardware limit, not a protocol choice.
const MaxTransfer = 0x1D

// Range addresses one region of the controller's flash: a 32-bit offset and
// an 8-bit size. Two ranges are equal iff both fields match exactly.
type Range struct {
	offset uint32
	size   uint8
}

// NewRange builds an address range. Size beyond MaxTransfer is a call-site
// contract violation and panics: a request for it could never be serviced by
// the hardware.
func NewRange(offset uint32, size uint8) Range {
	if size > MaxTransfer {
		panic(fmt.Sprintf("spi: range size 0x%02x exceeds max transfer 0x%02x", size, MaxTransfer))
	}
	return Range{offset: offset, size: size}
}

// Offset returns the flash offset.
func (r Range) Offset() uint32 { return r.offset }

// Size returns the transaction size in bytes.
func (r Range) Size() uint8 { return r.size }

func (r Range) String() string {
	return fmt.Sprintf("0x%04x+0x%02x", r.offset, r.size)
}

// The flash address map. Offsets and sizes are fixed by the firmware; the
// 0x6080/0x6098 blocks are reverse-engineered observations with undocumented
// semantics and stay opaque.
var (
	RangeSerialNumber             = Range{0x6000, 16}
	RangeColorUsage               = Range{0x601B, 1}
	RangeFactorySensorCalibration = Range{0x6020, 0x18}
	RangeFactoryStickCalibration  = Range{0x603D, 0x12}
	RangeControllerColor          = Range{0x6050, 12}
	RangeStickParameters1         = Range{0x6080, 24}
	RangeStickParameters2         = Range{0x6098, 18}
	RangeUserStickCalibration     = Range{0x8010, 0x16}
	RangeUserSensorCalibration    = Range{0x8026, 0x1A}
)

// Data is a record stored at a fixed location in flash. Conversions between
// a Data value and read/write transactions are constrained to its range.
type Data interface {
	encoding.BinaryMarshaler
	Range() Range
}

// WrongRangeError reports a read result interpreted as a record living at a
// different flash location: a request/response mix-up or an unexpected
// device reply, never a crash.
type WrongRangeError struct {
	Expected Range
	Got      Range
}

func (e *WrongRangeError) Error() string {
	return fmt.Sprintf("spi: wrong range: expected %s, got %s", e.Expected, e.Got)
}

// dataPtr constrains P to a pointer to a flash record that can decode itself.
type dataPtr[T any] interface {
	*T
	Data
	encoding.BinaryUnmarshaler
}

// DecodeData extracts a typed flash record from a read result, after
// verifying the result covers exactly the record's fixed range.
func DecodeData[T any, P dataPtr[T]](res ReadResult) (T, error) {
	var v T
	p := P(&v)
	if res.Range() != p.Range() {
		return v, &WrongRangeError{Expected: p.Range(), Got: res.Range()}
	}
	if err := p.UnmarshalBinary(res.Data()); err != nil {
		return v, err
	}
	return v, nil
}

// FromImage decodes a typed flash record out of a full flash image dump,
// using the record's fixed range. The image must cover the range.
func FromImage[T any, P dataPtr[T]](img []byte) (T, error) {
	var v T
	p := P(&v)
	rng := p.Range()
	end := int(rng.Offset()) + int(rng.Size())
	if end > len(img) {
		return v, fmt.Errorf("spi: image of %d bytes does not cover %s", len(img), rng)
	}
	if err := p.UnmarshalBinary(img[rng.Offset():end]); err != nil {
		return v, err
	}
	return v, nil
}

// mustMarshal encodes a fixed-size record. The record codecs in this package
// cannot fail to marshal; a failure here is a bug in the record itself.
func mustMarshal(d Data) []byte {
	b, err := d.MarshalBinary()
	if err != nil {
		panic(fmt.Sprintf("spi: %T failed to marshal: %v", d, err))
	}
	if len(b) != int(d.Range().Size()) {
		panic(fmt.Sprintf("spi: %T marshaled to %d bytes, range says %d", d, len(b), d.Range().Size()))
	}
	return b
}

var (
	_ Data = SticksCalibration{}
	_ Data = UserSticksCalibration{}
	_ Data = SensorCalibration{}
	_ Data = UserSensorCalibration{}
	_ Data = ControllerColor{}
	_ Data = ColorUsageFlag{}
	_ Data = SerialNumber{}
	_ Data = StickParameters1{}
	_ Data = StickParameters2{}
)

// ResultFor builds the read result a device would return for the record.
func ResultFor(d Data) ReadResult {
	return NewReadResult(d.Range(), mustMarshal(d))
}

// WriteRequestFor builds a write request storing the record at its fixed
// range.
func WriteRequestFor(d Data) WriteRequest {
	return NewWriteRequest(d.Range(), mustMarshal(d))
}
