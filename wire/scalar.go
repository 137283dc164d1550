// Package wire implements the byte-exact framing machinery shared by the
// controller's report and flash codecs: fixed-byte-order scalars, the
// lossless one-byte tag wrapper, and the tagged-variant frame layout.
package wire

import (
	"encoding/binary"
	"fmt"
)

// U16LE is a uint16 stored as two little-endian bytes, independent of the
// host byte order.
type U16LE [2]byte

// PutU16 encodes v as little-endian bytes.
func PutU16(v uint16) U16LE {
	var b U16LE
	binary.LittleEndian.PutUint16(b[:], v)
	return b
}

// Uint16 decodes the stored value.
func (b U16LE) Uint16() uint16 {
	return binary.LittleEndian.Uint16(b[:])
}

func (b U16LE) String() string {
	return fmt.Sprintf("0x%x", b.Uint16())
}

// I16LE is an int16 stored as two little-endian bytes.
type I16LE [2]byte

// PutI16 encodes v as little-endian bytes.
func PutI16(v int16) I16LE {
	var b I16LE
	binary.LittleEndian.PutUint16(b[:], uint16(v))
	return b
}

// Int16 decodes the stored value.
func (b I16LE) Int16() int16 {
	return int16(binary.LittleEndian.Uint16(b[:]))
}

func (b I16LE) String() string {
	return fmt.Sprintf("0x%x", uint16(b.Int16()))
}

// U32LE is a uint32 stored as four little-endian bytes.
type U32LE [4]byte

// PutU32 encodes v as little-endian bytes.
func PutU32(v uint32) U32LE {
	var b U32LE
	binary.LittleEndian.PutUint32(b[:], v)
	return b
}

// Uint32 decodes the stored value.
func (b U32LE) Uint32() uint32 {
	return binary.LittleEndian.Uint32(b[:])
}

func (b U32LE) String() string {
	return fmt.Sprintf("0x%x", b.Uint32())
}
