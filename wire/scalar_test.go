package wire_test

import (
	"testing"

	"github.com/joywire/joywire/wire"
	"github.com/stretchr/testify/assert"
)

func TestU16LEByteOrder(t *testing.T) {
	b := wire.PutU16(0x1234)
	assert.Equal(t, wire.U16LE{0x34, 0x12}, b)
	assert.Equal(t, uint16(0x1234), b.Uint16())
}

func TestU32LEByteOrder(t *testing.T) {
	b := wire.PutU32(0xDEADBEEF)
	assert.Equal(t, wire.U32LE{0xEF, 0xBE, 0xAD, 0xDE}, b)
	assert.Equal(t, uint32(0xDEADBEEF), b.Uint32())
}

func TestI16LERoundTrip(t *testing.T) {
	cases := []int16{0, 1, -1, 0x7FFF, -0x8000, -2048, 5173}
	for _, v := range cases {
		assert.Equal(t, v, wire.PutI16(v).Int16(), "value %d", v)
	}
	assert.Equal(t, wire.I16LE{0xFF, 0xFF}, wire.PutI16(-1))
}

func TestU16LERoundTripAllValues(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		if got := wire.PutU16(uint16(v)).Uint16(); got != uint16(v) {
			t.Fatalf("round trip failed for 0x%04x: got 0x%04x", v, got)
		}
	}
}

func TestScalarDecodeEncodeIdentity(t *testing.T) {
	// decode(encode(b)) == b for arbitrary byte patterns.
	raw := wire.U16LE{0xAB, 0xCD}
	assert.Equal(t, raw, wire.PutU16(raw.Uint16()))

	raw32 := wire.U32LE{0x01, 0x02, 0x03, 0x04}
	assert.Equal(t, raw32, wire.PutU32(raw32.Uint32()))
}

func TestScalarString(t *testing.T) {
	assert.Equal(t, "0x1234", wire.PutU16(0x1234).String())
	assert.Equal(t, "0xdeadbeef", wire.PutU32(0xDEADBEEF).String())
}
