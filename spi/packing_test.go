package spi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackCoordsLayout(t *testing.T) {
	// byte0 = low 8 of x, byte1 = high 4 of x | low 4 of y << 4,
	// byte2 = high 8 of y.
	got := packCoords(0xABC, 0x123)
	assert.Equal(t, [3]byte{0xBC, 0x3A, 0x12}, got)
}

func TestPackUnpackExact(t *testing.T) {
	for x := uint16(0); x <= 0xFFF; x += 7 {
		for y := uint16(0); y <= 0xFFF; y += 13 {
			raw := packCoords(x, y)
			assert.Equal(t, x, unpackX(raw), "x for (%#x, %#x)", x, y)
			assert.Equal(t, y, unpackY(raw), "y for (%#x, %#x)", x, y)
		}
	}
	// Edges explicitly.
	for _, v := range [][2]uint16{{0, 0}, {0xFFF, 0xFFF}, {0xFFF, 0}, {0, 0xFFF}} {
		raw := packCoords(v[0], v[1])
		assert.Equal(t, v[0], unpackX(raw))
		assert.Equal(t, v[1], unpackY(raw))
	}
}

func TestMinSaturatesAtZero(t *testing.T) {
	// A min offset larger than the center must floor at 0, not wrap.
	c := LeftStickCalibration{
		center: packCoords(0x100, 0x100),
		min:    packCoords(0x200, 0x200),
		max:    packCoords(0x10, 0x10),
	}
	x, y := c.Min()
	assert.Equal(t, uint16(0), x)
	assert.Equal(t, uint16(0), y)
}

func TestMaxClampsToADCRange(t *testing.T) {
	// A max offset pushing past 0xFFF must clamp, not overflow.
	c := RightStickCalibration{
		center: packCoords(0xF00, 0xF00),
		min:    packCoords(0x10, 0x10),
		max:    packCoords(0x800, 0x800),
	}
	x, y := c.Max()
	assert.Equal(t, uint16(0xFFF), x)
	assert.Equal(t, uint16(0xFFF), y)
}
