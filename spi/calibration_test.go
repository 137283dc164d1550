package spi_test

import (
	"testing"

	"github.com/joywire/joywire/spi"
	"github.com/stretchr/testify/assert"
)

func TestDefaultLeftCalibrationPlausible(t *testing.T) {
	calib := spi.DefaultLeftStickCalibration()

	minX, minY := calib.Min()
	cenX, cenY := calib.Center()
	maxX, maxY := calib.Max()

	assert.Less(t, minX, cenX)
	assert.Less(t, cenX, maxX)
	assert.Less(t, minY, cenY)
	assert.Less(t, cenY, maxY)
}

func TestDefaultRightCalibrationPlausible(t *testing.T) {
	calib := spi.DefaultRightStickCalibration()

	minX, minY := calib.Min()
	cenX, cenY := calib.Center()
	maxX, maxY := calib.Max()

	assert.Less(t, minX, cenX)
	assert.Less(t, cenX, maxX)
	assert.Less(t, minY, cenY)
	assert.Less(t, cenY, maxY)
}

func TestSticksCalibrationWireSize(t *testing.T) {
	b, err := spi.DefaultSticksCalibration().MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, b, int(spi.RangeFactoryStickCalibration.Size()))

	var user spi.UserSticksCalibration
	user.Left = spi.DefaultLeftUserStickCalibration()
	user.Right = spi.DefaultRightUserStickCalibration()
	ub, err := user.MarshalBinary()
	assert.NoError(t, err)
	assert.Len(t, ub, int(spi.RangeUserStickCalibration.Size()))
}

func TestStickCalibrationRoundTrip(t *testing.T) {
	want := spi.DefaultSticksCalibration()
	b, err := want.MarshalBinary()
	assert.NoError(t, err)

	var got spi.SticksCalibration
	assert.NoError(t, got.UnmarshalBinary(b))
	assert.Equal(t, want, got)
}

func TestUserCalibrationGating(t *testing.T) {
	// Absent magic: no calibration, regardless of payload bytes.
	var user spi.LeftUserStickCalibration
	user.SetMagic(false)
	_, ok := user.Calib()
	assert.False(t, ok)

	// SetCalib marks the override present as a side effect.
	want := spi.DefaultLeftStickCalibration()
	user.SetCalib(want)
	got, ok := user.Calib()
	assert.True(t, ok)
	assert.Equal(t, want, got)

	// Flipping the sentinel hides the payload again without erasing it.
	user.SetMagic(false)
	_, ok = user.Calib()
	assert.False(t, ok)
}

func TestUserCalibrationMagicBytes(t *testing.T) {
	user := spi.DefaultRightUserStickCalibration()
	b, err := user.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xB2, 0xA1}, b[:2])

	user.SetMagic(false)
	b, err = user.MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF}, b[:2])
}

func TestNewStickCalibrationFromAbsolute(t *testing.T) {
	left := spi.NewLeftStickCalibration(0x2A8, 0x47C, 0x79F, 0x8A0, 0xCAF, 0xD19)
	minX, minY := left.Min()
	cenX, cenY := left.Center()
	maxX, maxY := left.Max()
	assert.Equal(t, [2]uint16{0x2A8, 0x47C}, [2]uint16{minX, minY})
	assert.Equal(t, [2]uint16{0x79F, 0x8A0}, [2]uint16{cenX, cenY})
	assert.Equal(t, [2]uint16{0xCAF, 0xD19}, [2]uint16{maxX, maxY})

	right := spi.NewRightStickCalibration(0x2A8, 0x47C, 0x79F, 0x8A0, 0xCAF, 0xD19)
	minX, minY = right.Min()
	assert.Equal(t, [2]uint16{0x2A8, 0x47C}, [2]uint16{minX, minY})
}

func TestUserCalibrationDefaultPresent(t *testing.T) {
	left := spi.DefaultLeftUserStickCalibration()
	_, ok := left.Calib()
	assert.True(t, ok)

	right := spi.DefaultRightUserStickCalibration()
	_, ok = right.Calib()
	assert.True(t, ok)
}
