package spi_test

import (
	"testing"

	"github.com/joywire/joywire/spi"
	"github.com/stretchr/testify/assert"
)

func TestNewRangeBounds(t *testing.T) {
	r := spi.NewRange(0x6000, spi.MaxTransfer)
	assert.Equal(t, uint32(0x6000), r.Offset())
	assert.Equal(t, uint8(spi.MaxTransfer), r.Size())

	assert.Panics(t, func() { spi.NewRange(0x6000, spi.MaxTransfer+1) })
}

func TestRangeEquality(t *testing.T) {
	assert.Equal(t, spi.NewRange(0x603D, 0x12), spi.RangeFactoryStickCalibration)
	assert.NotEqual(t, spi.NewRange(0x603D, 0x13), spi.RangeFactoryStickCalibration)
	assert.NotEqual(t, spi.NewRange(0x603E, 0x12), spi.RangeFactoryStickCalibration)
}

func TestAddressMap(t *testing.T) {
	type testCase struct {
		name   string
		rng    spi.Range
		offset uint32
		size   uint8
	}

	cases := []testCase{
		{"serial", spi.RangeSerialNumber, 0x6000, 16},
		{"color usage", spi.RangeColorUsage, 0x601B, 1},
		{"factory sensors", spi.RangeFactorySensorCalibration, 0x6020, 0x18},
		{"factory sticks", spi.RangeFactoryStickCalibration, 0x603D, 0x12},
		{"color", spi.RangeControllerColor, 0x6050, 12},
		{"stick parameters 1", spi.RangeStickParameters1, 0x6080, 24},
		{"stick parameters 2", spi.RangeStickParameters2, 0x6098, 18},
		{"user sticks", spi.RangeUserStickCalibration, 0x8010, 0x16},
		{"user sensors", spi.RangeUserSensorCalibration, 0x8026, 0x1A},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.offset, tc.rng.Offset())
			assert.Equal(t, tc.size, tc.rng.Size())
		})
	}
}

func TestFromImage(t *testing.T) {
	img := make([]byte, 0x9000)
	want := spi.ControllerColor{Body: spi.Color{R: 0x32, G: 0x32, B: 0x32}}
	b, err := want.MarshalBinary()
	assert.NoError(t, err)
	copy(img[spi.RangeControllerColor.Offset():], b)

	got, err := spi.FromImage[spi.ControllerColor](img)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = spi.FromImage[spi.UserSensorCalibration](img[:0x8000])
	assert.Error(t, err)
}

func TestRecordSizesMatchRanges(t *testing.T) {
	records := []spi.Data{
		spi.DefaultSticksCalibration(),
		spi.UserSticksCalibration{},
		spi.DefaultSensorCalibration(),
		spi.DefaultUserSensorCalibration(),
		spi.ControllerColor{},
		spi.NewColorUsageFlag(spi.ColorUsageNone),
		spi.SerialNumber{},
		spi.StickParameters1{},
		spi.StickParameters2{},
	}
	for _, rec := range records {
		b, err := rec.MarshalBinary()
		assert.NoError(t, err, "%T", rec)
		assert.Len(t, b, int(rec.Range().Size()), "%T", rec)
	}
}
