package profile_test

import (
	"testing"

	toml "github.com/pelletier/go-toml"
	"github.com/stretchr/testify/assert"

	"github.com/joywire/joywire/internal/profile"
	"github.com/joywire/joywire/spi"
)

func TestFromFlashSkipsAbsentOverrides(t *testing.T) {
	var sticks spi.UserSticksCalibration
	sticks.Left.SetMagic(false)
	sticks.Right.SetCalib(spi.DefaultRightStickCalibration())

	p := profile.FromFlash(sticks, spi.ResetUserSensorCalibration())
	assert.Nil(t, p.LeftStick)
	assert.Nil(t, p.Sensor)
	if assert.NotNil(t, p.RightStick) {
		cenX, cenY := spi.DefaultRightStickCalibration().Center()
		assert.Equal(t, cenX, p.RightStick.CenterX)
		assert.Equal(t, cenY, p.RightStick.CenterY)
	}
}

func TestWriteRequestsTargetFixedRanges(t *testing.T) {
	p := profile.Profile{
		LeftStick: &profile.Stick{
			MinX: 0x2A8, MinY: 0x47C,
			CenterX: 0x79F, CenterY: 0x8A0,
			MaxX: 0xCAF, MaxY: 0xD19,
		},
		Sensor: &profile.Sensor{
			AccSensitivity:  [3]int16{4000, 4000, 4000},
			GyroSensitivity: [3]int16{5173, 5173, 5173},
		},
	}

	reqs := p.WriteRequests()
	if assert.Len(t, reqs, 2) {
		assert.Equal(t, spi.RangeUserStickCalibration, reqs[0].Range())
		assert.Equal(t, spi.RangeUserSensorCalibration, reqs[1].Range())
	}

	// The right stick got no override: its slot must carry the absent magic
	// so the firmware falls back to factory values.
	var sticks spi.UserSticksCalibration
	assert.NoError(t, sticks.UnmarshalBinary(reqs[0].Data()))
	_, ok := sticks.Right.Calib()
	assert.False(t, ok)
	left, ok := sticks.Left.Calib()
	assert.True(t, ok)
	cenX, cenY := left.Center()
	assert.Equal(t, uint16(0x79F), cenX)
	assert.Equal(t, uint16(0x8A0), cenY)
}

func TestProfileTOMLRoundTrip(t *testing.T) {
	want := profile.Profile{
		RightStick: &profile.Stick{
			MinX: 100, MinY: 200, CenterX: 2000, CenterY: 2100, MaxX: 3900, MaxY: 4000,
		},
		Sensor: &profile.Sensor{
			AccOrigin:       [3]int16{-2048, -1024, 0},
			AccSensitivity:  [3]int16{4000, 4000, 4000},
			GyroOrigin:      [3]int16{1792, 32384, 28672},
			GyroSensitivity: [3]int16{5173, 5173, 5173},
		},
	}

	raw, err := toml.Marshal(want)
	assert.NoError(t, err)

	var got profile.Profile
	assert.NoError(t, toml.Unmarshal(raw, &got))
	assert.Equal(t, want, got)
	assert.Nil(t, got.LeftStick)
}
