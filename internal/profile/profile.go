// Package profile converts between the flash calibration records and the
// TOML profile files the CLI reads and writes.
package profile

import (
	"github.com/joywire/joywire/spi"
)

// Stick is one stick's calibration as absolute 12-bit positions.
type Stick struct {
	MinX    uint16 `toml:"min_x"`
	MinY    uint16 `toml:"min_y"`
	CenterX uint16 `toml:"center_x"`
	CenterY uint16 `toml:"center_y"`
	MaxX    uint16 `toml:"max_x"`
	MaxY    uint16 `toml:"max_y"`
}

// Sensor is the IMU calibration vectors, one triple per axis group.
type Sensor struct {
	AccOrigin       [3]int16 `toml:"acc_origin"`
	AccSensitivity  [3]int16 `toml:"acc_sensitivity"`
	GyroOrigin      [3]int16 `toml:"gyro_origin"`
	GyroSensitivity [3]int16 `toml:"gyro_sensitivity"`
}

// Profile is a user calibration profile. Nil sections mean "no override".
type Profile struct {
	LeftStick  *Stick  `toml:"left_stick,omitempty"`
	RightStick *Stick  `toml:"right_stick,omitempty"`
	Sensor     *Sensor `toml:"sensor,omitempty"`
}

func stickFromCalib(c interface {
	Min() (uint16, uint16)
	Center() (uint16, uint16)
	Max() (uint16, uint16)
}) *Stick {
	s := &Stick{}
	s.MinX, s.MinY = c.Min()
	s.CenterX, s.CenterY = c.Center()
	s.MaxX, s.MaxY = c.Max()
	return s
}

// FromFlash extracts the present user overrides into a profile.
func FromFlash(sticks spi.UserSticksCalibration, sensors spi.UserSensorCalibration) Profile {
	var p Profile
	if calib, ok := sticks.Left.Calib(); ok {
		p.LeftStick = stickFromCalib(calib)
	}
	if calib, ok := sticks.Right.Calib(); ok {
		p.RightStick = stickFromCalib(calib)
	}
	if calib, ok := sensors.Calib(); ok {
		p.Sensor = &Sensor{
			AccOrigin:       calib.AccOrigin(),
			AccSensitivity:  calib.AccSensitivity(),
			GyroOrigin:      calib.GyroOrigin(),
			GyroSensitivity: calib.GyroSensitivity(),
		}
	}
	return p
}

// WriteRequests builds the SPI write requests applying the profile. Stick
// sections not present in the profile are written with the sentinel absent,
// telling the firmware to fall back to factory calibration.
func (p Profile) WriteRequests() []spi.WriteRequest {
	var reqs []spi.WriteRequest

	if p.LeftStick != nil || p.RightStick != nil {
		var sticks spi.UserSticksCalibration
		sticks.Left.SetMagic(false)
		sticks.Right.SetMagic(false)
		if s := p.LeftStick; s != nil {
			sticks.Left.SetCalib(spi.NewLeftStickCalibration(s.MinX, s.MinY, s.CenterX, s.CenterY, s.MaxX, s.MaxY))
		}
		if s := p.RightStick; s != nil {
			sticks.Right.SetCalib(spi.NewRightStickCalibration(s.MinX, s.MinY, s.CenterX, s.CenterY, s.MaxX, s.MaxY))
		}
		reqs = append(reqs, spi.WriteRequestFor(sticks))
	}

	if s := p.Sensor; s != nil {
		var calib spi.SensorCalibration
		calib.SetAccOrigin(s.AccOrigin)
		calib.SetAccSensitivity(s.AccSensitivity)
		calib.SetGyroOrigin(s.GyroOrigin)
		calib.SetGyroSensitivity(s.GyroSensitivity)
		reqs = append(reqs, spi.WriteRequestFor(spi.NewUserSensorCalibration(calib)))
	}

	return reqs
}
