package spi

import (
	"fmt"
	"io"

	"github.com/joywire/joywire/wire"
)

// SensorCalibration is the IMU calibration record: accelerometer and
// gyroscope origin and sensitivity, three 16-bit LE axes each, 24 bytes.
type SensorCalibration struct {
	accOrig  [3]wire.I16LE
	accSens  [3]wire.I16LE
	gyroOrig [3]wire.I16LE
	gyroSens [3]wire.I16LE
}

// DefaultSensorCalibration returns the factory constants. The sensitivity
// values encode the +-8G accelerometer and +-2000dps gyroscope defaults.
func DefaultSensorCalibration() SensorCalibration {
	return SensorCalibration{
		accOrig:  packVector([3]int16{-2 * 1024, -1 * 1024, 0}),
		accSens:  packVector([3]int16{4000, 4000, 4000}),
		gyroOrig: packVector([3]int16{14 * 128, 253 * 128, 224 * 128}),
		gyroSens: packVector([3]int16{5173, 5173, 5173}),
	}
}

// ResetSensorCalibration returns the all-zero record written when clearing a
// user override.
func ResetSensorCalibration() SensorCalibration {
	return SensorCalibration{}
}

func packVector(v [3]int16) [3]wire.I16LE {
	return [3]wire.I16LE{wire.PutI16(v[0]), wire.PutI16(v[1]), wire.PutI16(v[2])}
}

func unpackVector(v [3]wire.I16LE) [3]int16 {
	return [3]int16{v[0].Int16(), v[1].Int16(), v[2].Int16()}
}

// AccOrigin returns the accelerometer zero offset per axis.
func (c SensorCalibration) AccOrigin() [3]int16 { return unpackVector(c.accOrig) }

// AccSensitivity returns the accelerometer sensitivity per axis.
func (c SensorCalibration) AccSensitivity() [3]int16 { return unpackVector(c.accSens) }

// GyroOrigin returns the gyroscope zero offset per axis.
func (c SensorCalibration) GyroOrigin() [3]int16 { return unpackVector(c.gyroOrig) }

// GyroSensitivity returns the gyroscope sensitivity per axis.
func (c SensorCalibration) GyroSensitivity() [3]int16 { return unpackVector(c.gyroSens) }

// SetAccOrigin overwrites the accelerometer zero offset.
func (c *SensorCalibration) SetAccOrigin(v [3]int16) { c.accOrig = packVector(v) }

// SetAccSensitivity overwrites the accelerometer sensitivity.
func (c *SensorCalibration) SetAccSensitivity(v [3]int16) { c.accSens = packVector(v) }

// SetGyroOrigin overwrites the gyroscope zero offset.
func (c *SensorCalibration) SetGyroOrigin(v [3]int16) { c.gyroOrig = packVector(v) }

// SetGyroSensitivity overwrites the gyroscope sensitivity.
func (c *SensorCalibration) SetGyroSensitivity(v [3]int16) { c.gyroSens = packVector(v) }

func (c SensorCalibration) Range() Range { return RangeFactorySensorCalibration }

func (c SensorCalibration) Size() int { return 24 }

func (c SensorCalibration) MarshalBinary() ([]byte, error) {
	b := make([]byte, 0, c.Size())
	for _, group := range [][3]wire.I16LE{c.accOrig, c.accSens, c.gyroOrig, c.gyroSens} {
		for _, v := range group {
			b = append(b, v[:]...)
		}
	}
	return b, nil
}

func (c *SensorCalibration) UnmarshalBinary(data []byte) error {
	if len(data) < c.Size() {
		return io.ErrUnexpectedEOF
	}
	groups := [...]*[3]wire.I16LE{&c.accOrig, &c.accSens, &c.gyroOrig, &c.gyroSens}
	o := 0
	for _, group := range groups {
		for i := range group {
			copy(group[i][:], data[o:o+2])
			o += 2
		}
	}
	return nil
}

func (c SensorCalibration) String() string {
	return fmt.Sprintf("SensorCalibration{acc_orig: %v, acc_sens: %v, gyro_orig: %v, gyro_sens: %v}",
		c.AccOrigin(), c.AccSensitivity(), c.GyroOrigin(), c.GyroSensitivity())
}

// UserSensorCalibration is the user override slot for the IMU calibration,
// 26 bytes at 0x8026, gated by the same magic sentinel as the sticks.
type UserSensorCalibration struct {
	magic [2]byte
	calib SensorCalibration
}

// NewUserSensorCalibration wraps a calibration as a present override.
func NewUserSensorCalibration(calib SensorCalibration) UserSensorCalibration {
	return UserSensorCalibration{magic: userCalibMagic, calib: calib}
}

// DefaultUserSensorCalibration is present with factory values.
func DefaultUserSensorCalibration() UserSensorCalibration {
	return NewUserSensorCalibration(DefaultSensorCalibration())
}

// ResetUserSensorCalibration returns the record written to clear the
// override: sentinel absent, payload zeroed. The zero payload is never read
// while the sentinel is absent, so zero is a valid cleared state.
func ResetUserSensorCalibration() UserSensorCalibration {
	return UserSensorCalibration{magic: userNoCalibMagic, calib: ResetSensorCalibration()}
}

// Calib returns the override, present only when the sentinel matches.
func (c UserSensorCalibration) Calib() (SensorCalibration, bool) {
	return c.calib, c.magic == userCalibMagic
}

// SetCalib stores an override and marks it present.
func (c *UserSensorCalibration) SetCalib(calib SensorCalibration) {
	c.magic = userCalibMagic
	c.calib = calib
}

func (c UserSensorCalibration) Range() Range { return RangeUserSensorCalibration }

func (c UserSensorCalibration) Size() int { return 26 }

func (c UserSensorCalibration) MarshalBinary() ([]byte, error) {
	inner, _ := c.calib.MarshalBinary()
	return append([]byte{c.magic[0], c.magic[1]}, inner...), nil
}

func (c *UserSensorCalibration) UnmarshalBinary(data []byte) error {
	if len(data) < c.Size() {
		return io.ErrUnexpectedEOF
	}
	copy(c.magic[:], data[0:2])
	return c.calib.UnmarshalBinary(data[2:26])
}

func (c UserSensorCalibration) String() string {
	if calib, ok := c.Calib(); ok {
		return calib.String()
	}
	return "NoUserSensorCalibration"
}
