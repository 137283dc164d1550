package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/joywire/joywire/spi"
)

// SPIDump decodes the known address map out of a raw flash image and prints
// a YAML report.
type SPIDump struct {
	File string `arg:"" type:"existingfile" help:"Raw SPI flash dump"`
}

type stickReport struct {
	Min    [2]uint16 `yaml:"min,flow"`
	Center [2]uint16 `yaml:"center,flow"`
	Max    [2]uint16 `yaml:"max,flow"`
}

type sensorReport struct {
	AccOrigin       [3]int16 `yaml:"acc_origin,flow"`
	AccSensitivity  [3]int16 `yaml:"acc_sensitivity,flow"`
	GyroOrigin      [3]int16 `yaml:"gyro_origin,flow"`
	GyroSensitivity [3]int16 `yaml:"gyro_sensitivity,flow"`
}

type flashReport struct {
	Serial     string `yaml:"serial"`
	ColorUsage string `yaml:"color_usage"`
	Colors     struct {
		Body      string `yaml:"body"`
		Buttons   string `yaml:"buttons"`
		LeftGrip  string `yaml:"left_grip"`
		RightGrip string `yaml:"right_grip"`
	} `yaml:"colors"`
	FactorySticks struct {
		Left  stickReport `yaml:"left"`
		Right stickReport `yaml:"right"`
	} `yaml:"factory_sticks"`
	UserSticks struct {
		Left  *stickReport `yaml:"left"`
		Right *stickReport `yaml:"right"`
	} `yaml:"user_sticks"`
	FactorySensor sensorReport  `yaml:"factory_sensor"`
	UserSensor    *sensorReport `yaml:"user_sensor"`
}

func stickReportOf(c interface {
	Min() (uint16, uint16)
	Center() (uint16, uint16)
	Max() (uint16, uint16)
}) stickReport {
	var r stickReport
	r.Min[0], r.Min[1] = c.Min()
	r.Center[0], r.Center[1] = c.Center()
	r.Max[0], r.Max[1] = c.Max()
	return r
}

func sensorReportOf(c spi.SensorCalibration) sensorReport {
	return sensorReport{
		AccOrigin:       c.AccOrigin(),
		AccSensitivity:  c.AccSensitivity(),
		GyroOrigin:      c.GyroOrigin(),
		GyroSensitivity: c.GyroSensitivity(),
	}
}

func (c *SPIDump) Run(logger *slog.Logger) error {
	img, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}
	logger.Debug("read flash image", "file", c.File, "size", len(img))

	var report flashReport

	serial, err := spi.FromImage[spi.SerialNumber](img)
	if err != nil {
		return err
	}
	report.Serial = serial.String()

	usage, err := spi.FromImage[spi.ColorUsageFlag](img)
	if err != nil {
		return err
	}
	report.ColorUsage = usage.String()

	colors, err := spi.FromImage[spi.ControllerColor](img)
	if err != nil {
		return err
	}
	report.Colors.Body = colors.Body.String()
	report.Colors.Buttons = colors.Buttons.String()
	report.Colors.LeftGrip = colors.LeftGrip.String()
	report.Colors.RightGrip = colors.RightGrip.String()

	factorySticks, err := spi.FromImage[spi.SticksCalibration](img)
	if err != nil {
		return err
	}
	report.FactorySticks.Left = stickReportOf(factorySticks.Left)
	report.FactorySticks.Right = stickReportOf(factorySticks.Right)

	factorySensor, err := spi.FromImage[spi.SensorCalibration](img)
	if err != nil {
		return err
	}
	report.FactorySensor = sensorReportOf(factorySensor)

	userSticks, err := spi.FromImage[spi.UserSticksCalibration](img)
	if err != nil {
		return err
	}
	if calib, ok := userSticks.Left.Calib(); ok {
		r := stickReportOf(calib)
		report.UserSticks.Left = &r
	}
	if calib, ok := userSticks.Right.Calib(); ok {
		r := stickReportOf(calib)
		report.UserSticks.Right = &r
	}

	userSensor, err := spi.FromImage[spi.UserSensorCalibration](img)
	if err != nil {
		return err
	}
	if calib, ok := userSensor.Calib(); ok {
		r := sensorReportOf(calib)
		report.UserSensor = &r
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
