package cmd

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	toml "github.com/pelletier/go-toml"

	"github.com/joywire/joywire/internal/profile"
	"github.com/joywire/joywire/spi"
)

// CalibExport reads the user calibration out of a flash image into a TOML
// profile.
type CalibExport struct {
	File string `arg:"" type:"existingfile" help:"Raw SPI flash dump"`
	Out  string `help:"Profile output path (default: stdout)" short:"o"`
}

func (c *CalibExport) Run(logger *slog.Logger) error {
	img, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	sticks, err := spi.FromImage[spi.UserSticksCalibration](img)
	if err != nil {
		return err
	}
	sensors, err := spi.FromImage[spi.UserSensorCalibration](img)
	if err != nil {
		return err
	}

	p := profile.FromFlash(sticks, sensors)
	out, err := toml.Marshal(p)
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Print(string(out))
		return nil
	}
	if err := os.WriteFile(c.Out, out, 0o644); err != nil {
		return err
	}
	logger.Info("profile written", "file", c.Out)
	return nil
}

// CalibImport turns a TOML profile into the SPI write request frames that
// would store it, printed as hex for a transport to send.
type CalibImport struct {
	Profile string `arg:"" type:"existingfile" help:"TOML calibration profile"`
}

func (c *CalibImport) Run(logger *slog.Logger) error {
	raw, err := os.ReadFile(c.Profile)
	if err != nil {
		return err
	}

	var p profile.Profile
	if err := toml.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("bad profile %s: %w", c.Profile, err)
	}

	reqs := p.WriteRequests()
	if len(reqs) == 0 {
		logger.Warn("profile contains no overrides, nothing to write")
		return nil
	}

	for _, req := range reqs {
		logger.Debug("building write frame", "range", req.Range().String())
		frame := spi.WriteFrame(req)
		fmt.Println(hex.EncodeToString(frame.Bytes()))
	}
	return nil
}
