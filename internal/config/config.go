// Package config defines the CLI structure and configuration for joywire.
package config

import (
	"github.com/joywire/joywire/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"JOYWIRE_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"JOYWIRE_LOG_FILE"`
}

// Calib groups the calibration profile commands.
type Calib struct {
	Export cmd.CalibExport `cmd:"" help:"Extract the user calibration from a flash dump into a TOML profile"`
	Import cmd.CalibImport `cmd:"" help:"Turn a TOML profile into SPI write request frames"`
}

// SPI groups the flash inspection commands.
type SPI struct {
	Dump cmd.SPIDump `cmd:"" help:"Decode the known flash regions of a raw dump as YAML"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Decode cmd.Decode `cmd:"" help:"Decode a captured SPI subcommand frame from hex"`
	SPI    SPI        `cmd:"" help:"Inspect SPI flash dumps"`
	Calib  Calib      `cmd:"" help:"Export or import user calibration profiles"`
}
