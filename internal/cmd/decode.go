// Package cmd implements the joywire CLI commands. Every command works on
// captured bytes or dump files; talking to a device is the transport's job,
// not this tool's.
package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joywire/joywire/protocol"
	"github.com/joywire/joywire/spi"
	"github.com/joywire/joywire/wire"
)

// Decode pretty-prints one captured SPI subcommand frame.
type Decode struct {
	Kind string `help:"Frame direction: request (host to device) or reply (device to host)" enum:"request,reply" default:"reply" env:"JOYWIRE_DECODE_KIND"`
	Hex  string `arg:"" help:"Frame bytes as hex (spaces allowed)"`
}

func (d *Decode) Run(logger *slog.Logger) error {
	raw, err := hex.DecodeString(strings.NewReplacer(" ", "", "\n", "").Replace(d.Hex))
	if err != nil {
		return fmt.Errorf("bad hex input: %w", err)
	}

	var frame *wire.Frame[protocol.SubcommandID]
	switch d.Kind {
	case "request":
		frame, err = spi.RequestDef.Parse(raw)
	default:
		frame, err = spi.ParseReply(raw)
	}
	if err != nil {
		return err
	}

	if _, decodeErr := frame.Decode(); decodeErr != nil {
		var unknown *wire.UnknownTagError[protocol.SubcommandID]
		if errors.As(decodeErr, &unknown) {
			logger.Warn("tag not recognized, showing raw payload", "tag", frame.ID().String())
		}
	}
	fmt.Println(frame)
	return nil
}
