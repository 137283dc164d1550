package spi

import (
	"fmt"
	"io"

	"github.com/joywire/joywire/protocol"
	"github.com/joywire/joywire/wire"
)

// ReadRequest asks the controller for one flash region.
//
// Wire format (5 bytes): offset u32 LE, size u8.
type ReadRequest struct {
	offset wire.U32LE
	size   uint8
}

// NewReadRequest builds a read command for the given range.
func NewReadRequest(rng Range) ReadRequest {
	return ReadRequest{offset: wire.PutU32(rng.Offset()), size: rng.Size()}
}

// Range recovers the requested range.
func (r ReadRequest) Range() Range {
	return Range{offset: r.offset.Uint32(), size: r.size}
}

func (r ReadRequest) Size() int { return 5 }

func (r ReadRequest) MarshalBinary() ([]byte, error) {
	b := make([]byte, r.Size())
	copy(b[0:4], r.offset[:])
	b[4] = r.size
	return b, nil
}

func (r *ReadRequest) UnmarshalBinary(data []byte) error {
	if len(data) < r.Size() {
		return io.ErrUnexpectedEOF
	}
	copy(r.offset[:], data[0:4])
	r.size = data[4]
	return nil
}

func (r ReadRequest) String() string {
	return fmt.Sprintf("ReadRequest{%s}", r.Range())
}

// ReadResult is the controller's reply to a ReadRequest.
//
// Wire format (34 bytes): offset u32 LE, size u8, data buffer of MaxTransfer
// bytes, zero beyond size.
type ReadResult struct {
	offset wire.U32LE
	size   uint8
	data   [MaxTransfer]byte
}

// NewReadResult builds a read result carrying data for the given range. The
// payload length must equal the range size; anything else is a call-site
// contract violation.
func NewReadResult(rng Range, data []byte) ReadResult {
	if len(data) != int(rng.Size()) {
		panic(fmt.Sprintf("spi: read result payload %d bytes, range says %d", len(data), rng.Size()))
	}
	res := ReadResult{offset: wire.PutU32(rng.Offset()), size: rng.Size()}
	copy(res.data[:], data)
	return res
}

// Range recovers the range this result covers.
func (r ReadResult) Range() Range {
	return Range{offset: r.offset.Uint32(), size: r.size}
}

// Data returns a copy of the valid portion of the payload.
func (r ReadResult) Data() []byte {
	n := int(r.size)
	if n > MaxTransfer {
		n = MaxTransfer
	}
	out := make([]byte, n)
	copy(out, r.data[:n])
	return out
}

// Raw returns the full fixed-size payload buffer.
func (r ReadResult) Raw() [MaxTransfer]byte { return r.data }

func (r ReadResult) Size() int { return 5 + MaxTransfer }

func (r ReadResult) MarshalBinary() ([]byte, error) {
	b := make([]byte, r.Size())
	copy(b[0:4], r.offset[:])
	b[4] = r.size
	copy(b[5:], r.data[:])
	return b, nil
}

func (r *ReadResult) UnmarshalBinary(data []byte) error {
	if len(data) < r.Size() {
		return io.ErrUnexpectedEOF
	}
	copy(r.offset[:], data[0:4])
	r.size = data[4]
	copy(r.data[:], data[5:5+MaxTransfer])
	return nil
}

func (r ReadResult) String() string {
	return fmt.Sprintf("ReadResult{%s}", regionString(r.Range(), r.Data()))
}

// WriteRequest stores a payload into one flash region.
//
// Wire format (34 bytes): address u32 LE, size u8, data buffer of
// MaxTransfer bytes, zero-padded.
type WriteRequest struct {
	address wire.U32LE
	size    uint8
	data    [MaxTransfer]byte
}

// NewWriteRequest builds a write command embedding data at the given range.
// The payload length must equal the range size; a mismatched write must be
// rejected before any bytes go out, so this panics.
func NewWriteRequest(rng Range, data []byte) WriteRequest {
	if len(data) != int(rng.Size()) {
		panic(fmt.Sprintf("spi: write payload %d bytes, range says %d", len(data), rng.Size()))
	}
	req := WriteRequest{address: wire.PutU32(rng.Offset()), size: rng.Size()}
	copy(req.data[:], data)
	return req
}

// Range recovers the target range.
func (w WriteRequest) Range() Range {
	return Range{offset: w.address.Uint32(), size: w.size}
}

// Data returns a copy of the valid portion of the payload.
func (w WriteRequest) Data() []byte {
	n := int(w.size)
	if n > MaxTransfer {
		n = MaxTransfer
	}
	out := make([]byte, n)
	copy(out, w.data[:n])
	return out
}

func (w WriteRequest) Size() int { return 5 + MaxTransfer }

func (w WriteRequest) MarshalBinary() ([]byte, error) {
	b := make([]byte, w.Size())
	copy(b[0:4], w.address[:])
	b[4] = w.size
	copy(b[5:], w.data[:])
	return b, nil
}

func (w *WriteRequest) UnmarshalBinary(data []byte) error {
	if len(data) < w.Size() {
		return io.ErrUnexpectedEOF
	}
	copy(w.address[:], data[0:4])
	w.size = data[4]
	copy(w.data[:], data[5:5+MaxTransfer])
	return nil
}

func (w WriteRequest) String() string {
	return fmt.Sprintf("WriteRequest{%s}", regionString(w.Range(), w.Data()))
}

// WriteResult is the controller's reply to a WriteRequest: a single status
// byte, zero on success.
type WriteResult struct {
	status uint8
}

// NewWriteResult wraps a raw status byte.
func NewWriteResult(status uint8) WriteResult {
	return WriteResult{status: status}
}

// Success reports whether the write was acknowledged.
func (w WriteResult) Success() bool { return w.status == 0 }

// Status returns the raw status byte.
func (w WriteResult) Status() uint8 { return w.status }

func (w WriteResult) Size() int { return 1 }

func (w WriteResult) MarshalBinary() ([]byte, error) {
	return []byte{w.status}, nil
}

func (w *WriteResult) UnmarshalBinary(data []byte) error {
	if len(data) < 1 {
		return io.ErrUnexpectedEOF
	}
	w.status = data[0]
	return nil
}

func (w WriteResult) String() string {
	if w.Success() {
		return "WriteResult{ok}"
	}
	return fmt.Sprintf("WriteResult{status: 0x%02x}", w.status)
}

// RequestDef is the layout of host-originated SPI subcommand frames.
var RequestDef = wire.NewDef("SPIRequest", 0, 0,
	wire.Variant[protocol.SubcommandID]{Tag: protocol.SubcmdSPIRead, New: func() wire.Payload { return new(ReadRequest) }},
	wire.Variant[protocol.SubcommandID]{Tag: protocol.SubcmdSPIWrite, New: func() wire.Payload { return new(WriteRequest) }},
)

// ReplyDef is the layout of device-originated SPI subcommand replies. The
// single pre-tag header byte is the subcommand ack.
var ReplyDef = wire.NewDef("SPIReply", 1, 0,
	wire.Variant[protocol.SubcommandID]{Tag: protocol.SubcmdSPIRead, New: func() wire.Payload { return new(ReadResult) }},
	wire.Variant[protocol.SubcommandID]{Tag: protocol.SubcmdSPIWrite, New: func() wire.Payload { return new(WriteResult) }},
)

// ReadFrame builds a request frame asking for rng.
func ReadFrame(rng Range) *wire.Frame[protocol.SubcommandID] {
	f := RequestDef.New()
	req := NewReadRequest(rng)
	// ReadRequest cannot fail to marshal.
	if err := f.SetPayload(protocol.SubcmdSPIRead, &req); err != nil {
		panic(err)
	}
	return f
}

// WriteFrame builds a request frame carrying req.
func WriteFrame(req WriteRequest) *wire.Frame[protocol.SubcommandID] {
	f := RequestDef.New()
	if err := f.SetPayload(protocol.SubcmdSPIWrite, &req); err != nil {
		panic(err)
	}
	return f
}

// ParseReply interprets a raw subcommand reply buffer.
func ParseReply(raw []byte) (*wire.Frame[protocol.SubcommandID], error) {
	return ReplyDef.Parse(raw)
}

// regionString renders one flash region semantically when the address/size
// pair is a known record, and as address+size+raw bytes otherwise.
func regionString(rng Range, data []byte) string {
	bad := func(err error) string {
		return fmt.Sprintf("%s: undecodable: %v", rng, err)
	}
	switch rng {
	case RangeSerialNumber:
		return fmt.Sprintf("serial: % 02x", data)
	case RangeFactoryStickCalibration:
		var c SticksCalibration
		if err := c.UnmarshalBinary(data); err != nil {
			return bad(err)
		}
		return fmt.Sprintf("stick_factory: %v", c)
	case RangeUserStickCalibration:
		var c UserSticksCalibration
		if err := c.UnmarshalBinary(data); err != nil {
			return bad(err)
		}
		return fmt.Sprintf("stick_user: %v", c)
	case RangeFactorySensorCalibration:
		var c SensorCalibration
		if err := c.UnmarshalBinary(data); err != nil {
			return bad(err)
		}
		return fmt.Sprintf("imu_factory: %v", c)
	case RangeUserSensorCalibration:
		var c UserSensorCalibration
		if err := c.UnmarshalBinary(data); err != nil {
			return bad(err)
		}
		return fmt.Sprintf("imu_user: %v", c)
	case RangeControllerColor:
		var c ControllerColor
		if err := c.UnmarshalBinary(data); err != nil {
			return bad(err)
		}
		return fmt.Sprintf("color: %v", c)
	case RangeColorUsage:
		var c ColorUsageFlag
		if err := c.UnmarshalBinary(data); err != nil {
			return bad(err)
		}
		return fmt.Sprintf("color_usage: %v", c)
	case RangeStickParameters1:
		return fmt.Sprintf("horizontal_offset: % 02x, stick_parameter1: % 02x", data[:6], data[6:])
	case RangeStickParameters2:
		return fmt.Sprintf("stick_parameter2: % 02x", data)
	}
	return fmt.Sprintf("address: 0x%x, size: %d, raw: % 02x", rng.Offset(), rng.Size(), data)
}
