package wire

import (
	"encoding"
	"fmt"
)

// Payload is a fixed-size frame payload. MarshalBinary must produce exactly
// Size bytes and UnmarshalBinary must accept a buffer of at least Size bytes,
// following the encoding.BinaryMarshaler convention used across this module.
type Payload interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	Size() int
}

// Variant binds one tag value to the payload shape it selects. New returns a
// fresh zero payload ready to decode into.
type Variant[T ID] struct {
	Tag T
	New func() Payload
}

// Def is the declarative layout of a tagged frame: optional header bytes
// before and after the one-byte tag, and a payload region sized to the
// largest declared variant. A Def plays the role of a frame type; all frames
// built from the same Def have the same fixed size regardless of which
// variant is active, mirroring the fixed-size transport report.
type Def[T ID] struct {
	name       string
	preLen     int
	postLen    int
	payloadLen int
	variants   map[uint8]Variant[T]
}

// NewDef builds a frame layout. It panics on duplicate or invalid variant
// tags; the variant table is program structure, not wire input.
func NewDef[T ID](name string, preLen, postLen int, variants ...Variant[T]) *Def[T] {
	d := &Def[T]{
		name:     name,
		preLen:   preLen,
		postLen:  postLen,
		variants: make(map[uint8]Variant[T], len(variants)),
	}
	for _, v := range variants {
		if !v.Tag.Valid() {
			panic(fmt.Sprintf("wire: %s: variant tag 0x%02x is not a member of its enumeration", name, uint8(v.Tag)))
		}
		if _, dup := d.variants[uint8(v.Tag)]; dup {
			panic(fmt.Sprintf("wire: %s: duplicate variant tag %v", name, v.Tag))
		}
		d.variants[uint8(v.Tag)] = v
		if n := v.New().Size(); n > d.payloadLen {
			d.payloadLen = n
		}
	}
	return d
}

// WithPayloadLen widens the payload region beyond the largest declared
// variant, for frames whose raw region is larger than any decoded shape.
// Panics if n would truncate a declared variant.
func (d *Def[T]) WithPayloadLen(n int) *Def[T] {
	if n < d.payloadLen {
		panic(fmt.Sprintf("wire: %s: payload region %d smaller than largest variant %d", d.name, n, d.payloadLen))
	}
	d.payloadLen = n
	return d
}

// Name returns the layout name used in debug output.
func (d *Def[T]) Name() string { return d.name }

// Size is the fixed total frame size: pre-header + tag + post-header +
// payload region.
func (d *Def[T]) Size() int {
	return d.preLen + 1 + d.postLen + d.payloadLen
}

// New returns a zeroed frame of this layout.
func (d *Def[T]) New() *Frame[T] {
	return &Frame[T]{def: d, buf: make([]byte, d.Size())}
}

// Parse copies raw into a new frame. The buffer must be exactly Size bytes;
// the transport hands over fixed-size reports, so any other length is a
// framing error.
func (d *Def[T]) Parse(raw []byte) (*Frame[T], error) {
	if len(raw) != d.Size() {
		return nil, fmt.Errorf("wire: %s: frame must be %d bytes, got %d", d.name, d.Size(), len(raw))
	}
	f := d.New()
	copy(f.buf, raw)
	return f, nil
}

// Frame is one fixed-size protocol message. It owns its backing bytes
// exclusively; Parse and Bytes copy at the boundary so no caller buffer is
// aliased.
type Frame[T ID] struct {
	def *Def[T]
	buf []byte
}

// Def returns the layout this frame was built from.
func (f *Frame[T]) Def() *Def[T] { return f.def }

// Bytes returns a copy of the full frame, ready to transmit.
func (f *Frame[T]) Bytes() []byte {
	out := make([]byte, len(f.buf))
	copy(out, f.buf)
	return out
}

// ID returns the frame's tag.
func (f *Frame[T]) ID() RawID[T] {
	return NewRawID[T](f.buf[f.def.preLen])
}

// SetID overwrites the tag without touching the payload region.
func (f *Frame[T]) SetID(id T) {
	f.buf[f.def.preLen] = uint8(id)
}

// Pre returns the header bytes preceding the tag. The slice aliases the
// frame; writes through it modify the frame.
func (f *Frame[T]) Pre() []byte {
	return f.buf[:f.def.preLen]
}

// Post returns the header bytes following the tag, aliasing the frame.
func (f *Frame[T]) Post() []byte {
	start := f.def.preLen + 1
	return f.buf[start : start+f.def.postLen]
}

func (f *Frame[T]) payloadRegion() []byte {
	start := f.def.preLen + 1 + f.def.postLen
	return f.buf[start:]
}

// Raw returns a copy of the whole payload region, for inspecting frames
// whose tag is not recognized.
func (f *Frame[T]) Raw() []byte {
	region := f.payloadRegion()
	out := make([]byte, len(region))
	copy(out, region)
	return out
}

// Payload decodes the variant selected by the current tag. ok is false when
// the tag matches no declared variant; the caller may then fall back to Raw.
func (f *Frame[T]) Payload() (Payload, bool) {
	v, ok := f.def.variants[f.buf[f.def.preLen]]
	if !ok {
		return nil, false
	}
	p := v.New()
	if err := p.UnmarshalBinary(f.payloadRegion()[:p.Size()]); err != nil {
		return nil, false
	}
	return p, true
}

// PayloadAs decodes the frame's payload as the concrete type P. ok is false
// when the tag selects a different variant, or none. This is the checked
// replacement for reinterpreting the payload region as an arbitrary type.
func PayloadAs[P Payload, T ID](f *Frame[T]) (P, bool) {
	p, ok := f.Payload()
	if !ok {
		var zero P
		return zero, false
	}
	typed, ok := p.(P)
	if !ok {
		var zero P
		return zero, false
	}
	return typed, true
}

// SetPayload encodes p into the payload region, zero-extending to the fixed
// region size, and sets the tag to id. Setting an undeclared tag is a
// programming error and panics; a frame with a tag its layout does not
// declare must never be transmitted.
func (f *Frame[T]) SetPayload(id T, p Payload) error {
	if _, ok := f.def.variants[uint8(id)]; !ok {
		panic(fmt.Sprintf("wire: %s: tag %v has no declared variant", f.def.name, id))
	}
	b, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	if len(b) > f.def.payloadLen {
		return fmt.Errorf("wire: %s: payload %d bytes exceeds region %d", f.def.name, len(b), f.def.payloadLen)
	}
	region := f.payloadRegion()
	clear(region)
	copy(region, b)
	f.buf[f.def.preLen] = uint8(id)
	return nil
}

// Decoded is the sum-type view of a frame: exactly one recognized tag and
// the payload it selects. Header bytes are not part of the view; Encode
// zero-fills them.
type Decoded[T ID] struct {
	Tag     T
	Payload Payload
}

// UnknownTagError reports a frame whose tag matches no declared variant. It
// carries the untouched frame so the caller can inspect the raw bytes.
// Unknown tags are an expected forward-compatibility condition, never fatal.
type UnknownTagError[T ID] struct {
	Frame *Frame[T]
}

func (e *UnknownTagError[T]) Error() string {
	return fmt.Sprintf("wire: %s: unknown tag %s", e.Frame.def.name, e.Frame.ID())
}

// Decode converts the frame to its sum-type view. It fails with
// *UnknownTagError when the tag is unrecognized, leaving the frame intact.
func (f *Frame[T]) Decode() (Decoded[T], error) {
	id, ok := f.ID().ID()
	if !ok {
		return Decoded[T]{}, &UnknownTagError[T]{Frame: f}
	}
	p, ok := f.Payload()
	if !ok {
		return Decoded[T]{}, &UnknownTagError[T]{Frame: f}
	}
	return Decoded[T]{Tag: id, Payload: p}, nil
}

// Encode converts a decoded view back into a frame of layout d. Header
// fields not covered by the view are zero-filled. Total for declared tags.
func Encode[T ID](d *Def[T], v Decoded[T]) (*Frame[T], error) {
	f := d.New()
	if err := f.SetPayload(v.Tag, v.Payload); err != nil {
		return nil, err
	}
	return f, nil
}

// String shows the active payload by name when the tag is recognized, and
// the raw tag plus payload bytes otherwise.
func (f *Frame[T]) String() string {
	if p, ok := f.Payload(); ok {
		return fmt.Sprintf("%s{%s: %v}", f.def.name, f.ID(), p)
	}
	return fmt.Sprintf("%s{id: %s, raw: % 02x}", f.def.name, f.ID(), f.payloadRegion())
}
