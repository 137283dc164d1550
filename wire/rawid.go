package wire

import "fmt"

// ID is a closed, one-byte identifier enumeration. Valid reports whether the
// value is one of the enumerated members; values outside the set still travel
// on the wire and must round-trip losslessly, which is what RawID is for.
type ID interface {
	~uint8
	Valid() bool
	String() string
}

// RawID holds a raw tag byte together with the enumeration it is decoded
// against. The byte is preserved exactly even when it names no member of T:
// controllers emit undocumented tag values and rejecting them would make
// otherwise harmless frames unparseable.
type RawID[T ID] struct {
	raw uint8
}

// NewRawID wraps a raw tag byte.
func NewRawID[T ID](b byte) RawID[T] {
	return RawID[T]{raw: b}
}

// FromID wraps an enumerated identifier. Total: every member of T is a
// single byte by construction.
func FromID[T ID](id T) RawID[T] {
	return RawID[T]{raw: uint8(id)}
}

// Byte returns the raw tag byte.
func (r RawID[T]) Byte() byte {
	return r.raw
}

// ID decodes the byte against the enumeration. ok is false when the byte
// names no member of T.
func (r RawID[T]) ID() (T, bool) {
	id := T(r.raw)
	return id, id.Valid()
}

// Is reports whether the stored byte decodes to exactly id.
func (r RawID[T]) Is(id T) bool {
	return r.raw == uint8(id) && id.Valid()
}

// String prints the decoded name when the byte is a known member, and the
// raw byte in hex otherwise.
func (r RawID[T]) String() string {
	if id, ok := r.ID(); ok {
		return id.String()
	}
	return fmt.Sprintf("0x%02x", r.raw)
}
