package wire_test

import (
	"fmt"
	"testing"

	"github.com/joywire/joywire/wire"
	"github.com/stretchr/testify/assert"
)

// testID is a minimal closed enumeration for exercising RawID and the frame
// machinery without pulling in protocol-specific sets.
type testID uint8

const (
	idPing testID = 0x01
	idPong testID = 0x10
)

func (id testID) Valid() bool {
	switch id {
	case idPing, idPong:
		return true
	}
	return false
}

func (id testID) String() string {
	switch id {
	case idPing:
		return "Ping"
	case idPong:
		return "Pong"
	}
	return fmt.Sprintf("testID(0x%02x)", uint8(id))
}

func TestRawIDRoundTrip(t *testing.T) {
	for _, id := range []testID{idPing, idPong} {
		raw := wire.FromID(id)
		got, ok := raw.ID()
		assert.True(t, ok)
		assert.Equal(t, id, got)
		assert.Equal(t, uint8(id), raw.Byte())
	}
}

func TestRawIDUnknownBytePreserved(t *testing.T) {
	for b := 0; b <= 0xFF; b++ {
		raw := wire.NewRawID[testID](byte(b))
		assert.Equal(t, byte(b), raw.Byte(), "byte must survive wrapping")

		_, ok := raw.ID()
		want := testID(b).Valid()
		assert.Equal(t, want, ok, "byte 0x%02x", b)
	}
}

func TestRawIDEquality(t *testing.T) {
	assert.True(t, wire.NewRawID[testID](0x01).Is(idPing))
	assert.False(t, wire.NewRawID[testID](0x01).Is(idPong))
	assert.False(t, wire.NewRawID[testID](0x42).Is(idPing))
}

func TestRawIDString(t *testing.T) {
	assert.Equal(t, "Ping", wire.FromID(idPing).String())
	assert.Equal(t, "0x42", wire.NewRawID[testID](0x42).String())
}
