package tyrouter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuiltinDecoders(t *testing.T) {
	if v, ok := Int.Decode("123"); assert.True(t, ok) {
		assert.Equal(t, 123, v)
	}
	if _, ok := Int.Decode("not-a-number"); assert.False(t, ok) {
		// decoding failure, not an error: no value is produced
	}

	if v, ok := Int32.Decode("2147483647"); assert.True(t, ok) {
		assert.Equal(t, int32(2147483647), v)
	}

	if v, ok := Int64.Decode("9223372036854775807"); assert.True(t, ok) {
		assert.Equal(t, int64(9223372036854775807), v)
	}

	if v, ok := Float.Decode("3.14"); assert.True(t, ok) {
		assert.Equal(t, 3.14, v)
	}
	_, ok := Float.Decode("nope")
	assert.False(t, ok)

	if v, ok := Bool.Decode("true"); assert.True(t, ok) {
		assert.True(t, v)
	}
	_, ok = Bool.Decode("nope")
	assert.False(t, ok)

	v, ok := String.Decode("anything at all")
	assert.True(t, ok)
	assert.Equal(t, "anything at all", v)
}

func TestNewDecoder_DistinctWitnessesPerConstruction(t *testing.T) {
	a := NewDecoder("int", func(s string) (int, bool) { return toToken[int](s) })
	b := NewDecoder("int", func(s string) (int, bool) { return toToken[int](s) })
	assert.False(t, a.Witness().Equal(b.Witness()))
	assert.True(t, a.Witness().Equal(a.Witness()))
}

func TestEraseDecoder_RoundTripsThroughAnyDecoder(t *testing.T) {
	any := eraseDecoder(Int)
	v, ok := any.decodeAny("7")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, "int", any.name())
	assert.True(t, any.witness().Equal(Int.Witness()))
}
