package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackUnpack(t *testing.T) {
	for _, r := range []Register{
		{},
		{Zero: true},
		{Subtract: true},
		{HalfCarry: true},
		{Carry: true},
		{Zero: true, Subtract: true, HalfCarry: true, Carry: true},
	} {
		assert.Equal(t, r, Unpack(r.Pack()))
	}
}

func TestPackLowNibbleZero(t *testing.T) {
	r := Register{Zero: true, Subtract: true, HalfCarry: true, Carry: true}
	assert.Equal(t, byte(0xF0), r.Pack())
}

func TestUnpackIgnoresLowNibble(t *testing.T) {
	assert.Equal(t, Register{Zero: true}, Unpack(0x8F))
}

func TestRoundTripAllBytes(t *testing.T) {
	// Pack(Unpack(b)) == b & 0xF0 for every byte value.
	for b := 0; b < 256; b++ {
		got := Unpack(byte(b)).Pack()
		assert.Equal(t, byte(b)&0xF0, got)
	}
}

func TestSetMaskedPreservesUnset(t *testing.T) {
	r := Register{Zero: true, Subtract: true, HalfCarry: true, Carry: true}

	no := false
	r.SetMasked(&no, nil, nil, nil)

	assert.False(t, r.Zero)
	assert.True(t, r.Subtract)
	assert.True(t, r.HalfCarry)
	assert.True(t, r.Carry)
}

func TestSetMaskedAllNilIsNoop(t *testing.T) {
	r := Register{Zero: true, Carry: true}
	r.SetMasked(nil, nil, nil, nil)
	assert.Equal(t, Register{Zero: true, Carry: true}, r)
}
