package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sm83/flags"
)

func TestPairGettersSetters(t *testing.T) {
	var f File

	f.SetBC(0x0305)
	assert.Equal(t, uint16(0x0305), f.BC())
	assert.Equal(t, byte(0x03), f.B)
	assert.Equal(t, byte(0x05), f.C)

	f.SetDE(0xBEEF)
	assert.Equal(t, uint16(0xBEEF), f.DE())

	f.SetHL(0x8000)
	assert.Equal(t, uint16(0x8000), f.HL())
}

func TestSetAFMasksLowNibble(t *testing.T) {
	var f File
	f.SetAF(0x12FF)
	assert.Equal(t, byte(0x12), f.A)
	assert.Equal(t, byte(0xF0), f.F.Pack())
	assert.Equal(t, uint16(0x12F0), f.AF())
}

func TestSetAFRestoresFlags(t *testing.T) {
	var f File
	f.SetAF(0x0030) // H and C set, Z and N clear
	assert.Equal(t, flags.Register{HalfCarry: true, Carry: true}, f.F)
}
