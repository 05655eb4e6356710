// Package registers implements the SM83 register file: eight 8-bit cells
// viewable as four 16-bit pairs. SP and PC are peers owned by the Cpu, not
// by this file (see cpu.CPU).
package registers

import "sm83/flags"

// File holds the eight 8-bit registers A, B, C, D, E, F, H, L. F is kept as
// an unpacked flags.Register rather than a raw byte so ops can preserve
// individual flags; AF() and SetAF() are where it is packed/unpacked.
type File struct {
	A, B, C, D, E, H, L byte
	F                   flags.Register
}

// AF composes A (high) and F (low, packed) in big-endian order.
func (f File) AF() uint16 {
	return uint16(f.A)<<8 | uint16(f.F.Pack())
}

// SetAF decomposes value into A (high byte) and F (low byte, unpacked via
// flags.Unpack — this is where the "low nibble of F is zero" invariant is
// enforced on write).
func (f *File) SetAF(value uint16) {
	f.A = byte(value >> 8)
	f.F = flags.Unpack(byte(value))
}

func (f File) BC() uint16 { return uint16(f.B)<<8 | uint16(f.C) }

func (f *File) SetBC(value uint16) {
	f.B = byte(value >> 8)
	f.C = byte(value)
}

func (f File) DE() uint16 { return uint16(f.D)<<8 | uint16(f.E) }

func (f *File) SetDE(value uint16) {
	f.D = byte(value >> 8)
	f.E = byte(value)
}

func (f File) HL() uint16 { return uint16(f.H)<<8 | uint16(f.L) }

func (f *File) SetHL(value uint16) {
	f.H = byte(value >> 8)
	f.L = byte(value)
}
