// Package cpu implements the Sharp SM83 (Game Boy DMG) CPU: opcode decode,
// per-instruction execution, flag maintenance, and program-counter
// advancement, against an external byte-addressable memory bus.
package cpu

import (
	"sm83/mem"
	"sm83/registers"
)

// CPU is the SM83 register file plus the two peer 16-bit counters (SP, PC)
// and the Bus it executes against. All fields are exported so a host (or a
// test) can prime state directly, per the external-interfaces contract.
type CPU struct {
	Bus *mem.Bus
	Reg registers.File
	SP  uint16
	PC  uint16
}

// New returns a CPU with all registers, flags, SP, PC zeroed and a fresh
// 64 KiB zeroed Bus.
func New() *CPU {
	return &CPU{Bus: &mem.Bus{}}
}

// Step executes exactly one instruction: fetch, decode, execute, and
// advance PC. It does not count cycles; interrupt polling, HALT behavior,
// and IME are out of scope.
//
// An unrecognized (opcode, prefixed) pair, or one the executor has no arm
// for, is fatal and surfaces as UnknownOpcodeError or
// UnimplementedOperandError rather than corrupting state.
func (c *CPU) Step() error {
	op := c.Bus.ReadByte(c.PC)
	prefixed := op == 0xCB
	if prefixed {
		op = c.Bus.ReadByte(c.PC + 1)
	}

	next, err := c.decodeExecute(op, prefixed)
	if err != nil {
		return err
	}
	c.PC = next
	return nil
}

// d8 reads the 8-bit immediate at PC+1.
func (c *CPU) d8() byte {
	return c.Bus.ReadByte(c.PC + 1)
}

// s8 reads the 8-bit immediate at PC+1 as a signed relative offset.
func (c *CPU) s8() int8 {
	return int8(c.d8())
}

// d16 reads the little-endian 16-bit immediate at PC+1/PC+2. Also used to
// resolve an a16 operand, which shares the same encoding.
func (c *CPU) d16() uint16 {
	lo := uint16(c.Bus.ReadByte(c.PC + 1))
	hi := uint16(c.Bus.ReadByte(c.PC + 2))
	return hi<<8 | lo
}

// push writes value onto the stack, high byte first, growing the stack
// downward with 16-bit wrap.
func (c *CPU) push(value uint16) {
	c.SP--
	c.Bus.WriteByte(c.SP, byte(value>>8))
	c.SP--
	c.Bus.WriteByte(c.SP, byte(value))
}

// pop reads a 16-bit value off the stack, low byte first.
func (c *CPU) pop() uint16 {
	lo := uint16(c.Bus.ReadByte(c.SP))
	c.SP++
	hi := uint16(c.Bus.ReadByte(c.SP))
	c.SP++
	return hi<<8 | lo
}
