package cpu

import "fmt"

// UnknownOpcodeError reports that decode found no descriptor for (Byte,
// Prefixed). The step cannot proceed because the instruction's width is
// unknown; this is always fatal.
type UnknownOpcodeError struct {
	Byte     byte
	Prefixed bool
}

func (e UnknownOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: unknown opcode 0xcb%02x", e.Byte)
	}
	return fmt.Sprintf("cpu: unknown opcode 0x%02x", e.Byte)
}

// UnimplementedOperandError reports that decode succeeded but the executor
// has no arm for this (Byte, Prefixed) pair's operand combination (e.g.
// HALT, which the decoder recognises but this core does not execute).
// Treated identically to UnknownOpcodeError by callers: fatal, typed,
// unambiguous.
type UnimplementedOperandError struct {
	Byte     byte
	Prefixed bool
	Detail   string
}

func (e UnimplementedOperandError) Error() string {
	prefix := "cpu: unimplemented operand for opcode 0x"
	if e.Prefixed {
		prefix = "cpu: unimplemented operand for opcode 0xcb"
	}
	if e.Detail == "" {
		return fmt.Sprintf("%s%02x", prefix, e.Byte)
	}
	return fmt.Sprintf("%s%02x (%s)", prefix, e.Byte, e.Detail)
}
