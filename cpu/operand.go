package cpu

// Reg8 selects one of the eight operand slots that appear wherever the
// SM83 opcode map encodes an 8-bit source or target in three bits: B, C,
// D, E, H, L, (HL), A, in that order. The register-to-register load block
// (0x40-0x7F) and the ALU block (0x80-0xBF) both index this same array
// via mask.Range/mask.Last on the opcode byte, which is what lets a
// single readR8/writeR8 pair stand in for what would otherwise be eight
// enumerated cases apiece.
type Reg8 byte

const (
	RegB Reg8 = iota
	RegC
	RegD
	RegE
	RegH
	RegL
	RegHLIndirect
	RegA
)

// RegPair selects one of the four 16-bit register pairs that appear in
// the "first quarter" (0x00-0x3F) opcode rows: LD rr,d16, INC/DEC rr,
// ADD HL,rr. The bit encoding is 2 bits wide (mask.Range(op, 3, 4)).
type RegPair byte

const (
	PairBC RegPair = iota
	PairDE
	PairHL
	PairSP
)

// ALUOp selects one of the eight 8-bit ALU operations in the 0x80-0xBF
// block: ADD, ADC, SUB, SBC, AND, XOR, OR, CP, in that order.
type ALUOp byte

const (
	ALUAdd ALUOp = iota
	ALUAdc
	ALUSub
	ALUSbc
	ALUAnd
	ALUXor
	ALUOr
	ALUCp
)

// Cond selects one of the four branch conditions used by JR, JP, CALL,
// and RET: NZ, Z, NC, C, in that order (mask.Range(op, 4, 5) on the
// conditional opcode rows).
type Cond byte

const (
	CondNZ Cond = iota
	CondZ
	CondNC
	CondC
)

// holds reports whether the condition is satisfied by the current flags.
func (cc Cond) holds(c *CPU) bool {
	switch cc {
	case CondNZ:
		return !c.Reg.F.Zero
	case CondZ:
		return c.Reg.F.Zero
	case CondNC:
		return !c.Reg.F.Carry
	case CondC:
		return c.Reg.F.Carry
	}
	return false
}

// readR8 reads an 8-bit operand from a register cell or, for
// RegHLIndirect, from memory at HL.
func (c *CPU) readR8(r Reg8) byte {
	switch r {
	case RegB:
		return c.Reg.B
	case RegC:
		return c.Reg.C
	case RegD:
		return c.Reg.D
	case RegE:
		return c.Reg.E
	case RegH:
		return c.Reg.H
	case RegL:
		return c.Reg.L
	case RegHLIndirect:
		return c.Bus.ReadByte(c.Reg.HL())
	case RegA:
		return c.Reg.A
	}
	panic("cpu: invalid Reg8 selector")
}

// writeR8 writes an 8-bit operand to a register cell or, for
// RegHLIndirect, to memory at HL.
func (c *CPU) writeR8(r Reg8, v byte) {
	switch r {
	case RegB:
		c.Reg.B = v
	case RegC:
		c.Reg.C = v
	case RegD:
		c.Reg.D = v
	case RegE:
		c.Reg.E = v
	case RegH:
		c.Reg.H = v
	case RegL:
		c.Reg.L = v
	case RegHLIndirect:
		c.Bus.WriteByte(c.Reg.HL(), v)
	case RegA:
		c.Reg.A = v
	default:
		panic("cpu: invalid Reg8 selector")
	}
}

// readRP reads a 16-bit register pair. PairSP reads SP, not a register
// file view.
func (c *CPU) readRP(rp RegPair) uint16 {
	switch rp {
	case PairBC:
		return c.Reg.BC()
	case PairDE:
		return c.Reg.DE()
	case PairHL:
		return c.Reg.HL()
	case PairSP:
		return c.SP
	}
	panic("cpu: invalid RegPair selector")
}

// writeRP writes a 16-bit register pair. PairSP writes SP.
func (c *CPU) writeRP(rp RegPair, v uint16) {
	switch rp {
	case PairBC:
		c.Reg.SetBC(v)
	case PairDE:
		c.Reg.SetDE(v)
	case PairHL:
		c.Reg.SetHL(v)
	case PairSP:
		c.SP = v
	default:
		panic("cpu: invalid RegPair selector")
	}
}
