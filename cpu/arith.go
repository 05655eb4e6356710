package cpu

// ptr takes the address of a bool value, for the common case of passing a
// freshly computed flag straight into Register.SetMasked.
func ptr(b bool) *bool { return &b }

// execALU performs one of the eight 8-bit ALU ops (ADD, ADC, SUB, SBC,
// AND, XOR, OR, CP) with the operand selected by src, writing the result
// to A (except CP, which only sets flags) and returning the fall-through
// PC.
func (c *CPU) execALU(op ALUOp, src Reg8) (uint16, error) {
	value := c.readR8(src)
	switch op {
	case ALUAdd:
		c.add(value)
	case ALUAdc:
		c.adc(value)
	case ALUSub:
		c.sub(value)
	case ALUSbc:
		c.sbc(value)
	case ALUAnd:
		c.and(value)
	case ALUXor:
		c.xor(value)
	case ALUOr:
		c.or(value)
	case ALUCp:
		c.cp(value)
	}
	return c.PC + 1, nil
}

// add performs A <- A + value with 8-bit wrap.
func (c *CPU) add(value byte) {
	a := c.Reg.A
	sum := uint16(a) + uint16(value)
	result := byte(sum)
	c.Reg.A = result
	c.Reg.F.SetMasked(
		ptr(result == 0),
		ptr(false),
		ptr((a&0x0F)+(value&0x0F) > 0x0F),
		ptr(sum > 0xFF),
	)
}

// adc performs A <- A + value + C_in. The three-term formula (not folding
// carry into value first) is required so half-carry/carry are computed
// against the true operand, not a value that may have already wrapped.
func (c *CPU) adc(value byte) {
	a := c.Reg.A
	carryIn := uint16(0)
	if c.Reg.F.Carry {
		carryIn = 1
	}
	sum := uint16(a) + uint16(value) + carryIn
	result := byte(sum)
	c.Reg.A = result
	c.Reg.F.SetMasked(
		ptr(result == 0),
		ptr(false),
		ptr((a&0x0F)+(value&0x0F)+byte(carryIn) > 0x0F),
		ptr(sum > 0xFF),
	)
}

// sub performs A <- A - value with 8-bit wrap.
func (c *CPU) sub(value byte) {
	a := c.Reg.A
	result := a - value
	c.Reg.A = result
	c.Reg.F.SetMasked(
		ptr(result == 0),
		ptr(true),
		ptr((a&0x0F) < (value&0x0F)),
		ptr(a < value),
	)
}

// sbc performs A <- A - value - C_in with the analogous three-term
// borrow formula.
func (c *CPU) sbc(value byte) {
	a := c.Reg.A
	carryIn := byte(0)
	if c.Reg.F.Carry {
		carryIn = 1
	}
	result := a - value - carryIn
	borrow := int(a) < int(value)+int(carryIn)
	halfBorrow := int(a&0x0F) < int(value&0x0F)+int(carryIn)
	c.Reg.A = result
	c.Reg.F.SetMasked(
		ptr(result == 0),
		ptr(true),
		ptr(halfBorrow),
		ptr(borrow),
	)
}

// cp compares A against value: identical flag effects to sub, but A is
// not written.
func (c *CPU) cp(value byte) {
	a := c.Reg.A
	result := a - value
	c.Reg.F.SetMasked(
		ptr(result == 0),
		ptr(true),
		ptr((a&0x0F) < (value&0x0F)),
		ptr(a < value),
	)
}

func (c *CPU) and(value byte) {
	c.Reg.A &= value
	c.Reg.F.SetMasked(ptr(c.Reg.A == 0), ptr(false), ptr(true), ptr(false))
}

func (c *CPU) or(value byte) {
	c.Reg.A |= value
	c.Reg.F.SetMasked(ptr(c.Reg.A == 0), ptr(false), ptr(false), ptr(false))
}

func (c *CPU) xor(value byte) {
	c.Reg.A ^= value
	c.Reg.F.SetMasked(ptr(c.Reg.A == 0), ptr(false), ptr(false), ptr(false))
}

// execIncR8 performs INC r for the 8-bit selector r. Carry is preserved.
func (c *CPU) execIncR8(r Reg8) (uint16, error) {
	old := c.readR8(r)
	newValue := old + 1
	c.writeR8(r, newValue)
	c.Reg.F.SetMasked(
		ptr(newValue == 0),
		ptr(false),
		ptr((old&0x0F)+1 > 0x0F),
		nil,
	)
	return c.PC + 1, nil
}

// execDecR8 performs DEC r for the 8-bit selector r. Carry is preserved.
func (c *CPU) execDecR8(r Reg8) (uint16, error) {
	old := c.readR8(r)
	newValue := old - 1
	c.writeR8(r, newValue)
	c.Reg.F.SetMasked(
		ptr(newValue == 0),
		ptr(true),
		ptr(old&0x0F == 0),
		nil,
	)
	return c.PC + 1, nil
}

// execIncRP performs INC rr: wrap-adjust a 16-bit pair by +1. No flags.
func (c *CPU) execIncRP(rp RegPair) (uint16, error) {
	c.writeRP(rp, c.readRP(rp)+1)
	return c.PC + 1, nil
}

// execDecRP performs DEC rr: wrap-adjust a 16-bit pair by -1. No flags.
func (c *CPU) execDecRP(rp RegPair) (uint16, error) {
	c.writeRP(rp, c.readRP(rp)-1)
	return c.PC + 1, nil
}

// execAddHLRP performs ADD HL, rr. Z is preserved; N cleared; H/C from the
// 16-bit sum.
func (c *CPU) execAddHLRP(rp RegPair) (uint16, error) {
	hl := c.Reg.HL()
	value := c.readRP(rp)
	sum := uint32(hl) + uint32(value)
	c.Reg.SetHL(uint16(sum))
	c.Reg.F.SetMasked(
		nil,
		ptr(false),
		ptr((hl&0x0FFF)+(value&0x0FFF) > 0x0FFF),
		ptr(sum > 0xFFFF),
	)
	return c.PC + 1, nil
}

// execRLCA rotates A left circularly. Unlike the prefixed RLC family, Z is
// always cleared here, even if the rotated value is zero.
func (c *CPU) execRLCA() (uint16, error) {
	a := c.Reg.A
	bit7 := a >> 7
	c.Reg.A = (a << 1) | bit7
	c.Reg.F.SetMasked(ptr(false), ptr(false), ptr(false), ptr(bit7 != 0))
	return c.PC + 1, nil
}

func (c *CPU) execRRCA() (uint16, error) {
	a := c.Reg.A
	bit0 := a & 1
	c.Reg.A = (bit0 << 7) | (a >> 1)
	c.Reg.F.SetMasked(ptr(false), ptr(false), ptr(false), ptr(bit0 != 0))
	return c.PC + 1, nil
}

func (c *CPU) execRLA() (uint16, error) {
	a := c.Reg.A
	bit7 := a >> 7
	var carryIn byte
	if c.Reg.F.Carry {
		carryIn = 1
	}
	c.Reg.A = (a << 1) | carryIn
	c.Reg.F.SetMasked(ptr(false), ptr(false), ptr(false), ptr(bit7 != 0))
	return c.PC + 1, nil
}

func (c *CPU) execRRA() (uint16, error) {
	a := c.Reg.A
	bit0 := a & 1
	var carryIn byte
	if c.Reg.F.Carry {
		carryIn = 1
	}
	c.Reg.A = (a >> 1) | (carryIn << 7)
	c.Reg.F.SetMasked(ptr(false), ptr(false), ptr(false), ptr(bit0 != 0))
	return c.PC + 1, nil
}

// execRLC rotates an arbitrary 8-bit operand (or (HL)) left circularly,
// prefixed-page style: unlike RLCA, Z is set from the result.
func (c *CPU) execRLC(r Reg8) (uint16, error) {
	value := c.readR8(r)
	bit7 := value >> 7
	result := (value << 1) | bit7
	c.writeR8(r, result)
	c.Reg.F.SetMasked(ptr(result == 0), ptr(false), ptr(false), ptr(bit7 != 0))
	return c.PC + 2, nil
}

// execDAA decimal-adjusts A after a preceding BCD add or subtract.
func (c *CPU) execDAA() (uint16, error) {
	a := c.Reg.A
	subtract := c.Reg.F.Subtract
	halfCarry := c.Reg.F.HalfCarry
	carry := c.Reg.F.Carry

	var offset byte
	setCarry := false

	if !subtract {
		if halfCarry || (a&0x0F) > 0x09 {
			offset |= 0x06
		}
		if carry || a > 0x99 {
			offset |= 0x60
			setCarry = true
		}
		a += offset
	} else {
		if halfCarry {
			offset |= 0x06
		}
		if carry {
			offset |= 0x60
		}
		a -= offset
		setCarry = carry
	}

	c.Reg.A = a
	c.Reg.F.SetMasked(ptr(a == 0), nil, ptr(false), ptr(setCarry))
	return c.PC + 1, nil
}

// execCPL complements A. N and H are set; Z and C are preserved.
func (c *CPU) execCPL() (uint16, error) {
	c.Reg.A = ^c.Reg.A
	c.Reg.F.SetMasked(nil, ptr(true), ptr(true), nil)
	return c.PC + 1, nil
}

// execSCF sets the carry flag. Z is preserved.
func (c *CPU) execSCF() (uint16, error) {
	c.Reg.F.SetMasked(nil, ptr(false), ptr(false), ptr(true))
	return c.PC + 1, nil
}

// execCCF complements the carry flag. Z is preserved.
func (c *CPU) execCCF() (uint16, error) {
	c.Reg.F.SetMasked(nil, ptr(false), ptr(false), ptr(!c.Reg.F.Carry))
	return c.PC + 1, nil
}
