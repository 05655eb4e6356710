package cpu

// execLoadR8R8 copies source -> target for the 0x40-0x7F block: register,
// (HL)-indirect register, or indirect-register, each taken from the same
// Reg8 selector space. PC advances by 1 in every case (no immediate is
// ever involved here).
func (c *CPU) execLoadR8R8(target, source Reg8) (uint16, error) {
	c.writeR8(target, c.readR8(source))
	return c.PC + 1, nil
}

// execLoadR8D8 performs LD r, d8 (including LD (HL), d8).
func (c *CPU) execLoadR8D8(target Reg8) (uint16, error) {
	c.writeR8(target, c.d8())
	return c.PC + 2, nil
}

// execLoadRPD16 performs LD rr, d16 for BC, DE, HL, SP.
func (c *CPU) execLoadRPD16(rp RegPair) (uint16, error) {
	c.writeRP(rp, c.d16())
	return c.PC + 3, nil
}

// execLoadA16SP performs LD (a16), SP: low byte at a16, high byte at
// a16+1.
func (c *CPU) execLoadA16SP() (uint16, error) {
	addr := c.d16()
	c.Bus.WriteByte(addr, byte(c.SP))
	c.Bus.WriteByte(addr+1, byte(c.SP>>8))
	return c.PC + 3, nil
}

// execLoadIndirectFromA performs LD (BC), A and LD (DE), A.
func (c *CPU) execLoadIndirectFromA(rp RegPair) (uint16, error) {
	c.Bus.WriteByte(c.readRP(rp), c.Reg.A)
	return c.PC + 1, nil
}

// execLoadAFromIndirect performs LD A, (BC) and LD A, (DE).
func (c *CPU) execLoadAFromIndirect(rp RegPair) (uint16, error) {
	c.Reg.A = c.Bus.ReadByte(c.readRP(rp))
	return c.PC + 1, nil
}

// execLoadHLIncFromA performs LD (HL+), A: store, then increment HL.
func (c *CPU) execLoadHLIncFromA() (uint16, error) {
	hl := c.Reg.HL()
	c.Bus.WriteByte(hl, c.Reg.A)
	c.Reg.SetHL(hl + 1)
	return c.PC + 1, nil
}

// execLoadHLDecFromA performs LD (HL-), A: store, then decrement HL.
func (c *CPU) execLoadHLDecFromA() (uint16, error) {
	hl := c.Reg.HL()
	c.Bus.WriteByte(hl, c.Reg.A)
	c.Reg.SetHL(hl - 1)
	return c.PC + 1, nil
}

// execLoadAFromHLInc performs LD A, (HL+): load, then increment HL.
func (c *CPU) execLoadAFromHLInc() (uint16, error) {
	hl := c.Reg.HL()
	c.Reg.A = c.Bus.ReadByte(hl)
	c.Reg.SetHL(hl + 1)
	return c.PC + 1, nil
}

// execLoadAFromHLDec performs LD A, (HL-): load, then decrement HL.
func (c *CPU) execLoadAFromHLDec() (uint16, error) {
	hl := c.Reg.HL()
	c.Reg.A = c.Bus.ReadByte(hl)
	c.Reg.SetHL(hl - 1)
	return c.PC + 1, nil
}

// execPush pushes a 16-bit register pair onto the stack. AF has its own
// execPushAF since it isn't a RegPair (F isn't addressable that way).
func (c *CPU) execPush(rp RegPair) (uint16, error) {
	c.push(c.readRP(rp))
	return c.PC + 1, nil
}

// execPop pops a 16-bit value off the stack into rp.
func (c *CPU) execPop(rp RegPair) (uint16, error) {
	c.writeRP(rp, c.pop())
	return c.PC + 1, nil
}

// execPushAF and execPopAF handle the AF stack target, where the restored
// F masks its low nibble to zero via flags.Unpack (registers.SetAF).
func (c *CPU) execPushAF() (uint16, error) {
	c.push(c.Reg.AF())
	return c.PC + 1, nil
}

func (c *CPU) execPopAF() (uint16, error) {
	c.Reg.SetAF(c.pop())
	return c.PC + 1, nil
}
