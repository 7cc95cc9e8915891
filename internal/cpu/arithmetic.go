package cpu

import (
	"github.com/aaron-nuy/dmgcore/internal/bus"
	"github.com/aaron-nuy/dmgcore/internal/operand"
)

// execIncR8 increments an R8 operand (possibly (HL)) in place. Carry
// is left untouched, matching every 8-bit INC on this CPU.
func (c *CPU) execIncR8(b *bus.Bus, r operand.R8) {
	v := c.readR8(b, r)
	result := v + 1
	c.writeR8(b, r, result)
	c.Reg.SetFlag(flagZero, result == 0)
	c.Reg.SetFlag(flagSubtract, false)
	c.Reg.SetFlag(flagHalfCarry, v&0x0F == 0x0F)
}

// execDecR8 is INC's mirror image.
func (c *CPU) execDecR8(b *bus.Bus, r operand.R8) {
	v := c.readR8(b, r)
	result := v - 1
	c.writeR8(b, r, result)
	c.Reg.SetFlag(flagZero, result == 0)
	c.Reg.SetFlag(flagSubtract, true)
	c.Reg.SetFlag(flagHalfCarry, v&0x0F == 0x00)
}

// execAddHL adds a 16-bit register pair into HL. Half-carry and carry
// come from bit 11 and bit 15, since this is a 16-bit addition; Z is
// left untouched, per the documented instruction semantics.
func (c *CPU) execAddHL(r operand.R16) {
	hl := c.Reg.HL()
	v := c.readR16(r)
	sum := uint32(hl) + uint32(v)
	halfSum := (hl & 0x0FFF) + (v & 0x0FFF)
	c.Reg.SetHL(uint16(sum))
	c.Reg.SetFlag(flagSubtract, false)
	c.Reg.SetFlag(flagHalfCarry, halfSum > 0x0FFF)
	c.Reg.SetFlag(flagCarry, sum > 0xFFFF)
}

// execAddSP adds a signed 8-bit immediate to SP. Per spec §4.3, the
// half-carry and carry flags come from the *unsigned* low-byte
// addition (SP's low byte plus imm8 as an unsigned value), not from
// the signed 16-bit sum; Z and N are always cleared.
func (c *CPU) execAddSP(imm8 int8) {
	sp := c.Reg.SP
	lo := uint8(sp)
	operand8 := uint8(imm8)
	halfSum := (lo & 0x0F) + (operand8 & 0x0F)
	fullSum := uint16(lo) + uint16(operand8)
	c.Reg.SP = uint16(int32(sp) + int32(imm8))
	c.setZNHC(false, false, halfSum > 0x0F, fullSum > 0xFF)
}

// execLdHLSPImm8 is ADD SP,imm8's twin: it computes the same sum and
// flags but stores the result in HL, leaving SP untouched.
func (c *CPU) execLdHLSPImm8(imm8 int8) {
	sp := c.Reg.SP
	lo := uint8(sp)
	operand8 := uint8(imm8)
	halfSum := (lo & 0x0F) + (operand8 & 0x0F)
	fullSum := uint16(lo) + uint16(operand8)
	c.Reg.SetHL(uint16(int32(sp) + int32(imm8)))
	c.setZNHC(false, false, halfSum > 0x0F, fullSum > 0xFF)
}

// execDAA adjusts A into packed BCD after an 8-bit add or subtract,
// following the carry flags the preceding ALU op left behind. The
// carry flag is only ever set here, never cleared, matching real
// hardware: a DAA that doesn't need to correct the high nibble leaves
// a carry from the prior op alone.
func (c *CPU) execDAA() {
	a := c.Reg.A
	n := c.Reg.Flag(flagSubtract)
	h := c.Reg.Flag(flagHalfCarry)
	cy := c.Reg.Flag(flagCarry)

	var adjust uint8
	if h || (!n && a&0x0F > 0x09) {
		adjust |= 0x06
	}
	if cy || (!n && a > 0x99) {
		adjust |= 0x60
		cy = true
	}

	if n {
		a -= adjust
	} else {
		a += adjust
	}

	c.Reg.A = a
	c.Reg.SetFlag(flagZero, a == 0)
	c.Reg.SetFlag(flagHalfCarry, false)
	c.Reg.SetFlag(flagCarry, cy)
}
