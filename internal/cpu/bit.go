package cpu

import "github.com/aaron-nuy/dmgcore/internal/operand"

// execBit implements BIT b,r8: Z is the complement of the tested bit,
// N is cleared, H is set, C is left untouched.
func (c *CPU) execBit(b operand.Bit, v uint8) {
	c.Reg.SetFlag(flagZero, !testBit(v, b))
	c.Reg.SetFlag(flagSubtract, false)
	c.Reg.SetFlag(flagHalfCarry, true)
}
