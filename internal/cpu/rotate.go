package cpu

import "github.com/aaron-nuy/dmgcore/internal/instruction"

// execRLCA rotates A left circularly; unlike the CB-prefixed RLC r8,
// it always clears Z regardless of the result.
func (c *CPU) execRLCA() {
	carry := c.Reg.A&0x80 != 0
	c.Reg.A = c.Reg.A<<1 | c.Reg.A>>7
	c.setZNHC(false, false, false, carry)
}

func (c *CPU) execRRCA() {
	carry := c.Reg.A&0x01 != 0
	c.Reg.A = c.Reg.A>>1 | c.Reg.A<<7
	c.setZNHC(false, false, false, carry)
}

func (c *CPU) execRLA() {
	oldCarry := c.Reg.Flag(flagCarry)
	newCarry := c.Reg.A&0x80 != 0
	c.Reg.A <<= 1
	if oldCarry {
		c.Reg.A |= 0x01
	}
	c.setZNHC(false, false, false, newCarry)
}

func (c *CPU) execRRA() {
	oldCarry := c.Reg.Flag(flagCarry)
	newCarry := c.Reg.A&0x01 != 0
	c.Reg.A >>= 1
	if oldCarry {
		c.Reg.A |= 0x80
	}
	c.setZNHC(false, false, false, newCarry)
}

// execShift applies one CB-prefixed rotate/shift/swap operation to v
// and returns the result, setting Z/N/H/C from that result (unlike
// the un-prefixed RLCA/RRCA/RLA/RRA family, which always clear Z).
func (c *CPU) execShift(op instruction.ShiftOp, v uint8) uint8 {
	var result uint8
	var carry bool

	switch op {
	case instruction.ShiftRlc:
		carry = v&0x80 != 0
		result = v<<1 | v>>7
	case instruction.ShiftRrc:
		carry = v&0x01 != 0
		result = v>>1 | v<<7
	case instruction.ShiftRl:
		carry = v&0x80 != 0
		result = v << 1
		if c.Reg.Flag(flagCarry) {
			result |= 0x01
		}
	case instruction.ShiftRr:
		carry = v&0x01 != 0
		result = v >> 1
		if c.Reg.Flag(flagCarry) {
			result |= 0x80
		}
	case instruction.ShiftSla:
		carry = v&0x80 != 0
		result = v << 1
	case instruction.ShiftSra:
		carry = v&0x01 != 0
		result = v>>1 | v&0x80
	case instruction.ShiftSwap:
		result = v<<4 | v>>4
	case instruction.ShiftSrl:
		carry = v&0x01 != 0
		result = v >> 1
	}

	c.setZNHC(result == 0, false, false, carry)
	return result
}
