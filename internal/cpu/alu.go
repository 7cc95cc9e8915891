package cpu

import "github.com/aaron-nuy/dmgcore/internal/instruction"

// execAlu applies one of the eight ALU ops against A and an operand
// value v, storing the result in A (except CP, which only sets
// flags) and updating Z/N/H/C.
func (c *CPU) execAlu(op instruction.AluOp, v uint8) {
	switch op {
	case instruction.AluAdd:
		c.add(v, false)
	case instruction.AluAdc:
		c.add(v, c.Reg.Flag(flagCarry))
	case instruction.AluSub:
		c.sub(v, false, true)
	case instruction.AluSbc:
		c.sub(v, c.Reg.Flag(flagCarry), true)
	case instruction.AluAnd:
		c.Reg.A &= v
		c.setZNHC(c.Reg.A == 0, false, true, false)
	case instruction.AluXor:
		c.Reg.A ^= v
		c.setZNHC(c.Reg.A == 0, false, false, false)
	case instruction.AluOr:
		c.Reg.A |= v
		c.setZNHC(c.Reg.A == 0, false, false, false)
	case instruction.AluCp:
		c.sub(v, false, false)
	}
}

// add computes A = A + v (+ carryIn), setting Z/N/H/C. Half-carry is
// a bit-3 carry, carry a bit-7 carry; both are computed by widening to
// int and comparing nibble/byte sums so the carry-in folds in exactly
// once.
func (c *CPU) add(v uint8, carryIn bool) {
	a := c.Reg.A
	var ci uint8
	if carryIn {
		ci = 1
	}
	sum := uint16(a) + uint16(v) + uint16(ci)
	halfSum := (a & 0x0F) + (v & 0x0F) + ci
	c.Reg.A = uint8(sum)
	c.setZNHC(c.Reg.A == 0, false, halfSum > 0x0F, sum > 0xFF)
}

// sub computes A - v (- carryIn), writing the result back to A unless
// store is false (the CP case, which only sets flags).
func (c *CPU) sub(v uint8, carryIn bool, store bool) {
	a := c.Reg.A
	var ci uint8
	if carryIn {
		ci = 1
	}
	result := int16(a) - int16(v) - int16(ci)
	halfResult := int16(a&0x0F) - int16(v&0x0F) - int16(ci)
	if store {
		c.Reg.A = uint8(result)
	}
	c.setZNHC(uint8(result) == 0, true, halfResult < 0, result < 0)
}
