package cpu

import (
	"github.com/aaron-nuy/dmgcore/internal/bus"
	"github.com/aaron-nuy/dmgcore/internal/instruction"
	"github.com/aaron-nuy/dmgcore/internal/operand"
)

// readR8 reads the value named by r, treating R8_HLInd as "the byte
// at memory[HL]" rather than a register.
func (c *CPU) readR8(b *bus.Bus, r operand.R8) uint8 {
	switch r {
	case operand.R8_B:
		return c.Reg.B
	case operand.R8_C:
		return c.Reg.C
	case operand.R8_D:
		return c.Reg.D
	case operand.R8_E:
		return c.Reg.E
	case operand.R8_H:
		return c.Reg.H
	case operand.R8_L:
		return c.Reg.L
	case operand.R8_HLInd:
		return b.Read8(c.Reg.HL())
	case operand.R8_A:
		return c.Reg.A
	}
	panic("cpu: invalid R8 operand")
}

// writeR8 is the inverse of readR8.
func (c *CPU) writeR8(b *bus.Bus, r operand.R8, v uint8) {
	switch r {
	case operand.R8_B:
		c.Reg.B = v
	case operand.R8_C:
		c.Reg.C = v
	case operand.R8_D:
		c.Reg.D = v
	case operand.R8_E:
		c.Reg.E = v
	case operand.R8_H:
		c.Reg.H = v
	case operand.R8_L:
		c.Reg.L = v
	case operand.R8_HLInd:
		b.Write8(c.Reg.HL(), v)
	case operand.R8_A:
		c.Reg.A = v
	default:
		panic("cpu: invalid R8 operand")
	}
}

func (c *CPU) readR16(r operand.R16) uint16 {
	switch r {
	case operand.R16_BC:
		return c.Reg.BC()
	case operand.R16_DE:
		return c.Reg.DE()
	case operand.R16_HL:
		return c.Reg.HL()
	case operand.R16_SP:
		return c.Reg.SP
	}
	panic("cpu: invalid R16 operand")
}

func (c *CPU) writeR16(r operand.R16, v uint16) {
	switch r {
	case operand.R16_BC:
		c.Reg.SetBC(v)
	case operand.R16_DE:
		c.Reg.SetDE(v)
	case operand.R16_HL:
		c.Reg.SetHL(v)
	case operand.R16_SP:
		c.Reg.SP = v
	}
}

func (c *CPU) readR16Mem(r operand.R16Mem) uint16 {
	switch r {
	case operand.R16Mem_BC:
		return c.Reg.BC()
	case operand.R16Mem_DE:
		return c.Reg.DE()
	case operand.R16Mem_HLI, operand.R16Mem_HLD:
		return c.Reg.HL()
	}
	panic("cpu: invalid R16Mem operand")
}

// stepR16Mem applies the post-increment/post-decrement an R16Mem
// operand implies, a no-op for the plain BC/DE forms.
func (c *CPU) stepR16Mem(r operand.R16Mem) {
	switch r {
	case operand.R16Mem_HLI:
		c.Reg.SetHL(c.Reg.HL() + 1)
	case operand.R16Mem_HLD:
		c.Reg.SetHL(c.Reg.HL() - 1)
	}
}

func (c *CPU) readR16Stk(r operand.R16Stk) uint16 {
	switch r {
	case operand.R16Stk_BC:
		return c.Reg.BC()
	case operand.R16Stk_DE:
		return c.Reg.DE()
	case operand.R16Stk_HL:
		return c.Reg.HL()
	case operand.R16Stk_AF:
		return c.Reg.AF()
	}
	panic("cpu: invalid R16Stk operand")
}

func (c *CPU) writeR16Stk(r operand.R16Stk, v uint16) {
	switch r {
	case operand.R16Stk_BC:
		c.Reg.SetBC(v)
	case operand.R16Stk_DE:
		c.Reg.SetDE(v)
	case operand.R16Stk_HL:
		c.Reg.SetHL(v)
	case operand.R16Stk_AF:
		c.Reg.SetAF(v)
	}
}

func (c *CPU) checkCond(cond operand.Condition) bool {
	switch cond {
	case operand.CondNotZero:
		return !c.Reg.Flag(flagZero)
	case operand.CondZero:
		return c.Reg.Flag(flagZero)
	case operand.CondNotCarry:
		return !c.Reg.Flag(flagCarry)
	case operand.CondCarry:
		return c.Reg.Flag(flagCarry)
	}
	panic("cpu: invalid condition")
}

func (c *CPU) pushStack16(b *bus.Bus, v uint16) {
	c.Reg.SP -= 2
	b.Write16(c.Reg.SP, v)
}

func (c *CPU) popStack16(b *bus.Bus) uint16 {
	v := b.Read16(c.Reg.SP)
	c.Reg.SP += 2
	return v
}

// execute runs instr's semantics against b and returns its machine
// cycle cost, taking the taken/not-taken branch costs from spec §6
// into account where relevant.
func (c *CPU) execute(b *bus.Bus, instr instruction.Instruction) uint8 {
	switch instr.Op {
	case instruction.NOP:
		return 1
	case instruction.Stop:
		c.enterHalt(b)
		return 1
	case instruction.Halt:
		c.enterHalt(b)
		return 1
	case instruction.Di:
		c.ime = false
		c.eiPending = false
		return 1
	case instruction.Ei:
		c.eiPending = true
		return 1

	case instruction.LdR16Imm16:
		c.writeR16(instr.R16, instr.Imm16)
		return 3
	case instruction.LdImm16IndSP:
		b.Write16(instr.Imm16, c.Reg.SP)
		return 5
	case instruction.LdR16MemA:
		addr := c.readR16Mem(instr.R16Mem)
		b.Write8(addr, c.Reg.A)
		c.stepR16Mem(instr.R16Mem)
		return 2
	case instruction.LdAR16Mem:
		addr := c.readR16Mem(instr.R16Mem)
		c.Reg.A = b.Read8(addr)
		c.stepR16Mem(instr.R16Mem)
		return 2
	case instruction.LdImm16IndA:
		b.Write8(instr.Imm16, c.Reg.A)
		return 4
	case instruction.LdAImm16Ind:
		c.Reg.A = b.Read8(instr.Imm16)
		return 4
	case instruction.LdhCIndA:
		b.Write8(0xFF00+uint16(c.Reg.C), c.Reg.A)
		return 2
	case instruction.LdhACInd:
		c.Reg.A = b.Read8(0xFF00 + uint16(c.Reg.C))
		return 2
	case instruction.LdhImm8IndA:
		b.Write8(0xFF00+uint16(instr.Imm8), c.Reg.A)
		return 3
	case instruction.LdhAImm8Ind:
		c.Reg.A = b.Read8(0xFF00 + uint16(instr.Imm8))
		return 3
	case instruction.LdSPHL:
		c.Reg.SP = c.Reg.HL()
		return 2
	case instruction.LdR8Imm8:
		c.writeR8(b, instr.R8a, instr.Imm8)
		if instr.R8a == operand.R8_HLInd {
			return 3
		}
		return 2
	case instruction.LdR8R8:
		c.writeR8(b, instr.R8a, c.readR8(b, instr.R8b))
		if instr.R8a == operand.R8_HLInd || instr.R8b == operand.R8_HLInd {
			return 2
		}
		return 1

	case instruction.IncR8:
		c.execIncR8(b, instr.R8a)
		if instr.R8a == operand.R8_HLInd {
			return 3
		}
		return 1
	case instruction.DecR8:
		c.execDecR8(b, instr.R8a)
		if instr.R8a == operand.R8_HLInd {
			return 3
		}
		return 1
	case instruction.IncR16:
		c.writeR16(instr.R16, c.readR16(instr.R16)+1)
		return 2
	case instruction.DecR16:
		c.writeR16(instr.R16, c.readR16(instr.R16)-1)
		return 2
	case instruction.AddHLR16:
		c.execAddHL(instr.R16)
		return 2
	case instruction.AddSPImm8:
		c.execAddSP(instr.SImm8)
		return 4
	case instruction.LdHLSPImm8:
		c.execLdHLSPImm8(instr.SImm8)
		return 3

	case instruction.Rlca:
		c.execRLCA()
		return 1
	case instruction.Rrca:
		c.execRRCA()
		return 1
	case instruction.Rla:
		c.execRLA()
		return 1
	case instruction.Rra:
		c.execRRA()
		return 1
	case instruction.Daa:
		c.execDAA()
		return 1
	case instruction.Cpl:
		c.Reg.A = ^c.Reg.A
		c.Reg.SetFlag(flagSubtract, true)
		c.Reg.SetFlag(flagHalfCarry, true)
		return 1
	case instruction.Scf:
		c.Reg.SetFlag(flagSubtract, false)
		c.Reg.SetFlag(flagHalfCarry, false)
		c.Reg.SetFlag(flagCarry, true)
		return 1
	case instruction.Ccf:
		c.Reg.SetFlag(flagSubtract, false)
		c.Reg.SetFlag(flagHalfCarry, false)
		c.Reg.SetFlag(flagCarry, !c.Reg.Flag(flagCarry))
		return 1

	case instruction.AluR8:
		v := c.readR8(b, instr.R8a)
		c.execAlu(instr.Alu, v)
		if instr.R8a == operand.R8_HLInd {
			return 2
		}
		return 1
	case instruction.AluImm8:
		c.execAlu(instr.Alu, instr.Imm8)
		return 2

	case instruction.ShiftR8:
		v := c.readR8(b, instr.R8a)
		v = c.execShift(instr.Shift, v)
		c.writeR8(b, instr.R8a, v)
		if instr.R8a == operand.R8_HLInd {
			return 4
		}
		return 2
	case instruction.BitR8:
		v := c.readR8(b, instr.R8a)
		c.execBit(instr.Bit, v)
		if instr.R8a == operand.R8_HLInd {
			return 3
		}
		return 2
	case instruction.ResR8:
		v := c.readR8(b, instr.R8a)
		c.writeR8(b, instr.R8a, clearBit(v, instr.Bit))
		if instr.R8a == operand.R8_HLInd {
			return 4
		}
		return 2
	case instruction.SetR8:
		v := c.readR8(b, instr.R8a)
		c.writeR8(b, instr.R8a, setBit(v, instr.Bit))
		if instr.R8a == operand.R8_HLInd {
			return 4
		}
		return 2

	case instruction.JrImm8:
		c.Reg.PC = uint16(int32(c.Reg.PC) + int32(instr.SImm8))
		return 3
	case instruction.JrCondImm8:
		if c.checkCond(instr.Cond) {
			c.Reg.PC = uint16(int32(c.Reg.PC) + int32(instr.SImm8))
			return 3
		}
		return 2
	case instruction.JpImm16:
		c.Reg.PC = instr.Imm16
		return 4
	case instruction.JpCondImm16:
		if c.checkCond(instr.Cond) {
			c.Reg.PC = instr.Imm16
			return 4
		}
		return 3
	case instruction.JpHL:
		c.Reg.PC = c.Reg.HL()
		return 1
	case instruction.CallImm16:
		c.pushStack16(b, c.Reg.PC)
		c.Reg.PC = instr.Imm16
		return 6
	case instruction.CallCondImm16:
		if c.checkCond(instr.Cond) {
			c.pushStack16(b, c.Reg.PC)
			c.Reg.PC = instr.Imm16
			return 6
		}
		return 3
	case instruction.Ret:
		c.Reg.PC = c.popStack16(b)
		return 4
	case instruction.RetCond:
		if c.checkCond(instr.Cond) {
			c.Reg.PC = c.popStack16(b)
			return 5
		}
		return 2
	case instruction.Reti:
		c.Reg.PC = c.popStack16(b)
		c.ime = true
		c.eiPending = false
		return 4
	case instruction.Rst:
		c.pushStack16(b, c.Reg.PC)
		c.Reg.PC = instr.Tgt.Address()
		return 4
	case instruction.PushR16Stk:
		c.pushStack16(b, c.readR16Stk(instr.R16Stk))
		return 4
	case instruction.PopR16Stk:
		c.writeR16Stk(instr.R16Stk, c.popStack16(b))
		return 3
	}

	panic("cpu: unimplemented instruction " + instr.String())
}
