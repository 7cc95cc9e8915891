package instruction

import "github.com/aaron-nuy/dmgcore/internal/operand"

// rp is the register-pair table selected by the 2-bit p field in
// block 0 (LD rp,nn / INC rp / DEC rp / ADD HL,rp).
var rp = [4]operand.R16{operand.R16_BC, operand.R16_DE, operand.R16_HL, operand.R16_SP}

// rp2 is the register-pair table selected by p in block 3's PUSH/POP,
// substituting AF for SP at position 3.
var rp2 = [4]operand.R16Stk{operand.R16Stk_BC, operand.R16Stk_DE, operand.R16Stk_HL, operand.R16Stk_AF}

// rmem is the register-pair-with-auto-step table selected by p in
// block 0's LD [r16mem],A / LD A,[r16mem].
var rmem = [4]operand.R16Mem{operand.R16Mem_BC, operand.R16Mem_DE, operand.R16Mem_HLI, operand.R16Mem_HLD}

// cc is the condition table selected by the 2-bit y&3 field.
var cc = [4]operand.Condition{operand.CondNotZero, operand.CondZero, operand.CondNotCarry, operand.CondCarry}

// aluOps is the 8-entry arithmetic/logical table selected by y in
// block 2 and block 3's immediate-ALU form.
var aluOps = [8]AluOp{AluAdd, AluAdc, AluSub, AluSbc, AluAnd, AluXor, AluOr, AluCp}

// shiftOps is the 8-entry rotate/shift/swap table selected by y in
// the CB block's first quarter.
var shiftOps = [8]ShiftOp{ShiftRlc, ShiftRrc, ShiftRl, ShiftRr, ShiftSla, ShiftSra, ShiftSwap, ShiftSrl}

// Decode turns up to three fetched bytes into a structured
// Instruction and its size in bytes. b1 and b2 are read speculatively
// by the caller; Decode itself never reads more bytes than the
// returned size says it needed.
//
// The classic xxyyyzzz decomposition of b0 (block in bits 6-7, y in
// bits 3-5 further split into p/q, z in bits 0-2) drives dispatch;
// 0xCB vectors unconditionally to decodeCB on b1.
func Decode(b0, b1, b2 uint8) (Instruction, uint8) {
	if b0 == 0xCB {
		ins := decodeCB(b1)
		return ins, 2
	}

	x := b0 >> 6
	y := (b0 >> 3) & 7
	z := b0 & 7
	p := y >> 1
	q := y & 1
	imm16 := uint16(b1) | uint16(b2)<<8

	switch x {
	case 0:
		return decodeBlock0(b0, y, z, p, q, b1, imm16)
	case 1:
		return decodeBlock1(y, z)
	case 2:
		return Instruction{Op: AluR8, Alu: aluOps[y], R8a: operand.R8FromByte(z)}, 1
	case 3:
		return decodeBlock3(y, z, p, q, b1, imm16)
	}
	panic(&IllegalOpcodeError{Byte: b0})
}

func decodeBlock0(b0, y, z, p, q uint8, imm8 uint8, imm16 uint16) (Instruction, uint8) {
	switch z {
	case 0:
		switch {
		case y == 0:
			return Instruction{Op: NOP}, 1
		case y == 1:
			return Instruction{Op: LdImm16IndSP, Imm16: imm16}, 3
		case y == 2:
			return Instruction{Op: Stop}, 2
		case y == 3:
			return Instruction{Op: JrImm8, SImm8: int8(imm8)}, 2
		default: // y in 4..7: JR cc[y-4], d
			return Instruction{Op: JrCondImm8, Cond: cc[y-4], SImm8: int8(imm8)}, 2
		}
	case 1:
		if q == 0 {
			return Instruction{Op: LdR16Imm16, R16: rp[p], Imm16: imm16}, 3
		}
		return Instruction{Op: AddHLR16, R16: rp[p]}, 1
	case 2:
		if q == 0 {
			return Instruction{Op: LdR16MemA, R16Mem: rmem[p]}, 1
		}
		return Instruction{Op: LdAR16Mem, R16Mem: rmem[p]}, 1
	case 3:
		if q == 0 {
			return Instruction{Op: IncR16, R16: rp[p]}, 1
		}
		return Instruction{Op: DecR16, R16: rp[p]}, 1
	case 4:
		return Instruction{Op: IncR8, R8a: operand.R8FromByte(y)}, 1
	case 5:
		return Instruction{Op: DecR8, R8a: operand.R8FromByte(y)}, 1
	case 6:
		return Instruction{Op: LdR8Imm8, R8a: operand.R8FromByte(y), Imm8: imm8}, 2
	case 7:
		return decodeBlock0Misc(y), 1
	}
	panic(&IllegalOpcodeError{Byte: b0})
}

func decodeBlock0Misc(y uint8) Instruction {
	switch y {
	case 0:
		return Instruction{Op: Rlca}
	case 1:
		return Instruction{Op: Rrca}
	case 2:
		return Instruction{Op: Rla}
	case 3:
		return Instruction{Op: Rra}
	case 4:
		return Instruction{Op: Daa}
	case 5:
		return Instruction{Op: Cpl}
	case 6:
		return Instruction{Op: Scf}
	case 7:
		return Instruction{Op: Ccf}
	}
	panic(&IllegalOpcodeError{Byte: 0x07 | y<<3})
}

// decodeBlock1 is the LD r,r lattice; the single exception at y=6,z=6
// (LD [HL],[HL]) is HALT instead.
func decodeBlock1(y, z uint8) (Instruction, uint8) {
	if y == 6 && z == 6 {
		return Instruction{Op: Halt}, 1
	}
	return Instruction{Op: LdR8R8, R8a: operand.R8FromByte(y), R8b: operand.R8FromByte(z)}, 1
}

func decodeBlock3(y, z, p, q uint8, imm8 uint8, imm16 uint16) (Instruction, uint8) {
	switch z {
	case 0:
		switch {
		case y <= 3:
			return Instruction{Op: RetCond, Cond: cc[y]}, 1
		case y == 4:
			return Instruction{Op: LdhImm8IndA, Imm8: imm8}, 2
		case y == 5:
			return Instruction{Op: AddSPImm8, SImm8: int8(imm8)}, 2
		case y == 6:
			return Instruction{Op: LdhAImm8Ind, Imm8: imm8}, 2
		default: // y == 7
			return Instruction{Op: LdHLSPImm8, SImm8: int8(imm8)}, 2
		}
	case 1:
		if q == 0 {
			return Instruction{Op: PopR16Stk, R16Stk: rp2[p]}, 1
		}
		switch p {
		case 0:
			return Instruction{Op: Ret}, 1
		case 1:
			return Instruction{Op: Reti}, 1
		case 2:
			return Instruction{Op: JpHL}, 1
		default: // p == 3
			return Instruction{Op: LdSPHL}, 1
		}
	case 2:
		switch {
		case y <= 3:
			return Instruction{Op: JpCondImm16, Cond: cc[y], Imm16: imm16}, 3
		case y == 4:
			return Instruction{Op: LdhCIndA}, 1
		case y == 5:
			return Instruction{Op: LdImm16IndA, Imm16: imm16}, 3
		case y == 6:
			return Instruction{Op: LdhACInd}, 1
		default: // y == 7
			return Instruction{Op: LdAImm16Ind, Imm16: imm16}, 3
		}
	case 3:
		switch y {
		case 0:
			return Instruction{Op: JpImm16, Imm16: imm16}, 3
		case 6:
			return Instruction{Op: Di}, 1
		case 7:
			return Instruction{Op: Ei}, 1
		default:
			panic(&IllegalOpcodeError{Byte: 0xC3 | y<<3})
		}
	case 4:
		if y <= 3 {
			return Instruction{Op: CallCondImm16, Cond: cc[y], Imm16: imm16}, 3
		}
		panic(&IllegalOpcodeError{Byte: 0xC4 | y<<3})
	case 5:
		if q == 0 {
			return Instruction{Op: PushR16Stk, R16Stk: rp2[p]}, 1
		}
		if p == 0 {
			return Instruction{Op: CallImm16, Imm16: imm16}, 3
		}
		panic(&IllegalOpcodeError{Byte: 0xCD | p<<4 | q<<3})
	case 6:
		return Instruction{Op: AluImm8, Alu: aluOps[y], Imm8: imm8}, 2
	case 7:
		return Instruction{Op: Rst, Tgt: operand.ResetTargetFromByte(y)}, 1
	}
	panic(&IllegalOpcodeError{Byte: z})
}

func decodeCB(b1 uint8) Instruction {
	x2 := b1 >> 6
	y2 := (b1 >> 3) & 7
	z2 := b1 & 7
	r8 := operand.R8FromByte(z2)

	switch x2 {
	case 0:
		return Instruction{Op: ShiftR8, Shift: shiftOps[y2], R8a: r8}
	case 1:
		return Instruction{Op: BitR8, Bit: operand.BitFromByte(y2), R8a: r8}
	case 2:
		return Instruction{Op: ResR8, Bit: operand.BitFromByte(y2), R8a: r8}
	default: // 3
		return Instruction{Op: SetR8, Bit: operand.BitFromByte(y2), R8a: r8}
	}
}
