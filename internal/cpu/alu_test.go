package cpu

import (
	"testing"

	"github.com/aaron-nuy/dmgcore/internal/instruction"
)

func TestExecAlu_Add(t *testing.T) {
	t.Run("half carry and carry", func(t *testing.T) {
		c, _ := newTestCPU()
		c.Reg.A = 0xFF
		c.execAlu(instruction.AluAdd, 0x01)
		if c.Reg.A != 0x00 {
			t.Errorf("expected A=0x00, got 0x%02X", c.Reg.A)
		}
		if !flagsSet(c, flagZero, flagHalfCarry, flagCarry) || !flagsClear(c, flagSubtract) {
			t.Errorf("unexpected flags 0x%02X", c.Reg.F)
		}
	})
	t.Run("adc folds carry in once", func(t *testing.T) {
		c, _ := newTestCPU()
		c.Reg.A = 0x0E
		c.Reg.SetFlag(flagCarry, true)
		c.execAlu(instruction.AluAdc, 0x01)
		if c.Reg.A != 0x10 {
			t.Errorf("expected A=0x10, got 0x%02X", c.Reg.A)
		}
		if !flagsSet(c, flagHalfCarry) {
			t.Error("expected half carry from 0x0E+0x01+1")
		}
	})
}

func TestExecAlu_Sub(t *testing.T) {
	t.Run("borrow sets half carry and carry", func(t *testing.T) {
		c, _ := newTestCPU()
		c.Reg.A = 0x00
		c.execAlu(instruction.AluSub, 0x01)
		if c.Reg.A != 0xFF {
			t.Errorf("expected A=0xFF, got 0x%02X", c.Reg.A)
		}
		if !flagsSet(c, flagSubtract, flagHalfCarry, flagCarry) {
			t.Errorf("unexpected flags 0x%02X", c.Reg.F)
		}
	})
	t.Run("cp leaves A untouched", func(t *testing.T) {
		c, _ := newTestCPU()
		c.Reg.A = 0x10
		c.execAlu(instruction.AluCp, 0x10)
		if c.Reg.A != 0x10 {
			t.Error("expected CP to leave A unchanged")
		}
		if !flagsSet(c, flagZero) {
			t.Error("expected CP of equal values to set Zero")
		}
	})
}

func TestExecAlu_Logic(t *testing.T) {
	c, _ := newTestCPU()
	c.Reg.A = 0xF0
	c.execAlu(instruction.AluAnd, 0x0F)
	if c.Reg.A != 0x00 {
		t.Errorf("expected AND to zero A, got 0x%02X", c.Reg.A)
	}
	if !flagsSet(c, flagZero, flagHalfCarry) || !flagsClear(c, flagSubtract, flagCarry) {
		t.Errorf("AND should set H and Z only, got 0x%02X", c.Reg.F)
	}

	c.Reg.A = 0xF0
	c.execAlu(instruction.AluOr, 0x0F)
	if c.Reg.A != 0xFF {
		t.Errorf("expected OR to produce 0xFF, got 0x%02X", c.Reg.A)
	}
	if !flagsClear(c, flagZero, flagSubtract, flagHalfCarry, flagCarry) {
		t.Error("OR of a nonzero result should clear all flags")
	}

	c.Reg.A = 0xFF
	c.execAlu(instruction.AluXor, 0xFF)
	if c.Reg.A != 0x00 {
		t.Errorf("expected XOR with self to zero A, got 0x%02X", c.Reg.A)
	}
	if !flagsSet(c, flagZero) {
		t.Error("expected Zero after XOR with self")
	}
}
