package register

import "testing"

func TestPairAccessors(t *testing.T) {
	r := New()
	r.SetBC(0x1234)
	if r.B != 0x12 || r.C != 0x34 {
		t.Errorf("expected B=0x12 C=0x34, got B=0x%02X C=0x%02X", r.B, r.C)
	}
	if r.BC() != 0x1234 {
		t.Errorf("expected BC()=0x1234, got 0x%04X", r.BC())
	}
}

func TestSetAF_MasksLowNibble(t *testing.T) {
	r := New()
	r.SetAF(0xABCD)
	if r.A != 0xAB {
		t.Errorf("expected A=0xAB, got 0x%02X", r.A)
	}
	if r.F != 0xC0 {
		t.Errorf("expected F's low nibble masked, got 0x%02X", r.F)
	}
	if r.AF() != 0xABC0 {
		t.Errorf("expected AF()=0xABC0, got 0x%04X", r.AF())
	}
}

func TestSetFlag(t *testing.T) {
	r := New()
	r.F = 0
	r.SetFlag(FlagZero, true)
	r.SetFlag(FlagCarry, true)
	if !r.Flag(FlagZero) || !r.Flag(FlagCarry) {
		t.Error("expected Zero and Carry set")
	}
	if r.Flag(FlagSubtract) || r.Flag(FlagHalfCarry) {
		t.Error("expected Subtract and HalfCarry clear")
	}
	r.SetFlag(FlagZero, false)
	if r.Flag(FlagZero) {
		t.Error("expected Zero cleared")
	}
}

func TestNew_PowerOnState(t *testing.T) {
	r := New()
	if r.AF() != 0x01B0 {
		t.Errorf("expected AF=0x01B0, got 0x%04X", r.AF())
	}
	if r.SP != 0xFFFE || r.PC != 0x0100 {
		t.Errorf("expected SP=0xFFFE PC=0x0100, got SP=0x%04X PC=0x%04X", r.SP, r.PC)
	}
}
