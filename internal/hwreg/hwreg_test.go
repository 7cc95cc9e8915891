package hwreg

import (
	"bytes"
	"testing"

	"github.com/aaron-nuy/dmgcore/internal/interrupt"
)

func TestDIV_WriteAlwaysResetsToZero(t *testing.T) {
	f := New(nil)
	f.IncDiv()
	f.IncDiv()
	if f.Read(DIV) == 0 {
		t.Fatal("expected DIV to have advanced off zero")
	}
	f.Write(DIV, 0xFF)
	if f.Read(DIV) != 0 {
		t.Errorf("expected a DIV write to reset it to 0 regardless of value, got 0x%02X", f.Read(DIV))
	}
}

func TestTAC_WriteFiresHook(t *testing.T) {
	f := New(nil)
	var got uint8
	var called bool
	f.OnTACWrite(func(tac uint8) {
		called = true
		got = tac
	})
	f.Write(TAC, 0x05)
	if !called {
		t.Fatal("expected the TAC write hook to fire")
	}
	if got != 0x05 {
		t.Errorf("expected hook to see 0x05, got 0x%02X", got)
	}
	if f.TAC() != 0x05 {
		t.Errorf("expected stored TAC=0x05, got 0x%02X", f.TAC())
	}
}

func TestSC_SerialEmitsSBAndClearsBit7(t *testing.T) {
	f := New(nil)
	var out bytes.Buffer
	f.Out = &out
	f.Write(SB, 'A')
	f.Write(SC, 0x81)
	if out.String() != "A" {
		t.Errorf("expected 'A' written to Out, got %q", out.String())
	}
	if f.Read(SC)&0x80 != 0 {
		t.Error("expected bit 7 of SC to be cleared after the transfer fires")
	}
}

func TestInterruptMaskRoundTrip(t *testing.T) {
	f := New(nil)
	f.TriggerInterrupt(interrupt.Timer)
	if f.IF()&interrupt.Timer.Mask() == 0 {
		t.Fatal("expected Timer's IF bit to be set")
	}
	f.ClearInterrupt(interrupt.Timer)
	if f.IF()&interrupt.Timer.Mask() != 0 {
		t.Error("expected Timer's IF bit to be cleared")
	}
}

func TestPowerOnDefaults(t *testing.T) {
	f := New(nil)
	if f.Read(0xFF40) != 0x91 {
		t.Errorf("expected LCDC power-on default 0x91, got 0x%02X", f.Read(0xFF40))
	}
}

func TestIsMapped(t *testing.T) {
	for _, addr := range []uint16{P1, SB, SC, DIV, TIMA, TMA, TAC, IF, IE, 0xFF20, 0xFF44} {
		if !IsMapped(addr) {
			t.Errorf("expected 0x%04X to be mapped", addr)
		}
	}
	if IsMapped(0xC000) {
		t.Error("expected WRAM address not to be mapped")
	}
}
