package cpu

import (
	"testing"

	"github.com/aaron-nuy/dmgcore/internal/bus"
)

// newTestCPU returns a CPU and Bus pair with IME and halt state reset
// to a clean slate, so individual tests don't inherit the DMG
// power-on defaults unless they want to.
func newTestCPU() (*CPU, *bus.Bus) {
	c := New(nil)
	b := bus.New(nil)
	c.Reg.F = 0
	c.ime = false
	c.halted = false
	return c, b
}

func flagsSet(c *CPU, flags ...uint8) bool {
	for _, f := range flags {
		if !c.Reg.Flag(f) {
			return false
		}
	}
	return true
}

func flagsClear(c *CPU, flags ...uint8) bool {
	for _, f := range flags {
		if c.Reg.Flag(f) {
			return false
		}
	}
	return true
}

func TestClock_NOP(t *testing.T) {
	c, b := newTestCPU()
	c.Reg.PC = 0xC000
	b.Write8(0xC000, 0x00)

	cycles := c.Clock(b)
	if cycles != 1 {
		t.Errorf("expected NOP to take 1 cycle, got %d", cycles)
	}
	if c.Reg.PC != 0xC001 {
		t.Errorf("expected PC to advance to 0xC001, got 0x%04X", c.Reg.PC)
	}
}

func TestClock_HaltBurnsACycleWithoutFetching(t *testing.T) {
	c, b := newTestCPU()
	c.halted = true
	c.Reg.PC = 0xC000
	b.Write8(0xC000, 0xFF) // would be RST 38 if fetched

	cycles := c.Clock(b)
	if cycles != 1 {
		t.Errorf("expected halted CPU to burn 1 cycle, got %d", cycles)
	}
	if c.Reg.PC != 0xC000 {
		t.Errorf("expected PC to stay at 0xC000 while halted, got 0x%04X", c.Reg.PC)
	}
}

func TestClock_PendingInterruptWakesHaltedCPU(t *testing.T) {
	c, b := newTestCPU()
	c.halted = true
	c.ime = false
	b.HardwareRegisters().Write(0xFFFF, 0x01) // IE: VBlank
	b.TriggerInterrupt(0)                     // interrupt.VBlank == 0

	c.Clock(b)
	if c.halted {
		t.Error("expected a pending interrupt to clear halted even with IME disabled")
	}
}

func TestClock_DispatchesHighestPriorityInterrupt(t *testing.T) {
	c, b := newTestCPU()
	c.ime = true
	c.Reg.PC = 0xC000
	c.Reg.SP = 0xFFFE
	b.HardwareRegisters().Write(0xFFFF, 0x1F) // IE: everything
	b.TriggerInterrupt(0)                     // VBlank
	b.TriggerInterrupt(2)                     // Timer

	cycles := c.Clock(b)
	if cycles != 5 {
		t.Errorf("expected interrupt dispatch to take 5 cycles, got %d", cycles)
	}
	if c.Reg.PC != 0x40 {
		t.Errorf("expected dispatch to VBlank's vector 0x40 (highest priority), got 0x%04X", c.Reg.PC)
	}
	if c.ime {
		t.Error("expected IME to be cleared by dispatch")
	}
	if b.IF()&0x01 != 0 {
		t.Error("expected VBlank's IF bit to be cleared by dispatch")
	}
	if b.IF()&0x04 == 0 {
		t.Error("expected Timer's IF bit to remain set")
	}
	if c.popStack16(b) != 0xC000 {
		t.Error("expected the pre-dispatch PC to have been pushed")
	}
}

func TestClock_EIDelaysIMEByOneInstruction(t *testing.T) {
	c, b := newTestCPU()
	c.Reg.PC = 0xC000
	b.Write8(0xC000, 0xFB) // EI
	b.Write8(0xC001, 0x00) // NOP
	b.HardwareRegisters().Write(0xFFFF, 0x01)
	b.TriggerInterrupt(0)

	c.Clock(b) // executes EI; IME must still be false going into the next step
	if c.ime {
		t.Error("expected IME to still be false immediately after EI")
	}

	c.Clock(b) // IME promotion happens before this fetch, then NOP runs, not a dispatch
	if !c.ime {
		t.Error("expected IME to be true after the instruction following EI")
	}
	if c.Reg.PC != 0xC002 {
		t.Error("expected the pending interrupt not to have been dispatched on the EI-delay boundary itself")
	}
}

func TestEnterHalt_HaltBugWhenIMEOffAndInterruptPending(t *testing.T) {
	c, b := newTestCPU()
	c.ime = false
	b.HardwareRegisters().Write(0xFFFF, 0x01)
	b.TriggerInterrupt(0)

	c.enterHalt(b)
	if c.halted {
		t.Error("expected the halt bug path, not a real halt")
	}
	if !c.haltBugPending {
		t.Error("expected haltBugPending to be set")
	}
}

func TestEnterHalt_RealHaltWhenNothingPending(t *testing.T) {
	c, b := newTestCPU()
	c.ime = false

	c.enterHalt(b)
	if !c.halted {
		t.Error("expected a real halt when IME is off and nothing is pending")
	}
	if c.haltBugPending {
		t.Error("did not expect the halt bug when nothing is pending")
	}
}
