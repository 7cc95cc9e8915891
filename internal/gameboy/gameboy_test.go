package gameboy

import "testing"

func TestStep_RunsAProgram(t *testing.T) {
	rom := make([]byte, 0x150)
	// at 0x100: LD A,0x42 ; LD B,A ; JP 0x100 (loops forever)
	copy(rom[0x100:], []byte{0x3E, 0x42, 0x47, 0xC3, 0x00, 0x01})
	gb := New(rom)

	gb.Step() // LD A,0x42
	if gb.CPU.Reg.A != 0x42 {
		t.Fatalf("expected A=0x42, got 0x%02X", gb.CPU.Reg.A)
	}
	gb.Step() // LD B,A
	if gb.CPU.Reg.B != 0x42 {
		t.Fatalf("expected B=0x42, got 0x%02X", gb.CPU.Reg.B)
	}
	gb.Step() // JP 0x0100
	if gb.CPU.Reg.PC != 0x0100 {
		t.Fatalf("expected PC looped back to 0x0100, got 0x%04X", gb.CPU.Reg.PC)
	}
}

func TestWithSerialOut_CapturesTestROMOutput(t *testing.T) {
	rom := make([]byte, 0x150)
	// LD A,'A' ; LD [0xFF01],A ; LD A,0x81 ; LD [0xFF02],A
	copy(rom[0x100:], []byte{
		0x3E, 'A',
		0xEA, 0x01, 0xFF,
		0x3E, 0x81,
		0xEA, 0x02, 0xFF,
	})
	var out captureWriter
	gb := New(rom, WithSerialOut(&out))
	for i := 0; i < 4; i++ {
		gb.Step()
	}
	if out.s != "A" {
		t.Errorf("expected serial output \"A\", got %q", out.s)
	}
}

type captureWriter struct{ s string }

func (c *captureWriter) Write(p []byte) (int, error) {
	c.s += string(p)
	return len(p), nil
}
