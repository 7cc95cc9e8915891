// Package bus implements the unified 64 KiB address space: a single
// read/write entry point that routes to flat RAM or to the
// hardware-register file, plus little-endian 16-bit accessors and ROM
// loading.
package bus

import (
	"github.com/sirupsen/logrus"

	"github.com/aaron-nuy/dmgcore/internal/hwreg"
	"github.com/aaron-nuy/dmgcore/internal/interrupt"
)

// bootROMEnd is the size of the DMG boot ROM overlay; while active it
// shadows cartridge ROM at 0x0000-0x00FF (see SPEC_FULL.md's boot-ROM
// supplement).
const bootROMEnd = 0x0100

// bootDisableAddr is the address a booting cartridge writes to switch
// the boot ROM back out of the address space.
const bootDisableAddr uint16 = 0xFF50

// Bus is the Game Boy's 64 KiB address space. It owns flat RAM and
// delegates the hardware-register addresses to a hwreg.File.
type Bus struct {
	ram [0x10000]byte
	hw  *hwreg.File

	bootROM      []byte
	bootDisabled bool

	log *logrus.Logger
}

// New returns a Bus with a freshly constructed hardware-register
// file.
func New(log *logrus.Logger) *Bus {
	return &Bus{
		hw:           hwreg.New(log),
		bootDisabled: true,
		log:          log,
	}
}

// HardwareRegisters exposes the bus's register file, primarily so the
// timer can register its TAC write hook and so tests can inspect
// register state directly.
func (b *Bus) HardwareRegisters() *hwreg.File { return b.hw }

// LoadROM copies bytes into RAM starting at address 0, up to
// min(len(bytes), 65536). No bank-switching is implemented.
func (b *Bus) LoadROM(data []byte) {
	copy(b.ram[:], data)
}

// LoadBootROM installs a boot ROM overlay over the low 256 bytes of
// the address space; it stays visible until a write to 0xFF50 (the
// boot-ROM-disable register) retires it.
func (b *Bus) LoadBootROM(data []byte) {
	b.bootROM = data
	b.bootDisabled = len(data) == 0
}

// Read8 reads a single byte, routing to the boot ROM overlay, the
// hardware-register file, or flat RAM.
func (b *Bus) Read8(addr uint16) uint8 {
	if !b.bootDisabled && addr < bootROMEnd && int(addr) < len(b.bootROM) {
		return b.bootROM[addr]
	}
	if hwreg.IsMapped(addr) {
		return b.hw.Read(addr)
	}
	return b.ram[addr]
}

// Write8 writes a single byte, routing to the boot-disable latch, the
// hardware-register file, or flat RAM.
func (b *Bus) Write8(addr uint16, value uint8) {
	if addr == bootDisableAddr {
		b.bootDisabled = true
	}
	if hwreg.IsMapped(addr) {
		b.hw.Write(addr, value)
		return
	}
	b.ram[addr] = value
}

// Read16 reads a little-endian 16-bit value from addr and addr+1,
// wrapping at 0x10000.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(lo) | uint16(hi)<<8
}

// Write16 writes a little-endian 16-bit value to addr and addr+1,
// wrapping at 0x10000.
func (b *Bus) Write16(addr uint16, value uint16) {
	b.Write8(addr, uint8(value))
	b.Write8(addr+1, uint8(value>>8))
}

// IncDiv bypasses the user-visible DIV write (which resets it to
// zero) to let the timer increment DIV with wraparound.
func (b *Bus) IncDiv() { b.hw.IncDiv() }

// TriggerInterrupt sets kind's bit in IF.
func (b *Bus) TriggerInterrupt(kind interrupt.Kind) { b.hw.TriggerInterrupt(kind) }

// ClearInterrupt clears kind's bit in IF.
func (b *Bus) ClearInterrupt(kind interrupt.Kind) { b.hw.ClearInterrupt(kind) }

// IE returns the interrupt-enable mask.
func (b *Bus) IE() uint8 { return b.hw.IE() }

// IF returns the interrupt-flag byte.
func (b *Bus) IF() uint8 { return b.hw.IF() }

// PendingInterrupt selects the highest-priority interrupt that is
// both enabled and requested.
func (b *Bus) PendingInterrupt() (interrupt.Kind, bool) { return b.hw.Pending() }
