// Package register implements the LR35902 register file: the eight
// 8-bit registers, the two 16-bit registers SP and PC, and the four
// virtual 16-bit pairs AF/BC/DE/HL that compose two 8-bit registers
// big-endian.
package register

import "github.com/aaron-nuy/dmgcore/internal/bits"

// Flag identifies one of the four bits of F that carry meaning; the
// low nibble of F always reads as zero.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// File is the CPU's register file. A and F are kept alongside the
// other single-byte registers rather than split into a separate
// "accumulator and flags" type, matching how AF is read and written
// just like any other pair.
type File struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8

	SP uint16
	PC uint16
}

// New returns a register file in the documented DMG power-on state.
func New() *File {
	return &File{
		A: 0x01, F: 0xB0,
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
}

// AF returns the virtual pair A:F, with the low nibble of F masked to
// zero per the invariant that those bits never carry information.
func (r *File) AF() uint16 {
	return uint16(r.A)<<8 | uint16(r.F&0xF0)
}

// SetAF sets A and F from a 16-bit value. F's low nibble is always
// masked off, since POP AF is the only write path that can reach it.
func (r *File) SetAF(v uint16) {
	r.A = uint8(v >> 8)
	r.F = uint8(v) & 0xF0
}

func (r *File) BC() uint16      { return uint16(r.B)<<8 | uint16(r.C) }
func (r *File) SetBC(v uint16)  { r.B, r.C = uint8(v>>8), uint8(v) }
func (r *File) DE() uint16      { return uint16(r.D)<<8 | uint16(r.E) }
func (r *File) SetDE(v uint16)  { r.D, r.E = uint8(v>>8), uint8(v) }
func (r *File) HL() uint16      { return uint16(r.H)<<8 | uint16(r.L) }
func (r *File) SetHL(v uint16)  { r.H, r.L = uint8(v>>8), uint8(v) }

// SetFlag sets or clears flag according to on.
func (r *File) SetFlag(flag Flag, on bool) {
	if on {
		r.F = bits.Set(r.F, flag)
	} else {
		r.F = bits.Reset(r.F, flag)
	}
	r.F &= 0xF0
}

// Flag reports whether the given flag bit is set.
func (r *File) Flag(flag Flag) bool {
	return bits.Test(r.F, flag)
}
