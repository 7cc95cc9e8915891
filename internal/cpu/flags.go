package cpu

import (
	"github.com/aaron-nuy/dmgcore/internal/bits"
	"github.com/aaron-nuy/dmgcore/internal/operand"
	"github.com/aaron-nuy/dmgcore/internal/register"
)

// Local short names for the four flag bits, matching the teacher's
// habit of aliasing register.Flag constants inside the CPU package so
// the arithmetic below reads Z/N/H/C instead of register.FlagZero.
const (
	flagZero      = register.FlagZero
	flagSubtract  = register.FlagSubtract
	flagHalfCarry = register.FlagHalfCarry
	flagCarry     = register.FlagCarry
)

func setBit(v uint8, b operand.Bit) uint8   { return bits.Set(v, b.ToByte()) }
func clearBit(v uint8, b operand.Bit) uint8 { return bits.Reset(v, b.ToByte()) }
func testBit(v uint8, b operand.Bit) bool   { return bits.Test(v, b.ToByte()) }

// setZNHC is a small convenience for the common case of writing all
// four flags in one call.
func (c *CPU) setZNHC(z, n, h, cy bool) {
	c.Reg.SetFlag(flagZero, z)
	c.Reg.SetFlag(flagSubtract, n)
	c.Reg.SetFlag(flagHalfCarry, h)
	c.Reg.SetFlag(flagCarry, cy)
}
