// Package cpu implements the Sharp LR35902 execution core: the
// fetch/decode/execute loop, register file, flag semantics, stack
// discipline, halt/stop states, and interrupt dispatch.
package cpu

import (
	"github.com/sirupsen/logrus"

	"github.com/aaron-nuy/dmgcore/internal/bus"
	"github.com/aaron-nuy/dmgcore/internal/instruction"
	"github.com/aaron-nuy/dmgcore/internal/interrupt"
	"github.com/aaron-nuy/dmgcore/internal/register"
)

// CPU is the Game Boy's CPU. It owns the register file and the small
// amount of auxiliary state (IME, the EI-delay flag, halt, and the
// halt-bug flag) that the fetch/decode/execute loop needs; it does
// not own memory, which it reaches exclusively through a *bus.Bus
// passed into Clock.
type CPU struct {
	Reg *register.File

	ime            bool
	eiPending      bool
	halted         bool
	haltBugPending bool

	// Cycles accumulates every machine cycle this CPU has ever
	// returned from Clock; it has no effect on emulation and exists
	// purely so callers (tests, a future debugger) can observe
	// elapsed time without wiring their own counter.
	Cycles uint64

	// Trace, when set, logs every decoded instruction at Trace level
	// before executing it. It is off by default so the hot loop stays
	// allocation-free.
	Trace bool
	log   *logrus.Logger
}

// New returns a CPU in the documented DMG power-on state.
func New(log *logrus.Logger) *CPU {
	return &CPU{
		Reg: register.New(),
		ime: true,
		log: log,
	}
}

// Clock executes exactly one step: interrupt check and possible
// dispatch, halt handling, the EI-delay promotion, and (if none of
// the above short-circuited the step) one fetch/decode/execute cycle.
// It returns the number of machine cycles the step consumed.
func (c *CPU) Clock(b *bus.Bus) uint8 {
	// Step 1: any pending interrupt clears halted, regardless of IME.
	kind, pending := b.PendingInterrupt()
	if pending {
		c.halted = false
	}

	// Step 2: with IME set and an interrupt pending, dispatch it.
	if c.ime && pending {
		c.dispatchInterrupt(b, kind)
		c.Cycles += 5
		return 5
	}

	// Step 3: halted CPUs burn a cycle without fetching.
	if c.halted {
		c.Cycles++
		return 1
	}

	// Step 4: EI's effect is delayed to the instruction boundary after
	// EI itself, never to the interrupt check that preceded it.
	if c.eiPending {
		c.ime = true
		c.eiPending = false
	}

	// Step 5/6: fetch, decode, advance PC (unless the halt bug
	// suppresses it), execute.
	pc := c.Reg.PC
	// Decode does not know the fetch address; record it on an
	// illegal-opcode panic before letting the panic continue.
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(*instruction.IllegalOpcodeError); ok {
				e.PC = pc
			}
			panic(r)
		}
	}()
	b0 := b.Read8(pc)
	b1 := b.Read8(pc + 1)
	b2 := b.Read8(pc + 2)
	instr, size := instruction.Decode(b0, b1, b2)

	if c.Trace && c.log != nil {
		c.log.WithField("pc", pc).Tracef("%s", instr)
	}

	if c.haltBugPending {
		c.haltBugPending = false
	} else {
		c.Reg.PC = pc + uint16(size)
	}

	cycles := c.execute(b, instr)
	c.Cycles += uint64(cycles)
	return cycles
}

// dispatchInterrupt implements spec §4.5 step 2: clear IME, clear the
// selected IF bit, push the pre-dispatch PC, jump to the handler
// vector.
func (c *CPU) dispatchInterrupt(b *bus.Bus, kind interrupt.Kind) {
	c.ime = false
	b.ClearInterrupt(kind)
	c.pushStack16(b, c.Reg.PC)
	c.Reg.PC = kind.Vector()
}

// enterHalt implements the three-way HALT/STOP branch of spec §4.5.
func (c *CPU) enterHalt(b *bus.Bus) {
	switch {
	case c.ime:
		c.halted = true
	default:
		_, pending := b.PendingInterrupt()
		if pending {
			c.haltBugPending = true
		} else {
			c.halted = true
		}
	}
}
