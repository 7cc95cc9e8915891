// Package timer implements the DMG timer: DIV increments every 256
// clock cycles (T-cycles), and TIMA increments at a TAC-selected rate,
// reloading from TMA and raising the timer interrupt on overflow.
//
// This is a plain cycle-counter model, grounded on the teacher's
// internal/io/timer.Controller rather than its later scheduler-event
// based internal/timer.Controller: spec §3/§4.7 describe the timer
// purely in terms of two running cycle counters ticked by the host
// loop, with no event-queue abstraction, so the simpler of the
// teacher's two timer implementations is the closer fit (see
// DESIGN.md for why the scheduler-based variant was not adapted).
package timer

import (
	"github.com/aaron-nuy/dmgcore/internal/bus"
	"github.com/aaron-nuy/dmgcore/internal/interrupt"
)

// rateFromTAC maps TAC's low 2 bits to the number of clock cycles
// (T-cycles) per TIMA tick.
var rateFromTAC = [4]uint64{1024, 16, 64, 256}

const divInterval = 256

// Controller owns the timer's two independent cycle counters. It
// borrows the bus to read TAC/TMA/TIMA and to write TIMA/IF/DIV; it
// never owns any bus state directly.
type Controller struct {
	cyclesSinceDiv  uint64
	cyclesSinceTima uint64
}

// NewController returns a Controller with both counters at zero, and
// registers its TAC-write catch-up hook on b.
func NewController(b *bus.Bus) *Controller {
	c := &Controller{}
	b.HardwareRegisters().OnTACWrite(func(uint8) {
		c.catchUpTIMA(b)
	})
	return c
}

// Tick advances the timer by addedCycles clock cycles (T-cycles) —
// the host loop multiplies the CPU's machine-cycle return value by 4
// before calling Tick, matching real DMG timer frequencies (e.g. rate
// 256 is 16384 Hz = 4194304/256). Tick rolls DIV and TIMA forward by
// as many whole ticks as addedCycles covers; neither counter exceeds
// its tick interval once Tick returns.
func (c *Controller) Tick(addedCycles uint64, b *bus.Bus) {
	c.cyclesSinceDiv += addedCycles
	for c.cyclesSinceDiv >= divInterval {
		b.IncDiv()
		c.cyclesSinceDiv -= divInterval
	}

	tac := b.HardwareRegisters().TAC()
	if tac&0x04 == 0 {
		return
	}

	c.cyclesSinceTima += addedCycles
	rate := rateFromTAC[tac&0x03]
	for c.cyclesSinceTima >= rate {
		c.cyclesSinceTima -= rate
		c.incrementTIMA(b)
	}
}

// catchUpTIMA gives the timer the TIMA-increment opportunity a TAC
// write is documented to take (spec §4.6): if the elapsed fraction of
// the new rate's interval already covers a full tick, take it
// immediately rather than waiting for the next Tick call.
func (c *Controller) catchUpTIMA(b *bus.Bus) {
	tac := b.HardwareRegisters().TAC()
	if tac&0x04 == 0 {
		return
	}
	rate := rateFromTAC[tac&0x03]
	if c.cyclesSinceTima >= rate {
		c.cyclesSinceTima -= rate
		c.incrementTIMA(b)
	}
}

func (c *Controller) incrementTIMA(b *bus.Bus) {
	reg := b.HardwareRegisters()
	next := reg.TIMA() + 1
	reg.SetTIMA(next)
	if next == 0 {
		reg.SetTIMA(reg.TMA())
		b.TriggerInterrupt(interrupt.Timer)
	}
}
