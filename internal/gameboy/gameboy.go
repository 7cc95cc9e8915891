// Package gameboy wires the CPU, bus and timer into the host loop: a
// single Step advances the whole machine by one CPU instruction (or
// halt tick), and Run drives Step forever. Grounded on the teacher's
// internal/gameboy.GameBoy and its functional-options construction,
// trimmed to the components this core actually owns.
package gameboy

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/aaron-nuy/dmgcore/internal/bus"
	"github.com/aaron-nuy/dmgcore/internal/cpu"
	"github.com/aaron-nuy/dmgcore/internal/timer"
)

// ClockSpeed is the DMG's crystal frequency in clock cycles (T-cycles)
// per second.
const ClockSpeed = 4194304

// GameBoy owns one CPU, one Bus and the timer ticking against it. It
// has no notion of frames, rendering or input, matching spec.md's
// Non-goals: it is the fetch/decode/execute/timer loop and nothing
// above it.
type GameBoy struct {
	CPU   *cpu.CPU
	Bus   *bus.Bus
	Timer *timer.Controller

	log *logrus.Logger
}

// Option configures a GameBoy at construction time.
type Option func(gb *GameBoy)

// WithLogger stores log on the GameBoy. It is not propagated: the bus,
// hardware-register file and CPU keep logging to the logger New
// created for them.
func WithLogger(log *logrus.Logger) Option {
	return func(gb *GameBoy) {
		gb.log = log
	}
}

// WithBootROM installs a boot ROM overlay and resets the CPU to the
// all-zero pre-boot register state the real hardware starts in, since
// the boot ROM itself is responsible for reaching the post-boot state
// New sets up when no boot ROM is given.
func WithBootROM(data []byte) Option {
	return func(gb *GameBoy) {
		gb.Bus.LoadBootROM(data)
		gb.CPU.Reg.PC = 0x0000
		gb.CPU.Reg.SP = 0x0000
		gb.CPU.Reg.A, gb.CPU.Reg.F = 0x00, 0x00
		gb.CPU.Reg.B, gb.CPU.Reg.C = 0x00, 0x00
		gb.CPU.Reg.D, gb.CPU.Reg.E = 0x00, 0x00
		gb.CPU.Reg.H, gb.CPU.Reg.L = 0x00, 0x00
	}
}

// WithTrace turns on the CPU's per-instruction trace log.
func WithTrace() Option {
	return func(gb *GameBoy) {
		gb.CPU.Trace = true
	}
}

// WithSerialOut redirects the byte stream a ROM emits over the serial
// port (commonly used by test ROMs to report PASS/FAIL) from the
// default of os.Stdout.
func WithSerialOut(w io.Writer) Option {
	return func(gb *GameBoy) {
		gb.Bus.HardwareRegisters().Out = w
	}
}

// New constructs a GameBoy with rom loaded at address 0 and the CPU
// in the documented DMG power-on state, then applies opts.
func New(rom []byte, opts ...Option) *GameBoy {
	log := logrus.New()
	b := bus.New(log)
	b.LoadROM(rom)

	gb := &GameBoy{
		CPU:   cpu.New(log),
		Bus:   b,
		Timer: timer.NewController(b),
		log:   log,
	}

	for _, opt := range opts {
		opt(gb)
	}
	if gb.CPU.Trace {
		log.SetLevel(logrus.TraceLevel)
	}

	return gb
}

// Step advances the machine by exactly one CPU step (an instruction,
// an interrupt dispatch, or one halted cycle) and its corresponding
// timer advance, returning the number of machine cycles consumed.
func (gb *GameBoy) Step() uint8 {
	cycles := gb.CPU.Clock(gb.Bus)
	gb.Timer.Tick(uint64(cycles)*4, gb.Bus)
	return cycles
}

// Run drives Step forever; callers that need a stopping condition
// (a breakpoint, a cycle budget, a test ROM's pass/fail signal) should
// call Step directly in their own loop instead.
func (gb *GameBoy) Run() {
	for {
		gb.Step()
	}
}
