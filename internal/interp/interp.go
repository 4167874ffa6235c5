// Package interp implements the CHIP-8 fetch-classify-dispatch cycle: the
// 34 instructions, the decoupled 60 Hz timer update, and the FX0A
// key-wait suspension.
package interp

import (
	"github.com/beanboi7/chyp8/internal/display"
	"github.com/beanboi7/chyp8/internal/keyboard"
	"github.com/beanboi7/chyp8/internal/memory"
	"github.com/beanboi7/chyp8/internal/opcode"
	"github.com/beanboi7/chyp8/internal/register"
)

// timerPeriodMs is the 60 Hz timer decrement period, ~16.67ms.
const timerPeriodMs = 1000.0 / 60.0

// suspension models the one CPU-level control-flow wrinkle: FX0A's
// key-wait. A zero suspension means the CPU is running normally.
type suspension struct {
	waiting bool
	vx      uint8
}

// CPU wires together the register file, memory, framebuffer, and
// keyboard latch the instruction set operates on, and drives the
// fetch-classify-dispatch step.
type CPU struct {
	Mem  *memory.Memory
	Reg  *register.File
	Disp *display.Framebuffer
	Keys *keyboard.Latch

	suspend    suspension
	lastTickMs int64
	tickInit   bool

	// Tracer, if set, is called once per fetch with the PC it was
	// fetched from and the raw opcode word. It never influences
	// interpreter semantics.
	Tracer func(pc uint16, op uint16)
}

// New constructs a CPU bound to the given collaborators.
func New(mem *memory.Memory, reg *register.File, disp *display.Framebuffer, keys *keyboard.Latch) *CPU {
	return &CPU{Mem: mem, Reg: reg, Disp: disp, Keys: keys}
}

// Step performs one interpreter step as of host time nowMs (milliseconds,
// any monotonic clock). See package doc and spec §4.3.1 for the contract:
//
//  1. If suspended on key wait, poll the keyboard; resolve on the first
//     pressed key (in numerical order) or remain suspended.
//  2. Otherwise fetch, classify, and dispatch one instruction.
//  3. Advance the timers.
func (c *CPU) Step(nowMs int64) {
	if c.suspend.waiting {
		if key, ok := c.Keys.FirstPressed(); ok {
			c.Reg.V[c.suspend.vx] = key
			c.suspend = suspension{}
		}
		c.advanceTimers(nowMs)
		return
	}

	pc := c.Reg.PC
	op := opcode.Opcode(c.Mem.LoadWord(pc))
	c.Reg.PC += 2

	if c.Tracer != nil {
		c.Tracer(pc, uint16(op))
	}

	c.execute(op)
	c.advanceTimers(nowMs)
}

// advanceTimers decrements DT and ST toward zero at the fixed 60 Hz
// cadence, decoupled from however often Step is called. Matches the
// source's simplified model: if at least one period has elapsed and the
// timer is nonzero, decrement once and reset the anchor to now.
func (c *CPU) advanceTimers(nowMs int64) {
	if !c.tickInit {
		c.lastTickMs = nowMs
		c.tickInit = true
		return
	}
	if float64(nowMs-c.lastTickMs) < timerPeriodMs {
		return
	}
	if c.Reg.DT > 0 {
		c.Reg.DT--
	}
	if c.Reg.ST > 0 {
		c.Reg.ST--
	}
	c.lastTickMs = nowMs
}

// Reset clears the key-wait suspension and the timer anchor. Register
// and memory reset are the caller's responsibility (see the chip8 VM
// façade), matching spec §3: reset does not clear user memory.
func (c *CPU) Reset() {
	c.suspend = suspension{}
	c.tickInit = false
}

// Waiting reports whether the CPU is currently suspended on FX0A.
func (c *CPU) Waiting() bool {
	return c.suspend.waiting
}
