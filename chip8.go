// Package chip8 is the VM façade: it wires memory, the register file,
// the framebuffer, the keyboard latch, and the interpreter core together
// and exposes the small surface a host loop needs — reset, load, single
// step, and read access to the framebuffer and keyboard.
//
// Everything this package does NOT do is deliberate: it never opens a
// window, never reads input events off the OS, never paces a frame
// loop, and never traces to a terminal by default. Those are the host's
// job (see cmd/ and internal/display/window).
package chip8

import (
	"github.com/beanboi7/chyp8/internal/display"
	"github.com/beanboi7/chyp8/internal/interp"
	"github.com/beanboi7/chyp8/internal/keyboard"
	"github.com/beanboi7/chyp8/internal/loader"
	"github.com/beanboi7/chyp8/internal/memory"
	"github.com/beanboi7/chyp8/internal/register"
)

// VM is a complete CHIP-8 machine.
type VM struct {
	mem  memory.Memory
	reg  *register.File
	disp display.Framebuffer
	keys keyboard.Latch
	cpu  *interp.CPU
}

// New constructs a VM with the font table loaded and the program counter
// at its reset position. The RNG is seeded from OS entropy; call Seed to
// pin it for reproducible runs.
func New() *VM {
	vm := &VM{reg: register.New()}
	loader.LoadFont(&vm.mem)
	vm.cpu = interp.New(&vm.mem, vm.reg, &vm.disp, &vm.keys)
	return vm
}

// LoadROM reads the program image at path into memory at 0x200.
func (vm *VM) LoadROM(path string) error {
	return loader.Load(&vm.mem, path)
}

// Reset restores registers, the call stack, the timers, and the
// framebuffer to their power-on state. User memory (the loaded ROM and
// font table) is untouched, per spec: reset never reloads or erases
// program memory.
func (vm *VM) Reset() {
	vm.reg.Reset()
	vm.disp.Clear()
	vm.cpu.Reset()
}

// Step advances the VM by one instruction (or resolves/continues a
// pending FX0A key wait) as of host time nowMs, then advances the
// timers. See internal/interp for the full step contract.
func (vm *VM) Step(nowMs int64) {
	vm.cpu.Step(nowMs)
}

// Framebuffer returns the VM's display, for the host to render.
func (vm *VM) Framebuffer() *display.Framebuffer {
	return &vm.disp
}

// Keys returns the VM's keyboard latch, for the host input pump to
// write into between steps.
func (vm *VM) Keys() *keyboard.Latch {
	return &vm.keys
}

// Seed pins the CXKK random number source to a deterministic sequence.
func (vm *VM) Seed(seed int64) {
	vm.reg.Seed(seed)
}

// SetTracer installs a per-fetch trace hook, or clears it if fn is nil.
// See internal/interp.CPU.Tracer.
func (vm *VM) SetTracer(fn func(pc uint16, opcode uint16)) {
	vm.cpu.Tracer = fn
}

// DelayTimer returns the current value of DT.
func (vm *VM) DelayTimer() uint8 {
	return vm.reg.DT
}

// SoundTimer returns the current value of ST. The core only counts ST;
// producing audio while it is nonzero is the host's responsibility.
func (vm *VM) SoundTimer() uint8 {
	return vm.reg.ST
}

// Waiting reports whether the VM is suspended on an FX0A key wait.
func (vm *VM) Waiting() bool {
	return vm.cpu.Waiting()
}
