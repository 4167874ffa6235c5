// Package register models the CHIP-8 register file: the sixteen V
// registers, the I address register, the program counter, the call
// stack, the two 60 Hz timers, and the CXKK random number source.
package register

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
)

const (
	// StackDepth is the maximum number of nested CALLs.
	StackDepth = 16
	// EntryPoint is the initial and reset value of PC.
	EntryPoint uint16 = 0x200
	// FlagRegister is the index of VF, the conventional flag register.
	FlagRegister = 0xF
)

// File is the CHIP-8 register file.
type File struct {
	V  [16]uint8
	I  uint16
	PC uint16
	SP uint8

	Stack [StackDepth]uint16

	DT uint8
	ST uint8

	rng *mathrand.Rand
}

// New constructs a register file at its reset state, with the RNG seeded
// from OS entropy so CXKK feels random across runs (see Seed to pin it
// for tests).
func New() *File {
	f := &File{}
	f.Reset()
	f.seedFromOS()
	return f
}

// Reset restores PC, SP, I, the V registers, the stack, and the timers to
// their power-on values. It does not reseed the RNG and does not touch
// memory.
func (f *File) Reset() {
	f.V = [16]uint8{}
	f.I = 0
	f.PC = EntryPoint
	f.SP = 0
	f.Stack = [StackDepth]uint16{}
	f.DT = 0
	f.ST = 0
}

// Seed pins the RNG to a deterministic sequence, for reproducible tests.
func (f *File) Seed(seed int64) {
	f.rng = mathrand.New(mathrand.NewSource(seed))
}

// seedFromOS seeds the RNG from crypto/rand, falling back to an
// arbitrary fixed seed if the OS entropy source is unavailable.
func (f *File) seedFromOS() {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<62))
	if err != nil {
		f.rng = mathrand.New(mathrand.NewSource(0xC8C8))
		return
	}
	f.rng = mathrand.New(mathrand.NewSource(n.Int64()))
}

// RandByte returns the next uniform 8-bit random value for CXKK.
func (f *File) RandByte() uint8 {
	return uint8(f.rng.Intn(256))
}

// PushReturn saves ret onto the call stack and returns true, or returns
// false without modifying state if the stack is already full (saturating
// per the spec's recommended overflow policy).
func (f *File) PushReturn(ret uint16) bool {
	if f.SP >= StackDepth {
		return false
	}
	f.Stack[f.SP] = ret
	f.SP++
	return true
}

// PopReturn restores the most recently pushed return address and returns
// true, or returns false without modifying state if the stack is empty.
func (f *File) PopReturn() (uint16, bool) {
	if f.SP == 0 {
		return 0, false
	}
	f.SP--
	return f.Stack[f.SP], true
}
