// Package keyboard models the CHIP-8's 16-key hex pad as seen by the
// interpreter: a latch written by the host input pump and read by the
// CPU between steps.
package keyboard

// KeyCount is the number of CHIP-8 key codes (0x0..0xF).
const KeyCount = 16

// Latch is a 16-entry pressed/released vector. The zero value has every
// key released.
//
// Under the single-threaded host contract described by the core (one
// goroutine drives Step and also owns the Latch) no synchronization is
// needed. A host that pumps input from a separate goroutine must guard
// Set/Pressed itself, e.g. with a mutex held for the duration of a step.
type Latch struct {
	pressed [KeyCount]bool
	quit    bool
}

// Set records key's pressed state. key is masked to 4 bits.
func (l *Latch) Set(key uint8, pressed bool) {
	l.pressed[key&0xF] = pressed
}

// Pressed reports whether key is currently held down. key is masked to 4
// bits.
func (l *Latch) Pressed(key uint8) bool {
	return l.pressed[key&0xF]
}

// FirstPressed returns the lowest-numbered currently pressed key code and
// true, scanning 0..=15 in order, or (0, false) if no key is pressed. This
// is the resolution rule for FX0A: the first found pressed key wins.
func (l *Latch) FirstPressed() (uint8, bool) {
	for k := uint8(0); k < KeyCount; k++ {
		if l.pressed[k] {
			return k, true
		}
	}
	return 0, false
}

// RequestQuit marks the latch as having observed a quit request. The
// interpreter never reads this; it exists only for the outer host loop.
func (l *Latch) RequestQuit() {
	l.quit = true
}

// QuitRequested reports whether RequestQuit has been called.
func (l *Latch) QuitRequested() bool {
	return l.quit
}
