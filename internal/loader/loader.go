// Package loader reads CHIP-8 program images from disk and places them
// into memory at the conventional load address.
package loader

import (
	"fmt"
	"os"

	"github.com/beanboi7/chyp8/internal/memory"
	"github.com/beanboi7/chyp8/internal/register"
)

// LoadAddress is the conventional start of program memory.
const LoadAddress = register.EntryPoint

// MaxROMSize is the largest program image that fits between LoadAddress
// and the top of the address space.
const MaxROMSize = memory.Size - int(LoadAddress)

// Load reads the ROM at path and stores it into mem starting at
// LoadAddress. It returns an error if the file cannot be read or exceeds
// MaxROMSize; it never panics.
func Load(mem *memory.Memory, path string) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loader: read rom: %w", err)
	}
	if len(rom) > MaxROMSize {
		return fmt.Errorf("loader: rom %q is %d bytes, exceeds max %d", path, len(rom), MaxROMSize)
	}
	mem.StoreBytes(LoadAddress, rom)
	return nil
}

// FontSet is the built-in hexadecimal font: sixteen 5-byte glyphs for
// digits 0..F, glyph k at offset 5*k. Placed at memory 0x000..0x04F
// before program load.
var FontSet = [80]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// LoadFont writes FontSet into memory at 0x000.
func LoadFont(mem *memory.Memory) {
	mem.StoreBytes(0, FontSet[:])
}
