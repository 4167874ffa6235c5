package memory

import "testing"

func TestStoreLoadByte(t *testing.T) {
	var m Memory
	m.StoreByte(0x200, 0xAB)
	if got := m.LoadByte(0x200); got != 0xAB {
		t.Fatalf("LoadByte = %#x, want 0xAB", got)
	}
}

func TestAddressWraps(t *testing.T) {
	var m Memory
	m.StoreByte(0x1200, 0x42) // 0x1200 & 0xFFF == 0x200
	if got := m.LoadByte(0x200); got != 0x42 {
		t.Fatalf("wrapped write not observed: got %#x", got)
	}
}

func TestLoadWordBigEndian(t *testing.T) {
	var m Memory
	m.StoreByte(0x300, 0x6A)
	m.StoreByte(0x301, 0xAB)
	if got := m.LoadWord(0x300); got != 0x6AAB {
		t.Fatalf("LoadWord = %#x, want 0x6AAB", got)
	}
}

func TestLoadWordWrapsEachByte(t *testing.T) {
	var m Memory
	m.StoreByte(0xFFF, 0x12)
	m.StoreByte(0x000, 0x34)
	if got := m.LoadWord(0xFFF); got != 0x1234 {
		t.Fatalf("LoadWord at boundary = %#x, want 0x1234", got)
	}
}

func TestStoreBytes(t *testing.T) {
	var m Memory
	m.StoreBytes(0x200, []uint8{1, 2, 3, 4})
	for i, want := range []uint8{1, 2, 3, 4} {
		if got := m.LoadByte(0x200 + uint16(i)); got != want {
			t.Fatalf("byte %d = %#x, want %#x", i, got, want)
		}
	}
}

func TestStoreWordsBigVsLittle(t *testing.T) {
	var big, little Memory
	big.StoreWords(0x200, []uint16{0x6AAB}, Big)
	little.StoreWords(0x200, []uint16{0x6AAB}, Little)

	if got := big.LoadWord(0x200); got != 0x6AAB {
		t.Fatalf("big-endian store: LoadWord = %#x, want 0x6AAB", got)
	}
	// Stored little-endian, so a big-endian fetch recovers the byte-swapped value.
	if got := little.LoadWord(0x200); got != 0xAB6A {
		t.Fatalf("little-endian store: LoadWord = %#x, want 0xAB6A", got)
	}
}
