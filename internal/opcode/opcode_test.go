package opcode

import "testing"

func TestDecodeXKKRoundTrip(t *testing.T) {
	op := EncodeXKK(0x6000, 0xA, 0xAB)
	ops := Decode(ShapeXKK, op)
	if ops.X != 0xA || ops.KK != 0xAB {
		t.Fatalf("decode(encode(x,kk)) = %+v, want X=0xA KK=0xAB", ops)
	}
}

func TestDecodeXYRoundTrip(t *testing.T) {
	op := EncodeXY(0x8000, 0x3, 0x4)
	ops := Decode(ShapeXY, op)
	if ops.X != 0x3 || ops.Y != 0x4 {
		t.Fatalf("decode(encode(x,y)) = %+v, want X=3 Y=4", ops)
	}
}

func TestDecodeXYNRoundTrip(t *testing.T) {
	op := EncodeXYN(0xD000, 0x1, 0x2, 0x5)
	ops := Decode(ShapeXYN, op)
	if ops.X != 1 || ops.Y != 2 || ops.N != 5 {
		t.Fatalf("decode(encode(x,y,n)) = %+v, want X=1 Y=2 N=5", ops)
	}
}

func TestDecodeNNNRoundTrip(t *testing.T) {
	op := EncodeNNN(0x1000, 0x345)
	ops := Decode(ShapeNNN, op)
	if ops.NNN != 0x345 {
		t.Fatalf("decode(encode(nnn)).NNN = %#x, want 0x345", ops.NNN)
	}
}

func TestClassifyZeroEFFamily(t *testing.T) {
	cases := map[Opcode]Key{
		0x00E0: CLS,
		0x00EE: RET,
		0xE39E: SKP,
		0xE3A1: SKNP,
		0xF307: LDVXDT,
		0xF30A: LDVXK,
	}
	for op, want := range cases {
		if got := Classify(op); got != want {
			t.Errorf("Classify(%#04x) = %#04x, want %#04x", uint16(op), uint16(got), uint16(want))
		}
	}
}

func TestClassify589Family(t *testing.T) {
	cases := map[Opcode]Key{
		0x5120: SEXY,
		0x8124: ADDXY,
		0x9120: SNEXY,
		0x8126: SHR,
		0x812E: SHL,
	}
	for op, want := range cases {
		if got := Classify(op); got != want {
			t.Errorf("Classify(%#04x) = %#04x, want %#04x", uint16(op), uint16(got), uint16(want))
		}
	}
}

func TestClassifyTopNibbleOnly(t *testing.T) {
	cases := map[Opcode]Key{
		0x1234: JP,
		0x2ABC: CALL,
		0x3A11: SE,
		0x4A11: SNE,
		0x6A11: LDXB,
		0x7A11: ADDB,
		0xA123: LDI,
		0xB123: JPV0,
		0xC1FF: RND,
		0xD123: DRW,
	}
	for op, want := range cases {
		if got := Classify(op); got != want {
			t.Errorf("Classify(%#04x) = %#04x, want %#04x", uint16(op), uint16(got), uint16(want))
		}
	}
}

func TestClassifyMalformed5XYNIsNotSEXY(t *testing.T) {
	// 0x5001 is not a valid 5XY0 (low nibble must be 0); it classifies to
	// a key with no handler, which the interpreter treats as a no-op.
	got := Classify(0x5001)
	if got == SEXY {
		t.Fatalf("Classify(0x5001) should not collide with SEXY")
	}
}
