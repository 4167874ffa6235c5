package interp

import "github.com/beanboi7/chyp8/internal/opcode"

// execute classifies op and dispatches to its instruction handler. An
// opcode that classifies to no known key is silently ignored, matching
// the no-op policy of spec §4.3.4.
func (c *CPU) execute(op opcode.Opcode) {
	key := opcode.Classify(op)

	switch key {
	case opcode.CLS:
		c.Disp.Clear()

	case opcode.RET:
		if ret, ok := c.Reg.PopReturn(); ok {
			c.Reg.PC = ret
		}

	case opcode.JP:
		ops := opcode.Decode(opcode.ShapeNNN, op)
		c.Reg.PC = ops.NNN

	case opcode.CALL:
		ops := opcode.Decode(opcode.ShapeNNN, op)
		c.Reg.PushReturn(c.Reg.PC)
		c.Reg.PC = ops.NNN

	case opcode.SE:
		ops := opcode.Decode(opcode.ShapeXKK, op)
		if c.Reg.V[ops.X] == ops.KK {
			c.Reg.PC += 2
		}

	case opcode.SNE:
		ops := opcode.Decode(opcode.ShapeXKK, op)
		if c.Reg.V[ops.X] != ops.KK {
			c.Reg.PC += 2
		}

	case opcode.SEXY:
		ops := opcode.Decode(opcode.ShapeXY, op)
		if c.Reg.V[ops.X] == c.Reg.V[ops.Y] {
			c.Reg.PC += 2
		}

	case opcode.LDXB:
		ops := opcode.Decode(opcode.ShapeXKK, op)
		c.Reg.V[ops.X] = ops.KK

	case opcode.ADDB:
		ops := opcode.Decode(opcode.ShapeXKK, op)
		c.Reg.V[ops.X] += ops.KK

	case opcode.LDXY:
		ops := opcode.Decode(opcode.ShapeXY, op)
		c.Reg.V[ops.X] = c.Reg.V[ops.Y]

	case opcode.OR:
		ops := opcode.Decode(opcode.ShapeXY, op)
		c.Reg.V[ops.X] |= c.Reg.V[ops.Y]

	case opcode.AND:
		ops := opcode.Decode(opcode.ShapeXY, op)
		c.Reg.V[ops.X] &= c.Reg.V[ops.Y]

	case opcode.XOR:
		ops := opcode.Decode(opcode.ShapeXY, op)
		c.Reg.V[ops.X] ^= c.Reg.V[ops.Y]

	case opcode.ADDXY:
		ops := opcode.Decode(opcode.ShapeXY, op)
		sum := uint16(c.Reg.V[ops.X]) + uint16(c.Reg.V[ops.Y])
		c.Reg.V[0xF] = flagByte(sum > 0xFF)
		c.Reg.V[ops.X] = uint8(sum)

	case opcode.SUB:
		ops := opcode.Decode(opcode.ShapeXY, op)
		vx, vy := c.Reg.V[ops.X], c.Reg.V[ops.Y]
		c.Reg.V[0xF] = flagByte(vx > vy)
		c.Reg.V[ops.X] = vx - vy

	case opcode.SHR:
		ops := opcode.Decode(opcode.ShapeXY, op)
		vy := c.Reg.V[ops.Y]
		c.Reg.V[0xF] = vy & 1
		c.Reg.V[ops.X] = vy >> 1

	case opcode.SUBN:
		ops := opcode.Decode(opcode.ShapeXY, op)
		vx, vy := c.Reg.V[ops.X], c.Reg.V[ops.Y]
		c.Reg.V[0xF] = flagByte(vy > vx)
		c.Reg.V[ops.X] = vy - vx

	case opcode.SHL:
		ops := opcode.Decode(opcode.ShapeXY, op)
		vy := c.Reg.V[ops.Y]
		c.Reg.V[0xF] = (vy >> 7) & 1
		c.Reg.V[ops.X] = vy << 1

	case opcode.SNEXY:
		ops := opcode.Decode(opcode.ShapeXY, op)
		if c.Reg.V[ops.X] != c.Reg.V[ops.Y] {
			c.Reg.PC += 2
		}

	case opcode.LDI:
		ops := opcode.Decode(opcode.ShapeNNN, op)
		c.Reg.I = ops.NNN

	case opcode.JPV0:
		ops := opcode.Decode(opcode.ShapeNNN, op)
		c.Reg.PC = ops.NNN + uint16(c.Reg.V[0])

	case opcode.RND:
		ops := opcode.Decode(opcode.ShapeXKK, op)
		c.Reg.V[ops.X] = c.Reg.RandByte() & ops.KK

	case opcode.DRW:
		ops := opcode.Decode(opcode.ShapeXYN, op)
		rows := make([]uint8, ops.N)
		for i := range rows {
			rows[i] = c.Mem.LoadByte(c.Reg.I + uint16(i))
		}
		collided := c.Disp.Draw(int(c.Reg.V[ops.X]), int(c.Reg.V[ops.Y]), rows)
		c.Reg.V[0xF] = flagByte(collided)

	case opcode.SKP:
		ops := opcode.Decode(opcode.ShapeX, op)
		if c.Keys.Pressed(c.Reg.V[ops.X] & 0xF) {
			c.Reg.PC += 2
		}

	case opcode.SKNP:
		ops := opcode.Decode(opcode.ShapeX, op)
		if !c.Keys.Pressed(c.Reg.V[ops.X] & 0xF) {
			c.Reg.PC += 2
		}

	case opcode.LDVXDT:
		ops := opcode.Decode(opcode.ShapeX, op)
		c.Reg.V[ops.X] = c.Reg.DT

	case opcode.LDVXK:
		ops := opcode.Decode(opcode.ShapeX, op)
		c.suspend = suspension{waiting: true, vx: ops.X}

	case opcode.LDDTVX:
		ops := opcode.Decode(opcode.ShapeX, op)
		c.Reg.DT = c.Reg.V[ops.X]

	case opcode.LDSTVX:
		ops := opcode.Decode(opcode.ShapeX, op)
		c.Reg.ST = c.Reg.V[ops.X]

	case opcode.ADDIVX:
		ops := opcode.Decode(opcode.ShapeX, op)
		c.Reg.I = (c.Reg.I + uint16(c.Reg.V[ops.X])) & 0xFFF

	case opcode.LDFVX:
		ops := opcode.Decode(opcode.ShapeX, op)
		c.Reg.I = 5 * uint16(c.Reg.V[ops.X]&0xF)

	case opcode.LDBVX:
		ops := opcode.Decode(opcode.ShapeX, op)
		v := c.Reg.V[ops.X]
		c.Mem.StoreByte(c.Reg.I, v/100)
		c.Mem.StoreByte(c.Reg.I+1, (v/10)%10)
		c.Mem.StoreByte(c.Reg.I+2, v%10)

	case opcode.LDIVX55:
		ops := opcode.Decode(opcode.ShapeX, op)
		for k := uint8(0); k <= ops.X; k++ {
			c.Mem.StoreByte(c.Reg.I, c.Reg.V[k])
			c.Reg.I++
		}

	case opcode.LDVXI65:
		ops := opcode.Decode(opcode.ShapeX, op)
		for k := uint8(0); k <= ops.X; k++ {
			c.Reg.V[k] = c.Mem.LoadByte(c.Reg.I)
			c.Reg.I++
		}

	default:
		// Unknown/malformed opcode: no-op, PC already advanced.
	}
}

// flagByte converts a boolean condition into VF's canonical 0/1 encoding.
func flagByte(cond bool) uint8 {
	if cond {
		return 1
	}
	return 0
}
