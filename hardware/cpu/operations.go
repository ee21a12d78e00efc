// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/gopherboy/gopherboy/hardware/cpu/registers"
)

// operation implements the behaviour of an instruction. The return value
// indicates whether a conditional instruction took its branch.
type operation func(mc *CPU) bool

// the behaviour tables. indexed by opcode in the same way as the
// definitions in the instructions package. entries for undefined opcodes
// are nil
var (
	operations         [256]operation
	prefixedOperations [256]operation
)

// register indexes as encoded in the opcode. index 6 is the memory location
// pointed to by HL
const regHL = 6

// reg returns the value of the register encoded by the index.
func (mc *CPU) reg(idx int) uint8 {
	switch idx {
	case 0:
		return mc.B.Value()
	case 1:
		return mc.C.Value()
	case 2:
		return mc.D.Value()
	case 3:
		return mc.E.Value()
	case 4:
		return mc.H.Value()
	case 5:
		return mc.L.Value()
	case regHL:
		return mc.bus.Read(mc.HL.Value())
	}
	return mc.A.Value()
}

// register returns the register encoded by the index. must not be called
// with regHL.
func (mc *CPU) register(idx int) *registers.Register {
	switch idx {
	case 0:
		return &mc.B
	case 1:
		return &mc.C
	case 2:
		return &mc.D
	case 3:
		return &mc.E
	case 4:
		return &mc.H
	case 5:
		return &mc.L
	}
	return &mc.A
}

// modify applies the function to the register encoded by the index. for
// regHL the memory location is read, modified and written back.
func (mc *CPU) modify(idx int, f func(r *registers.Register)) {
	if idx == regHL {
		r := registers.NewRegister(mc.bus.Read(mc.HL.Value()), "(HL)")
		f(&r)
		mc.bus.Write(mc.HL.Value(), r.Value())
		return
	}
	f(mc.register(idx))
}

// pair returns the register pair encoded by the index. index 3 is the SP in
// some instructions and AF in others so it is handled by the caller.
func (mc *CPU) pair(idx int) registers.Pair {
	switch idx {
	case 0:
		return mc.BC
	case 1:
		return mc.DE
	}
	return mc.HL
}

func (mc *CPU) pairValue(idx int) uint16 {
	if idx == 3 {
		return mc.SP.Address()
	}
	return mc.pair(idx).Value()
}

func (mc *CPU) loadPair(idx int, val uint16) {
	if idx == 3 {
		mc.SP.Load(val)
		return
	}
	mc.pair(idx).Load(val)
}

// condition returns the state of the condition encoded by the index.
func (mc *CPU) condition(idx int) bool {
	switch idx {
	case 0:
		return !mc.F.Zero
	case 1:
		return mc.F.Zero
	case 2:
		return !mc.F.Carry
	}
	return mc.F.Carry
}

// alu performs the arithmetic or logical operation encoded by the index on
// the accumulator.
func (mc *CPU) alu(idx int, v uint8) {
	switch idx {
	case 0: // ADD
		c, h := mc.A.Add(v, false)
		mc.F.Set(mc.A.IsZero(), false, h, c)
	case 1: // ADC
		c, h := mc.A.Add(v, mc.F.Carry)
		mc.F.Set(mc.A.IsZero(), false, h, c)
	case 2: // SUB
		c, h := mc.A.Subtract(v, false)
		mc.F.Set(mc.A.IsZero(), true, h, c)
	case 3: // SBC
		c, h := mc.A.Subtract(v, mc.F.Carry)
		mc.F.Set(mc.A.IsZero(), true, h, c)
	case 4: // AND
		mc.A.AND(v)
		mc.F.Set(mc.A.IsZero(), false, true, false)
	case 5: // XOR
		mc.A.XOR(v)
		mc.F.Set(mc.A.IsZero(), false, false, false)
	case 6: // OR
		mc.A.OR(v)
		mc.F.Set(mc.A.IsZero(), false, false, false)
	case 7: // CP
		r := mc.A
		c, h := r.Subtract(v, false)
		mc.F.Set(r.IsZero(), true, h, c)
	}
}

// rotate performs the rotate or shift operation encoded by the index. used
// by the prefixed instructions.
func (mc *CPU) rotate(idx int, r *registers.Register) {
	var c bool
	switch idx {
	case 0:
		c = r.RLC()
	case 1:
		c = r.RRC()
	case 2:
		c = r.RL(mc.F.Carry)
	case 3:
		c = r.RR(mc.F.Carry)
	case 4:
		c = r.SLA()
	case 5:
		c = r.SRA()
	case 6:
		r.Swap()
	case 7:
		c = r.SRL()
	}
	mc.F.Set(r.IsZero(), false, false, c)
}

func (mc *CPU) daa() {
	a := mc.A.Value()
	c := mc.F.Carry
	if !mc.F.Negative {
		if c || a > 0x99 {
			a += 0x60
			c = true
		}
		if mc.F.HalfCarry || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if c {
			a -= 0x60
		}
		if mc.F.HalfCarry {
			a -= 0x06
		}
	}
	mc.A.Load(a)
	mc.F.Zero = a == 0
	mc.F.HalfCarry = false
	mc.F.Carry = c
}

func (mc *CPU) addHL(v uint16) {
	hl := mc.HL.Value()
	mc.F.Negative = false
	mc.F.HalfCarry = (hl&0x0fff)+(v&0x0fff) > 0x0fff
	mc.F.Carry = uint32(hl)+uint32(v) > 0xffff
	mc.HL.Load(hl + v)
}

func init() {
	// 0x00 to 0x3f. miscellaneous loads, 16 bit arithmetic, INC/DEC and
	// relative jumps
	operations[0x00] = func(mc *CPU) bool { return false }
	operations[0x10] = func(mc *CPU) bool {
		// STOP consumes the following byte and waits for an interrupt
		mc.fetch()
		mc.Halted = true
		return false
	}
	operations[0x08] = func(mc *CPU) bool {
		mc.write16(mc.fetch16(), mc.SP.Address())
		return false
	}
	operations[0x18] = func(mc *CPU) bool {
		mc.PC.Relative(mc.fetch())
		return false
	}
	for cc := range 4 {
		operations[0x20+cc*8] = func(mc *CPU) bool {
			offset := mc.fetch()
			if mc.condition(cc) {
				mc.PC.Relative(offset)
				return true
			}
			return false
		}
	}
	for rp := range 4 {
		operations[0x01+rp*16] = func(mc *CPU) bool {
			mc.loadPair(rp, mc.fetch16())
			return false
		}
		operations[0x09+rp*16] = func(mc *CPU) bool {
			mc.addHL(mc.pairValue(rp))
			return false
		}
		operations[0x03+rp*16] = func(mc *CPU) bool {
			mc.loadPair(rp, mc.pairValue(rp)+1)
			return false
		}
		operations[0x0b+rp*16] = func(mc *CPU) bool {
			mc.loadPair(rp, mc.pairValue(rp)-1)
			return false
		}
	}

	// indirect loads to and from the accumulator. the HL forms increment or
	// decrement HL after the access
	for i, ind := range []func(mc *CPU) uint16{
		func(mc *CPU) uint16 { return mc.BC.Value() },
		func(mc *CPU) uint16 { return mc.DE.Value() },
		func(mc *CPU) uint16 { v := mc.HL.Value(); mc.HL.Increment(); return v },
		func(mc *CPU) uint16 { v := mc.HL.Value(); mc.HL.Decrement(); return v },
	} {
		operations[0x02+i*16] = func(mc *CPU) bool {
			mc.bus.Write(ind(mc), mc.A.Value())
			return false
		}
		operations[0x0a+i*16] = func(mc *CPU) bool {
			mc.A.Load(mc.bus.Read(ind(mc)))
			return false
		}
	}

	for r := range 8 {
		operations[0x04+r*8] = func(mc *CPU) bool {
			mc.modify(r, func(reg *registers.Register) {
				mc.F.HalfCarry = reg.Increment()
				mc.F.Zero = reg.IsZero()
				mc.F.Negative = false
			})
			return false
		}
		operations[0x05+r*8] = func(mc *CPU) bool {
			mc.modify(r, func(reg *registers.Register) {
				mc.F.HalfCarry = reg.Decrement()
				mc.F.Zero = reg.IsZero()
				mc.F.Negative = true
			})
			return false
		}
		operations[0x06+r*8] = func(mc *CPU) bool {
			v := mc.fetch()
			mc.modify(r, func(reg *registers.Register) { reg.Load(v) })
			return false
		}
	}

	// accumulator rotates always clear the zero flag
	operations[0x07] = func(mc *CPU) bool {
		mc.F.Set(false, false, false, mc.A.RLC())
		return false
	}
	operations[0x0f] = func(mc *CPU) bool {
		mc.F.Set(false, false, false, mc.A.RRC())
		return false
	}
	operations[0x17] = func(mc *CPU) bool {
		mc.F.Set(false, false, false, mc.A.RL(mc.F.Carry))
		return false
	}
	operations[0x1f] = func(mc *CPU) bool {
		mc.F.Set(false, false, false, mc.A.RR(mc.F.Carry))
		return false
	}
	operations[0x27] = func(mc *CPU) bool {
		mc.daa()
		return false
	}
	operations[0x2f] = func(mc *CPU) bool {
		mc.A.Load(^mc.A.Value())
		mc.F.Negative = true
		mc.F.HalfCarry = true
		return false
	}
	operations[0x37] = func(mc *CPU) bool {
		mc.F.Negative = false
		mc.F.HalfCarry = false
		mc.F.Carry = true
		return false
	}
	operations[0x3f] = func(mc *CPU) bool {
		mc.F.Negative = false
		mc.F.HalfCarry = false
		mc.F.Carry = !mc.F.Carry
		return false
	}

	// 0x40 to 0x7f. 8 bit register to register loads
	for dst := range 8 {
		for src := range 8 {
			operations[0x40+dst*8+src] = func(mc *CPU) bool {
				v := mc.reg(src)
				mc.modify(dst, func(reg *registers.Register) { reg.Load(v) })
				return false
			}
		}
	}
	operations[0x76] = func(mc *CPU) bool {
		mc.Halted = true
		return false
	}

	// 0x80 to 0xbf. 8 bit arithmetic and logic with a register
	for op := range 8 {
		for src := range 8 {
			operations[0x80+op*8+src] = func(mc *CPU) bool {
				mc.alu(op, mc.reg(src))
				return false
			}
		}
		operations[0xc6+op*8] = func(mc *CPU) bool {
			mc.alu(op, mc.fetch())
			return false
		}
		operations[0xc7+op*8] = func(mc *CPU) bool {
			mc.push16(mc.PC.Address())
			mc.PC.Load(uint16(op * 8))
			return false
		}
	}

	// 0xc0 to 0xff. flow control, stack and miscellaneous
	for cc := range 4 {
		operations[0xc0+cc*8] = func(mc *CPU) bool {
			if mc.condition(cc) {
				mc.PC.Load(mc.pop16())
				return true
			}
			return false
		}
		operations[0xc2+cc*8] = func(mc *CPU) bool {
			address := mc.fetch16()
			if mc.condition(cc) {
				mc.PC.Load(address)
				return true
			}
			return false
		}
		operations[0xc4+cc*8] = func(mc *CPU) bool {
			address := mc.fetch16()
			if mc.condition(cc) {
				mc.push16(mc.PC.Address())
				mc.PC.Load(address)
				return true
			}
			return false
		}
	}
	for rp := range 4 {
		operations[0xc1+rp*16] = func(mc *CPU) bool {
			v := mc.pop16()
			if rp == 3 {
				mc.LoadAF(v)
			} else {
				mc.pair(rp).Load(v)
			}
			return false
		}
		operations[0xc5+rp*16] = func(mc *CPU) bool {
			if rp == 3 {
				mc.push16(mc.AF())
			} else {
				mc.push16(mc.pair(rp).Value())
			}
			return false
		}
	}
	operations[0xc3] = func(mc *CPU) bool {
		mc.PC.Load(mc.fetch16())
		return false
	}
	operations[0xc9] = func(mc *CPU) bool {
		mc.PC.Load(mc.pop16())
		return false
	}
	operations[0xcd] = func(mc *CPU) bool {
		address := mc.fetch16()
		mc.push16(mc.PC.Address())
		mc.PC.Load(address)
		return false
	}
	operations[0xd9] = func(mc *CPU) bool {
		// RETI enables interrupts immediately
		mc.PC.Load(mc.pop16())
		mc.IME = true
		mc.imeDelay = 0
		return false
	}
	operations[0xe0] = func(mc *CPU) bool {
		mc.bus.Write(0xff00|uint16(mc.fetch()), mc.A.Value())
		return false
	}
	operations[0xf0] = func(mc *CPU) bool {
		mc.A.Load(mc.bus.Read(0xff00 | uint16(mc.fetch())))
		return false
	}
	operations[0xe2] = func(mc *CPU) bool {
		mc.bus.Write(0xff00|uint16(mc.C.Value()), mc.A.Value())
		return false
	}
	operations[0xf2] = func(mc *CPU) bool {
		mc.A.Load(mc.bus.Read(0xff00 | uint16(mc.C.Value())))
		return false
	}
	operations[0xe8] = func(mc *CPU) bool {
		v, c, h := mc.SP.Offset(mc.fetch())
		mc.SP.Load(v)
		mc.F.Set(false, false, h, c)
		return false
	}
	operations[0xf8] = func(mc *CPU) bool {
		v, c, h := mc.SP.Offset(mc.fetch())
		mc.HL.Load(v)
		mc.F.Set(false, false, h, c)
		return false
	}
	operations[0xe9] = func(mc *CPU) bool {
		mc.PC.Load(mc.HL.Value())
		return false
	}
	operations[0xf9] = func(mc *CPU) bool {
		mc.SP.Load(mc.HL.Value())
		return false
	}
	operations[0xea] = func(mc *CPU) bool {
		mc.bus.Write(mc.fetch16(), mc.A.Value())
		return false
	}
	operations[0xfa] = func(mc *CPU) bool {
		mc.A.Load(mc.bus.Read(mc.fetch16()))
		return false
	}
	operations[0xf3] = func(mc *CPU) bool {
		mc.IME = false
		mc.imeDelay = 0
		return false
	}
	operations[0xfb] = func(mc *CPU) bool {
		if !mc.IME && mc.imeDelay == 0 {
			mc.imeDelay = 2
		}
		return false
	}

	// the prefix opcode is handled by Step() but the table entry must not be
	// nil
	operations[prefix] = func(mc *CPU) bool { return false }

	// prefixed instructions
	for op := range 8 {
		for r := range 8 {
			prefixedOperations[op*8+r] = func(mc *CPU) bool {
				mc.modify(r, func(reg *registers.Register) { mc.rotate(op, reg) })
				return false
			}
			prefixedOperations[0x40+op*8+r] = func(mc *CPU) bool {
				mc.F.Zero = mc.reg(r)&(1<<op) == 0
				mc.F.Negative = false
				mc.F.HalfCarry = true
				return false
			}
			prefixedOperations[0x80+op*8+r] = func(mc *CPU) bool {
				mc.modify(r, func(reg *registers.Register) { reg.Load(reg.Value() &^ (1 << op)) })
				return false
			}
			prefixedOperations[0xc0+op*8+r] = func(mc *CPU) bool {
				mc.modify(r, func(reg *registers.Register) { reg.Load(reg.Value() | (1 << op)) })
				return false
			}
		}
	}
}
