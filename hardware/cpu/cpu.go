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
	"fmt"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/cpu/instructions"
	"github.com/gopherboy/gopherboy/hardware/cpu/registers"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// UndefinedOpcode is returned by Step() when the CPU encounters an opcode
// that has no behaviour.
const UndefinedOpcode = "cpu: undefined opcode (%#02x) at (%#04x)"

// DispatchCycles is the number of cycles used when dispatching an interrupt.
const DispatchCycles = 16

// the number of cycles used by a step when the CPU is halted
const haltedCycles = 4

// the opcode that selects the prefixed instruction table
const prefix = 0xcb

// CPU implements the SM83 CPU.
type CPU struct {
	PC registers.ProgramCounter
	SP registers.StackPointer
	A  registers.Register
	F  registers.Flags
	B  registers.Register
	C  registers.Register
	D  registers.Register
	E  registers.Register
	H  registers.Register
	L  registers.Register

	// 16 bit views of the 8 bit registers
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair

	// the master interrupt enable flag
	IME bool

	// the number of steps remaining before IME is set. the EI instruction
	// sets the value to two so that interrupts are enabled after the
	// following instruction has completed
	imeDelay int

	// the CPU is waiting for an interrupt. set by HALT and STOP
	Halted bool

	// the CPU has encountered an undefined opcode. requires a Reset()
	Killed bool
	killed error

	// the most recently executed instruction and the address it was fetched
	// from. LastDefn is nil if the last step dispatched an interrupt or was
	// a halted step
	LastDefn    *instructions.Definition
	LastAddress uint16

	bus          cpubus.Bus
	instructions []*instructions.Definition
	prefixed     []*instructions.Definition
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU is reset to the power-on state.
func NewCPU(bus cpubus.Bus) *CPU {
	mc := &CPU{
		bus:          bus,
		A:            registers.NewRegister(0, "A"),
		B:            registers.NewRegister(0, "B"),
		C:            registers.NewRegister(0, "C"),
		D:            registers.NewRegister(0, "D"),
		E:            registers.NewRegister(0, "E"),
		H:            registers.NewRegister(0, "H"),
		L:            registers.NewRegister(0, "L"),
		instructions: instructions.GetDefinitions(),
		prefixed:     instructions.GetPrefixedDefinitions(),
	}
	mc.pairs()
	mc.Reset()
	return mc
}

// the Pair types point to the 8 bit registers so they must be recreated
// whenever the CPU is copied
func (mc *CPU) pairs() {
	mc.BC = registers.NewPair(&mc.B, &mc.C)
	mc.DE = registers.NewPair(&mc.D, &mc.E)
	mc.HL = registers.NewPair(&mc.H, &mc.L)
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	n.pairs()
	return &n
}

// Plumb a new bus into the CPU.
func (mc *CPU) Plumb(bus cpubus.Bus) {
	mc.bus = bus
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s SP=%s A=%s F=%s BC=%s DE=%s HL=%s IME=%v",
		mc.PC, mc.SP, mc.A, mc.F, mc.BC, mc.DE, mc.HL, mc.IME)
}

// Reset the CPU to the state it is in after the boot ROM has finished.
func (mc *CPU) Reset() {
	mc.A.Load(0x01)
	mc.F.FromValue(0xb0)
	mc.BC.Load(0x0013)
	mc.DE.Load(0x00d8)
	mc.HL.Load(0x014d)
	mc.SP.Load(0xfffe)
	mc.PC.Load(0x0100)
	mc.IME = false
	mc.imeDelay = 0
	mc.Halted = false
	mc.Killed = false
	mc.killed = nil
	mc.LastDefn = nil
	mc.LastAddress = 0
}

// AF returns the value of the A and F registers as a 16 bit value.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.F.Value())
}

// LoadAF sets the A and F registers from a 16 bit value.
func (mc *CPU) LoadAF(val uint16) {
	mc.A.Load(uint8(val >> 8))
	mc.F.FromValue(uint8(val))
}

// Step executes a single instruction or dispatches a single interrupt.
// Returns the number of cycles used.
func (mc *CPU) Step() (int, error) {
	if mc.Killed {
		return 0, mc.killed
	}

	mc.LastDefn = nil

	if mc.IME || mc.Halted {
		ints := mc.bus.Interrupts()
		if src, ok := ints.Next(); ok {
			mc.Halted = false
			if mc.IME {
				ints.Acknowledge(src)
				mc.IME = false
				mc.push16(mc.PC.Address())
				mc.PC.Load(src.Vector())
				return DispatchCycles, nil
			}
		}
	}

	if mc.Halted {
		return haltedCycles, nil
	}

	mc.LastAddress = mc.PC.Address()

	opcode := mc.fetch()
	defn := mc.instructions[opcode]
	op := operations[opcode]

	if opcode == prefix {
		opcode = mc.fetch()
		defn = mc.prefixed[opcode]
		op = prefixedOperations[opcode]
	}

	mc.LastDefn = defn

	if defn.Undefined || op == nil {
		mc.Killed = true
		mc.killed = curated.Errorf(UndefinedOpcode, opcode, mc.LastAddress)
		return 0, mc.killed
	}

	taken := op(mc)

	if mc.imeDelay > 0 {
		mc.imeDelay--
		if mc.imeDelay == 0 {
			mc.IME = true
		}
	}

	return defn.CyclesFor(taken), nil
}

// fetch the byte at the PC and advance the PC.
func (mc *CPU) fetch() uint8 {
	v := mc.bus.Read(mc.PC.Address())
	mc.PC.Increment()
	return v
}

// fetch16 fetches a little-endian 16 bit value at the PC.
func (mc *CPU) fetch16() uint16 {
	lo := mc.fetch()
	hi := mc.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) read16(address uint16) uint16 {
	lo := mc.bus.Read(address)
	hi := mc.bus.Read(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) write16(address uint16, val uint16) {
	mc.bus.Write(address, uint8(val))
	mc.bus.Write(address+1, uint8(val>>8))
}

// push16 decrements the SP by two and stores the value at the new SP.
func (mc *CPU) push16(val uint16) {
	mc.SP.Decrement()
	mc.bus.Write(mc.SP.Address(), uint8(val>>8))
	mc.SP.Decrement()
	mc.bus.Write(mc.SP.Address(), uint8(val))
}

// pop16 loads the value at the SP and increments the SP by two.
func (mc *CPU) pop16() uint16 {
	lo := mc.bus.Read(mc.SP.Address())
	mc.SP.Increment()
	hi := mc.bus.Read(mc.SP.Address())
	mc.SP.Increment()
	return uint16(hi)<<8 | uint16(lo)
}
