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

package hardware

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/cpu/instructions"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// DebugState is a copy of the values that are most useful when inspecting
// the state of the console.
type DebugState struct {
	A, F, B, C, D, E, H, L uint8

	SP uint16
	PC uint16

	IME    bool
	Halted bool

	IE   uint8
	IF   uint8
	LCDC uint8
	STAT uint8
	LY   uint8

	// the instruction at the PC
	Mnemonic string
}

func (s DebugState) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x A=%02x F=%02x B=%02x C=%02x D=%02x E=%02x H=%02x L=%02x IME=%v halted=%v IE=%02x IF=%02x LCDC=%02x STAT=%02x LY=%d [%s]",
		s.PC, s.SP, s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.IME, s.Halted, s.IE, s.IF, s.LCDC, s.STAT, s.LY, s.Mnemonic)
}

// DebugState returns the current state of the console.
func (con *Console) DebugState() DebugState {
	mc := con.CPU
	s := DebugState{
		A:      mc.A.Value(),
		F:      mc.F.Value(),
		B:      mc.B.Value(),
		C:      mc.C.Value(),
		D:      mc.D.Value(),
		E:      mc.E.Value(),
		H:      mc.H.Value(),
		L:      mc.L.Value(),
		SP:     mc.SP.Address(),
		PC:     mc.PC.Address(),
		IME:    mc.IME,
		Halted: mc.Halted,
		IE:     con.Mem.Peek(cpubus.AddrIE),
		IF:     con.Mem.Peek(cpubus.AddrIF),
		LCDC:   con.Mem.Peek(cpubus.AddrLCDC),
		STAT:   con.Mem.Peek(cpubus.AddrSTAT),
		LY:     con.Mem.Peek(cpubus.AddrLY),
	}

	s.Mnemonic = con.disassemble(s.PC).Mnemonic

	return s
}

// the instruction definition for the opcode at the address
func (con *Console) disassemble(addr uint16) *instructions.Definition {
	opcode := con.Mem.Peek(addr)
	if opcode == 0xcb {
		return instructions.GetPrefixedDefinitions()[con.Mem.Peek(addr+1)]
	}
	return instructions.GetDefinitions()[opcode]
}
