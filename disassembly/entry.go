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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/gopherboy/gopherboy/hardware/cpu/instructions"
)

// EntryLevel describes the reliability of the Entry.
type EntryLevel int

// List of valid EntryLevel values in increasing reliability.
const (
	// the byte could not be decoded as an instruction
	EntryLevelData EntryLevel = iota

	// decoded as though the address is the start of an instruction
	EntryLevelDecoded

	// reached by following the flow from an entry point
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelData:
		return "data"
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown level"
}

// Entry is a disassembled instruction or a single byte of data.
type Entry struct {
	Bank    int
	Address uint16
	Level   EntryLevel

	// nil if the Level is EntryLevelData
	Defn *instructions.Definition

	// the bytes of the instruction, including any prefix
	Bytecode []uint8
}

// the operand value of an instruction with a 8 or 16 bit argument
func (e *Entry) operand() (uint16, bool) {
	switch len(e.Bytecode) {
	case 2:
		if e.Defn.Prefixed {
			return 0, false
		}
		return uint16(e.Bytecode[1]), true
	case 3:
		return uint16(e.Bytecode[1]) | uint16(e.Bytecode[2])<<8, true
	}
	return 0, false
}

// Mnemonic returns the instruction with the placeholder replaced by the
// operand.
func (e *Entry) Mnemonic() string {
	if e.Level == EntryLevelData || e.Defn == nil {
		return fmt.Sprintf("db $%02x", e.Bytecode[0])
	}

	v, ok := e.operand()
	if !ok {
		return e.Defn.Mnemonic
	}

	m := e.Defn.Mnemonic
	switch {
	case strings.Contains(m, "SP+r8"):
		return strings.Replace(m, "SP+r8", fmt.Sprintf("SP%+d", int8(v)), 1)
	case strings.HasPrefix(m, "JR"):
		return strings.Replace(m, "r8", fmt.Sprintf("$%04x", relative(e.Address, uint8(v))), 1)
	case strings.Contains(m, "r8"):
		return strings.Replace(m, "r8", fmt.Sprintf("%+d", int8(v)), 1)
	case strings.Contains(m, "a8"):
		return strings.Replace(m, "a8", fmt.Sprintf("$ff%02x", v), 1)
	case strings.Contains(m, "d8"):
		return strings.Replace(m, "d8", fmt.Sprintf("$%02x", v), 1)
	case strings.Contains(m, "a16"):
		return strings.Replace(m, "a16", fmt.Sprintf("$%04x", v), 1)
	case strings.Contains(m, "d16"):
		return strings.Replace(m, "d16", fmt.Sprintf("$%04x", v), 1)
	}

	return m
}

// the destination of a relative jump at the address
func relative(addr uint16, offset uint8) uint16 {
	return addr + 2 + uint16(int8(offset))
}

// Cycles returns the number of cycles of the instruction. Conditional
// instructions show both values.
func (e *Entry) Cycles() string {
	if e.Defn == nil {
		return ""
	}
	if e.Defn.TakenCycles > 0 {
		return fmt.Sprintf("%d/%d", e.Defn.Cycles, e.Defn.TakenCycles)
	}
	return fmt.Sprintf("%d", e.Defn.Cycles)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%02x:%04x %s", e.Bank, e.Address, e.Mnemonic())
}
