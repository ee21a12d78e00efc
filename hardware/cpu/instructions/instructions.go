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

// Package instructions defines the instruction set of the SM83 CPU. The
// definitions are data only. Each Definition gives the mnemonic, the number
// of bytes and the number of cycles of an instruction. The behaviour of each
// instruction is implemented by the cpu package.
//
// There are two tables of 256 entries. The primary table is indexed by the
// opcode byte. The prefixed table is indexed by the byte that follows the
// 0xcb prefix. Every opcode in both tables has a definition. The eleven
// opcodes of the primary table that have no behaviour on the hardware are
// marked as Undefined.
package instructions

import "fmt"

// Category is a broad classification of an instruction's effect.
type Category int

// List of valid Category values.
const (
	Control Category = iota
	Load
	Load16
	ALU
	ALU16
	Bit
	Stack
	Flow
	Subroutine
	Prefix
)

func (c Category) String() string {
	switch c {
	case Control:
		return "control"
	case Load:
		return "load"
	case Load16:
		return "load16"
	case ALU:
		return "alu"
	case ALU16:
		return "alu16"
	case Bit:
		return "bit"
	case Stack:
		return "stack"
	case Flow:
		return "flow"
	case Subroutine:
		return "subroutine"
	case Prefix:
		return "prefix"
	}
	return "unknown category"
}

// Definition defines each instruction in the instruction set.
type Definition struct {
	OpCode   uint8
	Prefixed bool
	Mnemonic string
	Bytes    int

	// cycles are T-cycles (four per machine cycle)
	Cycles int

	// the cycles used by a conditional instruction when the condition is met.
	// zero for instructions that are not conditional
	TakenCycles int

	Category  Category
	Undefined bool
}

func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	var op string
	if defn.Prefixed {
		op = fmt.Sprintf("cb %02x", defn.OpCode)
	} else {
		op = fmt.Sprintf("%02x", defn.OpCode)
	}
	if defn.IsConditional() {
		return fmt.Sprintf("%s %s +%dbytes (%d/%d cycles) [%s]", op, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.TakenCycles, defn.Category)
	}
	return fmt.Sprintf("%s %s +%dbytes (%d cycles) [%s]", op, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Category)
}

// IsConditional returns true if the number of cycles used by the instruction
// depends on whether a condition is met.
func (defn Definition) IsConditional() bool {
	return defn.TakenCycles > 0
}

// CyclesFor returns the number of cycles used by the instruction, depending
// on whether a conditional branch was taken.
func (defn Definition) CyclesFor(taken bool) int {
	if taken && defn.IsConditional() {
		return defn.TakenCycles
	}
	return defn.Cycles
}

// GetDefinitions returns the primary instruction table, indexed by opcode.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, len(definitions))
	for i := range definitions {
		defs[i] = &definitions[i]
	}
	return defs
}

// GetPrefixedDefinitions returns the instruction table for opcodes that
// follow the 0xcb prefix.
func GetPrefixedDefinitions() []*Definition {
	defs := make([]*Definition, len(prefixedDefinitions))
	for i := range prefixedDefinitions {
		defs[i] = &prefixedDefinitions[i]
	}
	return defs
}
