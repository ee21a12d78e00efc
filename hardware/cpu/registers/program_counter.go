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

package registers

import "fmt"

// ProgramCounter represents the PC register.
type ProgramCounter struct {
	value uint16
}

// NewProgramCounter is the preferred method of initialisation for
// ProgramCounter.
func NewProgramCounter(val uint16) ProgramCounter {
	return ProgramCounter{value: val}
}

// Label returns the name of the register.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%04x", pc.value)
}

// Address returns the current value of the PC as an address.
func (pc ProgramCounter) Address() uint16 {
	return pc.value
}

// Load value into PC.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Increment the PC by one, wrapping around at 0xffff.
func (pc *ProgramCounter) Increment() {
	pc.value++
}

// Relative adds the sign extended offset to the PC.
func (pc *ProgramCounter) Relative(offset uint8) {
	pc.value += uint16(int16(int8(offset)))
}

// StackPointer represents the SP register.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for
// StackPointer.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns the name of the register.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%04x", sp.value)
}

// Address returns the current value of the SP as an address.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load value into SP.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Increment the SP by one, wrapping around at 0xffff.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the SP by one, wrapping around at 0x0000.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Offset returns the result of adding the sign extended value to the SP,
// along with the carry and half-carry results of adding the value to the
// low byte of the SP. The SP itself is not changed.
func (sp StackPointer) Offset(offset uint8) (result uint16, carry bool, half bool) {
	result = sp.value + uint16(int16(int8(offset)))
	carry = (sp.value&0xff)+uint16(offset) > 0xff
	half = (sp.value&0x0f)+uint16(offset&0x0f) > 0x0f
	return result, carry, half
}
