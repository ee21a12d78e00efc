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

import (
	"fmt"
)

// Register is an 8 bit register.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for Register.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

func (r Register) String() string {
	return fmt.Sprintf("%02x", r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// IsZero returns true if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register, with optional carry in. Returns the carry and
// half-carry results.
func (r *Register) Add(val uint8, carry bool) (rcarry bool, half bool) {
	var c uint16
	if carry {
		c = 1
	}
	sum := uint16(r.value) + uint16(val) + c
	half = (r.value&0x0f)+(val&0x0f)+uint8(c) > 0x0f
	r.value = uint8(sum)
	return sum > 0xff, half
}

// Subtract value from register, with optional borrow in. Returns the borrow
// and half-borrow results.
func (r *Register) Subtract(val uint8, borrow bool) (rborrow bool, half bool) {
	var b int
	if borrow {
		b = 1
	}
	diff := int(r.value) - int(val) - b
	half = int(r.value&0x0f)-int(val&0x0f)-b < 0
	r.value = uint8(diff)
	return diff < 0, half
}

// Increment register by one. Returns the half-carry result.
func (r *Register) Increment() bool {
	half := r.value&0x0f == 0x0f
	r.value++
	return half
}

// Decrement register by one. Returns the half-borrow result.
func (r *Register) Decrement() bool {
	half := r.value&0x0f == 0x00
	r.value--
	return half
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// RLC rotates the register left. Bit 7 goes to bit 0 and to the carry.
func (r *Register) RLC() bool {
	carry := r.value&0x80 == 0x80
	r.value = r.value<<1 | r.value>>7
	return carry
}

// RRC rotates the register right. Bit 0 goes to bit 7 and to the carry.
func (r *Register) RRC() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value<<7
	return carry
}

// RL rotates the register left through the carry.
func (r *Register) RL(carry bool) bool {
	rcarry := r.value&0x80 == 0x80
	r.value <<= 1
	if carry {
		r.value |= 0x01
	}
	return rcarry
}

// RR rotates the register right through the carry.
func (r *Register) RR(carry bool) bool {
	rcarry := r.value&0x01 == 0x01
	r.value >>= 1
	if carry {
		r.value |= 0x80
	}
	return rcarry
}

// SLA shifts the register left. Bit 0 is cleared.
func (r *Register) SLA() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}

// SRA shifts the register right. Bit 7 is unchanged.
func (r *Register) SRA() bool {
	carry := r.value&0x01 == 0x01
	r.value = r.value>>1 | r.value&0x80
	return carry
}

// SRL shifts the register right. Bit 7 is cleared.
func (r *Register) SRL() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

// Swap the upper and lower nibbles of the register.
func (r *Register) Swap() {
	r.value = r.value<<4 | r.value>>4
}
