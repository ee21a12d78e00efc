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

// Pair is a 16 bit view of two 8 bit registers. The first register is the
// high byte.
type Pair struct {
	label string
	hi    *Register
	lo    *Register
}

// NewPair is the preferred method of initialisation for Pair.
func NewPair(hi *Register, lo *Register) Pair {
	return Pair{
		label: hi.Label() + lo.Label(),
		hi:    hi,
		lo:    lo,
	}
}

// Label returns the name of the register pair.
func (p Pair) Label() string {
	return p.label
}

func (p Pair) String() string {
	return fmt.Sprintf("%04x", p.Value())
}

// Value returns the 16 bit value of the register pair.
func (p Pair) Value() uint16 {
	return uint16(p.hi.value)<<8 | uint16(p.lo.value)
}

// Load a 16 bit value into the register pair.
func (p Pair) Load(val uint16) {
	p.hi.value = uint8(val >> 8)
	p.lo.value = uint8(val)
}

// Increment the register pair. Wraps around without affecting any flags.
func (p Pair) Increment() {
	p.Load(p.Value() + 1)
}

// Decrement the register pair. Wraps around without affecting any flags.
func (p Pair) Decrement() {
	p.Load(p.Value() - 1)
}
