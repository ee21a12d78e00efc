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
	"strings"
)

// Flags is the special purpose F register. The lower four bits of the
// register are always zero.
type Flags struct {
	Zero      bool
	Negative  bool
	HalfCarry bool
	Carry     bool
}

// Label returns the name of the register.
func (fl Flags) Label() string {
	return "F"
}

// String returns the flags as a string. Upper case letters indicate that the
// flag is set:
//
//	ZnHc
func (fl Flags) String() string {
	s := strings.Builder{}
	for _, f := range []struct {
		v   bool
		set rune
		clr rune
	}{
		{fl.Zero, 'Z', 'z'},
		{fl.Negative, 'N', 'n'},
		{fl.HalfCarry, 'H', 'h'},
		{fl.Carry, 'C', 'c'},
	} {
		if f.v {
			s.WriteRune(f.set)
		} else {
			s.WriteRune(f.clr)
		}
	}
	return s.String()
}

// Reset clears all flags.
func (fl *Flags) Reset() {
	fl.FromValue(0)
}

// Value converts the flags to a byte.
func (fl Flags) Value() uint8 {
	var v uint8
	if fl.Zero {
		v |= 0x80
	}
	if fl.Negative {
		v |= 0x40
	}
	if fl.HalfCarry {
		v |= 0x20
	}
	if fl.Carry {
		v |= 0x10
	}
	return v
}

// FromValue converts a byte to the flags. The lower four bits of the byte
// are ignored.
func (fl *Flags) FromValue(v uint8) {
	fl.Zero = v&0x80 == 0x80
	fl.Negative = v&0x40 == 0x40
	fl.HalfCarry = v&0x20 == 0x20
	fl.Carry = v&0x10 == 0x10
}

// Set all four flags at once.
func (fl *Flags) Set(zero, negative, half, carry bool) {
	fl.Zero = zero
	fl.Negative = negative
	fl.HalfCarry = half
	fl.Carry = carry
}
