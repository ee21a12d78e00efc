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

// Package bits contains helper functions for testing and manipulating the
// individual bits of a byte. Bits are numbered from zero (the least
// significant bit) to seven.
package bits

// Test returns true if bit n of v is set.
func Test(v uint8, n int) bool {
	return v&(1<<n) != 0
}

// Set returns v with bit n set.
func Set(v uint8, n int) uint8 {
	return v | (1 << n)
}

// Clear returns v with bit n cleared.
func Clear(v uint8, n int) uint8 {
	return v &^ (1 << n)
}

// SetTo returns v with bit n set or cleared according to b.
func SetTo(v uint8, n int, b bool) uint8 {
	if b {
		return Set(v, n)
	}
	return Clear(v, n)
}

// Extract returns the bits between msb and lsb inclusive, shifted down so
// that lsb is bit zero of the result.
//
//	Extract(0b10110100, 5, 2) == 0b1101
func Extract(v uint8, msb int, lsb int) uint8 {
	mask := uint8((1 << (msb - lsb + 1)) - 1)
	return (v >> lsb) & mask
}

// Bool returns 1 if b is true and 0 otherwise.
func Bool(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
