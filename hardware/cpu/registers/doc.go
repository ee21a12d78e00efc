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

// Package registers implements the registers of the SM83 CPU. The eight
// general purpose registers are of type Register. Pairs of registers can be
// addressed together with the Pair type. The flags register is of type
// Flags, and the 16 bit program counter and stack pointer have their own
// types.
//
// The arithmetic functions of the Register type return the carry and
// half-carry results of the operation. It is up to the CPU to decide how
// those results affect the flags register.
package registers
