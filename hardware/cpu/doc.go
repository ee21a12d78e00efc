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

// Package cpu emulates the SM83 CPU found in the DMG. The CPU is created
// with NewCPU() and given a cpubus.Bus through which it accesses memory and
// the interrupt controller.
//
// The Step() function executes a single instruction, or dispatches a single
// interrupt, and returns the number of T-cycles used. It is the
// responsibility of the caller to advance the rest of the console by that
// number of cycles.
//
// The behaviour of each instruction is held in a table indexed by opcode.
// The cycle counts come from the definitions in the instructions package.
//
// The CPU is killed if it encounters an undefined opcode. Step() will return
// the same UndefinedOpcode error on every call until the CPU is Reset().
package cpu
