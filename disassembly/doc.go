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

// Package disassembly creates a static disassembly of cartridge data.
//
// Every ROM bank is decoded linearly from its first byte. Before that, the
// flow of instructions is followed from the entry point at $0100 and from
// the restart and interrupt vectors. Instructions reached by following the
// flow are "blessed" and the linear decoding is aligned to them. Bytes that
// cannot start an instruction without overlapping a blessed instruction are
// shown as data.
//
// Bank zero is always at $0000. All other banks are shown at $4000. Flow
// from bank zero into $4000-$7fff is followed into bank one.
package disassembly
