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

package memory

import (
	"fmt"
	"strings"
)

// ram is an area of memory that belongs to the console rather than to the
// cartridge or to a peripheral.
type ram struct {
	origin uint16
	data   []uint8
}

func newRAM(origin uint16, size int) *ram {
	return &ram{
		origin: origin,
		data:   make([]uint8, size),
	}
}

// String returns a hex dump of the memory area.
func (r *ram) String() string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < len(r.data); y += 16 {
		s.WriteString(fmt.Sprintf("%04x | ", int(r.origin)+y))
		for x := y; x < min(y+16, len(r.data)); x++ {
			s.WriteString(fmt.Sprintf(" %02x", r.data[x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

func (r *ram) clear() {
	clear(r.data)
}

// offset is relative to the origin of the memory area
func (r *ram) read(offset uint16) uint8 {
	return r.data[int(offset)%len(r.data)]
}

func (r *ram) write(offset uint16, data uint8) {
	r.data[int(offset)%len(r.data)] = data
}
