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

package cpu_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/cpu"
	"github.com/gopherboy/gopherboy/hardware/interrupts"
)

// mockMem is a flat 64k of memory with an interrupt controller. the IE and
// IF registers are not mapped into the address space because the CPU always
// accesses them through Interrupts()
type mockMem struct {
	internal []uint8
	ints     *interrupts.Controller
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
		ints:     interrupts.NewController(),
	}
}

func (mem *mockMem) Read(address uint16) uint8 {
	return mem.internal[address]
}

func (mem *mockMem) Write(address uint16, data uint8) {
	mem.internal[address] = data
}

func (mem *mockMem) Interrupts() *interrupts.Controller {
	return mem.ints
}

// Clear sets all bytes in memory to zero and resets the interrupt
// controller with no requests pending.
func (mem *mockMem) Clear() {
	clear(mem.internal)
	mem.ints.Reset()
	mem.ints.WriteIF(0x00)
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.Write(uint16(i)+origin, b)
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if d := mem.Read(address); d != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", d, value, address)
	}
}

// prepare memory and CPU for a test. the CPU starts execution at origin.
func prepare(mc *cpu.CPU, mem *mockMem, origin uint16) {
	mem.Clear()
	mc.Reset()
	mc.PC.Load(origin)
}

func step(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	cycles, err := mc.Step()
	if err != nil {
		t.Fatal(err)
	}
	return cycles
}
