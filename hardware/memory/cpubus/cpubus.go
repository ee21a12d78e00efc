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

// Package cpubus defines the interface between the CPU and the rest of the
// console. The CPU sees memory through the Memory interface. The Bus
// interface adds access to the interrupt controller.
//
// Reads and writes never fail. Addresses that are not mapped to anything
// return 0xff when read and ignore writes.
//
// The package also contains the names of the memory mapped IO registers.
package cpubus

import "github.com/gopherboy/gopherboy/hardware/interrupts"

// Memory defines the operations for the memory system when accessed from
// the CPU.
type Memory interface {
	Read(address uint16) uint8
	Write(address uint16, data uint8)
}

// Bus is the complete view of the console from the CPU.
type Bus interface {
	Memory

	// interrupt registers are accessed directly by the CPU and are not
	// affected by bus contention
	Interrupts() *interrupts.Controller
}

// Sentinel is the value returned by reads of addresses that are not
// connected to anything, or that are inaccessible at the time of the read.
const Sentinel = uint8(0xff)
