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

// Package memory implements the memory management unit. The Memory type is
// the single owner of every area of the address space and of the
// peripherals that are mapped into it. The CPU only ever sees memory through
// an instance of Memory, using the cpubus.Bus interface.
//
// The following diagram shows how the parts of the console are connected.
// The DMA engine is part of Memory and has a direct path to every area,
// including the OAM owned by the video unit.
//
//	                          CARTRIDGE
//	                              |
//	                              |
//	    CPU ---- cpu bus ---- MEMORY ---- DMA ---- OAM
//	                              |
//	                              |
//	     VIDEO --- APU --- TIMER --- JOYPAD --- SERIAL --- INTERRUPTS
//
// The Update() function advances the DMA engine and then every peripheral
// by the same number of cycles. Interrupts requested by the peripherals are
// passed to the interrupt controller.
//
// Reads of addresses that are not connected to anything are logged and
// return cpubus.Sentinel. Writes to those addresses are logged and ignored.
package memory
