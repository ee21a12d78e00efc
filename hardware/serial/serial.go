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

// Package serial implements the serial data (SB) and serial control (SC)
// registers. There is no link partner and no transfer takes place. The
// registers are exposed so that a test harness can collect output written
// by test programs.
package serial

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// SC bits
const (
	transferStart = 0x80
	internalClock = 0x01
)

// Serial implements the SB and SC registers.
type Serial struct {
	SB uint8
	SC uint8
}

// NewSerial is the preferred method of initialisation for the Serial type.
func NewSerial() *Serial {
	return &Serial{}
}

// Reset serial registers to power-on state.
func (sr *Serial) Reset() {
	sr.SB = 0x00
	sr.SC = 0x00
}

func (sr *Serial) String() string {
	return fmt.Sprintf("SB=%#02x SC=%#02x", sr.SB, sr.Read(cpubus.AddrSC))
}

// Read implements the cpubus.Memory interface.
func (sr *Serial) Read(addr uint16) uint8 {
	switch addr {
	case cpubus.AddrSB:
		return sr.SB
	case cpubus.AddrSC:
		// unused bits read as one
		return sr.SC | 0x7e
	}
	return cpubus.Sentinel
}

// Write implements the cpubus.Memory interface.
func (sr *Serial) Write(addr uint16, data uint8) {
	switch addr {
	case cpubus.AddrSB:
		sr.SB = data
	case cpubus.AddrSC:
		sr.SC = data & (transferStart | internalClock)
	}
}

// Update implements the peripheral update contract. No transfer takes
// place so no interrupt is ever requested.
func (sr *Serial) Update(_ int) interrupts.Flag {
	return interrupts.None
}

// Poll checks for a transfer started with the internal clock. If one has
// been started the transfer start bit is cleared and the value of SB is
// returned. The boolean is false if no transfer was started.
func (sr *Serial) Poll() (uint8, bool) {
	if sr.SC != transferStart|internalClock {
		return 0, false
	}
	sr.SC = internalClock
	return sr.SB, true
}
