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

// Package timer implements the divider and the programmable timer.
//
// The divider (DIV) increments every 256 cycles and is reset to zero by any
// write. The counter (TIMA) increments at the interval selected by the
// bottom two bits of TAC, when bit 2 of TAC is set. When the counter
// overflows it is reloaded from TMA and the Timer interrupt is requested.
package timer

import (
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/bits"
	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// Interval is the number of cycles between increments of the counter.
type Interval int

// List of valid Interval values. The names are the frequency of the
// interval.
const (
	Hz4096   Interval = 1024
	Hz262144 Interval = 16
	Hz65536  Interval = 64
	Hz16384  Interval = 256
)

// intervals indexed by the bottom two bits of TAC
var intervals = [4]Interval{Hz4096, Hz262144, Hz65536, Hz16384}

func (in Interval) String() string {
	switch in {
	case Hz4096:
		return "4096Hz"
	case Hz262144:
		return "262144Hz"
	case Hz65536:
		return "65536Hz"
	case Hz16384:
		return "16384Hz"
	}
	return "unknown interval"
}

// number of cycles between increments of the divider
const divInterval = 256

// Timer implements the DIV, TIMA, TMA and TAC registers.
type Timer struct {
	DIV  uint8
	TIMA uint8
	TMA  uint8
	TAC  uint8

	// cycles accumulated towards the next increment of DIV and TIMA
	divTicks  int
	timaTicks int
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	tmr := &Timer{}
	tmr.Reset()
	return tmr
}

// Reset timer to power-on state.
func (tmr *Timer) Reset() {
	*tmr = Timer{}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%#02x TIMA=%#02x TMA=%#02x TAC=%#02x (%s enabled=%v)",
		tmr.DIV, tmr.TIMA, tmr.TMA, tmr.TAC|0xf8, tmr.Interval(), tmr.Enabled())
}

// Interval returns the currently selected counter interval.
func (tmr *Timer) Interval() Interval {
	return intervals[bits.Extract(tmr.TAC, 1, 0)]
}

// Enabled returns true if the counter is running.
func (tmr *Timer) Enabled() bool {
	return bits.Test(tmr.TAC, 2)
}

// Read implements the cpubus.Memory interface.
func (tmr *Timer) Read(addr uint16) uint8 {
	switch addr {
	case cpubus.AddrDIV:
		return tmr.DIV
	case cpubus.AddrTIMA:
		return tmr.TIMA
	case cpubus.AddrTMA:
		return tmr.TMA
	case cpubus.AddrTAC:
		// unused bits read as one
		return tmr.TAC | 0xf8
	}
	return cpubus.Sentinel
}

// Write implements the cpubus.Memory interface.
func (tmr *Timer) Write(addr uint16, data uint8) {
	switch addr {
	case cpubus.AddrDIV:
		// any value written resets the divider
		tmr.DIV = 0
		tmr.divTicks = 0
	case cpubus.AddrTIMA:
		tmr.TIMA = data
	case cpubus.AddrTMA:
		tmr.TMA = data
	case cpubus.AddrTAC:
		tmr.TAC = data & 0x07
	}
}

// Update advances the timer by the number of cycles. Returns the Timer
// interrupt flag if the counter overflowed.
func (tmr *Timer) Update(cycles int) interrupts.Flag {
	tmr.divTicks += cycles
	for tmr.divTicks >= divInterval {
		tmr.divTicks -= divInterval
		tmr.DIV++
	}

	if !tmr.Enabled() {
		return interrupts.None
	}

	flg := interrupts.None

	interval := int(tmr.Interval())
	tmr.timaTicks += cycles
	for tmr.timaTicks >= interval {
		tmr.timaTicks -= interval
		tmr.TIMA++
		if tmr.TIMA == 0x00 {
			tmr.TIMA = tmr.TMA
			flg = interrupts.Timer.Flag()
		}
	}

	return flg
}
