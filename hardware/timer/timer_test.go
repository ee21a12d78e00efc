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

package timer_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
	"github.com/gopherboy/gopherboy/hardware/timer"
	"github.com/gopherboy/gopherboy/test"
)

func TestDivider(t *testing.T) {
	tmr := timer.NewTimer()

	test.ExpectEquality(t, tmr.Update(255), interrupts.None)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrDIV), 0x00)
	tmr.Update(1)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrDIV), 0x01)
	tmr.Update(256 * 10)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrDIV), 0x0b)

	// any write resets the divider, including the partial count
	tmr.Update(200)
	tmr.Write(cpubus.AddrDIV, 0x55)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrDIV), 0x00)
	tmr.Update(200)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrDIV), 0x00)
	tmr.Update(56)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrDIV), 0x01)

	// divider wraps
	tmr.Update(256 * 255)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrDIV), 0x00)
}

func TestIntervals(t *testing.T) {
	for tac, cycles := range map[uint8]int{0x04: 1024, 0x05: 16, 0x06: 64, 0x07: 256} {
		tmr := timer.NewTimer()
		tmr.Write(cpubus.AddrTAC, tac)
		test.ExpectEquality(t, int(tmr.Interval()), cycles, tac)

		tmr.Update(cycles - 1)
		test.ExpectEquality(t, tmr.Read(cpubus.AddrTIMA), 0x00, tac)
		tmr.Update(1)
		test.ExpectEquality(t, tmr.Read(cpubus.AddrTIMA), 0x01, tac)
	}
}

func TestStopped(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Write(cpubus.AddrTAC, 0x01)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrTAC), 0xf9)
	test.ExpectFailure(t, tmr.Enabled())
	tmr.Update(10000)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrTIMA), 0x00)
}

func TestOverflow(t *testing.T) {
	tmr := timer.NewTimer()
	tmr.Write(cpubus.AddrTMA, 0xf0)
	tmr.Write(cpubus.AddrTIMA, 0xfe)
	tmr.Write(cpubus.AddrTAC, 0x05)

	test.ExpectEquality(t, tmr.Update(16), interrupts.None)
	test.ExpectEquality(t, tmr.Read(cpubus.AddrTIMA), 0xff)

	test.ExpectEquality(t, tmr.Update(16), interrupts.Timer.Flag())
	test.ExpectEquality(t, tmr.Read(cpubus.AddrTIMA), 0xf0)

	// overflow in the middle of a long update
	test.ExpectEquality(t, tmr.Update(16*20), interrupts.Timer.Flag())
	test.ExpectEquality(t, tmr.Read(cpubus.AddrTIMA), 0xf4)
}
