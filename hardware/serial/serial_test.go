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

package serial_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
	"github.com/gopherboy/gopherboy/hardware/serial"
	"github.com/gopherboy/gopherboy/test"
)

func TestPoll(t *testing.T) {
	sr := serial.NewSerial()

	_, ok := sr.Poll()
	test.ExpectFailure(t, ok)

	sr.Write(cpubus.AddrSB, 'G')
	test.ExpectEquality(t, sr.Read(cpubus.AddrSB), 'G')

	// external clock transfers are not polled
	sr.Write(cpubus.AddrSC, 0x80)
	_, ok = sr.Poll()
	test.ExpectFailure(t, ok)

	sr.Write(cpubus.AddrSC, 0x81)
	test.ExpectEquality(t, sr.Read(cpubus.AddrSC), 0xff)

	v, ok := sr.Poll()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 'G')
	test.ExpectEquality(t, sr.Read(cpubus.AddrSC), 0x7f)

	// transfer has been acknowledged
	_, ok = sr.Poll()
	test.ExpectFailure(t, ok)
}
