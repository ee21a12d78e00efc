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

package cpubus_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
	"github.com/gopherboy/gopherboy/test"
)

func TestNames(t *testing.T) {
	test.ExpectEquality(t, cpubus.Name(0xff44), "LY")
	test.ExpectEquality(t, cpubus.Name(0xffff), "IE")
	test.ExpectEquality(t, cpubus.Name(0xff03), "0xff03")
	test.ExpectEquality(t, cpubus.Addresses[cpubus.NR52], uint16(0xff26))
}
