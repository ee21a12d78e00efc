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

package instructions_test

import (
	"strings"
	"testing"

	"github.com/gopherboy/gopherboy/hardware/cpu/instructions"
	"github.com/gopherboy/gopherboy/test"
)

func TestTableIntegrity(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.DemandEquality(t, len(defs), 256)

	var undefined int
	for i, d := range defs {
		test.ExpectEquality(t, d.OpCode, uint8(i))
		test.ExpectFailure(t, d.Prefixed)
		test.ExpectInequality(t, d.Mnemonic, "")
		test.ExpectSuccess(t, d.Cycles >= 4 && d.Cycles%4 == 0, d)
		test.ExpectSuccess(t, d.Bytes >= 1 && d.Bytes <= 3, d)
		if d.Undefined {
			undefined++
		}
	}
	test.ExpectEquality(t, undefined, 11)

	prefixed := instructions.GetPrefixedDefinitions()
	test.DemandEquality(t, len(prefixed), 256)
	for i, d := range prefixed {
		test.ExpectEquality(t, d.OpCode, uint8(i))
		test.ExpectSuccess(t, d.Prefixed)
		test.ExpectEquality(t, d.Bytes, 2)
		test.ExpectFailure(t, d.Undefined)
		if strings.HasSuffix(d.Mnemonic, "(HL)") {
			test.ExpectSuccess(t, d.Cycles == 12 || d.Cycles == 16, d)
		} else {
			test.ExpectEquality(t, d.Cycles, 8, d)
		}
	}
}

func TestCycles(t *testing.T) {
	defs := instructions.GetDefinitions()

	for _, c := range []struct {
		opcode uint8
		cycles int
		taken  int
	}{
		{0x3e, 8, 8},   // LD A,d8
		{0x76, 4, 4},   // HALT
		{0x20, 8, 12},  // JR NZ,r8
		{0xc0, 8, 20},  // RET NZ
		{0xc2, 12, 16}, // JP NZ,a16
		{0xc4, 12, 24}, // CALL NZ,a16
		{0xcd, 24, 24}, // CALL a16
		{0x08, 20, 20}, // LD (a16),SP
		{0x36, 12, 12}, // LD (HL),d8
		{0xe8, 16, 16}, // ADD SP,r8
	} {
		d := defs[c.opcode]
		test.ExpectEquality(t, d.CyclesFor(false), c.cycles, d)
		test.ExpectEquality(t, d.CyclesFor(true), c.taken, d)
	}
}

func TestString(t *testing.T) {
	defs := instructions.GetDefinitions()
	test.ExpectEquality(t, defs[0x3e].String(), "3e LD A,d8 +2bytes (8 cycles) [load]")
	test.ExpectEquality(t, defs[0x20].String(), "20 JR NZ,r8 +2bytes (8/12 cycles) [flow]")

	prefixed := instructions.GetPrefixedDefinitions()
	test.ExpectEquality(t, prefixed[0x7c].String(), "cb 7c BIT 7,H +2bytes (8 cycles) [bit]")
}
