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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/gopherboy/gopherboy/disassembly"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/test"
)

// two banks filled with an undefined opcode and a short program from the
// entry point
func program() []uint8 {
	data := make([]uint8, 2*cartridge.ROMBankSize)
	for i := range data {
		data[i] = 0xd3
	}

	copy(data[0x0100:], []uint8{0x00, 0xc3, 0x50, 0x01})

	// LD A,d8 that would overlap the jump destination if decoded linearly
	data[0x014f] = 0x3e

	copy(data[0x0150:], []uint8{
		0x3e, 0x42, // LD A,$42
		0x18, 0x02, // JR $0156
		0xdd, 0xdd,
		0xcd, 0x00, 0x40, // CALL $4000
		0x76, // HALT
		0xcb, 0x80, // RES 0,B
	})

	// never reached from an entry point
	copy(data[0x0200:], []uint8{0x3e, 0x11})

	data[cartridge.ROMBankSize] = 0xc9

	return data
}

func TestFlow(t *testing.T) {
	dsm, err := disassembly.FromData(program())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.NumBanks(), 2)

	blessed := []struct {
		bank     int
		addr     uint16
		mnemonic string
	}{
		{0, 0x0100, "NOP"},
		{0, 0x0101, "JP $0150"},
		{0, 0x0150, "LD A,$42"},
		{0, 0x0152, "JR $0156"},
		{0, 0x0156, "CALL $4000"},
		{0, 0x0159, "HALT"},
		{0, 0x015a, "RES 0,B"},
		{1, 0x4000, "RET"},
	}

	for _, b := range blessed {
		e := dsm.Get(b.bank, b.addr)
		if e == nil {
			t.Fatalf("no entry at %02x:%04x", b.bank, b.addr)
		}
		test.ExpectEquality(t, e.Level, disassembly.EntryLevelBlessed)
		test.ExpectEquality(t, e.Mnemonic(), b.mnemonic)
	}

	// skipped by the relative jump
	e := dsm.Get(0, 0x0154)
	test.DemandSuccess(t, e != nil)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelData)
	test.ExpectEquality(t, e.Mnemonic(), "db $dd")

	e = dsm.Get(0, 0x0200)
	test.DemandSuccess(t, e != nil)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectEquality(t, e.Mnemonic(), "LD A,$11")
}

func TestOverlap(t *testing.T) {
	dsm, err := disassembly.FromData(program())
	test.DemandSuccess(t, err)

	e := dsm.Get(0, 0x014f)
	test.DemandSuccess(t, e != nil)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelData)
	test.ExpectEquality(t, e.Mnemonic(), "db $3e")
}

func TestNoData(t *testing.T) {
	_, err := disassembly.FromData(nil)
	test.ExpectFailure(t, err)
}

func TestPadding(t *testing.T) {
	dsm, err := disassembly.FromData(make([]uint8, cartridge.ROMBankSize+1))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.NumBanks(), 2)
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromData(program())
	test.DemandSuccess(t, err)

	var s strings.Builder
	err = dsm.WriteBank(&s, disassembly.WriteAttr{ByteCode: true, Cycles: true, Blessed: true}, 0)
	test.DemandSuccess(t, err)

	out := s.String()
	test.ExpectSuccess(t, strings.HasPrefix(out, "--- bank 0 ---\n"))
	test.ExpectSuccess(t, strings.Contains(out, "0150  3e 42"))
	test.ExpectSuccess(t, strings.Contains(out, "LD A,$42"))
	test.ExpectSuccess(t, strings.Contains(out, "JR $0156"))
	test.ExpectSuccess(t, !strings.Contains(out, "db $dd"))

	err = dsm.WriteBank(&s, disassembly.WriteAttr{}, 2)
	test.ExpectFailure(t, err)
}

func TestRelativeOperands(t *testing.T) {
	data := make([]uint8, cartridge.ROMBankSize)
	copy(data[0x0100:], []uint8{
		0xe8, 0xfe, // ADD SP,-2
		0xe0, 0x40, // LDH ($ff40),A
		0x18, 0xfa, // JR $0100
	})

	dsm, err := disassembly.FromData(data)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dsm.Get(0, 0x0100).Mnemonic(), "ADD SP,-2")
	test.ExpectEquality(t, dsm.Get(0, 0x0102).Mnemonic(), "LDH ($ff40),A")
	test.ExpectEquality(t, dsm.Get(0, 0x0104).Mnemonic(), "JR $0100")
	test.ExpectEquality(t, dsm.Get(0, 0x0104).Cycles(), "12")
}
