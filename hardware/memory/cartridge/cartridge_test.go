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

package cartridge_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/test"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewDefaultPreferences(), logger.NewLogger(100))
	test.DemandSuccess(t, err)
	return env
}

// makeROM creates cartridge data where every byte of a bank is the bank
// number. The header is written over bank zero.
func makeROM(typ uint8, romCode uint8, ramCode uint8) []uint8 {
	banks := 2 << romCode
	data := make([]uint8, banks*cartridge.ROMBankSize)
	for b := range banks {
		for i := range cartridge.ROMBankSize {
			data[b*cartridge.ROMBankSize+i] = uint8(b)
		}
	}

	for i := 0x134; i < 0x150; i++ {
		data[i] = 0x00
	}
	copy(data[0x134:], "TESTCART")
	data[0x147] = typ
	data[0x148] = romCode
	data[0x149] = ramCode

	var chk uint8
	for _, c := range data[0x134:0x14d] {
		chk = chk - c - 1
	}
	data[0x14d] = chk

	return data
}

func TestHeader(t *testing.T) {
	data := makeROM(0x03, 0x04, 0x03)
	h, err := cartridge.ParseHeader(data)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, h.Title, "TESTCART")
	test.ExpectEquality(t, h.Type, 0x03)
	test.ExpectEquality(t, h.ROMBanks, 32)
	test.ExpectEquality(t, h.RAMBanks, 4)
	test.ExpectSuccess(t, h.ChecksumOK())
	test.ExpectSuccess(t, h.HasBattery())
	test.ExpectFailure(t, h.HasRTC())

	data[0x14d]++
	h, err = cartridge.ParseHeader(data)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, h.ChecksumOK())

	_, err = cartridge.ParseHeader(data[:0x100])
	test.ExpectSuccess(t, curated.Is(err, cartridge.HeaderError))

	// RAM size codes
	for code, banks := range map[uint8]int{0: 0, 1: 0, 2: 1, 3: 4, 4: -1} {
		data[0x149] = code
		h, err = cartridge.ParseHeader(data)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, h.RAMBanks, banks, code)
	}
}

func TestUnsupported(t *testing.T) {
	env := newEnv(t)

	_, err := cartridge.FromData(env, "test", makeROM(0x20, 0x00, 0x00))
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedType))

	// no-controller cartridge larger than 32KB
	_, err = cartridge.FromData(env, "test", makeROM(0x00, 0x01, 0x00))
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedROMSize))

	// MBC2 with more than 16 banks
	_, err = cartridge.FromData(env, "test", makeROM(0x05, 0x04, 0x00))
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedROMSize))

	// MBC1 with 4MB
	data := makeROM(0x01, 0x00, 0x00)
	data[0x148] = 0x07
	_, err = cartridge.FromData(env, "test", data)
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedROMSize))

	data = makeROM(0x02, 0x00, 0x05)
	_, err = cartridge.FromData(env, "test", data)
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedRAMSize))
}

func TestNoController(t *testing.T) {
	env := newEnv(t)

	data := makeROM(0x00, 0x00, 0x00)
	test.DemandEquality(t, len(data), 0x8000)
	data[0x7fff] = 0xab

	cart, err := cartridge.FromData(env, "test", data)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.ID(), "ROM")
	test.ExpectEquality(t, cart.NumBanks(), 2)

	test.ExpectEquality(t, cart.Read(0x7fff), 0xab)

	// writes anywhere are ignored
	for _, addr := range []uint16{0x0000, 0x1000, 0x2000, 0x4000, 0x6000, 0x7fff, 0xa000, 0xbfff} {
		before := cart.Read(addr)
		cart.Write(addr, ^before)
		test.ExpectEquality(t, cart.Read(addr), before, addr)
	}
	test.ExpectEquality(t, cart.Read(0x7fff), 0xab)
	test.ExpectEquality(t, cart.Read(0x4000), 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), 0xff)

	_, err = cart.SaveData()
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedSaveData))
	err = cart.LoadSaveData([]uint8{0x00})
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedSaveData))
}

func TestBankSwitchIdempotence(t *testing.T) {
	env := newEnv(t)

	for _, typ := range []uint8{0x01, 0x05, 0x11} {
		cart, err := cartridge.FromData(env, "test", makeROM(typ, 0x03, 0x00))
		test.DemandSuccess(t, err)
		test.DemandEquality(t, cart.NumBanks(), 16)

		// MBC2 bank register is selected by address bit 8
		reg := uint16(0x2000)
		if typ == 0x05 {
			reg = 0x2100
		}

		for bank := range 16 {
			cart.Write(reg, uint8(bank))
			once := []uint8{cart.Read(0x4000), cart.Read(0x5555), cart.Read(0x7fff)}
			cart.Write(reg, uint8(bank))
			twice := []uint8{cart.Read(0x4000), cart.Read(0x5555), cart.Read(0x7fff)}

			for i := range once {
				test.ExpectEquality(t, twice[i], once[i], cart.ID(), bank)
			}

			// bank zero is coerced to bank one
			expected := uint8(bank)
			if bank == 0 {
				expected = 1
			}
			test.ExpectEquality(t, once[0], expected, cart.ID(), bank)
			test.ExpectEquality(t, cart.GetBank(0x4000).Number, int(expected), cart.ID(), bank)
		}

		// fixed window is always bank zero
		test.ExpectEquality(t, cart.Read(0x0000), 0x00, cart.ID())
	}
}

func TestMBC1(t *testing.T) {
	env := newEnv(t)

	// 1MB ROM uses the upper bank bits
	cart, err := cartridge.FromData(env, "test", makeROM(0x01, 0x05, 0x00))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, cart.NumBanks(), 64)

	cart.Write(0x4000, 0x01)
	cart.Write(0x2000, 0x02)
	test.ExpectEquality(t, cart.Read(0x4000), 0x22)

	// the lower five bits of zero select bank one even with upper bits set
	cart.Write(0x2000, 0x00)
	test.ExpectEquality(t, cart.Read(0x4000), 0x21)

	// low window follows the upper bits only in mode 1
	test.ExpectEquality(t, cart.Read(0x0000), 0x00)
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0x0000), 0x20)
	cart.Write(0x6000, 0x00)
	test.ExpectEquality(t, cart.Read(0x0000), 0x00)

	// 32KB RAM
	cart, err = cartridge.FromData(env, "test", makeROM(0x03, 0x00, 0x03))
	test.DemandSuccess(t, err)

	// RAM is disabled at power on
	test.ExpectEquality(t, cart.Read(0xa000), 0xff)
	cart.Write(0xa000, 0x12)
	cart.Write(0x0000, 0x0a)
	test.ExpectEquality(t, cart.Read(0xa000), 0x00)

	// RAM bank only applies in mode 1
	cart.Write(0xa000, 0x11)
	cart.Write(0x4000, 0x02)
	test.ExpectEquality(t, cart.Read(0xa000), 0x11)
	cart.Write(0x6000, 0x01)
	test.ExpectEquality(t, cart.Read(0xa000), 0x00)
	cart.Write(0xa000, 0x22)
	test.ExpectEquality(t, cart.GetBank(0xa000).Number, 2)
	cart.Write(0x6000, 0x00)
	test.ExpectEquality(t, cart.Read(0xa000), 0x11)

	// any value with a low nibble other than 0x0a disables RAM
	cart.Write(0x1fff, 0x1b)
	test.ExpectEquality(t, cart.Read(0xa000), 0xff)
	test.ExpectFailure(t, cart.GetBank(0xa000).Enabled)

	// bank two data is in the save data
	d, err := cart.SaveData()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 4*cartridge.RAMBankSize)
	test.ExpectEquality(t, d[0], 0x11)
	test.ExpectEquality(t, d[2*cartridge.RAMBankSize], 0x22)
}

func TestMBC2(t *testing.T) {
	env := newEnv(t)

	cart, err := cartridge.FromData(env, "test", makeROM(0x06, 0x03, 0x00))
	test.DemandSuccess(t, err)

	// address bit 8 clear writes the RAM enable register
	cart.Write(0x2000, 0x05)
	test.ExpectEquality(t, cart.Read(0x4000), 0x01)
	cart.Write(0x0000, 0x0a)
	cart.Write(0xa000, 0xff)
	test.ExpectEquality(t, cart.Read(0xa000), 0x0f)

	// the 512 locations repeat
	cart.Write(0xa001, 0x35)
	test.ExpectEquality(t, cart.Read(0xa201), 0x05)
	test.ExpectEquality(t, cart.Read(0xbe01), 0x05)

	// address bit 8 set writes the bank register
	cart.Write(0x0100, 0x03)
	test.ExpectEquality(t, cart.Read(0x4000), 0x03)
	test.ExpectEquality(t, cart.Read(0xa001), 0x05)

	d, err := cart.SaveData()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 512)
}

func TestMBC3(t *testing.T) {
	env := newEnv(t)

	cart, err := cartridge.FromData(env, "test", makeROM(0x10, 0x06, 0x03))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, cart.NumBanks(), 128)

	// full seven bit bank number
	cart.Write(0x2000, 0x7f)
	test.ExpectEquality(t, cart.Read(0x4000), 0x7f)
	cart.Write(0x2000, 0x20)
	test.ExpectEquality(t, cart.Read(0x4000), 0x20)
	cart.Write(0x2000, 0x80)
	test.ExpectEquality(t, cart.Read(0x4000), 0x01)

	cart.Write(0x0000, 0x0a)
	cart.Write(0x4000, 0x03)
	cart.Write(0xa000, 0x33)
	test.ExpectEquality(t, cart.Read(0xa000), 0x33)

	// clock registers read as zero and ignore writes
	cart.Write(0x4000, 0x08)
	test.ExpectEquality(t, cart.Read(0xa000), 0x00)
	cart.Write(0xa000, 0x44)
	test.ExpectEquality(t, cart.Read(0xa000), 0x00)
	cart.Write(0x6000, 0x01)

	cart.Write(0x4000, 0x03)
	test.ExpectEquality(t, cart.Read(0xa000), 0x33)

	// the clock diagnostic is logged once at creation
	var count int
	env.Log.BorrowLog(func(e []logger.Entry) {
		for _, l := range e {
			if l.Tag == "mbc3" {
				count++
			}
		}
	})
	test.ExpectEquality(t, count, 1)
}

func TestSaveData(t *testing.T) {
	env := newEnv(t)

	cart, err := cartridge.FromData(env, "test", makeROM(0x03, 0x00, 0x02))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cart.HasBattery())

	// short data fills a prefix
	err = cart.LoadSaveData([]uint8{0x01, 0x02, 0x03})
	test.DemandSuccess(t, err)
	d, err := cart.SaveData()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), cartridge.RAMBankSize)
	test.ExpectEquality(t, d[0], 0x01)
	test.ExpectEquality(t, d[2], 0x03)
	test.ExpectEquality(t, d[3], 0x00)

	// long data is truncated
	long := make([]uint8, cartridge.RAMBankSize*2)
	for i := range long {
		long[i] = 0xee
	}
	err = cart.LoadSaveData(long)
	test.DemandSuccess(t, err)
	d, err = cart.SaveData()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), cartridge.RAMBankSize)
	test.ExpectEquality(t, d[cartridge.RAMBankSize-1], 0xee)

	// the save data is visible through the RAM window
	cart.Write(0x0000, 0x0a)
	test.ExpectEquality(t, cart.Read(0xa000), 0xee)

	// SaveData() returns a copy
	d[0] = 0x00
	test.ExpectEquality(t, cart.Read(0xa000), 0xee)

	// RAM without a battery
	cart, err = cartridge.FromData(env, "test", makeROM(0x02, 0x00, 0x02))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cart.HasBattery())
	_, err = cart.SaveData()
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedSaveData))
}
