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

package cartridge

import (
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// size of the RAM built into the MBC2 chip. each location is four bits wide
const mbc2RAMSize = 512

// mbc2 supports up to 256KB of ROM and has 512 x 4bit RAM built in.
//
// Both the RAM enable and the bank select registers are in the
// 0x0000-0x3fff range. Bit 8 of the address decides which is written.
type mbc2 struct {
	env *environment.Environment

	rom   []uint8
	ramBk []uint8

	bank       uint8
	ramEnabled bool
}

func newMBC2(env *environment.Environment, h Header, data []uint8) (mapper, error) {
	rom, err := prepareROM(env, h, data, "MBC2", 16)
	if err != nil {
		return nil, err
	}

	cart := &mbc2{
		env:   env,
		rom:   rom,
		ramBk: make([]uint8, mbc2RAMSize),
	}
	cart.reset()

	return cart, nil
}

func (cart *mbc2) id() string {
	return "MBC2"
}

func (cart *mbc2) reset() {
	cart.bank = 1
	cart.ramEnabled = false
}

func (cart *mbc2) read(addr uint16) uint8 {
	if addr < 0x4000 {
		return cart.rom[addr]
	}
	if addr < 0x8000 {
		return cart.rom[bankOffset(cart.rom, ROMBankSize, int(cart.bank), addr)]
	}
	if !cart.ramEnabled {
		return cpubus.Sentinel
	}

	// the 512 locations repeat through the external RAM window
	return cart.ramBk[(addr-0xa000)&0x01ff] & 0x0f
}

func (cart *mbc2) write(addr uint16, data uint8) {
	if addr < 0x4000 {
		if addr&0x0100 == 0x0100 {
			cart.bank = data & 0x0f
			if cart.bank == 0 {
				cart.bank = 1
			}
		} else {
			cart.ramEnabled = data&0x0f == 0x0a
		}
		return
	}

	if addr < 0x8000 {
		return
	}

	if cart.ramEnabled {
		cart.ramBk[(addr-0xa000)&0x01ff] = data & 0x0f
	}
}

func (cart *mbc2) numBanks() int {
	return len(cart.rom) / ROMBankSize
}

func (cart *mbc2) getBank(addr uint16) BankInfo {
	if addr >= 0x8000 {
		return BankInfo{IsRAM: true, Enabled: cart.ramEnabled}
	}
	if addr < 0x4000 {
		return BankInfo{Enabled: true}
	}
	return BankInfo{Number: int(cart.bank) % cart.numBanks(), Enabled: true}
}

func (cart *mbc2) ram() []uint8 {
	return cart.ramBk
}
