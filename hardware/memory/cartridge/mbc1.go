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

// mbc1 supports up to 2MB of ROM and 32KB of RAM.
//
// The bank number is split across two registers. The lower five bits are
// written to 0x2000-0x3fff and the upper two bits to 0x4000-0x5fff. A value
// of zero in the lower register selects bank one. The mode register at
// 0x6000-0x7fff decides whether the upper two bits also apply to the low ROM
// window and to the RAM bank.
type mbc1 struct {
	env *environment.Environment

	rom   []uint8
	ramBk []uint8

	bankLo     uint8
	bankHi     uint8
	mode       bool
	ramEnabled bool
}

func newMBC1(env *environment.Environment, h Header, data []uint8) (mapper, error) {
	const id = "MBC1"

	rom, err := prepareROM(env, h, data, id, 128)
	if err != nil {
		return nil, err
	}

	ram, err := prepareRAM(h, id)
	if err != nil {
		return nil, err
	}

	cart := &mbc1{
		env:   env,
		rom:   rom,
		ramBk: ram,
	}
	cart.reset()

	return cart, nil
}

func (cart *mbc1) id() string {
	return "MBC1"
}

func (cart *mbc1) reset() {
	cart.bankLo = 1
	cart.bankHi = 0
	cart.mode = false
	cart.ramEnabled = false
}

func (cart *mbc1) romBank(addr uint16) int {
	if addr < 0x4000 {
		if cart.mode {
			return int(cart.bankHi) << 5
		}
		return 0
	}
	return int(cart.bankHi)<<5 | int(cart.bankLo)
}

func (cart *mbc1) ramBank() int {
	if cart.mode {
		return int(cart.bankHi)
	}
	return 0
}

func (cart *mbc1) read(addr uint16) uint8 {
	if addr < 0x8000 {
		return cart.rom[bankOffset(cart.rom, ROMBankSize, cart.romBank(addr), addr)]
	}
	if !cart.ramEnabled {
		return cpubus.Sentinel
	}
	return cart.ramBk[bankOffset(cart.ramBk, RAMBankSize, cart.ramBank(), addr-0xa000)]
}

func (cart *mbc1) write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		cart.ramEnabled = data&0x0f == 0x0a && len(cart.ramBk) > 0
	case addr < 0x4000:
		cart.bankLo = data & 0x1f
		if cart.bankLo == 0 {
			cart.bankLo = 1
		}
	case addr < 0x6000:
		cart.bankHi = data & 0x03
	case addr < 0x8000:
		cart.mode = data&0x01 == 0x01
	default:
		if cart.ramEnabled {
			cart.ramBk[bankOffset(cart.ramBk, RAMBankSize, cart.ramBank(), addr-0xa000)] = data
		}
	}
}

func (cart *mbc1) numBanks() int {
	return len(cart.rom) / ROMBankSize
}

func (cart *mbc1) getBank(addr uint16) BankInfo {
	if addr >= 0x8000 {
		return BankInfo{Number: cart.ramBank(), IsRAM: true, Enabled: cart.ramEnabled}
	}
	return BankInfo{Number: cart.romBank(addr) % cart.numBanks(), Enabled: true}
}

func (cart *mbc1) ram() []uint8 {
	return cart.ramBk
}
