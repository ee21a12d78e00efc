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

// value of rtcSelect when no clock register is selected
const noRTC = -1

// mbc3 supports up to 2MB of ROM and 32KB of RAM. The bank select register
// is a full seven bits wide.
//
// The real-time clock registers (0x08 to 0x0c written to 0x4000-0x5fff) can
// be selected but are not implemented. Reads of a clock register return zero
// and writes are ignored.
type mbc3 struct {
	env *environment.Environment

	rom   []uint8
	ramBk []uint8

	bank       uint8
	ramBank    uint8
	rtcSelect  int
	ramEnabled bool
}

func newMBC3(env *environment.Environment, h Header, data []uint8) (mapper, error) {
	const id = "MBC3"

	rom, err := prepareROM(env, h, data, id, 128)
	if err != nil {
		return nil, err
	}

	ram, err := prepareRAM(h, id)
	if err != nil {
		return nil, err
	}

	if h.HasRTC() {
		env.Logf("mbc3", "real-time clock is not implemented")
	}

	cart := &mbc3{
		env:   env,
		rom:   rom,
		ramBk: ram,
	}
	cart.reset()

	return cart, nil
}

func (cart *mbc3) id() string {
	return "MBC3"
}

func (cart *mbc3) reset() {
	cart.bank = 1
	cart.ramBank = 0
	cart.rtcSelect = noRTC
	cart.ramEnabled = false
}

func (cart *mbc3) read(addr uint16) uint8 {
	if addr < 0x4000 {
		return cart.rom[addr]
	}
	if addr < 0x8000 {
		return cart.rom[bankOffset(cart.rom, ROMBankSize, int(cart.bank), addr)]
	}
	if !cart.ramEnabled {
		return cpubus.Sentinel
	}
	if cart.rtcSelect != noRTC {
		return 0x00
	}
	if len(cart.ramBk) == 0 {
		return cpubus.Sentinel
	}
	return cart.ramBk[bankOffset(cart.ramBk, RAMBankSize, int(cart.ramBank), addr-0xa000)]
}

func (cart *mbc3) write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		cart.ramEnabled = data&0x0f == 0x0a
	case addr < 0x4000:
		cart.bank = data & 0x7f
		if cart.bank == 0 {
			cart.bank = 1
		}
	case addr < 0x6000:
		if data <= 0x03 {
			cart.ramBank = data
			cart.rtcSelect = noRTC
		} else if data >= 0x08 && data <= 0x0c {
			cart.rtcSelect = int(data)
		}
	case addr < 0x8000:
		// clock latch
	default:
		if !cart.ramEnabled || cart.rtcSelect != noRTC || len(cart.ramBk) == 0 {
			return
		}
		cart.ramBk[bankOffset(cart.ramBk, RAMBankSize, int(cart.ramBank), addr-0xa000)] = data
	}
}

func (cart *mbc3) numBanks() int {
	return len(cart.rom) / ROMBankSize
}

func (cart *mbc3) getBank(addr uint16) BankInfo {
	if addr >= 0x8000 {
		return BankInfo{Number: int(cart.ramBank), IsRAM: true, Enabled: cart.ramEnabled && cart.rtcSelect == noRTC}
	}
	if addr < 0x4000 {
		return BankInfo{Enabled: true}
	}
	return BankInfo{Number: int(cart.bank) % cart.numBanks(), Enabled: true}
}

func (cart *mbc3) ram() []uint8 {
	return cart.ramBk
}
