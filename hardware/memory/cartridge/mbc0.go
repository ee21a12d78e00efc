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
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// mbc0 is a cartridge with no bank controller. 32KB of ROM is mapped
// directly into the ROM window. There is no RAM.
type mbc0 struct {
	env *environment.Environment
	rom []uint8
}

func newMBC0(env *environment.Environment, h Header, data []uint8) (mapper, error) {
	const id = "ROM"

	rom, err := prepareROM(env, h, data, id, 2)
	if err != nil {
		return nil, err
	}

	if h.RAMBanks != 0 {
		return nil, curated.Errorf(UnsupportedRAMSize, h.RAMCode, id)
	}

	return &mbc0{env: env, rom: rom}, nil
}

func (cart *mbc0) id() string {
	return "ROM"
}

func (cart *mbc0) reset() {
}

func (cart *mbc0) read(addr uint16) uint8 {
	if addr < 0x8000 {
		return cart.rom[addr]
	}
	return cpubus.Sentinel
}

func (cart *mbc0) write(addr uint16, data uint8) {
	cart.env.Logf("mbc0", "write to read-only cartridge (%#04x = %#02x)", addr, data)
}

func (cart *mbc0) numBanks() int {
	return 2
}

func (cart *mbc0) getBank(addr uint16) BankInfo {
	if addr >= 0x8000 {
		return BankInfo{IsRAM: true}
	}
	return BankInfo{Number: int(addr / ROMBankSize), Enabled: true}
}

func (cart *mbc0) ram() []uint8 {
	return nil
}
