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
	"fmt"

	"github.com/gopherboy/gopherboy/cartridgeloader"
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// Cartridge presents the ROM and external RAM windows to the memory bus.
type Cartridge struct {
	env *environment.Environment

	Filename string
	Hash     string
	Header   Header

	battery bool
	mapper  mapper
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The loader will be loaded if it has not been already.
func NewCartridge(env *environment.Environment, cl cartridgeloader.Loader) (*Cartridge, error) {
	if !cl.HasLoaded() {
		if err := cl.Load(); err != nil {
			return nil, curated.Errorf("cartridge: %v", err)
		}
	}

	cart, err := FromData(env, cl.Filename, cl.Data)
	if err != nil {
		return nil, err
	}
	cart.Hash = cl.Hash

	return cart, nil
}

// FromData creates a new cartridge from the supplied data. The name is used
// for the Filename field only.
func FromData(env *environment.Environment, name string, data []uint8) (*Cartridge, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	cart := &Cartridge{
		env:      env,
		Filename: name,
		Header:   h,
		battery:  h.HasBattery(),
	}

	if !h.ChecksumOK() {
		env.Logf("cartridge", "header checksum mismatch (%#02x != %#02x)", h.Checksum, h.CalculatedChecksum)
	}

	// the controller is chosen once, here, by the cartridge type
	switch h.Type {
	case 0x00:
		cart.mapper, err = newMBC0(env, h, data)
	case 0x01, 0x02, 0x03:
		cart.mapper, err = newMBC1(env, h, data)
	case 0x05, 0x06:
		cart.mapper, err = newMBC2(env, h, data)
	case 0x0f, 0x10, 0x11, 0x12, 0x13:
		cart.mapper, err = newMBC3(env, h, data)
	default:
		return nil, curated.Errorf(UnsupportedType, h.Type)
	}

	if err != nil {
		return nil, err
	}

	return cart, nil
}

// prepareROM checks the header ROM size against the maximum number of banks
// for the controller and returns a copy of the data sized to match the
// header. Short data is padded with the bus sentinel.
func prepareROM(env *environment.Environment, h Header, data []uint8, id string, maxBanks int) ([]uint8, error) {
	if h.ROMBanks < 2 || h.ROMBanks > maxBanks {
		return nil, curated.Errorf(UnsupportedROMSize, h.ROMCode, id)
	}

	sz := h.ROMBanks * ROMBankSize
	if len(data) > sz {
		return nil, curated.Errorf(UnsupportedROMSize, h.ROMCode, id)
	}

	rom := make([]uint8, sz)
	n := copy(rom, data)
	if n < sz {
		env.Logf(id, "ROM data is shorter than header indicates (%d < %d)", n, sz)
		for i := n; i < sz; i++ {
			rom[i] = cpubus.Sentinel
		}
	}

	return rom, nil
}

// prepareRAM checks the header RAM size and returns a buffer of the correct
// size. The maximum number of banks for all controllers with external RAM is
// four.
func prepareRAM(h Header, id string) ([]uint8, error) {
	if h.RAMBanks < 0 {
		return nil, curated.Errorf(UnsupportedRAMSize, h.RAMCode, id)
	}
	return make([]uint8, h.RAMBanks*RAMBankSize), nil
}

func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s [%s] %s", cart.Header.Title, cart.mapper.id(), cart.GetBank(0x4000))
}

func (b BankInfo) String() string {
	if b.IsRAM {
		if !b.Enabled {
			return "RAM disabled"
		}
		return fmt.Sprintf("RAM bank %d", b.Number)
	}
	return fmt.Sprintf("bank %d", b.Number)
}

// ID returns the name of the bank controller.
func (cart *Cartridge) ID() string {
	return cart.mapper.id()
}

// Reset the bank controller to its initial state. The contents of RAM are not
// changed.
func (cart *Cartridge) Reset() {
	cart.mapper.reset()
}

// Read implements the cpubus.Memory interface.
func (cart *Cartridge) Read(addr uint16) uint8 {
	return cart.mapper.read(addr)
}

// Write implements the cpubus.Memory interface.
func (cart *Cartridge) Write(addr uint16, data uint8) {
	cart.mapper.write(addr, data)
}

// NumBanks returns the number of ROM banks in the cartridge.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.numBanks()
}

// GetBank returns the bank currently mapped to the address.
func (cart *Cartridge) GetBank(addr uint16) BankInfo {
	return cart.mapper.getBank(addr)
}

// HasBattery returns true if the cartridge RAM is battery backed.
func (cart *Cartridge) HasBattery() bool {
	return cart.battery && len(cart.mapper.ram()) > 0
}

// SaveData returns a copy of the battery backed RAM. Returns the
// UnsupportedSaveData error if the cartridge has no battery backed RAM.
func (cart *Cartridge) SaveData() ([]uint8, error) {
	if !cart.HasBattery() {
		return nil, curated.Errorf(UnsupportedSaveData, cart.mapper.id())
	}
	r := cart.mapper.ram()
	d := make([]uint8, len(r))
	copy(d, r)
	return d, nil
}

// LoadSaveData copies the data into the battery backed RAM. Data shorter
// than the RAM fills the start of the RAM and data longer than the RAM is
// truncated. Returns the UnsupportedSaveData error if the cartridge has no
// battery backed RAM.
func (cart *Cartridge) LoadSaveData(data []uint8) error {
	if !cart.HasBattery() {
		return curated.Errorf(UnsupportedSaveData, cart.mapper.id())
	}
	r := cart.mapper.ram()
	n := copy(r, data)
	if n != len(data) || n != len(r) {
		cart.env.Logf("cartridge", "save data length (%d) does not match RAM size (%d)", len(data), len(r))
	}

	return nil
}
