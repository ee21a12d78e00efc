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

// Package memorymap describes how the 16 bit address space is divided
// between the components of the console. The MapAddress() function returns
// the area an address belongs to and the address relative to the origin of
// that area.
package memorymap

// Area represents the different areas of memory.
type Area int

// List of valid Area values.
const (
	Undefined Area = iota
	ROM
	VRAM
	ExternalRAM
	WRAM
	Echo
	OAM
	Unusable
	IO
	HRAM
	IE
)

func (a Area) String() string {
	switch a {
	case ROM:
		return "ROM"
	case VRAM:
		return "VRAM"
	case ExternalRAM:
		return "External RAM"
	case WRAM:
		return "WRAM"
	case Echo:
		return "Echo"
	case OAM:
		return "OAM"
	case Unusable:
		return "Unusable"
	case IO:
		return "IO"
	case HRAM:
		return "HRAM"
	case IE:
		return "IE"
	}
	return "undefined"
}

// The origin and memtop of each area.
const (
	OriginROM      = uint16(0x0000)
	MemtopROM      = uint16(0x7fff)
	OriginROMX     = uint16(0x4000)
	OriginVRAM     = uint16(0x8000)
	MemtopVRAM     = uint16(0x9fff)
	OriginExtRAM   = uint16(0xa000)
	MemtopExtRAM   = uint16(0xbfff)
	OriginWRAM     = uint16(0xc000)
	MemtopWRAM     = uint16(0xdfff)
	OriginEcho     = uint16(0xe000)
	MemtopEcho     = uint16(0xfdff)
	OriginOAM      = uint16(0xfe00)
	MemtopOAM      = uint16(0xfe9f)
	OriginUnusable = uint16(0xfea0)
	MemtopUnusable = uint16(0xfeff)
	OriginIO       = uint16(0xff00)
	MemtopIO       = uint16(0xff7f)
	OriginHRAM     = uint16(0xff80)
	MemtopHRAM     = uint16(0xfffe)
	AddressIE      = uint16(0xffff)
)

// Sizes of the areas that are backed by memory in the console itself.
const (
	SizeVRAM = int(MemtopVRAM-OriginVRAM) + 1
	SizeWRAM = int(MemtopWRAM-OriginWRAM) + 1
	SizeOAM  = int(MemtopOAM-OriginOAM) + 1
	SizeHRAM = int(MemtopHRAM-OriginHRAM) + 1
)

// MapAddress returns the Area of the address and the address relative to
// the origin of the area. Addresses in the ROM and external RAM areas are
// not relocated because cartridges decode the full address. The echo area
// is mapped onto the WRAM area.
func MapAddress(address uint16) (uint16, Area) {
	switch {
	case address <= MemtopROM:
		return address, ROM
	case address <= MemtopVRAM:
		return address - OriginVRAM, VRAM
	case address <= MemtopExtRAM:
		return address, ExternalRAM
	case address <= MemtopWRAM:
		return address - OriginWRAM, WRAM
	case address <= MemtopEcho:
		return address - OriginEcho, Echo
	case address <= MemtopOAM:
		return address - OriginOAM, OAM
	case address <= MemtopUnusable:
		return address - OriginUnusable, Unusable
	case address <= MemtopIO:
		return address, IO
	case address <= MemtopHRAM:
		return address - OriginHRAM, HRAM
	}
	return address, IE
}
