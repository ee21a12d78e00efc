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

package cpubus

import "fmt"

// Register is the name of a memory mapped IO register.
type Register string

// List of all IO registers.
const (
	JOYP Register = "JOYP"
	SB   Register = "SB"
	SC   Register = "SC"
	DIV  Register = "DIV"
	TIMA Register = "TIMA"
	TMA  Register = "TMA"
	TAC  Register = "TAC"
	IF   Register = "IF"
	NR10 Register = "NR10"
	NR11 Register = "NR11"
	NR12 Register = "NR12"
	NR13 Register = "NR13"
	NR14 Register = "NR14"
	NR21 Register = "NR21"
	NR22 Register = "NR22"
	NR23 Register = "NR23"
	NR24 Register = "NR24"
	NR30 Register = "NR30"
	NR31 Register = "NR31"
	NR32 Register = "NR32"
	NR33 Register = "NR33"
	NR34 Register = "NR34"
	NR41 Register = "NR41"
	NR42 Register = "NR42"
	NR43 Register = "NR43"
	NR44 Register = "NR44"
	NR50 Register = "NR50"
	NR51 Register = "NR51"
	NR52 Register = "NR52"
	LCDC Register = "LCDC"
	STAT Register = "STAT"
	SCY  Register = "SCY"
	SCX  Register = "SCX"
	LY   Register = "LY"
	LYC  Register = "LYC"
	DMA  Register = "DMA"
	BGP  Register = "BGP"
	OBP0 Register = "OBP0"
	OBP1 Register = "OBP1"
	WY   Register = "WY"
	WX   Register = "WX"
	IE   Register = "IE"
)

// Addresses of the IO registers.
const (
	AddrJOYP = uint16(0xff00)
	AddrSB   = uint16(0xff01)
	AddrSC   = uint16(0xff02)
	AddrDIV  = uint16(0xff04)
	AddrTIMA = uint16(0xff05)
	AddrTMA  = uint16(0xff06)
	AddrTAC  = uint16(0xff07)
	AddrIF   = uint16(0xff0f)
	AddrNR10 = uint16(0xff10)
	AddrNR11 = uint16(0xff11)
	AddrNR12 = uint16(0xff12)
	AddrNR13 = uint16(0xff13)
	AddrNR14 = uint16(0xff14)
	AddrNR21 = uint16(0xff16)
	AddrNR22 = uint16(0xff17)
	AddrNR23 = uint16(0xff18)
	AddrNR24 = uint16(0xff19)
	AddrNR30 = uint16(0xff1a)
	AddrNR31 = uint16(0xff1b)
	AddrNR32 = uint16(0xff1c)
	AddrNR33 = uint16(0xff1d)
	AddrNR34 = uint16(0xff1e)
	AddrNR41 = uint16(0xff20)
	AddrNR42 = uint16(0xff21)
	AddrNR43 = uint16(0xff22)
	AddrNR44 = uint16(0xff23)
	AddrNR50 = uint16(0xff24)
	AddrNR51 = uint16(0xff25)
	AddrNR52 = uint16(0xff26)
	AddrLCDC = uint16(0xff40)
	AddrSTAT = uint16(0xff41)
	AddrSCY  = uint16(0xff42)
	AddrSCX  = uint16(0xff43)
	AddrLY   = uint16(0xff44)
	AddrLYC  = uint16(0xff45)
	AddrDMA  = uint16(0xff46)
	AddrBGP  = uint16(0xff47)
	AddrOBP0 = uint16(0xff48)
	AddrOBP1 = uint16(0xff49)
	AddrWY   = uint16(0xff4a)
	AddrWX   = uint16(0xff4b)
	AddrIE   = uint16(0xffff)
)

// Addresses maps register names to addresses.
var Addresses = map[Register]uint16{
	JOYP: AddrJOYP,
	SB:   AddrSB,
	SC:   AddrSC,
	DIV:  AddrDIV,
	TIMA: AddrTIMA,
	TMA:  AddrTMA,
	TAC:  AddrTAC,
	IF:   AddrIF,
	NR10: AddrNR10,
	NR11: AddrNR11,
	NR12: AddrNR12,
	NR13: AddrNR13,
	NR14: AddrNR14,
	NR21: AddrNR21,
	NR22: AddrNR22,
	NR23: AddrNR23,
	NR24: AddrNR24,
	NR30: AddrNR30,
	NR31: AddrNR31,
	NR32: AddrNR32,
	NR33: AddrNR33,
	NR34: AddrNR34,
	NR41: AddrNR41,
	NR42: AddrNR42,
	NR43: AddrNR43,
	NR44: AddrNR44,
	NR50: AddrNR50,
	NR51: AddrNR51,
	NR52: AddrNR52,
	LCDC: AddrLCDC,
	STAT: AddrSTAT,
	SCY:  AddrSCY,
	SCX:  AddrSCX,
	LY:   AddrLY,
	LYC:  AddrLYC,
	DMA:  AddrDMA,
	BGP:  AddrBGP,
	OBP0: AddrOBP0,
	OBP1: AddrOBP1,
	WY:   AddrWY,
	WX:   AddrWX,
	IE:   AddrIE,
}

// the reverse of the Addresses map
var names map[uint16]Register

func init() {
	names = make(map[uint16]Register, len(Addresses))
	for r, a := range Addresses {
		names[a] = r
	}
}

// Name returns the name of the register at the address. Addresses that do
// not have a register are returned as a hex string.
func Name(address uint16) string {
	if r, ok := names[address]; ok {
		return string(r)
	}
	return fmt.Sprintf("%#04x", address)
}
