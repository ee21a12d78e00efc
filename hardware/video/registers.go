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

package video

import (
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
	"github.com/gopherboy/gopherboy/hardware/memory/memorymap"
)

// LCDC bits.
const (
	lcdcBGEnable     = 0x01
	lcdcOBJEnable    = 0x02
	lcdcOBJSize      = 0x04
	lcdcBGMap        = 0x08
	lcdcTileData     = 0x10
	lcdcWindowEnable = 0x20
	lcdcWindowMap    = 0x40
	lcdcEnable       = 0x80
)

// STAT interrupt selection bits. the remaining bits are read-only.
const (
	statHBlank = 0x08
	statVBlank = 0x10
	statOAM    = 0x20
	statLYC    = 0x40
	statMask   = statHBlank | statVBlank | statOAM | statLYC
)

func (vd *Video) readSTAT() uint8 {
	v := 0x80 | vd.stat&statMask | uint8(vd.mode)
	if vd.ly == vd.lyc {
		v |= 0x04
	}
	return v
}

// cpu access to OAM and VRAM is blocked at certain times
func (vd *Video) oamBlocked() bool {
	if !vd.Enabled() || !vd.env.Prefs.OAMProtection.Get().(bool) {
		return false
	}
	return vd.mode == OAMScan || vd.mode == Transfer
}

func (vd *Video) vramBlocked() bool {
	if !vd.Enabled() || !vd.env.Prefs.OAMProtection.Get().(bool) {
		return false
	}
	return vd.mode == Transfer
}

// Read implements the cpubus.Memory interface. The DMA register is not
// handled by the LCD controller.
func (vd *Video) Read(addr uint16) uint8 {
	switch {
	case addr >= memorymap.OriginVRAM && addr <= memorymap.MemtopVRAM:
		if vd.vramBlocked() {
			return cpubus.Sentinel
		}
		return vd.vram[addr-memorymap.OriginVRAM]
	case addr >= memorymap.OriginOAM && addr <= memorymap.MemtopOAM:
		if vd.oamBlocked() {
			return cpubus.Sentinel
		}
		return vd.oam[addr-memorymap.OriginOAM]
	}

	switch addr {
	case cpubus.AddrLCDC:
		return vd.lcdc
	case cpubus.AddrSTAT:
		return vd.readSTAT()
	case cpubus.AddrSCY:
		return vd.scy
	case cpubus.AddrSCX:
		return vd.scx
	case cpubus.AddrLY:
		return vd.ly
	case cpubus.AddrLYC:
		return vd.lyc
	case cpubus.AddrBGP:
		return vd.bgp
	case cpubus.AddrOBP0:
		return vd.obp0
	case cpubus.AddrOBP1:
		return vd.obp1
	case cpubus.AddrWY:
		return vd.wy
	case cpubus.AddrWX:
		return vd.wx
	}

	return cpubus.Sentinel
}

// Write implements the cpubus.Memory interface.
func (vd *Video) Write(addr uint16, data uint8) {
	switch {
	case addr >= memorymap.OriginVRAM && addr <= memorymap.MemtopVRAM:
		if !vd.vramBlocked() {
			vd.vram[addr-memorymap.OriginVRAM] = data
		}
		return
	case addr >= memorymap.OriginOAM && addr <= memorymap.MemtopOAM:
		if !vd.oamBlocked() {
			vd.oam[addr-memorymap.OriginOAM] = data
		}
		return
	}

	switch addr {
	case cpubus.AddrLCDC:
		vd.writeLCDC(data)
	case cpubus.AddrSTAT:
		vd.stat = data & statMask
		vd.pending |= vd.updateSTATLine()
	case cpubus.AddrSCY:
		vd.scy = data
	case cpubus.AddrSCX:
		vd.scx = data
	case cpubus.AddrLY:
		vd.ly = 0
		vd.lineCycles = 0
		vd.pending |= vd.updateSTATLine()
	case cpubus.AddrLYC:
		vd.lyc = data
		vd.pending |= vd.updateSTATLine()
	case cpubus.AddrBGP:
		vd.bgp = data
	case cpubus.AddrOBP0:
		vd.obp0 = data
	case cpubus.AddrOBP1:
		vd.obp1 = data
	case cpubus.AddrWY:
		vd.wy = data
	case cpubus.AddrWX:
		vd.wx = data
	}
}

func (vd *Video) writeLCDC(data uint8) {
	wasOn := vd.Enabled()
	vd.lcdc = data
	on := vd.Enabled()

	switch {
	case wasOn && !on:
		if vd.mode != VBlank {
			vd.env.Logf("video", "LCD switched off outside of VBlank (LY=%d)", vd.ly)
		}
		vd.ly = 0
		vd.lineCycles = 0
		vd.windowLine = 0
		vd.mode = HBlank
		vd.statLine = false
		vd.blank()
	case !wasOn && on:
		vd.mode = OAMScan
		vd.pending |= vd.updateSTATLine()
	}
}

// ReadDMA reads VRAM or OAM without regard to the access restrictions
// placed on the CPU. Addresses outside of those areas return the sentinel
// value.
func (vd *Video) ReadDMA(addr uint16) uint8 {
	switch {
	case addr >= memorymap.OriginVRAM && addr <= memorymap.MemtopVRAM:
		return vd.vram[addr-memorymap.OriginVRAM]
	case addr >= memorymap.OriginOAM && addr <= memorymap.MemtopOAM:
		return vd.oam[addr-memorymap.OriginOAM]
	}
	return cpubus.Sentinel
}

// WriteOAM writes to the OAM entry without regard to the access
// restrictions placed on the CPU. The index is relative to the start of
// OAM.
func (vd *Video) WriteOAM(idx int, data uint8) {
	if idx >= 0 && idx < len(vd.oam) {
		vd.oam[idx] = data
	}
}

// OAM returns a copy of the sprite attribute table.
func (vd *Video) OAM() [memorymap.SizeOAM]uint8 {
	return vd.oam
}
