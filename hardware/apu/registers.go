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

package apu

import (
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// the APU registers occupy 0xff10 to 0xff2f. the wave table occupies 0xff30
// to 0xff3f
const (
	originRegisters = cpubus.AddrNR10
	numRegisters    = 0x20
	originWave      = uint16(0xff30)
	memtopWave      = uint16(0xff3f)
)

// indexes into the regs array
const (
	regNR13 = cpubus.AddrNR13 - originRegisters
	regNR14 = cpubus.AddrNR14 - originRegisters
	regNR50 = cpubus.AddrNR50 - originRegisters
	regNR51 = cpubus.AddrNR51 - originRegisters
)

// bits that always read as one. write-only bits and unused registers read
// as one
var readMasks = [numRegisters]uint8{
	0x80, 0x3f, 0x00, 0xff, 0xbf, // NR10 - NR14
	0xff, 0x3f, 0x00, 0xff, 0xbf, // unused, NR21 - NR24
	0x7f, 0xff, 0x9f, 0xff, 0xbf, // NR30 - NR34
	0xff, 0xff, 0x00, 0x00, 0xbf, // unused, NR41 - NR44
	0x00, 0x00, 0x70, // NR50 - NR52
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, // unused
}

// register values after the boot ROM has finished. the trigger bit is not
// set for any of the control registers
var powerOnRegisters = []struct {
	addr  uint16
	value uint8
}{
	{cpubus.AddrNR10, 0x80},
	{cpubus.AddrNR11, 0xbf},
	{cpubus.AddrNR12, 0xf3},
	{cpubus.AddrNR13, 0xff},
	{cpubus.AddrNR14, 0x3f},
	{cpubus.AddrNR21, 0x3f},
	{cpubus.AddrNR22, 0x00},
	{cpubus.AddrNR23, 0xff},
	{cpubus.AddrNR24, 0x3f},
	{cpubus.AddrNR30, 0x7f},
	{cpubus.AddrNR31, 0xff},
	{cpubus.AddrNR32, 0x9f},
	{cpubus.AddrNR33, 0xff},
	{cpubus.AddrNR34, 0x3f},
	{cpubus.AddrNR41, 0xff},
	{cpubus.AddrNR42, 0x00},
	{cpubus.AddrNR43, 0x00},
	{cpubus.AddrNR44, 0x3f},
	{cpubus.AddrNR50, 0x77},
	{cpubus.AddrNR51, 0xf3},
}

func (apu *APU) readNR52() uint8 {
	v := readMasks[cpubus.AddrNR52-originRegisters]
	if apu.powered {
		v |= 0x80
	}
	if apu.ch1.active {
		v |= 0x01
	}
	if apu.ch2.active {
		v |= 0x02
	}
	if apu.ch3.active {
		v |= 0x04
	}
	if apu.ch4.active {
		v |= 0x08
	}
	return v
}

// Read implements the cpubus.Memory interface.
func (apu *APU) Read(addr uint16) uint8 {
	switch {
	case addr >= originWave && addr <= memtopWave:
		return apu.ch3.table[addr-originWave]
	case addr == cpubus.AddrNR52:
		return apu.readNR52()
	case addr >= originRegisters && addr < originRegisters+numRegisters:
		idx := addr - originRegisters
		return apu.regs[idx] | readMasks[idx]
	}
	return cpubus.Sentinel
}

// Write implements the cpubus.Memory interface. While the APU is switched
// off only NR52 and the wave table can be written.
func (apu *APU) Write(addr uint16, data uint8) {
	switch {
	case addr >= originWave && addr <= memtopWave:
		apu.ch3.table[addr-originWave] = data
		return
	case addr == cpubus.AddrNR52:
		apu.setPower(data&0x80 == 0x80)
		return
	case addr < originRegisters || addr >= originRegisters+numRegisters:
		return
	}

	if !apu.powered {
		apu.env.Logf("apu", "write to %s while powered off", cpubus.Name(addr))
		return
	}

	apu.regs[addr-originRegisters] = data

	// enabling a length counter causes an extra clock if the next step of
	// the sequencer will not clock the length counter
	extra := !apu.seq.nextIsLength()

	switch addr {
	case cpubus.AddrNR10:
		apu.ch1.writeSweep(data)
	case cpubus.AddrNR11:
		apu.ch1.writeDutyLength(data)
	case cpubus.AddrNR12:
		apu.ch1.writeEnvelope(data)
	case cpubus.AddrNR13:
		apu.ch1.writeWavelengthLo(data)
	case cpubus.AddrNR14:
		apu.ch1.writeControl(data, extra)

	case cpubus.AddrNR21:
		apu.ch2.writeDutyLength(data)
	case cpubus.AddrNR22:
		apu.ch2.writeEnvelope(data)
	case cpubus.AddrNR23:
		apu.ch2.writeWavelengthLo(data)
	case cpubus.AddrNR24:
		apu.ch2.writeControl(data, extra)

	case cpubus.AddrNR30:
		apu.ch3.writeDAC(data)
	case cpubus.AddrNR31:
		apu.ch3.writeLength(data)
	case cpubus.AddrNR32:
		apu.ch3.writeLevel(data)
	case cpubus.AddrNR33:
		apu.ch3.writeWavelengthLo(data)
	case cpubus.AddrNR34:
		apu.ch3.writeControl(data, extra)

	case cpubus.AddrNR41:
		apu.ch4.writeLength(data)
	case cpubus.AddrNR42:
		apu.ch4.writeEnvelope(data)
	case cpubus.AddrNR43:
		apu.ch4.writePolynomial(data)
	case cpubus.AddrNR44:
		apu.ch4.writeControl(data, extra)
	}
}
