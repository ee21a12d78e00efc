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

package memory

import (
	"fmt"
	"strings"

	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/apu"
	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
	"github.com/gopherboy/gopherboy/hardware/memory/memorymap"
	"github.com/gopherboy/gopherboy/hardware/serial"
	"github.com/gopherboy/gopherboy/hardware/sink"
	"github.com/gopherboy/gopherboy/hardware/timer"
	"github.com/gopherboy/gopherboy/hardware/video"
)

// the range of addresses used by the APU, including the wave table
const (
	originAPU = cpubus.AddrNR10
	memtopAPU = uint16(0xff3f)
)

// Memory is the memory management unit. It implements the cpubus.Bus
// interface.
type Memory struct {
	env *environment.Environment

	cart       *cartridge.Cartridge
	video      *video.Video
	apu        *apu.APU
	timer      *timer.Timer
	joypad     *joypad.Joypad
	serial     *serial.Serial
	interrupts *interrupts.Controller

	wram *ram
	hram *ram

	dma dma
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(env *environment.Environment, cart *cartridge.Cartridge) *Memory {
	mem := &Memory{
		env:        env,
		cart:       cart,
		video:      video.NewVideo(env),
		apu:        apu.NewAPU(env),
		timer:      timer.NewTimer(),
		joypad:     joypad.NewJoypad(),
		serial:     serial.NewSerial(),
		interrupts: interrupts.NewController(),
		wram:       newRAM(memorymap.OriginWRAM, memorymap.SizeWRAM),
		hram:       newRAM(memorymap.OriginHRAM, memorymap.SizeHRAM),
	}
	return mem
}

// Reset every part of the memory system to the state it is in after the
// boot ROM has run.
func (mem *Memory) Reset() {
	mem.cart.Reset()
	mem.video.Reset()
	mem.apu.Reset()
	mem.timer.Reset()
	mem.joypad.Reset()
	mem.serial.Reset()
	mem.interrupts.Reset()
	mem.wram.clear()
	mem.hram.clear()
	mem.dma = dma{}
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", mem.cart))
	s.WriteString(fmt.Sprintf("%s\n", mem.interrupts))
	s.WriteString(fmt.Sprintf("%s\n", mem.video))
	s.WriteString(fmt.Sprintf("%s\n", mem.timer))
	s.WriteString(fmt.Sprintf("DMA: %s", mem.dma.state))
	return s.String()
}

// Interrupts implements the cpubus.Bus interface.
func (mem *Memory) Interrupts() *interrupts.Controller {
	return mem.interrupts
}

// Joypad returns the joypad connected to the memory system.
func (mem *Memory) Joypad() *joypad.Joypad {
	return mem.joypad
}

// Serial returns the serial port.
func (mem *Memory) Serial() *serial.Serial {
	return mem.serial
}

// Video returns the LCD controller.
func (mem *Memory) Video() *video.Video {
	return mem.video
}

// APU returns the audio processing unit.
func (mem *Memory) APU() *apu.APU {
	return mem.apu
}

// Cartridge returns the inserted cartridge.
func (mem *Memory) Cartridge() *cartridge.Cartridge {
	return mem.cart
}

// WRAM returns a hex dump of work RAM.
func (mem *Memory) WRAM() string {
	return mem.wram.String()
}

// HRAM returns a hex dump of high RAM.
func (mem *Memory) HRAM() string {
	return mem.hram.String()
}

// Update advances the DMA engine and every peripheral by the number of
// cycles. Completed video frames and audio samples are sent to the sinks,
// either of which can be nil. The interrupts requested during the update
// are passed to the interrupt controller and also returned.
func (mem *Memory) Update(cycles int, vsnk sink.Video, asnk sink.Audio) interrupts.Flag {
	mem.stepDMA(cycles)

	mem.apu.Update(cycles, asnk)
	f := mem.joypad.Update(cycles)
	f |= mem.timer.Update(cycles)
	f |= mem.serial.Update(cycles)
	f |= mem.video.Update(cycles, vsnk)

	mem.interrupts.Request(f)
	return f
}

// how a read reaches the memory area
type access int

const (
	// a read by the CPU. access restrictions apply and misuse is logged
	cpuAccess access = iota

	// as cpuAccess but without logging
	inspectAccess

	// no access restrictions and no logging. used by the DMA engine
	peekAccess
)

// the CPU can only access HRAM while a DMA transfer is active
func (mem *Memory) blocked(addr uint16) bool {
	return mem.dma.active() && (addr < memorymap.OriginHRAM || addr > memorymap.MemtopHRAM)
}

func (mem *Memory) contention(addr uint16) bool {
	if !mem.blocked(addr) {
		return false
	}
	if mem.env.Prefs.LogDMAContention.Get().(bool) {
		mem.env.Logf("dma", "CPU access to %s blocked", cpubus.Name(addr))
	}
	return true
}

// Read implements the cpubus.Memory interface.
func (mem *Memory) Read(addr uint16) uint8 {
	if mem.contention(addr) {
		return cpubus.Sentinel
	}
	return mem.read(addr, cpuAccess)
}

// Inspect returns the value the CPU would read at the address, without
// logging. DMA contention and video access restrictions apply.
func (mem *Memory) Inspect(addr uint16) uint8 {
	if mem.blocked(addr) {
		return cpubus.Sentinel
	}
	return mem.read(addr, inspectAccess)
}

// Peek reads the address without side effects. DMA contention and video
// access restrictions are ignored.
func (mem *Memory) Peek(addr uint16) uint8 {
	return mem.read(addr, peekAccess)
}

// InspectRange returns the values of the inclusive range of addresses as
// seen by Inspect(). A range that wraps past 0xffff stops at 0xffff.
func (mem *Memory) InspectRange(from uint16, to uint16) []uint8 {
	return mem.readRange(from, to, mem.Inspect)
}

// PeekRange returns the values of the inclusive range of addresses as seen
// by Peek(). A range that wraps past 0xffff stops at 0xffff.
func (mem *Memory) PeekRange(from uint16, to uint16) []uint8 {
	return mem.readRange(from, to, mem.Peek)
}

func (mem *Memory) readRange(from uint16, to uint16, rd func(uint16) uint8) []uint8 {
	if to < from {
		to = memorymap.AddressIE
	}
	d := make([]uint8, 0, int(to-from)+1)
	for a := int(from); a <= int(to); a++ {
		d = append(d, rd(uint16(a)))
	}
	return d
}

// read from the area the address maps to
func (mem *Memory) read(addr uint16, acc access) uint8 {
	offset, area := memorymap.MapAddress(addr)

	switch area {
	case memorymap.ROM, memorymap.ExternalRAM:
		return mem.cart.Read(addr)
	case memorymap.VRAM, memorymap.OAM:
		if acc == peekAccess {
			return mem.video.ReadDMA(addr)
		}
		return mem.video.Read(addr)
	case memorymap.WRAM, memorymap.Echo:
		return mem.wram.read(offset)
	case memorymap.IO:
		return mem.readIO(addr, acc)
	case memorymap.HRAM:
		return mem.hram.read(offset)
	case memorymap.IE:
		return mem.interrupts.ReadIE()
	}

	if acc == cpuAccess {
		mem.env.Logf("memory", "read of unmapped address %#04x", addr)
	}
	return cpubus.Sentinel
}

func (mem *Memory) readIO(addr uint16, acc access) uint8 {
	switch {
	case addr == cpubus.AddrJOYP:
		return mem.joypad.Read(addr)
	case addr == cpubus.AddrSB || addr == cpubus.AddrSC:
		return mem.serial.Read(addr)
	case addr >= cpubus.AddrDIV && addr <= cpubus.AddrTAC:
		return mem.timer.Read(addr)
	case addr == cpubus.AddrIF:
		return mem.interrupts.ReadIF()
	case addr >= originAPU && addr <= memtopAPU:
		return mem.apu.Read(addr)
	case addr == cpubus.AddrDMA:
		return mem.dma.page
	case addr >= cpubus.AddrLCDC && addr <= cpubus.AddrWX:
		return mem.video.Read(addr)
	}

	if acc == cpuAccess {
		mem.env.Logf("memory", "read of unmapped IO address %#04x", addr)
	}
	return cpubus.Sentinel
}

// Write implements the cpubus.Memory interface.
func (mem *Memory) Write(addr uint16, data uint8) {
	if mem.contention(addr) {
		return
	}

	offset, area := memorymap.MapAddress(addr)

	switch area {
	case memorymap.ROM, memorymap.ExternalRAM:
		mem.cart.Write(addr, data)
	case memorymap.VRAM, memorymap.OAM:
		mem.video.Write(addr, data)
	case memorymap.WRAM, memorymap.Echo:
		mem.wram.write(offset, data)
	case memorymap.IO:
		mem.writeIO(addr, data)
	case memorymap.HRAM:
		mem.hram.write(offset, data)
	case memorymap.IE:
		mem.interrupts.WriteIE(data)
	default:
		mem.env.Logf("memory", "write to unmapped address %#04x", addr)
	}
}

func (mem *Memory) writeIO(addr uint16, data uint8) {
	switch {
	case addr == cpubus.AddrJOYP:
		mem.joypad.Write(addr, data)
	case addr == cpubus.AddrSB || addr == cpubus.AddrSC:
		mem.serial.Write(addr, data)
	case addr >= cpubus.AddrDIV && addr <= cpubus.AddrTAC:
		mem.timer.Write(addr, data)
	case addr == cpubus.AddrIF:
		mem.interrupts.WriteIF(data)
	case addr >= originAPU && addr <= memtopAPU:
		mem.apu.Write(addr, data)
	case addr == cpubus.AddrDMA:
		mem.dma.start(data)
	case addr >= cpubus.AddrLCDC && addr <= cpubus.AddrWX:
		mem.video.Write(addr, data)
	default:
		mem.env.Logf("memory", "write to unmapped IO address %#04x", addr)
	}
}
