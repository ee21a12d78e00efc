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

package memory_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/test"
)

func newMemory(t *testing.T) (*memory.Memory, *logger.Logger) {
	t.Helper()
	log := logger.NewLogger(100)
	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewDefaultPreferences(), log)
	test.DemandSuccess(t, err)

	// 32k ROM with no controller. the header is all zeroes
	data := make([]uint8, 2*cartridge.ROMBankSize)
	for i := range data {
		data[i] = uint8(i >> 8)
	}
	for i := 0x134; i < 0x150; i++ {
		data[i] = 0x00
	}

	cart, err := cartridge.FromData(env, "test", data)
	test.DemandSuccess(t, err)

	return memory.NewMemory(env, cart), log
}

func countTag(log *logger.Logger, tag string) int {
	var n int
	log.BorrowLog(func(entries []logger.Entry) {
		for _, e := range entries {
			if e.Tag == tag {
				n++
			}
		}
	})
	return n
}

func TestROM(t *testing.T) {
	mem, _ := newMemory(t)
	test.ExpectEquality(t, mem.Read(0x0000), 0x00)
	test.ExpectEquality(t, mem.Read(0x0200), 0x02)
	test.ExpectEquality(t, mem.Read(0x7fff), 0x7f)
}

func TestWorkRAM(t *testing.T) {
	mem, _ := newMemory(t)

	mem.Write(0xc000, 0x12)
	test.ExpectEquality(t, mem.Read(0xc000), 0x12)

	// echo area shares storage with work RAM
	test.ExpectEquality(t, mem.Read(0xe000), 0x12)
	mem.Write(0xfdff, 0x34)
	test.ExpectEquality(t, mem.Read(0xddff), 0x34)

	mem.Write(0xff80, 0x56)
	test.ExpectEquality(t, mem.Read(0xff80), 0x56)
	mem.Write(0xfffe, 0x78)
	test.ExpectEquality(t, mem.Read(0xfffe), 0x78)
}

func TestInterruptRegisters(t *testing.T) {
	mem, _ := newMemory(t)
	mem.Write(cpubus.AddrIE, 0x1f)
	test.ExpectEquality(t, mem.Interrupts().ReadIE(), 0x1f)
	mem.Write(cpubus.AddrIF, 0x04)
	test.ExpectEquality(t, mem.Read(cpubus.AddrIF), 0xe4)
}

func TestUnmapped(t *testing.T) {
	mem, log := newMemory(t)

	test.ExpectEquality(t, mem.Read(0xfea0), cpubus.Sentinel)
	test.ExpectEquality(t, mem.Read(0xff03), cpubus.Sentinel)
	mem.Write(0xfeff, 0x00)
	test.ExpectEquality(t, countTag(log, "memory"), 3)

	// peeking does not log
	test.ExpectEquality(t, mem.Peek(0xfea0), cpubus.Sentinel)
	test.ExpectEquality(t, countTag(log, "memory"), 3)
}

func TestUpdate(t *testing.T) {
	mem, _ := newMemory(t)

	// timer running at 16 cycles per tick and about to overflow
	mem.Write(cpubus.AddrTIMA, 0xff)
	mem.Write(cpubus.AddrTAC, 0x05)

	f := mem.Update(15, nil, nil)
	test.ExpectEquality(t, f, interrupts.None)
	f = mem.Update(1, nil, nil)
	test.ExpectEquality(t, f, interrupts.Timer.Flag())
	test.ExpectEquality(t, mem.Read(cpubus.AddrIF)&0x04, 0x04)
}

func TestDMA(t *testing.T) {
	mem, log := newMemory(t)

	for i := range 0xa0 {
		mem.Write(0x8000+uint16(i), uint8(i)^0x5a)
	}

	mem.Write(cpubus.AddrDMA, 0x80)
	test.ExpectEquality(t, mem.DMA(), memory.Starting)

	// only HRAM is accessible during the transfer
	mem.Write(0xff80, 0x99)
	test.ExpectEquality(t, mem.Read(0xff80), 0x99)
	test.ExpectEquality(t, mem.Read(0xc000), cpubus.Sentinel)
	mem.Write(0xc001, 0x01)
	test.ExpectEquality(t, countTag(log, "dma"), 2)

	mem.Update(160, nil, nil)
	test.ExpectEquality(t, mem.DMA(), memory.Stopped)

	oam := mem.Video().OAM()
	vram := mem.PeekRange(0x8000, 0x809f)
	test.DemandEquality(t, len(vram), len(oam))
	for i := range oam {
		test.ExpectEquality(t, oam[i], vram[i], i)
	}

	// the blocked write was dropped
	test.ExpectEquality(t, mem.Read(0xc001), 0x00)
	test.ExpectEquality(t, mem.Read(cpubus.AddrDMA), 0x80)
}

func TestDMAPartial(t *testing.T) {
	mem, _ := newMemory(t)

	for i := range 0xa0 {
		mem.Write(0xc100+uint16(i), uint8(i))
	}

	mem.Write(cpubus.AddrDMA, 0xc1)
	mem.Update(100, nil, nil)
	test.ExpectEquality(t, mem.DMA(), memory.Running)
	mem.Update(60, nil, nil)
	test.ExpectEquality(t, mem.DMA(), memory.Stopped)

	oam := mem.Video().OAM()
	for i := range oam {
		test.ExpectEquality(t, oam[i], uint8(i), i)
	}
}

func TestPeekRange(t *testing.T) {
	mem, _ := newMemory(t)
	mem.Write(0xc000, 0x01)
	mem.Write(0xc001, 0x02)
	mem.Write(0xc002, 0x03)
	d := mem.PeekRange(0xc000, 0xc002)
	test.ExpectEquality(t, len(d), 3)
	test.ExpectEquality(t, d[2], 0x03)
}

func TestInspectRange(t *testing.T) {
	mem, log := newMemory(t)
	mem.Write(0xc000, 0x12)
	mem.Write(0xff80, 0x34)

	mem.Write(cpubus.AddrDMA, 0xc0)
	test.ExpectEquality(t, mem.DMA(), memory.Starting)

	d := mem.InspectRange(0xc000, 0xc000)
	test.ExpectEquality(t, d[0], cpubus.Sentinel)
	test.ExpectEquality(t, mem.InspectRange(0xff80, 0xff80)[0], 0x34)
	test.ExpectEquality(t, mem.PeekRange(0xc000, 0xc000)[0], 0x12)

	// inspection is not logged
	test.ExpectEquality(t, countTag(log, "dma"), 0)
	test.ExpectEquality(t, countTag(log, "memory"), 0)

	mem.Update(160, nil, nil)
	test.ExpectEquality(t, mem.InspectRange(0xc000, 0xc000)[0], 0x12)
}
