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

package hardware_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/hardware/sink"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/test"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewDefaultPreferences(), logger.NewLogger(100))
	test.DemandSuccess(t, err)
	return env
}

// newConsole creates a console with a 32k cartridge that has no controller.
// the program is placed at the entry point and the interrupt handler, if
// any, is placed at the joypad interrupt vector
func newConsole(t *testing.T, program []uint8, handler []uint8) *hardware.Console {
	t.Helper()
	env := newEnv(t)

	data := make([]uint8, 2*cartridge.ROMBankSize)
	copy(data[0x60:], handler)
	copy(data[0x100:], program)

	cart, err := cartridge.FromData(env, "test", data)
	test.DemandSuccess(t, err)

	con, err := hardware.NewConsole(env, cart)
	test.DemandSuccess(t, err)
	return con
}

func TestNoCartridge(t *testing.T) {
	_, err := hardware.NewConsole(newEnv(t), nil)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoCartridge))
}

func TestPowerOn(t *testing.T) {
	con := newConsole(t, nil, nil)
	s := con.DebugState()
	test.ExpectEquality(t, s.PC, 0x0100)
	test.ExpectEquality(t, s.SP, 0xfffe)
	test.ExpectEquality(t, s.A, 0x01)
	test.ExpectEquality(t, s.F, 0xb0)
	test.ExpectEquality(t, s.IF, 0xe1)
	test.ExpectEquality(t, s.IE, 0x00)
	test.ExpectEquality(t, s.LCDC, 0x91)
	test.ExpectEquality(t, s.Mnemonic, "NOP")
	test.ExpectEquality(t, con.MemoryRange(0xff26, 0xff26)[0], 0xf1)
}

func TestAdvanceToHalt(t *testing.T) {
	// LD A,0x42; HALT
	con := newConsole(t, []uint8{0x3e, 0x42, 0x76}, nil)

	cycles, err := con.Advance(nil, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cycles, 12)
	test.ExpectEquality(t, con.CPU.A.Value(), 0x42)
	test.ExpectSuccess(t, con.CPU.Halted)
	test.ExpectEquality(t, con.PC(), 0x0103)
}

func TestAdvanceToFrame(t *testing.T) {
	// JR -2
	con := newConsole(t, []uint8{0x18, 0xfe}, nil)
	snk := &sink.MostRecentFrame{}

	cycles, err := con.Advance(snk, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snk.Frames, 1)
	test.ExpectSuccess(t, cycles >= 456*144)
	test.ExpectSuccess(t, cycles < 456*144+12)

	_, err = con.Advance(snk, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snk.Frames, 2)

	test.DemandSuccess(t, con.RunForFrameCount(3, snk, nil))
	test.ExpectEquality(t, snk.Frames, 5)
}

func TestAdvanceLCDOff(t *testing.T) {
	// XOR A; LDH (0x40),A; JR -2
	con := newConsole(t, []uint8{0xaf, 0xe0, 0x40, 0x18, 0xfe}, nil)
	snk := &sink.MostRecentFrame{}

	con.Advance(snk, nil)
	cycles, err := con.Advance(snk, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snk.Frames, 0)
	test.ExpectSuccess(t, cycles >= 70224)
}

func TestSerial(t *testing.T) {
	// LD A,'P'; LDH (0x01),A; LD A,0x81; LDH (0x02),A; HALT
	con := newConsole(t, []uint8{0x3e, 'P', 0xe0, 0x01, 0x3e, 0x81, 0xe0, 0x02, 0x76}, nil)

	_, ok := con.PollSerial()
	test.ExpectFailure(t, ok)

	_, err := con.Advance(nil, nil)
	test.DemandSuccess(t, err)

	b, ok := con.PollSerial()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, b, 'P')

	_, ok = con.PollSerial()
	test.ExpectFailure(t, ok)
}

func TestJoypadWake(t *testing.T) {
	program := []uint8{
		0x3e, 0x10, // LD A,0x10
		0xe0, 0x00, // LDH (0x00),A  select action buttons
		0x3e, 0x10, // LD A,0x10
		0xe0, 0xff, // LDH (0xff),A  enable joypad interrupt
		0xfb, // EI
		0x76, // HALT
		0x76, // HALT
	}
	handler := []uint8{
		0xd9, // RETI
	}
	con := newConsole(t, program, handler)

	_, err := con.Advance(nil, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, con.CPU.Halted)
	test.ExpectEquality(t, con.PC(), 0x010a)

	// nothing happens until a button is pressed
	_, err = con.Advance(nil, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, con.PC(), 0x010a)

	con.SetButton(joypad.A, true)
	_, err = con.Advance(nil, nil)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, con.CPU.Halted)
	test.ExpectEquality(t, con.PC(), 0x010b)
	test.ExpectEquality(t, con.DebugState().IF&0x10, 0x00)
}

func TestSaveData(t *testing.T) {
	con := newConsole(t, nil, nil)
	_, err := con.SaveData()
	test.ExpectSuccess(t, curated.Is(err, cartridge.UnsupportedSaveData))
}

func TestUndefinedOpcode(t *testing.T) {
	con := newConsole(t, []uint8{0xd3}, nil)
	_, err := con.Step(nil, nil)
	test.ExpectFailure(t, err)
	_, err = con.Advance(nil, nil)
	test.ExpectFailure(t, err)

	con.Reset()
	test.ExpectFailure(t, con.CPU.Killed)
}

func TestMemoryRangeDuringDMA(t *testing.T) {
	con := newConsole(t, nil, nil)

	con.Mem.Write(0xc000, 0x12)
	con.Mem.Write(0xff80, 0x34)
	test.ExpectEquality(t, con.MemoryRange(0xc000, 0xc000)[0], 0x12)

	con.Mem.Write(0xff46, 0xc0)

	// the range is read as the CPU would read it
	test.ExpectEquality(t, con.MemoryRange(0xc000, 0xc000)[0], 0xff)
	test.ExpectEquality(t, con.MemoryRange(0xff80, 0xff80)[0], 0x34)
	test.ExpectEquality(t, con.Mem.Peek(0xc000), 0x12)
}
