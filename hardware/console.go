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

package hardware

import (
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/cpu"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/memory"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
)

// NoCartridge is returned by NewConsole() when the cartridge is nil.
const NoCartridge = "console: no cartridge"

// Console is the main container for the emulated components of the console.
type Console struct {
	env *environment.Environment

	CPU *cpu.CPU
	Mem *memory.Memory
}

// NewConsole creates a new Console and everything associated with the
// hardware. The console is in the state it would be in after the boot ROM
// has finished.
func NewConsole(env *environment.Environment, cart *cartridge.Cartridge) (*Console, error) {
	if cart == nil {
		return nil, curated.Errorf(NoCartridge)
	}

	con := &Console{env: env}
	con.Mem = memory.NewMemory(env, cart)
	con.CPU = cpu.NewCPU(con.Mem)
	con.Reset()

	return con, nil
}

// Reset the console to the power-on state.
func (con *Console) Reset() {
	con.Mem.Reset()
	con.CPU.Reset()
}

// SetButton changes the state of a joypad button.
func (con *Console) SetButton(b joypad.Button, pressed bool) {
	con.Mem.Joypad().SetPressed(b, pressed)
}

// PollSerial checks for a byte written to the serial port. See
// serial.Serial.Poll() for details.
func (con *Console) PollSerial() (uint8, bool) {
	return con.Mem.Serial().Poll()
}

// SaveData returns the battery backed RAM of the cartridge.
func (con *Console) SaveData() ([]uint8, error) {
	return con.Mem.Cartridge().SaveData()
}

// LoadSaveData replaces the battery backed RAM of the cartridge.
func (con *Console) LoadSaveData(data []uint8) error {
	return con.Mem.Cartridge().LoadSaveData(data)
}

// PC returns the address of the next instruction.
func (con *Console) PC() uint16 {
	return con.CPU.PC.Address()
}

// MemoryRange returns the values of the inclusive range of addresses as the
// CPU would read them. Reads blocked by DMA or by the video mode return 0xff.
// Nothing is logged.
func (con *Console) MemoryRange(from uint16, to uint16) []uint8 {
	return con.Mem.InspectRange(from, to)
}
