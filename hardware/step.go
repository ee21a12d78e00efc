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
	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/sink"
	"github.com/gopherboy/gopherboy/hardware/video"
)

// Step the emulation by one CPU instruction, one interrupt dispatch or one
// halted cycle. The rest of the console is advanced by the number of cycles
// used. Either sink can be nil.
//
// Returns the number of cycles used.
func (con *Console) Step(vsnk sink.Video, asnk sink.Audio) (int, error) {
	_, cycles, err := con.step(vsnk, asnk)
	return cycles, err
}

// step also returns the interrupts requested by the peripherals
func (con *Console) step(vsnk sink.Video, asnk sink.Audio) (interrupts.Flag, int, error) {
	cycles, err := con.CPU.Step()
	if err != nil {
		return interrupts.None, 0, err
	}
	return con.Mem.Update(cycles, vsnk, asnk), cycles, nil
}

// Advance steps the emulation until one of the following happens: the CPU
// enters the halted state, a video frame is completed, or a frame's worth
// of cycles has elapsed.
//
// Returns the number of cycles used.
func (con *Console) Advance(vsnk sink.Video, asnk sink.Audio) (int, error) {
	var total int

	for total < video.CyclesPerFrame {
		halted := con.CPU.Halted

		f, cycles, err := con.step(vsnk, asnk)
		total += cycles
		if err != nil {
			return total, err
		}

		if !halted && con.CPU.Halted {
			break
		}
		if f&interrupts.VBlank.Flag() == interrupts.VBlank.Flag() {
			break
		}
	}

	return total, nil
}

// RunForFrameCount advances the emulation by the number of frames. When the
// LCD is off a frame is measured as the equivalent number of cycles.
func (con *Console) RunForFrameCount(frames int, vsnk sink.Video, asnk sink.Audio) error {
	for range frames {
		var total int
		for total < video.CyclesPerFrame {
			f, cycles, err := con.step(vsnk, asnk)
			if err != nil {
				return err
			}
			total += cycles
			if f&interrupts.VBlank.Flag() == interrupts.VBlank.Flag() {
				break
			}
		}
	}
	return nil
}
