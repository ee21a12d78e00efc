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

// envelope is the volume envelope used by the square and noise channels.
type envelope struct {
	initial  uint8
	increase bool
	period   uint8

	volume uint8
	timer  uint8
}

// write the envelope register (NRx2).
func (e *envelope) write(v uint8) {
	e.initial = v >> 4
	e.increase = v&0x08 == 0x08
	e.period = v & 0x07
}

func (e *envelope) trigger() {
	e.volume = e.initial
	e.timer = e.period
}

func (e *envelope) clock() {
	if e.period == 0 {
		return
	}

	if e.timer > 0 {
		e.timer--
	}
	if e.timer > 0 {
		return
	}

	e.timer = e.period
	if e.increase {
		if e.volume < 0x0f {
			e.volume++
		}
	} else if e.volume > 0 {
		e.volume--
	}
}
