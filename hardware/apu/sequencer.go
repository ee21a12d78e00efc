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

// number of cycles between each step of the frame sequencer
const sequencerPeriod = 8192

// sequencer is the frame sequencer. the step field is the step that will be
// performed next.
type sequencer struct {
	ticks int
	step  int
}

func (seq *sequencer) reset() {
	seq.ticks = sequencerPeriod
	seq.step = 0
}

// nextIsLength returns true if the next step will clock the length counters.
func (seq *sequencer) nextIsLength() bool {
	return seq.step&0x01 == 0
}

// advance the sequencer by the number of cycles. returns true if a step is
// due. the number of cycles should never be more than the value in ticks.
func (seq *sequencer) advance(cycles int) bool {
	seq.ticks -= cycles
	if seq.ticks > 0 {
		return false
	}
	seq.ticks += sequencerPeriod
	return true
}

// next moves the sequencer to the next step and returns the step that was
// current.
func (seq *sequencer) next() int {
	s := seq.step
	seq.step = (seq.step + 1) & 0x07
	return s
}
