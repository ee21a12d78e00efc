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

// length is the length counter. The counter is decremented by the frame
// sequencer when enabled. The channel is disabled when the counter reaches
// zero.
type length struct {
	max     int
	counter int
	enabled bool
}

func newLength(n int) length {
	return length{max: n}
}

// load the counter from the length register.
func (l *length) load(v uint8) {
	l.counter = l.max - int(v)
}

// clock the counter. returns true if the counter has just reached zero.
func (l *length) clock() bool {
	if !l.enabled || l.counter == 0 {
		return false
	}
	l.counter--
	return l.counter == 0
}

// write handles the length enable and trigger bits of the channel control
// register. The extra argument should be true if the next step of the
// sequencer will not clock the length counter.
//
// Enabling the counter when the next step will not clock it causes an
// immediate extra clock. If that clock takes the counter to zero the channel
// is disabled, unless the channel is also being triggered. Returns true if
// the channel should be disabled.
func (l *length) write(enable bool, trigger bool, extra bool) bool {
	var disable bool

	if extra && enable && !l.enabled && l.counter > 0 {
		l.counter--
		disable = l.counter == 0 && !trigger
	}

	l.enabled = enable

	if trigger && l.counter == 0 {
		l.counter = l.max
		if enable && extra {
			l.counter--
		}
	}

	return disable
}
