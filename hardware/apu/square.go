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

import "fmt"

// the four duty cycle patterns. bit n is the output at position n
var dutyPatterns = [4]uint8{
	0b0000_0001, // 12.5%
	0b1000_0001, // 25%
	0b1000_0111, // 50%
	0b0111_1110, // 75%
}

// square is a square wave channel. Only the first channel has a sweep unit.
type square struct {
	active bool
	dacOn  bool

	duty       uint8
	position   uint8
	wavelength uint16
	timer      int

	length   length
	envelope envelope
	sweep    *sweep
}

func newSquare(withSweep bool) square {
	ch := square{
		length: newLength(64),
	}
	if withSweep {
		ch.sweep = &sweep{}
	}
	return ch
}

func (ch *square) String() string {
	return fmt.Sprintf("on=%v dac=%v duty=%d wl=%#03x vol=%d len=%d", ch.active, ch.dacOn, ch.duty, ch.wavelength, ch.envelope.volume, ch.length.counter)
}

func (ch *square) period() int {
	return (2048 - int(ch.wavelength)) * 4
}

func (ch *square) tick(cycles int) {
	if !ch.active {
		return
	}
	ch.timer -= cycles
	for ch.timer <= 0 {
		ch.timer += ch.period()
		ch.position = (ch.position + 1) & 0x07
	}
}

func (ch *square) amplitude() float32 {
	if !ch.active || !ch.dacOn {
		return 0
	}
	v := float32(ch.envelope.volume) / 15
	if (dutyPatterns[ch.duty]>>ch.position)&0x01 == 0x01 {
		return v
	}
	return -v
}

// NR10
func (ch *square) writeSweep(v uint8) {
	if ch.sweep.write(v) {
		ch.active = false
	}
}

// NRx1
func (ch *square) writeDutyLength(v uint8) {
	ch.duty = v >> 6
	ch.length.load(v & 0x3f)
}

// NRx2. the DAC is off if the upper five bits are zero
func (ch *square) writeEnvelope(v uint8) {
	ch.envelope.write(v)
	ch.dacOn = v&0xf8 != 0
	if !ch.dacOn {
		ch.active = false
	}
}

// NRx3
func (ch *square) writeWavelengthLo(v uint8) {
	ch.wavelength = ch.wavelength&0x0700 | uint16(v)
}

// NRx4
func (ch *square) writeControl(v uint8, extra bool) {
	ch.wavelength = ch.wavelength&0x00ff | uint16(v&0x07)<<8
	trigger := v&0x80 == 0x80
	if ch.length.write(v&0x40 == 0x40, trigger, extra) {
		ch.active = false
	}
	if trigger {
		ch.trigger()
	}
}

func (ch *square) trigger() {
	ch.active = true
	ch.timer = ch.period()
	ch.envelope.trigger()
	if ch.sweep != nil && ch.sweep.trigger(ch.wavelength) {
		ch.active = false
	}
	if !ch.dacOn {
		ch.active = false
	}
}

func (ch *square) clockLength() {
	if ch.length.clock() {
		ch.active = false
	}
}

func (ch *square) clockEnvelope() {
	ch.envelope.clock()
}

// clockSweep returns the new wavelength if it has changed. the boolean is
// false if the wavelength has not changed.
func (ch *square) clockSweep() (uint16, bool) {
	if ch.sweep == nil || !ch.active {
		return 0, false
	}
	wl, write, disable := ch.sweep.clock()
	if write {
		ch.wavelength = wl
	}
	if disable {
		ch.active = false
	}
	return wl, write
}
