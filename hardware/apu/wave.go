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

// size of the wave table in bytes. each byte holds two samples
const waveTableSize = 16

// right shift applied to each sample, indexed by the output level in bits 5
// and 6 of NR32. level zero is muted
var waveShifts = [4]uint8{4, 0, 1, 2}

// wave is the wave channel. The sample table is written through the wave
// RAM addresses.
type wave struct {
	active bool
	dacOn  bool

	level      uint8
	wavelength uint16
	timer      int
	position   uint8
	sample     uint8

	table [waveTableSize]uint8

	length length
}

func newWave() wave {
	return wave{
		length: newLength(256),
	}
}

func (ch *wave) String() string {
	return fmt.Sprintf("on=%v dac=%v level=%d wl=%#03x pos=%d len=%d", ch.active, ch.dacOn, ch.level, ch.wavelength, ch.position, ch.length.counter)
}

func (ch *wave) period() int {
	return (2048 - int(ch.wavelength)) * 2
}

// the sample at the position. the high nibble of each byte is played first
func (ch *wave) sampleAt(pos uint8) uint8 {
	b := ch.table[pos>>1]
	if pos&0x01 == 0 {
		return b >> 4
	}
	return b & 0x0f
}

func (ch *wave) tick(cycles int) {
	if !ch.active {
		return
	}
	ch.timer -= cycles
	for ch.timer <= 0 {
		ch.timer += ch.period()
		ch.position = (ch.position + 1) & 0x1f
		ch.sample = ch.sampleAt(ch.position)
	}
}

func (ch *wave) amplitude() float32 {
	if !ch.active || !ch.dacOn || ch.level == 0 {
		return 0
	}
	return (float32(ch.sample>>waveShifts[ch.level]) - 7.5) / 7.5
}

// NR30
func (ch *wave) writeDAC(v uint8) {
	ch.dacOn = v&0x80 == 0x80
	if !ch.dacOn {
		ch.active = false
	}
}

// NR31
func (ch *wave) writeLength(v uint8) {
	ch.length.load(v)
}

// NR32
func (ch *wave) writeLevel(v uint8) {
	ch.level = (v >> 5) & 0x03
}

// NR33
func (ch *wave) writeWavelengthLo(v uint8) {
	ch.wavelength = ch.wavelength&0x0700 | uint16(v)
}

// NR34
func (ch *wave) writeControl(v uint8, extra bool) {
	ch.wavelength = ch.wavelength&0x00ff | uint16(v&0x07)<<8
	trigger := v&0x80 == 0x80
	if ch.length.write(v&0x40 == 0x40, trigger, extra) {
		ch.active = false
	}
	if trigger {
		ch.active = ch.dacOn
		ch.timer = ch.period()
		ch.position = 0
	}
}

func (ch *wave) clockLength() {
	if ch.length.clock() {
		ch.active = false
	}
}
