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

// the base divisors of the noise channel indexed by the lower three bits of
// NR43
var noiseDivisors = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

// noise is the noise channel. The output is generated by a linear feedback
// shift register.
type noise struct {
	active bool
	dacOn  bool

	shift   uint8
	short   bool
	divisor uint8
	timer   int

	lfsr uint16

	length   length
	envelope envelope
}

func newNoise() noise {
	return noise{
		length: newLength(64),
		lfsr:   0x7fff,
	}
}

func (ch *noise) String() string {
	return fmt.Sprintf("on=%v dac=%v lfsr=%#04x short=%v vol=%d len=%d", ch.active, ch.dacOn, ch.lfsr, ch.short, ch.envelope.volume, ch.length.counter)
}

func (ch *noise) period() int {
	return noiseDivisors[ch.divisor] << ch.shift
}

// shiftLFSR advances the shift register by one. the XOR of the lowest two
// bits is placed in bit 15 (and bit 7 in short mode) before the shift.
func (ch *noise) shiftLFSR() {
	x := (ch.lfsr ^ ch.lfsr>>1) & 0x01
	ch.lfsr = ch.lfsr&^0x8000 | x<<15
	if ch.short {
		ch.lfsr = ch.lfsr&^0x0080 | x<<7
	}
	ch.lfsr >>= 1
}

// output is the complement of bit 0 of the shift register.
func (ch *noise) output() bool {
	return ch.lfsr&0x01 == 0x00
}

func (ch *noise) tick(cycles int) {
	if !ch.active {
		return
	}
	ch.timer -= cycles
	for ch.timer <= 0 {
		ch.timer += ch.period()
		ch.shiftLFSR()
	}
}

func (ch *noise) amplitude() float32 {
	if !ch.active || !ch.dacOn {
		return 0
	}
	v := float32(ch.envelope.volume) / 15
	if ch.output() {
		return v
	}
	return -v
}

// NR41
func (ch *noise) writeLength(v uint8) {
	ch.length.load(v & 0x3f)
}

// NR42
func (ch *noise) writeEnvelope(v uint8) {
	ch.envelope.write(v)
	ch.dacOn = v&0xf8 != 0
	if !ch.dacOn {
		ch.active = false
	}
}

// NR43
func (ch *noise) writePolynomial(v uint8) {
	ch.shift = v >> 4
	ch.short = v&0x08 == 0x08
	ch.divisor = v & 0x07
}

// NR44
func (ch *noise) writeControl(v uint8, extra bool) {
	trigger := v&0x80 == 0x80
	if ch.length.write(v&0x40 == 0x40, trigger, extra) {
		ch.active = false
	}
	if trigger {
		ch.active = ch.dacOn
		ch.timer = ch.period()
		ch.lfsr = 0x7fff
		ch.envelope.trigger()
	}
}

func (ch *noise) clockLength() {
	if ch.length.clock() {
		ch.active = false
	}
}

func (ch *noise) clockEnvelope() {
	ch.envelope.clock()
}
