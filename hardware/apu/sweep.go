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

// the largest value that can be held by the wavelength registers
const maxWavelength = 2047

// sweep is the frequency sweep unit of square channel one.
type sweep struct {
	pace     uint8
	decrease bool
	shift    uint8

	enabled bool
	shadow  uint16
	timer   uint8

	// a calculation has been made in decrease mode since the last trigger
	decreaseUsed bool
}

// write the sweep register (NR10). returns true if the channel should be
// disabled. changing from decrease to increase mode after a calculation has
// been made in decrease mode disables the channel.
func (s *sweep) write(v uint8) bool {
	s.pace = (v >> 4) & 0x07
	s.decrease = v&0x08 == 0x08
	s.shift = v & 0x07
	return s.decreaseUsed && !s.decrease
}

func (s *sweep) reload() {
	s.timer = s.pace
	if s.timer == 0 {
		s.timer = 8
	}
}

// calculate the next wavelength. the boolean is true if the new value
// overflows.
func (s *sweep) calculate() (uint16, bool) {
	d := int(s.shadow >> s.shift)
	if s.decrease {
		s.decreaseUsed = true
		d = -d
	}
	n := int(s.shadow) + d
	if n < 0 || n > maxWavelength {
		return 0, true
	}
	return uint16(n), false
}

// trigger is called when the channel is triggered. returns true if the
// channel should be disabled because of an immediate overflow.
func (s *sweep) trigger(wavelength uint16) bool {
	s.shadow = wavelength
	s.decreaseUsed = false
	s.reload()
	s.enabled = s.pace != 0 || s.shift != 0
	if s.shift != 0 {
		_, overflow := s.calculate()
		return overflow
	}
	return false
}

// clock is called by the frame sequencer. returns the new wavelength and
// whether it should be written back to the channel. the disable value is true
// if the channel should be disabled.
//
// a shift of zero performs the overflow check but never changes the
// wavelength.
func (s *sweep) clock() (wavelength uint16, write bool, disable bool) {
	if s.timer > 0 {
		s.timer--
	}
	if s.timer > 0 {
		return 0, false, false
	}

	s.reload()

	if !s.enabled || s.pace == 0 {
		return 0, false, false
	}

	n, overflow := s.calculate()
	if overflow {
		return 0, false, true
	}

	if s.shift == 0 {
		return 0, false, false
	}

	s.shadow = n

	// the calculation is repeated for the overflow check only
	_, overflow = s.calculate()

	return n, true, overflow
}
