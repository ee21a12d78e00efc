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

// Package mix combines the output of the four sound channels into a stereo
// sample.
package mix

// Channels is the amplitude of each of the four channels. Each amplitude is
// in the range -1.0 to 1.0. A disabled channel has an amplitude of zero.
type Channels [4]float32

// Routing is the channel routing (NR51) and master volume (NR50) registers.
type Routing struct {
	NR50 uint8
	NR51 uint8

	// the noise channel uses bit 7 of NR51 for the left output. if this
	// field is false then bit 4 is used instead
	NoiseBit7 bool
}

// volume returns the master volume multiplier for a three bit volume value.
func volume(v uint8) float32 {
	return float32(v&0x07+1) / 8
}

// Stereo mixes the channels into a left and right sample. For each side the
// routed channels are summed and divided by four. The result is scaled by
// the master volume for that side. The lower nibble of NR51 routes channels
// to the right output and the upper nibble to the left.
func Stereo(ch Channels, r Routing) (float32, float32) {
	var left, right float32

	for i := range 3 {
		if r.NR51&(0x10<<i) != 0 {
			left += ch[i]
		}
	}

	noiseLeft := uint8(0x80)
	if !r.NoiseBit7 {
		noiseLeft = 0x10
	}
	if r.NR51&noiseLeft != 0 {
		left += ch[3]
	}

	for i := range 4 {
		if r.NR51&(0x01<<i) != 0 {
			right += ch[i]
		}
	}

	left = left / 4 * volume(r.NR50>>4)
	right = right / 4 * volume(r.NR50)

	return left, right
}

// Mono mixes all channels equally with no routing and no master volume.
func Mono(ch Channels) float32 {
	return (ch[0] + ch[1] + ch[2] + ch[3]) / 4
}
