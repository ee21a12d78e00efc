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

package mix_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/apu/mix"
	"github.com/gopherboy/gopherboy/test"
)

func TestStereo(t *testing.T) {
	ch := mix.Channels{1.0, 0.5, -0.5, -1.0}

	// everything routed everywhere at full volume
	l, r := mix.Stereo(ch, mix.Routing{NR50: 0x77, NR51: 0xff, NoiseBit7: true})
	test.ExpectEquality(t, l, 0.0)
	test.ExpectEquality(t, r, 0.0)

	// square one only
	l, r = mix.Stereo(ch, mix.Routing{NR50: 0x77, NR51: 0x11, NoiseBit7: true})
	test.ExpectEquality(t, l, 0.25)
	test.ExpectEquality(t, r, 0.25)

	// master volume on the left is one eighth
	l, r = mix.Stereo(ch, mix.Routing{NR50: 0x07, NR51: 0x11, NoiseBit7: true})
	test.ExpectEquality(t, l, 0.25/8)
	test.ExpectEquality(t, r, 0.25)

	// noise on the right only
	l, r = mix.Stereo(ch, mix.Routing{NR50: 0x77, NR51: 0x08, NoiseBit7: true})
	test.ExpectEquality(t, l, 0.0)
	test.ExpectEquality(t, r, -0.25)
}

func TestNoiseRouting(t *testing.T) {
	ch := mix.Channels{0.0, 0.0, 0.0, 1.0}

	l, _ := mix.Stereo(ch, mix.Routing{NR50: 0x77, NR51: 0x80, NoiseBit7: true})
	test.ExpectEquality(t, l, 0.25)
	l, _ = mix.Stereo(ch, mix.Routing{NR50: 0x77, NR51: 0x10, NoiseBit7: true})
	test.ExpectEquality(t, l, 0.0)

	// bit 4 is shared with square channel one
	l, _ = mix.Stereo(ch, mix.Routing{NR50: 0x77, NR51: 0x80, NoiseBit7: false})
	test.ExpectEquality(t, l, 0.0)
	l, _ = mix.Stereo(ch, mix.Routing{NR50: 0x77, NR51: 0x10, NoiseBit7: false})
	test.ExpectEquality(t, l, 0.25)
}

func TestMono(t *testing.T) {
	test.ExpectEquality(t, mix.Mono(mix.Channels{1, 1, 1, 1}), 1.0)
	test.ExpectEquality(t, mix.Mono(mix.Channels{1, -1, 0, 0}), 0.0)
}
