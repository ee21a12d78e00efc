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

package sink_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/sink"
	"github.com/gopherboy/gopherboy/test"
)

type countingAudio struct {
	n           int
	left, right float32
}

func (c *countingAudio) AppendSample(l float32, r float32) {
	c.n++
	c.left = l
	c.right = r
}

func TestMostRecentFrame(t *testing.T) {
	var m sink.MostRecentFrame

	frame := make([]uint8, sink.FrameSize)
	frame[0] = 0x10
	frame[1] = 0x20
	frame[2] = 0x30
	last := sink.FrameSize - sink.BytesPerPixel
	frame[last] = 0xff

	m.AppendFrame(frame)
	test.ExpectEquality(t, m.Frames, 1)

	r, g, b := m.Pixel(0, 0)
	test.ExpectEquality(t, r, 0x10)
	test.ExpectEquality(t, g, 0x20)
	test.ExpectEquality(t, b, 0x30)

	r, _, _ = m.Pixel(sink.FrameWidth-1, sink.FrameHeight-1)
	test.ExpectEquality(t, r, 0xff)

	// the sink keeps a copy
	frame[0] = 0x00
	r, _, _ = m.Pixel(0, 0)
	test.ExpectEquality(t, r, 0x10)
}

func TestTee(t *testing.T) {
	a := &countingAudio{}
	b := &countingAudio{}
	var v sink.MostRecentFrame

	tee := sink.Tee{
		Video: []sink.Video{&v, sink.Null{}},
		Audio: []sink.Audio{a, b, sink.Null{}},
	}

	tee.AppendSample(0.5, -0.5)
	tee.AppendFrame(make([]uint8, sink.FrameSize))

	test.ExpectEquality(t, a.n, 1)
	test.ExpectEquality(t, b.n, 1)
	test.ExpectEquality(t, b.left, 0.5)
	test.ExpectEquality(t, b.right, -0.5)
	test.ExpectEquality(t, v.Frames, 1)
}
