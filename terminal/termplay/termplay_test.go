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

package termplay_test

import (
	"strings"
	"testing"

	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/sink"
	"github.com/gopherboy/gopherboy/terminal/termplay"
	"github.com/gopherboy/gopherboy/test"
)

type buttons map[joypad.Button]bool

func (b buttons) SetButton(btn joypad.Button, pressed bool) {
	b[btn] = pressed
}

func TestInput(t *testing.T) {
	var in termplay.Input
	btns := make(buttons)

	in.Feed([]byte("x"))
	in.Frame(btns)
	test.ExpectEquality(t, btns[joypad.A], true)
	test.ExpectEquality(t, btns[joypad.B], false)

	// cursor up
	in.Feed([]byte{27, '[', 'A'})
	in.Frame(btns)
	test.ExpectEquality(t, btns[joypad.Up], true)
	test.ExpectEquality(t, btns[joypad.A], true)

	// buttons are released after a short while
	for range 20 {
		in.Frame(btns)
	}
	test.ExpectEquality(t, btns[joypad.A], false)
	test.ExpectEquality(t, btns[joypad.Up], false)

	test.ExpectEquality(t, in.Quit, false)
	in.Feed([]byte("q"))
	test.ExpectEquality(t, in.Quit, true)
}

func TestEscapeAlone(t *testing.T) {
	var in termplay.Input
	btns := make(buttons)

	// an escape not followed by a cursor sequence does not swallow the
	// following key
	in.Feed([]byte{27, 'x'})
	in.Frame(btns)
	test.ExpectEquality(t, btns[joypad.A], true)
}

func TestRender(t *testing.T) {
	var s strings.Builder
	r := termplay.NewRenderer(&s)

	r.Fit(200, 100)
	test.ExpectEquality(t, r.Stride(), 1)

	frame := make([]uint8, sink.FrameSize)
	r.AppendFrame(frame)
	test.ExpectEquality(t, r.Frames, 1)

	out := s.String()
	test.ExpectEquality(t, strings.Count(out, "▀"), sink.FrameWidth*sink.FrameHeight/2)
	test.ExpectEquality(t, strings.Count(out, "\r\n"), sink.FrameHeight/2)

	// a blank frame needs only one colour change per line
	test.ExpectEquality(t, strings.Count(out, "\033[38;2;0;0;0;48;2;0;0;0m"), sink.FrameHeight/2)
}

func TestFit(t *testing.T) {
	var s strings.Builder
	r := termplay.NewRenderer(&s)

	r.Fit(80, 40)
	test.ExpectEquality(t, r.Stride(), 2)

	r.AppendFrame(make([]uint8, sink.FrameSize))
	test.ExpectEquality(t, strings.Count(s.String(), "▀"), 80*36)
}
