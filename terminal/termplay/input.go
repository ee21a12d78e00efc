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

package termplay

import (
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/terminal/easyterm"
)

// the number of frames a button remains pressed after a key press
const holdFrames = 8

// Key bindings. The cursor keys are the direction pad.
var keys = map[byte]joypad.Button{
	'z':                        joypad.B,
	'x':                        joypad.A,
	easyterm.KeyCarriageReturn: joypad.Start,
	easyterm.KeyTab:            joypad.Select,
	' ':                        joypad.Select,
}

var cursorKeys = map[byte]joypad.Button{
	easyterm.CursorUp:       joypad.Up,
	easyterm.CursorDown:     joypad.Down,
	easyterm.CursorForward:  joypad.Right,
	easyterm.CursorBackward: joypad.Left,
}

// Input turns terminal key presses into joypad state.
type Input struct {
	hold [joypad.NumButtons]int

	// escape sequence parsing
	esc int

	Quit bool
}

// Feed parses bytes read from the terminal.
func (in *Input) Feed(p []byte) {
	for _, c := range p {
		switch in.esc {
		case 1:
			if c == easyterm.EscCursor {
				in.esc = 2
				continue
			}
			in.esc = 0
		case 2:
			in.esc = 0
			if b, ok := cursorKeys[c]; ok {
				in.hold[b] = holdFrames
			}
			continue
		}

		switch c {
		case easyterm.KeyEsc:
			in.esc = 1
		case easyterm.KeyInterrupt, 'q':
			in.Quit = true
		default:
			if b, ok := keys[c]; ok {
				in.hold[b] = holdFrames
			}
		}
	}
}

// Buttons is the interface used to change the state of the joypad.
// Implemented by hardware.Console.
type Buttons interface {
	SetButton(b joypad.Button, pressed bool)
}

// Frame should be called once per frame. It updates the joypad and counts
// down any held buttons.
func (in *Input) Frame(con Buttons) {
	for b := range joypad.NumButtons {
		con.SetButton(b, in.hold[b] > 0)
		if in.hold[b] > 0 {
			in.hold[b]--
		}
	}
}
