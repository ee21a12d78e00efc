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

package sdlplay

import (
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// keyboard bindings, by SDL key name
var keys = map[string]joypad.Button{
	"Up":        joypad.Up,
	"Down":      joypad.Down,
	"Left":      joypad.Left,
	"Right":     joypad.Right,
	"X":         joypad.A,
	"Z":         joypad.B,
	"Return":    joypad.Start,
	"Backspace": joypad.Select,
	"Space":     joypad.Select,
}

// milliseconds to wait for an event in Service()
const eventTimeout = 2

// Service handles all pending SDL events and draws the most recent frame.
// It waits a short time for the first event so that the main thread does
// not spin.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	for ev := sdl.WaitEventTimeout(eventTimeout); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.quit.Store(true)

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break // switch
			}

			name := sdl.GetKeyName(ev.Keysym.Sym)
			if name == "Escape" {
				scr.quit.Store(true)
				break // switch
			}

			if b, ok := keys[name]; ok {
				scr.buttons[b].Store(ev.Type == sdl.KEYDOWN)
			}
		}
	}

	if err := scr.present(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
}
