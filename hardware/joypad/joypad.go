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

// Package joypad implements the JOYP register and the button matrix.
//
// The eight buttons are arranged as two groups of four. Bits 4 and 5 of JOYP
// select which group is visible in the lower four bits. A selected group and
// a pressed button are both indicated by a zero bit.
package joypad

import (
	"fmt"
	"strings"

	"github.com/gopherboy/gopherboy/hardware/bits"
	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
)

// Button identifies one of the eight buttons.
type Button int

// List of valid Button values. The directional buttons are the lower group
// and the action buttons are the upper group. The order within each group is
// the order of the bits in JOYP.
const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
	NumButtons
)

func (b Button) String() string {
	switch b {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Up:
		return "Up"
	case Down:
		return "Down"
	case A:
		return "A"
	case B:
		return "B"
	case Select:
		return "Select"
	case Start:
		return "Start"
	}
	return "unknown button"
}

// select bits in JOYP
const (
	selectDirections = 0x10
	selectActions    = 0x20
)

// Joypad implements the JOYP register.
type Joypad struct {
	// bit is set if the button is pressed
	pressed uint8

	// bits 4 and 5 of the most recent JOYP write
	selection uint8

	// the lower nibble as last seen by Update()
	lines uint8
}

// NewJoypad is the preferred method of initialisation for the Joypad type.
func NewJoypad() *Joypad {
	jp := &Joypad{}
	jp.Reset()
	return jp
}

// Reset joypad to power-on state. No buttons are pressed and neither group
// is selected.
func (jp *Joypad) Reset() {
	jp.pressed = 0
	jp.selection = selectDirections | selectActions
	jp.lines = 0x0f
}

func (jp *Joypad) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("JOYP=%#02x", jp.Read(cpubus.AddrJOYP)))
	for b := range NumButtons {
		if jp.IsPressed(b) {
			s.WriteString(fmt.Sprintf(" %s", b))
		}
	}
	return s.String()
}

// SetPressed changes the state of a button.
func (jp *Joypad) SetPressed(b Button, pressed bool) {
	if b < 0 || b >= NumButtons {
		return
	}
	jp.pressed = bits.SetTo(jp.pressed, int(b), pressed)
}

// IsPressed returns true if the button is pressed.
func (jp *Joypad) IsPressed(b Button) bool {
	return bits.Test(jp.pressed, int(b))
}

// the visible state of the four lines. a pressed button pulls the line low
func (jp *Joypad) visible() uint8 {
	var p uint8
	if jp.selection&selectDirections == 0 {
		p |= jp.pressed & 0x0f
	}
	if jp.selection&selectActions == 0 {
		p |= jp.pressed >> 4
	}
	return ^p & 0x0f
}

// Read implements the cpubus.Memory interface.
func (jp *Joypad) Read(addr uint16) uint8 {
	if addr != cpubus.AddrJOYP {
		return cpubus.Sentinel
	}
	return 0xc0 | jp.selection | jp.visible()
}

// Write implements the cpubus.Memory interface. Only the select bits can be
// written.
func (jp *Joypad) Write(addr uint16, data uint8) {
	if addr != cpubus.AddrJOYP {
		return
	}
	jp.selection = data & (selectDirections | selectActions)
}

// Update checks the visible lines and returns the Joypad interrupt flag if
// any line has gone from high to low since the previous call. The number of
// cycles is not used.
func (jp *Joypad) Update(_ int) interrupts.Flag {
	prev := jp.lines
	jp.lines = jp.visible()
	if prev&^jp.lines != 0 {
		return interrupts.Joypad.Flag()
	}
	return interrupts.None
}
