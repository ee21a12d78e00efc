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

// Package interrupts implements the interrupt controller. The controller
// holds the interrupt enable (IE) and interrupt request (IF) registers. It
// does not hold the master interrupt enable flag, which belongs to the CPU.
//
// Interrupt sources are ordered by priority. When more than one source is
// pending the source with the lowest bit value is dispatched first.
package interrupts

import (
	"fmt"
	"strings"
)

// Source identifies one of the five interrupt sources.
type Source int

// List of valid Source values, in order of priority.
const (
	VBlank Source = iota
	LCDStat
	Timer
	Serial
	Joypad
	NumSources
)

func (s Source) String() string {
	switch s {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Vector returns the address of the handler for the interrupt source.
func (s Source) Vector() uint16 {
	return 0x0040 + uint16(s)*8
}

// Flag returns the bit representing the source in the IE and IF registers.
func (s Source) Flag() Flag {
	return Flag(1 << s)
}

// Flag is a bitmask of interrupt sources. Peripherals return a Flag from
// their Update() functions to indicate which interrupts they are requesting.
type Flag uint8

// None indicates that no interrupts are requested.
const None Flag = 0x00

// the five bits used by interrupt sources
const mask = 0x1f

// Controller is the interrupt controller.
type Controller struct {
	enable  uint8
	request uint8
}

// NewController is the preferred method of initialisation for the Controller
// type.
func NewController() *Controller {
	ctrl := &Controller{}
	ctrl.Reset()
	return ctrl
}

// Reset the controller to the power-on state.
func (ctrl *Controller) Reset() {
	ctrl.request = 0x01
	ctrl.enable = 0x00
}

func (ctrl *Controller) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("IE=%#02x IF=%#02x", ctrl.enable, ctrl.ReadIF()))
	for src := range NumSources {
		if ctrl.request&uint8(src.Flag()) != 0 {
			s.WriteString(fmt.Sprintf(" %s", src))
			if ctrl.enable&uint8(src.Flag()) == 0 {
				s.WriteString("(masked)")
			}
		}
	}
	return s.String()
}

// Request records the interrupts represented by the flag.
func (ctrl *Controller) Request(f Flag) {
	ctrl.request |= uint8(f) & mask
}

// Pending returns the interrupts that are both requested and enabled.
func (ctrl *Controller) Pending() Flag {
	return Flag(ctrl.enable & ctrl.request & mask)
}

// Next returns the highest priority pending interrupt. The boolean is false
// if there are no pending interrupts.
func (ctrl *Controller) Next() (Source, bool) {
	p := ctrl.Pending()
	for src := range NumSources {
		if p&src.Flag() != 0 {
			return src, true
		}
	}
	return NumSources, false
}

// Acknowledge clears the request bit for the source. Called by the CPU when
// the interrupt is dispatched.
func (ctrl *Controller) Acknowledge(src Source) {
	ctrl.request &^= uint8(src.Flag())
}

// ReadIF returns the value of the IF register. Unused bits read as one.
func (ctrl *Controller) ReadIF() uint8 {
	return ctrl.request | ^uint8(mask)
}

// WriteIF sets the value of the IF register.
func (ctrl *Controller) WriteIF(data uint8) {
	ctrl.request = data & mask
}

// ReadIE returns the value of the IE register.
func (ctrl *Controller) ReadIE() uint8 {
	return ctrl.enable
}

// WriteIE sets the value of the IE register. All eight bits are stored but
// only the lower five have any effect.
func (ctrl *Controller) WriteIE(data uint8) {
	ctrl.enable = data
}

// Uint8 returns the flag as a register value.
func (f Flag) Uint8() uint8 {
	return uint8(f)
}
