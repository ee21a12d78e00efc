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

// Package clocks defines the constant values that define the speed of the
// main clock in the console.
//
// The emulation counts time in T-cycles. There are four T-cycles to every
// machine cycle.
package clocks

// DMG is the speed of the main clock in MHz.
const DMG = 4.194304

// CyclesPerSecond is the number of T-cycles in one second.
const CyclesPerSecond = 4194304

// CyclesPerFrame is the number of T-cycles in one frame of the LCD.
const CyclesPerFrame = 70224

// FrameRate is the number of frames per second. Slightly less than 60.
const FrameRate = float64(CyclesPerSecond) / CyclesPerFrame

// SampleRate returns the number of audio samples per second for the number
// of cycles between each sample.
func SampleRate(period int) int {
	if period <= 0 {
		return 0
	}
	return CyclesPerSecond / period
}
