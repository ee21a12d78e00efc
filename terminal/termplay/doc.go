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

// Package termplay runs the emulation in a text terminal. Frames are drawn
// with ANSI half-block characters, two rows of pixels to every line of
// text, using 24-bit colour.
//
// Terminals do not report key release so a key press holds the button down
// for a short number of frames. Repeated key presses from the terminal's
// auto-repeat extend the hold.
package termplay
