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

// Package hardware is the base package for the emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains references to
// the CPU and the memory system, which in turn owns every peripheral. The
// emulation can be stepped one CPU instruction at a time with Step() or
// advanced to the next natural stopping point with Advance().
//
// The emulation is single threaded and deterministic. Given the same
// cartridge, the same preferences and the same sequence of calls, the output
// of the video and audio sinks will be identical on every run.
package hardware
