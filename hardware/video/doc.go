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

// Package video implements the LCD controller. It keeps the scanline and
// mode counters, owns VRAM and OAM, and draws each scanline into an RGB
// frame as the line enters HBlank.
//
// Each line lasts 456 cycles and there are 154 lines in a frame. On the 144
// visible lines the modes follow each other in this order:
//
//	OAMScan   cycles 0 to 79
//	Transfer  cycles 80 to 251
//	HBlank    cycles 252 to 455
//
// Lines 144 to 153 are in VBlank. The completed frame is sent to the video
// sink on entry to VBlank.
//
// CPU access to OAM is blocked during OAMScan and Transfer and access to
// VRAM is blocked during Transfer. Blocked reads return 0xff and blocked
// writes are ignored. The ReadDMA() and WriteOAM() functions are used by the
// DMA engine and are never blocked.
package video
