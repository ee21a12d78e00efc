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

// Package cartridge implements the cartridge memory bank controllers. The
// Cartridge type presents the flat ROM and RAM windows to the memory bus and
// hides the banking details of the controller fitted to the cartridge.
//
// The controller is chosen once, when the cartridge is created, by the type
// byte in the cartridge header. Supported controllers:
//
//	ROM only (no controller)
//	MBC1
//	MBC2
//	MBC3 (real-time clock registers are present but not implemented)
//
// Battery backed RAM can be exported and imported with SaveData() and
// LoadSaveData(). Cartridges without a battery return the
// UnsupportedSaveData error.
package cartridge
