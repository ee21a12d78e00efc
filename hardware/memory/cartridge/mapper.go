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

package cartridge

// BankInfo describes the bank currently mapped into an address.
type BankInfo struct {
	Number int
	IsRAM  bool

	// RAM banks may be disabled. ROM banks are always enabled
	Enabled bool
}

// mapper is implemented by each of the bank controllers. Addresses passed to
// read() and write() are CPU addresses in the ROM (0x0000 to 0x7fff) or
// external RAM (0xa000 to 0xbfff) windows.
type mapper interface {
	id() string
	reset()
	read(addr uint16) uint8
	write(addr uint16, data uint8)
	numBanks() int
	getBank(addr uint16) BankInfo

	// the RAM buffer of the controller. nil if the controller has no RAM
	ram() []uint8
}

// bankOffset returns the offset into the data for the address in the
// numbered bank. The bank number wraps around the number of banks in the
// data.
func bankOffset(data []uint8, bankSize int, bank int, addr uint16) int {
	n := len(data) / bankSize
	if n == 0 {
		return int(addr) % len(data)
	}
	return (bank%n)*bankSize + int(addr)%bankSize
}
