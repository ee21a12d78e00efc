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

import (
	"fmt"
	"strings"

	"github.com/gopherboy/gopherboy/curated"
)

// Sentinal errors returned during cartridge creation and by the save data
// functions.
const (
	UnsupportedROMSize  = "cartridge: unsupported ROM size (%#02x) for %s"
	UnsupportedRAMSize  = "cartridge: unsupported RAM size (%#02x) for %s"
	UnsupportedType     = "cartridge: unsupported cartridge type (%#02x)"
	UnsupportedSaveData = "cartridge: %s does not support save data"
	HeaderError         = "cartridge: header: %v"
)

// Locations of fields in the cartridge header.
const (
	headerTitle         = 0x0134
	headerTitleEnd      = 0x013f
	headerType          = 0x0147
	headerROMSize       = 0x0148
	headerRAMSize       = 0x0149
	headerChecksumStart = 0x0134
	headerChecksum      = 0x014d
	headerEnd           = 0x0150
)

// Sizes of ROM and RAM banks.
const (
	ROMBankSize = 0x4000
	RAMBankSize = 0x2000
)

// Header is the information in the cartridge header that is used to create
// the cartridge.
type Header struct {
	Title   string
	Type    uint8
	ROMCode uint8
	RAMCode uint8

	// number of ROM and RAM banks indicated by the size codes. a value of -1
	// indicates an unrecognised size code
	ROMBanks int
	RAMBanks int

	// the header checksum as recorded in the header and the checksum as
	// calculated
	Checksum           uint8
	CalculatedChecksum uint8
}

// ParseHeader reads the header fields from the cartridge data. The size codes
// are decoded but not checked against the controller type.
func ParseHeader(data []uint8) (Header, error) {
	if len(data) < headerEnd {
		return Header{}, curated.Errorf(HeaderError, fmt.Sprintf("data too short (%d bytes)", len(data)))
	}

	h := Header{
		Type:     data[headerType],
		ROMCode:  data[headerROMSize],
		RAMCode:  data[headerRAMSize],
		Checksum: data[headerChecksum],
	}

	// title is padded with zero bytes. later cartridges use the end of the
	// title area for a manufacturer code
	var title strings.Builder
	for _, c := range data[headerTitle:headerTitleEnd] {
		if c == 0x00 {
			break
		}
		if c < 0x20 || c > 0x7e {
			continue
		}
		title.WriteByte(c)
	}
	h.Title = strings.TrimSpace(title.String())

	// number of banks is 2^(code+1)
	if h.ROMCode <= 0x08 {
		h.ROMBanks = 2 << h.ROMCode
	} else {
		h.ROMBanks = -1
	}

	switch h.RAMCode {
	case 0x00, 0x01:
		h.RAMBanks = 0
	case 0x02:
		h.RAMBanks = 1
	case 0x03:
		h.RAMBanks = 4
	default:
		h.RAMBanks = -1
	}

	for _, c := range data[headerChecksumStart:headerChecksum] {
		h.CalculatedChecksum = h.CalculatedChecksum - c - 1
	}

	return h, nil
}

// ChecksumOK returns true if the recorded header checksum matches the
// calculated checksum.
func (h Header) ChecksumOK() bool {
	return h.Checksum == h.CalculatedChecksum
}

// HasBattery returns true if the cartridge type includes a battery.
func (h Header) HasBattery() bool {
	switch h.Type {
	case 0x03, 0x06, 0x0f, 0x10, 0x13:
		return true
	}
	return false
}

// HasRTC returns true if the cartridge type includes a real-time clock.
func (h Header) HasRTC() bool {
	return h.Type == 0x0f || h.Type == 0x10
}

func (h Header) String() string {
	return fmt.Sprintf("%s type=%#02x rom=%d banks ram=%d banks", h.Title, h.Type, h.ROMBanks, max(h.RAMBanks, 0))
}
