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

package disassembly

import (
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/cpu/instructions"
	"github.com/gopherboy/gopherboy/hardware/memory/cartridge"
)

// Sentinel errors.
const (
	NoData = "disassembly: no cartridge data"
	NoBank = "disassembly: no such bank (%d)"
)

// origin of the switchable ROM window
const originSwitchable = 0x4000

// Disassembly of cartridge data.
type Disassembly struct {
	// entries for each bank, in address order
	Entries [][]*Entry

	data [][]uint8

	definitions []*instructions.Definition
	prefixed    []*instructions.Definition

	// blessed instruction addresses for each bank
	blessed []map[uint16]bool
}

// entry points followed by the flow analysis. the program entry point, the
// RST vectors and the interrupt vectors
var entryPoints = []uint16{
	0x0100,
	0x0000, 0x0008, 0x0010, 0x0018, 0x0020, 0x0028, 0x0030, 0x0038,
	0x0040, 0x0048, 0x0050, 0x0058, 0x0060,
}

// FromData disassembles the cartridge data. The data is divided into banks
// of cartridge.ROMBankSize bytes. The final bank is padded if necessary.
func FromData(data []uint8) (*Disassembly, error) {
	if len(data) == 0 {
		return nil, curated.Errorf(NoData)
	}

	dsm := &Disassembly{
		definitions: instructions.GetDefinitions(),
		prefixed:    instructions.GetPrefixedDefinitions(),
	}

	for b := 0; b < len(data); b += cartridge.ROMBankSize {
		bank := make([]uint8, cartridge.ROMBankSize)
		copy(bank, data[b:])
		dsm.data = append(dsm.data, bank)
		dsm.blessed = append(dsm.blessed, make(map[uint16]bool))
	}

	for _, a := range entryPoints {
		dsm.flow(0, a)
	}

	dsm.Entries = make([][]*Entry, len(dsm.data))
	for b := range dsm.data {
		dsm.Entries[b] = dsm.linear(b)
	}

	return dsm, nil
}

// the address of the first byte of the bank
func origin(bank int) uint16 {
	if bank == 0 {
		return 0
	}
	return originSwitchable
}

// decode the instruction at the address. returns nil if the instruction
// does not fit in the bank or is undefined
func (dsm *Disassembly) decode(bank int, addr uint16) *Entry {
	o := origin(bank)
	if addr < o || int(addr-o) >= cartridge.ROMBankSize {
		return nil
	}
	idx := int(addr - o)
	data := dsm.data[bank]

	defn := dsm.definitions[data[idx]]
	if data[idx] == 0xcb {
		if idx+1 >= len(data) {
			return nil
		}
		defn = dsm.prefixed[data[idx+1]]
	}
	if defn.Undefined || idx+defn.Bytes > len(data) {
		return nil
	}

	return &Entry{
		Bank:     bank,
		Address:  addr,
		Level:    EntryLevelDecoded,
		Defn:     defn,
		Bytecode: data[idx : idx+defn.Bytes],
	}
}

// follow the flow of instructions from the address, marking each
// instruction as blessed
func (dsm *Disassembly) flow(bank int, addr uint16) {
	type point struct {
		bank int
		addr uint16
	}

	queue := []point{{bank, addr}}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		for {
			if dsm.blessed[p.bank][p.addr] {
				break // for loop
			}

			e := dsm.decode(p.bank, p.addr)
			if e == nil {
				break // for loop
			}
			dsm.blessed[p.bank][p.addr] = true

			target, follow, stop := branch(e)
			if follow {
				tb := p.bank
				if target < originSwitchable {
					tb = 0
				} else if tb == 0 {
					tb = 1
				}
				if tb < len(dsm.data) {
					queue = append(queue, point{tb, target})
				}
			}
			if stop {
				break // for loop
			}

			p.addr += uint16(e.Defn.Bytes)
		}
	}
}

// branch returns the destination of an instruction that changes the flow,
// whether the destination should be followed, and whether flow stops after
// the instruction
func branch(e *Entry) (uint16, bool, bool) {
	if e.Defn.Prefixed {
		return 0, false, false
	}

	op := e.Bytecode[0]
	switch op {
	case 0xc3: // JP a16
		v, _ := e.operand()
		return v, true, true
	case 0xc2, 0xca, 0xd2, 0xda, 0xcd, 0xc4, 0xcc, 0xd4, 0xdc: // JP cc / CALL
		v, _ := e.operand()
		return v, true, false
	case 0x18: // JR r8
		return relative(e.Address, e.Bytecode[1]), true, true
	case 0x20, 0x28, 0x30, 0x38: // JR cc
		return relative(e.Address, e.Bytecode[1]), true, false
	case 0xc9, 0xd9, 0xe9: // RET, RETI, JP (HL)
		return 0, false, true
	}

	// RST
	if op&0xc7 == 0xc7 {
		return uint16(op & 0x38), true, false
	}

	return 0, false, false
}

// decode the bank from the first byte to the last. blessed instructions take
// precedence over linear decoding
func (dsm *Disassembly) linear(bank int) []*Entry {
	var entries []*Entry

	o := origin(bank)
	end := int(o) + cartridge.ROMBankSize

	for a := int(o); a < end; {
		addr := uint16(a)

		e := dsm.decode(bank, addr)
		if e != nil && !dsm.blessed[bank][addr] {
			// an instruction may not overlap a blessed instruction
			for i := 1; i < e.Defn.Bytes; i++ {
				if dsm.blessed[bank][addr+uint16(i)] {
					e = nil
					break // for loop
				}
			}
		}

		if e == nil {
			entries = append(entries, &Entry{
				Bank:     bank,
				Address:  addr,
				Level:    EntryLevelData,
				Bytecode: dsm.data[bank][a-int(o) : a-int(o)+1],
			})
			a++
			continue
		}

		if dsm.blessed[bank][addr] {
			e.Level = EntryLevelBlessed
		}
		entries = append(entries, e)
		a += e.Defn.Bytes
	}

	return entries
}

// NumBanks returns the number of ROM banks in the disassembly.
func (dsm *Disassembly) NumBanks() int {
	return len(dsm.Entries)
}

// Get returns the entry at the address in the bank. Returns nil if there is
// no entry starting at that address.
func (dsm *Disassembly) Get(bank int, addr uint16) *Entry {
	if bank < 0 || bank >= len(dsm.Entries) {
		return nil
	}
	for _, e := range dsm.Entries[bank] {
		if e.Address == addr {
			return e
		}
		if e.Address > addr {
			break // for loop
		}
	}
	return nil
}
