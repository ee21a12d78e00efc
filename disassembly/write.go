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
	"fmt"
	"io"
	"strings"

	"github.com/gopherboy/gopherboy/curated"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool

	// only write blessed entries
	Blessed bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for bank := range dsm.Entries {
		if err := dsm.WriteBank(output, attr, bank); err != nil {
			return err
		}
	}
	return nil
}

// WriteBank writes the disassembly of the selected bank to io.Writer.
func (dsm *Disassembly) WriteBank(output io.Writer, attr WriteAttr, bank int) error {
	if bank < 0 || bank >= len(dsm.Entries) {
		return curated.Errorf(NoBank, bank)
	}

	if _, err := fmt.Fprintf(output, "--- bank %d ---\n", bank); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	for _, e := range dsm.Entries[bank] {
		if attr.Blessed && e.Level != EntryLevelBlessed {
			continue
		}
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}

	return nil
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	var s strings.Builder

	fmt.Fprintf(&s, "%04x", e.Address)

	if attr.ByteCode {
		var b strings.Builder
		for _, v := range e.Bytecode {
			fmt.Fprintf(&b, "%02x ", v)
		}
		fmt.Fprintf(&s, "  %-9s", b.String())
	}

	fmt.Fprintf(&s, "  %-16s", e.Mnemonic())

	if attr.Cycles {
		fmt.Fprintf(&s, " %s", e.Cycles())
	}

	s.WriteString("\n")

	if _, err := io.WriteString(output, strings.TrimRight(s.String(), " \n")+"\n"); err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	return nil
}
