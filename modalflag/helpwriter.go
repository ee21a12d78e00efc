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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage output of the flag package so that it can be
// amended with mode information.
type helpWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []string, descriptions map[string]string, additional string) {
	if output == nil {
		return
	}

	lines := strings.Split(hw.buffer.String(), "\n")
	noFlags := len(lines) <= 2 && strings.TrimSpace(lines[len(lines)-1]) == ""

	if noFlags && len(subModes) == 0 && additional == "" {
		fmt.Fprint(output, "No help available")
		if path != "" {
			fmt.Fprintf(output, " for %s", path)
		}
		fmt.Fprint(output, "\n")
		return
	}

	// the first line is the "Usage:" banner from the flag package
	if path != "" {
		fmt.Fprintf(output, "%s for %s mode\n", lines[0], path)
	} else {
		fmt.Fprintf(output, "%s\n", lines[0])
	}

	if !noFlags {
		fmt.Fprint(output, strings.Join(lines[1:], "\n"))
	}

	if len(subModes) > 0 {
		if !noFlags {
			fmt.Fprint(output, "\n")
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
		for _, m := range subModes {
			if d, ok := descriptions[m]; ok {
				fmt.Fprintf(output, "    %-10s %s\n", m, d)
			}
		}
	}

	if additional != "" {
		fmt.Fprintf(output, "\n%s\n", additional)
	}
}
