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

package logger

import (
	"io"
	"strings"

	"github.com/gopherboy/gopherboy/terminal/easyterm/ansi"
)

// Colorizer applies basic coloring rules to logging output. The first line
// of a write is printed normally and any following lines are dimmed red.
type Colorizer struct {
	out io.Writer
}

// NewColorizer creates a new Colorizer for the io.Writer.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	l := strings.Split(strings.TrimSpace(string(p)), "\n")
	if len(l) == 0 || (len(l) == 1 && l[0] == "") {
		return len(p), nil
	}

	if _, err := io.WriteString(c.out, l[0]+"\n"); err != nil {
		return 0, err
	}

	if len(l) > 1 {
		if _, err := io.WriteString(c.out, ansi.DimPens["red"]); err != nil {
			return 0, err
		}
		for _, s := range l[1:] {
			if _, err := io.WriteString(c.out, s+"\n"); err != nil {
				return 0, err
			}
		}
		if _, err := io.WriteString(c.out, ansi.NormalPen); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
