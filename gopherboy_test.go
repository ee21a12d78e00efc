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

package main

import (
	"testing"

	"github.com/gopherboy/gopherboy/cartridgeloader"
	"github.com/gopherboy/gopherboy/test"
)

func TestSavePath(t *testing.T) {
	p, ok := savePath(cartridgeloader.Loader{Filename: "roms/tetris.gb"})
	test.ExpectEquality(t, ok, true)
	test.ExpectEquality(t, p, "roms/tetris.sav")

	_, ok = savePath(cartridgeloader.Loader{Filename: "https://example.com/tetris.gb"})
	test.ExpectEquality(t, ok, false)
}

func TestAudioSinks(t *testing.T) {
	var a audioSinks

	// no sinks attached
	a.AppendSample(0.5, 0.5)
	test.ExpectSuccess(t, a.end())
}
