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

package cartridgeloader_test

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopherboy/gopherboy/cartridgeloader"
	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/test"
)

func TestExtensions(t *testing.T) {
	test.ExpectSuccess(t, cartridgeloader.IsRecognisedExtension("tetris.gb"))
	test.ExpectSuccess(t, cartridgeloader.IsRecognisedExtension("TETRIS.GB"))
	test.ExpectSuccess(t, cartridgeloader.IsRecognisedExtension("dir/game.rom"))
	test.ExpectFailure(t, cartridgeloader.IsRecognisedExtension("game.a26"))
	test.ExpectFailure(t, cartridgeloader.IsRecognisedExtension("game"))

	_, err := cartridgeloader.NewLoader("game.txt")
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnknownExtension))
}

func TestLoadFile(t *testing.T) {
	data := []byte{0x00, 0x01, 0x02, 0x03}
	fn := filepath.Join(t.TempDir(), "test.gb")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))

	cl, err := cartridgeloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cl.ShortName(), "test")
	test.ExpectFailure(t, cl.HasLoaded())

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.Hash, fmt.Sprintf("%x", sha1.Sum(data)))
	test.ExpectEquality(t, len(cl.Data), len(data))

	// hash mismatch
	cl, err = cartridgeloader.NewLoader(fn)
	test.DemandSuccess(t, err)
	cl.Hash = "0000"
	err = cl.Load()
	test.ExpectSuccess(t, curated.Is(err, cartridgeloader.UnexpectedHash))
	test.ExpectFailure(t, cl.HasLoaded())
}

func TestLoadMissing(t *testing.T) {
	cl, err := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.gb"))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, cl.Load())
}
