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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopherboy/gopherboy/paths"
	"github.com/gopherboy/gopherboy/test"
)

func TestPaths(t *testing.T) {
	// a local .gopherboy directory takes priority
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".gopherboy", 0o700))

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherboy", "foo", "bar", "baz"))

	// the directory part of the path has been created but not the file
	_, err = os.Stat(filepath.Join(".gopherboy", "foo", "bar"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("saves", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopherboy", "saves"))
	_, err = os.Stat(pth)
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("wav", "TETRIS")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_TETRIS_"))

	fn = paths.UniqueFilename("wav", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_"))
	test.ExpectFailure(t, strings.HasPrefix(fn, "wav__"))
}
