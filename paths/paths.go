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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const baseResourcePath = ".gopherboy"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths. The last element of the
// resource list is treated as a filename and is not created as a directory.
// If the last element is the empty string then the path is a directory.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(append([]string{base}, resource...)...)

	dir := p
	if len(resource) > 0 && resource[len(resource)-1] != "" {
		dir = filepath.Dir(p)
	}

	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("paths: %w", err)
		}
	}

	return p, nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}

	return filepath.Join(cnf, baseResourcePath[1:]), nil
}

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The short cartridge name is
// included if it is not empty.
//
// Note that the returned filename does not include an extension.
func UniqueFilename(prepend string, shortCartName string) string {
	timestamp := time.Now().Format("20060102_150405")

	c := strings.TrimSpace(shortCartName)
	if c == "" {
		return fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	return fmt.Sprintf("%s_%s_%s", prepend, c, timestamp)
}
