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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopherboy/gopherboy/curated"
)

// Sentinal errors returned by the Load() function.
const (
	UnsupportedScheme = "cartridgeloader: unsupported URL scheme (%s)"
	UnexpectedHash    = "cartridgeloader: unexpected hash value"
	UnknownExtension  = "cartridgeloader: unrecognised file extension (%s)"
)

// Loader is used to specify the cartridge to use when inserting into the
// console.
type Loader struct {
	// filename of cartridge to load. can be a local file or a http/https URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The filename must have an extension listed in FileExtensions.
func NewLoader(filename string) (Loader, error) {
	if !IsRecognisedExtension(filename) {
		return Loader{}, curated.Errorf(UnknownExtension, filepath.Ext(filename))
	}
	return Loader{Filename: filename}, nil
}

// ShortName returns a shortened version of the Filename field, with the path
// and extension removed.
func (cl Loader) ShortName() string {
	if cl.Filename == "" {
		return ""
	}
	shortName := filepath.Base(cl.Filename)
	return strings.TrimSuffix(shortName, filepath.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. The Hash field is set to the SHA1 of the data.
// If the Hash field was set before calling Load() and does not match the
// loaded data then an error is returned.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(cl.Filename)
	if err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	// a single letter scheme is almost certainly a windows drive letter
	if len(scheme) == 1 {
		scheme = "file"
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("cartridgeloader: %v", resp.Status)
		}

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file":
		cl.Data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))

	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash)
	}

	cl.Hash = hash

	return nil
}
