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

// Package digest is used to create fingerprints of the emulation output.
// The Video type implements the sink.Video interface and the Audio type
// implements the sink.Audio interface.
//
// Fingerprints are chained. Each new frame, or block of audio samples, is
// hashed together with the previous fingerprint so the final value depends
// on the entire history of the output. This makes the digests suitable for
// checking that the emulation is deterministic.
package digest

// Digest implementations compute a hash value of the emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
