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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/gopherboy/gopherboy/hardware/sink"
)

// Video is an implementation of the sink.Video interface that computes a
// chained SHA-1 fingerprint of every frame it receives.
type Video struct {
	digest [sha1.Size]byte

	// the previous digest followed by the frame data
	pixels []byte

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{
		pixels: make([]byte, sha1.Size+sink.FrameSize),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// AppendFrame implements the sink.Video interface.
func (dig *Video) AppendFrame(frame []uint8) {
	// chain fingerprints by copying the value of the last fingerprint to
	// the head of the video data
	n := copy(dig.pixels, dig.digest[:])
	copy(dig.pixels[n:], frame)
	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
