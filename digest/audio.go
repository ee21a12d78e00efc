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
	"encoding/binary"
	"fmt"
	"math"
)

// the number of samples hashed at once. each sample is two float32 values
const (
	samplesPerBlock  = 1024
	bytesPerSample   = 8
	audioBufferStart = sha1.Size
	audioBufferLen   = audioBufferStart + samplesPerBlock*bytesPerSample
)

// Audio is an implementation of the sink.Audio interface that computes a
// chained SHA-1 fingerprint of the sample stream.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
	samples  int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLen),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface. Samples waiting in the buffer are
// included in the hash.
func (dig *Audio) Hash() string {
	dig.flush()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
	dig.bufferCt = audioBufferStart
	dig.samples = 0
}

// Samples returns the number of samples included in the digest.
func (dig *Audio) Samples() int {
	return dig.samples
}

// AppendSample implements the sink.Audio interface.
func (dig *Audio) AppendSample(left float32, right float32) {
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], math.Float32bits(left))
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt+4:], math.Float32bits(right))
	dig.bufferCt += bytesPerSample
	dig.samples++

	if dig.bufferCt >= audioBufferLen {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	if dig.bufferCt == audioBufferStart {
		return
	}
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}
