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

package sdlplay

import (
	"encoding/binary"
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// number of stereo samples collected before they are queued
const bufferLength = 512

// if the amount of queued audio grows past this many buffers then the
// emulation is running faster than playback and the queue is cleared
const maxQueued = 8

// sound outputs the APU samples with an SDL audio queue. Samples are 32-bit
// floats, two channels, little endian.
type sound struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer []uint8
}

func newSound(sampleRate int) (*sound, error) {
	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 2,
		Samples:  bufferLength,
	}

	snd := &sound{
		buffer: make([]uint8, 0, bufferLength*8),
	}

	var err error
	snd.id, err = sdl.OpenAudioDevice("", false, spec, &snd.spec, 0)
	if err != nil {
		return nil, err
	}

	sdl.PauseAudioDevice(snd.id, false)

	return snd, nil
}

func (snd *sound) appendSample(left float32, right float32) {
	snd.buffer = binary.LittleEndian.AppendUint32(snd.buffer, math.Float32bits(left))
	snd.buffer = binary.LittleEndian.AppendUint32(snd.buffer, math.Float32bits(right))
	if len(snd.buffer) == cap(snd.buffer) {
		snd.flush()
	}
}

func (snd *sound) flush() {
	if sdl.GetQueuedAudioSize(snd.id) > uint32(cap(snd.buffer)*maxQueued) {
		sdl.ClearQueuedAudio(snd.id)
	}
	_ = sdl.QueueAudio(snd.id, snd.buffer)
	snd.buffer = snd.buffer[:0]
}

func (snd *sound) close() {
	snd.flush()
	sdl.CloseAudioDevice(snd.id)
}
