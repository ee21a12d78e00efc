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

// Package reference loads recordings of audio output and compares them
// with the output of the emulation. Recordings can be WAV or MP3 files.
//
// WAV recordings made by the wavwriter package can be compared exactly, to
// within the precision of a 16 bit sample. MP3 recordings are lossy and
// should be compared with a larger tolerance.
package reference

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopherboy/gopherboy/curated"
	"github.com/hajimehoshi/go-mp3"
)

// Sentinel errors.
const (
	UnsupportedFormat = "reference: unsupported file format (%s)"
	DecodeError       = "reference: %s: %v"
)

// Trace is a stereo audio recording. Samples are in the range -1.0 to 1.0.
type Trace struct {
	SampleRate int
	Left       []float32
	Right      []float32
}

// Len returns the number of stereo samples in the trace.
func (tr *Trace) Len() int {
	return len(tr.Left)
}

// AppendSample implements the sink.Audio interface. A Trace can be used to
// record the output of the emulation.
func (tr *Trace) AppendSample(left float32, right float32) {
	tr.Left = append(tr.Left, left)
	tr.Right = append(tr.Right, right)
}

// Load a trace from a file. The format is decided by the file extension.
func Load(filename string) (*Trace, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("reference: %v", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return LoadWAV(bytes.NewReader(data))
	case ".mp3":
		return LoadMP3(bytes.NewReader(data))
	}

	return nil, curated.Errorf(UnsupportedFormat, filepath.Ext(filename))
}

// LoadWAV decodes a WAV file. Mono recordings are copied to both channels.
func LoadWAV(r io.ReadSeeker) (*Trace, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	// load all data at once
	var buf *audio.IntBuffer
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeError, "wav", err)
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		return nil, curated.Errorf(DecodeError, "wav", "no channels")
	}

	scale := float32(int(1) << (dec.BitDepth - 1))
	if dec.BitDepth == 8 {
		// 8 bit samples are unsigned
		for i := range buf.Data {
			buf.Data[i] -= 128
		}
	}

	tr := &Trace{
		SampleRate: int(dec.SampleRate),
		Left:       make([]float32, 0, len(buf.Data)/chans),
		Right:      make([]float32, 0, len(buf.Data)/chans),
	}

	for i := 0; i+chans <= len(buf.Data); i += chans {
		l := float32(buf.Data[i]) / scale
		r := l
		if chans > 1 {
			r = float32(buf.Data[i+1]) / scale
		}
		tr.AppendSample(l, r)
	}

	return tr, nil
}

// LoadMP3 decodes an MP3 file.
func LoadMP3(r io.Reader) (*Trace, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, "mp3", err)
	}

	tr := &Trace{
		SampleRate: dec.SampleRate(),
	}

	// the decoded stream is always 16 bit little endian with two channels
	chunk := make([]byte, 4096)
	var pending []byte
	for {
		n, err := dec.Read(chunk)
		pending = append(pending, chunk[:n]...)

		for len(pending) >= 4 {
			l := int16(uint16(pending[0]) | uint16(pending[1])<<8)
			r := int16(uint16(pending[2]) | uint16(pending[3])<<8)
			tr.AppendSample(float32(l)/32768, float32(r)/32768)
			pending = pending[4:]
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf(DecodeError, "mp3", err)
		}
	}

	return tr, nil
}
