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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety and written to disk
// when EndMixing() is called. It is therefore probably only suitable for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/youpy/go-wav"
)

// WavWriter implements the sink.Audio interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type. The
// period is the number of cycles between each sample and is used to set the
// sample rate of the WAV file.
func New(filename string, period int) (*WavWriter, error) {
	rate := clocks.SampleRate(period)
	if rate == 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample period must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: rate,
		buffer:     make([]wav.Sample, 0),
	}

	return aw, nil
}

// convert a sample in the range -1.0 to 1.0 to a signed 16 bit value
func toInt16(v float32) int {
	v = max(-1.0, min(1.0, v))
	return int(v * 32767)
}

// AppendSample implements the sink.Audio interface.
func (aw *WavWriter) AppendSample(left float32, right float32) {
	w := wav.Sample{}
	w.Values[0] = toInt16(left)
	w.Values[1] = toInt16(right)
	aw.buffer = append(aw.buffer, w)
}

// Len returns the number of samples waiting to be written.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// EndMixing writes the buffered samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, uint32(aw.sampleRate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)
	if err := enc.WriteSamples(aw.buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
