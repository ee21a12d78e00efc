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

// Package sink defines the interfaces through which the console delivers
// completed video frames and audio samples to the host.
//
// The console holds no queue beyond the current call to Step() or Advance().
// Implementations should consume the data immediately or copy it.
package sink

// Frame dimensions and the number of bytes used by each pixel.
const (
	FrameWidth    = 160
	FrameHeight   = 144
	BytesPerPixel = 3
	FrameSize     = FrameWidth * FrameHeight * BytesPerPixel
)

// Video is implemented by types that accept completed frames. A frame is
// FrameSize bytes of RGB data, row major. The slice is only valid for the
// duration of the call.
type Video interface {
	AppendFrame(frame []uint8)
}

// Audio is implemented by types that accept stereo samples. Each sample is
// in the range -1.0 to 1.0.
type Audio interface {
	AppendSample(left float32, right float32)
}

// Null implements both the Video and Audio interfaces and discards
// everything it receives.
type Null struct{}

// AppendFrame implements the Video interface.
func (Null) AppendFrame(_ []uint8) {}

// AppendSample implements the Audio interface.
func (Null) AppendSample(_ float32, _ float32) {}

// MostRecentFrame implements the Video interface and keeps a copy of the
// last frame it received.
type MostRecentFrame struct {
	Frame  [FrameSize]uint8
	Frames int
}

// AppendFrame implements the Video interface.
func (m *MostRecentFrame) AppendFrame(frame []uint8) {
	copy(m.Frame[:], frame)
	m.Frames++
}

// Pixel returns the RGB value of the pixel at x, y in the most recent frame.
func (m *MostRecentFrame) Pixel(x int, y int) (uint8, uint8, uint8) {
	i := (y*FrameWidth + x) * BytesPerPixel
	return m.Frame[i], m.Frame[i+1], m.Frame[i+2]
}

// Tee forwards frames and samples to more than one sink.
type Tee struct {
	Video []Video
	Audio []Audio
}

// AppendFrame implements the Video interface.
func (t Tee) AppendFrame(frame []uint8) {
	for _, v := range t.Video {
		v.AppendFrame(frame)
	}
}

// AppendSample implements the Audio interface.
func (t Tee) AppendSample(left float32, right float32) {
	for _, a := range t.Audio {
		a.AppendSample(left, right)
	}
}
