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

package termplay

import (
	"io"
	"strings"

	"github.com/gopherboy/gopherboy/hardware/sink"
	"github.com/gopherboy/gopherboy/terminal/easyterm/ansi"
)

// the upper half block. the pen colours the top pixel and the paper colours
// the bottom pixel
const halfBlock = "▀"

// Renderer implements the sink.Video interface. Each frame is written to
// the io.Writer as a complete screen of text.
type Renderer struct {
	out io.Writer
	buf strings.Builder

	// number of pixels for each column of text. greater than one when the
	// terminal is narrower than the LCD
	stride int

	Frames int
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out, stride: 1}
}

// Fit chooses the stride so that the frame fits into the number of columns
// and rows of the terminal.
func (r *Renderer) Fit(cols int, rows int) {
	r.stride = 1
	for sink.FrameWidth/r.stride > cols || sink.FrameHeight/(r.stride*2) > rows {
		if r.stride >= sink.FrameWidth {
			break
		}
		r.stride++
	}
}

// Stride returns the number of pixels used for each column of text.
func (r *Renderer) Stride() int {
	return r.stride
}

func pixel(frame []uint8, x int, y int) (uint8, uint8, uint8) {
	i := (y*sink.FrameWidth + x) * sink.BytesPerPixel
	return frame[i], frame[i+1], frame[i+2]
}

// AppendFrame implements the sink.Video interface.
func (r *Renderer) AppendFrame(frame []uint8) {
	r.Frames++

	r.buf.Reset()
	r.buf.WriteString(ansi.CursorHome)

	rowStep := r.stride * 2
	for y := 0; y+r.stride < sink.FrameHeight; y += rowStep {
		var last string
		for x := 0; x < sink.FrameWidth; x += r.stride {
			tr, tg, tb := pixel(frame, x, y)
			br, bg, bb := pixel(frame, x, y+r.stride)
			c := ansi.TrueColor(tr, tg, tb, br, bg, bb)
			if c != last {
				r.buf.WriteString(c)
				last = c
			}
			r.buf.WriteString(halfBlock)
		}
		r.buf.WriteString(ansi.NormalPen)
		r.buf.WriteString("\r\n")
	}

	_, _ = io.WriteString(r.out, r.buf.String())
}
