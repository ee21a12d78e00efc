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
	"os"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware"
	"github.com/gopherboy/gopherboy/hardware/clocks"
	"github.com/gopherboy/gopherboy/hardware/sink"
	"github.com/gopherboy/gopherboy/limiter"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/terminal/easyterm"
	"github.com/gopherboy/gopherboy/terminal/easyterm/ansi"
)

// Play runs the console in the terminal until the quit key is pressed or
// the emulation fails. Audio is sent to the audio sink, which may be nil.
func Play(con *hardware.Console, asnk sink.Audio) error {
	var term easyterm.Terminal
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return curated.Errorf("termplay: %v", err)
	}
	defer term.CleanUp()

	term.RawMode()
	term.Print(ansi.ClearScreen + ansi.CursorHide)
	defer term.Print(ansi.NormalPen + ansi.CursorShow + "\r\n")

	rnd := NewRenderer(&term)

	// key presses are read in a separate goroutine and collected by the main
	// loop between frames
	keys := make(chan []byte, 16)
	go func() {
		for {
			b := make([]byte, 16)
			n, err := term.Read(b)
			if err != nil {
				close(keys)
				return
			}
			keys <- b[:n]
		}
	}()

	lmtr := limiter.NewLimiter(clocks.FrameRate)
	defer lmtr.Stop()

	var in Input
	for !in.Quit {
		g := term.Geometry()
		if g.Cols > 0 && g.Rows > 0 {
			rnd.Fit(g.Cols, g.Rows-1)
		}

		done := false
		for !done {
			select {
			case b, ok := <-keys:
				if !ok {
					in.Quit = true
					done = true
					break
				}
				in.Feed(b)
			default:
				done = true
			}
		}
		in.Frame(con)

		if err := con.RunForFrameCount(1, rnd, asnk); err != nil {
			return err
		}
		lmtr.Wait()
	}

	logger.Logf(logger.Allow, "termplay", "%d frames rendered", rnd.Frames)

	return nil
}
