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

// Package sdlplay presents the emulation in an SDL window. It implements
// the sink.Video and sink.Audio interfaces so it can be passed directly to
// Console.Advance() or Console.RunForFrameCount().
//
// SDL requires that window and event handling happens on the main thread.
// NewSdlPlay(), Service() and Destroy() must only be called from the main
// thread. The sink functions and Frame() are safe to call from the
// emulation goroutine.
package sdlplay

import (
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/hardware/joypad"
	"github.com/gopherboy/gopherboy/hardware/sink"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlPlay should be created with NewSdlPlay().
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	aud *sound

	// the most recent frame from the emulation. fresh is true if the frame
	// has not yet been copied to the texture
	crit  sync.Mutex
	frame [sink.FrameSize]uint8
	fresh bool

	buttons [joypad.NumButtons]atomic.Bool
	quit    atomic.Bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The window is scale times the size of the LCD. Audio is played at the
// sample rate, which should match the rate of the APU.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(title string, scale int, sampleRate int) (*SdlPlay, error) {
	runtime.LockOSThread()

	if scale < 1 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr := &SdlPlay{}

	scr.window, err = sdl.CreateWindow(fmt.Sprintf("Gopherboy - %s", title),
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(sink.FrameWidth*scale), int32(sink.FrameHeight*scale),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		scr.Destroy(nil)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the texture to the window. the logical size keeps
	// the aspect ratio when the window is resized
	_ = scr.renderer.SetLogicalSize(sink.FrameWidth, sink.FrameHeight)

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), sink.FrameWidth, sink.FrameHeight)
	if err != nil {
		scr.Destroy(nil)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.aud, err = newSound(sampleRate)
	if err != nil {
		scr.Destroy(nil)
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	return scr, nil
}

// Destroy releases all SDL resources. Any error is written to the
// io.Writer, which may be nil.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	report := func(err error) {
		if err != nil && output != nil {
			fmt.Fprintf(output, "sdlplay: %v\n", err)
		}
	}

	if scr.aud != nil {
		scr.aud.close()
		scr.aud = nil
	}
	if scr.texture != nil {
		report(scr.texture.Destroy())
		scr.texture = nil
	}
	if scr.renderer != nil {
		report(scr.renderer.Destroy())
		scr.renderer = nil
	}
	if scr.window != nil {
		report(scr.window.Destroy())
		scr.window = nil
	}
	sdl.Quit()
}

// AppendFrame implements the sink.Video interface.
func (scr *SdlPlay) AppendFrame(frame []uint8) {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	copy(scr.frame[:], frame)
	scr.fresh = true
}

// AppendSample implements the sink.Audio interface.
func (scr *SdlPlay) AppendSample(left float32, right float32) {
	if scr.aud != nil {
		scr.aud.appendSample(left, right)
	}
}

// Buttons is the interface used to change the state of the joypad.
// Implemented by hardware.Console.
type Buttons interface {
	SetButton(b joypad.Button, pressed bool)
}

// Frame should be called by the emulation once per frame. It copies the
// keyboard state to the joypad.
func (scr *SdlPlay) Frame(con Buttons) {
	for b := range joypad.NumButtons {
		con.SetButton(b, scr.buttons[b].Load())
	}
}

// Quit returns true once the window has been closed or the quit key has
// been pressed.
func (scr *SdlPlay) Quit() bool {
	return scr.quit.Load()
}

// copy the most recent frame to the texture
func (scr *SdlPlay) present() error {
	scr.crit.Lock()
	if !scr.fresh {
		scr.crit.Unlock()
		return nil
	}
	scr.fresh = false

	pixels, _, err := scr.texture.Lock(nil)
	if err != nil {
		scr.crit.Unlock()
		return err
	}
	for i, j := 0, 0; i < len(scr.frame); i, j = i+sink.BytesPerPixel, j+pixelDepth {
		pixels[j] = scr.frame[i]
		pixels[j+1] = scr.frame[i+1]
		pixels[j+2] = scr.frame[i+2]
		pixels[j+3] = 0xff
	}
	scr.texture.Unlock()
	scr.crit.Unlock()

	if err := scr.renderer.Clear(); err != nil {
		return err
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return err
	}
	scr.renderer.Present()

	return nil
}
