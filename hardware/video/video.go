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

package video

import (
	"fmt"

	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/memorymap"
	"github.com/gopherboy/gopherboy/hardware/sink"
)

// Mode is the value of the mode bits in the STAT register.
type Mode uint8

// List of valid Mode values.
const (
	HBlank Mode = iota
	VBlank
	OAMScan
	Transfer
)

func (m Mode) String() string {
	switch m {
	case HBlank:
		return "HBlank"
	case VBlank:
		return "VBlank"
	case OAMScan:
		return "OAMScan"
	case Transfer:
		return "Transfer"
	}
	return "unknown mode"
}

// Timing of a frame in cycles and lines.
const (
	CyclesPerLine  = 456
	LinesPerFrame  = 154
	VisibleLines   = sink.FrameHeight
	CyclesPerFrame = CyclesPerLine * LinesPerFrame

	endOAMScan  = 80
	endTransfer = 252
)

// Video is the LCD controller.
type Video struct {
	env *environment.Environment

	lcdc uint8
	stat uint8
	scy  uint8
	scx  uint8
	ly   uint8
	lyc  uint8
	bgp  uint8
	obp0 uint8
	obp1 uint8
	wy   uint8
	wx   uint8

	mode       Mode
	lineCycles int

	// the line of the window to draw next. only advanced on lines where the
	// window is visible
	windowLine int

	// the combined STAT interrupt conditions. an interrupt is requested on
	// the rising edge only
	statLine bool

	// interrupts raised by register writes. returned by the next Update()
	pending interrupts.Flag

	vram [memorymap.SizeVRAM]uint8
	oam  [memorymap.SizeOAM]uint8

	frame [sink.FrameSize]uint8

	// colour index of the background and window for each pixel on the
	// current line. used for sprite priority
	bgIndex [sink.FrameWidth]uint8
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo(env *environment.Environment) *Video {
	vd := &Video{env: env}
	vd.Reset()
	return vd
}

// Reset the LCD controller to the state it is in after the boot ROM has run.
func (vd *Video) Reset() {
	vd.lcdc = 0x91
	vd.stat = 0x00
	vd.scy = 0x00
	vd.scx = 0x00
	vd.ly = 0x00
	vd.lyc = 0x00
	vd.bgp = 0xfc
	vd.obp0 = 0xff
	vd.obp1 = 0xff
	vd.wy = 0x00
	vd.wx = 0x00
	vd.mode = OAMScan
	vd.lineCycles = 0
	vd.windowLine = 0
	vd.statLine = false
	vd.pending = interrupts.None
	vd.vram = [memorymap.SizeVRAM]uint8{}
	vd.oam = [memorymap.SizeOAM]uint8{}
	vd.blank()
}

func (vd *Video) String() string {
	return fmt.Sprintf("LCDC=%#02x STAT=%#02x LY=%d LYC=%d mode=%s cycle=%d", vd.lcdc, vd.readSTAT(), vd.ly, vd.lyc, vd.mode, vd.lineCycles)
}

// Mode returns the current mode of the LCD controller.
func (vd *Video) Mode() Mode {
	return vd.mode
}

// LY returns the current scanline.
func (vd *Video) LY() uint8 {
	return vd.ly
}

// Enabled returns true if the LCD is switched on.
func (vd *Video) Enabled() bool {
	return vd.lcdc&lcdcEnable == lcdcEnable
}

// fill the frame with the lightest shade
func (vd *Video) blank() {
	for i := range vd.frame {
		vd.frame[i] = shades[0][i%sink.BytesPerPixel]
	}
}

// the cycle within the line at which the next mode change happens
func (vd *Video) nextBoundary() int {
	if int(vd.ly) >= VisibleLines {
		return CyclesPerLine
	}
	switch {
	case vd.lineCycles < endOAMScan:
		return endOAMScan
	case vd.lineCycles < endTransfer:
		return endTransfer
	}
	return CyclesPerLine
}

// Update the LCD controller by the number of cycles. Completed frames are
// sent to the sink, which may be nil.
func (vd *Video) Update(cycles int, snk sink.Video) interrupts.Flag {
	flag := vd.pending
	vd.pending = interrupts.None

	if !vd.Enabled() {
		return flag
	}

	for cycles > 0 {
		n := min(cycles, vd.nextBoundary()-vd.lineCycles)
		vd.lineCycles += n
		cycles -= n
		flag |= vd.transition(snk)
	}

	return flag
}

// called whenever lineCycles reaches a boundary
func (vd *Video) transition(snk sink.Video) interrupts.Flag {
	var flag interrupts.Flag

	switch {
	case vd.lineCycles >= CyclesPerLine:
		vd.lineCycles = 0
		vd.ly++
		if int(vd.ly) >= LinesPerFrame {
			vd.ly = 0
			vd.windowLine = 0
		}

		switch {
		case int(vd.ly) == VisibleLines:
			vd.mode = VBlank
			flag |= interrupts.VBlank.Flag()
			if snk != nil {
				snk.AppendFrame(vd.frame[:])
			}
		case int(vd.ly) < VisibleLines:
			vd.mode = OAMScan
		}

	case int(vd.ly) < VisibleLines && vd.lineCycles == endOAMScan:
		vd.mode = Transfer

	case int(vd.ly) < VisibleLines && vd.lineCycles == endTransfer:
		vd.mode = HBlank
		vd.renderLine()
	}

	return flag | vd.updateSTATLine()
}

// updateSTATLine returns the LCDStat interrupt if any of the enabled STAT
// conditions has become true
func (vd *Video) updateSTATLine() interrupts.Flag {
	line := vd.stat&statLYC == statLYC && vd.ly == vd.lyc
	if vd.Enabled() {
		switch vd.mode {
		case HBlank:
			line = line || vd.stat&statHBlank == statHBlank
		case VBlank:
			line = line || vd.stat&statVBlank == statVBlank
			// the OAM condition is also checked at the start of VBlank
			line = line || (vd.lineCycles == 0 && int(vd.ly) == VisibleLines && vd.stat&statOAM == statOAM)
		case OAMScan:
			line = line || vd.stat&statOAM == statOAM
		}
	} else {
		line = false
	}

	rising := line && !vd.statLine
	vd.statLine = line
	if rising {
		return interrupts.LCDStat.Flag()
	}
	return interrupts.None
}
