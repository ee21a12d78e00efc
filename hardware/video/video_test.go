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

package video_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/interrupts"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/hardware/sink"
	"github.com/gopherboy/gopherboy/hardware/video"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/test"
)

func newVideo(t *testing.T) (*video.Video, *environment.Environment) {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewDefaultPreferences(), logger.NewLogger(100))
	test.DemandSuccess(t, err)
	return video.NewVideo(env), env
}

func TestPowerOn(t *testing.T) {
	vd, _ := newVideo(t)
	test.ExpectEquality(t, vd.Read(cpubus.AddrLCDC), 0x91)
	test.ExpectEquality(t, vd.Read(cpubus.AddrBGP), 0xfc)
	test.ExpectEquality(t, vd.Read(cpubus.AddrLY), 0x00)
	test.ExpectEquality(t, vd.Mode(), video.OAMScan)
}

func TestModeTiming(t *testing.T) {
	vd, _ := newVideo(t)

	vd.Update(79, nil)
	test.ExpectEquality(t, vd.Mode(), video.OAMScan)
	vd.Update(1, nil)
	test.ExpectEquality(t, vd.Mode(), video.Transfer)
	vd.Update(171, nil)
	test.ExpectEquality(t, vd.Mode(), video.Transfer)
	vd.Update(1, nil)
	test.ExpectEquality(t, vd.Mode(), video.HBlank)
	vd.Update(203, nil)
	test.ExpectEquality(t, vd.Mode(), video.HBlank)
	test.ExpectEquality(t, vd.LY(), 0)
	vd.Update(1, nil)
	test.ExpectEquality(t, vd.Mode(), video.OAMScan)
	test.ExpectEquality(t, vd.LY(), 1)

	// mode bits in STAT
	test.ExpectEquality(t, vd.Read(cpubus.AddrSTAT)&0x03, uint8(video.OAMScan))
}

func TestVBlank(t *testing.T) {
	vd, _ := newVideo(t)
	snk := &sink.MostRecentFrame{}

	f := vd.Update(video.CyclesPerLine*video.VisibleLines-1, snk)
	test.ExpectEquality(t, f&interrupts.VBlank.Flag(), interrupts.None)
	test.ExpectEquality(t, snk.Frames, 0)

	f = vd.Update(1, snk)
	test.ExpectEquality(t, f&interrupts.VBlank.Flag(), interrupts.VBlank.Flag())
	test.ExpectEquality(t, vd.Mode(), video.VBlank)
	test.ExpectEquality(t, vd.LY(), 144)
	test.ExpectEquality(t, snk.Frames, 1)

	vd.Update(video.CyclesPerLine*10, snk)
	test.ExpectEquality(t, vd.LY(), 0)
	test.ExpectEquality(t, vd.Mode(), video.OAMScan)

	vd.Update(video.CyclesPerFrame*3, snk)
	test.ExpectEquality(t, snk.Frames, 4)
}

func TestSTATInterrupts(t *testing.T) {
	vd, _ := newVideo(t)
	vd.Write(cpubus.AddrSTAT, 0x08)

	f := vd.Update(251, nil)
	test.ExpectEquality(t, f&interrupts.LCDStat.Flag(), interrupts.None)
	f = vd.Update(1, nil)
	test.ExpectEquality(t, f&interrupts.LCDStat.Flag(), interrupts.LCDStat.Flag())

	// LYC coincidence
	vd, _ = newVideo(t)
	vd.Write(cpubus.AddrLYC, 2)
	vd.Write(cpubus.AddrSTAT, 0x40)
	f = vd.Update(video.CyclesPerLine*2-1, nil)
	test.ExpectEquality(t, f&interrupts.LCDStat.Flag(), interrupts.None)
	test.ExpectEquality(t, vd.Read(cpubus.AddrSTAT)&0x04, 0x00)
	f = vd.Update(1, nil)
	test.ExpectEquality(t, f&interrupts.LCDStat.Flag(), interrupts.LCDStat.Flag())
	test.ExpectEquality(t, vd.Read(cpubus.AddrSTAT)&0x04, 0x04)

	// writing LYC to match the current line raises the interrupt on the next
	// update
	vd, _ = newVideo(t)
	vd.Write(cpubus.AddrSTAT, 0x40)
	vd.Write(cpubus.AddrLYC, 0)
	f = vd.Update(1, nil)
	test.ExpectEquality(t, f&interrupts.LCDStat.Flag(), interrupts.LCDStat.Flag())
}

func TestAccessProtection(t *testing.T) {
	vd, env := newVideo(t)

	// OAM is blocked during OAMScan
	vd.Write(0xfe00, 0x12)
	test.ExpectEquality(t, vd.Read(0xfe00), cpubus.Sentinel)
	test.ExpectEquality(t, vd.ReadDMA(0xfe00), 0x00)

	// VRAM is accessible during OAMScan
	vd.Write(0x8000, 0x34)
	test.ExpectEquality(t, vd.Read(0x8000), 0x34)

	// both are blocked during Transfer
	vd.Update(80, nil)
	test.ExpectEquality(t, vd.Read(0x8000), cpubus.Sentinel)
	vd.Write(0x8000, 0x56)
	test.ExpectEquality(t, vd.ReadDMA(0x8000), 0x34)

	// DMA is never blocked
	vd.WriteOAM(0, 0x78)
	test.ExpectEquality(t, vd.ReadDMA(0xfe00), 0x78)

	// both are accessible during HBlank
	vd.Update(172, nil)
	test.ExpectEquality(t, vd.Read(0xfe00), 0x78)
	test.ExpectEquality(t, vd.Read(0x8000), 0x34)

	// protection can be switched off
	vd.Reset()
	env.Prefs.OAMProtection.Set(false)
	vd.Write(0xfe00, 0x12)
	test.ExpectEquality(t, vd.Read(0xfe00), 0x12)
}

func TestLCDOff(t *testing.T) {
	vd, _ := newVideo(t)
	vd.Update(video.CyclesPerLine*20+100, nil)
	test.ExpectEquality(t, vd.LY(), 20)

	vd.Write(cpubus.AddrLCDC, 0x11)
	test.ExpectEquality(t, vd.Enabled(), false)
	test.ExpectEquality(t, vd.LY(), 0)
	test.ExpectEquality(t, vd.Mode(), video.HBlank)

	snk := &sink.MostRecentFrame{}
	f := vd.Update(video.CyclesPerFrame*2, snk)
	test.ExpectEquality(t, f, interrupts.None)
	test.ExpectEquality(t, vd.LY(), 0)
	test.ExpectEquality(t, snk.Frames, 0)

	// OAM is accessible while the LCD is off
	vd.Write(0xfe00, 0x12)
	test.ExpectEquality(t, vd.Read(0xfe00), 0x12)

	vd.Write(cpubus.AddrLCDC, 0x91)
	test.ExpectEquality(t, vd.Mode(), video.OAMScan)
}

func TestWriteLY(t *testing.T) {
	vd, _ := newVideo(t)
	vd.Update(video.CyclesPerLine*5, nil)
	test.ExpectEquality(t, vd.LY(), 5)
	vd.Write(cpubus.AddrLY, 0x80)
	test.ExpectEquality(t, vd.LY(), 0)
}

func TestRender(t *testing.T) {
	vd, _ := newVideo(t)

	// tile 1 is solid colour 1
	for i := range 8 {
		vd.Write(0x8010+uint16(i*2), 0xff)
		vd.Write(0x8011+uint16(i*2), 0x00)
	}

	// tile 2 is solid colour 3
	for i := range 16 {
		vd.Write(0x8020+uint16(i), 0xff)
	}

	// first background tile
	vd.Write(0x9800, 0x01)

	// sprite using tile 2 at the top of the screen, 16 pixels in
	vd.Write(0xff48, 0xe4)
	vd.WriteOAM(0, 16)
	vd.WriteOAM(1, 8+16)
	vd.WriteOAM(2, 2)
	vd.WriteOAM(3, 0)
	vd.Write(cpubus.AddrLCDC, 0x93)

	snk := &sink.MostRecentFrame{}
	vd.Update(video.CyclesPerFrame, snk)
	test.DemandEquality(t, snk.Frames, 1)

	// BGP of 0xfc maps colour 1 to the darkest shade
	r, g, b := snk.Pixel(0, 0)
	test.ExpectEquality(t, [3]uint8{r, g, b}, [3]uint8{0x08, 0x18, 0x20})
	r, g, b = snk.Pixel(7, 7)
	test.ExpectEquality(t, [3]uint8{r, g, b}, [3]uint8{0x08, 0x18, 0x20})

	// tile 0 is empty. colour 0 maps to the lightest shade
	r, g, b = snk.Pixel(8, 0)
	test.ExpectEquality(t, [3]uint8{r, g, b}, [3]uint8{0xe0, 0xf8, 0xd0})

	// OBP0 of 0xe4 maps colour 3 to the darkest shade
	r, g, b = snk.Pixel(16, 0)
	test.ExpectEquality(t, [3]uint8{r, g, b}, [3]uint8{0x08, 0x18, 0x20})
	r, g, b = snk.Pixel(23, 7)
	test.ExpectEquality(t, [3]uint8{r, g, b}, [3]uint8{0x08, 0x18, 0x20})
	r, g, b = snk.Pixel(24, 0)
	test.ExpectEquality(t, [3]uint8{r, g, b}, [3]uint8{0xe0, 0xf8, 0xd0})
	r, g, b = snk.Pixel(16, 8)
	test.ExpectEquality(t, [3]uint8{r, g, b}, [3]uint8{0xe0, 0xf8, 0xd0})
}
