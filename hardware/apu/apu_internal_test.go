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

package apu

import (
	"testing"

	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/memory/cpubus"
	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/logger"
	"github.com/gopherboy/gopherboy/test"
)

func newTestAPU(t *testing.T) *APU {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainEmulation, preferences.NewDefaultPreferences(), logger.NewLogger(100))
	test.DemandSuccess(t, err)
	return NewAPU(env)
}

func TestSweepWithoutShift(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR10, 0x20)
	a.Write(cpubus.AddrNR12, 0xf0)
	a.Write(cpubus.AddrNR13, 0x00)
	a.Write(cpubus.AddrNR14, 0x81)
	test.ExpectEquality(t, a.ch1.active, true)
	test.ExpectEquality(t, a.ch1.wavelength, 0x100)

	// two sweep clocks at steps 2 and 6
	a.Update(sequencerPeriod*8, nil)
	test.ExpectEquality(t, a.ch1.active, true)
	test.ExpectEquality(t, a.ch1.wavelength, 0x100)
}

func TestSweepIncrease(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR10, 0x11)
	a.Write(cpubus.AddrNR12, 0xf0)
	a.Write(cpubus.AddrNR13, 0x00)
	a.Write(cpubus.AddrNR14, 0x81)

	// first sweep clock is at step 2
	a.Update(sequencerPeriod*3, nil)
	test.ExpectEquality(t, a.ch1.wavelength, 0x180)

	// the new wavelength is written back to the registers
	test.ExpectEquality(t, a.regs[regNR13], 0x80)
	test.ExpectEquality(t, a.regs[regNR14]&0x07, 0x01)
}

func TestSweepOverflow(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR10, 0x11)
	a.Write(cpubus.AddrNR12, 0xf0)
	a.Write(cpubus.AddrNR13, 0xff)
	a.Write(cpubus.AddrNR14, 0x87)

	// overflow check on trigger
	test.ExpectEquality(t, a.ch1.active, false)
	test.ExpectEquality(t, a.Read(cpubus.AddrNR52)&0x01, 0x00)
}

func TestSweepDirectionChange(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR10, 0x19)
	a.Write(cpubus.AddrNR12, 0xf0)
	a.Write(cpubus.AddrNR13, 0x00)
	a.Write(cpubus.AddrNR14, 0x84)
	test.ExpectEquality(t, a.ch1.active, true)

	// a calculation in decrease mode has happened on trigger. switching to
	// increase mode disables the channel
	a.Write(cpubus.AddrNR10, 0x11)
	test.ExpectEquality(t, a.ch1.active, false)
}

func TestLengthEnableQuirk(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR11, 0x01)
	test.ExpectEquality(t, a.ch1.length.counter, 63)

	// the next sequencer step clocks the length counters so there is no
	// extra clock
	a.Write(cpubus.AddrNR14, 0x40)
	test.ExpectEquality(t, a.ch1.length.counter, 63)

	a = newTestAPU(t)
	a.Write(cpubus.AddrNR11, 0x01)
	a.Update(sequencerPeriod, nil)
	test.ExpectEquality(t, a.ch1.length.counter, 63)

	// the next step does not clock the length counters
	a.Write(cpubus.AddrNR14, 0x40)
	test.ExpectEquality(t, a.ch1.length.counter, 62)
}

func TestLengthExpiry(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR21, 0x3f)
	a.Write(cpubus.AddrNR22, 0xf0)
	a.Write(cpubus.AddrNR24, 0xc0)
	test.ExpectEquality(t, a.Read(cpubus.AddrNR52)&0x02, 0x02)

	a.Update(sequencerPeriod, nil)
	test.ExpectEquality(t, a.Read(cpubus.AddrNR52)&0x02, 0x00)
}

func TestTriggerReloadsLength(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR31, 0xff)
	a.Write(cpubus.AddrNR30, 0x80)
	a.Write(cpubus.AddrNR34, 0xc0)
	a.Update(sequencerPeriod, nil)
	test.ExpectEquality(t, a.ch3.active, false)
	test.ExpectEquality(t, a.ch3.length.counter, 0)

	// a counter of zero is reloaded with the maximum on trigger
	a.Write(cpubus.AddrNR34, 0x80)
	test.ExpectEquality(t, a.ch3.active, true)
	test.ExpectEquality(t, a.ch3.length.counter, 256)
}

func TestEnvelope(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR22, 0xf1)
	a.Write(cpubus.AddrNR24, 0x80)
	test.ExpectEquality(t, a.ch2.envelope.volume, 15)

	// one envelope clock at step 7
	a.Update(sequencerPeriod*8, nil)
	test.ExpectEquality(t, a.ch2.envelope.volume, 14)

	a.Update(sequencerPeriod*8*20, nil)
	test.ExpectEquality(t, a.ch2.envelope.volume, 0)

	// the channel is still active with a volume of zero
	test.ExpectEquality(t, a.ch2.active, true)
}

func TestDACOff(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR12, 0x00)
	test.ExpectEquality(t, a.Read(cpubus.AddrNR52)&0x01, 0x00)

	a.Write(cpubus.AddrNR14, 0x80)
	test.ExpectEquality(t, a.ch1.active, false)

	a.Write(cpubus.AddrNR30, 0x00)
	a.Write(cpubus.AddrNR34, 0x80)
	test.ExpectEquality(t, a.ch3.active, false)
}

func TestNoiseLFSR(t *testing.T) {
	ch := newNoise()
	test.ExpectEquality(t, ch.output(), false)
	ch.shiftLFSR()
	test.ExpectEquality(t, ch.lfsr, 0x3fff)

	for range 13 {
		ch.shiftLFSR()
	}
	test.ExpectEquality(t, ch.lfsr, 0x0001)

	// bits 0 and 1 now differ
	ch.shiftLFSR()
	test.ExpectEquality(t, ch.lfsr, 0x4000)
	test.ExpectEquality(t, ch.output(), true)

	ch = newNoise()
	ch.short = true
	ch.shiftLFSR()
	test.ExpectEquality(t, ch.lfsr, 0x3fbf)
}

func TestWaveTable(t *testing.T) {
	a := newTestAPU(t)
	a.Write(0xff30, 0xf0)
	test.ExpectEquality(t, a.ch3.sampleAt(0), 0x0f)
	test.ExpectEquality(t, a.ch3.sampleAt(1), 0x00)

	a.Write(cpubus.AddrNR30, 0x80)
	a.Write(cpubus.AddrNR32, 0x20)
	a.Write(cpubus.AddrNR34, 0x80)
	test.ExpectEquality(t, a.ch3.active, true)
	test.ExpectEquality(t, a.Read(cpubus.AddrNR32), 0xbf)
}

func TestLengthEnableAfterPowerCycle(t *testing.T) {
	a := newTestAPU(t)

	// the next step does not clock the length counters
	a.Update(sequencerPeriod, nil)
	test.ExpectEquality(t, a.seq.step, 1)

	a.Write(cpubus.AddrNR52, 0x00)
	test.ExpectEquality(t, a.Powered(), false)
	a.Write(cpubus.AddrNR52, 0x80)
	test.ExpectEquality(t, a.seq.step, 0)

	// the sequencer restarts at a length step so there is no extra clock
	a.Write(cpubus.AddrNR11, 0x01)
	a.Write(cpubus.AddrNR14, 0x40)
	test.ExpectEquality(t, a.ch1.length.counter, 63)

	a.Update(sequencerPeriod, nil)
	test.ExpectEquality(t, a.ch1.length.counter, 62)
}

func TestLengthEnableWithDACOff(t *testing.T) {
	a := newTestAPU(t)
	a.Write(cpubus.AddrNR22, 0x07)
	test.ExpectEquality(t, a.ch2.dacOn, false)

	a.Update(sequencerPeriod, nil)
	test.ExpectEquality(t, a.seq.nextIsLength(), false)

	// the extra clock happens whatever the state of the DAC
	a.Write(cpubus.AddrNR21, 0x3f)
	a.Write(cpubus.AddrNR24, 0x40)
	test.ExpectEquality(t, a.ch2.length.counter, 0)
	test.ExpectEquality(t, a.ch2.active, false)
	test.ExpectEquality(t, a.Read(cpubus.AddrNR52)&0x02, 0x00)

	// trigger reloads the counter, including the extra clock, but the
	// channel stays off
	a.Write(cpubus.AddrNR24, 0xc0)
	test.ExpectEquality(t, a.ch2.length.counter, 63)
	test.ExpectEquality(t, a.ch2.active, false)
}

func TestWaveOutputLevel(t *testing.T) {
	a := newTestAPU(t)
	a.ch3.active = true
	a.ch3.dacOn = true
	a.ch3.sample = 15

	a.ch3.level = 1
	test.ExpectEquality(t, a.ch3.amplitude(), 1.0)

	// the sample is shifted before it is centred
	a.ch3.level = 2
	test.ExpectApproximate(t, a.ch3.amplitude(), float32(-0.5/7.5), 0.001)

	a.ch3.level = 3
	test.ExpectApproximate(t, a.ch3.amplitude(), float32(-4.5/7.5), 0.001)

	a.ch3.level = 0
	test.ExpectEquality(t, a.ch3.amplitude(), 0.0)
}

func TestWriteWithoutEnvironment(t *testing.T) {
	a := NewAPU(nil)
	a.Write(cpubus.AddrNR52, 0x00)
	a.Write(cpubus.AddrNR11, 0x80)
	test.ExpectEquality(t, a.regs[cpubus.AddrNR11-originRegisters], 0x00)

	a.Write(cpubus.AddrNR52, 0x80)
	a.Write(cpubus.AddrNR11, 0x80)
	test.ExpectEquality(t, a.regs[cpubus.AddrNR11-originRegisters], 0x80)
}
