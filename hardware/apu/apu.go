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
	"fmt"
	"strings"

	"github.com/gopherboy/gopherboy/environment"
	"github.com/gopherboy/gopherboy/hardware/apu/mix"
	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/hardware/sink"
)

// APU is the audio processing unit.
type APU struct {
	env *environment.Environment

	// NR52 bit 7
	powered bool

	// the value of every register in the range 0xff10 to 0xff2f as last
	// written. NR52 is not stored here
	regs [numRegisters]uint8

	ch1 square
	ch2 square
	ch3 wave
	ch4 noise

	seq sequencer

	// number of cycles until the next sample is sent to the sink
	sampleTicks int

	// copied from the preferences at the start of each Update()
	samplePeriod int
	noiseBit7    bool
}

// NewAPU is the preferred method of initialisation for the APU type. A nil
// environment selects the default preferences and disables logging.
func NewAPU(env *environment.Environment) *APU {
	apu := &APU{env: env}
	apu.Reset()
	return apu
}

// Reset the APU to the state it is in after the boot ROM has run.
func (apu *APU) Reset() {
	apu.powered = false
	apu.regs = [numRegisters]uint8{}
	apu.ch1 = newSquare(true)
	apu.ch2 = newSquare(false)
	apu.ch3 = newWave()
	apu.ch4 = newNoise()
	apu.readPreferences()
	apu.sampleTicks = apu.samplePeriod

	apu.setPower(true)
	for _, r := range powerOnRegisters {
		apu.Write(r.addr, r.value)
	}

	// the boot ROM plays a sound on channel one. the envelope has finished by
	// the time the cartridge starts but the channel is still enabled
	apu.ch1.active = true
	apu.ch1.envelope.volume = 0
}

func (apu *APU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("NR50=%#02x NR51=%#02x NR52=%#02x step=%d\n", apu.regs[regNR50], apu.regs[regNR51], apu.readNR52(), apu.seq.step))
	s.WriteString(fmt.Sprintf("ch1: %s\n", &apu.ch1))
	s.WriteString(fmt.Sprintf("ch2: %s\n", &apu.ch2))
	s.WriteString(fmt.Sprintf("ch3: %s\n", &apu.ch3))
	s.WriteString(fmt.Sprintf("ch4: %s", &apu.ch4))
	return s.String()
}

func (apu *APU) readPreferences() {
	apu.samplePeriod = preferences.DefaultSampleRatePeriod
	apu.noiseBit7 = true
	if apu.env == nil || apu.env.Prefs == nil {
		return
	}
	if v, ok := apu.env.Prefs.SampleRatePeriod.Get().(int); ok && v > 0 {
		apu.samplePeriod = v
	}
	if v, ok := apu.env.Prefs.NoiseBit7.Get().(bool); ok {
		apu.noiseBit7 = v
	}
}

// setPower turns the APU on or off. Turning the APU off clears every
// register and resets the channels. The wave table is preserved. Turning
// the APU on resets the frame sequencer.
func (apu *APU) setPower(on bool) {
	if on == apu.powered {
		return
	}

	apu.powered = on

	if on {
		apu.seq.reset()
		return
	}

	table := apu.ch3.table
	apu.regs = [numRegisters]uint8{}
	apu.ch1 = newSquare(true)
	apu.ch2 = newSquare(false)
	apu.ch3 = newWave()
	apu.ch3.table = table
	apu.ch4 = newNoise()
}

// Powered returns true if the APU is switched on.
func (apu *APU) Powered() bool {
	return apu.powered
}

// Update the APU by the number of cycles. Samples are sent to the sink,
// which may be nil.
func (apu *APU) Update(cycles int, snk sink.Audio) {
	apu.readPreferences()
	apu.sampleTicks = min(apu.sampleTicks, apu.samplePeriod)

	for cycles > 0 {
		n := min(cycles, apu.sampleTicks)
		if apu.powered {
			n = min(n, apu.seq.ticks)
		}

		apu.ch1.tick(n)
		apu.ch2.tick(n)
		apu.ch3.tick(n)
		apu.ch4.tick(n)

		cycles -= n

		if apu.powered && apu.seq.advance(n) {
			apu.clockSequencer()
		}

		apu.sampleTicks -= n
		if apu.sampleTicks <= 0 {
			apu.sampleTicks += apu.samplePeriod
			if snk != nil {
				snk.AppendSample(apu.Mix())
			}
		}
	}
}

func (apu *APU) clockSequencer() {
	s := apu.seq.next()

	if s&0x01 == 0 {
		apu.ch1.clockLength()
		apu.ch2.clockLength()
		apu.ch3.clockLength()
		apu.ch4.clockLength()
	}

	if s == 2 || s == 6 {
		if wl, ok := apu.ch1.clockSweep(); ok {
			apu.regs[regNR13] = uint8(wl)
			apu.regs[regNR14] = apu.regs[regNR14]&^0x07 | uint8(wl>>8)
		}
	}

	if s == 7 {
		apu.ch1.clockEnvelope()
		apu.ch2.clockEnvelope()
		apu.ch4.clockEnvelope()
	}
}

// Mix returns the current stereo output of the APU.
func (apu *APU) Mix() (float32, float32) {
	ch := mix.Channels{
		apu.ch1.amplitude(),
		apu.ch2.amplitude(),
		apu.ch3.amplitude(),
		apu.ch4.amplitude(),
	}
	return mix.Stereo(ch, mix.Routing{
		NR50:      apu.regs[regNR50],
		NR51:      apu.regs[regNR51],
		NoiseBit7: apu.noiseBit7,
	})
}
