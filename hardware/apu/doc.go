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

// Package apu implements the audio processing unit. There are four sound
// channels: two square wave channels (the first with a frequency sweep), a
// wave channel that plays a table of 32 four bit samples and a noise
// channel.
//
// Each channel has a frequency timer that is clocked every cycle. The frame
// sequencer is clocked every 8192 cycles (512Hz) and in turn clocks the
// length counters, the frequency sweep and the volume envelopes:
//
//	Step   Length   Sweep   Envelope
//	0      clock    -       -
//	1      -        -       -
//	2      clock    clock   -
//	3      -        -       -
//	4      clock    -       -
//	5      -        -       -
//	6      clock    clock   -
//	7      -        -       clock
//
// A stereo sample is sent to the audio sink every SampleRatePeriod cycles,
// as defined in the hardware preferences. The sample is created by the mix
// package.
package apu
