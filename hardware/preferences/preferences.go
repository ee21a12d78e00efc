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

// Package preferences holds the preferences that affect the emulated
// hardware. The preferences are stored on disk alongside the preferences of
// other parts of the application, using the prefs package.
//
// All hardware packages read preferences through the environment they are
// created with. They should not keep a copy of a value because the value can
// change at any time.
package preferences

import (
	"github.com/gopherboy/gopherboy/paths"
	"github.com/gopherboy/gopherboy/prefs"
)

// DefaultSampleRatePeriod is the number of machine cycles (T-cycles) between
// audio samples. A period of 64 gives a sample rate of 65536Hz.
const DefaultSampleRatePeriod = 64

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// the number of T-cycles between each audio sample produced by the APU
	SampleRatePeriod prefs.Int

	// the noise channel is routed to the left output by bit 7 of NR51. when
	// false bit 4 is used, which is shared with square channel 1
	NoiseBit7 prefs.Bool

	// block CPU access to OAM during modes 2 and 3 and to VRAM during mode 3
	OAMProtection prefs.Bool

	// log CPU accesses that are blocked by an active OAM DMA
	LogDMAContention prefs.Bool

	// write battery backed RAM to disk when the emulation ends
	AutoSave prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	p := NewDefaultPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, v := range []struct {
		key string
		p   prefValue
	}{
		{"hardware.apu.sampleRatePeriod", &p.SampleRatePeriod},
		{"hardware.apu.noiseBit7", &p.NoiseBit7},
		{"hardware.video.oamProtection", &p.OAMProtection},
		{"hardware.memory.logDMAContention", &p.LogDMAContention},
		{"hardware.cartridge.autoSave", &p.AutoSave},
	} {
		if err := p.dsk.Add(v.key, v.p); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences returns a Preferences instance that is not
// associated with a file on disk. Save() and Load() will do nothing.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// prefValue is satisfied by all the types in the prefs package.
type prefValue interface {
	Set(prefs.Value) error
	Get() prefs.Value
	Reset() error
	String() string
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	p.SampleRatePeriod.Set(DefaultSampleRatePeriod)
	p.NoiseBit7.Set(true)
	p.OAMProtection.Set(true)
	p.LogDMAContention.Set(true)
	p.AutoSave.Set(false)
}

// Load current hardware preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
