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

package preferences_test

import (
	"testing"

	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/test"
)

func TestDefaults(t *testing.T) {
	p := preferences.NewDefaultPreferences()
	test.ExpectEquality(t, p.SampleRatePeriod.Get().(int), preferences.DefaultSampleRatePeriod)
	test.ExpectSuccess(t, p.NoiseBit7.Get().(bool))
	test.ExpectSuccess(t, p.OAMProtection.Get().(bool))
	test.ExpectFailure(t, p.AutoSave.Get().(bool))

	p.SampleRatePeriod.Set(32)
	p.SetDefaults()
	test.ExpectEquality(t, p.SampleRatePeriod.Get().(int), preferences.DefaultSampleRatePeriod)

	// no disk is associated with default preferences
	test.ExpectSuccess(t, p.Save())
	test.ExpectSuccess(t, p.Load())
}
