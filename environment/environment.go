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

// Package environment is used to distinguish between instances of the
// emulated console. Every hardware component is given an Environment at
// construction time and uses it to access the preferences and the log.
package environment

import (
	"github.com/gopherboy/gopherboy/hardware/preferences"
	"github.com/gopherboy/gopherboy/logger"
)

// Label is used to name the environment.
type Label string

// MainEmulation is the label used for the main emulation.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation.
type Environment struct {
	Label Label

	// the emulation preferences
	Prefs *preferences.Preferences

	// hardware components log through this logger rather than the central
	// logger directly
	Log *logger.Logger
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If prefs is nil then the preferences are loaded from
// disk. If log is nil then the central logger is used.
func NewEnvironment(label Label, prefs *preferences.Preferences, log *logger.Logger) (*Environment, error) {
	env := &Environment{
		Label: label,
		Prefs: prefs,
		Log:   log,
	}

	if env.Prefs == nil {
		var err error
		env.Prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	if env.Log == nil {
		env.Log = logger.Central()
	}

	return env, nil
}

// Normalise ensures the environment is in a known default state. Useful for
// regression testing where the initial state must be the same for every run
// of the test.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
}

// IsEmulation checks the emulation label and returns true if it matches.
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface. Only the main
// emulation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.Label == MainEmulation
}

// Logf adds an entry to the environment's log. A nil Environment logs
// nothing.
func (env *Environment) Logf(tag string, pattern string, args ...any) {
	if env == nil || env.Log == nil {
		return
	}
	env.Log.Logf(env, tag, pattern, args...)
}
