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

// Package prefs facilitates the storage of preferential values. Values are
// stored in one of the preference types (Bool, String, Int and Float) and
// associated with a key in a Disk instance:
//
//	var sampleRate prefs.Int
//	dsk, err := prefs.NewDisk(fn)
//	err = dsk.Add("apu.sampleRatePeriod", &sampleRate)
//	err = dsk.Load()
//
// The Disk type saves and loads the values as plain text, one key/value
// pair per line, separated by the " :: " sequence. Keys in the file that are
// not added to the Disk are preserved when the file is saved.
//
// Values can be set from the command line with PushCommandLineStack(). Any
// values on the top of the stack override the values loaded from disk for
// the duration of the command line group.
//
// The preference types are safe to access from more than one goroutine.
// Hook functions can be attached to a value with SetHookPre() and
// SetHookPost(). The pre hook can prevent a change by returning an error.
package prefs
