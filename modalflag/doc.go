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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select a mode of operation, each mode with its own set of
// flags and its own sub-modes.
//
// Arguments are supplied once with NewArgs(). Flags for the current mode are
// added with the Add*() functions and then Parse() is called:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After a successful Parse(), Mode() returns the selected sub-mode. The first
// sub-mode is the default and is selected when the argument following the
// flags does not name a sub-mode. Sub-mode names are case insensitive.
//
// Each mode then starts a new layer of flags with NewMode() and calls Parse()
// again on the arguments that remain:
//
//	md.NewMode()
//	frames := md.AddInt("frames", 60, "number of frames to run")
//	p, err = md.Parse()
//
// Path() returns every mode selected so far, separated by a slash. For
// example "HEADLESS" or "RUN/SDL".
package modalflag
