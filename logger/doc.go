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

// Package logger is the central log repository for Gopherboy. There is a
// single central logger accessed through the package level functions, and
// any number of independent Logger instances created with NewLogger().
//
// Hardware packages do not log to the central logger directly. They log
// through the Logger carried by the environment.Environment instance given
// to them at construction time. The default environment uses the central
// logger.
//
// Log entries are tagged with the name of the component making the entry:
//
//	logger.Log(env, "mbc1", "ram bank out of range")
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count.
package logger
