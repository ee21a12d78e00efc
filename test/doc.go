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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions stop the test with t.Fatalf().
//
// ExpectSuccess() and ExpectFailure() accept bool, error and nil values. A
// true bool or a nil error is a success:
//
//	test.ExpectSuccess(t, err)
//	test.ExpectFailure(t, cpu.Halted())
//
// ExpectEquality() is generic and requires both values to be of the same
// comparable type:
//
//	test.ExpectEquality(t, regs.A.Value(), uint8(0x42))
//
// The optional tags arguments are prepended to any failure message and are
// useful to identify an iteration in a table driven test.
//
// The package also contains some io.Writer implementations that are useful
// for capturing output in tests.
package test
