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

// Package curated wraps the plain Go error type so that errors can be
// identified by the pattern that created them rather than by the formatted
// message.
//
// Errors are created with Errorf(), which takes a pattern and the values for
// that pattern in the same way as fmt.Errorf():
//
//	e := curated.Errorf("mbc1: unsupported rom size (%#02x)", code)
//
//	if curated.Is(e, "mbc1: unsupported rom size (%#02x)") {
//		...
//	}
//
// Is() checks only the outermost error. Has() searches the whole chain, so
// that an error wrapped by another curated error can still be identified:
//
//	f := curated.Errorf("cartridge: %v", e)
//	curated.Has(f, "mbc1: unsupported rom size (%#02x)") // true
//	curated.Is(f, "mbc1: unsupported rom size (%#02x)")  // false
//
// Patterns used for identification should be exported as named constants by
// the package that raises them.
//
// The Error() string of a curated error is normalised so that repeated
// adjacent parts of the message chain are removed. Chains are made of parts
// separated by ": ". This means a package can wrap an error with its own
// prefix without worrying whether the error already carries that prefix:
//
//	cartridge: cartridge: no data
//
// is reported as:
//
//	cartridge: no data
package curated
