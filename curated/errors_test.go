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

package curated_test

import (
	"errors"
	"testing"

	"github.com/gopherboy/gopherboy/curated"
	"github.com/gopherboy/gopherboy/test"
)

const testPattern = "test: value = %d"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectEquality(t, e.Error(), "test: value = 10")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "test: other"))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Is(errors.New("test: value = 10"), testPattern))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	f := curated.Errorf("fatal: %v", e)
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.IsAny(f))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
}

func TestDeduplication(t *testing.T) {
	e := curated.Errorf("cartridge: %v", curated.Errorf("cartridge: %v", "no data"))
	test.ExpectEquality(t, e.Error(), "cartridge: no data")

	e = curated.Errorf("a: %v", curated.Errorf("b: %v", curated.Errorf("b: %v", "c")))
	test.ExpectEquality(t, e.Error(), "a: b: c")
}

func TestUnwrap(t *testing.T) {
	base := errors.New("base error")
	e := curated.Errorf("wrapped: %v", base)
	test.ExpectSuccess(t, errors.Is(e, base))
}
