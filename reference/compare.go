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

package reference

import (
	"fmt"

	"github.com/gopherboy/gopherboy/curated"
)

// SampleRateMismatch is returned by Compare() when the traces were recorded
// at different sample rates.
const SampleRateMismatch = "reference: sample rate mismatch (%d != %d)"

// Result of a comparison between two traces.
type Result struct {
	// the number of samples compared. the shorter of the two traces
	Compared int

	// the number of samples where either channel differs by more than the
	// tolerance
	Mismatches int

	// index of the first mismatched sample. -1 if there are no mismatches
	FirstMismatch int

	// the largest difference seen in either channel
	MaxDifference float32

	// the traces were of different lengths
	LengthMismatch bool
}

func (r Result) String() string {
	if r.Passed() {
		return fmt.Sprintf("%d samples match (max difference %.5f)", r.Compared, r.MaxDifference)
	}
	s := fmt.Sprintf("%d of %d samples differ (first at %d, max difference %.5f)", r.Mismatches, r.Compared, r.FirstMismatch, r.MaxDifference)
	if r.LengthMismatch {
		s = fmt.Sprintf("%s. lengths differ", s)
	}
	return s
}

// Passed returns true if there were no mismatched samples and the traces
// were the same length.
func (r Result) Passed() bool {
	return r.Mismatches == 0 && !r.LengthMismatch
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Compare two traces sample by sample. The tolerance is the largest
// difference allowed between two samples before they are considered to be
// different.
func Compare(ref *Trace, got *Trace, tolerance float32) (Result, error) {
	if ref.SampleRate != got.SampleRate {
		return Result{}, curated.Errorf(SampleRateMismatch, got.SampleRate, ref.SampleRate)
	}

	res := Result{
		Compared:       min(ref.Len(), got.Len()),
		FirstMismatch:  -1,
		LengthMismatch: ref.Len() != got.Len(),
	}

	for i := range res.Compared {
		d := max(abs(ref.Left[i]-got.Left[i]), abs(ref.Right[i]-got.Right[i]))
		res.MaxDifference = max(res.MaxDifference, d)
		if d > tolerance {
			if res.FirstMismatch == -1 {
				res.FirstMismatch = i
			}
			res.Mismatches++
		}
	}

	return res, nil
}
