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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gopherboy/gopherboy/hardware"
)

// the maximum amount of time given for the frame rate to settle before the
// measurement begins
const maxLeadTime = 2 * time.Second

// Result of a call to Check().
type Result struct {
	Frames   int
	Duration time.Duration
	FPS      float64
	Accuracy float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%", r.FPS, r.Frames, r.Duration.Seconds(), r.Accuracy)
}

// Check runs the console as fast as possible for the duration and measures
// the frame rate. The result is written to output, which may be nil. No
// video or audio is produced.
func Check(output io.Writer, con *hardware.Console, profile Profile, duration time.Duration) (Result, error) {
	lead := duration / 4
	if lead > maxLeadTime {
		lead = maxLeadTime
	}

	var res Result

	runner := func() error {
		// the lead time is spent running the emulation without measurement
		deadline := time.Now().Add(lead)
		for time.Now().Before(deadline) {
			if err := con.RunForFrameCount(1, nil, nil); err != nil {
				return err
			}
		}

		start := time.Now()
		deadline = start.Add(duration)
		for time.Now().Before(deadline) {
			if err := con.RunForFrameCount(1, nil, nil); err != nil {
				return err
			}
			res.Frames++
		}
		res.Duration = time.Since(start)

		return nil
	}

	if err := RunProfiler(profile, "performance", runner); err != nil {
		return res, fmt.Errorf("performance: %w", err)
	}

	res.FPS, res.Accuracy = CalcFPS(res.Frames, res.Duration.Seconds())

	if output != nil {
		fmt.Fprintln(output, res)
	}

	return res, nil
}
