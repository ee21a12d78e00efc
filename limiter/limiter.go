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

// Package limiter paces the front ends so that the emulation runs at the
// refresh rate of the LCD. It also measures the actual frame rate.
package limiter

import (
	"sync/atomic"
	"time"
)

// Limiter should be created with NewLimiter().
type Limiter struct {
	// the natural rate of the display. used when a requested rate of zero
	// or less is given to SetRate()
	refreshRate float64

	// frames per second. stored as float64
	requested atomic.Value
	actual    atomic.Value

	// whether Wait() blocks
	active atomic.Bool

	pulse *time.Ticker

	measureCt      int
	measureTime    time.Time
	measuringPulse *time.Ticker
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(refreshRate float64) *Limiter {
	lmtr := &Limiter{
		refreshRate:    refreshRate,
		measureTime:    time.Now(),
		pulse:          time.NewTicker(time.Millisecond * 10),
		measuringPulse: time.NewTicker(time.Second),
	}
	lmtr.actual.Store(float64(0))
	lmtr.active.Store(true)
	lmtr.SetRate(refreshRate)
	return lmtr
}

// SetRate changes the number of frames per second. A value of zero or less
// selects the refresh rate.
func (lmtr *Limiter) SetRate(fps float64) {
	if fps <= 0 {
		fps = lmtr.refreshRate
	}
	lmtr.requested.Store(fps)
	lmtr.pulse.Reset(time.Duration(float64(time.Second) / fps))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// SetActive turns limiting on or off. When off Wait() returns immediately.
func (lmtr *Limiter) SetActive(active bool) {
	lmtr.active.Store(active)
}

// Requested returns the frame rate set by SetRate().
func (lmtr *Limiter) Requested() float64 {
	return lmtr.requested.Load().(float64)
}

// Actual returns the most recent measurement of the frame rate. Safe to call
// from any goroutine.
func (lmtr *Limiter) Actual() float64 {
	return lmtr.actual.Load().(float64)
}

// Wait should be called once per frame. It blocks until the next frame is
// due.
func (lmtr *Limiter) Wait() {
	lmtr.measureCt++
	if lmtr.active.Load() {
		<-lmtr.pulse.C
	}
	lmtr.measure()
}

func (lmtr *Limiter) measure() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		lmtr.actual.Store(float64(lmtr.measureCt) / t.Sub(lmtr.measureTime).Seconds())
		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop releases the tickers used by the limiter.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}
