// This file is part of moderngl.
//
// moderngl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// moderngl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with moderngl.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting the render loop
// to a fixed rate. It is used when vertical sync is turned off.
//
// A new Limiter can be created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(60)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		renderFrame()
//	}
package limiter

import (
	"time"

	"github.com/glsketch/moderngl/curated"
)

// LimitError is returned when the requested rate is not positive.
const LimitError = "limiter: invalid rate: %d"

// Limiter will trigger at the requested rate.
type Limiter struct {
	ticker *time.Ticker
	rate   int
}

// Period returns the duration of a single frame at the rate.
func Period(framesPerSecond int) time.Duration {
	return time.Second / time.Duration(framesPerSecond)
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(framesPerSecond int) (*Limiter, error) {
	if framesPerSecond <= 0 {
		return nil, curated.Errorf(LimitError, framesPerSecond)
	}
	return &Limiter{
		ticker: time.NewTicker(Period(framesPerSecond)),
		rate:   framesPerSecond,
	}, nil
}

// SetLimit changes the rate at which the Limiter triggers.
func (lim *Limiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return curated.Errorf(LimitError, framesPerSecond)
	}
	lim.rate = framesPerSecond
	lim.ticker.Reset(Period(framesPerSecond))
	return nil
}

// Rate returns the current rate in frames per second.
func (lim *Limiter) Rate() int {
	return lim.rate
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.ticker.C
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *Limiter) Stop() {
	lim.ticker.Stop()
}
