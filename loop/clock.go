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

package loop

// Clock measures elapsed time, not counting the time spent paused.
type Clock struct {
	source func() float64

	paused   bool
	pausedAt float64

	// total time spent paused
	offset float64
}

// NewClock is the preferred method of initialisation for the Clock type. The
// source function returns the current time in seconds.
func NewClock(source func() float64) *Clock {
	return &Clock{
		source: source,
	}
}

// Now returns the elapsed time in seconds. The value does not change while
// the clock is paused.
func (clk *Clock) Now() float64 {
	if clk.paused {
		return clk.pausedAt - clk.offset
	}
	return clk.source() - clk.offset
}

// Pause stops or restarts the clock. Pausing a paused clock has no effect.
func (clk *Clock) Pause(paused bool) {
	if paused == clk.paused {
		return
	}

	now := clk.source()
	if paused {
		clk.pausedAt = now
	} else {
		clk.offset += now - clk.pausedAt
	}
	clk.paused = paused
}

// Paused returns true if the clock is paused.
func (clk *Clock) Paused() bool {
	return clk.paused
}
