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

package performance

// FPS counts frames over a window of time. Time is supplied by the caller
// in seconds.
type FPS struct {
	window float64

	start   float64
	frames  int
	started bool

	rate float64
}

// NewFPS is the preferred method of initialisation for the FPS type. The
// window is in seconds.
func NewFPS(window float64) *FPS {
	if window <= 0 {
		window = 1.0
	}
	return &FPS{
		window: window,
	}
}

// Tick records a single frame at time now. Returns true if the window has
// elapsed and the rate has been updated.
func (fps *FPS) Tick(now float64) bool {
	if !fps.started {
		fps.started = true
		fps.start = now
		return false
	}

	fps.frames++

	d := now - fps.start
	if d < fps.window {
		return false
	}

	fps.rate = float64(fps.frames) / d
	fps.frames = 0
	fps.start = now
	return true
}

// Rate returns the frame rate measured over the most recent window.
func (fps *FPS) Rate() float64 {
	return fps.rate
}

// Reset the counter. Used when the time source has been interrupted.
func (fps *FPS) Reset() {
	fps.started = false
	fps.frames = 0
}
