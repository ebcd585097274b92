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

package scene

import (
	"image/color"

	"github.com/glsketch/moderngl/affine"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Frame is the state required to draw a single frame.
type Frame struct {
	// seconds since the start of the program, not counting time spent paused
	Elapsed float64

	// applied to every model matrix. the identity matrix unless a caller
	// chooses otherwise
	Projection affine.Matrix

	// x, y, width and height in framebuffer pixels
	Viewport [4]int32

	// colour the framebuffer is cleared to before drawing
	Clear color.RGBA

	// whether the textured scene mixes the texture with the vertex colour
	Mix bool
}

// ClearColour returns the clear colour as normalised float values.
func (f Frame) ClearColour() (float32, float32, float32, float32) {
	return float32(f.Clear.R) / 255, float32(f.Clear.G) / 255, float32(f.Clear.B) / 255, float32(f.Clear.A) / 255
}

// prepare sets the viewport and clears the framebuffer.
func (f Frame) prepare() {
	gl.Viewport(f.Viewport[0], f.Viewport[1], f.Viewport[2], f.Viewport[3])
	gl.ClearColor(f.ClearColour())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
