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

import "github.com/glsketch/moderngl/affine"

// Scene is implemented by the programs that can be drawn. Every method that
// calls into GL must be called from the thread that owns the GL context.
type Scene interface {
	// short name of the scene. used in log messages
	Name() string

	// create GPU resources. must be called once before Render()
	Setup() error

	// draw a single frame
	Render(Frame)

	// recompile the shader programs. on error the existing programs are
	// kept
	ReloadShaders(dir string) error

	// release GPU resources
	Destroy()
}

// Resizer is implemented by scenes that require a particular window size.
type Resizer interface {
	// returns the required window size. ok is true only the first time the
	// function is called
	WindowSize() (w int, h int, ok bool)
}

// Modeller is implemented by scenes that draw with an animated model matrix.
type Modeller interface {
	// the model matrix used in the most recent call to Render()
	Model() affine.Matrix
}
