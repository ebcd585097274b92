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

package overlay

import "github.com/glsketch/moderngl/affine"

// Status is the information shown by the overlay.
type Status struct {
	Scene   string
	Elapsed float64
	FPS     float64

	// the model matrix is only shown if HasModel is true
	Model    affine.Matrix
	HasModel bool
}

// Controls are the values that can be changed by the user through the
// overlay.
type Controls struct {
	Paused bool
	Mix    bool

	// frame rate limit. zero if the frame rate is not being limited
	FPSCap int32
}
