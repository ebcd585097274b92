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

// Animation describes the model matrix of the spinning square.
type Animation struct {
	Scale     [3]float32
	Translate [3]float32

	// rotation speed in radians per second
	Speed float32

	// the order in which the translation, rotation and scale matrices are
	// multiplied
	Order affine.Order
}

// DefaultAnimation returns the animation of the spin scene.
func DefaultAnimation() Animation {
	return Animation{
		Scale:     [3]float32{0.7, 0.7, 1.0},
		Translate: [3]float32{0.3, 0.0, 0.0},
		Speed:     1.0,
		Order:     affine.DefaultOrder,
	}
}

// ModelAt returns the model matrix at the elapsed time in seconds. The matrix
// is built from scratch on every call.
func (a Animation) ModelAt(elapsed float64) affine.Matrix {
	angle := float32(elapsed * float64(a.Speed))
	return affine.Model(a.Order,
		affine.Translate(a.Translate[0], a.Translate[1], a.Translate[2]),
		affine.RotateZ(angle),
		affine.Scale(a.Scale[0], a.Scale[1], a.Scale[2]),
	)
}
