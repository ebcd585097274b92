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

import (
	"fmt"

	"github.com/glsketch/moderngl/affine"
)

// matrixRows formats each row of the matrix for display.
func matrixRows(m affine.Matrix) [4]string {
	var rows [4]string
	for i, r := range m {
		rows[i] = fmt.Sprintf("% .3f % .3f % .3f % .3f", r[0], r[1], r[2], r[3])
	}
	return rows
}

// guiProjection returns the orthographic projection that maps imgui display
// coordinates, with the origin at the top left, to clip space.
func guiProjection(w float32, h float32) affine.Matrix {
	return affine.Compose(affine.Translate(-1, 1, 0), affine.Scale(2/w, -2/h, -1))
}
