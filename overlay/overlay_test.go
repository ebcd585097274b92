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

package overlay_test

import (
	"testing"

	"github.com/glsketch/moderngl/affine"
	"github.com/glsketch/moderngl/overlay"
	"github.com/glsketch/moderngl/test"
)

func TestMatrixRows(t *testing.T) {
	rows := overlay.MatrixRows(affine.Translate(0.3, -1, 0))
	test.ExpectEquality(t, rows[0], " 1.000  0.000  0.000  0.300")
	test.ExpectEquality(t, rows[1], " 0.000  1.000  0.000 -1.000")
	test.ExpectEquality(t, rows[3], " 0.000  0.000  0.000  1.000")
}

func TestGUIProjection(t *testing.T) {
	const w, h = 800, 600

	// the projection as it is usually written for a dear imgui renderer,
	// already in column-major order
	expected := [4][4]float32{
		{2.0 / w, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -h, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}

	cm := overlay.GUIProjection(w, h).ColumnMajor()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			test.ExpectApproximate(t, cm[c*4+r], expected[c][r], 1e-6)
		}
	}

	// top left of the display is the top left of clip space
	p := overlay.GUIProjection(w, h).Apply([4]float32{0, 0, 0, 1})
	test.ExpectApproximate(t, p[0], -1.0, 1e-6)
	test.ExpectApproximate(t, p[1], 1.0, 1e-6)

	p = overlay.GUIProjection(w, h).Apply([4]float32{w, h, 0, 1})
	test.ExpectApproximate(t, p[0], 1.0, 1e-6)
	test.ExpectApproximate(t, p[1], -1.0, 1e-6)
}
