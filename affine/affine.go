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

package affine

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Matrix is a 4x4 homogeneous transform indexed as [row][column].
type Matrix [4][4]float32

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Scale returns a matrix with sx, sy, sz and 1 on the diagonal. The values
// are not checked. A negative value flips the axis and zero collapses it.
func Scale(sx, sy, sz float32) Matrix {
	return Matrix{
		{sx, 0, 0, 0},
		{0, sy, 0, 0},
		{0, 0, sz, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ returns a rotation about the Z axis. The angle is in radians and
// is not normalised.
func RotateZ(theta float32) Matrix {
	c := math32.Cos(theta)
	s := math32.Sin(theta)
	return Matrix{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns the identity matrix with the translation in the last
// column.
func Translate(tx, ty, tz float32) Matrix {
	return Matrix{
		{1, 0, 0, tx},
		{0, 1, 0, ty},
		{0, 0, 1, tz},
		{0, 0, 0, 1},
	}
}

// Compose returns the matrix product a x b. Composition is not commutative.
// When the result is applied to a point, b is applied before a.
func Compose(a, b Matrix) Matrix {
	var m Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var v float32
			for k := 0; k < 4; k++ {
				v += a[r][k] * b[k][c]
			}
			m[r][c] = v
		}
	}
	return m
}

// ComposeAll multiplies the matrices left to right. The identity matrix is
// returned for an empty list.
func ComposeAll(ms ...Matrix) Matrix {
	m := Identity()
	for _, n := range ms {
		m = Compose(m, n)
	}
	return m
}

// Mul is the method form of Compose(). It returns m x b.
func (m Matrix) Mul(b Matrix) Matrix {
	return Compose(m, b)
}

// Apply multiplies the column vector p by the matrix.
func (m Matrix) Apply(p [4]float32) [4]float32 {
	var v [4]float32
	for r := 0; r < 4; r++ {
		v[r] = m[r][0]*p[0] + m[r][1]*p[1] + m[r][2]*p[2] + m[r][3]*p[3]
	}
	return v
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	var t Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			t[c][r] = m[r][c]
		}
	}
	return t
}

// RowMajor returns the matrix as a flat array, one row after another.
func (m Matrix) RowMajor() [16]float32 {
	var f [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			f[r*4+c] = m[r][c]
		}
	}
	return f
}

// ColumnMajor returns the matrix as a flat array, one column after another.
// This is the layout expected by glUniformMatrix4fv() when transpose is
// false.
func (m Matrix) ColumnMajor() [16]float32 {
	var f [16]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			f[c*4+r] = m[r][c]
		}
	}
	return f
}

// Mat4 returns the matrix as a mathgl matrix, which is stored column-major.
func (m Matrix) Mat4() mgl32.Mat4 {
	return mgl32.Mat4(m.ColumnMajor())
}

// ApproxEqual returns true if every entry of a is within tol of the
// corresponding entry of b.
func ApproxEqual(a, b Matrix, tol float32) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math32.Abs(a[r][c]-b[r][c]) > tol {
				return false
			}
		}
	}
	return true
}

func (m Matrix) String() string {
	s := strings.Builder{}
	for r := 0; r < 4; r++ {
		if r > 0 {
			s.WriteString(" ")
		}
		s.WriteString(fmt.Sprintf("[% .3f % .3f % .3f % .3f]", m[r][0], m[r][1], m[r][2], m[r][3]))
	}
	return s.String()
}
