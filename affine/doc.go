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

// Package affine builds the 4x4 homogeneous transforms used to place 2D
// geometry each frame.
//
// A Matrix is indexed [row][column] and transforms column vectors multiplied
// on the right. The elementary constructors are Scale(), RotateZ() and
// Translate(). Compose() multiplies two matrices. Because column vectors
// are on the right, the last matrix in a composition is the first to be
// applied to a point:
//
//	model := affine.ComposeAll(affine.Translate(0.3, 0, 0), affine.RotateZ(t), affine.Scale(0.7, 0.7, 1))
//
// scales the point, then rotates it about the Z axis and finally translates
// it. The Order type and the Model() function name this composition order
// explicitly. TRS is the order shown above.
//
// All functions are pure and return new values. Degenerate input, such as a
// zero scale or a very large angle, produces a well defined (if visually
// degenerate) matrix rather than an error.
//
// OpenGL expects matrix uniforms in column-major order. ColumnMajor() and
// Mat4() produce that layout and the matrix can then be uploaded with the
// transpose flag set to false.
package affine
