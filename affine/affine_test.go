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

package affine_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/glsketch/moderngl/affine"
	"github.com/glsketch/moderngl/test"
	"github.com/go-gl/mathgl/mgl32"
)

const tolerance = 1e-5

func expectMatrix(t *testing.T, got, want affine.Matrix, tol float32, tags ...any) {
	t.Helper()
	if !affine.ApproxEqual(got, want, tol) {
		t.Errorf("%vmatrix mismatch:\n got  %s\n want %s", tags, got, want)
	}
}

func expectPoint(t *testing.T, got, want [4]float32, tags ...any) {
	t.Helper()
	for i := range got {
		test.ExpectApproximate(t, got[i], want[i], tolerance, append(tags, i)...)
	}
}

func expectBottomRow(t *testing.T, m affine.Matrix, tags ...any) {
	t.Helper()
	test.ExpectEquality(t, m[3], [4]float32{0, 0, 0, 1}, tags...)
}

// randomised inputs are generated from a fixed seed so that failures are
// repeatable
func randomValues(n int) []float32 {
	rnd := rand.New(rand.NewSource(2600))
	v := make([]float32, n)
	for i := range v {
		v[i] = (rnd.Float32() - 0.5) * 20
	}
	return v
}

func randomMatrix(rnd *rand.Rand) affine.Matrix {
	var m affine.Matrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = (rnd.Float32() - 0.5) * 4
		}
	}
	return m
}

func TestScale(t *testing.T) {
	values := append([]float32{0, -1, 1, 0.7}, randomValues(30)...)
	for i := 0; i+2 < len(values); i++ {
		sx, sy, sz := values[i], values[i+1], values[i+2]
		m := affine.Scale(sx, sy, sz)

		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				if r == c {
					continue
				}
				test.ExpectEquality(t, m[r][c], 0, "off-diagonal", r, c)
			}
		}

		test.ExpectEquality(t, m[0][0], sx)
		test.ExpectEquality(t, m[1][1], sy)
		test.ExpectEquality(t, m[2][2], sz)
		test.ExpectEquality(t, m[3][3], 1)
		expectBottomRow(t, m, "scale")
	}

	// negative scale flips the axis
	p := affine.Scale(-1, 1, 1).Apply([4]float32{0.5, 0.25, 0, 1})
	expectPoint(t, p, [4]float32{-0.5, 0.25, 0, 1})

	// zero scale collapses the axis
	p = affine.Scale(1, 0, 1).Apply([4]float32{0.5, 0.25, 0, 1})
	expectPoint(t, p, [4]float32{0.5, 0, 0, 1})
}

func TestRotateZ(t *testing.T) {
	// rotation by zero is the identity
	expectMatrix(t, affine.RotateZ(0), affine.Identity(), 0)

	angles := append([]float32{0, math.Pi / 2, math.Pi, -math.Pi / 4, 10}, randomValues(20)...)
	for _, theta := range angles {
		m := affine.RotateZ(theta)
		expectBottomRow(t, m, theta)

		// the top-left 2x2 block is orthogonal. the whole matrix is too
		// because the remaining block is the identity
		expectMatrix(t, m.Mul(m.Transpose()), affine.Identity(), tolerance, theta)

		// periodicity
		expectMatrix(t, m, affine.RotateZ(theta+2*math.Pi), tolerance, theta)

		// z axis is untouched
		expectPoint(t, m.Apply([4]float32{0, 0, 1, 1}), [4]float32{0, 0, 1, 1}, theta)
	}

	// quarter turn anticlockwise
	p := affine.RotateZ(math.Pi / 2).Apply([4]float32{1, 0, 0, 1})
	expectPoint(t, p, [4]float32{0, 1, 0, 1})

	// half turn
	p = affine.RotateZ(math.Pi).Apply([4]float32{1, 0, 0, 1})
	expectPoint(t, p, [4]float32{-1, 0, 0, 1})
}

func TestTranslate(t *testing.T) {
	values := append([]float32{0, 0.3, -1}, randomValues(30)...)
	for i := 0; i+2 < len(values); i++ {
		tx, ty, tz := values[i], values[i+1], values[i+2]
		m := affine.Translate(tx, ty, tz)
		expectBottomRow(t, m)

		// the translation of the origin is the translation vector
		p := m.Apply([4]float32{0, 0, 0, 1})
		test.ExpectEquality(t, p, [4]float32{tx, ty, tz, 1})

		// the same result through composition with a matrix whose first
		// column is the homogeneous origin
		var origin affine.Matrix
		origin[3][0] = 1
		c := affine.Compose(m, origin)
		test.ExpectEquality(t, [4]float32{c[0][0], c[1][0], c[2][0], c[3][0]}, [4]float32{tx, ty, tz, 1})

		// directions (w = 0) are not affected by translation
		d := m.Apply([4]float32{1, 2, 3, 0})
		test.ExpectEquality(t, d, [4]float32{1, 2, 3, 0})
	}
}

func TestCompose(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		a := randomMatrix(rnd)
		b := randomMatrix(rnd)
		c := randomMatrix(rnd)

		// associativity
		expectMatrix(t, affine.Compose(affine.Compose(a, b), c), affine.Compose(a, affine.Compose(b, c)), 1e-4, i)

		// identity on either side
		expectMatrix(t, affine.Compose(a, affine.Identity()), a, 0, i)
		expectMatrix(t, affine.Compose(affine.Identity(), a), a, 0, i)

		// method form is the same operation
		test.ExpectEquality(t, a.Mul(b), affine.Compose(a, b))
	}

	// composition is not commutative
	tr := affine.Translate(1, 0, 0)
	rot := affine.RotateZ(math.Pi / 2)
	test.ExpectFailure(t, affine.ApproxEqual(affine.Compose(tr, rot), affine.Compose(rot, tr), tolerance))

	// ComposeAll
	test.ExpectEquality(t, affine.ComposeAll(), affine.Identity())
	test.ExpectEquality(t, affine.ComposeAll(tr), tr)
	expectMatrix(t, affine.ComposeAll(tr, rot, tr), affine.Compose(affine.Compose(tr, rot), tr), 0)
}

func TestComposedBottomRow(t *testing.T) {
	for _, theta := range randomValues(20) {
		m := affine.ComposeAll(affine.Translate(theta, -theta, 1), affine.RotateZ(theta), affine.Scale(theta, 2, 0))
		expectBottomRow(t, m, theta)
	}
}

func TestSpinScenario(t *testing.T) {
	model := affine.ComposeAll(affine.Translate(0.3, 0, 0), affine.RotateZ(0), affine.Scale(0.7, 0.7, 1.0))
	p := model.Apply([4]float32{1, 0, 0, 1})
	expectPoint(t, p, [4]float32{1.0, 0, 0, 1})

	// scale is applied first, then rotation, then translation
	model = affine.ComposeAll(affine.Translate(0.3, 0, 0), affine.RotateZ(math.Pi/2), affine.Scale(0.7, 0.7, 1.0))
	p = model.Apply([4]float32{1, 0, 0, 1})
	expectPoint(t, p, [4]float32{0.3, 0.7, 0, 1})
}

// results are compared against the mathgl package, which is an independent
// implementation of the same transforms
func TestAgainstMathgl(t *testing.T) {
	values := randomValues(60)
	for i := 0; i+6 < len(values); i += 7 {
		theta := values[i]
		sx, sy, sz := values[i+1], values[i+2], values[i+3]
		tx, ty, tz := values[i+4], values[i+5], values[i+6]

		ours := affine.ComposeAll(affine.Translate(tx, ty, tz), affine.RotateZ(theta), affine.Scale(sx, sy, sz))
		theirs := mgl32.Translate3D(tx, ty, tz).Mul4(mgl32.HomogRotate3DZ(theta)).Mul4(mgl32.Scale3D(sx, sy, sz))

		test.ExpectSuccess(t, ours.Mat4().ApproxEqualThreshold(theirs, 1e-4), i)

		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				test.ExpectApproximate(t, ours[r][c], theirs.At(r, c), 1e-4, i, r, c)
			}
		}
	}
}

func TestLayout(t *testing.T) {
	m := affine.Translate(1, 2, 3)

	cm := m.ColumnMajor()
	test.ExpectEquality(t, cm[12], 1)
	test.ExpectEquality(t, cm[13], 2)
	test.ExpectEquality(t, cm[14], 3)
	test.ExpectEquality(t, cm[15], 1)

	rm := m.RowMajor()
	test.ExpectEquality(t, rm[3], 1)
	test.ExpectEquality(t, rm[7], 2)
	test.ExpectEquality(t, rm[11], 3)

	// the two layouts are related by transposition
	test.ExpectEquality(t, m.Transpose().RowMajor(), cm)
	test.ExpectEquality(t, m.Transpose().Transpose(), m)

	// mathgl uses the column-major layout
	test.ExpectEquality(t, [16]float32(m.Mat4()), cm)
}

func TestString(t *testing.T) {
	test.ExpectEquality(t, affine.Identity().String(),
		"[ 1.000  0.000  0.000  0.000] [ 0.000  1.000  0.000  0.000] [ 0.000  0.000  1.000  0.000] [ 0.000  0.000  0.000  1.000]")
}
