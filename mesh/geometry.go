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

package mesh

// Geometry is vertex data with the layout that describes it.
type Geometry struct {
	Vertices []float32
	Indices  []uint32
	Layout   Layout
}

// PositionColour is the layout of the spin scene geometry. Position (x, y, z)
// at location 0 and colour (r, g, b) at location 1.
var PositionColour = Layout{
	Attributes: []Attribute{
		{Index: 0, Size: 3},
		{Index: 1, Size: 3},
	},
}

// PositionTexColour is the layout of the textured scene geometry. Position
// (x, y) at location 0, texture coordinates (s, t) at location 1 and colour
// (r, g, b) at location 2.
var PositionTexColour = Layout{
	Attributes: []Attribute{
		{Index: 0, Size: 2},
		{Index: 1, Size: 2},
		{Index: 2, Size: 3},
	},
}

// Triangle returns a triangle with a red, green and blue corner.
func Triangle() Geometry {
	return Geometry{
		Vertices: []float32{
			0.5, -0.5, 0.0, 1.0, 0.0, 0.0,
			-0.5, -0.5, 0.0, 0.0, 1.0, 0.0,
			0.0, 0.5, 0.0, 0.0, 0.0, 1.0,
		},
		Layout: PositionColour,
	}
}

// Square returns a square of side 0.4 centred on the origin, made of two
// triangles.
func Square() Geometry {
	return Geometry{
		Vertices: []float32{
			-0.2, -0.2, 0.0, 1.0, 1.0, 0.0,
			0.2, -0.2, 0.0, 0.0, 1.0, 1.0,
			-0.2, 0.2, 0.0, 1.0, 0.0, 1.0,

			0.2, -0.2, 0.0, 0.0, 1.0, 1.0,
			0.2, 0.2, 0.0, 1.0, 0.5, 0.0,
			-0.2, 0.2, 0.0, 1.0, 0.0, 1.0,
		},
		Layout: PositionColour,
	}
}

// TexturedQuad returns an indexed quad that covers the whole viewport. The
// corners are coloured red, green, blue and yellow.
func TexturedQuad() Geometry {
	return Geometry{
		Vertices: []float32{
			-1.0, -1.0, 0.0, 0.0, 1.0, 0.0, 0.0,
			1.0, -1.0, 1.0, 0.0, 0.0, 1.0, 0.0,
			1.0, 1.0, 1.0, 1.0, 0.0, 0.0, 1.0,
			-1.0, 1.0, 0.0, 1.0, 1.0, 1.0, 0.0,
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
		Layout:  PositionTexColour,
	}
}
