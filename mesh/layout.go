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

import "github.com/glsketch/moderngl/curated"

// the size in bytes of a single vertex component
const floatSize = 4

// Sentinel error patterns.
const (
	EmptyLayout  = "mesh: layout has no attributes"
	NoVertices   = "mesh: no vertex data"
	VertexCount  = "mesh: vertex data of %d floats is not a multiple of the stride (%d)"
	IndexRange   = "mesh: index %d is out of range for %d vertices"
	BadAttribute = "mesh: attribute %d has invalid size %d"
)

// Attribute is a single vertex attribute of float32 components.
type Attribute struct {
	// the attribute location in the vertex shader
	Index uint32

	// number of components. between 1 and 4
	Size int32
}

// Layout describes interleaved vertex data. Attributes are in the order they
// appear in each vertex.
type Layout struct {
	Attributes []Attribute
}

// Stride returns the number of float32 values in a single vertex.
func (l Layout) Stride() int32 {
	var s int32
	for _, a := range l.Attributes {
		s += a.Size
	}
	return s
}

// Offset returns the number of float32 values in a vertex before attribute i.
func (l Layout) Offset(i int) int32 {
	var o int32
	for _, a := range l.Attributes[:i] {
		o += a.Size
	}
	return o
}

// Validate checks that the vertex and index data is consistent with the
// layout. Returns the number of vertices.
func Validate(vertices []float32, indices []uint32, layout Layout) (int, error) {
	if len(layout.Attributes) == 0 {
		return 0, curated.Errorf(EmptyLayout)
	}
	for i, a := range layout.Attributes {
		if a.Size < 1 || a.Size > 4 {
			return 0, curated.Errorf(BadAttribute, i, a.Size)
		}
	}

	if len(vertices) == 0 {
		return 0, curated.Errorf(NoVertices)
	}

	stride := int(layout.Stride())
	if len(vertices)%stride != 0 {
		return 0, curated.Errorf(VertexCount, len(vertices), stride)
	}

	count := len(vertices) / stride
	for _, idx := range indices {
		if int(idx) >= count {
			return 0, curated.Errorf(IndexRange, idx, count)
		}
	}

	return count, nil
}
