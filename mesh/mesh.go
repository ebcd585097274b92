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

import (
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Mesh is vertex data that has been uploaded to the GPU.
type Mesh struct {
	vao uint32
	vbo uint32
	ebo uint32

	// number of vertices to draw. the number of indices if the mesh is
	// indexed
	count int32
}

// New uploads the vertex data and, if indices is not empty, the index data.
// The data is validated with Validate() before anything is created.
func New(vertices []float32, indices []uint32, layout Layout) (*Mesh, error) {
	n, err := Validate(vertices, indices, layout)
	if err != nil {
		return nil, err
	}

	msh := &Mesh{
		count: int32(n),
	}

	gl.GenVertexArrays(1, &msh.vao)
	gl.BindVertexArray(msh.vao)

	gl.GenBuffers(1, &msh.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, msh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	if len(indices) > 0 {
		gl.GenBuffers(1, &msh.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, msh.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
		msh.count = int32(len(indices))
	}

	stride := layout.Stride() * floatSize
	for i, a := range layout.Attributes {
		gl.EnableVertexAttribArray(a.Index)
		gl.VertexAttribPointer(a.Index, a.Size, gl.FLOAT, false, stride, gl.PtrOffset(int(layout.Offset(i)*floatSize)))
	}

	// the element buffer binding is part of the VAO state so the VAO must be
	// unbound first
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)

	return msh, nil
}

// NewGeometry is a convenience function for New().
func NewGeometry(g Geometry) (*Mesh, error) {
	return New(g.Vertices, g.Indices, g.Layout)
}

// Draw the mesh as triangles with the current shader program.
func (msh *Mesh) Draw() {
	gl.BindVertexArray(msh.vao)
	if msh.ebo != 0 {
		gl.DrawElements(gl.TRIANGLES, msh.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, msh.count)
	}
	gl.BindVertexArray(0)
}

// Destroy deletes the GPU objects. It is safe to call Destroy more than once.
func (msh *Mesh) Destroy() {
	if msh.ebo != 0 {
		gl.DeleteBuffers(1, &msh.ebo)
		msh.ebo = 0
	}
	if msh.vbo != 0 {
		gl.DeleteBuffers(1, &msh.vbo)
		msh.vbo = 0
	}
	if msh.vao != 0 {
		gl.DeleteVertexArrays(1, &msh.vao)
		msh.vao = 0
	}
}
