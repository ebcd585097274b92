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

// Package mesh uploads interleaved float32 vertex data to the GPU and draws
// it. A Layout describes how each vertex is split into attributes. Vertex
// data can be drawn directly or through an index buffer.
//
// The package also holds the hard-coded geometry drawn by the scenes.
package mesh
