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

// Package scene contains the two programs drawn by moderngl.
//
// The spin scene draws a triangle with an identity model matrix and a square
// that is animated by a model matrix rebuilt every frame from a translation,
// a rotation about the Z axis and a scale. The textured scene draws a quad
// that covers the viewport, textured from an image and mixed with the colour
// of each corner.
//
// Everything a scene needs to draw a frame is passed to it in the Frame type.
// Scenes do not read global state.
package scene
