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

// Package platform creates the window and OpenGL context with SDL and
// translates SDL events into the small set of events the render loop cares
// about.
//
// SDL and GL functions must only be called from the main thread. The
// NewPlatform() function locks the calling goroutine to its OS thread but the
// main package should also lock the main thread in an init() function.
package platform
