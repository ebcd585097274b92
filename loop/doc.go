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

// Package loop runs a scene until the window is closed or the context is
// cancelled. Every frame the loop processes window events, builds a
// scene.Frame from the clock and the framebuffer size, renders the scene and
// the overlay and then swaps buffers.
//
// The window and overlay are accessed through the Platform and Overlay
// interfaces. The concrete types are found in the platform and overlay
// packages.
//
// Time is measured by a Clock, which does not advance while paused. Shader
// programs are recompiled when the platform reports EventReloadShaders or
// when the Watcher field of Options reports a changed file. A failed
// recompilation is logged and the scene continues with the previous
// programs.
package loop
