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

// Package glsl compiles and links GLSL shader programs and gives access to
// their uniforms. Errors from the GL shader compiler and linker are returned
// as curated errors and never cause a panic.
//
// The Watcher type monitors a directory of shader source files so that
// programs can be recompiled while the application is running. A program
// that fails to recompile should be discarded and the previous program kept.
//
// All functions that call into GL must be called from the thread that owns
// the GL context.
package glsl
