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

// Package shaders contains the GLSL source for every shader program used by
// moderngl. The source is embedded in the binary but can be overridden by
// placing a file with the same name in a shader directory.
package shaders

import (
	"embed"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/glsketch/moderngl/curated"
)

// Names of the embedded shader files.
const (
	SpinVert       = "spin.vert"
	SpinFrag       = "spin.frag"
	SpinSquareFrag = "spin_square.frag"
	TexturedVert   = "textured.vert"
	TexturedFrag   = "textured.frag"
	GUIVert        = "gui.vert"
	GUIFrag        = "gui.frag"
)

// UnknownShader is returned by Source() when the named shader is neither in
// the shader directory nor embedded.
const UnknownShader = "shaders: unknown shader: %s"

//go:embed *.vert *.frag
var embedded embed.FS

// Source returns the GLSL source for the named shader. If dir is not empty
// and contains a file of that name then that file is used.
func Source(dir string, name string) (string, error) {
	if dir != "" {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", curated.Errorf("shaders: %v", err)
		}
	}

	b, err := embedded.ReadFile(name)
	if err != nil {
		return "", curated.Errorf(UnknownShader, name)
	}
	return string(b), nil
}

// IsShaderFile returns true if the filename has an extension used by shader
// source files.
func IsShaderFile(name string) bool {
	switch filepath.Ext(name) {
	case ".vert", ".frag":
		return true
	}
	return false
}
