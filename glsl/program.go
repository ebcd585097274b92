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

package glsl

import (
	"strings"

	"github.com/glsketch/moderngl/affine"
	"github.com/glsketch/moderngl/curated"
	"github.com/glsketch/moderngl/logger"
	"github.com/glsketch/moderngl/shaders"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Sentinel error patterns.
const (
	CompileError = "glsl: %s: compile %s shader: %s"
	LinkError    = "glsl: %s: link: %s"
)

// Program is a linked shader program.
type Program struct {
	name   string
	handle uint32

	// uniform locations are looked up once. missing uniforms are stored with
	// a location of -1, which GL silently ignores
	uniforms map[string]int32
}

// Compile and link a shader program from vertex and fragment source. The name
// is used in error and log messages.
func Compile(name string, vertSrc string, fragSrc string) (*Program, error) {
	vertHandle, err := compileShader(name, "vertex", gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := compileShader(name, "fragment", gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fragHandle)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vertHandle)
	gl.AttachShader(handle, fragHandle)
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteProgram(handle)
		return nil, curated.Errorf(LinkError, name, cleanLog(log))
	}

	// now that the shader program has linked we no longer need the
	// individual shaders. they are deleted by the deferred calls above
	gl.DetachShader(handle, vertHandle)
	gl.DetachShader(handle, fragHandle)

	return &Program{
		name:     name,
		handle:   handle,
		uniforms: make(map[string]int32),
	}, nil
}

// CompileFiles is like Compile but the source is taken from the named shader
// files. See shaders.Source() for how the dir argument is used.
func CompileFiles(name string, dir string, vertFile string, fragFile string) (*Program, error) {
	vertSrc, err := shaders.Source(dir, vertFile)
	if err != nil {
		return nil, curated.Errorf("glsl: %s: %v", name, err)
	}
	fragSrc, err := shaders.Source(dir, fragFile)
	if err != nil {
		return nil, curated.Errorf("glsl: %s: %v", name, err)
	}
	return Compile(name, vertSrc, fragSrc)
}

func compileShader(name string, kind string, typ uint32, source string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		// the log length includes the NULL character
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
		gl.DeleteShader(handle)
		return 0, curated.Errorf(CompileError, name, kind, cleanLog(log))
	}

	return handle, nil
}

// cleanLog removes the NULL padding and surrounding whitespace from an info
// log. An empty log is replaced with a placeholder.
func cleanLog(log string) string {
	log = strings.TrimSpace(strings.TrimRight(log, "\x00"))
	if log == "" {
		return "no information"
	}
	return log
}

// Name returns the name given to the program when it was compiled.
func (prg *Program) Name() string {
	return prg.name
}

// Use makes the program the current program.
func (prg *Program) Use() {
	gl.UseProgram(prg.handle)
}

// Uniform returns the location of the named uniform. A uniform that doesn't
// exist in the program is logged the first time it is requested.
func (prg *Program) Uniform(name string) int32 {
	if loc, ok := prg.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(prg.handle, gl.Str(name+"\x00"))
	if loc == -1 {
		logger.Logf(logger.Allow, "glsl", "%s: uniform not found: %s", prg.name, name)
	}
	prg.uniforms[name] = loc
	return loc
}

// Attrib returns the location of the named vertex attribute.
func (prg *Program) Attrib(name string) int32 {
	return gl.GetAttribLocation(prg.handle, gl.Str(name+"\x00"))
}

// SetMatrix uploads the matrix to the named mat4 uniform. The program must be
// in use.
func (prg *Program) SetMatrix(name string, m affine.Matrix) {
	mat := m.Mat4()
	gl.UniformMatrix4fv(prg.Uniform(name), 1, false, &mat[0])
}

// SetInt sets the named int or sampler uniform. The program must be in use.
func (prg *Program) SetInt(name string, v int32) {
	gl.Uniform1i(prg.Uniform(name), v)
}

// Destroy deletes the program. It is safe to call Destroy more than once.
func (prg *Program) Destroy() {
	if prg.handle != 0 {
		gl.DeleteProgram(prg.handle)
		prg.handle = 0
	}
	clear(prg.uniforms)
}
