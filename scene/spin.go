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

package scene

import (
	"github.com/glsketch/moderngl/affine"
	"github.com/glsketch/moderngl/glsl"
	"github.com/glsketch/moderngl/mesh"
	"github.com/glsketch/moderngl/shaders"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// SpinConfig configures the spin scene.
type SpinConfig struct {
	Animation Animation

	// directory containing shader files that override the embedded source.
	// can be empty
	ShaderDir string
}

// Spin draws a colour interpolated triangle and an animated square.
type Spin struct {
	cfg SpinConfig

	triangle *mesh.Mesh
	square   *mesh.Mesh

	// both programs share the same vertex shader
	colour    *glsl.Program
	squarePrg *glsl.Program

	model affine.Matrix
}

// NewSpin is the preferred method of initialisation for the Spin type.
func NewSpin(cfg SpinConfig) *Spin {
	return &Spin{
		cfg:   cfg,
		model: affine.Identity(),
	}
}

// Name implements the Scene interface.
func (scn *Spin) Name() string {
	return "spin"
}

// Setup implements the Scene interface.
func (scn *Spin) Setup() error {
	err := scn.ReloadShaders(scn.cfg.ShaderDir)
	if err != nil {
		return err
	}

	scn.triangle, err = mesh.NewGeometry(mesh.Triangle())
	if err != nil {
		scn.Destroy()
		return err
	}

	scn.square, err = mesh.NewGeometry(mesh.Square())
	if err != nil {
		scn.Destroy()
		return err
	}

	return nil
}

// ReloadShaders implements the Scene interface.
func (scn *Spin) ReloadShaders(dir string) error {
	colour, err := glsl.CompileFiles("spin", dir, shaders.SpinVert, shaders.SpinFrag)
	if err != nil {
		return err
	}

	square, err := glsl.CompileFiles("spin square", dir, shaders.SpinVert, shaders.SpinSquareFrag)
	if err != nil {
		colour.Destroy()
		return err
	}

	scn.destroyPrograms()
	scn.colour = colour
	scn.squarePrg = square

	return nil
}

// Render implements the Scene interface.
func (scn *Spin) Render(f Frame) {
	f.prepare()

	scn.colour.Use()
	scn.colour.SetMatrix("uModel", f.Projection)
	scn.triangle.Draw()

	scn.model = scn.cfg.Animation.ModelAt(f.Elapsed)

	scn.squarePrg.Use()
	scn.squarePrg.SetMatrix("uModel", affine.Compose(f.Projection, scn.model))
	scn.square.Draw()

	gl.UseProgram(0)
}

// Model implements the Modeller interface.
func (scn *Spin) Model() affine.Matrix {
	return scn.model
}

// Destroy implements the Scene interface.
func (scn *Spin) Destroy() {
	scn.destroyPrograms()
	if scn.triangle != nil {
		scn.triangle.Destroy()
		scn.triangle = nil
	}
	if scn.square != nil {
		scn.square.Destroy()
		scn.square = nil
	}
}

func (scn *Spin) destroyPrograms() {
	if scn.colour != nil {
		scn.colour.Destroy()
		scn.colour = nil
	}
	if scn.squarePrg != nil {
		scn.squarePrg.Destroy()
		scn.squarePrg = nil
	}
}
