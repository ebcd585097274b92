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
	"image"
	"image/color"

	"github.com/glsketch/moderngl/glsl"
	"github.com/glsketch/moderngl/logger"
	"github.com/glsketch/moderngl/mesh"
	"github.com/glsketch/moderngl/shaders"
	"github.com/glsketch/moderngl/texture"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// TexturedConfig configures the textured scene.
type TexturedConfig struct {
	// image file to use as the texture. a checkerboard is generated if the
	// path is empty
	ImagePath string

	// height of the window. the width is chosen to match the aspect ratio of
	// the image
	TargetHeight int

	// directory containing shader files that override the embedded source.
	// can be empty
	ShaderDir string
}

// size and colours of the generated checkerboard
const (
	checkerSize = 512
	checkerCell = 64
)

var (
	checkerA = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	checkerB = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Textured draws a quad covering the viewport with an image texture.
type Textured struct {
	cfg TexturedConfig

	// the image is released once it has been uploaded
	img *image.RGBA

	width   int
	height  int
	resized bool

	quad *mesh.Mesh
	prg  *glsl.Program
	tex  *texture.Texture
}

// NewTextured loads the image for the textured scene. No GPU resources are
// created until Setup() is called.
func NewTextured(cfg TexturedConfig) (*Textured, error) {
	scn := &Textured{
		cfg: cfg,
	}

	if cfg.ImagePath == "" {
		logger.Log(logger.Allow, "textured", "no image specified. using checkerboard")
		scn.img = texture.Checkerboard(checkerSize, checkerSize, checkerCell, checkerA, checkerB)
	} else {
		var err error
		scn.img, err = texture.Load(cfg.ImagePath)
		if err != nil {
			return nil, err
		}
	}

	var err error
	scn.width, scn.height, err = texture.AspectSize(scn.img.Bounds().Dx(), scn.img.Bounds().Dy(), cfg.TargetHeight)
	if err != nil {
		return nil, err
	}

	return scn, nil
}

// Name implements the Scene interface.
func (scn *Textured) Name() string {
	return "textured"
}

// WindowSize implements the Resizer interface. The window is resized once to
// match the aspect ratio of the image.
func (scn *Textured) WindowSize() (int, int, bool) {
	if scn.resized {
		return scn.width, scn.height, false
	}
	scn.resized = true
	return scn.width, scn.height, true
}

// Setup implements the Scene interface.
func (scn *Textured) Setup() error {
	err := scn.ReloadShaders(scn.cfg.ShaderDir)
	if err != nil {
		return err
	}

	scn.quad, err = mesh.NewGeometry(mesh.TexturedQuad())
	if err != nil {
		scn.Destroy()
		return err
	}

	scn.tex = texture.Upload(scn.img)
	scn.img = nil

	return nil
}

// ReloadShaders implements the Scene interface.
func (scn *Textured) ReloadShaders(dir string) error {
	prg, err := glsl.CompileFiles("textured", dir, shaders.TexturedVert, shaders.TexturedFrag)
	if err != nil {
		return err
	}
	if scn.prg != nil {
		scn.prg.Destroy()
	}
	scn.prg = prg
	return nil
}

// Render implements the Scene interface.
func (scn *Textured) Render(f Frame) {
	f.prepare()

	scn.prg.Use()

	scn.tex.Bind(0)
	scn.prg.SetInt("texture1", 0)

	// 1 mixes texture and colour. 0 is colour only
	if f.Mix {
		scn.prg.SetInt("controle", 1)
	} else {
		scn.prg.SetInt("controle", 0)
	}

	scn.quad.Draw()

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
}

// Destroy implements the Scene interface.
func (scn *Textured) Destroy() {
	if scn.prg != nil {
		scn.prg.Destroy()
		scn.prg = nil
	}
	if scn.quad != nil {
		scn.quad.Destroy()
		scn.quad = nil
	}
	if scn.tex != nil {
		scn.tex.Destroy()
		scn.tex = nil
	}
}
