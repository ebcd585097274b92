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

package texture

import (
	"image"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// Texture is an image that has been uploaded to the GPU.
type Texture struct {
	id     uint32
	width  int
	height int
}

// Upload the image as a 2D texture. Texture coordinates are clamped to the
// edge, filtering is linear and mipmaps are generated.
func Upload(img *image.RGBA) *Texture {
	tex := &Texture{
		width:  img.Bounds().Dx(),
		height: img.Bounds().Dy(),
	}

	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// the stride of the image might be wider than the visible width
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(tex.width), int32(tex.height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE,
		gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

// Size returns the width and height of the texture.
func (tex *Texture) Size() (int, int) {
	return tex.width, tex.height
}

// Bind the texture to the texture unit.
func (tex *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
}

// Destroy deletes the texture. It is safe to call Destroy more than once.
func (tex *Texture) Destroy() {
	if tex.id != 0 {
		gl.DeleteTextures(1, &tex.id)
		tex.id = 0
	}
}
