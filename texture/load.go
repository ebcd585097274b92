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
	"image/color"
	"image/draw"
	"io"
	"os"

	// image formats supported by Load() and Decode()
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/anthonynsimon/bild/transform"
	"github.com/glsketch/moderngl/curated"
	"github.com/glsketch/moderngl/logger"
)

// Sentinel error patterns.
const (
	LoadError   = "texture: load: %v"
	DecodeError = "texture: decode: %v"
	SizeError   = "texture: invalid image size: %dx%d"
	HeightError = "texture: invalid window height: %d"
)

// MaxSize is the largest width or height of a loaded image. Larger images are
// scaled down, preserving the aspect ratio.
const MaxSize = 4096

// Load an image from a file. See Decode() for details.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	logger.Logf(logger.Allow, "texture", "loaded %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return img, nil
}

// Decode an image and convert it to RGBA. The image is flipped vertically.
func Decode(r io.Reader) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, err)
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return nil, curated.Errorf(SizeError, w, h)
	}

	fw, fh := fit(w, h, MaxSize)
	if fw != w || fh != h {
		logger.Logf(logger.Allow, "texture", "scaling image from %dx%d to %dx%d", w, h, fw, fh)
		return transform.FlipV(transform.Resize(src, fw, fh, transform.Linear)), nil
	}

	return transform.FlipV(src), nil
}

// fit returns the largest size with the aspect ratio of w and h in which
// neither dimension is larger than limit.
func fit(w int, h int, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, max(1, h*limit/w)
	}
	return max(1, w*limit/h), limit
}

// Checkerboard returns an image of alternating squares. It is used when no
// image file has been specified.
func Checkerboard(w int, h int, cell int, a color.RGBA, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			draw.Draw(img, image.Rect(x, y, x+cell, y+cell), &image.Uniform{C: c}, image.Point{}, draw.Src)
		}
	}
	return img
}
