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

// Package texture loads images from disk and uploads them to the GPU as 2D
// textures.
//
// Images are flipped vertically when they are loaded so that the first row
// of pixel data is the bottom row of the image, which is what GL expects.
// PNG, JPEG, GIF, BMP, TIFF and WebP files are supported.
package texture
