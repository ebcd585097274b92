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

import "github.com/glsketch/moderngl/curated"

// AspectSize returns a window size with a height of targetHeight and a width
// that preserves the aspect ratio of an image of size w by h. The width is
// truncated to a whole number.
func AspectSize(w int, h int, targetHeight int) (int, int, error) {
	if w <= 0 || h <= 0 {
		return 0, 0, curated.Errorf(SizeError, w, h)
	}
	if targetHeight <= 0 {
		return 0, 0, curated.Errorf(HeightError, targetHeight)
	}
	aspect := float64(w) / float64(h)
	return int(float64(targetHeight) * aspect), targetHeight, nil
}
