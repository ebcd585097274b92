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
	"encoding/hex"
	"image/color"
	"strings"

	"github.com/glsketch/moderngl/curated"
	"golang.org/x/image/colornames"
)

// ColourError is returned by ParseColour() when the string is not a colour.
const ColourError = "scene: invalid colour: %s"

// ParseColour returns the colour described by the string. The string can be a
// hex value of the form #rrggbb or #rrggbbaa, or an SVG colour name.
func ParseColour(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}

	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, curated.Errorf(ColourError, s)
	}

	b, err := hex.DecodeString(s[1:])
	if err != nil {
		return color.RGBA{}, curated.Errorf(ColourError, s)
	}

	switch len(b) {
	case 3:
		return color.RGBA{R: b[0], G: b[1], B: b[2], A: 255}, nil
	case 4:
		return color.RGBA{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
	}

	return color.RGBA{}, curated.Errorf(ColourError, s)
}
