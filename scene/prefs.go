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
	"fmt"
	"image/color"

	"github.com/glsketch/moderngl/affine"
	"github.com/glsketch/moderngl/prefs"
)

// PrefsFile is the name of the preferences file in the resource directory.
const PrefsFile = "preferences"

// Preferences for both scenes and the window they are drawn in.
type Preferences struct {
	dsk *prefs.Disk

	WindowWidth  prefs.Int
	WindowHeight prefs.Int
	VSync        prefs.Bool
	ShaderDir    prefs.String

	// frame rate limit used when vsync is off. zero for no limit
	FPSCap prefs.Int

	SpinClear  prefs.String
	ScaleX     prefs.Float
	ScaleY     prefs.Float
	ScaleZ     prefs.Float
	TranslateX prefs.Float
	TranslateY prefs.Float
	TranslateZ prefs.Float
	Speed      prefs.Float
	Order      prefs.String

	TextureClear  prefs.String
	TextureMix    prefs.Bool
	TexturePath   prefs.String
	TextureHeight prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	windowWidth   = 800
	windowHeight  = 600
	vsync         = true
	fpsCap        = 60
	shaderDir     = ""
	spinClear     = "#4c4c4c"
	scaleX        = 0.7
	scaleY        = 0.7
	scaleZ        = 1.0
	translateX    = 0.3
	translateY    = 0.0
	translateZ    = 0.0
	speed         = 1.0
	order         = "TRS"
	textureClear  = "#333333"
	textureMix    = true
	texturePath   = ""
	textureHeight = 600
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are not loaded from the file until Load() is
// called.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}

	positive := func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("must be greater than zero: %d", v.(int))
		}
		return nil
	}
	p.WindowWidth.SetHookPre(positive)
	p.WindowHeight.SetHookPre(positive)
	p.TextureHeight.SetHookPre(positive)

	p.FPSCap.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("must not be negative: %d", v.(int))
		}
		return nil
	})

	colour := func(v prefs.Value) error {
		_, err := ParseColour(v.(string))
		return err
	}
	p.SpinClear.SetHookPre(colour)
	p.TextureClear.SetHookPre(colour)

	p.Order.SetHookPre(func(v prefs.Value) error {
		_, err := affine.ParseOrder(v.(string))
		return err
	})

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		p   prefs.Pref
	}{
		{"window.width", &p.WindowWidth},
		{"window.height", &p.WindowHeight},
		{"window.vsync", &p.VSync},
		{"window.fpscap", &p.FPSCap},
		{"shaders.dir", &p.ShaderDir},
		{"spin.clear", &p.SpinClear},
		{"spin.scale.x", &p.ScaleX},
		{"spin.scale.y", &p.ScaleY},
		{"spin.scale.z", &p.ScaleZ},
		{"spin.translate.x", &p.TranslateX},
		{"spin.translate.y", &p.TranslateY},
		{"spin.translate.z", &p.TranslateZ},
		{"spin.speed", &p.Speed},
		{"spin.order", &p.Order},
		{"texture.clear", &p.TextureClear},
		{"texture.mix", &p.TextureMix},
		{"texture.path", &p.TexturePath},
		{"texture.height", &p.TextureHeight},
	} {
		err = p.dsk.Add(e.key, e.p)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.WindowWidth.Set(windowWidth)
	_ = p.WindowHeight.Set(windowHeight)
	_ = p.VSync.Set(vsync)
	_ = p.FPSCap.Set(fpsCap)
	_ = p.ShaderDir.Set(shaderDir)
	_ = p.SpinClear.Set(spinClear)
	_ = p.ScaleX.Set(scaleX)
	_ = p.ScaleY.Set(scaleY)
	_ = p.ScaleZ.Set(scaleZ)
	_ = p.TranslateX.Set(translateX)
	_ = p.TranslateY.Set(translateY)
	_ = p.TranslateZ.Set(translateZ)
	_ = p.Speed.Set(speed)
	_ = p.Order.Set(order)
	_ = p.TextureClear.Set(textureClear)
	_ = p.TextureMix.Set(textureMix)
	_ = p.TexturePath.Set(texturePath)
	_ = p.TextureHeight.Set(textureHeight)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Path returns the location of the preferences file.
func (p *Preferences) Path() string {
	return p.dsk.Path()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Animation returns the animation described by the preferences.
func (p *Preferences) Animation() Animation {
	// the order has been validated by the hook so the error can be ignored
	o, _ := affine.ParseOrder(p.Order.String())
	return Animation{
		Scale:     [3]float32{p.ScaleX.Float32(), p.ScaleY.Float32(), p.ScaleZ.Float32()},
		Translate: [3]float32{p.TranslateX.Float32(), p.TranslateY.Float32(), p.TranslateZ.Float32()},
		Speed:     p.Speed.Float32(),
		Order:     o,
	}
}

// SpinClearColour returns the clear colour of the spin scene.
func (p *Preferences) SpinClearColour() color.RGBA {
	c, _ := ParseColour(p.SpinClear.String())
	return c
}

// TextureClearColour returns the clear colour of the textured scene.
func (p *Preferences) TextureClearColour() color.RGBA {
	c, _ := ParseColour(p.TextureClear.String())
	return c
}
