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

package scene_test

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/glsketch/moderngl/affine"
	"github.com/glsketch/moderngl/prefs"
	"github.com/glsketch/moderngl/scene"
	"github.com/glsketch/moderngl/test"
)

func newPreferences(t *testing.T) (*scene.Preferences, string) {
	t.Helper()
	fn := filepath.Join(t.TempDir(), scene.PrefsFile)
	p, err := scene.NewPreferences(fn)
	test.DemandSuccess(t, err)
	return p, fn
}

func TestPreferencesDefaults(t *testing.T) {
	p, _ := newPreferences(t)

	test.ExpectEquality(t, p.WindowWidth.Get().(int), 800)
	test.ExpectEquality(t, p.WindowHeight.Get().(int), 600)
	test.ExpectEquality(t, p.VSync.Get().(bool), true)
	test.ExpectEquality(t, p.FPSCap.Get().(int), 60)
	test.ExpectEquality(t, p.TextureMix.Get().(bool), true)
	test.ExpectEquality(t, p.TextureHeight.Get().(int), 600)
	test.ExpectEquality(t, p.Animation(), scene.DefaultAnimation())
	test.ExpectEquality(t, p.SpinClearColour(), color.RGBA{R: 0x4c, G: 0x4c, B: 0x4c, A: 0xff})
	test.ExpectEquality(t, p.TextureClearColour(), color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
}

func TestPreferencesValidation(t *testing.T) {
	p, _ := newPreferences(t)

	test.ExpectFailure(t, p.Order.Set("XYZ"))
	test.ExpectEquality(t, p.Order.String(), "TRS")
	test.ExpectSuccess(t, p.Order.Set("rts"))
	test.ExpectEquality(t, p.Animation().Order, affine.RTS)

	test.ExpectFailure(t, p.SpinClear.Set("notacolour"))
	test.ExpectSuccess(t, p.SpinClear.Set("navy"))
	test.ExpectEquality(t, p.SpinClearColour(), color.RGBA{B: 0x80, A: 0xff})

	test.ExpectFailure(t, p.WindowWidth.Set(0))
	test.ExpectFailure(t, p.TextureHeight.Set(-1))
	test.ExpectFailure(t, p.FPSCap.Set(-1))
	test.ExpectSuccess(t, p.FPSCap.Set(0))
	test.ExpectEquality(t, p.WindowWidth.Get().(int), 800)
}

func TestPreferencesLoad(t *testing.T) {
	p, fn := newPreferences(t)

	data := []byte("spin.order: SRT\nspin.speed: 2.5\nspin.scale.x: 0.5\nwindow.vsync: false\n")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	test.DemandSuccess(t, p.Load())

	a := p.Animation()
	test.ExpectEquality(t, a.Order, affine.SRT)
	test.ExpectEquality(t, a.Speed, float32(2.5))
	test.ExpectEquality(t, a.Scale, [3]float32{0.5, 0.7, 1.0})
	test.ExpectEquality(t, p.VSync.Get().(bool), false)

	// values rejected by a hook are an error
	test.DemandSuccess(t, os.WriteFile(fn, []byte("window.height: 0\n"), 0o600))
	test.ExpectFailure(t, p.Load())
}

func TestPreferencesCommandLine(t *testing.T) {
	p, _ := newPreferences(t)

	prefs.PushCommandLineStack("texture.mix::false; spin.translate.y::-0.25")
	test.DemandSuccess(t, p.Load())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, p.TextureMix.Get().(bool), false)
	test.ExpectEquality(t, p.Animation().Translate, [3]float32{0.3, -0.25, 0.0})
}

func TestPreferencesString(t *testing.T) {
	p, _ := newPreferences(t)
	s := p.String()
	test.ExpectInequality(t, s, "")
}
