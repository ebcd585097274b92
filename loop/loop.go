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

package loop

import (
	"context"
	"image/color"
	"strings"

	"github.com/glsketch/moderngl/affine"
	"github.com/glsketch/moderngl/curated"
	"github.com/glsketch/moderngl/logger"
	"github.com/glsketch/moderngl/overlay"
	"github.com/glsketch/moderngl/performance"
	"github.com/glsketch/moderngl/platform"
	"github.com/glsketch/moderngl/scene"
)

// SetupError is returned by Run() when the scene cannot be set up.
const SetupError = "loop: %s: %v"

// Platform is the window used by the render loop. Implemented by
// platform.Platform.
type Platform interface {
	ProcessEvents() []platform.Event
	ShouldClose() bool
	Elapsed() float64
	SetSize(w int, h int)
	FramebufferSize() (int32, int32)
	Swap()
}

// Overlay is drawn on top of the scene when visible. Implemented by
// overlay.Overlay.
type Overlay interface {
	Visible() bool
	SetVisible(bool)
	Render(overlay.Status, *overlay.Controls)
}

// Watcher reports shader files that have changed since the previous call to
// Drain(). Implemented by glsl.Watcher.
type Watcher interface {
	Drain() []string
}

// Limiter blocks until the next frame should start. The rate can be changed
// through the overlay. Implemented by limiter.Limiter.
type Limiter interface {
	Wait()
	Rate() int
	SetLimit(framesPerSecond int) error
}

// Options for the Run() function. The zero value is usable.
type Options struct {
	// the colour the framebuffer is cleared to
	Clear color.RGBA

	// initial state of the mix and pause controls
	Mix    bool
	Paused bool

	// directory given to Scene.ReloadShaders(). if empty the embedded
	// shaders are used
	ShaderDir string

	// frame rate is logged every FPSInterval seconds. no logging if zero
	FPSInterval float64

	// optional collaborators. nil values are ignored
	Overlay Overlay
	Watcher Watcher
	Limiter Limiter
}

// Run the scene until the platform should close or the context is
// cancelled. The scene is set up before the first frame and destroyed
// before Run() returns. Returns nil when the loop ends normally.
func Run(ctx context.Context, plt Platform, scn scene.Scene, opts Options) error {
	// the window is sized once, before any GL resources are created
	if r, ok := scn.(scene.Resizer); ok {
		if w, h, ok := r.WindowSize(); ok {
			plt.SetSize(w, h)
		}
	}

	if err := scn.Setup(); err != nil {
		return curated.Errorf(SetupError, scn.Name(), err)
	}
	defer scn.Destroy()

	clk := NewClock(plt.Elapsed)
	clk.Pause(opts.Paused)

	var fps *performance.FPS
	if opts.FPSInterval > 0 {
		fps = performance.NewFPS(opts.FPSInterval)
	}

	ctl := overlay.Controls{
		Paused: opts.Paused,
		Mix:    opts.Mix,
	}
	if opts.Limiter != nil {
		ctl.FPSCap = int32(opts.Limiter.Rate())
	}

	logger.Logf(logger.Allow, "loop", "running %s", scn.Name())

	for !plt.ShouldClose() {
		select {
		case <-ctx.Done():
			logger.Logf(logger.Allow, "loop", "%s: %v", scn.Name(), context.Cause(ctx))
			return nil
		default:
		}

		reload := false

		for _, ev := range plt.ProcessEvents() {
			switch ev {
			case platform.EventTogglePause:
				ctl.Paused = !ctl.Paused
			case platform.EventToggleMix:
				ctl.Mix = !ctl.Mix
			case platform.EventToggleOverlay:
				if opts.Overlay != nil {
					opts.Overlay.SetVisible(!opts.Overlay.Visible())
				}
			case platform.EventReloadShaders:
				reload = true
			}
		}

		if plt.ShouldClose() {
			break // for loop
		}

		if opts.Watcher != nil {
			if changed := opts.Watcher.Drain(); len(changed) > 0 {
				logger.Logf(logger.Allow, "loop", "changed: %s", strings.Join(changed, ", "))
				reload = true
			}
		}

		if reload {
			reloadShaders(scn, opts.ShaderDir)
		}

		if ctl.Paused != clk.Paused() {
			clk.Pause(ctl.Paused)
			logger.Logf(logger.Allow, "loop", "%s: paused: %v", scn.Name(), ctl.Paused)
		}

		w, h := plt.FramebufferSize()
		scn.Render(scene.Frame{
			Elapsed:    clk.Now(),
			Projection: affine.Identity(),
			Viewport:   [4]int32{0, 0, w, h},
			Clear:      opts.Clear,
			Mix:        ctl.Mix,
		})

		if fps != nil && fps.Tick(plt.Elapsed()) {
			logger.Logf(logger.Allow, "loop", "%s: %.1f fps", scn.Name(), fps.Rate())
		}

		if opts.Overlay != nil && opts.Overlay.Visible() {
			opts.Overlay.Render(status(scn, clk, fps), &ctl)
		}

		plt.Swap()

		if opts.Limiter != nil {
			updateLimit(opts.Limiter, &ctl)
			opts.Limiter.Wait()
		}
	}

	return nil
}

func reloadShaders(scn scene.Scene, dir string) {
	err := scn.ReloadShaders(dir)
	if err != nil {
		logger.Log(logger.Allow, "loop", err)
		return
	}
	logger.Logf(logger.Allow, "loop", "%s: shaders reloaded", scn.Name())
}

// updateLimit changes the limiter rate if the fps cap control has changed. An
// invalid rate is logged and the control reverts to the current rate.
func updateLimit(lim Limiter, ctl *overlay.Controls) {
	if int(ctl.FPSCap) == lim.Rate() {
		return
	}
	err := lim.SetLimit(int(ctl.FPSCap))
	if err != nil {
		logger.Log(logger.Allow, "loop", err)
		ctl.FPSCap = int32(lim.Rate())
		return
	}
	logger.Logf(logger.Allow, "loop", "fps cap: %d", lim.Rate())
}

func status(scn scene.Scene, clk *Clock, fps *performance.FPS) overlay.Status {
	st := overlay.Status{
		Scene:   scn.Name(),
		Elapsed: clk.Now(),
	}
	if fps != nil {
		st.FPS = fps.Rate()
	}
	if m, ok := scn.(scene.Modeller); ok {
		st.Model = m.Model()
		st.HasModel = true
	}
	return st
}
