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

package main

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/glsketch/moderngl/glsl"
	"github.com/glsketch/moderngl/logger"
	"github.com/glsketch/moderngl/loop"
	"github.com/glsketch/moderngl/modalflag"
	"github.com/glsketch/moderngl/overlay"
	"github.com/glsketch/moderngl/paths"
	"github.com/glsketch/moderngl/performance"
	"github.com/glsketch/moderngl/performance/limiter"
	"github.com/glsketch/moderngl/platform"
	"github.com/glsketch/moderngl/prefs"
	"github.com/glsketch/moderngl/scene"
	"github.com/glsketch/moderngl/statsview"
	"github.com/glsketch/moderngl/version"
)

// SDL and GL calls must all be made from the main thread.
func init() {
	runtime.LockOSThread()
}

const keysHelp = `Keys:
  Esc  quit
  P    pause the animation
  T    toggle texture and colour mixing
  O    toggle the overlay
  R    reload shaders`

func main() {
	err := launch(os.Stdout, os.Args[1:])
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}
}

// sceneSetup is everything required to run a scene once the command line
// has been parsed.
type sceneSetup struct {
	title string
	scn   scene.Scene
	clear color.RGBA
}

func launch(output io.Writer, args []string) error {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("SPIN", "TEXTURE")
	md.AdditionalHelp(keysHelp)

	prefsOverride := md.AddString("prefs", "", "preferences for this run only: \"key::value; key::value\"")
	showOverlay := md.AddBool("overlay", false, "show the overlay at startup")
	paused := md.AddBool("paused", false, "start with the animation paused")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server on %s", statsview.Address))
	profile := md.AddString("profile", "none", "write profiles: cpu, mem (comma separated)")
	showVersion := md.AddBool("version", false, "print version and exit")
	showPrefs := md.AddBool("showprefs", false, "print preferences and exit")
	savePrefs := md.AddBool("saveprefs", false, "save preferences, including -prefs values, before running")

	switch p, err := md.Parse(); p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	if *showVersion {
		v, r := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
		return nil
	}

	if *log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview: not available in this build. build with -tags statsview")
		}
		statsview.Launch(output)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused: %s", unused)
			}
		}()
	}

	p, err := scene.NewPreferences(paths.ResourcePath("", scene.PrefsFile))
	if err != nil {
		return err
	}
	err = p.Load()
	if err != nil {
		return err
	}

	if *savePrefs {
		err = p.Save()
		if err != nil {
			return err
		}
		logger.Logf(logger.Allow, "prefs", "saved to %s", p.Path())
	}

	if *showPrefs {
		fmt.Fprintf(output, "%s\n%s", p.Path(), p)
		return nil
	}

	v, r := version.Version()
	logger.Logf(logger.Allow, version.ApplicationName, "version %s (%s)", v, r)

	var setup *sceneSetup

	switch md.Mode() {
	case "SPIN":
		setup, err = spin(md, p)
	case "TEXTURE":
		setup, err = textured(md, p)
	}
	if err != nil {
		return fmt.Errorf("%s mode: %w", md, err)
	}
	if setup == nil {
		return nil
	}

	return performance.RunProfiler(prof, setup.scn.Name(), func() error {
		return run(setup, p, loop.Options{
			Clear:       setup.clear,
			Mix:         p.TextureMix.Get().(bool),
			Paused:      *paused,
			ShaderDir:   p.ShaderDir.String(),
			FPSInterval: 5.0,
		}, *showOverlay)
	})
}

func spin(md *modalflag.Modes, p *scene.Preferences) (*sceneSetup, error) {
	md.NewMode()

	switch r, err := md.Parse(); r {
	case modalflag.ParseHelp:
		return nil, nil
	case modalflag.ParseError:
		return nil, err
	}

	if len(md.RemainingArgs()) > 0 {
		return nil, fmt.Errorf("too many arguments")
	}

	return &sceneSetup{
		title: version.Title("spin"),
		scn: scene.NewSpin(scene.SpinConfig{
			Animation: p.Animation(),
			ShaderDir: p.ShaderDir.String(),
		}),
		clear: p.SpinClearColour(),
	}, nil
}

func textured(md *modalflag.Modes, p *scene.Preferences) (*sceneSetup, error) {
	md.NewMode()

	height := md.AddInt("height", p.TextureHeight.Get().(int), "window height. the width follows the image")

	switch r, err := md.Parse(); r {
	case modalflag.ParseHelp:
		return nil, nil
	case modalflag.ParseError:
		return nil, err
	}

	// the preference hook rejects heights that are not positive
	err := p.TextureHeight.Set(*height)
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}

	imagePath := p.TexturePath.String()

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		imagePath = md.GetArg(0)
	default:
		return nil, fmt.Errorf("too many arguments")
	}

	scn, err := scene.NewTextured(scene.TexturedConfig{
		ImagePath:    imagePath,
		TargetHeight: p.TextureHeight.Get().(int),
		ShaderDir:    p.ShaderDir.String(),
	})
	if err != nil {
		return nil, err
	}

	return &sceneSetup{
		title: version.Title("texture"),
		scn:   scn,
		clear: p.TextureClearColour(),
	}, nil
}

func run(setup *sceneSetup, p *scene.Preferences, opts loop.Options, showOverlay bool) error {
	vsync := p.VSync.Get().(bool)

	plt, err := platform.NewPlatform(setup.title, p.WindowWidth.Get().(int), p.WindowHeight.Get().(int), vsync)
	if err != nil {
		return err
	}
	defer plt.Destroy()

	ovl, err := overlay.NewOverlay(plt, opts.ShaderDir)
	if err != nil {
		return err
	}
	defer ovl.Destroy()
	ovl.SetVisible(showOverlay)
	plt.SetInput(ovl.Input)
	opts.Overlay = ovl

	if opts.ShaderDir != "" {
		w, err := glsl.NewWatcher(opts.ShaderDir)
		if err != nil {
			logger.Log(logger.Allow, "moderngl", err)
		} else {
			defer w.Close()
			opts.Watcher = w
		}
	}

	if fpsCap := p.FPSCap.Get().(int); !vsync && fpsCap > 0 {
		lim, err := limiter.NewLimiter(fpsCap)
		if err != nil {
			return err
		}
		defer lim.Stop()
		opts.Limiter = lim
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return loop.Run(ctx, plt, setup.scn, opts)
}
