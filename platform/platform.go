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

package platform

import (
	"runtime"

	"github.com/glsketch/moderngl/curated"
	"github.com/glsketch/moderngl/logger"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel error patterns.
const (
	InitError    = "platform: init: %v"
	WindowError  = "platform: window: %v"
	ContextError = "platform: context: %v"
)

// Platform is an SDL window with an OpenGL 3.3 core profile context.
type Platform struct {
	window  *sdl.Window
	context sdl.GLContext

	shouldClose bool

	// performance counter at creation and its frequency. used by Elapsed()
	start uint64
	freq  uint64

	// called for every SDL event before it is handled by the platform
	input func(sdl.Event)
}

type glAttribute struct {
	attr  sdl.GLattr
	value int
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. Any partially created resources are released on error.
func NewPlatform(title string, width int, height int, vsync bool) (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	attrs := []glAttribute{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 3},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	if runtime.GOOS == "darwin" {
		attrs = append(attrs, glAttribute{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG})
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf(InitError, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &Platform{}

	plt.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(WindowError, err)
	}

	plt.context, err = plt.window.GLCreateContext()
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf(ContextError, err)
	}

	err = plt.window.GLMakeCurrent(plt.context)
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf(ContextError, err)
	}

	err = gl.Init()
	if err != nil {
		plt.Destroy()
		return nil, curated.Errorf(ContextError, err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, "gl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	plt.SetVSync(vsync)

	plt.freq = sdl.GetPerformanceFrequency()
	plt.start = sdl.GetPerformanceCounter()

	return plt, nil
}

// SetVSync turns vertical sync on or off.
func (plt *Platform) SetVSync(vsync bool) {
	i := 0
	if vsync {
		i = 1
	}
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", i, err)
	}
}

// SetInput sets the function that is called for every SDL event. Used to
// forward input to the overlay.
func (plt *Platform) SetInput(f func(sdl.Event)) {
	plt.input = f
}

// ProcessEvents drains the SDL event queue and returns the events that are
// meaningful to the render loop.
func (plt *Platform) ProcessEvents() []Event {
	var events []Event

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if plt.input != nil {
			plt.input(ev)
		}

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			plt.shouldClose = true
			events = append(events, EventQuit)

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue
			}
			e := keyEvent(ev.Keysym.Sym)
			if e == EventQuit {
				plt.shouldClose = true
			}
			if e != EventNone {
				events = append(events, e)
			}

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				events = append(events, EventResize)
			}
		}
	}

	return events
}

// ShouldClose returns true if the user has asked for the window to close.
func (plt *Platform) ShouldClose() bool {
	return plt.shouldClose
}

// Elapsed returns the number of seconds since the platform was created.
func (plt *Platform) Elapsed() float64 {
	return float64(sdl.GetPerformanceCounter()-plt.start) / float64(plt.freq)
}

// SetSize changes the size of the window.
func (plt *Platform) SetSize(w int, h int) {
	plt.window.SetSize(int32(w), int32(h))
	logger.Logf(logger.Allow, "sdl", "window size: %dx%d", w, h)
}

// WindowSize returns the size of the window in screen coordinates.
func (plt *Platform) WindowSize() (int32, int32) {
	return plt.window.GetSize()
}

// FramebufferSize returns the size of the framebuffer in pixels. This can be
// different to the window size on high DPI displays.
func (plt *Platform) FramebufferSize() (int32, int32) {
	return plt.window.GLGetDrawableSize()
}

// Swap the front and back buffers.
func (plt *Platform) Swap() {
	plt.window.GLSwap()
}

// Destroy the context and window and shut down SDL.
func (plt *Platform) Destroy() {
	if plt.context != nil {
		sdl.GLDeleteContext(plt.context)
		plt.context = nil
	}
	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			logger.Log(logger.Allow, "sdl", err)
		}
		plt.window = nil
	}
	sdl.Quit()
}
