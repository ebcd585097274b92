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

package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/glsketch/moderngl/logger"
	"github.com/glsketch/moderngl/paths"
	"github.com/glsketch/moderngl/version"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// Sizer is implemented by the platform. The overlay uses it to find the
// window and framebuffer sizes at the start of each frame.
type Sizer interface {
	WindowSize() (int32, int32)
	FramebufferSize() (int32, int32)
}

// Overlay is a Dear ImGui context and the renderer for it.
type Overlay struct {
	context *imgui.Context
	io      imgui.IO
	rnd     *renderer
	sizer   Sizer

	visible   bool
	lastFrame time.Time
}

// NewOverlay is the preferred method of initialisation for the Overlay type.
// Must be called after the GL context has been created.
func NewOverlay(sizer Sizer, shaderDir string) (*Overlay, error) {
	ovl := &Overlay{
		context: imgui.CreateContext(nil),
		io:      imgui.CurrentIO(),
		sizer:   sizer,
	}

	ovl.io.SetIniFilename(paths.ResourcePath("", "imgui.ini"))

	var err error
	ovl.rnd, err = newRenderer(ovl.io, shaderDir)
	if err != nil {
		ovl.context.Destroy()
		return nil, err
	}

	return ovl, nil
}

// Destroy the renderer and the imgui context.
func (ovl *Overlay) Destroy() {
	ovl.rnd.destroy()
	ovl.context.Destroy()
}

// Visible returns true if the overlay is being drawn.
func (ovl *Overlay) Visible() bool {
	return ovl.visible
}

// SetVisible shows or hides the overlay.
func (ovl *Overlay) SetVisible(visible bool) {
	ovl.visible = visible
	logger.Logf(logger.Allow, "overlay", "visible: %v", visible)
}

// Input forwards SDL events to imgui. Mouse position and button state are
// sampled at the start of every frame so only the events that can't be
// sampled are handled here.
func (ovl *Overlay) Input(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.MouseWheelEvent:
		var deltaX, deltaY float32
		if ev.X > 0 {
			deltaX++
		} else if ev.X < 0 {
			deltaX--
		}
		if ev.Y > 0 {
			deltaY++
		} else if ev.Y < 0 {
			deltaY--
		}
		ovl.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)
	case *sdl.TextInputEvent:
		ovl.io.AddInputCharacters(strings.TrimRight(string(ev.Text[:]), "\x00"))
	}
}

// Render the overlay window. The controls are updated if the user changes
// them.
func (ovl *Overlay) Render(st Status, ctl *Controls) {
	if !ovl.visible {
		return
	}

	ovl.newFrame()
	imgui.NewFrame()
	ovl.draw(st, ctl)
	imgui.Render()
	ovl.rnd.render(ovl.sizer, imgui.RenderedDrawData())
}

// newFrame forwards the display size, frame time and mouse state to imgui.
func (ovl *Overlay) newFrame() {
	w, h := ovl.sizer.WindowSize()
	ovl.io.SetDisplaySize(imgui.Vec2{X: float32(w), Y: float32(h)})

	now := time.Now()
	if !ovl.lastFrame.IsZero() {
		ovl.io.SetDeltaTime(float32(now.Sub(ovl.lastFrame).Seconds()))
	}
	ovl.lastFrame = now

	x, y, state := sdl.GetMouseState()
	ovl.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		ovl.io.SetMouseButtonDown(i, (state&sdl.Button(button)) != 0)
	}
}

// range of the fps cap slider
const (
	minFPSCap = 10
	maxFPSCap = 240
)

// number of log entries shown at the bottom of the overlay
const logLines = 5

func (ovl *Overlay) draw(st Status, ctl *Controls) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 10}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	if imgui.BeginV(fmt.Sprintf("%s %s", version.ApplicationName, st.Scene), nil, imgui.WindowFlagsAlwaysAutoResize) {
		imgui.Text(fmt.Sprintf("elapsed: %.2fs", st.Elapsed))
		imgui.Text(fmt.Sprintf("fps: %.1f", st.FPS))

		if st.HasModel {
			imgui.Separator()
			imgui.Text("model")
			for _, r := range matrixRows(st.Model) {
				imgui.Text(r)
			}
		}

		imgui.Separator()
		imgui.Checkbox("paused", &ctl.Paused)
		imgui.Checkbox("mix texture", &ctl.Mix)
		if ctl.FPSCap > 0 {
			imgui.SliderIntV("fps cap", &ctl.FPSCap, minFPSCap, maxFPSCap, "%d")
		}

		imgui.Separator()
		var log strings.Builder
		logger.Tail(&log, logLines)
		imgui.Text(strings.TrimSuffix(log.String(), "\n"))
	}
	imgui.End()
}
