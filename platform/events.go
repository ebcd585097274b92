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

import "github.com/veandco/go-sdl2/sdl"

// Event is a user request or window change returned by ProcessEvents().
type Event int

// List of valid Event values.
const (
	EventNone Event = iota
	EventQuit
	EventResize
	EventTogglePause
	EventToggleMix
	EventToggleOverlay
	EventReloadShaders
)

func (ev Event) String() string {
	switch ev {
	case EventNone:
		return "none"
	case EventQuit:
		return "quit"
	case EventResize:
		return "resize"
	case EventTogglePause:
		return "toggle pause"
	case EventToggleMix:
		return "toggle mix"
	case EventToggleOverlay:
		return "toggle overlay"
	case EventReloadShaders:
		return "reload shaders"
	}
	return "unknown"
}

// keyEvent returns the Event for a key press. EventNone if the key has no
// meaning.
func keyEvent(sym sdl.Keycode) Event {
	switch sym {
	case sdl.K_ESCAPE:
		return EventQuit
	case sdl.K_p:
		return EventTogglePause
	case sdl.K_t:
		return EventToggleMix
	case sdl.K_o:
		return EventToggleOverlay
	case sdl.K_r:
		return EventReloadShaders
	}
	return EventNone
}
