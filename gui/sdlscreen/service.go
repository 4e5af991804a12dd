// This file is part of Splitloop.
//
// Splitloop is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Splitloop is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Splitloop.  If not, see <https://www.gnu.org/licenses/>.

package sdlscreen

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/splitloop/userinput"
)

// Service implements the gui.Screen interface.
//
// MUST ONLY be called from the #mainthread.
func (scr *Screen) Service(acc *userinput.Accumulator) bool {
	quit := false

	// loop until there are no more events to retrieve. servicing just one
	// event per tick is not enough, queued events would take one tick or
	// longer each to resolve. truncating events is not wanted either
	// because we may miss important user input
	empty := false
	for !empty {
		// check for SDL events, timing out straight away if there's nothing
		ev := sdl.WaitEventTimeout(1)

		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			acc.Push(userinput.EventQuit{})
			quit = true

		case *sdl.KeyboardEvent:
			mod := userinput.KeyModNone

			if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
				sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
				mod = userinput.KeyModAlt
			} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
				sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
				mod = userinput.KeyModShift
			} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
				sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
				mod = userinput.KeyModCtrl
			}

			switch ev.Type {
			case sdl.KEYDOWN:
				if ev.Repeat == 0 {
					acc.Push(userinput.EventKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Mod:  mod,
						Down: true})
				}
			case sdl.KEYUP:
				if ev.Repeat == 0 {
					acc.Push(userinput.EventKeyboard{
						Key:  sdl.GetKeyName(ev.Keysym.Sym),
						Mod:  mod,
						Down: false})
				}
			}

		case *sdl.MouseButtonEvent:
			var button userinput.MouseButton
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				button = userinput.MouseButtonLeft
			case sdl.BUTTON_MIDDLE:
				button = userinput.MouseButtonMiddle
			case sdl.BUTTON_RIGHT:
				button = userinput.MouseButtonRight
			}
			acc.Push(userinput.EventMouseButton{
				Button: button,
				Down:   ev.Type == sdl.MOUSEBUTTONDOWN})

		case *sdl.MouseMotionEvent:
			acc.Push(userinput.EventMouseMotion{
				X: int(ev.X),
				Y: int(ev.Y)})

		case *sdl.WindowEvent:
			if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				acc.Push(userinput.EventWindowResize{
					Width:  int(ev.Data1),
					Height: int(ev.Data2)})
			}

		case nil:
			// a nil value means WaitEventTimeout has timed out and we can
			// say that the event queue is empty
			empty = true
		}
	}

	return quit
}
