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

// Package gui defines the boundary between the driver loop and the display
// implementation. The only implementation outside of tests is the sdlscreen
// package.
package gui

import (
	"github.com/jetsetilly/splitloop/userinput"
)

// Screen defines the operations the driver loop performs on the display.
// Any error from WriteFrame or Present is fatal to the driver loop.
//
// Implementations are not required to be safe for concurrent use. Every
// function MUST be called from the same goroutine, which for some windowing
// systems (SDL among them) must be the main thread.
type Screen interface {
	// Resize the display to the given frame geometry. Called once at
	// startup, before the first Service().
	Resize(width int, height int) error

	// WriteFrame copies a raw pixel buffer to the display's backing store.
	// The buffer is not retained past the call.
	WriteFrame(pix []byte) error

	// Present the most recently written frame.
	Present() error

	// Service polls the windowing system, translating anything the user did
	// into events on the accumulator. Returns true if the window was asked
	// to close.
	//
	// Service should not pause or loop for longer than necessary. The
	// driver loop calls it once per tick.
	Service(acc *userinput.Accumulator) bool

	// Destroy releases the display resources. The Screen is unusable
	// afterwards.
	Destroy()
}
