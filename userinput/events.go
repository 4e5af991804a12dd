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

package userinput

// Event represents a single user/window interaction. The underlying type will
// be one of the Event* types in this package.
//
// Events are produced only by the windowing collaborator and are significant
// in their order of arrival.
type Event any

// KeyMod identifies the modifier key held during a keyboard event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventQuit is sent when the window is asked to close.
type EventQuit struct{}

// EventKeyboard is the data associated with a key press or release.
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// MouseButton identifies the mouse button in an EventMouseButton.
type MouseButton int

// List of valid mouse buttons.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// EventMouseButton is the data associated with a mouse button press or
// release.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is the data associated with a mouse movement. X and Y are
// window coordinates.
type EventMouseMotion struct {
	X int
	Y int
}

// EventWindowResize is sent when the window geometry changes.
type EventWindowResize struct {
	Width  int
	Height int
}

// EventBatch is an ordered sequence of Events accumulated since the last
// forward. Insertion order is arrival order and is preserved end-to-end.
type EventBatch []Event
