// This file is part of Nazara.
//
// Nazara is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nazara is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nazara.  If not, see <https://www.gnu.org/licenses/>.

package events

import "fmt"

// State is the binary press state of a key or button transition.
type State int

// List of valid State values.
const (
	Pressed State = iota + 1
	Released
)

func (s State) String() string {
	switch s {
	case Pressed:
		return "Pressed"
	case Released:
		return "Released"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// KeyEvent pairs a Key with the state of the transition.
type KeyEvent struct {
	Key   Key
	State State
}

func (ev KeyEvent) String() string {
	return fmt.Sprintf("%s %s", ev.Key, ev.State)
}

// Event is the canonical event. The concrete type is one of EventKey,
// EventMouse, EventWindow or EventUnrecognised.
type Event interface {
	fmt.Stringer
	isEvent()
}

// EventKey is a key transition with the modifier state at the time of the
// transition.
type EventKey struct {
	Key  KeyEvent
	Mods Modifiers
}

// EventMouse is a mouse button transition or cursor motion. Modifier state is
// only present when the backend provides it with the event, which is the case
// for button transitions. HasMods indicates whether Mods is meaningful.
type EventMouse struct {
	Mouse   MouseEvent
	Mods    Modifiers
	HasMods bool
}

// EventWindow is a window lifecycle notification.
type EventWindow struct {
	Window WindowEvent
}

// EventUnrecognised is produced for any raw event the normaliser does not
// map. It is not an error.
type EventUnrecognised struct{}

// Unrecognised is the only value of type EventUnrecognised.
var Unrecognised Event = EventUnrecognised{}

func (EventKey) isEvent()          {}
func (EventMouse) isEvent()        {}
func (EventWindow) isEvent()       {}
func (EventUnrecognised) isEvent() {}

func (ev EventKey) String() string {
	return fmt.Sprintf("Key(%s, %s)", ev.Key, ev.Mods)
}

func (ev EventMouse) String() string {
	if ev.HasMods {
		return fmt.Sprintf("Mouse(%s, %s)", ev.Mouse, ev.Mods)
	}
	return fmt.Sprintf("Mouse(%s)", ev.Mouse)
}

func (ev EventWindow) String() string {
	return fmt.Sprintf("Window(%s)", ev.Window)
}

func (EventUnrecognised) String() string {
	return "Unrecognised"
}

// NewKey returns an EventKey.
func NewKey(key Key, state State, mods Modifiers) Event {
	return EventKey{Key: KeyEvent{Key: key, State: state}, Mods: mods}
}

// NewMouseButton returns an EventMouse for a button transition. Button
// transitions always carry modifier state.
func NewMouseButton(button MouseButton, state State, mods Modifiers) Event {
	return EventMouse{
		Mouse:   MouseButtonEvent{Button: button, State: state},
		Mods:    mods,
		HasMods: true,
	}
}

// NewMouseMoved returns an EventMouse for cursor motion. Motion events carry
// no modifier state.
func NewMouseMoved(x, y int) Event {
	return EventMouse{Mouse: MouseMoved{X: x, Y: y}}
}

// NewWindow returns an EventWindow.
func NewWindow(w WindowEvent) Event {
	return EventWindow{Window: w}
}

// IsUnrecognised returns true if the event is the Unrecognised value. A nil
// Event is also considered unrecognised.
func IsUnrecognised(ev Event) bool {
	if ev == nil {
		return true
	}
	_, ok := ev.(EventUnrecognised)
	return ok
}
