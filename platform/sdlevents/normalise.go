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

package sdlevents

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/nazara-engine/nazara/events"
)

// Raw is the input to the SDL normaliser. Mod is the modifier state at the
// time the event was polled and is used for events that do not carry their
// own modifier state.
type Raw struct {
	Event sdl.Event
	Mod   sdl.Keymod
}

func (r Raw) String() string {
	switch ev := r.Event.(type) {
	case nil:
		return "nil event"
	case *sdl.WindowEvent:
		return fmt.Sprintf("%T (event %d)", ev, ev.Event)
	case *sdl.KeyboardEvent:
		return fmt.Sprintf("%T (keycode %#x, scancode %d, repeat %d)", ev, ev.Keysym.Sym, ev.Keysym.Scancode, ev.Repeat)
	case *sdl.MouseButtonEvent:
		return fmt.Sprintf("%T (button %d)", ev, ev.Button)
	}
	return fmt.Sprintf("%T", r.Event)
}

// Capture pairs an event with the current modifier state. Should be called
// immediately after the event has been polled.
func Capture(ev sdl.Event) Raw {
	return Raw{Event: ev, Mod: sdl.GetModState()}
}

// Normaliser converts SDL events. The zero value is ready to use.
type Normaliser struct{}

// Normalise implements the platform.Normaliser interface.
func (Normaliser) Normalise(raw Raw) events.Event {
	switch ev := raw.Event.(type) {
	case *sdl.WindowEvent:
		if ev == nil {
			return events.Unrecognised
		}
		return window(ev)

	case *sdl.MouseMotionEvent:
		if ev == nil {
			return events.Unrecognised
		}
		return events.NewMouseMoved(int(ev.X), int(ev.Y))

	case *sdl.MouseButtonEvent:
		if ev == nil {
			return events.Unrecognised
		}
		return mouseButton(ev, raw.Mod)

	case *sdl.KeyboardEvent:
		if ev == nil {
			return events.Unrecognised
		}
		return keyboard(ev)
	}

	return events.Unrecognised
}

func window(ev *sdl.WindowEvent) events.Event {
	switch ev.Event {
	case sdl.WINDOWEVENT_RESIZED:
		return events.NewWindow(events.WindowResized)
	case sdl.WINDOWEVENT_MOVED:
		return events.NewWindow(events.WindowMoved)
	case sdl.WINDOWEVENT_CLOSE:
		return events.NewWindow(events.WindowCloseRequested)
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		return events.NewWindow(events.WindowFocusGained)
	case sdl.WINDOWEVENT_FOCUS_LOST:
		return events.NewWindow(events.WindowFocusLost)
	}
	return events.Unrecognised
}

// Button converts an SDL mouse button number to a canonical mouse button.
// Numbers other than the three named buttons are kept as they are.
func Button(b uint8) events.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return events.MouseLeft
	case sdl.BUTTON_MIDDLE:
		return events.MouseMiddle
	case sdl.BUTTON_RIGHT:
		return events.MouseRight
	}
	return events.MouseOther(uint16(b))
}

func mouseButton(ev *sdl.MouseButtonEvent, mod sdl.Keymod) events.Event {
	var state events.State
	switch ev.Type {
	case sdl.MOUSEBUTTONDOWN:
		state = events.Pressed
	case sdl.MOUSEBUTTONUP:
		state = events.Released
	default:
		return events.Unrecognised
	}
	return events.NewMouseButton(Button(ev.Button), state, Modifiers(mod))
}

func keyboard(ev *sdl.KeyboardEvent) events.Event {
	if ev.Repeat != 0 {
		return events.Unrecognised
	}

	var state events.State
	switch ev.Type {
	case sdl.KEYDOWN:
		state = events.Pressed
	case sdl.KEYUP:
		state = events.Released
	default:
		return events.Unrecognised
	}

	k, ok := keyTable.Lookup(ev.Keysym.Sym, state)
	if !ok {
		// the layout may have given the key a keycode we don't know about
		// so try the keycode that SDL would use for the scancode
		k, ok = keyTable.Lookup(scancodeKeycode(ev.Keysym.Scancode), state)
		if !ok {
			return events.Unrecognised
		}
	}

	return events.EventKey{Key: k, Mods: Modifiers(sdl.Keymod(ev.Keysym.Mod))}
}
