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

package x11events

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/nazara-engine/nazara/events"
)

// Geometry is the position and size of a window.
type Geometry struct {
	X, Y          int
	Width, Height int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", g.Width, g.Height, g.X, g.Y)
}

// Raw is the input to the X11 normaliser. Geometry is the geometry of the
// window before the event. It is only used for ConfigureNotify events.
//
// Repeat is set for a KeyPress generated by auto-repeat (see Held). It is
// ignored for all other events.
type Raw struct {
	Event xgb.Event
	Geometry
	Repeat bool
}

func (r Raw) String() string {
	if r.Event == nil {
		return "nil event"
	}
	return fmt.Sprintf("%T (%s)", r.Event, r.Event)
}

// Track returns the geometry of the window after the raw event. The host
// should keep the result and use it to build the next Raw.
func Track(raw Raw) Geometry {
	if ev, ok := raw.Event.(xproto.ConfigureNotifyEvent); ok {
		return Geometry{
			X:      int(ev.X),
			Y:      int(ev.Y),
			Width:  int(ev.Width),
			Height: int(ev.Height),
		}
	}
	return raw.Geometry
}

// Atoms are the atom values required to recognise a close request from the
// window manager.
type Atoms struct {
	WMProtocols    xproto.Atom
	WMDeleteWindow xproto.Atom
}

// Normaliser converts X11 events.
type Normaliser struct {
	km    Keymap
	atoms Atoms
}

// NewNormaliser is the preferred method of initialisation for the Normaliser
// type. Key events are unrecognised if the keymap is nil.
func NewNormaliser(km Keymap, atoms Atoms) Normaliser {
	return Normaliser{km: km, atoms: atoms}
}

// Normalise implements the platform.Normaliser interface.
func (n Normaliser) Normalise(raw Raw) events.Event {
	switch ev := raw.Event.(type) {
	case xproto.ConfigureNotifyEvent:
		return configure(ev, raw.Geometry)

	case xproto.ClientMessageEvent:
		return n.clientMessage(ev)

	case xproto.FocusInEvent:
		return focus(ev.Detail, events.WindowFocusGained)
	case xproto.FocusOutEvent:
		return focus(ev.Detail, events.WindowFocusLost)

	case xproto.MotionNotifyEvent:
		return events.NewMouseMoved(int(ev.EventX), int(ev.EventY))

	case xproto.ButtonPressEvent:
		return events.NewMouseButton(Button(ev.Detail), events.Pressed, Modifiers(ev.State))
	case xproto.ButtonReleaseEvent:
		return events.NewMouseButton(Button(ev.Detail), events.Released, Modifiers(ev.State))

	case xproto.KeyPressEvent:
		if raw.Repeat {
			return events.Unrecognised
		}
		return n.key(ev.Detail, ev.State, events.Pressed)
	case xproto.KeyReleaseEvent:
		return n.key(ev.Detail, ev.State, events.Released)
	}

	return events.Unrecognised
}

// a change in size takes priority over a change in position
func configure(ev xproto.ConfigureNotifyEvent, prev Geometry) events.Event {
	if int(ev.Width) != prev.Width || int(ev.Height) != prev.Height {
		return events.NewWindow(events.WindowResized)
	}
	if int(ev.X) != prev.X || int(ev.Y) != prev.Y {
		return events.NewWindow(events.WindowMoved)
	}
	return events.Unrecognised
}

func (n Normaliser) clientMessage(ev xproto.ClientMessageEvent) events.Event {
	if ev.Type != n.atoms.WMProtocols || ev.Format != 32 {
		return events.Unrecognised
	}
	d := ev.Data.Data32
	if xproto.Atom(d[0]) != n.atoms.WMDeleteWindow {
		return events.Unrecognised
	}
	return events.NewWindow(events.WindowCloseRequested)
}

// focus moving between the window and the pointer is not a change of focus
// for the window
func focus(detail byte, w events.WindowEvent) events.Event {
	if detail == xproto.NotifyDetailPointer {
		return events.Unrecognised
	}
	return events.NewWindow(w)
}

// Button converts an X11 button number to a canonical mouse button. Numbers
// other than the three named buttons, including the wheel buttons, are kept
// as they are.
func Button(b xproto.Button) events.MouseButton {
	switch b {
	case xproto.ButtonIndex1:
		return events.MouseLeft
	case xproto.ButtonIndex2:
		return events.MouseMiddle
	case xproto.ButtonIndex3:
		return events.MouseRight
	}
	return events.MouseOther(uint16(b))
}

func (n Normaliser) key(kc xproto.Keycode, state uint16, s events.State) events.Event {
	if n.km == nil {
		return events.Unrecognised
	}

	k, ok := keyTable.Lookup(n.km.Keysym(kc, 0), s)
	if !ok {
		return events.Unrecognised
	}
	return events.EventKey{Key: k, Mods: Modifiers(state)}
}
