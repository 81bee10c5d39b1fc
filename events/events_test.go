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

package events_test

import (
	"testing"

	"github.com/nazara-engine/nazara/events"
	"github.com/nazara-engine/nazara/test"
)

func TestModifiers(t *testing.T) {
	test.ExpectSuccess(t, events.NoModifiers.IsNone())
	test.ExpectEquality(t, events.NoModifiers.String(), "None")

	m := events.Modifiers{Shift: true, Logo: true}
	test.ExpectFailure(t, m.IsNone())
	test.ExpectEquality(t, m.String(), "Shift+Logo")

	m = events.Modifiers{Shift: true, Ctrl: true, Alt: true, Logo: true}
	test.ExpectEquality(t, m.String(), "Shift+Ctrl+Alt+Logo")
}

func TestMouseButtons(t *testing.T) {
	test.ExpectEquality(t, events.MouseLeft.String(), "Left")
	test.ExpectEquality(t, events.MouseRight.String(), "Right")
	test.ExpectEquality(t, events.MouseMiddle.String(), "Middle")
	test.ExpectEquality(t, events.MouseOther(4).String(), "Other(4)")
	test.ExpectEquality(t, events.MouseOther(4), events.MouseOther(4))
	test.ExpectInequality(t, events.MouseOther(4), events.MouseOther(5))
	test.ExpectEquality(t, events.MouseButton{}.String(), "NoButton")
}

func TestEventConstruction(t *testing.T) {
	shift := events.Modifiers{Shift: true}

	ev := events.NewKey(events.KeyA, events.Released, shift)
	test.ExpectEquality(t, ev, events.Event(events.EventKey{
		Key:  events.KeyEvent{Key: events.KeyA, State: events.Released},
		Mods: shift,
	}))
	test.ExpectEquality(t, ev.String(), "Key(A Released, Shift)")

	ev = events.NewMouseButton(events.MouseLeft, events.Pressed, events.NoModifiers)
	m, ok := ev.(events.EventMouse)
	test.DemandSuccess(t, ok)
	test.ExpectSuccess(t, m.HasMods)
	test.ExpectEquality(t, ev.String(), "Mouse(Button{Left, Pressed}, None)")

	ev = events.NewMouseMoved(10, 20)
	m, ok = ev.(events.EventMouse)
	test.DemandSuccess(t, ok)
	test.ExpectFailure(t, m.HasMods)
	test.ExpectEquality(t, m.Mouse, events.MouseEvent(events.MouseMoved{X: 10, Y: 20}))
	test.ExpectEquality(t, ev.String(), "Mouse(Moved{10, 20})")

	ev = events.NewWindow(events.WindowCloseRequested)
	test.ExpectEquality(t, ev.String(), "Window(CloseRequested)")
	test.ExpectFailure(t, events.IsUnrecognised(ev))

	test.ExpectSuccess(t, events.IsUnrecognised(events.Unrecognised))
	test.ExpectSuccess(t, events.IsUnrecognised(nil))
	test.ExpectEquality(t, events.Unrecognised.String(), "Unrecognised")
}

// canonical events are comparable values. constructing the same event twice
// must result in equal values
func TestEventEquality(t *testing.T) {
	mods := events.Modifiers{Ctrl: true}

	test.ExpectEquality(t, events.NewKey(events.KeyF1, events.Pressed, mods), events.NewKey(events.KeyF1, events.Pressed, mods))
	test.ExpectInequality(t, events.NewKey(events.KeyF1, events.Pressed, mods), events.NewKey(events.KeyF1, events.Released, mods))
	test.ExpectEquality(t, events.NewMouseButton(events.MouseOther(7), events.Released, mods), events.NewMouseButton(events.MouseOther(7), events.Released, mods))
	test.ExpectEquality(t, events.NewMouseMoved(1, 2), events.NewMouseMoved(1, 2))
	test.ExpectEquality(t, events.NewWindow(events.WindowMoved), events.NewWindow(events.WindowMoved))
	test.ExpectEquality(t, events.Unrecognised, events.Event(events.EventUnrecognised{}))
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, events.Pressed.String(), "Pressed")
	test.ExpectEquality(t, events.State(0).String(), "State(0)")
	test.ExpectEquality(t, events.WindowFocusLost.String(), "FocusLost")
	test.ExpectEquality(t, events.WindowEvent(99).String(), "WindowEvent(99)")
}
