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

import "strings"

// Modifiers is the state of the modifier keys at the moment of an event. The
// value is always fully defined. A backend projects its own modifier snapshot
// into a new Modifiers value for every event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool

	// the platform meta key. super, command or windows key depending on the
	// platform
	Logo bool
}

// NoModifiers is the modifier state when no modifier key is held.
var NoModifiers = Modifiers{}

// IsNone returns true if no modifier key is held.
func (m Modifiers) IsNone() bool {
	return m == NoModifiers
}

func (m Modifiers) String() string {
	if m.IsNone() {
		return "None"
	}

	s := make([]string, 0, 4)
	if m.Shift {
		s = append(s, "Shift")
	}
	if m.Ctrl {
		s = append(s, "Ctrl")
	}
	if m.Alt {
		s = append(s, "Alt")
	}
	if m.Logo {
		s = append(s, "Logo")
	}
	return strings.Join(s, "+")
}
