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
	"github.com/BurntSushi/xgb/xproto"

	"github.com/nazara-engine/nazara/events"
)

// Modifiers projects the state field of an X11 key, button or motion event
// onto the canonical modifier state. Alt is assumed to be Mod1 and the logo
// key to be Mod4, which is the case for the default mapping of every common
// X server.
func Modifiers(state uint16) events.Modifiers {
	return events.Modifiers{
		Shift: state&xproto.KeyButMaskShift != 0,
		Ctrl:  state&xproto.KeyButMaskControl != 0,
		Alt:   state&xproto.KeyButMaskMod1 != 0,
		Logo:  state&xproto.KeyButMaskMod4 != 0,
	}
}
