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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/nazara-engine/nazara/events"
)

// Modifiers projects an SDL modifier state onto the canonical modifier state.
// Either the left or the right variant of a modifier key sets the flag.
func Modifiers(mod sdl.Keymod) events.Modifiers {
	return events.Modifiers{
		Shift: mod&(sdl.KMOD_LSHIFT|sdl.KMOD_RSHIFT) != 0,
		Ctrl:  mod&(sdl.KMOD_LCTRL|sdl.KMOD_RCTRL) != 0,
		Alt:   mod&(sdl.KMOD_LALT|sdl.KMOD_RALT) != 0,
		Logo:  mod&(sdl.KMOD_LGUI|sdl.KMOD_RGUI) != 0,
	}
}
