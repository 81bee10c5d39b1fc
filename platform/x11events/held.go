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
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Held records which keys are held down so that presses generated by
// auto-repeat can be identified. The zero value is ready to use.
//
// The X server must be in detectable auto-repeat mode, otherwise every
// repeated press is preceded by a release and cannot be told apart from a
// real transition.
type Held struct {
	keys [256]bool
}

// Repeat updates the record with the event and returns true if the event is
// a KeyPress for a key that is already held. The result can be used for the
// Repeat field of Raw.
func (h *Held) Repeat(ev xgb.Event) bool {
	switch ev := ev.(type) {
	case xproto.KeyPressEvent:
		r := h.keys[ev.Detail]
		h.keys[ev.Detail] = true
		return r

	case xproto.KeyReleaseEvent:
		h.keys[ev.Detail] = false

	case xproto.FocusOutEvent:
		// key releases go to the window with focus
		if ev.Detail != xproto.NotifyDetailPointer {
			h.keys = [256]bool{}
		}
	}
	return false
}
