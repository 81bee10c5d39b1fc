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

// Package x11events normalises X11 events, as delivered by the xgb package,
// into canonical events.
//
// X11 key events carry a keycode which identifies the physical key. The
// keycode is resolved to a keysym with a Keymap and the keysym is looked up
// in the key table. The first column of the keyboard mapping is always used so
// that the canonical key does not depend on the state of the modifier keys.
// KMap reads the keyboard mapping from the X server. The host should call
// ReadMapping() when the server sends a MappingNotify event.
//
// The X server reports changes to the size and position of a window in the
// same ConfigureNotify event. To tell a resize from a move the normaliser
// needs the previous geometry of the window, which the host provides as part
// of the raw event (see Raw and Track()). The normaliser itself keeps no
// state.
//
// A request from the window manager to close the window arrives as a
// ClientMessage for the WM_PROTOCOLS atom containing the WM_DELETE_WINDOW atom.
// The values of these atoms are specific to the X server connection and are
// given to the normaliser on creation.
package x11events
