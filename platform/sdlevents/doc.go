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

// Package sdlevents normalises SDL2 events into canonical events. The raw
// input is an sdl.Event together with the modifier state at the time the
// event was polled (see Raw and Capture()). Keyboard events carry their own
// modifier state and do not need the snapshot but mouse events do.
//
// Keys are identified by their SDL keycode, ie. the key as interpreted by the
// current keyboard layout. Keys that SDL only identifies by scancode (the
// international keys on Japanese and Brazilian keyboards for example) are
// declared in the key table with the keycode SDL derives from the scancode.
//
// Key repeat is not a key transition and normalises to events.Unrecognised,
// as does every other SDL event type that is not a keyboard, mouse button,
// mouse motion or window event.
package sdlevents
