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

// Package events defines the canonical, backend independent representation of
// input and window events. Application code consumes values from this package
// and never the event types of the windowing backend.
//
// An Event is one of exactly four cases:
//
//	EventKey		a key transition and the modifier state at that time
//	EventMouse		a button transition or cursor motion
//	EventWindow		a window lifecycle notification
//	EventUnrecognised	anything the backend normaliser declined to map
//
// Every event type is a comparable value. Normalising the same raw event twice
// produces two Event values that are equal with the == operator.
//
// The set of recognised keys is closed. Adding a Key changes the set and so
// requires KeySetVersion to be incremented.
//
// Backends express their key mapping as a KeyTable, an ordered list of
// backend codes paired with a Key. The press state of a key transition is
// applied by KeyTable.Lookup() so a key recognised when pressed is always
// recognised when released.
package events
